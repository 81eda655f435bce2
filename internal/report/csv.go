package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/linqs/srinivasan-mlj20/internal/study"
)

var (
	PerformanceHeader = []string{"Dataset", "Evaluation_Method", "Wl_Method", "Acquisition_Function", "Mean", "Standard_Deviation"}
	TimingHeader      = []string{"Dataset", "Evaluation_Method", "Wl_Method", "Acquisition_Function", "Mean_Wall_Clock_Time", "Wall_Clock_Time_Time_Standard_Deviation"}
)

func PerformanceFile(method string) string {
	return method + "_performance.csv"
}

func TimingFile(method string) string {
	return method + "_timing.csv"
}

// WriteCSV writes both tables of r into dir, replacing earlier files.
func WriteCSV(r *Report, dir string) error {
	perf := make([][]string, 0, len(r.Performance))
	for _, row := range r.Performance {
		perf = append(perf, append(conditionCells(row.Condition), FormatFloat(row.Mean), FormatFloat(row.StdDev)))
	}
	if err := writeCSVFile(filepath.Join(dir, PerformanceFile(r.Method)), PerformanceHeader, perf); err != nil {
		return err
	}

	timing := make([][]string, 0, len(r.Timing))
	for _, row := range r.Timing {
		timing = append(timing, append(conditionCells(row.Condition), FormatFloat(row.MeanWall), FormatFloat(row.StdDevWall)))
	}
	return writeCSVFile(filepath.Join(dir, TimingFile(r.Method)), TimingHeader, timing)
}

func conditionCells(c study.Condition) []string {
	return []string{c.Dataset, c.Evaluator, c.WlMethod, c.Acquisition}
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FormatFloat renders v in shortest round-trip form. Integral values keep a
// trailing ".0", magnitudes outside [1e-4, 1e16) use an exponent and NaN is
// an empty cell.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
