package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Acquisition Study: %s ===\n\n", r.Method)
	writePerformanceTable(tw, r.Performance)
	writeTimingTable(tw, r.Timing)

	tw.Flush()
}

func writePerformanceTable(tw *tabwriter.Writer, rows []PerformanceRow) {
	fmt.Fprintf(tw, "Performance (%d conditions)\n\n", len(rows))

	writeHeader(tw, "Dataset", "Evaluator", "WL Method", "Acquisition", "Mean", "Stddev", "Folds")
	for _, row := range rows {
		c := row.Condition
		fmt.Fprintln(tw, strings.Join([]string{
			c.Dataset, c.Evaluator, c.WlMethod, c.Acquisition,
			fmtValue(row.Mean),
			fmtValue(row.StdDev),
			fmt.Sprintf("%d", row.Samples),
		}, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeTimingTable(tw *tabwriter.Writer, rows []TimingRow) {
	fmt.Fprintf(tw, "Weight Learning Time (seconds)\n\n")

	writeHeader(tw, "Dataset", "Evaluator", "WL Method", "Acquisition", "Mean", "Stddev", "Folds")
	for _, row := range rows {
		c := row.Condition
		fmt.Fprintln(tw, strings.Join([]string{
			c.Dataset, c.Evaluator, c.WlMethod, c.Acquisition,
			fmtSeconds(row.MeanWall),
			fmtSeconds(row.StdDevWall),
			fmt.Sprintf("%d", row.Samples),
		}, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header ...string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}

func fmtSeconds(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2fs", v)
}
