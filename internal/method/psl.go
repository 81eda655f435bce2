package method

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
)

// PSLAdapter reads PSL CLI output: one tab-delimited file per open predicate
// under inferred-predicates/, and a log4j learning log whose lines start with
// the elapsed milliseconds.
type PSLAdapter struct{}

func NewPSL() *PSLAdapter {
	return &PSLAdapter{}
}

func (p *PSLAdapter) Name() string {
	return PSL
}

func (p *PSLAdapter) PredictionPath(foldDir, predicate string) string {
	return filepath.Join(foldDir, "inferred-predicates", strings.ToUpper(predicate)+".txt")
}

func (p *PSLAdapter) LoadPredictions(req PredictionRequest) (*frame.Frame, error) {
	return frame.ReadFile(p.PredictionPath(req.FoldDir, req.Predicate), req.Predicate, frame.ArgsWithValue)
}

// ExtractTiming reads the first field of the last log line as milliseconds.
// A first field that is not an integer counts as zero seconds.
func (p *PSLAdapter) ExtractTiming(foldDir string) (float64, error) {
	data, err := readLearnLog(foldDir)
	if err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, apperr.Empty("%s is empty", LearnLog)
	}

	fields := strings.Fields(lastLine(data))
	if len(fields) == 0 {
		return 0, nil
	}
	ms, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, nil
	}
	return float64(ms) / 1000, nil
}

// lastLine returns the final line of data, ignoring one trailing newline.
func lastLine(data []byte) string {
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	if i := bytes.LastIndexByte(data, '\n'); i >= 0 {
		data = data[i+1:]
	}
	return string(data)
}
