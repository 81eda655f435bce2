package method

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
)

var (
	atomPattern   = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\((.*)\)$`)
	exitedPrefix  = regexp.MustCompile(`\*\*\* Tuffy exited at .* after running for `)
	unitMarkers   = strings.NewReplacer("[", "", "]", "", "min", "", "sec", "")
	timingSplitFn = func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }
)

const exitedMarker = "Tuffy exited at"

// TuffyAdapter reads Tuffy output: a single inferred-predicates.txt holding
// either marginal ("<prob>\tPRED(a, b)") or MAP ("PRED(a, b)") atoms, and a
// learning log ending with "*** Tuffy exited at ... after running for [Xmin, Ysec]".
type TuffyAdapter struct{}

func NewTuffy() *TuffyAdapter {
	return &TuffyAdapter{}
}

func (t *TuffyAdapter) Name() string {
	return Tuffy
}

func (t *TuffyAdapter) PredictionPath(foldDir string) string {
	return filepath.Join(foldDir, "inferred-predicates.txt")
}

func (t *TuffyAdapter) LoadPredictions(req PredictionRequest) (*frame.Frame, error) {
	path := t.PredictionPath(req.FoldDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound(err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f, err := parseTuffyAtoms(data, req.Predicate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func parseTuffyAtoms(data []byte, predicate string) (*frame.Frame, error) {
	f := frame.New(predicate)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		value := 1.0
		atom := text
		if prob, rest, ok := strings.Cut(text, "\t"); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(prob), 64)
			if err != nil {
				return nil, apperr.Malformed("line %d: invalid probability %q", line, prob)
			}
			value, atom = v, strings.TrimSpace(rest)
		}

		m := atomPattern.FindStringSubmatch(atom)
		if m == nil {
			return nil, apperr.Malformed("line %d: not an atom: %q", line, atom)
		}
		if !strings.EqualFold(m[1], predicate) {
			continue
		}
		if err := f.Set(splitArgs(m[2]), value); err != nil {
			return nil, apperr.Malformed("line %d: %v", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// splitArgs splits a Tuffy argument list on commas outside double quotes and
// strips the quotes.
func splitArgs(s string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(args, strings.TrimSpace(current.String()))
}

// ExtractTiming sums minutes and seconds over every completion line of the log.
func (t *TuffyAdapter) ExtractTiming(foldDir string) (float64, error) {
	data, err := readLearnLog(foldDir)
	if err != nil {
		return 0, err
	}

	var (
		total   float64
		matched int
	)
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.Contains(line, exitedMarker) {
			continue
		}
		matched++
		secs, err := parseElapsed(line)
		if err != nil {
			return 0, err
		}
		total += secs
	}

	if matched == 0 {
		return 0, apperr.Empty("no %q line in %s", exitedMarker, LearnLog)
	}
	return total, nil
}

// parseElapsed turns "*** Tuffy exited at <ts> after running for [2min, 15sec]"
// into 135.
func parseElapsed(line string) (float64, error) {
	rest := exitedPrefix.ReplaceAllString(strings.TrimSpace(line), "")
	fields := strings.FieldsFunc(unitMarkers.Replace(rest), timingSplitFn)
	if len(fields) != 2 {
		return 0, apperr.Malformed("expected minutes and seconds in %q", line)
	}

	minutes, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, apperr.Malformed("invalid minutes %q", fields[0])
	}
	seconds, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, apperr.Malformed("invalid seconds %q", fields[1])
	}
	return minutes*60 + seconds, nil
}
