package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
)

// Layout describes the columns of a delimited predicate file.
type Layout int

const (
	// ArgsWithValue files end every row with a numeric truth value.
	ArgsWithValue Layout = iota
	// ArgsOnly files list atoms; every atom gets the value 1.
	ArgsOnly
)

// Read parses a tab-delimited predicate file with no header row.
func Read(r io.Reader, predicate string, layout Layout) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	f := New(predicate)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperr.Malformed("%s: %v", predicate, err)
		}
		line, _ := cr.FieldPos(0)
		row = trimFields(row)
		if len(row) == 0 {
			continue
		}

		args, value, err := split(row, layout)
		if err != nil {
			return nil, apperr.Malformed("%s line %d: %v", predicate, line, err)
		}
		if err := f.Set(args, value); err != nil {
			return nil, apperr.Malformed("line %d: %v", line, err)
		}
	}

	return f, nil
}

// ReadFile opens path and parses it with Read. A missing file matches
// apperr.ErrNotFound.
func ReadFile(path, predicate string, layout Layout) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound(err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	f, err := Read(file, predicate, layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func split(row []string, layout Layout) ([]string, float64, error) {
	if layout == ArgsOnly {
		return append([]string(nil), row...), 1, nil
	}
	if len(row) < 2 {
		return nil, 0, fmt.Errorf("expected arguments and a value, got %d column(s)", len(row))
	}
	last := row[len(row)-1]
	value, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid value %q", last)
	}
	return append([]string(nil), row[:len(row)-1]...), value, nil
}

func trimFields(row []string) []string {
	out := row[:0]
	for _, field := range row {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}
