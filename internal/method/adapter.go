// Package method adapts the output of each supported SRL tool to a prediction
// frame and a learning time.
package method

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
	"github.com/linqs/srinivasan-mlj20/internal/study"
)

const (
	PSL   = "psl"
	Tuffy = "tuffy"
)

// LearnLog is the weight learning log every tool writes into its fold directory.
const LearnLog = "learn_out.txt"

// PredictionRequest addresses the inferred predicates of one fold.
type PredictionRequest struct {
	Condition study.Condition
	Fold      string
	Predicate string
	Study     string
	// FoldDir is the fold directory under the study root.
	FoldDir string
}

type Adapter interface {
	Name() string
	// LoadPredictions parses the fold's inferred atoms of req.Predicate.
	LoadPredictions(req PredictionRequest) (*frame.Frame, error)
	// ExtractTiming returns the weight learning wall-clock time in seconds.
	ExtractTiming(foldDir string) (float64, error)
}

// ForName selects the adapter for a method. Any other name is a configuration
// error.
func ForName(name string) (Adapter, error) {
	switch name {
	case PSL:
		return NewPSL(), nil
	case Tuffy:
		return NewTuffy(), nil
	default:
		return nil, apperr.NewConfig("%s not supported. Try: %v", name, Supported())
	}
}

func Supported() []string {
	return []string{PSL, Tuffy}
}

func readLearnLog(foldDir string) ([]byte, error) {
	path := filepath.Join(foldDir, LearnLog)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound(err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
