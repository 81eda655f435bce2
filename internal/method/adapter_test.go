package method

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/frame"
	"github.com/linqs/srinivasan-mlj20/internal/study"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func request(foldDir, predicate string) PredictionRequest {
	return PredictionRequest{
		Condition: study.Condition{Dataset: "cora", WlMethod: "MLE", Evaluator: "Discrete", Acquisition: "entropy"},
		Fold:      filepath.Base(foldDir),
		Predicate: predicate,
		Study:     study.Name,
		FoldDir:   foldDir,
	}
}

func TestForName(t *testing.T) {
	a, err := ForName("psl")
	require.NoError(t, err)
	assert.Equal(t, PSL, a.Name())

	a, err = ForName("tuffy")
	require.NoError(t, err)
	assert.Equal(t, Tuffy, a.Name())

	_, err = ForName("PSL")
	require.Error(t, err)
	assert.True(t, apperr.IsFatal(err))
	assert.Contains(t, err.Error(), "PSL not supported")
}

func TestPSL_ExtractTiming(t *testing.T) {
	tests := []struct {
		name    string
		log     *string
		want    float64
		wantErr error
	}{
		{
			name: "last line milliseconds",
			log:  strptr("0 [main] INFO  org.linqs.psl.cli.Launcher  - Loading data\n123456 [main] INFO  org.linqs.psl.cli.Launcher  - Weight learning complete\n"),
			want: 123.456,
		},
		{
			name: "no trailing newline",
			log:  strptr("10 [main] start\n2500 [main] done"),
			want: 2.5,
		},
		{
			name: "non numeric first field counts as zero",
			log:  strptr("10 [main] start\nException in thread \"main\" java.lang.OutOfMemoryError\n"),
			want: 0,
		},
		{
			name: "blank last line counts as zero",
			log:  strptr("10 [main] start\n\n"),
			want: 0,
		},
		{
			name:    "empty log",
			log:     strptr(""),
			wantErr: apperr.ErrEmpty,
		},
		{
			name:    "missing log",
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.log != nil {
				writeFile(t, filepath.Join(dir, LearnLog), *tt.log)
			}

			got, err := NewPSL().ExtractTiming(dir)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPSL_LoadPredictions(t *testing.T) {
	dir := t.TempDir()
	p := NewPSL()
	writeFile(t, p.PredictionPath(dir, "hasCat"), "p1\tml\t0.91\np1\tdb\t0.09\n")

	f, err := p.LoadPredictions(request(dir, "hasCat"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inferred-predicates", "HASCAT.txt"), p.PredictionPath(dir, "hasCat"))
	assert.Equal(t, 2, f.Len())
	assert.InDelta(t, 0.91, f.Value(frame.NewKey("p1", "ml")), 1e-9)

	_, err = p.LoadPredictions(request(t.TempDir(), "hasCat"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestTuffy_ExtractTiming(t *testing.T) {
	tests := []struct {
		name    string
		log     *string
		want    float64
		wantErr error
	}{
		{
			name: "space separated",
			log:  strptr("*** Tuffy exited at Mon Jun 01 10:00:00 PDT 2020 after running for [2min 15sec]\n"),
			want: 135,
		},
		{
			name: "comma separated among other output",
			log:  strptr(">>> Grounding...\n*** Tuffy exited at 2020-06-01 10:00 after running for [1min, 7sec]\nbye\n"),
			want: 67,
		},
		{
			name: "fractional seconds",
			log:  strptr("*** Tuffy exited at x after running for [0min, 2.5sec]\n"),
			want: 2.5,
		},
		{
			name: "multiple completion lines are summed",
			log:  strptr("*** Tuffy exited at a after running for [1min, 0sec]\n*** Tuffy exited at b after running for [0min, 30sec]\n"),
			want: 90,
		},
		{
			name:    "no completion line",
			log:     strptr(">>> Grounding...\n"),
			wantErr: apperr.ErrEmpty,
		},
		{
			name:    "unparseable duration",
			log:     strptr("*** Tuffy exited at x after running for [forever]\n"),
			wantErr: apperr.ErrMalformed,
		},
		{
			name:    "missing log",
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.log != nil {
				writeFile(t, filepath.Join(dir, LearnLog), *tt.log)
			}

			got, err := NewTuffy().ExtractTiming(dir)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTuffy_LoadPredictions(t *testing.T) {
	tuffy := NewTuffy()

	t.Run("marginal output", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, tuffy.PredictionPath(dir),
			"0.9500\tHASCAT(\"p1\", \"ml\")\n0.0500\thasCat(\"p1\", \"db\")\n0.7000\tCITES(\"p1\", \"p2\")\n")

		f, err := tuffy.LoadPredictions(request(dir, "hasCat"))
		require.NoError(t, err)
		assert.Equal(t, 2, f.Len())
		assert.InDelta(t, 0.95, f.Value(frame.NewKey("p1", "ml")), 1e-9)
		assert.InDelta(t, 0.05, f.Value(frame.NewKey("p1", "db")), 1e-9)
	})

	t.Run("map output", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, tuffy.PredictionPath(dir), "TRUSTS(\"u1\", \"u2\")\nTRUSTS(\"u2\", \"u3\")\n")

		f, err := tuffy.LoadPredictions(request(dir, "trusts"))
		require.NoError(t, err)
		assert.Equal(t, 2, f.Len())
		assert.Equal(t, 1.0, f.Value(frame.NewKey("u2", "u3")))
	})

	t.Run("quoted commas", func(t *testing.T) {
		assert.Equal(t, []string{"a, b", "c"}, splitArgs(`"a, b", "c"`))
		assert.Equal(t, []string{"u1", "j1"}, splitArgs(`u1,j1`))
	})

	t.Run("garbage", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, tuffy.PredictionPath(dir), "0.5\tnot an atom\n")

		_, err := tuffy.LoadPredictions(request(dir, "trusts"))
		assert.True(t, errors.Is(err, apperr.ErrMalformed))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := tuffy.LoadPredictions(request(t.TempDir(), "trusts"))
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})
}

func strptr(s string) *string {
	return &s
}
