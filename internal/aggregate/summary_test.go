package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("no samples", func(t *testing.T) {
		s := Summarize(nil)
		assert.True(t, math.IsNaN(s.Mean))
		assert.True(t, math.IsNaN(s.StdDev))
		assert.Equal(t, 0, s.Samples)
	})

	t.Run("single sample", func(t *testing.T) {
		s := Summarize([]float64{0.8})
		assert.Equal(t, 0.8, s.Mean)
		assert.True(t, math.IsNaN(s.StdDev))
		assert.Equal(t, 1, s.Samples)
	})

	t.Run("sample standard deviation", func(t *testing.T) {
		s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		assert.InDelta(t, 5.0, s.Mean, 1e-12)
		assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-12)
		assert.Equal(t, 8, s.Samples)
	})

	t.Run("identical values", func(t *testing.T) {
		s := Summarize([]float64{3, 3, 3})
		assert.Equal(t, 3.0, s.Mean)
		assert.Equal(t, 0.0, s.StdDev)
	})
}
