package aggregate

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary is the mean and sample standard deviation of per-fold values.
// Mean is NaN without samples; StdDev is NaN with fewer than two.
type Summary struct {
	Mean    float64
	StdDev  float64
	Samples int
}

func Summarize(values []float64) Summary {
	s := Summary{Mean: math.NaN(), StdDev: math.NaN(), Samples: len(values)}
	switch len(values) {
	case 0:
	case 1:
		s.Mean = values[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	}
	return s
}
