//go:build integration

package es

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linqs/srinivasan-mlj20/internal/report"
	"github.com/linqs/srinivasan-mlj20/internal/study"
	pkgtesting "github.com/linqs/srinivasan-mlj20/pkg/testing"
)

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	p, err := NewPublisher(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "acquisition_study_test",
	})
	require.NoError(t, err)
	assert.True(t, p.Healthy(ctx))

	r := report.New("psl")
	c := study.Condition{Dataset: "cora", WlMethod: "MLE", Evaluator: "Discrete", Acquisition: "entropy"}
	r.AddPerformance(report.PerformanceRow{Condition: c, Mean: 0.9, StdDev: math.Sqrt(0.02), Samples: 2})
	r.AddTiming(report.TimingRow{Condition: c, MeanWall: 1.5, StdDevWall: math.NaN(), Samples: 1})

	require.NoError(t, p.Publish(ctx, r))

	_, err = p.client.Indices.Refresh().Index(p.indexName).Do(ctx)
	require.NoError(t, err)

	res, err := p.client.Count().Index(p.indexName).Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Count)

	// A second run with the same index is accepted.
	require.NoError(t, p.EnsureIndex(ctx))
}
