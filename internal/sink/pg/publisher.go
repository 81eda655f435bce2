package pg

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linqs/srinivasan-mlj20/internal/report"
)

//go:embed schema.sql
var schema string

var (
	performanceColumns = []string{"run_id", "position", "dataset", "evaluator", "wl_method", "acquisition_function", "mean", "standard_deviation", "samples"}
	timingColumns      = []string{"run_id", "position", "dataset", "evaluator", "wl_method", "acquisition_function", "mean_wall_clock_time", "wall_clock_time_standard_deviation", "samples"}
)

// Publisher copies report tables into PostgreSQL, one transaction per run.
type Publisher struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewPublisher(ctx context.Context, pool *ConnectionPool) (*Publisher, error) {
	p := &Publisher{pool: pool, db: pool.GetConn()}
	if err := p.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create study tables: %w", err)
	}
	return nil
}

func (p *Publisher) Publish(ctx context.Context, r *report.Report) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO study_runs (run_id, method, generated_at) VALUES ($1, $2, $3)`,
		r.RunID, r.Method, r.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	perf := make([][]any, len(r.Performance))
	for i, row := range r.Performance {
		c := row.Condition
		perf[i] = []any{r.RunID, i, c.Dataset, c.Evaluator, c.WlMethod, c.Acquisition, nullable(row.Mean), nullable(row.StdDev), row.Samples}
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"study_performance"}, performanceColumns, pgx.CopyFromRows(perf)); err != nil {
		return fmt.Errorf("failed to copy performance rows: %w", err)
	}

	timing := make([][]any, len(r.Timing))
	for i, row := range r.Timing {
		c := row.Condition
		timing[i] = []any{r.RunID, i, c.Dataset, c.Evaluator, c.WlMethod, c.Acquisition, nullable(row.MeanWall), nullable(row.StdDevWall), row.Samples}
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"study_timing"}, timingColumns, pgx.CopyFromRows(timing)); err != nil {
		return fmt.Errorf("failed to copy timing rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	slog.Info("report published", "sink", "pg", "run_id", r.RunID, "performance", len(perf), "timing", len(timing))
	return nil
}

func (p *Publisher) Healthy(ctx context.Context) bool {
	return p.pool.Ping(ctx) == nil
}

func (p *Publisher) Close() {
	p.pool.Close()
}

// nullable maps NaN to SQL NULL.
func nullable(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
