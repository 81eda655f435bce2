// Package sink publishes finished reports to external stores.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/linqs/srinivasan-mlj20/internal/report"
	"github.com/linqs/srinivasan-mlj20/internal/sink/es"
	"github.com/linqs/srinivasan-mlj20/internal/sink/pg"
	"github.com/linqs/srinivasan-mlj20/pkg/utils"
)

type Type string

const (
	None Type = "none"
	PG   Type = "pg"
	ES   Type = "es"
)

// Publisher stores a report. Implementations keep every run, keyed by the
// report run id.
type Publisher interface {
	Publish(ctx context.Context, r *report.Report) error
	Healthy(ctx context.Context) bool
	Close()
}

type Config struct {
	Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads the sink selection from STUDY_SINK and the settings of the
// selected store. An unset STUDY_SINK disables publishing.
func LoadEnv() (*Config, error) {
	sinkType := Type(strings.ToLower(strings.TrimSpace(os.Getenv("STUDY_SINK"))))
	if sinkType == "" {
		sinkType = None
	}

	switch sinkType {
	case None:
		return &Config{Type: None}, nil

	case PG:
		cfg := &pg.PoolConfig{ConnStr: os.Getenv("PG_CONNECTION_STRING")}
		if cfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING is not set")
		}
		return &Config{Type: PG, Pg: cfg}, nil

	case ES:
		cfg := &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.IndexName == "" {
			cfg.IndexName = es.DefaultIndexName
		}
		if len(cfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Addresses, "indexName", cfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
		return &Config{Type: ES, Es: cfg}, nil

	default:
		slog.Error("Invalid STUDY_SINK environment variable value", "value", sinkType)
		return nil, fmt.Errorf("invalid STUDY_SINK value: %s, expected one of %v", sinkType, []Type{None, PG, ES})
	}
}

// New connects the configured publisher. It returns nil for None.
func New(ctx context.Context, cfg *Config) (Publisher, error) {
	switch cfg.Type {
	case None:
		return nil, nil

	case PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		p, err := pg.NewPublisher(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return p, nil

	case ES:
		p, err := es.NewPublisher(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return p, nil

	default:
		return nil, fmt.Errorf("unsupported sink type: %s", cfg.Type)
	}
}
