package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"

	"github.com/linqs/srinivasan-mlj20/internal/report"
)

// Publisher bulk indexes report rows, one document per row.
type Publisher struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewPublisher(ctx context.Context, config ClientConfig) (*Publisher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	p := &Publisher{
		client:    client,
		indexName: config.IndexName,
	}

	if err := p.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, r *report.Report) error {
	docs := documents(r)
	if len(docs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         p.indexName,
		Client:        p.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID())
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID(),
			Body:       bytes.NewReader(body),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID())
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("report published",
		"sink", "es",
		"run_id", r.RunID,
		"successful", successful.Load(),
		"failed", failed.Load(),
		"index", p.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d rows", n, len(docs))
	}
	return nil
}

func (p *Publisher) EnsureIndex(ctx context.Context) error {
	exists, err := p.client.Indices.Exists(p.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", p.indexName)
		return nil
	}

	mappings := buildMapping()
	res, err := p.client.Indices.Create(p.indexName).Mappings(&mappings).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", p.indexName)
	return nil
}

func (p *Publisher) Healthy(ctx context.Context) bool {
	ok, err := p.client.Ping().Do(ctx)
	return err == nil && ok
}

func (p *Publisher) Close() {}
