// Command acqstudy aggregates the fold results of a weight learning
// acquisition study into per-condition performance and timing tables.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/linqs/srinivasan-mlj20/internal/aggregate"
	"github.com/linqs/srinivasan-mlj20/internal/method"
	"github.com/linqs/srinivasan-mlj20/internal/report"
	"github.com/linqs/srinivasan-mlj20/internal/server"
	"github.com/linqs/srinivasan-mlj20/internal/sink"
	"github.com/linqs/srinivasan-mlj20/internal/study"
	"github.com/linqs/srinivasan-mlj20/internal/truth"
	"github.com/linqs/srinivasan-mlj20/pkg/config/env"
	pkgserver "github.com/linqs/srinivasan-mlj20/pkg/server"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(1)
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rpt, err := aggregateStudy(cfg)
	if err != nil {
		slog.Error("Aggregation failed", "method", cfg.Method, "error", err)
		os.Exit(1)
	}

	if !publish(ctx, cfg, rpt) {
		stop()
		os.Exit(1)
	}
}

// aggregateStudy reduces every condition and writes the CSV tables. Nothing
// is written unless every condition was reduced.
func aggregateStudy(cfg cliConfig) (*report.Report, error) {
	adapter, err := method.ForName(cfg.Method)
	if err != nil {
		return nil, err
	}

	properties := study.DefaultProperties()
	if cfg.DatasetsPath != "" {
		properties, err = study.LoadProperties(cfg.DatasetsPath)
		if err != nil {
			return nil, err
		}
	}

	layout := study.NewLayout(cfg.Base, adapter.Name())
	experiments, err := study.Walk(layout.Root())
	if err != nil {
		return nil, err
	}
	slog.Info("Study discovered", "root", layout.Root(), "conditions", len(experiments))

	reducer := aggregate.NewReducer(
		layout,
		adapter,
		truth.NewLoader(layout.DataRoot()),
		properties,
		aggregate.WithSkipWriter(os.Stdout),
	)

	rpt := report.New(adapter.Name())
	if err := reducer.Run(experiments, rpt); err != nil {
		return nil, err
	}

	if err := report.WriteCSV(rpt, layout.Root()); err != nil {
		return nil, err
	}
	slog.Info("Report written",
		"performance", layout.PerformancePath(),
		"timing", layout.TimingPath())

	return rpt, nil
}

// publish runs the optional outputs. It reports false if any of them failed.
func publish(ctx context.Context, cfg cliConfig, rpt *report.Report) bool {
	ok := true

	if cfg.Table {
		report.WriteTable(rpt, os.Stdout)
	}

	if cfg.JSONPath != "" {
		if err := report.WriteJSON(rpt, cfg.JSONPath); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			ok = false
		} else {
			slog.Info("JSON report written", "path", cfg.JSONPath, "run_id", rpt.RunID)
		}
	}

	if err := env.LoadDotEnv(cfg.EnvPath); err != nil {
		slog.Error("Failed to load .env", "error", err)
		return false
	}

	publisher, err := connectSink(ctx)
	if err != nil {
		slog.Error("Failed to connect result sink", "error", err)
		ok = false
	}
	if publisher != nil {
		defer publisher.Close()
		if err := publisher.Publish(ctx, rpt); err != nil {
			slog.Error("Failed to publish report", "error", err)
			ok = false
		}
	}

	if cfg.ServeAddr != "" {
		if err := serve(ctx, cfg.ServeAddr, rpt, publisher); err != nil {
			slog.Error("Report server failed", "error", err)
			ok = false
		}
	}

	return ok
}

func connectSink(ctx context.Context) (sink.Publisher, error) {
	sinkCfg, err := sink.LoadEnv()
	if err != nil {
		return nil, err
	}
	return sink.New(ctx, sinkCfg)
}

func serve(ctx context.Context, addr string, rpt *report.Report, publisher sink.Publisher) error {
	sCfg, err := server.LoadConfig(addr)
	if err != nil {
		return err
	}

	var health pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if publisher != nil {
		health = publisher
	}

	store := server.NewStore()
	store.Set(rpt)

	s := server.New(sCfg, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")
	server.NewReportRouter(s.Echo, store).Bind()

	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
