package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/assessgen/internal/config"
	"github.com/aliskhannn/assessgen/internal/infra/postgres"
	"github.com/aliskhannn/assessgen/internal/logger"
	"github.com/aliskhannn/assessgen/internal/repository"
	"github.com/aliskhannn/assessgen/internal/service"
	"github.com/aliskhannn/assessgen/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prompts, err := repository.NewEmbeddedPromptRepository()
	if err != nil {
		lg.Fatal("failed to load prompt tables", zap.Error(err))
	}
	lg.Debug("prompt tables loaded", zap.Int("tables", prompts.Len()))

	var (
		sinks  []service.Sink
		memory *storage.MemoryStore
		dbSink *service.DatabaseSink
	)
	if cfg.DryRun {
		memory = storage.NewMemoryStore()
		sinks = append(sinks, memory)
		lg.Info("dry run: banks are kept in memory")
	} else {
		sinks = append(sinks, storage.NewCSVWriter(cfg.OutputDir))

		if cfg.DB.Enabled() {
			pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
				MaxConns:        int32(cfg.DB.MaxConnections),
				MaxConnLifetime: cfg.DB.MaxConnLifetime,
			})
			if err != nil {
				lg.Fatal("failed to connect to database", zap.Error(err))
			}
			defer pool.Close()

			dbSink = service.NewDatabaseSink(postgres.NewTransactor(pool))
			if err := dbSink.EnsureSchema(ctx); err != nil {
				lg.Fatal("failed to prepare database schema", zap.Error(err))
			}
			sinks = append(sinks, dbSink)
		}
	}

	bankService := service.NewBankService(prompts, sinks, cfg.Workers, lg)

	report, err := bankService.Run(ctx, cfg.Curricula)
	if err != nil {
		lg.Fatal("generation failed", zap.Error(err))
	}
	lg.Info("assessments generated",
		zap.String("output_dir", cfg.OutputDir),
		zap.Int("subtopics", report.Subtopics),
		zap.Int("rows", report.Rows),
	)
	if dbSink != nil {
		stored, err := dbSink.CountRun(ctx, report.Run)
		if err != nil {
			lg.Error("failed to count stored items", zap.Error(err))
		} else {
			lg.Info("items stored", zap.String("run_id", report.Run.ID.String()), zap.Int64("items", stored))
		}
	}
	if memory != nil {
		for _, file := range memory.Files() {
			bank, _ := memory.Get(file)
			lg.Info("dry run bank",
				zap.String("file", file),
				zap.String("path", bank.Subtopic.Path()),
				zap.Int("rows", len(bank.Rows)),
			)
		}
	}

	if cfg.Schedule == "" {
		return
	}

	if err := bankService.Schedule(ctx, cfg.Schedule, cfg.Curricula); err != nil {
		lg.Fatal("failed to schedule generation", zap.Error(err))
	}
	lg.Info("shutdown signal received")
}
