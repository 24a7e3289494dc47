package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/assessgen/internal/curriculum"
	"github.com/aliskhannn/assessgen/internal/domain/entities"
)

const defaultWorkers = 4

// Report summarizes a completed run.
type Report struct {
	Run       entities.Run
	Subtopics int
	Rows      int
	Locations []string // one per bank and sink, in publish order
}

// BankService generates question banks and hands them to its sinks.
type BankService struct {
	prompts curriculum.PromptSource
	sinks   []Sink
	workers int
	logger  *zap.Logger
}

// NewBankService creates a BankService. A non-positive workers value falls
// back to the default of 4.
func NewBankService(
	prompts curriculum.PromptSource,
	sinks []Sink,
	workers int,
	logger *zap.Logger,
) *BankService {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &BankService{
		prompts: prompts,
		sinks:   sinks,
		workers: workers,
		logger:  logger,
	}
}

// Run builds every subtopic of the named curricula and publishes the banks.
func (s *BankService) Run(ctx context.Context, curricula []string) (*Report, error) {
	defs, err := curriculum.Catalog(s.prompts, curricula...)
	if err != nil {
		return nil, err
	}
	return s.RunDefinitions(ctx, defs)
}

// RunDefinitions builds and publishes defs under a new run. Nothing is
// published unless every bank builds and validates.
func (s *BankService) RunDefinitions(ctx context.Context, defs []curriculum.Definition) (*Report, error) {
	run := entities.NewRun()
	log := s.logger.With(zap.String("run_id", run.ID.String()))
	log.Info("run started", zap.Int("subtopics", len(defs)))

	banks, err := s.Build(ctx, defs)
	if err != nil {
		log.Error("build failed", zap.Error(err))
		return nil, err
	}

	locations, err := s.Publish(ctx, run, banks)
	if err != nil {
		log.Error("publish failed", zap.Error(err))
		return nil, err
	}

	report := &Report{
		Run:       run,
		Subtopics: len(banks),
		Locations: locations,
	}
	for _, b := range banks {
		report.Rows += len(b.Rows)
	}

	log.Info("run completed",
		zap.Int("subtopics", report.Subtopics),
		zap.Int("rows", report.Rows),
		zap.Int("outputs", len(report.Locations)),
		zap.Duration("took", time.Since(run.StartedAt)),
	)

	return report, nil
}

// Build generates every definition concurrently and returns the banks in
// definition order. The first generator or validation error cancels the
// remaining work.
func (s *BankService) Build(ctx context.Context, defs []curriculum.Definition) ([]entities.Bank, error) {
	banks := make([]entities.Bank, len(defs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, def := range defs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rows, err := def.Generate(def.Subtopic)
			if err != nil {
				return fmt.Errorf("generate %s: %w", def.Subtopic, err)
			}

			bank := entities.Bank{Subtopic: def.Subtopic, Rows: rows}
			if err := bank.Validate(); err != nil {
				return err
			}

			banks[i] = bank
			s.logger.Debug("bank built",
				zap.String("subtopic", def.Subtopic.String()),
				zap.Int("rows", len(rows)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return banks, nil
}

// Publish saves banks to every sink, bank by bank, and stops at the first
// failure.
func (s *BankService) Publish(ctx context.Context, run entities.Run, banks []entities.Bank) ([]string, error) {
	locations := make([]string, 0, len(banks)*len(s.sinks))

	for _, bank := range banks {
		for _, sink := range s.sinks {
			if err := ctx.Err(); err != nil {
				return locations, err
			}

			loc, err := sink.Save(ctx, run, bank)
			if err != nil {
				return locations, fmt.Errorf("publish %s: %w", bank.Subtopic, err)
			}
			locations = append(locations, loc)

			s.logger.Info("bank written",
				zap.String("run_id", run.ID.String()),
				zap.String("subtopic", bank.Subtopic.String()),
				zap.Int("rows", len(bank.Rows)),
				zap.String("path", loc),
			)
		}
	}

	return locations, nil
}
