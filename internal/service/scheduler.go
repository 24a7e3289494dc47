package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

// Schedule regenerates the banks on spec, a standard cron expression in UTC,
// until ctx is done. A run that is still going when the next one is due is
// not overlapped; the due run is skipped. Failed runs are logged.
func (s *BankService) Schedule(ctx context.Context, spec string, curricula []string) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err := c.AddFunc(spec, func() {
		s.logger.Info("cron triggered: regenerating banks")
		if _, err := s.Run(ctx, curricula); err != nil {
			s.logger.Error("scheduled run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidSchedule, spec, err)
	}

	c.Start()
	s.logger.Info("scheduler started", zap.String("schedule", spec))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("scheduler stopped")

	return nil
}
