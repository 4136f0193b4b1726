// Package scheduler keeps the financial report warm. The report is cheap to
// serve once memoized but expensive to build on a cold start; the scheduler
// rebuilds the current year in the background so the first dashboard request
// after a deploy or a data change does not pay the full projection cost.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/revendahq/revenda/internal/clock"
	reportdomain "github.com/revendahq/revenda/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("scheduler requires a log, clock and report service")

type Params struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	ReportSvc reportdomain.Service
}

type Scheduler struct {
	log       *zap.Logger
	clock     clock.Clock
	reportSvc reportdomain.Service
	interval  time.Duration
}

func New(p Params, interval time.Duration) (*Scheduler, error) {
	if p.Log == nil || p.Clock == nil || p.ReportSvc == nil {
		return nil, ErrInvalidConfig
	}
	return &Scheduler{
		log:       p.Log.Named("scheduler"),
		clock:     p.Clock,
		reportSvc: p.ReportSvc,
		interval:  interval,
	}, nil
}

// RunOnce rebuilds the current-year report. In January the previous year is
// still the one on everyone's screen, so it is warmed as well.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	now := s.clock.Now()

	years := []int{now.Year()}
	if now.Month() == time.January {
		years = append(years, now.Year()-1)
	}

	for _, year := range years {
		if _, err := s.reportSvc.Financial(ctx, year); err != nil {
			s.log.Warn("report warm-up failed",
				zap.Int("year", year),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
		s.log.Warn("initial warm-up failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
				s.log.Warn("warm-up failed", zap.Error(err))
			}
		}
	}
}
