package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/revendahq/revenda/internal/clock"
	reportdomain "github.com/revendahq/revenda/internal/report/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reportServiceStub struct {
	years []int
	err   error
}

func (s *reportServiceStub) Financial(_ context.Context, year int) (reportdomain.FinancialReport, error) {
	s.years = append(s.years, year)
	return reportdomain.FinancialReport{Year: year}, s.err
}

func (s *reportServiceStub) ContractProjection(context.Context, string, int) (reportdomain.ContractProjection, error) {
	return reportdomain.ContractProjection{}, nil
}

func newTestScheduler(t *testing.T, fake *clock.FakeClock, stub *reportServiceStub) *Scheduler {
	sched, err := New(Params{
		Log:       zap.NewNop(),
		Clock:     fake,
		ReportSvc: stub,
	}, time.Minute)
	require.NoError(t, err)
	return sched
}

func TestRunOnceWarmsCurrentYear(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	stub := &reportServiceStub{}
	sched := newTestScheduler(t, fake, stub)

	require.NoError(t, sched.RunOnce(context.Background()))
	assert.Equal(t, []int{2024}, stub.years)
}

func TestRunOnceWarmsPreviousYearInJanuary(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	stub := &reportServiceStub{}
	sched := newTestScheduler(t, fake, stub)

	require.NoError(t, sched.RunOnce(context.Background()))
	assert.Equal(t, []int{2025, 2024}, stub.years)
}

func TestRunOncePropagatesBuildFailure(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	stub := &reportServiceStub{err: errors.New("db gone")}
	sched := newTestScheduler(t, fake, stub)

	assert.Error(t, sched.RunOnce(context.Background()))
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(Params{Log: zap.NewNop()}, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
