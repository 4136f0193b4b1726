package scheduler

import (
	"context"
	"time"

	"github.com/revendahq/revenda/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("scheduler",
	fx.Provide(Provide),
	fx.Invoke(Run),
)

func Provide(p Params, cfg config.Config) (*Scheduler, error) {
	return New(p, time.Duration(cfg.ReportWarmIntervalSeconds)*time.Second)
}

// Run starts the warm-up loop. A non-positive interval disables it, which is
// the default; operators opt in per deployment.
func Run(lc fx.Lifecycle, sched *Scheduler) {
	if sched.interval <= 0 {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())

			go sched.RunForever(ctx)

			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					cancel()
					return nil
				},
			})

			return nil
		},
	})
}
