package plan

import (
	"github.com/revendahq/revenda/internal/plan/repository"
	"github.com/revendahq/revenda/internal/plan/service"
	"go.uber.org/fx"
)

var Module = fx.Module("plan.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
