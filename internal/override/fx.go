package override

import (
	"github.com/revendahq/revenda/internal/override/repository"
	"github.com/revendahq/revenda/internal/override/service"
	"go.uber.org/fx"
)

var Module = fx.Module("override.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
