package adjustment

import (
	"github.com/revendahq/revenda/internal/adjustment/repository"
	"github.com/revendahq/revenda/internal/adjustment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("adjustment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
