package companycost

import (
	"github.com/revendahq/revenda/internal/companycost/repository"
	"github.com/revendahq/revenda/internal/companycost/service"
	"go.uber.org/fx"
)

var Module = fx.Module("companycost.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
