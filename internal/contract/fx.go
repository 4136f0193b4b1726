package contract

import (
	"github.com/revendahq/revenda/internal/contract/repository"
	"github.com/revendahq/revenda/internal/contract/service"
	"go.uber.org/fx"
)

var Module = fx.Module("contract.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
