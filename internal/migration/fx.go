package migration

import (
	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	companycostdomain "github.com/revendahq/revenda/internal/companycost/domain"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	overridedomain "github.com/revendahq/revenda/internal/override/domain"
	plandomain "github.com/revendahq/revenda/internal/plan/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Schema is created on startup so the service is usable out of the box for
// local and self-hosted environments.
var Module = fx.Module("migrations",
	fx.Invoke(AutoMigrate),
)

func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&contractdomain.Contract{},
		&contractdomain.ContractStatusEntry{},
		&adjustmentdomain.Adjustment{},
		&plandomain.Plan{},
		&plandomain.PlanAddon{},
		&overridedomain.RevenueOverride{},
		&companycostdomain.FinancialSection{},
		&companycostdomain.FinancialCategory{},
		&companycostdomain.CompanyCost{},
	)
}
