// Package seed bootstraps a demo catalog for local and evaluation
// deployments: the upstream plan tiers, the two addon units and a minimal
// cost structure. Production installs keep it disabled and manage the
// catalog through the API.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	companycostdomain "github.com/revendahq/revenda/internal/companycost/domain"
	"github.com/revendahq/revenda/internal/config"
	plandomain "github.com/revendahq/revenda/internal/plan/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("seed",
	fx.Invoke(Run),
)

func Run(cfg config.Config, db *gorm.DB) error {
	if !cfg.SeedDemoData {
		return nil
	}
	return EnsureDemoCatalog(db)
}

// EnsureDemoCatalog is idempotent: each entity is inserted only when a row
// with the same name does not exist yet.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePlans(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureAddons(ctx, tx, node); err != nil {
			return err
		}
		return ensureCostStructure(ctx, tx, node)
	})
}

func ensurePlans(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	plans := []plandomain.Plan{
		{
			Name:                "Essencial 1-10",
			EmployeeRange:       "1-10",
			MonthlyPriceCents:   19900,
			SemestralPriceCents: 107400,
			AnnualPriceCents:    190800,
			AllowedCNPJs:        1,
			LicenseCostCents:    4900,
		},
		{
			Name:                   "Profissional 11-50",
			EmployeeRange:          "11-50",
			MonthlyPriceCents:      39900,
			SemestralPriceCents:    215400,
			AnnualPriceCents:       382800,
			AllowedCNPJs:           2,
			LicenseCostCents:       9900,
			LicenseExemptionMonths: 3,
		},
		{
			Name:                   "Corporativo 51-200",
			EmployeeRange:          "51-200",
			MonthlyPriceCents:      89900,
			SemestralPriceCents:    485400,
			AnnualPriceCents:       862800,
			AllowedCNPJs:           5,
			LicenseCostCents:       19900,
			LicenseExemptionMonths: 3,
		},
	}

	for _, plan := range plans {
		var count int64
		err := tx.WithContext(ctx).
			Model(&plandomain.Plan{}).
			Where("name = ?", plan.Name).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		now := time.Now().UTC()
		plan.ID = node.Generate()
		plan.IsActive = true
		plan.CreatedAt = now
		plan.UpdatedAt = now
		if err := tx.WithContext(ctx).Create(&plan).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureAddons(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	addons := []plandomain.PlanAddon{
		{
			Name:              "CNPJ adicional",
			UnitType:          plandomain.AddonUnitCNPJ,
			PricingType:       plandomain.AddonPricingPerUnit,
			PricePerUnitCents: 4900,
			LicenseCostCents:  2500,
		},
		{
			Name:              "Pacote de colaboradores",
			UnitType:          plandomain.AddonUnitEmployee,
			PricingType:       plandomain.AddonPricingPackage,
			PricePerUnitCents: 9900,
			LicenseCostCents:  4900,
			PackageIncrement:  100,
		},
	}

	for _, addon := range addons {
		var count int64
		err := tx.WithContext(ctx).
			Model(&plandomain.PlanAddon{}).
			Where("name = ?", addon.Name).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		now := time.Now().UTC()
		addon.ID = node.Generate()
		addon.IsActive = true
		addon.CreatedAt = now
		addon.UpdatedAt = now
		if err := tx.WithContext(ctx).Create(&addon).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureCostStructure(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	err := tx.WithContext(ctx).
		Model(&companycostdomain.FinancialSection{}).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	sections := []struct {
		name       string
		categories []string
	}{
		{name: "Receitas", categories: []string{"revenue"}},
		{name: "Impostos", categories: []string{companycostdomain.CategoryTax}},
		{name: "Despesas Operacionais", categories: []string{"infrastructure", "payroll"}},
	}

	for order, section := range sections {
		row := companycostdomain.FinancialSection{
			ID:        node.Generate(),
			Name:      section.name,
			SortOrder: order,
			CreatedAt: now,
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		for _, category := range section.categories {
			cat := companycostdomain.FinancialCategory{
				ID:        node.Generate(),
				SectionID: row.ID,
				Name:      category,
				CreatedAt: now,
			}
			if err := tx.WithContext(ctx).Create(&cat).Error; err != nil {
				return err
			}
		}
	}

	cost := companycostdomain.CompanyCost{
		ID:          node.Generate(),
		Category:    companycostdomain.CategoryTax,
		Description: "ISS 5%",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return tx.WithContext(ctx).Create(&cost).Error
}
