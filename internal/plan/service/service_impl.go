package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/billing"
	"github.com/revendahq/revenda/internal/plan/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("plan.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePlanRequest) (domain.Plan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Plan{}, domain.ErrInvalidName
	}

	employeeRange := strings.TrimSpace(req.EmployeeRange)
	if _, _, ok := billing.ParseEmployeeRange(employeeRange); !ok {
		return domain.Plan{}, domain.ErrInvalidEmployeeRange
	}

	if req.LicenseExemptionMonths < 0 {
		return domain.Plan{}, domain.ErrInvalidExemptionMonths
	}

	allowedCNPJs := req.AllowedCNPJs
	if allowedCNPJs <= 0 {
		allowedCNPJs = 1
	}

	now := time.Now().UTC()
	plan := domain.Plan{
		ID:                     s.genID.Generate(),
		Name:                   name,
		EmployeeRange:          employeeRange,
		MonthlyPriceCents:      billing.ParseAmount(req.MonthlyPrice),
		SemestralPriceCents:    billing.ParseAmount(req.SemestralPrice),
		AnnualPriceCents:       billing.ParseAmount(req.AnnualPrice),
		AllowedCNPJs:           allowedCNPJs,
		LicenseCostCents:       billing.ParseAmount(req.LicenseCost),
		LicenseExemptionMonths: req.LicenseExemptionMonths,
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repo.Insert(ctx, s.db, &plan); err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Plan, error) {
	planID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Plan{}, domain.ErrInvalidID
	}

	plan, err := s.repo.FindByID(ctx, s.db, planID)
	if err != nil {
		return domain.Plan{}, err
	}
	if plan == nil {
		return domain.Plan{}, domain.ErrNotFound
	}
	return *plan, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Plan, error) {
	return s.repo.List(ctx, s.db, activeOnly)
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePlanRequest) (domain.Plan, error) {
	planID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return domain.Plan{}, domain.ErrInvalidID
	}

	var updated domain.Plan
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := s.repo.FindByID(ctx, tx, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.ErrNotFound
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return domain.ErrInvalidName
			}
			plan.Name = name
		}
		if req.EmployeeRange != nil {
			employeeRange := strings.TrimSpace(*req.EmployeeRange)
			if _, _, ok := billing.ParseEmployeeRange(employeeRange); !ok {
				return domain.ErrInvalidEmployeeRange
			}
			plan.EmployeeRange = employeeRange
		}
		if req.MonthlyPrice != nil {
			plan.MonthlyPriceCents = billing.ParseAmount(*req.MonthlyPrice)
		}
		if req.SemestralPrice != nil {
			plan.SemestralPriceCents = billing.ParseAmount(*req.SemestralPrice)
		}
		if req.AnnualPrice != nil {
			plan.AnnualPriceCents = billing.ParseAmount(*req.AnnualPrice)
		}
		if req.AllowedCNPJs != nil && *req.AllowedCNPJs > 0 {
			plan.AllowedCNPJs = *req.AllowedCNPJs
		}
		if req.LicenseCost != nil {
			plan.LicenseCostCents = billing.ParseAmount(*req.LicenseCost)
		}
		if req.LicenseExemptionMonths != nil {
			if *req.LicenseExemptionMonths < 0 {
				return domain.ErrInvalidExemptionMonths
			}
			plan.LicenseExemptionMonths = *req.LicenseExemptionMonths
		}
		if req.IsActive != nil {
			plan.IsActive = *req.IsActive
		}

		plan.UpdatedAt = time.Now().UTC()
		if err := tx.Save(plan).Error; err != nil {
			return err
		}
		updated = *plan
		return nil
	})
	if err != nil {
		return domain.Plan{}, err
	}
	return updated, nil
}

func (s *Service) CreateAddon(ctx context.Context, req domain.CreateAddonRequest) (domain.PlanAddon, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.PlanAddon{}, domain.ErrInvalidName
	}

	unitType := domain.AddonUnitType(strings.TrimSpace(req.UnitType))
	if unitType != domain.AddonUnitEmployee && unitType != domain.AddonUnitCNPJ {
		return domain.PlanAddon{}, domain.ErrInvalidUnitType
	}

	pricingType := domain.AddonPricingType(strings.TrimSpace(req.PricingType))
	if pricingType != domain.AddonPricingPerUnit && pricingType != domain.AddonPricingPackage {
		return domain.PlanAddon{}, domain.ErrInvalidPricingType
	}

	var ranges datatypes.JSON
	if len(req.PackageRanges) > 0 {
		encoded, err := json.Marshal(req.PackageRanges)
		if err != nil {
			return domain.PlanAddon{}, err
		}
		ranges = datatypes.JSON(encoded)
	}

	now := time.Now().UTC()
	addon := domain.PlanAddon{
		ID:                s.genID.Generate(),
		Name:              name,
		UnitType:          unitType,
		PricingType:       pricingType,
		PricePerUnitCents: billing.ParseAmount(req.PricePerUnit),
		LicenseCostCents:  billing.ParseAmount(req.LicenseCost),
		PackageIncrement:  req.PackageIncrement,
		PackageRanges:     ranges,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.InsertAddon(ctx, s.db, &addon); err != nil {
		return domain.PlanAddon{}, err
	}
	return addon, nil
}

func (s *Service) ListAddons(ctx context.Context, activeOnly bool) ([]domain.PlanAddon, error) {
	return s.repo.ListAddons(ctx, s.db, activeOnly)
}
