package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/billing"
	"github.com/revendahq/revenda/internal/companycost/domain"
	"github.com/revendahq/revenda/pkg/db"
	"github.com/revendahq/revenda/pkg/db/option"
	"github.com/revendahq/revenda/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
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
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	sectionRepo  repository.Store[domain.FinancialSection]
	categoryRepo repository.Store[domain.FinancialCategory]
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("companycost.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		sectionRepo:  repository.ProvideStore[domain.FinancialSection](p.DB),
		categoryRepo: repository.ProvideStore[domain.FinancialCategory](p.DB),
	}
}

func (s *Service) CreateCost(ctx context.Context, req domain.CreateCostRequest) (domain.CompanyCost, error) {
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		return domain.CompanyCost{}, domain.ErrInvalidCategory
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.CompanyCost{}, domain.ErrInvalidDescription
	}

	now := time.Now().UTC()
	cost := domain.CompanyCost{
		ID:               s.genID.Generate(),
		Category:         category,
		Description:      description,
		MonthlyCostCents: billing.ParseAmount(req.MonthlyCost),
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.InsertCost(ctx, s.db, &cost); err != nil {
		return domain.CompanyCost{}, err
	}
	return cost, nil
}

func (s *Service) ListCosts(ctx context.Context, activeOnly bool) ([]domain.CompanyCost, error) {
	return s.repo.ListCosts(ctx, s.db, activeOnly)
}

func (s *Service) UpdateCost(ctx context.Context, req domain.UpdateCostRequest) (domain.CompanyCost, error) {
	costID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return domain.CompanyCost{}, domain.ErrInvalidID
	}

	var updated domain.CompanyCost
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cost, err := s.repo.FindCostByID(ctx, tx, costID)
		if err != nil {
			return err
		}
		if cost == nil {
			return domain.ErrNotFound
		}

		if req.Category != nil {
			category := strings.ToLower(strings.TrimSpace(*req.Category))
			if category == "" {
				return domain.ErrInvalidCategory
			}
			cost.Category = category
		}
		if req.Description != nil {
			description := strings.TrimSpace(*req.Description)
			if description == "" {
				return domain.ErrInvalidDescription
			}
			cost.Description = description
		}
		if req.MonthlyCost != nil {
			cost.MonthlyCostCents = billing.ParseAmount(*req.MonthlyCost)
		}
		if req.IsActive != nil {
			cost.IsActive = *req.IsActive
		}

		cost.UpdatedAt = time.Now().UTC()
		if err := tx.Save(cost).Error; err != nil {
			return err
		}
		updated = *cost
		return nil
	})
	if err != nil {
		return domain.CompanyCost{}, err
	}
	return updated, nil
}

func (s *Service) CreateSection(ctx context.Context, req domain.CreateSectionRequest) (domain.FinancialSection, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FinancialSection{}, domain.ErrInvalidName
	}

	section := domain.FinancialSection{
		ID:        s.genID.Generate(),
		Name:      name,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sectionRepo.Create(ctx, &section); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.FinancialSection{}, domain.ErrDuplicateName
		}
		return domain.FinancialSection{}, err
	}
	return section, nil
}

func (s *Service) ListSections(ctx context.Context) ([]domain.FinancialSection, error) {
	rows, err := s.sectionRepo.Find(ctx, &domain.FinancialSection{},
		option.WithOrder("sort_order asc, name asc"))
	if err != nil {
		return nil, err
	}
	sections := make([]domain.FinancialSection, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, *row)
	}
	return sections, nil
}

func (s *Service) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.FinancialCategory, error) {
	sectionID, err := snowflake.ParseString(strings.TrimSpace(req.SectionID))
	if err != nil {
		return domain.FinancialCategory{}, domain.ErrInvalidID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FinancialCategory{}, domain.ErrInvalidName
	}

	var category domain.FinancialCategory
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		section, err := s.sectionRepo.WithTrx(tx).FindOne(ctx, &domain.FinancialSection{ID: sectionID})
		if err != nil {
			return err
		}
		if section == nil {
			return domain.ErrSectionNotFound
		}

		category = domain.FinancialCategory{
			ID:        s.genID.Generate(),
			SectionID: sectionID,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		return s.categoryRepo.WithTrx(tx).Create(ctx, &category)
	})
	if err != nil {
		return domain.FinancialCategory{}, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context, sectionID string) ([]domain.FinancialCategory, error) {
	var id snowflake.ID
	if trimmed := strings.TrimSpace(sectionID); trimmed != "" {
		parsed, err := snowflake.ParseString(trimmed)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		id = parsed
	}
	rows, err := s.categoryRepo.Find(ctx, &domain.FinancialCategory{SectionID: id},
		option.WithOrder("name asc"))
	if err != nil {
		return nil, err
	}
	categories := make([]domain.FinancialCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, *row)
	}
	return categories, nil
}
