package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/billing"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	"github.com/revendahq/revenda/internal/override/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         domain.Repository
	ContractRepo contractdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         domain.Repository
	contractRepo contractdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("override.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		contractRepo: p.ContractRepo,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertOverrideRequest) (domain.RevenueOverride, error) {
	contractID, err := snowflake.ParseString(strings.TrimSpace(req.ContractID))
	if err != nil {
		return domain.RevenueOverride{}, domain.ErrInvalidID
	}
	if req.Year < 2000 || req.Year > 2100 || req.Month < 1 || req.Month > 12 {
		return domain.RevenueOverride{}, domain.ErrInvalidPeriod
	}

	var override domain.RevenueOverride
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contract, err := s.contractRepo.FindByID(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return domain.ErrContractNotFound
		}

		now := time.Now().UTC()
		override = domain.RevenueOverride{
			ID:          s.genID.Generate(),
			ContractID:  contractID,
			Year:        req.Year,
			Month:       req.Month,
			AmountCents: billing.ParseAmount(req.Value),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return s.repo.Upsert(ctx, tx, &override)
	})
	if err != nil {
		return domain.RevenueOverride{}, err
	}

	s.log.Info("revenue override recorded",
		zap.String("contract_id", contractID.String()),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int64("amount_cents", override.AmountCents),
	)
	return override, nil
}

func (s *Service) ListByContract(ctx context.Context, id string) ([]domain.RevenueOverride, error) {
	contractID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListByContract(ctx, s.db, contractID)
}

func (s *Service) Delete(ctx context.Context, id string, year, month int) error {
	contractID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	if month < 1 || month > 12 {
		return domain.ErrInvalidPeriod
	}
	return s.repo.Delete(ctx, s.db, contractID, year, month)
}
