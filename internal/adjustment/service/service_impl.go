package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/adjustment/domain"
	"github.com/revendahq/revenda/internal/billing"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
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
		log:          p.Log.Named("adjustment.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		contractRepo: p.ContractRepo,
	}
}

// Create records a value renegotiation. The previous value is the contract's
// effective value in the month the adjustment takes effect, so percentage
// adjustments compound on top of earlier ones.
func (s *Service) Create(ctx context.Context, req domain.CreateAdjustmentRequest) (domain.Adjustment, error) {
	contractID, err := snowflake.ParseString(strings.TrimSpace(req.ContractID))
	if err != nil {
		return domain.Adjustment{}, domain.ErrInvalidID
	}

	adjustmentType := domain.AdjustmentType(strings.TrimSpace(req.AdjustmentType))
	if adjustmentType != domain.AdjustmentTypeValue && adjustmentType != domain.AdjustmentTypePercentage {
		return domain.Adjustment{}, domain.ErrInvalidAdjustmentType
	}

	effectiveDate, ok := billing.ParseDate(req.EffectiveDate)
	if !ok {
		return domain.Adjustment{}, domain.ErrInvalidEffectiveDate
	}

	rawValue := strings.TrimSpace(req.AdjustmentValue)
	if rawValue == "" {
		return domain.Adjustment{}, domain.ErrInvalidAdjustmentValue
	}

	var adjustment domain.Adjustment
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contract, err := s.contractRepo.FindByID(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return domain.ErrContractNotFound
		}

		existing, err := s.repo.ListByContract(ctx, tx, contractID)
		if err != nil {
			return err
		}

		previousCents := billing.EffectiveValue(
			contract.MonthlyValue,
			contract.PlanCadence,
			existing,
			billing.MonthOf(effectiveDate),
		)

		var newCents int64
		switch adjustmentType {
		case domain.AdjustmentTypeValue:
			newCents = billing.ParseAmount(rawValue)
			if newCents <= 0 {
				return domain.ErrInvalidAdjustmentValue
			}
		case domain.AdjustmentTypePercentage:
			pct := billing.ParseAmount(rawValue)
			if pct == 0 {
				return domain.ErrInvalidAdjustmentValue
			}
			newCents = billing.RoundCents(float64(previousCents) * (1 + float64(pct)/10000))
			if newCents < 0 {
				newCents = 0
			}
		}

		adjustment = domain.Adjustment{
			ID:              s.genID.Generate(),
			ContractID:      contractID,
			AdjustmentType:  adjustmentType,
			AdjustmentValue: rawValue,
			PreviousValue:   billing.FormatAmount(previousCents),
			NewValue:        billing.FormatAmount(newCents),
			EffectiveDate:   billing.FormatDate(effectiveDate),
			CreatedAt:       time.Now().UTC(),
		}
		return s.repo.Insert(ctx, tx, &adjustment)
	})
	if err != nil {
		return domain.Adjustment{}, err
	}

	s.log.Info("adjustment recorded",
		zap.String("contract_id", contractID.String()),
		zap.String("type", string(adjustmentType)),
		zap.String("effective_date", adjustment.EffectiveDate),
		zap.String("new_value", adjustment.NewValue),
	)
	return adjustment, nil
}

func (s *Service) ListByContract(ctx context.Context, id string) ([]domain.Adjustment, error) {
	contractID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListByContract(ctx, s.db, contractID)
}
