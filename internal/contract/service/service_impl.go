package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/billing"
	"github.com/revendahq/revenda/internal/contract/domain"
	"github.com/revendahq/revenda/pkg/db/pagination"
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
		log:   p.Log.Named("contract.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateContractRequest) (domain.Contract, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return domain.Contract{}, domain.ErrInvalidCompanyName
	}

	cadence, ok := domain.ParseCadence(strings.TrimSpace(req.PlanCadence))
	if !ok {
		return domain.Contract{}, domain.ErrInvalidCadence
	}

	startDate, ok := billing.ParseDate(req.StartDate)
	if !ok {
		return domain.Contract{}, domain.ErrInvalidStartDate
	}

	if req.TrialDays < 0 {
		return domain.Contract{}, domain.ErrInvalidTrialDays
	}
	if req.EmployeeCount <= 0 {
		return domain.Contract{}, domain.ErrInvalidEmployeeCount
	}
	if req.CNPJCount <= 0 {
		return domain.Contract{}, domain.ErrInvalidCNPJCount
	}

	renewalDate := ""
	if strings.TrimSpace(req.RenewalDate) != "" {
		parsed, ok := billing.ParseDate(req.RenewalDate)
		if !ok {
			return domain.Contract{}, domain.ErrInvalidStartDate
		}
		renewalDate = billing.FormatDate(parsed)
	}

	now := time.Now().UTC()
	contract := domain.Contract{
		ID:            s.genID.Generate(),
		CompanyName:   companyName,
		CNPJ:          strings.TrimSpace(req.CNPJ),
		City:          strings.TrimSpace(req.City),
		State:         strings.ToUpper(strings.TrimSpace(req.State)),
		MonthlyValue:  strings.TrimSpace(req.MonthlyValue),
		PlanCadence:   cadence,
		TrialDays:     req.TrialDays,
		EmployeeCount: req.EmployeeCount,
		CNPJCount:     req.CNPJCount,
		StartDate:     billing.FormatDate(startDate),
		RenewalDate:   renewalDate,
		Status:        domain.ContractStatusActive,
		Metadata:      datatypes.JSONMap{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := s.repo.NextNumber(ctx, tx)
		if err != nil {
			return err
		}
		contract.Number = number
		return s.repo.Insert(ctx, tx, &contract)
	})
	if err != nil {
		return domain.Contract{}, err
	}

	return contract, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Contract, error) {
	contractID, err := parseID(id)
	if err != nil {
		return domain.Contract{}, domain.ErrInvalidID
	}

	contract, err := s.repo.FindByID(ctx, s.db, contractID)
	if err != nil {
		return domain.Contract{}, err
	}
	if contract == nil {
		return domain.Contract{}, domain.ErrNotFound
	}
	return *contract, nil
}

func (s *Service) List(ctx context.Context, req domain.ListContractRequest) (domain.ListContractResponse, error) {
	filter := domain.ListFilter{
		State: strings.ToUpper(strings.TrimSpace(req.State)),
	}
	if status := strings.ToUpper(strings.TrimSpace(req.Status)); status != "" {
		filter.Status = domain.ContractStatus(status)
	}
	if raw := strings.TrimSpace(req.Cadence); raw != "" {
		cadence, ok := domain.ParseCadence(raw)
		if !ok {
			return domain.ListContractResponse{}, domain.ErrInvalidCadence
		}
		filter.Cadence = cadence
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListContractResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(contract *domain.Contract) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        contract.ID.String(),
			CreatedAt: contract.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	contracts := make([]domain.Contract, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		contracts = append(contracts, *item)
	}

	resp := domain.ListContractResponse{Contracts: contracts}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateContractRequest) (domain.Contract, error) {
	contractID, err := parseID(req.ID)
	if err != nil {
		return domain.Contract{}, domain.ErrInvalidID
	}

	var updated domain.Contract
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contract, err := s.repo.FindByID(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return domain.ErrNotFound
		}

		if req.CompanyName != nil {
			name := strings.TrimSpace(*req.CompanyName)
			if name == "" {
				return domain.ErrInvalidCompanyName
			}
			contract.CompanyName = name
		}
		if req.City != nil {
			contract.City = strings.TrimSpace(*req.City)
		}
		if req.State != nil {
			contract.State = strings.ToUpper(strings.TrimSpace(*req.State))
		}
		if req.MonthlyValue != nil {
			contract.MonthlyValue = strings.TrimSpace(*req.MonthlyValue)
		}
		if req.TrialDays != nil {
			if *req.TrialDays < 0 {
				return domain.ErrInvalidTrialDays
			}
			contract.TrialDays = *req.TrialDays
		}
		if req.EmployeeCount != nil {
			if *req.EmployeeCount <= 0 {
				return domain.ErrInvalidEmployeeCount
			}
			contract.EmployeeCount = *req.EmployeeCount
		}
		if req.CNPJCount != nil {
			if *req.CNPJCount <= 0 {
				return domain.ErrInvalidCNPJCount
			}
			contract.CNPJCount = *req.CNPJCount
		}
		if req.RenewalDate != nil {
			if strings.TrimSpace(*req.RenewalDate) == "" {
				contract.RenewalDate = ""
			} else {
				parsed, ok := billing.ParseDate(*req.RenewalDate)
				if !ok {
					return domain.ErrInvalidStartDate
				}
				contract.RenewalDate = billing.FormatDate(parsed)
			}
		}

		contract.UpdatedAt = time.Now().UTC()
		if err := tx.Save(contract).Error; err != nil {
			return err
		}
		updated = *contract
		return nil
	})
	if err != nil {
		return domain.Contract{}, err
	}
	return updated, nil
}

// Terminate records a termination event and flags the contract inactive. The
// month containing the termination date still bills; suppression starts the
// following month.
func (s *Service) Terminate(ctx context.Context, req domain.TerminateContractRequest) (domain.Contract, error) {
	return s.transition(ctx, req.ID, req.TerminationDate, domain.StatusEntryTermination)
}

// Reactivate records a reactivation event and flags the contract active again.
// Billing resumes in the month of the reactivation date on the original
// cadence.
func (s *Service) Reactivate(ctx context.Context, req domain.ReactivateContractRequest) (domain.Contract, error) {
	return s.transition(ctx, req.ID, req.ReactivationDate, domain.StatusEntryReactivation)
}

func (s *Service) transition(ctx context.Context, id, rawDate string, entryType domain.StatusEntryType) (domain.Contract, error) {
	contractID, err := parseID(id)
	if err != nil {
		return domain.Contract{}, domain.ErrInvalidID
	}

	statusDate, ok := billing.ParseDate(rawDate)
	if !ok {
		return domain.Contract{}, domain.ErrInvalidStatusDate
	}

	var updated domain.Contract
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contract, err := s.repo.FindByID(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return domain.ErrNotFound
		}

		// Consecutive duplicates of the same transition type are rejected;
		// the history must alternate.
		latest, err := s.repo.LatestStatusEntry(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if latest != nil && latest.StatusType == entryType {
			return domain.ErrDuplicateTransition
		}
		if latest == nil && entryType == domain.StatusEntryReactivation {
			return domain.ErrAlreadyActive
		}

		newStatus := domain.ContractStatusInactive
		if entryType == domain.StatusEntryReactivation {
			newStatus = domain.ContractStatusActive
		}

		entry := domain.ContractStatusEntry{
			ID:         s.genID.Generate(),
			ContractID: contractID,
			StatusDate: statusDate,
			StatusType: entryType,
			Status:     newStatus,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.repo.AppendStatusEntry(ctx, tx, &entry); err != nil {
			return err
		}

		if entryType == domain.StatusEntryTermination {
			contract.TerminationDate = billing.FormatDate(statusDate)
			contract.ReactivationDate = ""
		} else {
			contract.ReactivationDate = billing.FormatDate(statusDate)
		}
		contract.Status = newStatus
		contract.UpdatedAt = time.Now().UTC()

		if err := tx.Save(contract).Error; err != nil {
			return err
		}
		updated = *contract
		return nil
	})
	if err != nil {
		return domain.Contract{}, err
	}

	s.log.Info("contract status transition",
		zap.String("contract_id", updated.ID.String()),
		zap.String("type", string(entryType)),
		zap.String("status_date", billing.FormatDate(statusDate)),
	)
	return updated, nil
}

func (s *Service) StatusHistory(ctx context.Context, id string) ([]domain.ContractStatusEntry, error) {
	contractID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.repo.StatusEntries(ctx, s.db, contractID)
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
