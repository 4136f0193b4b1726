package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/revendahq/revenda/internal/contract/domain"
	"github.com/revendahq/revenda/internal/contract/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupContractTest(t *testing.T) (*gorm.DB, *Service, *snowflake.Node) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.Contract{},
		&domain.ContractStatusEntry{},
	)
	require.NoError(t, err)

	node, _ := snowflake.NewNode(1)

	svc := &Service{
		db:    db,
		log:   zap.NewNop(),
		genID: node,
		repo:  repository.Provide(),
	}

	return db, svc, node
}

func validCreateRequest() domain.CreateContractRequest {
	return domain.CreateContractRequest{
		CompanyName:   "Padaria Estrela LTDA",
		CNPJ:          "12.345.678/0001-90",
		City:          "Campinas",
		State:         "sp",
		MonthlyValue:  "1.500,00",
		PlanCadence:   "monthly",
		TrialDays:     30,
		EmployeeCount: 42,
		CNPJCount:     1,
		StartDate:     "10/01/2024",
	}
}

func TestCreateContractAssignsSequentialNumbers(t *testing.T) {
	_, svc, _ := setupContractTest(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.CompanyName = "Mercado Bom Preco ME"
	created, err := svc.Create(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, "000001", first.Number)
	assert.Equal(t, "000002", created.Number)
	assert.Equal(t, domain.ContractStatusActive, first.Status)
	assert.Equal(t, "SP", first.State)
	// Dates are normalized to ISO regardless of the input format.
	assert.Equal(t, "2024-01-10", first.StartDate)
}

func TestCreateContractValidation(t *testing.T) {
	_, svc, _ := setupContractTest(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*domain.CreateContractRequest)
		wantErr error
	}{
		{
			name:    "empty company name",
			mutate:  func(r *domain.CreateContractRequest) { r.CompanyName = "  " },
			wantErr: domain.ErrInvalidCompanyName,
		},
		{
			name:    "unknown cadence",
			mutate:  func(r *domain.CreateContractRequest) { r.PlanCadence = "weekly" },
			wantErr: domain.ErrInvalidCadence,
		},
		{
			name:    "unparseable start date",
			mutate:  func(r *domain.CreateContractRequest) { r.StartDate = "not-a-date" },
			wantErr: domain.ErrInvalidStartDate,
		},
		{
			name:    "negative trial days",
			mutate:  func(r *domain.CreateContractRequest) { r.TrialDays = -1 },
			wantErr: domain.ErrInvalidTrialDays,
		},
		{
			name:    "zero employees",
			mutate:  func(r *domain.CreateContractRequest) { r.EmployeeCount = 0 },
			wantErr: domain.ErrInvalidEmployeeCount,
		},
		{
			name:    "zero cnpjs",
			mutate:  func(r *domain.CreateContractRequest) { r.CNPJCount = 0 },
			wantErr: domain.ErrInvalidCNPJCount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTerminateRejectsDuplicateTransition(t *testing.T) {
	_, svc, _ := setupContractTest(t)
	ctx := context.Background()

	contract, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	terminated, err := svc.Terminate(ctx, domain.TerminateContractRequest{
		ID:              contract.ID.String(),
		TerminationDate: "2024-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ContractStatusInactive, terminated.Status)
	assert.Equal(t, "2024-06-15", terminated.TerminationDate)

	_, err = svc.Terminate(ctx, domain.TerminateContractRequest{
		ID:              contract.ID.String(),
		TerminationDate: "2024-07-01",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateTransition)
}

func TestReactivateWithoutHistoryFails(t *testing.T) {
	_, svc, _ := setupContractTest(t)
	ctx := context.Background()

	contract, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Reactivate(ctx, domain.ReactivateContractRequest{
		ID:               contract.ID.String(),
		ReactivationDate: "2024-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyActive)
}

func TestStatusTransitionsAlternate(t *testing.T) {
	_, svc, _ := setupContractTest(t)
	ctx := context.Background()

	contract, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	id := contract.ID.String()

	_, err = svc.Terminate(ctx, domain.TerminateContractRequest{
		ID:              id,
		TerminationDate: "2024-04-30",
	})
	require.NoError(t, err)

	reactivated, err := svc.Reactivate(ctx, domain.ReactivateContractRequest{
		ID:               id,
		ReactivationDate: "2024-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ContractStatusActive, reactivated.Status)
	assert.Equal(t, "2024-08-01", reactivated.ReactivationDate)

	terminated, err := svc.Terminate(ctx, domain.TerminateContractRequest{
		ID:              id,
		TerminationDate: "2024-11-20",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ContractStatusInactive, terminated.Status)
	assert.Equal(t, "2024-11-20", terminated.TerminationDate)
	// A fresh termination clears the stale reactivation column.
	assert.Equal(t, "", terminated.ReactivationDate)

	history, err := svc.StatusHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, domain.StatusEntryTermination, history[0].StatusType)
	assert.Equal(t, domain.StatusEntryReactivation, history[1].StatusType)
	assert.Equal(t, domain.StatusEntryTermination, history[2].StatusType)
}

func TestUpdateContractPatchesFields(t *testing.T) {
	_, svc, _ := setupContractTest(t)
	ctx := context.Background()

	contract, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	newValue := "1.800,00"
	newEmployees := 55
	updated, err := svc.Update(ctx, domain.UpdateContractRequest{
		ID:            contract.ID.String(),
		MonthlyValue:  &newValue,
		EmployeeCount: &newEmployees,
	})
	require.NoError(t, err)

	assert.Equal(t, "1.800,00", updated.MonthlyValue)
	assert.Equal(t, 55, updated.EmployeeCount)
	// Untouched fields survive the patch.
	assert.Equal(t, contract.CompanyName, updated.CompanyName)
	assert.Equal(t, contract.StartDate, updated.StartDate)
}

func TestGetByIDNotFound(t *testing.T) {
	_, svc, node := setupContractTest(t)

	_, err := svc.GetByID(context.Background(), node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
