package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/revendahq/revenda/internal/adjustment/domain"
	"github.com/revendahq/revenda/internal/adjustment/repository"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	contractrepo "github.com/revendahq/revenda/internal/contract/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAdjustmentTest(t *testing.T) (*gorm.DB, *Service, *snowflake.Node) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&contractdomain.Contract{},
		&contractdomain.ContractStatusEntry{},
		&domain.Adjustment{},
	)
	require.NoError(t, err)

	node, _ := snowflake.NewNode(1)

	svc := &Service{
		db:           db,
		log:          zap.NewNop(),
		genID:        node,
		repo:         repository.Provide(),
		contractRepo: contractrepo.Provide(),
	}

	return db, svc, node
}

func seedAdjustmentContract(t *testing.T, db *gorm.DB, node *snowflake.Node) contractdomain.Contract {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	contract := contractdomain.Contract{
		ID:            node.Generate(),
		Number:        "000001",
		CompanyName:   "Delta Servicos",
		MonthlyValue:  "1.000,00",
		PlanCadence:   contractdomain.CadenceMonthly,
		EmployeeCount: 20,
		CNPJCount:     1,
		StartDate:     "2024-01-01",
		Status:        contractdomain.ContractStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, db.Create(&contract).Error)
	return contract
}

func TestCreateValueAdjustment(t *testing.T) {
	db, svc, node := setupAdjustmentTest(t)
	ctx := context.Background()

	contract := seedAdjustmentContract(t, db, node)

	adj, err := svc.Create(ctx, domain.CreateAdjustmentRequest{
		ContractID:      contract.ID.String(),
		AdjustmentType:  "value",
		AdjustmentValue: "1.250,00",
		EffectiveDate:   "01/06/2024",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AdjustmentTypeValue, adj.AdjustmentType)
	assert.Equal(t, "1000.00", adj.PreviousValue)
	assert.Equal(t, "1250.00", adj.NewValue)
	// The pt-BR effective date is stored in ISO form.
	assert.Equal(t, "2024-06-01", adj.EffectiveDate)
}

func TestCreatePercentageAdjustmentCompounds(t *testing.T) {
	db, svc, node := setupAdjustmentTest(t)
	ctx := context.Background()

	contract := seedAdjustmentContract(t, db, node)

	_, err := svc.Create(ctx, domain.CreateAdjustmentRequest{
		ContractID:      contract.ID.String(),
		AdjustmentType:  "value",
		AdjustmentValue: "1.200,00",
		EffectiveDate:   "2024-03-01",
	})
	require.NoError(t, err)

	// A 10% raise effective after the March renegotiation compounds on
	// 1.200,00, not on the original contract value.
	adj, err := svc.Create(ctx, domain.CreateAdjustmentRequest{
		ContractID:      contract.ID.String(),
		AdjustmentType:  "percentage",
		AdjustmentValue: "10",
		EffectiveDate:   "2024-07-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "1200.00", adj.PreviousValue)
	assert.Equal(t, "1320.00", adj.NewValue)
}

func TestCreateAdjustmentValidation(t *testing.T) {
	db, svc, node := setupAdjustmentTest(t)
	ctx := context.Background()

	contract := seedAdjustmentContract(t, db, node)

	tests := []struct {
		name    string
		req     domain.CreateAdjustmentRequest
		wantErr error
	}{
		{
			name: "unknown type",
			req: domain.CreateAdjustmentRequest{
				ContractID:      contract.ID.String(),
				AdjustmentType:  "discount",
				AdjustmentValue: "100",
				EffectiveDate:   "2024-06-01",
			},
			wantErr: domain.ErrInvalidAdjustmentType,
		},
		{
			name: "unparseable effective date",
			req: domain.CreateAdjustmentRequest{
				ContractID:      contract.ID.String(),
				AdjustmentType:  "value",
				AdjustmentValue: "100",
				EffectiveDate:   "soon",
			},
			wantErr: domain.ErrInvalidEffectiveDate,
		},
		{
			name: "garbage value",
			req: domain.CreateAdjustmentRequest{
				ContractID:      contract.ID.String(),
				AdjustmentType:  "value",
				AdjustmentValue: "abc",
				EffectiveDate:   "2024-06-01",
			},
			wantErr: domain.ErrInvalidAdjustmentValue,
		},
		{
			name: "missing contract",
			req: domain.CreateAdjustmentRequest{
				ContractID:      node.Generate().String(),
				AdjustmentType:  "value",
				AdjustmentValue: "100",
				EffectiveDate:   "2024-06-01",
			},
			wantErr: domain.ErrContractNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
