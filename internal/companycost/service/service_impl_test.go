package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/revendahq/revenda/internal/companycost/domain"
	costrepo "github.com/revendahq/revenda/internal/companycost/repository"
	"github.com/revendahq/revenda/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCostTest(t *testing.T) (*gorm.DB, *Service, *snowflake.Node) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.FinancialSection{},
		&domain.FinancialCategory{},
		&domain.CompanyCost{},
	)
	require.NoError(t, err)

	node, _ := snowflake.NewNode(1)

	svc := &Service{
		db:           db,
		log:          zap.NewNop(),
		genID:        node,
		repo:         costrepo.Provide(),
		sectionRepo:  repository.ProvideStore[domain.FinancialSection](db),
		categoryRepo: repository.ProvideStore[domain.FinancialCategory](db),
	}

	return db, svc, node
}

func TestCreateCostNormalizesCategory(t *testing.T) {
	_, svc, _ := setupCostTest(t)
	ctx := context.Background()

	cost, err := svc.CreateCost(ctx, domain.CreateCostRequest{
		Category:    "  Tax ",
		Description: "ISS 5%",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryTax, cost.Category)
	assert.True(t, cost.IsActive)
	assert.Equal(t, int64(0), cost.MonthlyCostCents)
}

func TestListCostsActiveOnly(t *testing.T) {
	_, svc, _ := setupCostTest(t)
	ctx := context.Background()

	kept, err := svc.CreateCost(ctx, domain.CreateCostRequest{
		Category:    "infrastructure",
		Description: "Servidores",
		MonthlyCost: "500,00",
	})
	require.NoError(t, err)

	dropped, err := svc.CreateCost(ctx, domain.CreateCostRequest{
		Category:    "infrastructure",
		Description: "Dominio antigo",
		MonthlyCost: "30,00",
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateCost(ctx, domain.UpdateCostRequest{
		ID:       dropped.ID.String(),
		IsActive: &inactive,
	})
	require.NoError(t, err)

	costs, err := svc.ListCosts(ctx, true)
	require.NoError(t, err)
	require.Len(t, costs, 1)
	assert.Equal(t, kept.ID, costs[0].ID)
	assert.Equal(t, int64(50000), costs[0].MonthlyCostCents)
}

func TestCreateSectionRejectsDuplicateName(t *testing.T) {
	_, svc, _ := setupCostTest(t)
	ctx := context.Background()

	_, err := svc.CreateSection(ctx, domain.CreateSectionRequest{Name: "Despesas"})
	require.NoError(t, err)

	_, err = svc.CreateSection(ctx, domain.CreateSectionRequest{Name: "Despesas"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestCreateCategoryRequiresSection(t *testing.T) {
	_, svc, node := setupCostTest(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{
		SectionID: node.Generate().String(),
		Name:      "payroll",
	})
	assert.ErrorIs(t, err, domain.ErrSectionNotFound)

	section, err := svc.CreateSection(ctx, domain.CreateSectionRequest{Name: "Despesas", SortOrder: 2})
	require.NoError(t, err)

	category, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{
		SectionID: section.ID.String(),
		Name:      "payroll",
	})
	require.NoError(t, err)
	assert.Equal(t, section.ID, category.SectionID)

	categories, err := svc.ListCategories(ctx, section.ID.String())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, category.ID, categories[0].ID)
}

func TestListSectionsOrderedBySortOrder(t *testing.T) {
	_, svc, _ := setupCostTest(t)
	ctx := context.Background()

	_, err := svc.CreateSection(ctx, domain.CreateSectionRequest{Name: "Despesas", SortOrder: 2})
	require.NoError(t, err)
	_, err = svc.CreateSection(ctx, domain.CreateSectionRequest{Name: "Receitas", SortOrder: 0})
	require.NoError(t, err)

	sections, err := svc.ListSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Receitas", sections[0].Name)
	assert.Equal(t, "Despesas", sections[1].Name)
}
