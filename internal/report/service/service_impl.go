package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/redis/go-redis/v9"
	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	"github.com/revendahq/revenda/internal/billing"
	"github.com/revendahq/revenda/internal/clock"
	companycostdomain "github.com/revendahq/revenda/internal/companycost/domain"
	"github.com/revendahq/revenda/internal/config"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	overridedomain "github.com/revendahq/revenda/internal/override/domain"
	plandomain "github.com/revendahq/revenda/internal/plan/domain"
	"github.com/revendahq/revenda/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Cfg          config.Config
	Clock        clock.Clock
	ContractRepo contractdomain.Repository
	AdjRepo      adjustmentdomain.Repository
	OverrideRepo overridedomain.Repository
	PlanRepo     plandomain.Repository
	CostRepo     companycostdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	contractRepo contractdomain.Repository
	adjRepo      adjustmentdomain.Repository
	overrideRepo overridedomain.Repository
	planRepo     plandomain.Repository
	costRepo     companycostdomain.Repository

	redis    *redis.Client
	cacheTTL time.Duration

	mu   sync.Mutex
	memo map[int]memoEntry
}

type memoEntry struct {
	version string
	report  domain.FinancialReport
}

func New(p Params) domain.Service {
	var client *redis.Client
	if addr := strings.TrimSpace(p.Cfg.RedisAddr); addr != "" {
		client = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: strings.TrimSpace(p.Cfg.RedisPassword),
			DB:       p.Cfg.RedisDB,
		})
	}

	return &Service{
		db:           p.DB,
		log:          p.Log.Named("report.service"),
		clock:        p.Clock,
		contractRepo: p.ContractRepo,
		adjRepo:      p.AdjRepo,
		overrideRepo: p.OverrideRepo,
		planRepo:     p.PlanRepo,
		costRepo:     p.CostRepo,
		redis:        client,
		cacheTTL:     time.Duration(p.Cfg.ReportCacheTTLSeconds) * time.Second,
		memo:         make(map[int]memoEntry),
	}
}

// Financial builds the five-view projection for a year. Results are memoized
// per data version; a version is invalidated only by writes to any of the
// feeding tables, never by time.
func (s *Service) Financial(ctx context.Context, year int) (domain.FinancialReport, error) {
	if year < 2000 || year > 2100 {
		return domain.FinancialReport{}, domain.ErrInvalidYear
	}

	version, err := s.dataVersion(ctx)
	if err != nil {
		return domain.FinancialReport{}, err
	}

	s.mu.Lock()
	entry, ok := s.memo[year]
	s.mu.Unlock()
	if ok && entry.version == version {
		return entry.report, nil
	}

	cacheKey := fmt.Sprintf("report:financial:%d:%s", year, version)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var report domain.FinancialReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				s.remember(year, version, report)
				return report, nil
			}
		}
	}

	report, err := s.build(ctx, year)
	if err != nil {
		return domain.FinancialReport{}, err
	}
	report.Version = version

	s.remember(year, version, report)
	if s.redis != nil {
		if encoded, err := json.Marshal(report); err == nil {
			if err := s.redis.Set(ctx, cacheKey, encoded, s.cacheTTL).Err(); err != nil {
				s.log.Warn("report cache write failed", zap.Error(err))
			}
		}
	}
	return report, nil
}

func (s *Service) remember(year int, version string, report domain.FinancialReport) {
	s.mu.Lock()
	s.memo[year] = memoEntry{version: version, report: report}
	s.mu.Unlock()
}

// dataVersion fingerprints every table feeding the report. Row counts plus
// the newest write per table are enough: any insert, update or delete moves
// at least one of them.
func (s *Service) dataVersion(ctx context.Context) (string, error) {
	tables := []string{
		"contracts",
		"contract_status_entries",
		"contract_adjustments",
		"revenue_overrides",
		"plans",
		"plan_addons",
		"company_costs",
	}

	h := fnv.New64a()
	for _, table := range tables {
		var count int64
		if err := s.db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			return "", err
		}
		column := "updated_at"
		if table == "contract_status_entries" || table == "contract_adjustments" {
			column = "created_at"
		}
		// Scanned as text: sqlite hands aggregate timestamps back as
		// strings and the raw value is all the fingerprint needs.
		var newest sql.NullString
		if err := s.db.WithContext(ctx).Table(table).
			Select("max(" + column + ")").Scan(&newest).Error; err != nil {
			return "", err
		}
		fmt.Fprintf(h, "%s:%d:%s;", table, count, newest.String)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

type portfolio struct {
	contracts   []*contractdomain.Contract
	history     map[snowflake.ID][]contractdomain.ContractStatusEntry
	adjustments map[snowflake.ID][]adjustmentdomain.Adjustment
	overrides   map[snowflake.ID][]overridedomain.RevenueOverride
	plans       []plandomain.Plan
	addons      []plandomain.PlanAddon
	taxPercent  float64
	fixedCents  int64
}

func (s *Service) loadPortfolio(ctx context.Context) (portfolio, error) {
	var p portfolio

	contracts, err := s.contractRepo.ListAll(ctx, s.db)
	if err != nil {
		return p, err
	}
	p.contracts = contracts

	entries, err := s.contractRepo.AllStatusEntries(ctx, s.db)
	if err != nil {
		return p, err
	}
	p.history = make(map[snowflake.ID][]contractdomain.ContractStatusEntry)
	for _, entry := range entries {
		p.history[entry.ContractID] = append(p.history[entry.ContractID], entry)
	}

	adjustments, err := s.adjRepo.ListAll(ctx, s.db)
	if err != nil {
		return p, err
	}
	p.adjustments = make(map[snowflake.ID][]adjustmentdomain.Adjustment)
	for _, adj := range adjustments {
		p.adjustments[adj.ContractID] = append(p.adjustments[adj.ContractID], adj)
	}

	overrides, err := s.overrideRepo.ListAll(ctx, s.db)
	if err != nil {
		return p, err
	}
	p.overrides = make(map[snowflake.ID][]overridedomain.RevenueOverride)
	for _, o := range overrides {
		p.overrides[o.ContractID] = append(p.overrides[o.ContractID], o)
	}

	if p.plans, err = s.planRepo.List(ctx, s.db, true); err != nil {
		return p, err
	}
	if p.addons, err = s.planRepo.ListAddons(ctx, s.db, true); err != nil {
		return p, err
	}

	costs, err := s.costRepo.ListCosts(ctx, s.db, true)
	if err != nil {
		return p, err
	}
	for _, cost := range costs {
		if cost.Category == companycostdomain.CategoryTax {
			p.taxPercent += billing.ParsePercent(cost.Description)
		} else {
			p.fixedCents += cost.MonthlyCostCents
		}
	}
	return p, nil
}

func (s *Service) build(ctx context.Context, year int) (domain.FinancialReport, error) {
	p, err := s.loadPortfolio(ctx)
	if err != nil {
		return domain.FinancialReport{}, err
	}

	revenueView := newView(domain.ViewRevenue)
	licenseView := newView(domain.ViewLicenseCost)
	taxView := newView(domain.ViewTax)
	bankSlipView := newView(domain.ViewBankSlip)
	allocationView := newView(domain.ViewCostAllocation)

	revenueByContract := make([][12]int64, len(p.contracts))
	for i, contract := range p.contracts {
		in := billing.RevenueInput{
			Contract:    *contract,
			History:     p.history[contract.ID],
			Adjustments: p.adjustments[contract.ID],
			Overrides:   p.overrides[contract.ID],
		}
		quote := billing.AllocateLicense(contract.EmployeeCount, contract.CNPJCount, p.plans, p.addons)

		var revenue, license, tax, bankSlip [12]int64
		for m := time.January; m <= time.December; m++ {
			target := billing.MonthKey{Year: year, Month: m}
			rev := billing.MonthlyRevenue(in, target)
			revenue[m-1] = rev
			license[m-1] = billing.MonthlyLicenseCost(*contract, p.history[contract.ID], quote, target)
			tax[m-1] = billing.RoundCents(float64(rev) * p.taxPercent / 100)
			if rev > 0 {
				bankSlip[m-1] = billing.BankSlipFeeCents
			}
		}
		revenueByContract[i] = revenue

		revenueView.add(contract, revenue)
		licenseView.add(contract, license)
		taxView.add(contract, tax)
		bankSlipView.add(contract, bankSlip)
	}

	// Fixed costs spread pro-rata by revenue share; months with no revenue
	// allocate nothing.
	for i, contract := range p.contracts {
		var allocated [12]int64
		for m := 0; m < 12; m++ {
			total := revenueView.MonthlyTotals[m]
			if total == 0 || p.fixedCents == 0 {
				continue
			}
			share := float64(revenueByContract[i][m]) / float64(total)
			allocated[m] = billing.RoundCents(share * float64(p.fixedCents))
		}
		allocationView.add(contract, allocated)
	}

	return domain.FinancialReport{
		Year:       year,
		TaxPercent: p.taxPercent,
		Views: []domain.View{
			revenueView.View,
			licenseView.View,
			taxView.View,
			bankSlipView.View,
			allocationView.View,
		},
		GeneratedAt: s.clock.Now(),
	}, nil
}

type viewBuilder struct {
	domain.View
}

func newView(viewType domain.ViewType) *viewBuilder {
	return &viewBuilder{View: domain.View{
		Type:      viewType,
		Kind:      viewType.Kind(),
		Contracts: []domain.ContractSeries{},
	}}
}

func (v *viewBuilder) add(contract *contractdomain.Contract, months [12]int64) {
	series := domain.ContractSeries{
		ContractID:     contract.ID.String(),
		ContractNumber: contract.Number,
		CompanyName:    contract.CompanyName,
		Months:         months,
	}
	for m, cents := range months {
		series.TotalCents += cents
		v.MonthlyTotals[m] += cents
	}
	v.AnnualTotalCents += series.TotalCents
	v.Contracts = append(v.Contracts, series)
}

// ContractProjection is the single-contract slice the contract screen renders:
// billed and display-distributed revenue, license cost, and trial state.
func (s *Service) ContractProjection(ctx context.Context, contractID string, year int) (domain.ContractProjection, error) {
	if year < 2000 || year > 2100 {
		return domain.ContractProjection{}, domain.ErrInvalidYear
	}
	id, err := snowflake.ParseString(strings.TrimSpace(contractID))
	if err != nil {
		return domain.ContractProjection{}, domain.ErrInvalidID
	}

	contract, err := s.contractRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ContractProjection{}, err
	}
	if contract == nil {
		return domain.ContractProjection{}, domain.ErrNotFound
	}

	history, err := s.contractRepo.StatusEntries(ctx, s.db, id)
	if err != nil {
		return domain.ContractProjection{}, err
	}
	adjustments, err := s.adjRepo.ListByContract(ctx, s.db, id)
	if err != nil {
		return domain.ContractProjection{}, err
	}
	overrides, err := s.overrideRepo.ListByContract(ctx, s.db, id)
	if err != nil {
		return domain.ContractProjection{}, err
	}
	plans, err := s.planRepo.List(ctx, s.db, true)
	if err != nil {
		return domain.ContractProjection{}, err
	}
	addons, err := s.planRepo.ListAddons(ctx, s.db, true)
	if err != nil {
		return domain.ContractProjection{}, err
	}

	in := billing.RevenueInput{
		Contract:    *contract,
		History:     history,
		Adjustments: adjustments,
		Overrides:   overrides,
	}
	quote := billing.AllocateLicense(contract.EmployeeCount, contract.CNPJCount, plans, addons)

	projection := domain.ContractProjection{
		ContractID:   contract.ID.String(),
		Year:         year,
		LicenseQuote: quote,
	}
	for m := time.January; m <= time.December; m++ {
		target := billing.MonthKey{Year: year, Month: m}
		rev := billing.MonthlyRevenue(in, target)
		projection.Revenue[m-1] = rev
		projection.Distributed[m-1] = billing.DistributeMonthly(rev, contract.PlanCadence)
		projection.LicenseCost[m-1] = billing.MonthlyLicenseCost(*contract, history, quote, target)
	}

	if startDate, ok := billing.ParseDate(contract.StartDate); ok {
		projection.TrialState = billing.TrialStateAt(startDate, contract.TrialDays, s.clock.Now())
	}
	return projection, nil
}
