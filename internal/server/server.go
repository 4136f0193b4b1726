package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	companycostdomain "github.com/revendahq/revenda/internal/companycost/domain"
	"github.com/revendahq/revenda/internal/config"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	"github.com/revendahq/revenda/internal/observability"
	obsmiddleware "github.com/revendahq/revenda/internal/observability/logger"
	obsmetrics "github.com/revendahq/revenda/internal/observability/metrics"
	overridedomain "github.com/revendahq/revenda/internal/override/domain"
	plandomain "github.com/revendahq/revenda/internal/plan/domain"
	reportdomain "github.com/revendahq/revenda/internal/report/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	db             *gorm.DB
	contractSvc    contractdomain.Service
	adjustmentSvc  adjustmentdomain.Service
	planSvc        plandomain.Service
	overrideSvc    overridedomain.Service
	companyCostSvc companycostdomain.Service
	reportSvc      reportdomain.Service
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DB             *gorm.DB
	ContractSvc    contractdomain.Service
	AdjustmentSvc  adjustmentdomain.Service
	PlanSvc        plandomain.Service
	OverrideSvc    overridedomain.Service
	CompanyCostSvc companycostdomain.Service
	ReportSvc      reportdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		contractSvc:    p.ContractSvc,
		adjustmentSvc:  p.AdjustmentSvc,
		planSvc:        p.PlanSvc,
		overrideSvc:    p.OverrideSvc,
		companyCostSvc: p.CompanyCostSvc,
		reportSvc:      p.ReportSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// -------- Contracts --------
	api.POST("/contracts", s.CreateContract)
	api.GET("/contracts", s.ListContracts)
	api.GET("/contracts/:id", s.GetContractByID)
	api.PATCH("/contracts/:id", s.UpdateContract)
	api.POST("/contracts/:id/terminate", s.TerminateContract)
	api.POST("/contracts/:id/reactivate", s.ReactivateContract)
	api.GET("/contracts/:id/status-history", s.GetContractStatusHistory)

	// -------- Adjustments --------
	api.POST("/contracts/:id/adjustments", s.CreateAdjustment)
	api.GET("/contracts/:id/adjustments", s.ListAdjustments)

	// -------- Revenue overrides --------
	api.PUT("/contracts/:id/overrides", s.UpsertOverride)
	api.GET("/contracts/:id/overrides", s.ListOverrides)
	api.DELETE("/contracts/:id/overrides/:year/:month", s.DeleteOverride)

	// -------- Plans & addons --------
	api.POST("/plans", s.CreatePlan)
	api.GET("/plans", s.ListPlans)
	api.GET("/plans/:id", s.GetPlanByID)
	api.PATCH("/plans/:id", s.UpdatePlan)
	api.POST("/plan-addons", s.CreatePlanAddon)
	api.GET("/plan-addons", s.ListPlanAddons)

	// -------- Company costs --------
	api.POST("/company-costs", s.CreateCompanyCost)
	api.GET("/company-costs", s.ListCompanyCosts)
	api.PATCH("/company-costs/:id", s.UpdateCompanyCost)
	api.POST("/financial-sections", s.CreateFinancialSection)
	api.GET("/financial-sections", s.ListFinancialSections)
	api.POST("/financial-categories", s.CreateFinancialCategory)
	api.GET("/financial-categories", s.ListFinancialCategories)

	// -------- Reports --------
	api.GET("/reports/financial", s.GetFinancialReport)
	api.GET("/reports/contracts/:id/projection", s.GetContractProjection)
}
