// Package server exposes the engine over HTTP. Handlers translate JSON
// requests into domain calls and domain errors into status codes; no
// business rules live here.
package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	"github.com/franchizelabs/franchize/internal/config"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	payoutdomain "github.com/franchizelabs/franchize/internal/payout/domain"
	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

type Server struct {
	log      *zap.Logger
	cfg      *config.Config
	registry *prometheus.Registry

	brandSvc     branddomain.Service
	franchiseSvc franchisedomain.Service
	capSvc       capdomain.Service
	ledgerSvc    ledgerdomain.Service
	reserveSvc   reservedomain.Service
	revenueSvc   revenuedomain.Service
	payoutSvc    payoutdomain.Service
}

type ServerParam struct {
	fx.In

	Log      *zap.Logger
	Config   *config.Config
	Registry *prometheus.Registry

	Brand     branddomain.Service
	Franchise franchisedomain.Service
	Cap       capdomain.Service
	Ledger    ledgerdomain.Service
	Reserve   reservedomain.Service
	Revenue   revenuedomain.Service
	Payout    payoutdomain.Service
}

func NewServer(p ServerParam) *Server {
	return &Server{
		log:      p.Log.Named("server"),
		cfg:      p.Config,
		registry: p.Registry,

		brandSvc:     p.Brand,
		franchiseSvc: p.Franchise,
		capSvc:       p.Cap,
		ledgerSvc:    p.Ledger,
		reserveSvc:   p.Reserve,
		revenueSvc:   p.Revenue,
		payoutSvc:    p.Payout,
	}
}

func NewEngine(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	return engine
}

func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := engine.Group("/v1")

	brands := v1.Group("/brands")
	brands.POST("", s.CreateBrand)
	brands.GET("", s.ListBrands)
	brands.GET("/:id", s.GetBrand)
	brands.POST("/:id/templates", s.CreateCostTemplate)
	brands.GET("/:id/templates", s.ListCostTemplates)
	brands.GET("/:id/templates/current", s.CurrentCostTemplate)

	franchises := v1.Group("/franchises")
	franchises.POST("", s.CreateFranchise)
	franchises.GET("", s.ListFranchises)
	franchises.GET("/:id", s.GetFranchise)
	franchises.POST("/:id/stage", s.ChangeFranchiseStage)
	franchises.PATCH("/:id/area", s.UpdateLeasedArea)
	franchises.GET("/:id/capitalization", s.GetCapitalization)

	franchises.POST("/:id/shares", s.PurchaseShares)
	franchises.GET("/:id/shares", s.ListShares)
	franchises.GET("/:id/holdings/:investor_id", s.GetHolding)

	franchises.POST("/:id/revenue", s.IngestRevenue)
	franchises.GET("/:id/revenue", s.ListRevenue)
	franchises.GET("/:id/revenue/:period", s.GetPeriodSummary)

	franchises.POST("/:id/distributions", s.DistributeRevenue)
	franchises.GET("/:id/distributions", s.ListDistributions)

	franchises.GET("/:id/reserve", s.GetReserveStatus)
	franchises.POST("/:id/reserve/debits", s.DebitReserve)

	v1.GET("/distributions/:id", s.GetDistributionBreakdown)
}

func idParam(c *gin.Context, name string) (snowflake.ID, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := snowflake.ParseString(raw)
	if err != nil {
		return 0, newValidationError(name, "invalid_id", "invalid identifier")
	}
	return id, nil
}
