package router

import (
	"time"

	"github.com/vineethtatipatri19/PGVMS/internal/config"
	"github.com/vineethtatipatri19/PGVMS/internal/handler"
	"github.com/vineethtatipatri19/PGVMS/internal/infra"
	"github.com/vineethtatipatri19/PGVMS/internal/middleware"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"
	"github.com/vineethtatipatri19/PGVMS/internal/service"
	"github.com/vineethtatipatri19/PGVMS/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	openaiClient := infra.NewOpenAIClient(cfg.OpenAIAPIKey)

	// ── Repositories ─────────────────────────────────────────────────────────
	inventoryRepo := repository.NewInventoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	crateRepo := repository.NewCrateRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	inventorySvc := service.NewInventoryService(inventoryRepo)
	customerSvc := service.NewCustomerService(customerRepo, txRepo)
	transactionSvc := service.NewTransactionService(txRepo, customerRepo, inventoryRepo, crateRepo)
	crateSvc := service.NewCrateService(crateRepo, customerRepo)
	reportSvc := service.NewReportService(txRepo, customerRepo, dispatcher)
	forecastSvc := service.NewForecastService(openaiClient, txRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	cratesH := handler.NewCratesHandler(crateSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	forecastH := handler.NewForecastHandler(forecastSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		inv := v1.Group("/inventory")
		{
			inv.POST("", inventoryH.Create)
			inv.GET("", inventoryH.List)
			inv.PUT("/:id", inventoryH.Update)
			inv.DELETE("/:id", inventoryH.Delete)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
			customers.GET("/:id/statement", reportsH.CustomerStatement)
			customers.POST("/:id/statement", reportsH.QueueStatement)
		}

		txs := v1.Group("/transactions")
		{
			txs.POST("", transactionsH.Record)
			txs.GET("", transactionsH.List)
			txs.PUT("/:id", transactionsH.Replace)
			txs.DELETE("/:id", transactionsH.Delete)
		}

		crates := v1.Group("/crates")
		{
			crates.POST("", cratesH.Record)
			crates.GET("", cratesH.Ledger)
			crates.PUT("/:id", cratesH.Update)
			crates.DELETE("/:id", cratesH.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/business", reportsH.Business)
			reports.POST("/business/statement", reportsH.QueueStatement)
		}

		v1.POST("/forecast", forecastH.Forecast)
	}

	return r
}
