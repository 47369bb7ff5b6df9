package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	customsapp "github.com/scm/backend/internal/application/customs"
	inventoryapp "github.com/scm/backend/internal/application/inventory"
	planningapp "github.com/scm/backend/internal/application/planning"
	procurementapp "github.com/scm/backend/internal/application/procurement"
	qualityapp "github.com/scm/backend/internal/application/quality"
	salesapp "github.com/scm/backend/internal/application/sales"
	"github.com/scm/backend/internal/infrastructure/config"
	"github.com/scm/backend/internal/infrastructure/logger"
	"github.com/scm/backend/internal/infrastructure/lookup"
	"github.com/scm/backend/internal/infrastructure/persistence"
	"github.com/scm/backend/internal/interfaces/http/handler"
	"github.com/scm/backend/internal/interfaces/http/middleware"
	"github.com/scm/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SCM Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	purchaseRequestRepo := persistence.NewGormPurchaseRequestRepository(db.DB)
	quotationRepo := persistence.NewGormQuotationRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	goodsReceiptRepo := persistence.NewGormGoodsReceiptRepository(db.DB)
	verificationRepo := persistence.NewGormInvoiceVerificationRepository(db.DB)
	taxInvoiceRepo := persistence.NewGormTaxInvoiceRepository(db.DB)
	paymentScheduleRepo := persistence.NewGormPaymentScheduleRepository(db.DB)
	evaluationRepo := persistence.NewGormSupplierEvaluationRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	deliveryRepo := persistence.NewGormDeliveryRepository(db.DB)
	salesReturnRepo := persistence.NewGormSalesReturnRepository(db.DB)
	salesInvoiceRepo := persistence.NewGormSalesInvoiceRepository(db.DB)
	inventoryItemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	stockMovementRepo := persistence.NewGormStockMovementRepository(db.DB)
	disposalRepo := persistence.NewGormDisposalRepository(db.DB)
	inspectionRepo := persistence.NewGormQualityInspectionRepository(db.DB)
	nonconformanceRepo := persistence.NewGormNonconformanceRepository(db.DB)
	productionPlanRepo := persistence.NewGormProductionPlanRepository(db.DB)
	bomRepo := persistence.NewGormBOMRepository(db.DB)
	mrpRequestRepo := persistence.NewGormMRPRequestRepository(db.DB)
	exchangeRateRepo := persistence.NewGormExchangeRateRepository(db.DB)
	hsCodeRepo := persistence.NewGormHSCodeRepository(db.DB)
	ftaRepo := persistence.NewGormFTAAgreementRepository(db.DB)
	commercialInvoiceRepo := persistence.NewGormCommercialInvoiceRepository(db.DB)
	billOfLadingRepo := persistence.NewGormBillOfLadingRepository(db.DB)
	importDeclarationRepo := persistence.NewGormImportDeclarationRepository(db.DB)
	exportDeclarationRepo := persistence.NewGormExportDeclarationRepository(db.DB)

	// Transaction manager shared by services that post cross-aggregate writes
	txManager := persistence.NewGormTxManager(db.DB)

	// Runtime settings hold the external API keys; updates through the
	// settings endpoint take effect on the next lookup request
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	// External reference lookups, each optional with a local fallback
	var rateClient customsapp.ExchangeRateClient
	if cfg.Lookup.RateEnabled {
		client := lookup.NewRateClient(cfg.Lookup.RateEndpoint, cfg.Lookup.RateTimeout, log)
		client.SetSettingsStore(settingsRepo)
		rateClient = client
		log.Info("Exchange rate lookup enabled", zap.String("endpoint", cfg.Lookup.RateEndpoint))
	}

	// Initialize application services
	procurementService := procurementapp.NewProcurementService(
		purchaseRequestRepo, quotationRepo, purchaseOrderRepo, log)
	receivingService := procurementapp.NewReceivingService(
		txManager, purchaseOrderRepo, goodsReceiptRepo, inventoryItemRepo, stockMovementRepo, log)
	verificationService := procurementapp.NewVerificationService(
		txManager, purchaseOrderRepo, verificationRepo, taxInvoiceRepo, paymentScheduleRepo, evaluationRepo, log)
	orderService := salesapp.NewOrderService(
		txManager, customerRepo, salesOrderRepo, inventoryItemRepo, log)
	fulfillmentService := salesapp.NewFulfillmentService(
		txManager, salesOrderRepo, deliveryRepo, salesReturnRepo, salesInvoiceRepo,
		inventoryItemRepo, stockMovementRepo, log)
	warehouseService := inventoryapp.NewWarehouseService(
		txManager, inventoryItemRepo, stockMovementRepo, disposalRepo, log)
	qualityService := qualityapp.NewQualityService(inspectionRepo, nonconformanceRepo, log)
	mrpService := planningapp.NewMRPService(
		txManager, productionPlanRepo, bomRepo, mrpRequestRepo, inventoryItemRepo, log)
	declarationService := customsapp.NewDeclarationService(
		exchangeRateRepo, hsCodeRepo, ftaRepo, commercialInvoiceRepo, billOfLadingRepo,
		importDeclarationRepo, exportDeclarationRepo, log)
	rateService := customsapp.NewRateService(exchangeRateRepo, rateClient, log)

	if cfg.Lookup.TariffEnabled {
		tariffClient := lookup.NewTariffClient(cfg.Lookup.TariffEndpoint, cfg.Lookup.TariffTimeout, log)
		tariffClient.SetSettingsStore(settingsRepo)
		declarationService.SetTariffClient(tariffClient)
		log.Info("Tariff lookup enabled", zap.String("endpoint", cfg.Lookup.TariffEndpoint))
	}
	if cfg.Lookup.ScreeningEnabled {
		screeningClient := lookup.NewScreeningClient(cfg.Lookup.ScreeningEndpoint, cfg.Lookup.ScreeningTimeout, log)
		screeningClient.SetSettingsStore(settingsRepo)
		declarationService.SetScreeningClient(screeningClient)
		log.Info("Export screening lookup enabled", zap.String("endpoint", cfg.Lookup.ScreeningEndpoint))
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body size cap
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(middleware.DefaultMaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Register domain routes
	router.NewRouter(engine).
		Register(handler.NewProcurementHandler(procurementService)).
		Register(handler.NewVerificationHandler(receivingService, verificationService)).
		Register(handler.NewSalesHandler(orderService, fulfillmentService)).
		Register(handler.NewInventoryHandler(warehouseService)).
		Register(handler.NewQualityHandler(qualityService)).
		Register(handler.NewPlanningHandler(mrpService)).
		Register(handler.NewCustomsHandler(declarationService, rateService)).
		Register(handler.NewSystemHandler(settingsRepo)).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Periodic rate refresh keeps the table current without blocking startup
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	if cfg.Lookup.RateEnabled && cfg.Lookup.RateRefresh > 0 {
		go refreshRatesLoop(refreshCtx, rateService, cfg.Lookup.RateRefresh, log)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// refreshRatesLoop refreshes exchange rates on a fixed interval until ctx is
// cancelled. Failures are logged and retried on the next tick; stored rates
// keep serving in the meantime.
func refreshRatesLoop(ctx context.Context, rateService *customsapp.RateService, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if result, err := rateService.RefreshRates(ctx); err != nil {
			log.Warn("Scheduled rate refresh failed", zap.Error(err))
		} else {
			log.Info("Scheduled rate refresh done",
				zap.Int("appended", result.Appended),
				zap.String("source", result.Source))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
