package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/planning"
	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/quality"
	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/infrastructure/config"
)

// Database holds the database connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection with the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return newDatabaseWithLogLevel(cfg, logger.Silent)
}

// NewDatabaseWithLogger creates a new database connection with custom logger settings
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*Database, error) {
	return newDatabaseWithLogLevel(cfg, logLevel)
}

func newDatabaseWithLogLevel(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*Database, error) {
	return NewDatabaseWithCustomLogger(cfg, logger.Default.LogMode(logLevel))
}

// NewDatabaseWithCustomLogger creates a new database connection with a custom
// GORM logger implementation, typically the zap-backed one
func NewDatabaseWithCustomLogger(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// NewSQLiteDatabase opens an in-memory SQLite database with the schema
// migrated. Used by repository tests. Each call gets its own database so
// tests stay isolated; cache=shared keeps it alive across pooled connections.
func NewSQLiteDatabase() (*Database, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	d := &Database{DB: db}
	if err := d.AutoMigrate(); err != nil {
		return nil, err
	}
	return d, nil
}

// AutoMigrate creates or updates the schema for all persistent models
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		// procurement
		&procurement.PurchaseRequest{},
		&procurement.Quotation{},
		&procurement.PurchaseOrder{},
		&procurement.GoodsReceipt{},
		&procurement.InvoiceVerification{},
		&procurement.PurchaseTaxInvoice{},
		&procurement.PaymentSchedule{},
		&procurement.SupplierEvaluation{},
		// sales
		&sales.Customer{},
		&sales.SalesOrder{},
		&sales.Delivery{},
		&sales.SalesReturn{},
		&sales.SalesInvoice{},
		// inventory
		&inventory.InventoryItem{},
		&inventory.StockMovement{},
		&inventory.Disposal{},
		// quality
		&quality.QualityInspection{},
		&quality.Nonconformance{},
		// planning
		&planning.ProductionPlan{},
		&planning.BOMLine{},
		&planning.MRPRequest{},
		// customs
		&customs.ExchangeRateRecord{},
		&customs.HSCode{},
		&customs.FTAAgreement{},
		&customs.CommercialInvoice{},
		&customs.BillOfLading{},
		&customs.ImportDeclaration{},
		&customs.ExportDeclaration{},
		// system
		&Setting{},
	)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
