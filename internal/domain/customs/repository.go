package customs

import (
	"context"

	"github.com/google/uuid"

	"github.com/scm/backend/internal/domain/shared"
)

// ExchangeRateRepository defines the interface for the append-only rate table
type ExchangeRateRepository interface {
	// Append inserts a rate record; records are never updated
	Append(ctx context.Context, record *ExchangeRateRecord) error

	// FindLatest returns the most recently inserted record per currency
	FindLatest(ctx context.Context) ([]ExchangeRateRecord, error)

	// FindLatestByCurrency returns the most recently inserted record of a currency
	FindLatestByCurrency(ctx context.Context, currency string) (*ExchangeRateRecord, error)

	// FindHistory lists records of a currency, newest first
	FindHistory(ctx context.Context, currency string, filter shared.Filter) ([]ExchangeRateRecord, error)
}

// HSCodeRepository defines the interface for tariff line persistence
type HSCodeRepository interface {
	// FindByCode finds a tariff line by HS code
	FindByCode(ctx context.Context, code string) (*HSCode, error)

	// FindAll lists tariff lines with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]HSCode, error)

	// Save creates or updates a tariff line
	Save(ctx context.Context, hs *HSCode) error
}

// FTAAgreementRepository defines the interface for FTA agreement persistence
type FTAAgreementRepository interface {
	// FindByID finds an agreement by ID
	FindByID(ctx context.Context, id uuid.UUID) (*FTAAgreement, error)

	// FindActiveByHSCode lists active agreements covering an HS code
	FindActiveByHSCode(ctx context.Context, hsCode string) ([]FTAAgreement, error)

	// FindAll lists agreements with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]FTAAgreement, error)

	// Save creates or updates an agreement
	Save(ctx context.Context, f *FTAAgreement) error
}

// CommercialInvoiceRepository defines the interface for CI persistence
type CommercialInvoiceRepository interface {
	// FindByID finds a commercial invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CommercialInvoice, error)

	// FindAll lists commercial invoices with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]CommercialInvoice, error)

	// Save creates or updates a commercial invoice
	Save(ctx context.Context, ci *CommercialInvoice) error
}

// BillOfLadingRepository defines the interface for B/L persistence
type BillOfLadingRepository interface {
	// FindByID finds a bill of lading by ID
	FindByID(ctx context.Context, id uuid.UUID) (*BillOfLading, error)

	// FindByCommercialInvoice lists B/Ls issued for a commercial invoice
	FindByCommercialInvoice(ctx context.Context, ciID uuid.UUID) ([]BillOfLading, error)

	// FindAll lists bills of lading with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]BillOfLading, error)

	// Save creates or updates a bill of lading
	Save(ctx context.Context, bl *BillOfLading) error
}

// ImportDeclarationRepository defines the interface for import declaration persistence
type ImportDeclarationRepository interface {
	// FindByID finds a declaration by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ImportDeclaration, error)

	// FindByStatus lists declarations in the given status
	FindByStatus(ctx context.Context, status ImportDeclarationStatus, filter shared.Filter) ([]ImportDeclaration, error)

	// FindAll lists declarations with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]ImportDeclaration, error)

	// Save creates or updates a declaration
	Save(ctx context.Context, d *ImportDeclaration) error
}

// ExportDeclarationRepository defines the interface for export declaration persistence
type ExportDeclarationRepository interface {
	// FindByID finds a declaration by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ExportDeclaration, error)

	// FindAll lists declarations with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]ExportDeclaration, error)

	// Save persists a declaration
	Save(ctx context.Context, d *ExportDeclaration) error
}
