package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/scm/backend/internal/domain/shared"
)

// InventoryItemRepository defines the interface for inventory persistence
type InventoryItemRepository interface {
	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindByItemCode finds an item by its code
	FindByItemCode(ctx context.Context, itemCode string) (*InventoryItem, error)

	// FindByItemName finds an item by name (fallback match when no code is known)
	FindByItemName(ctx context.Context, itemName string) (*InventoryItem, error)

	// FindAll lists items with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)

	// FindWithVariance lists items whose actual and book quantities differ
	FindWithVariance(ctx context.Context) ([]InventoryItem, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *InventoryItem) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, item *InventoryItem) error

	// Count counts items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// StockMovementRepository defines the interface for movement journal persistence
type StockMovementRepository interface {
	// FindByID finds a movement by ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockMovement, error)

	// FindByItemCode lists movements of an item
	FindByItemCode(ctx context.Context, itemCode string, filter shared.Filter) ([]StockMovement, error)

	// FindByReference lists movements caused by a document
	FindByReference(ctx context.Context, referenceNumber string) ([]StockMovement, error)

	// FindAll lists movements with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]StockMovement, error)

	// Save persists a movement row
	Save(ctx context.Context, m *StockMovement) error
}

// DisposalRepository defines the interface for disposal persistence
type DisposalRepository interface {
	// FindByID finds a disposal by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Disposal, error)

	// FindByStatus lists disposals in the given status
	FindByStatus(ctx context.Context, status DisposalStatus, filter shared.Filter) ([]Disposal, error)

	// FindAll lists disposals with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Disposal, error)

	// Save creates or updates a disposal
	Save(ctx context.Context, d *Disposal) error
}
