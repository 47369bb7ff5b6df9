package planning

import (
	"context"

	"github.com/google/uuid"

	"github.com/scm/backend/internal/domain/shared"
)

// ProductionPlanRepository defines the interface for production plan persistence
type ProductionPlanRepository interface {
	// FindByID finds a plan by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionPlan, error)

	// FindActive lists plans in CONFIRMED or IN_PROGRESS status
	FindActive(ctx context.Context) ([]ProductionPlan, error)

	// FindAll lists plans with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductionPlan, error)

	// Save creates or updates a plan
	Save(ctx context.Context, p *ProductionPlan) error
}

// BOMRepository defines the interface for bill-of-materials persistence
type BOMRepository interface {
	// FindByProduct lists BOM lines of a product
	FindByProduct(ctx context.Context, productName string) ([]BOMLine, error)

	// FindAll lists all BOM lines
	FindAll(ctx context.Context) ([]BOMLine, error)

	// Save creates or updates a BOM line
	Save(ctx context.Context, line *BOMLine) error

	// Delete removes a BOM line
	Delete(ctx context.Context, id uuid.UUID) error
}

// MRPRequestRepository defines the interface for MRP request persistence
type MRPRequestRepository interface {
	// FindByID finds a request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*MRPRequest, error)

	// FindAll lists requests with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]MRPRequest, error)

	// Save persists a request
	Save(ctx context.Context, r *MRPRequest) error
}
