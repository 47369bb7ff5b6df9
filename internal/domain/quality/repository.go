package quality

import (
	"context"

	"github.com/google/uuid"

	"github.com/scm/backend/internal/domain/shared"
)

// QualityInspectionRepository defines the interface for inspection persistence
type QualityInspectionRepository interface {
	// FindByID finds an inspection by ID
	FindByID(ctx context.Context, id uuid.UUID) (*QualityInspection, error)

	// FindAll lists inspections with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]QualityInspection, error)

	// Save persists an inspection
	Save(ctx context.Context, qi *QualityInspection) error

	// Count counts inspections matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// NonconformanceRepository defines the interface for defect record persistence
type NonconformanceRepository interface {
	// FindByID finds a record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Nonconformance, error)

	// FindByStatus lists records in the given status
	FindByStatus(ctx context.Context, status NonconformanceStatus, filter shared.Filter) ([]Nonconformance, error)

	// FindAll lists records with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Nonconformance, error)

	// Save creates or updates a record
	Save(ctx context.Context, nc *Nonconformance) error

	// Count counts records matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
