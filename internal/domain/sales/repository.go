package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/scm/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByName finds a customer by name
	FindByName(ctx context.Context, name string) (*Customer, error)

	// FindAll lists customers with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, c *Customer) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, c *Customer) error
}

// SalesOrderRepository defines the interface for sales order persistence
type SalesOrderRepository interface {
	// FindByID finds a sales order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)

	// FindByOrderNumber finds a sales order by document number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrder, error)

	// FindByCustomer lists orders placed by a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]SalesOrder, error)

	// FindByStatus lists orders in the given status
	FindByStatus(ctx context.Context, status SalesOrderStatus, filter shared.Filter) ([]SalesOrder, error)

	// FindAll lists sales orders with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesOrder, error)

	// Save creates or updates a sales order
	Save(ctx context.Context, so *SalesOrder) error

	// Count counts sales orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// DeliveryRepository defines the interface for delivery persistence
type DeliveryRepository interface {
	// FindByID finds a delivery by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Delivery, error)

	// FindBySalesOrder lists deliveries registered for an order
	FindBySalesOrder(ctx context.Context, soID uuid.UUID) ([]Delivery, error)

	// FindAll lists deliveries with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Delivery, error)

	// Save persists a delivery
	Save(ctx context.Context, d *Delivery) error
}

// SalesReturnRepository defines the interface for sales return persistence
type SalesReturnRepository interface {
	// FindByID finds a return by ID
	FindByID(ctx context.Context, id uuid.UUID) (*SalesReturn, error)

	// FindByStatus lists returns in the given status
	FindByStatus(ctx context.Context, status SalesReturnStatus, filter shared.Filter) ([]SalesReturn, error)

	// FindAll lists returns with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesReturn, error)

	// Save creates or updates a return
	Save(ctx context.Context, sr *SalesReturn) error
}

// SalesInvoiceRepository defines the interface for sales invoice persistence
type SalesInvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*SalesInvoice, error)

	// FindUnpaid lists invoices not yet settled
	FindUnpaid(ctx context.Context, filter shared.Filter) ([]SalesInvoice, error)

	// FindAll lists invoices with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesInvoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, si *SalesInvoice) error
}
