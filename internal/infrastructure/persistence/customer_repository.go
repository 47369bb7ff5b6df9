package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	var c sales.Customer
	if err := dbc(ctx, r.db).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByName finds a customer by name
func (r *GormCustomerRepository) FindByName(ctx context.Context, name string) (*sales.Customer, error) {
	var c sales.Customer
	if err := dbc(ctx, r.db).First(&c, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindAll finds all customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Customer, error) {
	var customers []sales.Customer
	query := dbc(ctx, r.db).Model(&sales.Customer{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	query = applyListFilter(query, filter, CustomerSortFields)
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, c *sales.Customer) error {
	return dbc(ctx, r.db).Save(c).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormCustomerRepository) SaveWithLock(ctx context.Context, c *sales.Customer) error {
	prev := c.Version
	c.IncrementVersion()

	result := dbc(ctx, r.db).Model(c).
		Where("id = ? AND version = ?", c.ID, prev).
		Select("*").Updates(c)
	if result.Error != nil {
		c.Version = prev
		return result.Error
	}
	if result.RowsAffected == 0 {
		c.Version = prev
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ sales.CustomerRepository = (*GormCustomerRepository)(nil)
