package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/shared"
)

type txKey struct{}

// GormTxManager implements shared.TxManager with a GORM transaction carried
// in the context. Repositories resolve the transaction through dbc, so the
// same repository instance works inside and outside a transaction.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new GormTxManager
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// Do runs fn inside one transaction. A returned error rolls everything back.
func (m *GormTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		// already inside a transaction, join it
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey{}).(*gorm.DB)
	return tx
}

// dbc returns the transaction carried in the context, or the base connection
func dbc(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// Ensure GormTxManager implements TxManager
var _ shared.TxManager = (*GormTxManager)(nil)
