package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scm/backend/internal/domain/shared"
	"github.com/scm/backend/internal/infrastructure/lookup"
)

// Setting is one runtime-updatable key/value pair, e.g. an external API key.
// Values take effect on the next request that reads them.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"size:500" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

// GormSettingsRepository implements lookup.SettingsStore using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the stored value for a key, or shared.ErrNotFound
func (r *GormSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var setting Setting
	if err := dbc(ctx, r.db).First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return setting.Value, nil
}

// Set creates or replaces the value for a key
func (r *GormSettingsRepository) Set(ctx context.Context, key, value string) error {
	setting := Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	return dbc(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// Ensure GormSettingsRepository implements lookup.SettingsStore
var _ lookup.SettingsStore = (*GormSettingsRepository)(nil)
