package settings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weiawesome/wes-io-live/gif-service/pkg/database"
)

type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a settings store backed by the settings table.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the settings table.
func (s *GormStore) Migrate() error {
	return database.AutoMigrate(s.db, &SettingModel{})
}

func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var model SettingModel
	if err := s.db.WithContext(ctx).Where("name = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return model.Value, nil
}

// Set inserts or replaces a setting.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	model := &SettingModel{Name: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}
