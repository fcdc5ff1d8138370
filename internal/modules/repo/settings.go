package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

type SettingsRepo interface {
	// Get returns the singleton row, inserting the defaults when the
	// table is empty.
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, updates map[string]interface{}) (*model.Settings, error)
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepo(db *gorm.DB) SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = model.DefaultSettings()
		return &s, r.db.WithContext(ctx).Create(&s).Error
	}
	return &s, err
}

func (r *settingsRepo) Update(ctx context.Context, updates map[string]interface{}) (*model.Settings, error) {
	s, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(s).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s, nil
}
