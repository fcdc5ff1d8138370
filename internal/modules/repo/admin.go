package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

type AdminRepo interface {
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	Create(ctx context.Context, a *model.AdminUser) error
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepo(db *gorm.DB) AdminRepo {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var a model.AdminUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *adminRepo) Create(ctx context.Context, a *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(a).Error
}
