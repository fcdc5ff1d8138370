package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

type LeadRepo interface {
	List(ctx context.Context) ([]model.Lead, error)
	Create(ctx context.Context, l *model.Lead) error
	Delete(ctx context.Context, id int) (bool, error)
}

type leadRepo struct{ db *gorm.DB }

func NewLeadRepo(db *gorm.DB) LeadRepo {
	return &leadRepo{db: db}
}

func (r *leadRepo) List(ctx context.Context) ([]model.Lead, error) {
	var leads []model.Lead
	return leads, r.db.WithContext(ctx).Find(&leads).Error
}

func (r *leadRepo) Create(ctx context.Context, l *model.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leadRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Lead{}, id)
	return res.RowsAffected > 0, res.Error
}
