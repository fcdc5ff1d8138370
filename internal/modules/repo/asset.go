package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

type AssetRepo interface {
	Create(ctx context.Context, a *model.Asset) error
}

type assetRepo struct{ db *gorm.DB }

func NewAssetRepo(db *gorm.DB) AssetRepo {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}
