package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

type ImageRepo interface {
	ListUnitImages(ctx context.Context, unitID int) ([]model.UnitImage, error)
	CreateUnitImage(ctx context.Context, unitID int, imageURL string) (*model.UnitImage, error)
	ListProjectImages(ctx context.Context, projectID int) ([]model.ProjectImage, error)
	CreateProjectImage(ctx context.Context, projectID int, imageURL string) (*model.ProjectImage, error)
	DeleteProjectImage(ctx context.Context, id int) error
	DeleteAllProjectImages(ctx context.Context, projectID int) error
}

type imageRepo struct{ db *gorm.DB }

func NewImageRepo(db *gorm.DB) ImageRepo {
	return &imageRepo{db: db}
}

func (r *imageRepo) ListUnitImages(ctx context.Context, unitID int) ([]model.UnitImage, error) {
	var images []model.UnitImage
	return images, r.db.WithContext(ctx).Where("unit_id = ?", unitID).Find(&images).Error
}

func (r *imageRepo) CreateUnitImage(ctx context.Context, unitID int, imageURL string) (*model.UnitImage, error) {
	img := model.UnitImage{UnitID: unitID, ImageURL: imageURL}
	return &img, r.db.WithContext(ctx).Create(&img).Error
}

func (r *imageRepo) ListProjectImages(ctx context.Context, projectID int) ([]model.ProjectImage, error) {
	var images []model.ProjectImage
	return images, r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&images).Error
}

func (r *imageRepo) CreateProjectImage(ctx context.Context, projectID int, imageURL string) (*model.ProjectImage, error) {
	img := model.ProjectImage{ProjectID: projectID, ImageURL: imageURL}
	return &img, r.db.WithContext(ctx).Create(&img).Error
}

func (r *imageRepo) DeleteProjectImage(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.ProjectImage{}, id).Error
}

func (r *imageRepo) DeleteAllProjectImages(ctx context.Context, projectID int) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.ProjectImage{}).Error
}
