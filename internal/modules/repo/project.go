package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

type ProjectRepo interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int) (*model.Project, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	// Update applies only the given columns and returns the fresh row,
	// or nil when the project does not exist.
	Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Project, error)
	// Delete reports false when the project does not exist. Units,
	// their images and the project gallery go with it (FK cascade).
	Delete(ctx context.Context, id int) (bool, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	return projects, r.db.WithContext(ctx).Find(&projects).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id int) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *projectRepo) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&p).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (r *projectRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, id)
	return res.RowsAffected > 0, res.Error
}
