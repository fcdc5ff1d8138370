package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

// UnitFilters narrows List. Nil fields impose no constraint; all set
// fields are ANDed. Bedrooms is an inclusive lower bound, not an exact
// match.
type UnitFilters struct {
	ProjectID *int
	MinArea   *int
	MaxArea   *int
	Bedrooms  *int
}

type UnitRepo interface {
	List(ctx context.Context, f UnitFilters) ([]model.Unit, error)
	GetByID(ctx context.Context, id int) (*model.Unit, error)
	// GetByCode returns the lowest-id unit carrying the code. Codes are
	// not unique at the schema level.
	GetByCode(ctx context.Context, code string) (*model.Unit, error)
	Create(ctx context.Context, u *model.Unit) error
	// CreateWithAssets creates the unit and attaches imageUrls as its
	// gallery. With no imageUrls it snapshots the project gallery
	// instead; the copy is one-time, not a live link.
	CreateWithAssets(ctx context.Context, u *model.Unit, imageURLs []string) error
	Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Unit, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type unitRepo struct{ db *gorm.DB }

func NewUnitRepo(db *gorm.DB) UnitRepo {
	return &unitRepo{db: db}
}

func (r *unitRepo) List(ctx context.Context, f UnitFilters) ([]model.Unit, error) {
	q := r.db.WithContext(ctx)
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.MinArea != nil {
		q = q.Where("area >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		q = q.Where("area <= ?", *f.MaxArea)
	}
	if f.Bedrooms != nil {
		q = q.Where("bedrooms >= ?", *f.Bedrooms)
	}

	var units []model.Unit
	return units, q.Find(&units).Error
}

func (r *unitRepo) GetByID(ctx context.Context, id int) (*model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *unitRepo) GetByCode(ctx context.Context, code string) (*model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).Where("unit_code = ?", code).Order("id ASC").First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *unitRepo) Create(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *unitRepo) CreateWithAssets(ctx context.Context, u *model.Unit, imageURLs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		finalURLs := imageURLs
		if len(finalURLs) == 0 {
			var projectImages []model.ProjectImage
			if err := tx.Where("project_id = ?", u.ProjectID).Find(&projectImages).Error; err != nil {
				return err
			}
			for _, img := range projectImages {
				finalURLs = append(finalURLs, img.ImageURL)
			}
		}

		if len(finalURLs) == 0 {
			return nil
		}
		images := make([]model.UnitImage, 0, len(finalURLs))
		for _, url := range finalURLs {
			images = append(images, model.UnitImage{UnitID: u.ID, ImageURL: url})
		}
		return tx.Create(&images).Error
	})
}

func (r *unitRepo) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&u).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &u, nil
}

func (r *unitRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Unit{}, id)
	return res.RowsAffected > 0, res.Error
}
