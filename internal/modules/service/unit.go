package service

import (
	"context"

	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

// UnitView is a unit as served to clients: the row plus its resolved
// gallery. The embedded Project pointer carries the parent when set.
type UnitView struct {
	model.Unit
	Images []model.UnitImage `json:"images"`
}

// UnitCodeView additionally exposes the raw project gallery, which the
// code-lookup page renders as an automatic slider.
type UnitCodeView struct {
	UnitView
	ProjectImages []model.ProjectImage `json:"projectImages"`
}

type UnitService interface {
	List(ctx context.Context, f repo.UnitFilters) ([]UnitView, error)
	Get(ctx context.Context, id int) (*UnitView, error)
	GetByCode(ctx context.Context, code string) (*UnitCodeView, error)
	Create(ctx context.Context, u *model.Unit) error
	CreateWithAssets(ctx context.Context, u *model.Unit, imageURLs []string, paymentPlanURL *string) error
	Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Unit, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type unitService struct {
	units    repo.UnitRepo
	images   repo.ImageRepo
	projects repo.ProjectRepo
}

func NewUnitService(units repo.UnitRepo, images repo.ImageRepo, projects repo.ProjectRepo) UnitService {
	return &unitService{units: units, images: images, projects: projects}
}

func (s *unitService) List(ctx context.Context, f repo.UnitFilters) ([]UnitView, error) {
	units, err := s.units.List(ctx, f)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	projectByID := make(map[int]*model.Project, len(projects))
	for i := range projects {
		projectByID[projects[i].ID] = &projects[i]
	}

	// Project galleries fetched once per project, only for units that
	// need the fallback.
	galleryByProject := map[int][]model.ProjectImage{}

	views := make([]UnitView, 0, len(units))
	for _, u := range units {
		own, err := s.images.ListUnitImages(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		var projectImages []model.ProjectImage
		if len(own) == 0 {
			if projectImages, err = s.projectGallery(ctx, galleryByProject, u.ProjectID); err != nil {
				return nil, err
			}
		}
		u.Project = projectByID[u.ProjectID]
		views = append(views, UnitView{
			Unit:   u,
			Images: ResolveGalleryImages(u.ID, own, projectImages),
		})
	}
	return views, nil
}

func (s *unitService) Get(ctx context.Context, id int) (*UnitView, error) {
	u, err := s.units.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	view, err := s.buildView(ctx, u)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *unitService) GetByCode(ctx context.Context, code string) (*UnitCodeView, error) {
	u, err := s.units.GetByCode(ctx, code)
	if err != nil || u == nil {
		return nil, err
	}
	view, err := s.buildView(ctx, u)
	if err != nil {
		return nil, err
	}
	projectImages, err := s.images.ListProjectImages(ctx, u.ProjectID)
	if err != nil {
		return nil, err
	}
	return &UnitCodeView{UnitView: *view, ProjectImages: projectImages}, nil
}

func (s *unitService) buildView(ctx context.Context, u *model.Unit) (*UnitView, error) {
	project, err := s.projects.GetByID(ctx, u.ProjectID)
	if err != nil {
		return nil, err
	}
	own, err := s.images.ListUnitImages(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	var projectImages []model.ProjectImage
	if len(own) == 0 {
		if projectImages, err = s.images.ListProjectImages(ctx, u.ProjectID); err != nil {
			return nil, err
		}
	}
	u.Project = project
	return &UnitView{
		Unit:   *u,
		Images: ResolveGalleryImages(u.ID, own, projectImages),
	}, nil
}

func (s *unitService) projectGallery(ctx context.Context, memo map[int][]model.ProjectImage, projectID int) ([]model.ProjectImage, error) {
	if images, ok := memo[projectID]; ok {
		return images, nil
	}
	images, err := s.images.ListProjectImages(ctx, projectID)
	if err != nil {
		return nil, err
	}
	memo[projectID] = images
	return images, nil
}

func (s *unitService) Create(ctx context.Context, u *model.Unit) error {
	return s.units.Create(ctx, u)
}

func (s *unitService) CreateWithAssets(ctx context.Context, u *model.Unit, imageURLs []string, paymentPlanURL *string) error {
	u.PaymentPlanPdf = paymentPlanURL
	return s.units.CreateWithAssets(ctx, u, imageURLs)
}

func (s *unitService) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Unit, error) {
	return s.units.Update(ctx, id, updates)
}

func (s *unitService) Delete(ctx context.Context, id int) (bool, error) {
	return s.units.Delete(ctx, id)
}
