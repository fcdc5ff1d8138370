package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/marsestates/brokerage-api/internal/infra/cache"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

const projectsCacheKey = "projects"

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int) (*model.Project, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Project, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type projectService struct {
	r     repo.ProjectRepo
	cache *cache.Store
	log   *zap.Logger
}

func NewProjectService(r repo.ProjectRepo, c *cache.Store, log *zap.Logger) ProjectService {
	return &projectService{r: r, cache: c, log: log}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	var cached []model.Project
	if err := s.cache.GetJSON(ctx, projectsCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Sugar().Debugw("project list cache read failed", "err", err)
	}

	projects, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, projectsCacheKey, projects); err != nil {
		s.log.Sugar().Debugw("project list cache write failed", "err", err)
	}
	return projects, nil
}

func (s *projectService) GetByID(ctx context.Context, id int) (*model.Project, error) {
	return s.r.GetByID(ctx, id)
}

func (s *projectService) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return s.r.GetBySlug(ctx, slug)
}

func (s *projectService) Create(ctx context.Context, p *model.Project) error {
	if err := s.r.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *projectService) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Project, error) {
	p, err := s.r.Update(ctx, id, updates)
	if err == nil && p != nil {
		s.invalidate(ctx)
	}
	return p, err
}

func (s *projectService) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.r.Delete(ctx, id)
	if err == nil && ok {
		s.invalidate(ctx)
	}
	return ok, err
}

func (s *projectService) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, projectsCacheKey); err != nil {
		s.log.Sugar().Debugw("project list cache invalidation failed", "err", err)
	}
}
