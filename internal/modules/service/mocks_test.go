package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id int) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Project, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUnitRepo is a mock implementation of repo.UnitRepo
type MockUnitRepo struct {
	mock.Mock
}

func (m *MockUnitRepo) List(ctx context.Context, f repo.UnitFilters) ([]model.Unit, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Unit), args.Error(1)
}

func (m *MockUnitRepo) GetByID(ctx context.Context, id int) (*model.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitRepo) GetByCode(ctx context.Context, code string) (*model.Unit, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitRepo) Create(ctx context.Context, u *model.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnitRepo) CreateWithAssets(ctx context.Context, u *model.Unit, imageURLs []string) error {
	args := m.Called(ctx, u, imageURLs)
	return args.Error(0)
}

func (m *MockUnitRepo) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Unit, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockImageRepo is a mock implementation of repo.ImageRepo
type MockImageRepo struct {
	mock.Mock
}

func (m *MockImageRepo) ListUnitImages(ctx context.Context, unitID int) ([]model.UnitImage, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UnitImage), args.Error(1)
}

func (m *MockImageRepo) CreateUnitImage(ctx context.Context, unitID int, imageURL string) (*model.UnitImage, error) {
	args := m.Called(ctx, unitID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UnitImage), args.Error(1)
}

func (m *MockImageRepo) ListProjectImages(ctx context.Context, projectID int) ([]model.ProjectImage, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectImage), args.Error(1)
}

func (m *MockImageRepo) CreateProjectImage(ctx context.Context, projectID int, imageURL string) (*model.ProjectImage, error) {
	args := m.Called(ctx, projectID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectImage), args.Error(1)
}

func (m *MockImageRepo) DeleteProjectImage(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockImageRepo) DeleteAllProjectImages(ctx context.Context, projectID int) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockLeadRepo is a mock implementation of repo.LeadRepo
type MockLeadRepo struct {
	mock.Mock
}

func (m *MockLeadRepo) List(ctx context.Context) ([]model.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lead), args.Error(1)
}

func (m *MockLeadRepo) Create(ctx context.Context, l *model.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockAdminRepo is a mock implementation of repo.AdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminRepo) Create(ctx context.Context, a *model.AdminUser) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
