package handler

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
	"github.com/marsestates/brokerage-api/internal/modules/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, id int) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectService) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Project, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUnitService is a mock implementation of service.UnitService
type MockUnitService struct {
	mock.Mock
}

func (m *MockUnitService) List(ctx context.Context, f repo.UnitFilters) ([]service.UnitView, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.UnitView), args.Error(1)
}

func (m *MockUnitService) Get(ctx context.Context, id int) (*service.UnitView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UnitView), args.Error(1)
}

func (m *MockUnitService) GetByCode(ctx context.Context, code string) (*service.UnitCodeView, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UnitCodeView), args.Error(1)
}

func (m *MockUnitService) Create(ctx context.Context, u *model.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnitService) CreateWithAssets(ctx context.Context, u *model.Unit, imageURLs []string, paymentPlanURL *string) error {
	args := m.Called(ctx, u, imageURLs, paymentPlanURL)
	return args.Error(0)
}

func (m *MockUnitService) Update(ctx context.Context, id int, updates map[string]interface{}) (*model.Unit, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Unit), args.Error(1)
}

func (m *MockUnitService) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUploadService is a mock implementation of service.UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadFile(ctx context.Context, keyPrefix, formField string, fh *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, keyPrefix, formField, fh)
	return args.String(0), args.Error(1)
}

// MockLeadService is a mock implementation of service.LeadService
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) List(ctx context.Context) ([]service.LeadView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.LeadView), args.Error(1)
}

func (m *MockLeadService) Create(ctx context.Context, l *model.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadService) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockSettingsService is a mock implementation of service.SettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, updates map[string]interface{}) (*model.Settings, error) {
	args := m.Called(ctx, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
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
