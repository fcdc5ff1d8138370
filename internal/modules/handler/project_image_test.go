package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

func newProjectImageRouter(images *MockImageRepo) http.Handler {
	router := setupRouter()
	h := NewProjectImageHandler(images)
	router.GET("/api/projects/:id/images", h.ListProjectImages)
	router.POST("/api/projects/:id/images", h.CreateProjectImage)
	router.DELETE("/api/projects/:id/images", h.ClearProjectImages)
	router.DELETE("/api/project-images/:id", h.DeleteProjectImage)
	return router
}

func TestProjectImageHandler_CRUD(t *testing.T) {
	images := &MockImageRepo{}
	images.On("ListProjectImages", mock.Anything, 7).Return([]model.ProjectImage{
		{ID: 1, ProjectID: 7, ImageURL: "https://cdn.example.com/a.jpg"},
	}, nil)
	images.On("CreateProjectImage", mock.Anything, 7, "https://cdn.example.com/b.jpg").
		Return(&model.ProjectImage{ID: 2, ProjectID: 7, ImageURL: "https://cdn.example.com/b.jpg"}, nil)
	images.On("DeleteAllProjectImages", mock.Anything, 7).Return(nil)
	images.On("DeleteProjectImage", mock.Anything, 2).Return(nil)

	router := newProjectImageRouter(images)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/projects/7/images", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("POST", "/api/projects/7/images",
		strings.NewReader(`{"imageUrl":"https://cdn.example.com/b.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/project-images/2", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/projects/7/images", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	images.AssertExpectations(t)
}

func TestProjectImageHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing url", `{}`},
		{"not a url", `{"imageUrl":"plainstring"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProjectImageRouter(&MockImageRepo{})
			req := httptest.NewRequest("POST", "/api/projects/7/images", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
