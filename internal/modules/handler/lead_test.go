package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockLeadService)
		expectedStatus int
	}{
		{
			name: "full inquiry with string ids",
			body: `{"fullName":"Ahmed","phone":"+20100000000","email":"a@example.com","projectId":"5","unitId":9,"message":"interested"}`,
			setup: func(svc *MockLeadService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Lead) bool {
					return l.FullName == "Ahmed" &&
						l.ProjectID != nil && *l.ProjectID == 5 &&
						l.UnitID != nil && *l.UnitID == 9
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "minimal inquiry",
			body: `{"fullName":"Sara","phone":"+20111111111"}`,
			setup: func(svc *MockLeadService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Lead) bool {
					return l.ProjectID == nil && l.UnitID == nil && l.Email == nil
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing phone",
			body:           `{"fullName":"Ahmed"}`,
			setup:          func(svc *MockLeadService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad email",
			body:           `{"fullName":"Ahmed","phone":"+2010","email":"not-an-email"}`,
			setup:          func(svc *MockLeadService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLeadService{}
			tt.setup(svc)

			router := setupRouter()
			router.POST("/api/leads", NewLeadHandler(svc).CreateLead)

			req := httptest.NewRequest("POST", "/api/leads", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestLeadHandler_DeleteLead(t *testing.T) {
	svc := &MockLeadService{}
	svc.On("Delete", mock.Anything, 3).Return(true, nil)
	svc.On("Delete", mock.Anything, 999).Return(false, nil)

	router := setupRouter()
	router.DELETE("/api/leads/:id", NewLeadHandler(svc).DeleteLead)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/leads/3", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/leads/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "lead not found", res["error"])
}
