package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

func intp(v int) *int { return &v }

func TestLeadService_Create_NoPublisherConfigured(t *testing.T) {
	leads := &MockLeadRepo{}
	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	// A nil publisher means notifications are disabled; creation must
	// still succeed.
	svc := NewLeadService(leads, &MockProjectRepo{}, &MockUnitRepo{}, nil, zap.NewNop())
	err := svc.Create(context.Background(), &model.Lead{FullName: "Ahmed", Phone: "+20100000000"})
	require.NoError(t, err)
	leads.AssertExpectations(t)
}

func TestLeadService_List_ResolvesReferences(t *testing.T) {
	leads := &MockLeadRepo{}
	projects := &MockProjectRepo{}
	units := &MockUnitRepo{}

	leads.On("List", mock.Anything).Return([]model.Lead{
		{ID: 1, FullName: "Ahmed", Phone: "1", ProjectID: intp(5), UnitID: intp(9)},
		{ID: 2, FullName: "Sara", Phone: "2", ProjectID: intp(404)}, // dangling after delete
		{ID: 3, FullName: "Omar", Phone: "3"},
	}, nil)
	projects.On("List", mock.Anything).Return([]model.Project{{ID: 5, Slug: "the-one"}}, nil)
	units.On("List", mock.Anything, repo.UnitFilters{}).Return([]model.Unit{{ID: 9, ProjectID: 5}}, nil)

	svc := NewLeadService(leads, projects, units, nil, zap.NewNop())
	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	require.NotNil(t, views[0].Project)
	assert.Equal(t, "the-one", views[0].Project.Slug)
	require.NotNil(t, views[0].Unit)

	assert.Nil(t, views[1].Project, "dangling reference resolves to nothing, not an error")
	assert.Nil(t, views[2].Project)
	assert.Nil(t, views[2].Unit)
}

func TestLeadService_Delete(t *testing.T) {
	leads := &MockLeadRepo{}
	leads.On("Delete", mock.Anything, 12).Return(true, nil)
	leads.On("Delete", mock.Anything, 13).Return(false, nil)

	svc := NewLeadService(leads, &MockProjectRepo{}, &MockUnitRepo{}, nil, zap.NewNop())

	ok, err := svc.Delete(context.Background(), 12)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(context.Background(), 13)
	require.NoError(t, err)
	assert.False(t, ok)
}
