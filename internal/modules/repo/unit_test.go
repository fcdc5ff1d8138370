package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

func intp(v int) *int { return &v }

func strp(s string) *string { return &s }

func TestUnitRepo_ListFilters(t *testing.T) {
	db := newTestDB(t)
	r := NewUnitRepo(db)
	ctx := context.Background()

	p1 := seedProject(t, db, "p1")
	p2 := seedProject(t, db, "p2")

	small := seedUnit(t, db, p1.ID, func(u *model.Unit) { u.Area = 80; u.Bedrooms = 1 })
	mid := seedUnit(t, db, p1.ID, func(u *model.Unit) { u.Area = 150; u.Bedrooms = 3 })
	large := seedUnit(t, db, p2.ID, func(u *model.Unit) { u.Area = 300; u.Bedrooms = 5 })

	tests := []struct {
		name    string
		filters UnitFilters
		wantIDs []int
	}{
		{"no filters", UnitFilters{}, []int{small.ID, mid.ID, large.ID}},
		{"by project", UnitFilters{ProjectID: intp(p1.ID)}, []int{small.ID, mid.ID}},
		{"min area inclusive", UnitFilters{MinArea: intp(150)}, []int{mid.ID, large.ID}},
		{"max area inclusive", UnitFilters{MaxArea: intp(150)}, []int{small.ID, mid.ID}},
		{"area band", UnitFilters{MinArea: intp(100), MaxArea: intp(200)}, []int{mid.ID}},
		{"bedrooms is a minimum", UnitFilters{Bedrooms: intp(3)}, []int{mid.ID, large.ID}},
		{"all combined", UnitFilters{ProjectID: intp(p1.ID), MinArea: intp(100), Bedrooms: intp(2)}, []int{mid.ID}},
		{"nothing matches", UnitFilters{MinArea: intp(1000)}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, err := r.List(ctx, tt.filters)
			require.NoError(t, err)
			ids := make([]int, 0, len(units))
			for _, u := range units {
				ids = append(ids, u.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestUnitRepo_GetByCode_LowestIDWins(t *testing.T) {
	db := newTestDB(t)
	r := NewUnitRepo(db)
	ctx := context.Background()

	p := seedProject(t, db, "p")
	first := seedUnit(t, db, p.ID, func(u *model.Unit) { u.UnitCode = strp("A-101") })
	seedUnit(t, db, p.ID, func(u *model.Unit) { u.UnitCode = strp("A-101") })

	u, err := r.GetByCode(ctx, "A-101")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, first.ID, u.ID)

	missing, err := r.GetByCode(ctx, "Z-999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUnitRepo_CreateWithAssets_ExplicitImages(t *testing.T) {
	db := newTestDB(t)
	r := NewUnitRepo(db)
	images := NewImageRepo(db)
	ctx := context.Background()

	p := seedProject(t, db, "p")
	_, err := images.CreateProjectImage(ctx, p.ID, "https://cdn.example.com/project.jpg")
	require.NoError(t, err)

	u := &model.Unit{
		ProjectID: p.ID, Title: "t", Type: model.UnitTypePrimary,
		Price: 1, Area: 1, Bedrooms: 1, Bathrooms: 1,
		Location: "x", Status: model.UnitStatusAvailable,
	}
	urls := []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}
	require.NoError(t, r.CreateWithAssets(ctx, u, urls))

	got, err := images.ListUnitImages(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 2, "explicit images suppress the project snapshot")
	assert.Equal(t, urls[0], got[0].ImageURL)
	assert.Equal(t, urls[1], got[1].ImageURL)
}

func TestUnitRepo_CreateWithAssets_SnapshotsProjectGallery(t *testing.T) {
	db := newTestDB(t)
	r := NewUnitRepo(db)
	images := NewImageRepo(db)
	ctx := context.Background()

	p := seedProject(t, db, "p")
	for _, url := range []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg", "https://cdn.example.com/c.jpg"} {
		_, err := images.CreateProjectImage(ctx, p.ID, url)
		require.NoError(t, err)
	}

	u := &model.Unit{
		ProjectID: p.ID, Title: "t", Type: model.UnitTypePrimary,
		Price: 1, Area: 1, Bedrooms: 1, Bathrooms: 1,
		Location: "x", Status: model.UnitStatusAvailable,
	}
	require.NoError(t, r.CreateWithAssets(ctx, u, nil))

	got, err := images.ListUnitImages(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// The snapshot is a copy, not a live link: growing the project
	// gallery later leaves the unit untouched.
	_, err = images.CreateProjectImage(ctx, p.ID, "https://cdn.example.com/later.jpg")
	require.NoError(t, err)
	got, err = images.ListUnitImages(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestUnitRepo_CreateWithAssets_EmptyEverything(t *testing.T) {
	db := newTestDB(t)
	r := NewUnitRepo(db)
	images := NewImageRepo(db)
	ctx := context.Background()

	p := seedProject(t, db, "bare")
	u := &model.Unit{
		ProjectID: p.ID, Title: "t", Type: model.UnitTypePrimary,
		Price: 1, Area: 1, Bedrooms: 1, Bathrooms: 1,
		Location: "x", Status: model.UnitStatusAvailable,
	}
	require.NoError(t, r.CreateWithAssets(ctx, u, nil))

	got, err := images.ListUnitImages(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnitRepo_DeleteCascadesImages(t *testing.T) {
	db := newTestDB(t)
	r := NewUnitRepo(db)
	images := NewImageRepo(db)
	ctx := context.Background()

	p := seedProject(t, db, "p")
	u := seedUnit(t, db, p.ID, nil)
	_, err := images.CreateUnitImage(ctx, u.ID, "https://cdn.example.com/x.jpg")
	require.NoError(t, err)

	deleted, err := r.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	require.NoError(t, db.Model(&model.UnitImage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUnitRepo_RejectsUnknownProject(t *testing.T) {
	db := newTestDB(t)
	r := NewUnitRepo(db)

	err := r.Create(context.Background(), &model.Unit{
		ProjectID: 12345, Title: "t", Type: model.UnitTypePrimary,
		Price: 1, Area: 1, Bedrooms: 1, Bathrooms: 1,
		Location: "x", Status: model.UnitStatusAvailable,
	})
	assert.Error(t, err, "units require an existing project")
}
