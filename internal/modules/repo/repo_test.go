package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marsestates/brokerage-api/internal/modules/model"
)

// newTestDB opens a private in-memory sqlite database with foreign
// keys enforced, matching the production sqlite setup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&model.Project{},
		&model.Unit{},
		&model.UnitImage{},
		&model.ProjectImage{},
		&model.Lead{},
		&model.AdminUser{},
		&model.Settings{},
		&model.Asset{},
	))
	return db
}

func seedProject(t *testing.T, db *gorm.DB, slug string) *model.Project {
	t.Helper()
	p := &model.Project{Name: "P " + slug, Slug: slug, City: "Alexandria"}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUnit(t *testing.T, db *gorm.DB, projectID int, mut func(*model.Unit)) *model.Unit {
	t.Helper()
	u := &model.Unit{
		ProjectID: projectID,
		Title:     "unit",
		Type:      model.UnitTypePrimary,
		Price:     1000000,
		Area:      100,
		Bedrooms:  2,
		Bathrooms: 1,
		Location:  "Alexandria",
		Status:    model.UnitStatusAvailable,
	}
	if mut != nil {
		mut(u)
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
