package bootstrap

import (
	"context"

	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marsestates/brokerage-api/internal/config"
	"github.com/marsestates/brokerage-api/internal/infra/blob"
	"github.com/marsestates/brokerage-api/internal/infra/cache"
	"github.com/marsestates/brokerage-api/internal/infra/db"
	"github.com/marsestates/brokerage-api/internal/infra/logger"
	"github.com/marsestates/brokerage-api/internal/infra/mq"
	"github.com/marsestates/brokerage-api/internal/modules/handler"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
	"github.com/marsestates/brokerage-api/internal/modules/service"
)

// AutoMigrate brings the schema up to date for the configured driver.
func AutoMigrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&model.Project{},
		&model.Unit{},
		&model.UnitImage{},
		&model.ProjectImage{},
		&model.Lead{},
		&model.AdminUser{},
		&model.Settings{},
		&model.Asset{},
	)
}

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := AutoMigrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis-backed cache (optional, nil-safe)
	do.Provide(inj, func(i *do.Injector) (*cache.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// Lead event publisher (optional)
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return mq.New(cfg)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UnitRepo, error) {
		return repo.NewUnitRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ImageRepo, error) {
		return repo.NewImageRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.LeadRepo, error) {
		return repo.NewLeadRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AdminRepo, error) {
		return repo.NewAdminRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SettingsRepo, error) {
		return repo.NewSettingsRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AssetRepo, error) {
		return repo.NewAssetRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*cache.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UnitService, error) {
		return service.NewUnitService(
			do.MustInvoke[repo.UnitRepo](i),
			do.MustInvoke[repo.ImageRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.LeadService, error) {
		return service.NewLeadService(
			do.MustInvoke[repo.LeadRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.UnitRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.AdminRepo](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SettingsService, error) {
		return service.NewSettingsService(
			do.MustInvoke[repo.SettingsRepo](i),
			do.MustInvoke[*cache.Store](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UploadService, error) {
		return service.NewUploadService(
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[repo.AssetRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectImageHandler, error) {
		return handler.NewProjectImageHandler(do.MustInvoke[repo.ImageRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UnitHandler, error) {
		return handler.NewUnitHandler(
			do.MustInvoke[service.UnitService](i),
			do.MustInvoke[service.UploadService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.LeadHandler, error) {
		return handler.NewLeadHandler(do.MustInvoke[service.LeadService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SettingsHandler, error) {
		return handler.NewSettingsHandler(do.MustInvoke[service.SettingsService](i)), nil
	})

	return inj
}
