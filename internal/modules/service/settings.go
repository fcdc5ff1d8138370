package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/marsestates/brokerage-api/internal/infra/cache"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
)

const settingsCacheKey = "settings"

type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, updates map[string]interface{}) (*model.Settings, error)
}

type settingsService struct {
	r     repo.SettingsRepo
	cache *cache.Store
	log   *zap.Logger
}

func NewSettingsService(r repo.SettingsRepo, c *cache.Store, log *zap.Logger) SettingsService {
	return &settingsService{r: r, cache: c, log: log}
}

func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	var cached model.Settings
	if err := s.cache.GetJSON(ctx, settingsCacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Sugar().Debugw("settings cache read failed", "err", err)
	}

	settings, err := s.r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, settingsCacheKey, settings); err != nil {
		s.log.Sugar().Debugw("settings cache write failed", "err", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, updates map[string]interface{}) (*model.Settings, error) {
	settings, err := s.r.Update(ctx, updates)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Del(ctx, settingsCacheKey); err != nil {
		s.log.Sugar().Debugw("settings cache invalidation failed", "err", err)
	}
	return settings, nil
}
