package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

type SettingsService struct {
	repo   ports.SettingsRepository
	logger zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

// GetSettings returns the stored site settings, falling back to defaults when
// none have been saved yet so the public pages always render.
func (s *SettingsService) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}
	return stored, nil
}

// UpdateSettings persists the admin-edited settings document.
func (s *SettingsService) UpdateSettings(ctx context.Context, settings *domain.SiteSettings) error {
	if settings.SiteName == "" {
		settings.SiteName = domain.DefaultSettings().SiteName
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist settings")
		return err
	}
	s.logger.Info().Str("site_name", settings.SiteName).Msg("settings updated")
	return nil
}
