package ports

import (
	"context"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// SettingsRepository persists the single site-settings document.
type SettingsRepository interface {
	// Get returns the stored settings, or domain.ErrSettingsNotFound when none exist.
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Upsert(ctx context.Context, s *domain.SiteSettings) error
}

// SettingsService exposes site settings to the public pages and the admin panel.
type SettingsService interface {
	// GetSettings falls back to defaults for a missing document so the
	// public site always renders.
	GetSettings(ctx context.Context) (*domain.SiteSettings, error)
	UpdateSettings(ctx context.Context, s *domain.SiteSettings) error
}
