package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

type stubSettingsRepo struct {
	stored *domain.SiteSettings
	getErr error
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.SiteSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.stored == nil {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubSettingsRepo) Upsert(_ context.Context, s *domain.SiteSettings) error {
	clone := *s
	r.stored = &clone
	return nil
}

func TestGetSettings_DefaultsWhenUnset(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, zerolog.Nop())

	got, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got.SiteName != "LocatePro" {
		t.Errorf("siteName = %q, want LocatePro", got.SiteName)
	}
	if len(got.Statuses) == 0 || got.Statuses[0] != domain.StatusPending {
		t.Errorf("default statuses missing: %v", got.Statuses)
	}
}

func TestGetSettings_StorageErrorPropagates(t *testing.T) {
	boom := errors.New("mongo down")
	svc := NewSettingsService(&stubSettingsRepo{getErr: boom}, zerolog.Nop())

	if _, err := svc.GetSettings(context.Background()); !errors.Is(err, boom) {
		t.Errorf("got %v, want storage error", err)
	}
}

func TestUpdateSettings_RoundTrip(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, zerolog.Nop())
	ctx := context.Background()

	in := domain.DefaultSettings()
	in.SiteName = "LocatePro EU"
	in.FreightTypes = append(in.FreightTypes, "Rail")
	if err := svc.UpdateSettings(ctx, &in); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.SiteName != "LocatePro EU" {
		t.Errorf("siteName = %q", got.SiteName)
	}
	if len(got.FreightTypes) != 4 {
		t.Errorf("freightTypes = %v", got.FreightTypes)
	}
}
