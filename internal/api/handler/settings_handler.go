package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

// SettingsHandler serves the site settings document: read-only for the public
// pages, writable from the admin panel.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type settingsPayload struct {
	SiteName     string   `json:"siteName"`
	Logo         string   `json:"logo,omitempty"`
	FreightTypes []string `json:"freightTypes"`
	BookingModes []string `json:"bookingModes"`
	Statuses     []string `json:"statuses"`
	MapProvider  string   `json:"mapProvider,omitempty"`
	MapAPIKey    string   `json:"mapApiKey,omitempty"`
}

// Get handles GET /settings.
//
// @Summary      Get site settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  settingsPayload
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, settingsPayload{
		SiteName:     settings.SiteName,
		Logo:         settings.Logo,
		FreightTypes: settings.FreightTypes,
		BookingModes: settings.BookingModes,
		Statuses:     settings.Statuses,
		MapProvider:  settings.MapProvider,
		MapAPIKey:    settings.MapAPIKey,
	})
}

// Update handles PUT /v1/settings.
//
// @Summary      Update site settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      settingsPayload  true  "Settings document"
// @Success      200   {object}  settingsPayload
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req settingsPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	settings := &domain.SiteSettings{
		SiteName:     req.SiteName,
		Logo:         req.Logo,
		FreightTypes: req.FreightTypes,
		BookingModes: req.BookingModes,
		Statuses:     req.Statuses,
		MapProvider:  req.MapProvider,
		MapAPIKey:    req.MapAPIKey,
	}
	if err := h.service.UpdateSettings(c.Request().Context(), settings); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, req)
}
