package domain

import "errors"

var ErrSettingsNotFound = errors.New("settings not found")

// SiteSettings holds the editable site-wide configuration surfaced to the
// public pages and the admin settings panel.
type SiteSettings struct {
	SiteName     string   `json:"siteName" bson:"siteName"`
	Logo         string   `json:"logo,omitempty" bson:"logo,omitempty"`
	FreightTypes []string `json:"freightTypes" bson:"freightTypes"`
	BookingModes []string `json:"bookingModes" bson:"bookingModes"`
	Statuses     []string `json:"statuses" bson:"statuses"`
	MapProvider  string   `json:"mapProvider" bson:"mapProvider"`
	MapAPIKey    string   `json:"mapApiKey,omitempty" bson:"mapApiKey,omitempty"`
}

// DefaultSettings returns the settings served when nothing has been stored
// yet, mirroring what the public site falls back to when the API is down.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SiteName:     "LocatePro",
		FreightTypes: []string{"Air", "Road", "Sea"},
		BookingModes: []string{"Express", "Standard"},
		Statuses:     []string{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled},
		MapProvider:  "osm",
	}
}
