package tracking

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// Zoom levels mirroring the public map: a low world view before any position
// is known, a regional view when initialising on a known point, and a focused
// view once the marker is live.
const (
	worldZoom  = 2
	regionZoom = 6
	focusZoom  = 7
)

var worldCenter = domain.GeoPoint{Lat: 20, Lng: 0}

// Surface abstracts the concrete map widget (Leaflet in the browser, a plain
// console renderer in the CLI). Implementations need not be safe for
// concurrent use; MapView serialises access.
type Surface interface {
	SetView(center domain.GeoPoint, zoom int, animate bool)
	PlaceMarker(p domain.GeoPoint)
	MoveMarker(p domain.GeoPoint)
	SetMarkerLabel(label string)
	Close()
}

// MapView owns exactly one map surface and at most one position marker for
// the lifetime of the tracking view. If the surface fails to open it degrades
// to "no map available" and every later call becomes a no-op, leaving the
// rest of the view functional.
type MapView struct {
	open openerFunc
	log  zerolog.Logger

	surface     Surface
	initialized bool
	hasMarker   bool
	last        *domain.GeoPoint
}

type openerFunc func() (Surface, error)

func NewMapView(open func() (Surface, error), log zerolog.Logger) *MapView {
	return &MapView{open: open, log: log}
}

// Init creates the map exactly once; re-invocation while already initialized
// is a no-op. The initial view centres on the given point when one is known,
// otherwise on a default world view with no marker placed.
func (m *MapView) Init(initial *domain.GeoPoint) {
	if m.initialized {
		return
	}
	m.initialized = true

	surface, err := m.open()
	if err != nil {
		m.log.Warn().Err(err).Msg("map surface unavailable, tracking continues without map")
		return
	}
	m.surface = surface

	if initial != nil {
		surface.SetView(*initial, regionZoom, false)
	} else {
		surface.SetView(worldCenter, worldZoom, false)
	}
}

// UpdatePosition synchronises the marker and view with the latest known
// position.
//
// A nil point means "no new information", not "location lost": a previously
// placed marker stays where it was. This retain-last-known policy is a
// deliberate choice; clearing the marker on unknown location would also be
// defensible, but whichever policy applies must apply consistently.
func (m *MapView) UpdatePosition(p *domain.GeoPoint, status, locationText string) {
	if p == nil {
		return
	}
	point := *p
	m.last = &point

	if m.surface == nil {
		return
	}

	if !m.hasMarker {
		m.surface.PlaceMarker(point)
		m.hasMarker = true
	} else {
		m.surface.MoveMarker(point)
	}
	m.surface.SetView(point, focusZoom, true)
	m.surface.SetMarkerLabel(markerLabel(status, locationText))
}

// SetLabel refreshes the marker label without moving anything, for updates
// that change status but not position. No-op until a marker exists.
func (m *MapView) SetLabel(status, locationText string) {
	if m.surface == nil || !m.hasMarker {
		return
	}
	m.surface.SetMarkerLabel(markerLabel(status, locationText))
}

// Teardown destroys the surface and releases the marker. Safe to call even
// if Init was never called, and leaves the view ready for a fresh Init.
func (m *MapView) Teardown() {
	if m.surface != nil {
		m.surface.Close()
	}
	m.surface = nil
	m.initialized = false
	m.hasMarker = false
	m.last = nil
}

// LastKnown returns the most recent parsed position, if any.
func (m *MapView) LastKnown() *domain.GeoPoint {
	if m.last == nil {
		return nil
	}
	point := *m.last
	return &point
}

func markerLabel(status, locationText string) string {
	if status == "" {
		status = domain.StatusInTransit
	}
	if locationText == "" {
		return status
	}
	return fmt.Sprintf("%s (%s)", status, locationText)
}
