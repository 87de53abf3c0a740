package tracking

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// State is the tracking view's lifecycle state. The machine has no terminal
// state: it cycles between Loading, Result and Error for as long as the view
// lives.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// lookupFailedMessage is the single user-facing failure text. NotFound and
// Network failures are deliberately not distinguished for the end user; both
// invite a retry through the same search form.
const lookupFailedMessage = "Tracking number not found. Please check and try again."

// Fetcher retrieves a shipment record by tracking id.
type Fetcher interface {
	FetchShipment(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error)
}

// Subscriber is the live update channel as the tracker sees it.
type Subscriber interface {
	Subscribe(ctx context.Context, trackingID string, handler func(Update)) error
	Unsubscribe()
	UnsubscribeFrom(trackingID string)
}

// Snapshot is an immutable copy of the view state handed to observers.
type Snapshot struct {
	State        State
	Record       *domain.ShipmentRecord
	ErrorMessage string
}

// Tracker orchestrates the tracking view: it accepts user-submitted tracking
// ids, drives fetch then subscribe, merges live updates into the current
// record, and keeps the map view in sync.
//
// The current record is exclusively owned by the tracker; the map view and
// receipt renderer only ever see derived values or copies.
type Tracker struct {
	fetcher Fetcher
	feed    Subscriber
	mapView *MapView
	log     zerolog.Logger

	mu       sync.Mutex
	seq      uint64
	lastID   string
	state    State
	record   *domain.ShipmentRecord
	errMsg   string
	onChange func(Snapshot)
}

func NewTracker(fetcher Fetcher, feed Subscriber, mapView *MapView, log zerolog.Logger) *Tracker {
	return &Tracker{
		fetcher: fetcher,
		feed:    feed,
		mapView: mapView,
		log:     log,
		state:   StateIdle,
	}
}

// OnChange registers a callback invoked with a fresh snapshot after every
// state change. Must be set before the first Submit.
func (t *Tracker) OnChange(fn func(Snapshot)) {
	t.onChange = fn
}

// Submit starts tracking the given id. Blank input is ignored. Any previous
// subscription is torn down before the new fetch starts, and a result
// arriving for an already superseded submit is discarded: only the most
// recent submit governs visible state.
func (t *Tracker) Submit(ctx context.Context, raw string) {
	trackingID := strings.TrimSpace(raw)
	if trackingID == "" {
		return
	}

	t.mu.Lock()
	t.seq++
	gen := t.seq
	t.lastID = trackingID
	t.feed.Unsubscribe()
	t.state = StateLoading
	t.record = nil
	t.errMsg = ""
	t.mu.Unlock()
	t.notify()

	go func() {
		record, err := t.fetcher.FetchShipment(ctx, trackingID)
		t.settle(ctx, gen, trackingID, record, err)
	}()
}

// settle applies the outcome of the fetch issued at generation gen. A stale
// generation means a newer Submit superseded this fetch while it was in
// flight; its outcome, success or failure, must not touch state.
func (t *Tracker) settle(ctx context.Context, gen uint64, trackingID string, record *domain.ShipmentRecord, err error) {
	t.mu.Lock()
	if gen != t.seq {
		t.mu.Unlock()
		t.log.Debug().Str("tracking_id", trackingID).Msg("superseded fetch result discarded")
		return
	}

	if err != nil {
		t.state = StateError
		t.errMsg = lookupFailedMessage
		t.record = nil
		t.mu.Unlock()
		t.log.Info().Err(err).Str("tracking_id", trackingID).Msg("shipment lookup failed")
		t.notify()
		return
	}

	t.state = StateResult
	t.record = record
	t.errMsg = ""

	point := domain.ParseLocation(record.CurrentLocation)
	t.mapView.Init(point)
	t.mapView.UpdatePosition(point, record.Status, record.CurrentLocation)
	t.mu.Unlock()

	t.log.Info().Str("tracking_id", trackingID).Str("status", record.Status).Msg("tracking started")
	t.notify()

	subErr := t.feed.Subscribe(ctx, trackingID, t.handleUpdate)

	// A newer Submit may have arrived while the subscribe was in flight. If
	// it targets another id, the subscription just opened is stale and must
	// go; if it re-targets the same id, the subscription serves it as-is.
	t.mu.Lock()
	superseded := gen != t.seq
	retargeted := t.lastID != trackingID
	t.mu.Unlock()
	if superseded {
		if retargeted {
			t.feed.UnsubscribeFrom(trackingID)
		}
		t.log.Debug().Str("tracking_id", trackingID).Msg("superseded subscription released")
		return
	}

	if subErr != nil {
		// The fetched record is still shown; the view just won't receive
		// pushes until the next search.
		t.log.Warn().Err(subErr).Str("tracking_id", trackingID).Msg("live updates unavailable")
	}
}

// handleUpdate merges one live update into the current record. Valid only in
// Result state for the matching id; everything else is dropped.
func (t *Tracker) handleUpdate(u Update) {
	t.mu.Lock()
	if t.state != StateResult || t.record == nil || t.record.TrackingID != u.TrackingID {
		t.mu.Unlock()
		return
	}

	prevLocation := t.record.CurrentLocation
	prevStatus := t.record.Status
	t.record.Apply(u.Data)

	if t.record.CurrentLocation != prevLocation {
		point := domain.ParseLocation(t.record.CurrentLocation)
		t.mapView.UpdatePosition(point, t.record.Status, t.record.CurrentLocation)
	} else if t.record.Status != prevStatus {
		t.mapView.SetLabel(t.record.Status, t.record.CurrentLocation)
	}
	t.mu.Unlock()

	t.notify()
}

// Snapshot returns a copy of the current view state. The record copy owns its
// own event slice, so callers can hold it across later merges.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	snap := Snapshot{State: t.state, ErrorMessage: t.errMsg}
	if t.record != nil {
		clone := *t.record
		clone.Events = append([]domain.TimelineEvent(nil), t.record.Events...)
		snap.Record = &clone
	}
	return snap
}

// Close tears the view down: subscription cancelled, map destroyed, record
// discarded. In-flight fetches are superseded and their results dropped.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.seq++
	t.lastID = ""
	t.feed.Unsubscribe()
	t.mapView.Teardown()
	t.state = StateIdle
	t.record = nil
	t.errMsg = ""
	t.mu.Unlock()
	t.notify()
}

func (t *Tracker) notify() {
	if t.onChange == nil {
		return
	}
	t.mu.Lock()
	snap := t.snapshotLocked()
	t.mu.Unlock()
	t.onChange(snap)
}
