package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubShipmentRepo struct {
	byTracking map[string]*domain.ShipmentRecord
	createErr  error // if set, Create returns this error
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{byTracking: make(map[string]*domain.ShipmentRecord)}
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.ShipmentRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byTracking[s.TrackingID]; exists {
		return domain.ErrDuplicateShipment
	}
	clone := *s
	r.byTracking[s.TrackingID] = &clone
	return nil
}

func (r *stubShipmentRepo) FindByTrackingID(_ context.Context, trackingID string) (*domain.ShipmentRecord, error) {
	s, ok := r.byTracking[trackingID]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubShipmentRepo) List(_ context.Context, f ports.ListShipmentsFilter) ([]*domain.ShipmentRecord, int64, error) {
	var matched []*domain.ShipmentRecord
	for _, s := range r.byTracking {
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.FreightType != "" && s.FreightType != f.FreightType {
			continue
		}
		if f.Search != "" {
			idMatch := strings.Contains(strings.ToLower(s.TrackingID), strings.ToLower(f.Search))
			senderMatch := strings.Contains(strings.ToLower(s.Sender), strings.ToLower(f.Search))
			if !idMatch && !senderMatch {
				continue
			}
		}
		clone := *s
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubShipmentRepo) Update(_ context.Context, trackingID string, patch domain.ShipmentPatch) (*domain.ShipmentRecord, error) {
	s, ok := r.byTracking[trackingID]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	s.Apply(patch)
	clone := *s
	return &clone, nil
}

func (r *stubShipmentRepo) Delete(_ context.Context, trackingID string) error {
	if _, ok := r.byTracking[trackingID]; !ok {
		return domain.ErrShipmentNotFound
	}
	delete(r.byTracking, trackingID)
	return nil
}

func (r *stubShipmentRepo) AppendEvent(_ context.Context, trackingID string, ev domain.TimelineEvent) (*domain.ShipmentRecord, error) {
	s, ok := r.byTracking[trackingID]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	s.Events = append(s.Events, ev)
	clone := *s
	return &clone, nil
}

type stubPublisher struct {
	published []struct {
		trackingID string
		patch      domain.ShipmentPatch
	}
	err error
}

func (p *stubPublisher) PublishUpdate(_ context.Context, trackingID string, patch domain.ShipmentPatch) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, struct {
		trackingID string
		patch      domain.ShipmentPatch
	}{trackingID, patch})
	return nil
}

func newTestShipmentService(repo *stubShipmentRepo, pub *stubPublisher) *ShipmentService {
	return NewShipmentService(repo, pub, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCreateShipment_GeneratesTrackingID(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newTestShipmentService(repo, &stubPublisher{})

	rec, err := svc.CreateShipment(context.Background(), ports.CreateShipmentInput{
		Origin:      "Lagos",
		Destination: "Bangalore",
	})
	if err != nil {
		t.Fatalf("CreateShipment: %v", err)
	}
	if !strings.HasPrefix(rec.TrackingID, "LPL-") || len(rec.TrackingID) != 12 {
		t.Errorf("unexpected tracking id format: %q", rec.TrackingID)
	}
	if rec.Status != domain.StatusPending {
		t.Errorf("default status = %q, want %q", rec.Status, domain.StatusPending)
	}
	if rec.Events == nil || len(rec.Events) != 0 {
		t.Errorf("new shipment should start with an empty event list, got %v", rec.Events)
	}
}

func TestCreateShipment_DuplicateTrackingID(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newTestShipmentService(repo, &stubPublisher{})
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, ports.CreateShipmentInput{TrackingID: "LPL-2001"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateShipment(ctx, ports.CreateShipmentInput{TrackingID: "LPL-2001"})
	if !errors.Is(err, domain.ErrDuplicateShipment) {
		t.Errorf("got %v, want ErrDuplicateShipment", err)
	}
}

func TestUpdateShipment_PublishesPatch(t *testing.T) {
	repo := newStubShipmentRepo()
	pub := &stubPublisher{}
	svc := newTestShipmentService(repo, pub)
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, ports.CreateShipmentInput{TrackingID: "LPL-2001", Status: domain.StatusInTransit}); err != nil {
		t.Fatal(err)
	}

	status := domain.StatusDelivered
	rec, err := svc.UpdateShipment(ctx, "LPL-2001", domain.ShipmentPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateShipment: %v", err)
	}
	if rec.Status != domain.StatusDelivered {
		t.Errorf("status = %q, want %q", rec.Status, domain.StatusDelivered)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d updates, want 1", len(pub.published))
	}
	if pub.published[0].trackingID != "LPL-2001" {
		t.Errorf("published for %q, want LPL-2001", pub.published[0].trackingID)
	}
	if pub.published[0].patch.Status == nil || *pub.published[0].patch.Status != domain.StatusDelivered {
		t.Errorf("published patch missing status: %+v", pub.published[0].patch)
	}
}

func TestUpdateShipment_EmptyPatchDoesNotPublish(t *testing.T) {
	repo := newStubShipmentRepo()
	pub := &stubPublisher{}
	svc := newTestShipmentService(repo, pub)
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, ports.CreateShipmentInput{TrackingID: "LPL-2001"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateShipment(ctx, "LPL-2001", domain.ShipmentPatch{}); err != nil {
		t.Fatalf("UpdateShipment with empty patch: %v", err)
	}
	if len(pub.published) != 0 {
		t.Errorf("empty patch published %d updates, want 0", len(pub.published))
	}
}

func TestUpdateShipment_PublishFailureIsNotFatal(t *testing.T) {
	repo := newStubShipmentRepo()
	pub := &stubPublisher{err: errors.New("redis down")}
	svc := newTestShipmentService(repo, pub)
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, ports.CreateShipmentInput{TrackingID: "LPL-2001"}); err != nil {
		t.Fatal(err)
	}
	status := domain.StatusInTransit
	if _, err := svc.UpdateShipment(ctx, "LPL-2001", domain.ShipmentPatch{Status: &status}); err != nil {
		t.Errorf("publish failure must not fail the update: %v", err)
	}

	stored, err := repo.FindByTrackingID(ctx, "LPL-2001")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != domain.StatusInTransit {
		t.Errorf("update not persisted despite publish failure")
	}
}

func TestAddEvent_AppendsAndPublishesFullList(t *testing.T) {
	repo := newStubShipmentRepo()
	pub := &stubPublisher{}
	svc := newTestShipmentService(repo, pub)
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, ports.CreateShipmentInput{TrackingID: "LPL-2001"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddEvent(ctx, "LPL-2001", "Picked up", "Lagos"); err != nil {
		t.Fatal(err)
	}
	rec, err := svc.AddEvent(ctx, "LPL-2001", "Departed origin facility", "")
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(rec.Events))
	}
	if rec.Events[0].Text != "Picked up" || rec.Events[1].Text != "Departed origin facility" {
		t.Errorf("events out of insertion order: %+v", rec.Events)
	}
	if rec.Events[0].Time == "" {
		t.Error("event time not stamped")
	}

	last := pub.published[len(pub.published)-1]
	if last.patch.Events == nil || len(*last.patch.Events) != 2 {
		t.Errorf("published patch should carry the full event list: %+v", last.patch)
	}
}

func TestTrackShipment_NotFound(t *testing.T) {
	svc := newTestShipmentService(newStubShipmentRepo(), &stubPublisher{})
	_, err := svc.TrackShipment(context.Background(), "LPL-0000")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("got %v, want ErrShipmentNotFound", err)
	}
}

func TestListShipments_CapsLimit(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newTestShipmentService(repo, &stubPublisher{})

	res, err := svc.ListShipments(context.Background(), ports.ListShipmentsInput{Page: 0, Limit: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if res.Page != 1 {
		t.Errorf("page = %d, want 1", res.Page)
	}
	if res.Limit != maxPageSize {
		t.Errorf("limit = %d, want %d", res.Limit, maxPageSize)
	}
}
