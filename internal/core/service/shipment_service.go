package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

const maxPageSize = 100

type ShipmentService struct {
	repo      ports.ShipmentRepository
	publisher ports.UpdatePublisher
	logger    zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, publisher ports.UpdatePublisher, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, publisher: publisher, logger: logger}
}

// TrackShipment serves the public tracking lookup.
func (s *ShipmentService) TrackShipment(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error) {
	return s.repo.FindByTrackingID(ctx, trackingID)
}

// CreateShipment registers a new shipment. When no tracking id is supplied,
// one is generated in the LPL-XXXXXXXX format.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.ShipmentRecord, error) {
	trackingID := input.TrackingID
	if trackingID == "" {
		trackingID = generateTrackingID()
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	record := &domain.ShipmentRecord{
		TrackingID:      trackingID,
		Status:          status,
		Origin:          input.Origin,
		Destination:     input.Destination,
		CurrentLocation: input.CurrentLocation,
		Progress:        input.Progress,
		ETA:             input.ETA,
		FreightType:     input.FreightType,
		BookingMode:     input.BookingMode,
		Sender:          input.Sender,
		Recipient:       input.Recipient,
		Product:         input.Product,
		PaymentMethod:   input.PaymentMethod,
		Photo:           input.Photo,
		Cost:            input.Cost,
		Events:          []domain.TimelineEvent{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("tracking_id", trackingID).Msg("failed to create shipment")
		return nil, err
	}

	s.logger.Info().Str("tracking_id", record.TrackingID).Msg("shipment created")
	return record, nil
}

// UpdateShipment applies a sparse patch and pushes it to any live tracking
// views. The publish is best effort: a failed publish never rolls back the
// persisted update, subscribers simply catch up on their next fetch.
func (s *ShipmentService) UpdateShipment(ctx context.Context, trackingID string, patch domain.ShipmentPatch) (*domain.ShipmentRecord, error) {
	if patch.IsZero() {
		return s.repo.FindByTrackingID(ctx, trackingID)
	}

	record, err := s.repo.Update(ctx, trackingID, patch)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, trackingID, patch)

	s.logger.Info().Str("tracking_id", trackingID).Msg("shipment updated")
	return record, nil
}

// DeleteShipment removes a shipment permanently.
func (s *ShipmentService) DeleteShipment(ctx context.Context, trackingID string) error {
	if err := s.repo.Delete(ctx, trackingID); err != nil {
		return err
	}
	s.logger.Info().Str("tracking_id", trackingID).Msg("shipment deleted")
	return nil
}

// ListShipments returns a page of shipments for the admin dashboard.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListShipmentsFilter{
		Status:      input.Status,
		FreightType: input.FreightType,
		Search:      input.Search,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// AddEvent appends a timeline event stamped with the current time and pushes
// the refreshed event list to live views.
func (s *ShipmentService) AddEvent(ctx context.Context, trackingID, text, location string) (*domain.ShipmentRecord, error) {
	ev := domain.TimelineEvent{
		Text:     text,
		Location: location,
		Time:     time.Now().UTC().Format(time.RFC3339),
	}

	record, err := s.repo.AppendEvent(ctx, trackingID, ev)
	if err != nil {
		return nil, err
	}

	events := append([]domain.TimelineEvent(nil), record.Events...)
	s.publish(ctx, trackingID, domain.ShipmentPatch{Events: &events})

	s.logger.Info().Str("tracking_id", trackingID).Str("text", text).Msg("timeline event appended")
	return record, nil
}

func (s *ShipmentService) publish(ctx context.Context, trackingID string, patch domain.ShipmentPatch) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishUpdate(ctx, trackingID, patch); err != nil {
		s.logger.Warn().Err(err).Str("tracking_id", trackingID).Msg("failed to publish live update")
	}
}

// generateTrackingID returns a tracking id in the format LPL-XXXXXXXX.
func generateTrackingID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("LPL-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("LPL-%08X", b)
}
