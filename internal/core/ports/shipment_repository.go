package ports

import (
	"context"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
type ListShipmentsFilter struct {
	Status      string // optional: filter by shipment status
	FreightType string // optional: filter by freight type
	Search      string // optional: partial match on trackingId or sender
	Page        int    // 1-based
	Limit       int    // max rows per page (capped at 100 by the service)
}

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	// Create inserts a new record; ErrDuplicateShipment when the trackingId is taken.
	Create(ctx context.Context, s *domain.ShipmentRecord) error
	FindByTrackingID(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error)
	// List returns a page of shipments matching filter and the total count.
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.ShipmentRecord, int64, error)
	// Update applies the sparse patch and returns the post-update record.
	Update(ctx context.Context, trackingID string, patch domain.ShipmentPatch) (*domain.ShipmentRecord, error)
	Delete(ctx context.Context, trackingID string) error
	// AppendEvent pushes one timeline event and returns the post-update record.
	AppendEvent(ctx context.Context, trackingID string, ev domain.TimelineEvent) (*domain.ShipmentRecord, error)
}
