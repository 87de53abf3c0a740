package ports

import (
	"context"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// CreateShipmentInput carries all data needed to register a new shipment.
// TrackingID is optional; when empty the service generates one.
type CreateShipmentInput struct {
	TrackingID      string
	Origin          string
	Destination     string
	Status          string
	Progress        float64
	CurrentLocation string
	ETA             string
	FreightType     string
	BookingMode     string
	Sender          string
	Recipient       string
	Product         string
	PaymentMethod   string
	Photo           string
	Cost            string
}

// ListShipmentsInput carries all parameters for the admin list endpoint.
type ListShipmentsInput struct {
	Status      string
	FreightType string
	Search      string
	Page        int
	Limit       int
}

// ListShipmentsResult is returned by ListShipments.
type ListShipmentsResult struct {
	Items      []*domain.ShipmentRecord
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ShipmentService defines use-case operations for shipments.
//
// TrackShipment serves the public tracking page; the remaining operations are
// admin-side and publish live updates after every mutation.
type ShipmentService interface {
	TrackShipment(ctx context.Context, trackingID string) (*domain.ShipmentRecord, error)
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.ShipmentRecord, error)
	UpdateShipment(ctx context.Context, trackingID string, patch domain.ShipmentPatch) (*domain.ShipmentRecord, error)
	DeleteShipment(ctx context.Context, trackingID string) error
	ListShipments(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
	AddEvent(ctx context.Context, trackingID, text, location string) (*domain.ShipmentRecord, error)
}
