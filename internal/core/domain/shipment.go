package domain

import (
	"errors"
	"time"
)

// Canonical shipment statuses. The status field is free-form on the wire
// (admins can extend the list through site settings), so these are defaults,
// not an exhaustive enum.
const (
	StatusPending   = "Pending"
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrDuplicateShipment = errors.New("shipment already exists")
var ErrForbidden = errors.New("access forbidden")

// TimelineEvent is a single entry in a shipment's tracking history.
// Time is an ISO-8601 string set by whichever party appends the event.
type TimelineEvent struct {
	Text     string `json:"text" bson:"text"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Time     string `json:"time" bson:"time"`
}

// ShipmentRecord is the full data snapshot describing one tracked shipment.
// TrackingID is the external identifier and is immutable once assigned; it is
// the subscription key for live updates and the map lookup key.
type ShipmentRecord struct {
	TrackingID      string          `json:"trackingId" bson:"trackingId"`
	Status          string          `json:"status" bson:"status"`
	Origin          string          `json:"origin" bson:"origin"`
	Destination     string          `json:"destination" bson:"destination"`
	CurrentLocation string          `json:"currentLocation,omitempty" bson:"currentLocation,omitempty"`
	Progress        float64         `json:"progress" bson:"progress"`
	ETA             string          `json:"eta,omitempty" bson:"eta,omitempty"`
	FreightType     string          `json:"freightType,omitempty" bson:"freightType,omitempty"`
	BookingMode     string          `json:"bookingMode,omitempty" bson:"bookingMode,omitempty"`
	Sender          string          `json:"sender,omitempty" bson:"sender,omitempty"`
	Recipient       string          `json:"recipient,omitempty" bson:"recipient,omitempty"`
	Product         string          `json:"product,omitempty" bson:"product,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Photo           string          `json:"photo,omitempty" bson:"photo,omitempty"`
	Cost            string          `json:"cost,omitempty" bson:"cost,omitempty"`
	Events          []TimelineEvent `json:"events" bson:"events"`
	CreatedAt       time.Time       `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DisplayProgress clamps progress to [0,100] for presentation. Stored values
// are left as delivered by the backend.
func (s *ShipmentRecord) DisplayProgress() float64 {
	switch {
	case s.Progress < 0:
		return 0
	case s.Progress > 100:
		return 100
	default:
		return s.Progress
	}
}

// ShipmentPatch is a sparse update: only non-nil fields carry new values.
// It is the wire shape of the "data" payload on live update messages and of
// admin edit requests. TrackingID is deliberately absent; it never changes.
type ShipmentPatch struct {
	Status          *string          `json:"status,omitempty" bson:"status,omitempty"`
	Origin          *string          `json:"origin,omitempty" bson:"origin,omitempty"`
	Destination     *string          `json:"destination,omitempty" bson:"destination,omitempty"`
	CurrentLocation *string          `json:"currentLocation,omitempty" bson:"currentLocation,omitempty"`
	Progress        *float64         `json:"progress,omitempty" bson:"progress,omitempty"`
	ETA             *string          `json:"eta,omitempty" bson:"eta,omitempty"`
	FreightType     *string          `json:"freightType,omitempty" bson:"freightType,omitempty"`
	BookingMode     *string          `json:"bookingMode,omitempty" bson:"bookingMode,omitempty"`
	Sender          *string          `json:"sender,omitempty" bson:"sender,omitempty"`
	Recipient       *string          `json:"recipient,omitempty" bson:"recipient,omitempty"`
	Product         *string          `json:"product,omitempty" bson:"product,omitempty"`
	PaymentMethod   *string          `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Photo           *string          `json:"photo,omitempty" bson:"photo,omitempty"`
	Cost            *string          `json:"cost,omitempty" bson:"cost,omitempty"`
	Events          *[]TimelineEvent `json:"events,omitempty" bson:"events,omitempty"`
}

// IsZero reports whether the patch carries no fields at all.
func (p ShipmentPatch) IsZero() bool {
	return p.Status == nil && p.Origin == nil && p.Destination == nil &&
		p.CurrentLocation == nil && p.Progress == nil && p.ETA == nil &&
		p.FreightType == nil && p.BookingMode == nil && p.Sender == nil &&
		p.Recipient == nil && p.Product == nil && p.PaymentMethod == nil &&
		p.Photo == nil && p.Cost == nil && p.Events == nil
}

// Apply merges the patch into the record field by field. Absent fields leave
// prior values untouched; a patch is never treated as a full replacement.
// When Events is present it is the authoritative full list from the backend
// and replaces the slice wholesale.
func (s *ShipmentRecord) Apply(p ShipmentPatch) {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Origin != nil {
		s.Origin = *p.Origin
	}
	if p.Destination != nil {
		s.Destination = *p.Destination
	}
	if p.CurrentLocation != nil {
		s.CurrentLocation = *p.CurrentLocation
	}
	if p.Progress != nil {
		s.Progress = *p.Progress
	}
	if p.ETA != nil {
		s.ETA = *p.ETA
	}
	if p.FreightType != nil {
		s.FreightType = *p.FreightType
	}
	if p.BookingMode != nil {
		s.BookingMode = *p.BookingMode
	}
	if p.Sender != nil {
		s.Sender = *p.Sender
	}
	if p.Recipient != nil {
		s.Recipient = *p.Recipient
	}
	if p.Product != nil {
		s.Product = *p.Product
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.Photo != nil {
		s.Photo = *p.Photo
	}
	if p.Cost != nil {
		s.Cost = *p.Cost
	}
	if p.Events != nil {
		s.Events = append([]TimelineEvent(nil), (*p.Events)...)
	}
}
