package handler

import (
	"github.com/locatepro/tracking-system/internal/core/domain"
)

func toShipmentResponse(s *domain.ShipmentRecord) shipmentResponse {
	events := make([]timelineEventResponse, 0, len(s.Events))
	for _, ev := range s.Events {
		events = append(events, timelineEventResponse{
			Text:     ev.Text,
			Location: ev.Location,
			Time:     ev.Time,
		})
	}

	return shipmentResponse{
		TrackingID:      s.TrackingID,
		Status:          s.Status,
		Origin:          s.Origin,
		Destination:     s.Destination,
		CurrentLocation: s.CurrentLocation,
		Progress:        s.Progress,
		ETA:             s.ETA,
		FreightType:     s.FreightType,
		BookingMode:     s.BookingMode,
		Sender:          s.Sender,
		Recipient:       s.Recipient,
		Product:         s.Product,
		PaymentMethod:   s.PaymentMethod,
		Photo:           s.Photo,
		Cost:            s.Cost,
		Events:          events,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// toShipmentPatch maps the sparse update request onto the domain patch,
// preserving which fields were present on the wire.
func toShipmentPatch(r updateShipmentRequest) domain.ShipmentPatch {
	patch := domain.ShipmentPatch{
		Status:          r.Status,
		Origin:          r.Origin,
		Destination:     r.Destination,
		CurrentLocation: r.CurrentLocation,
		Progress:        r.Progress,
		ETA:             r.ETA,
		FreightType:     r.FreightType,
		BookingMode:     r.BookingMode,
		Sender:          r.Sender,
		Recipient:       r.Recipient,
		Product:         r.Product,
		PaymentMethod:   r.PaymentMethod,
		Photo:           r.Photo,
		Cost:            r.Cost,
	}

	if r.Events != nil {
		events := make([]domain.TimelineEvent, 0, len(*r.Events))
		for _, ev := range *r.Events {
			events = append(events, domain.TimelineEvent{
				Text:     ev.Text,
				Location: ev.Location,
				Time:     ev.Time,
			})
		}
		patch.Events = &events
	}

	return patch
}
