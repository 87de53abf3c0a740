package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type timelineEventRequest struct {
	Text     string `json:"text"     validate:"required"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

type createShipmentRequest struct {
	TrackingID      string  `json:"trackingId"`
	Origin          string  `json:"origin"          validate:"required"`
	Destination     string  `json:"destination"     validate:"required"`
	Status          string  `json:"status"`
	Progress        float64 `json:"progress"        validate:"gte=0,lte=100"`
	CurrentLocation string  `json:"currentLocation"`
	ETA             string  `json:"eta"`
	FreightType     string  `json:"freightType"`
	BookingMode     string  `json:"bookingMode"`
	Sender          string  `json:"sender"`
	Recipient       string  `json:"recipient"`
	Product         string  `json:"product"`
	PaymentMethod   string  `json:"paymentMethod"`
	Photo           string  `json:"photo"`
	Cost            string  `json:"cost"`
}

// updateShipmentRequest mirrors the sparse patch shape: absent fields leave
// stored values untouched, present fields overwrite them, including present
// empty strings.
type updateShipmentRequest struct {
	Status          *string                 `json:"status"`
	Origin          *string                 `json:"origin"`
	Destination     *string                 `json:"destination"`
	CurrentLocation *string                 `json:"currentLocation"`
	Progress        *float64                `json:"progress"        validate:"omitempty,gte=0,lte=100"`
	ETA             *string                 `json:"eta"`
	FreightType     *string                 `json:"freightType"`
	BookingMode     *string                 `json:"bookingMode"`
	Sender          *string                 `json:"sender"`
	Recipient       *string                 `json:"recipient"`
	Product         *string                 `json:"product"`
	PaymentMethod   *string                 `json:"paymentMethod"`
	Photo           *string                 `json:"photo"`
	Cost            *string                 `json:"cost"`
	Events          *[]timelineEventRequest `json:"events"`
}

// --- Response types ---
// Transport-owned so the JSON contract is not coupled to internal changes.

type timelineEventResponse struct {
	Text     string `json:"text"`
	Location string `json:"location,omitempty"`
	Time     string `json:"time"`
}

type shipmentResponse struct {
	TrackingID      string                  `json:"trackingId"`
	Status          string                  `json:"status"`
	Origin          string                  `json:"origin"`
	Destination     string                  `json:"destination"`
	CurrentLocation string                  `json:"currentLocation,omitempty"`
	Progress        float64                 `json:"progress"`
	ETA             string                  `json:"eta,omitempty"`
	FreightType     string                  `json:"freightType,omitempty"`
	BookingMode     string                  `json:"bookingMode,omitempty"`
	Sender          string                  `json:"sender,omitempty"`
	Recipient       string                  `json:"recipient,omitempty"`
	Product         string                  `json:"product,omitempty"`
	PaymentMethod   string                  `json:"paymentMethod,omitempty"`
	Photo           string                  `json:"photo,omitempty"`
	Cost            string                  `json:"cost,omitempty"`
	Events          []timelineEventResponse `json:"events"`
	CreatedAt       time.Time               `json:"createdAt,omitempty"`
	UpdatedAt       time.Time               `json:"updatedAt,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type listShipmentsResponse struct {
	Data       []shipmentResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
