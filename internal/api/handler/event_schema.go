package handler

// addEventRequest is the body for appending one timeline event. Time is
// stamped server-side; the client only supplies what happened and where.
type addEventRequest struct {
	Text     string `json:"text"     validate:"required"`
	Location string `json:"location"`
}
