package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locatepro/tracking-system/internal/api/metrics"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

// EventHandler handles timeline event ingestion for shipments.
type EventHandler struct {
	service ports.ShipmentService
}

func NewEventHandler(service ports.ShipmentService) *EventHandler {
	return &EventHandler{service: service}
}

// Add handles POST /v1/shipments/:trackingId/events.
//
// @Summary      Append a timeline event to a shipment
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trackingId  path      string           true  "Tracking id"
// @Param        body        body      addEventRequest  true  "Timeline event"
// @Success      200         {object}  shipmentResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      422         {object}  errorResponse
// @Router       /v1/shipments/{trackingId}/events [post]
func (h *EventHandler) Add(c echo.Context) error {
	trackingID := c.Param("trackingId")

	var req addEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.AddEvent(c.Request().Context(), trackingID, req.Text, req.Location)
	if err != nil {
		return err
	}

	metrics.TimelineEventsAddedTotal.Inc()
	return c.JSON(http.StatusOK, toShipmentResponse(record))
}
