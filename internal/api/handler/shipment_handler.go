package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locatepro/tracking-system/internal/api/metrics"
	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment operations, both the
// public tracking lookup and the admin CRUD surface.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Track handles GET /shipments/:trackingId, the public tracking lookup.
//
// @Summary      Look up a shipment by tracking id
// @Tags         tracking
// @Produce      json
// @Param        trackingId  path      string  true  "Tracking id (e.g. LPL-7A8B9C2D)"
// @Success      200         {object}  shipmentResponse
// @Failure      404         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /shipments/{trackingId} [get]
func (h *ShipmentHandler) Track(c echo.Context) error {
	trackingID := c.Param("trackingId")

	record, err := h.service.TrackShipment(c.Request().Context(), trackingID)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			metrics.TrackLookupsTotal.WithLabelValues("miss").Inc()
		} else {
			metrics.TrackLookupsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.TrackLookupsTotal.WithLabelValues("hit").Inc()
	return c.JSON(http.StatusOK, toShipmentResponse(record))
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        status       query     string  false  "Filter by status"
// @Param        freightType  query     string  false  "Filter by freight type"
// @Param        search       query     string  false  "Partial match on tracking id or sender"
// @Param        page         query     int     false  "Page number (1-based)"
// @Param        limit        query     int     false  "Page size (max 100)"
// @Success      200          {object}  listShipmentsResponse
// @Failure      401          {object}  errorResponse
// @Failure      403          {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListShipments(c.Request().Context(), ports.ListShipmentsInput{
		Status:      c.QueryParam("status"),
		FreightType: c.QueryParam("freightType"),
		Search:      c.QueryParam("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}

	data := make([]shipmentResponse, 0, len(result.Items))
	for _, item := range result.Items {
		data = append(data, toShipmentResponse(item))
	}

	return c.JSON(http.StatusOK, listShipmentsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.CreateShipment(c.Request().Context(), ports.CreateShipmentInput{
		TrackingID:      req.TrackingID,
		Origin:          req.Origin,
		Destination:     req.Destination,
		Status:          req.Status,
		Progress:        req.Progress,
		CurrentLocation: req.CurrentLocation,
		ETA:             req.ETA,
		FreightType:     req.FreightType,
		BookingMode:     req.BookingMode,
		Sender:          req.Sender,
		Recipient:       req.Recipient,
		Product:         req.Product,
		PaymentMethod:   req.PaymentMethod,
		Photo:           req.Photo,
		Cost:            req.Cost,
	})
	if err != nil {
		return err
	}

	freightType := record.FreightType
	if freightType == "" {
		freightType = "unknown"
	}
	metrics.ShipmentsCreatedTotal.WithLabelValues(freightType).Inc()

	return c.JSON(http.StatusCreated, toShipmentResponse(record))
}

// Update handles PUT /v1/shipments/:trackingId with a sparse patch body.
//
// @Summary      Update a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trackingId  path      string                 true  "Tracking id"
// @Param        body        body      updateShipmentRequest  true  "Fields to change; absent fields stay untouched"
// @Success      200         {object}  shipmentResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      422         {object}  errorResponse
// @Router       /v1/shipments/{trackingId} [put]
func (h *ShipmentHandler) Update(c echo.Context) error {
	trackingID := c.Param("trackingId")

	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.UpdateShipment(c.Request().Context(), trackingID, toShipmentPatch(req))
	if err != nil {
		return err
	}

	metrics.ShipmentsUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toShipmentResponse(record))
}

// Delete handles DELETE /v1/shipments/:trackingId.
//
// @Summary      Delete a shipment
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        trackingId  path  string  true  "Tracking id"
// @Success      204         "deleted"
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/shipments/{trackingId} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	trackingID := c.Param("trackingId")

	if err := h.service.DeleteShipment(c.Request().Context(), trackingID); err != nil {
		return err
	}

	metrics.ShipmentsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
