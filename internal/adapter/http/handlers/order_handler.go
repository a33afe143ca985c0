package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "studio_orders/internal/adapter/http/dto/request"
	response "studio_orders/internal/adapter/http/dto/response"
	"studio_orders/internal/domain/entities"
	"studio_orders/internal/usecase"
	"studio_orders/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order submission and the tracking surface.

type OrderHandler struct {
	submission usecase.IOrderSubmissionUseCase
	tracking   usecase.IOrderTrackingUseCase
}

func NewOrderHandler(submission usecase.IOrderSubmissionUseCase, tracking usecase.IOrderTrackingUseCase) *OrderHandler {
	return &OrderHandler{submission: submission, tracking: tracking}
}

// SubmitOrder accepts a completed order payload. The response envelopes
// are part of the public contract: 200 on success, 400 with details for
// anything the client can correct, 500 otherwise.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var payload request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.OrderErrorResponse{
			Success: false,
			Error:   "Invalid order data",
			Details: []string{"Malformed request body"},
		})
		return
	}

	meta := entities.TrackingMetadata{
		ClientIP:  valueOrUnknown(c.ClientIP()),
		UserAgent: valueOrUnknown(c.Request.UserAgent()),
	}

	result, err := h.submission.Submit(c.Request.Context(), payload.ToOrderData(), meta)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, response.OrderErrorResponse{
				Success: false,
				Error:   "Invalid order data",
				Details: ve.Details,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.OrderErrorResponse{
			Success: false,
			Error:   "Failed to submit order",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.FromSubmittedOrder(result.Order))
}

// TrackOrder returns an order with its full tracking history.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	tracking, err := h.tracking.Track(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderTracking(tracking.Order, tracking.Entries))
}

// UpdateOrderStatus is the internal surface for moving an order through
// its lifecycle. Each call appends a tracking entry.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.tracking.UpdateStatus(
		c.Request.Context(),
		c.Param("order_id"),
		entities.OrderStatus(strings.ToLower(strings.TrimSpace(payload.Status))),
		payload.Note,
		payload.Author,
	)
	if err != nil {
		appErr := mapOrderTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUpdatedOrder(order))
}

func mapOrderTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func valueOrUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return "unknown"
	}
	return v
}
