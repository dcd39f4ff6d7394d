package handler

import (
	"errors"
	"net/http"

	"bookingnest-payments/internal/adapter/http/dto"
	"bookingnest-payments/internal/core/ports"
	"bookingnest-payments/pkg/apperror"
	"bookingnest-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OrderHandler handles the deposit order endpoints.
type OrderHandler struct {
	orderSvc ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// CreateOrder handles POST /create-order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A tag violation (bad currency code) keeps its own message;
		// anything else is an unparseable amount.
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	handle, err := h.orderSvc.CreateOrder(c.Request.Context(), ports.CreateOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		UserID:   req.UserID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CreateOrderResponse{OrderID: handle.OrderID})
}

// CaptureOrder handles POST /capture-order.
func (h *OrderHandler) CaptureOrder(c *gin.Context) {
	var req dto.CaptureOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMissingOrderID())
		return
	}

	outcome, err := h.orderSvc.CaptureOrder(c.Request.Context(), ports.CaptureOrderRequest{
		OrderID: req.OrderID,
		UserID:  req.UserID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if !outcome.Completed {
		c.JSON(http.StatusBadRequest, dto.CaptureIncompleteResponse{
			Error:   "Capture not completed",
			Capture: outcome.Capture,
		})
		return
	}

	response.OK(c, dto.CaptureOrderResponse{Success: true, Capture: outcome.Capture})
}
