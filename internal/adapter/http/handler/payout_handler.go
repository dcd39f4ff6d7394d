package handler

import (
	"net/http"

	"bookingnest-payments/internal/adapter/http/dto"
	"bookingnest-payments/internal/core/ports"
	"bookingnest-payments/pkg/apperror"
	"bookingnest-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// PayoutHandler handles the withdrawal endpoints.
type PayoutHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(withdrawalSvc ports.WithdrawalService) *PayoutHandler {
	return &PayoutHandler{withdrawalSvc: withdrawalSvc}
}

// Withdraw handles POST /withdraw.
func (h *PayoutHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The only parse-fragile field is the amount.
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	outcome, err := h.withdrawalSvc.Withdraw(c.Request.Context(), ports.WithdrawalRequest{
		Email:  req.Email,
		Amount: req.Amount,
		UserID: req.UserID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// A gateway-side decline comes from a trusted partner; pass it
	// through verbatim so the caller can see the decline reason.
	if outcome.Rejected() {
		response.Raw(c, http.StatusBadRequest, outcome.Rejection)
		return
	}

	response.OK(c, dto.WithdrawResponse{
		Success:      true,
		Batch:        outcome.Batch,
		ServiceFee:   outcome.ServiceFee,
		PayoutAmount: outcome.PayoutAmount,
	})
}

// PayoutStatus handles GET /payout-status/:payoutBatchId.
func (h *PayoutHandler) PayoutStatus(c *gin.Context) {
	batchID := c.Param("payoutBatchId")

	raw, err := h.withdrawalSvc.PayoutStatus(c.Request.Context(), batchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Raw(c, http.StatusOK, raw)
}
