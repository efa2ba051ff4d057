package handler

import (
	"zippay/internal/adapter/http/dto"
	"zippay/internal/core/ports"
	"zippay/pkg/apperror"
	"zippay/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment request endpoints.
type PaymentHandler struct {
	ledger        ports.LedgerService
	defaultOrigin string
}

// NewPaymentHandler creates a new PaymentHandler. defaultOrigin names the
// terminal on requests that do not carry their own origin label.
func NewPaymentHandler(ledger ports.LedgerService, defaultOrigin string) *PaymentHandler {
	return &PaymentHandler{ledger: ledger, defaultOrigin: defaultOrigin}
}

// Create handles POST /api/v1/payments/request.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	origin := req.Origin
	if origin == "" {
		origin = h.defaultOrigin
	}

	placed, err := h.ledger.CreatePaymentRequest(c.Request.Context(), origin, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.PaymentCreateResponse{Placed: placed})
}

// Resolve handles POST /api/v1/payments/resolve.
func (h *PaymentHandler) Resolve(c *gin.Context) {
	var req dto.PaymentResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledger.ResolvePaymentRequest(c.Request.Context(), *req.Approve); err != nil {
		response.Error(c, err)
		return
	}

	snap := h.ledger.Snapshot(c.Request.Context())
	response.OK(c, dto.ToSnapshotResponse(snap))
}
