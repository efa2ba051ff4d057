package handler

import (
	"zippay/internal/adapter/http/dto"
	"zippay/internal/core/ports"
	"zippay/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler handles terminal-side endpoints.
type MerchantHandler struct {
	ledger ports.LedgerService
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(ledger ports.LedgerService) *MerchantHandler {
	return &MerchantHandler{ledger: ledger}
}

// Settle handles POST /api/v1/merchant/settle.
func (h *MerchantHandler) Settle(c *gin.Context) {
	amount, err := h.ledger.SettleMerchant(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SettleResponse{Amount: amount})
}
