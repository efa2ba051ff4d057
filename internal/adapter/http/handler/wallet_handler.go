package handler

import (
	"zippay/internal/adapter/http/dto"
	"zippay/internal/core/ports"
	"zippay/pkg/apperror"
	"zippay/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles watch-wallet endpoints.
type WalletHandler struct {
	ledger ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// Load handles POST /api/v1/wallet/load.
func (h *WalletHandler) Load(c *gin.Context) {
	var req dto.LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tx, err := h.ledger.LoadTopUp(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToTransactionResponse(*tx))
}

// Sync handles POST /api/v1/wallet/sync.
func (h *WalletHandler) Sync(c *gin.Context) {
	if err := h.ledger.SyncWatch(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	snap := h.ledger.Snapshot(c.Request.Context())
	response.OK(c, dto.ToSnapshotResponse(snap))
}

// AutoReload handles PUT /api/v1/wallet/auto-reload.
func (h *WalletHandler) AutoReload(c *gin.Context) {
	var req dto.AutoReloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.ledger.SetAutoReload(c.Request.Context(), *req.Enabled)

	snap := h.ledger.Snapshot(c.Request.Context())
	response.OK(c, dto.ToSnapshotResponse(snap))
}

// GetSnapshot handles GET /api/v1/snapshot.
func (h *WalletHandler) GetSnapshot(c *gin.Context) {
	snap := h.ledger.Snapshot(c.Request.Context())
	response.OK(c, dto.ToSnapshotResponse(snap))
}
