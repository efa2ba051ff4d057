package handler

import (
	"zippay/internal/adapter/http/dto"
	"zippay/internal/core/domain"
	"zippay/internal/core/ports"
	"zippay/pkg/apperror"
	"zippay/pkg/response"

	"github.com/gin-gonic/gin"
)

// DeviceHandler handles connectivity and device switches.
type DeviceHandler struct {
	ledger ports.LedgerService
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(ledger ports.LedgerService) *DeviceHandler {
	return &DeviceHandler{ledger: ledger}
}

// SetConnectivity handles PUT /api/v1/connectivity.
func (h *DeviceHandler) SetConnectivity(c *gin.Context) {
	var req dto.ConnectivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledger.SetConnectivity(c.Request.Context(), domain.Channel(req.Channel), *req.On); err != nil {
		response.Error(c, err)
		return
	}

	snap := h.ledger.Snapshot(c.Request.Context())
	response.OK(c, dto.ToSnapshotResponse(snap))
}

// Toggle handles POST /api/v1/devices/toggle.
func (h *DeviceHandler) Toggle(c *gin.Context) {
	var req dto.DeviceToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	active, err := h.ledger.ToggleActive(c.Request.Context(), domain.Side(req.Side))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DeviceToggleResponse{Side: req.Side, Active: active})
}
