package handler

import (
	"net/http"

	"zippay/internal/adapter/http/dto"
	"zippay/internal/core/ports"
	"zippay/pkg/apperror"
	"zippay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SessionHandler opens operator sessions against the configured PIN.
type SessionHandler struct {
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	pinHash  string
	log      zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(hashSvc ports.HashService, tokenSvc ports.TokenService, pinHash string, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		pinHash:  pinHash,
		log:      log,
	}
}

// Create handles POST /api/v1/session.
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	match, err := h.hashSvc.Verify(req.PIN, h.pinHash)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to verify operator PIN")
		response.Error(c, apperror.InternalError(err))
		return
	}
	if !match {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate("operator")
	if err != nil {
		h.log.Error().Err(err).Msg("failed to generate session token")
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.SessionResponse{
		Token:  token,
		Expiry: expiresAt.Unix(),
	})
}

// HealthCheck returns a handler that pings all registered dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
