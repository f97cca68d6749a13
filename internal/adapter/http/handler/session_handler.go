package handler

import (
	"campus-ledger/internal/adapter/http/dto"
	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/apperror"
	"campus-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles wallet session and ledger mode endpoints.
type SessionHandler struct {
	conn  ports.ConnectionService
	modes ports.ModeService
}

func NewSessionHandler(conn ports.ConnectionService, modes ports.ModeService) *SessionHandler {
	return &SessionHandler{conn: conn, modes: modes}
}

// Connect handles POST /api/v1/session. An empty body is an interactive connect.
func (h *SessionHandler) Connect(c *gin.Context) {
	var req dto.ConnectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	session, err := h.conn.Connect(c.Request.Context(), req.Silent)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSessionResponse(session))
}

// Disconnect handles DELETE /api/v1/session.
func (h *SessionHandler) Disconnect(c *gin.Context) {
	h.conn.Disconnect(c.Request.Context())
	response.OK(c, dto.NewSessionResponse(nil))
}

// Get handles GET /api/v1/session.
func (h *SessionHandler) Get(c *gin.Context) {
	response.OK(c, dto.NewSessionResponse(h.conn.Session()))
}

// GetMode handles GET /api/v1/mode.
func (h *SessionHandler) GetMode(c *gin.Context) {
	response.OK(c, dto.NewModeResponse(h.modes.Mode()))
}

// SetMode handles PUT /api/v1/mode.
func (h *SessionHandler) SetMode(c *gin.Context) {
	var req dto.ModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	mode, ok := domain.ParseMode(req.Mode)
	if !ok {
		response.Error(c, apperror.Validation("mode must be SIMULATED or REMOTE"))
		return
	}
	if err := h.modes.SetMode(c.Request.Context(), mode); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewModeResponse(h.modes.Mode()))
}
