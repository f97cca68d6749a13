package handler

import (
	"campus-ledger/internal/adapter/http/dto"
	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/apperror"
	"campus-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// IdentityHandler handles student identity endpoints.
type IdentityHandler struct {
	ledger ports.LedgerService
}

func NewIdentityHandler(ledger ports.LedgerService) *IdentityHandler {
	return &IdentityHandler{ledger: ledger}
}

// Status handles GET /api/v1/identity?address=.
func (h *IdentityHandler) Status(c *gin.Context) {
	address := c.Query("address")
	has, err := h.ledger.HasIdentity(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.IdentityStatusResponse{Address: address, HasIdentity: has})
}

// Mint handles POST /api/v1/identity/mint.
func (h *IdentityHandler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	if req.AvatarURI == "" {
		req.AvatarURI = domain.DemoAvatars[0]
	}

	res, err := h.ledger.MintIdentity(c.Request.Context(), domain.IdentityMetadata{
		AvatarURI:   req.AvatarURI,
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.TxResponse{
		TxHash:      res.TxHash,
		ExplorerURL: h.ledger.ExplorerTxURL(res.TxHash),
		TokenID:     res.TokenID,
	})
}

// Info handles GET /api/v1/identity/:token_id.
func (h *IdentityHandler) Info(c *gin.Context) {
	tokenID := c.Param("token_id")
	meta, err := h.ledger.GetIdentityInfo(c.Request.Context(), tokenID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewIdentityResponse(tokenID, meta))
}

// Avatars handles GET /api/v1/identity/avatars.
func (h *IdentityHandler) Avatars(c *gin.Context) {
	response.OK(c, domain.DemoAvatars)
}
