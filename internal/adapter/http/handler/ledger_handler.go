package handler

import (
	"campus-ledger/internal/adapter/http/dto"
	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/pkg/apperror"
	"campus-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const pointsSymbol = "CPT"

// LedgerHandler handles balance, check-in, purchase and transfer endpoints.
type LedgerHandler struct {
	ledger ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// GetBalance handles GET /api/v1/ledger/balance?address=.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	address := c.Query("address")
	balance, err := h.ledger.GetBalance(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Address: address, Balance: balance, Symbol: pointsSymbol})
}

// CheckIn handles POST /api/v1/ledger/check-in.
func (h *LedgerHandler) CheckIn(c *gin.Context) {
	txHash, err := h.ledger.CheckIn(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.tx(txHash))
}

// Purchase handles POST /api/v1/ledger/purchase.
func (h *LedgerHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var (
		txHash string
		err    error
	)
	if req.ProductID != "" {
		txHash, err = h.ledger.PurchaseProduct(c.Request.Context(), req.ProductID)
	} else {
		txHash, err = h.ledger.Purchase(c.Request.Context(), req.Amount)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.tx(txHash))
}

// Transfer handles POST /api/v1/ledger/transfer.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txHash, err := h.ledger.Transfer(c.Request.Context(), req.Recipient, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.tx(txHash))
}

// History handles GET /api/v1/ledger/history?type=all|reward|spend.
func (h *LedgerHandler) History(c *gin.Context) {
	kind, ok := domain.ParseTransactionKind(c.Query("type"))
	if !ok {
		response.Error(c, apperror.Validation("type must be one of all, reward, spend"))
		return
	}
	entries, err := h.ledger.History(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTransactionList(entries, h.ledger.ExplorerTxURL))
}

// Products handles GET /api/v1/products.
func (h *LedgerHandler) Products(c *gin.Context) {
	response.OK(c, dto.NewProductList(h.ledger.Products()))
}

func (h *LedgerHandler) tx(txHash string) dto.TxResponse {
	return dto.TxResponse{TxHash: txHash, ExplorerURL: h.ledger.ExplorerTxURL(txHash)}
}
