package dto

import (
	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
)

// ConnectRequest is the request body for opening a wallet session.
type ConnectRequest struct {
	Silent bool `json:"silent"`
}

// SessionResponse describes the live wallet session.
type SessionResponse struct {
	Connected    bool   `json:"connected"`
	Address      string `json:"address,omitempty"`
	ShortAddress string `json:"short_address,omitempty"`
}

// ModeRequest is the request body for switching the ledger mode.
// Accepts SIMULATED/REMOTE as well as demo/live.
type ModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// ModeResponse reports the active ledger mode.
type ModeResponse struct {
	Mode     string `json:"mode"`
	DemoMode bool   `json:"demo_mode"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Address string `json:"address,omitempty"`
	Balance string `json:"balance"`
	Symbol  string `json:"symbol"`
}

// PurchaseRequest buys either a catalog product or a free amount.
type PurchaseRequest struct {
	ProductID string `json:"product_id,omitempty" binding:"required_without=Amount,omitempty,safe_id"`
	Amount    string `json:"amount,omitempty" binding:"required_without=ProductID,omitempty,decimal"`
}

// TransferRequest is the request body for sending points.
type TransferRequest struct {
	Recipient string `json:"recipient" binding:"required,felt"`
	Amount    string `json:"amount" binding:"required,decimal"`
}

// MintRequest is the request body for minting a student identity. The
// metadata is stored verbatim so GetIdentityInfo returns what was minted;
// JSON responses escape it on the way out.
type MintRequest struct {
	AvatarURI   string `json:"avatar_uri" binding:"omitempty,safe_url" sanitize:"-"`
	StudentName string `json:"student_name" binding:"required,max=100" sanitize:"-"`
	StudentID   string `json:"student_id" binding:"required,max=32" sanitize:"-"`
}

// TxResponse is returned by every state-changing ledger call.
type TxResponse struct {
	TxHash      string `json:"tx_hash"`
	ExplorerURL string `json:"explorer_url"`
	TokenID     string `json:"token_id,omitempty"`
}

// IdentityStatusResponse reports identity possession.
type IdentityStatusResponse struct {
	Address     string `json:"address,omitempty"`
	HasIdentity bool   `json:"has_identity"`
}

// IdentityResponse carries identity metadata.
type IdentityResponse struct {
	TokenID     string `json:"token_id"`
	AvatarURI   string `json:"avatar_uri"`
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Icon  string `json:"icon"`
}

// TransactionResponse is one activity log entry.
type TransactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Timestamp   int64  `json:"timestamp"`
	TxHash      string `json:"tx_hash"`
	Description string `json:"description"`
	ExplorerURL string `json:"explorer_url"`
}

// TransactionListResponse wraps the filtered activity log.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

func NewSessionResponse(s *ports.Session) SessionResponse {
	if s == nil {
		return SessionResponse{}
	}
	return SessionResponse{
		Connected:    true,
		Address:      s.Address,
		ShortAddress: domain.ShortAddress(s.Address),
	}
}

func NewModeResponse(m domain.Mode) ModeResponse {
	return ModeResponse{Mode: string(m), DemoMode: m.IsSimulated()}
}

func NewIdentityResponse(tokenID string, m *domain.IdentityMetadata) IdentityResponse {
	return IdentityResponse{
		TokenID:     tokenID,
		AvatarURI:   m.AvatarURI,
		StudentName: m.StudentName,
		StudentID:   m.StudentID,
	}
}

func NewProductList(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price.String(), Icon: p.Icon})
	}
	return out
}

// NewTransactionList maps entries, linking each hash with explorer.
func NewTransactionList(entries []domain.TransactionEntry, explorer func(string) string) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TransactionResponse{
			ID:          e.ID,
			Type:        string(e.Kind),
			Amount:      e.Amount,
			Timestamp:   e.Timestamp,
			TxHash:      e.TxHash,
			Description: e.Description,
			ExplorerURL: explorer(e.TxHash),
		})
	}
	return TransactionListResponse{Transactions: out, Count: len(out)}
}
