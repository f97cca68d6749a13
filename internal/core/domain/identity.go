package domain

// DefaultTokenID is the identity token id reported by the simulated ledger.
const DefaultTokenID = "1"

// IdentityMetadata is the student identity credential payload.
type IdentityMetadata struct {
	AvatarURI   string `json:"avatarUri"`
	StudentName string `json:"studentName"`
	StudentID   string `json:"studentId"`
}

// IsEmpty reports whether no credential data is present.
func (m IdentityMetadata) IsEmpty() bool {
	return m.AvatarURI == "" && m.StudentName == "" && m.StudentID == ""
}

// MintResult is returned by a successful identity mint.
type MintResult struct {
	TokenID string `json:"token_id"`
	TxHash  string `json:"tx_hash"`
}

// LedgerRecord is the simulated balance and identity state of the single local user.
type LedgerRecord struct {
	Balance     Amount
	HasIdentity bool
	Identity    *IdentityMetadata
}

// DemoAvatars are avatar choices offered when minting a demo identity.
var DemoAvatars = []string{
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Aneka",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Jasmine",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Max",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Lucy",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Bob",
}
