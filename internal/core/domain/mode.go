package domain

import "strings"

// Mode selects which ledger backend serves requests.
type Mode string

const (
	ModeSimulated Mode = "SIMULATED"
	ModeRemote    Mode = "REMOTE"
)

// IsSimulated reports whether the local simulated ledger is active.
func (m Mode) IsSimulated() bool {
	return m != ModeRemote
}

// ParseMode accepts the mode names as well as the "demo"/"live" aliases.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(ModeSimulated), "DEMO":
		return ModeSimulated, true
	case string(ModeRemote), "LIVE":
		return ModeRemote, true
	}
	return "", false
}

// Persisted state keys. The local ledger keys share the store with the
// process-wide flags owned by the mode controller and connection manager.
const (
	KeyDemoBalance     = "demo_balance"
	KeyDemoHasNFT      = "demo_hasNFT"
	KeyDemoStudentInfo = "demo_studentInfo"
	KeyDemoHistory     = "demo_history"
	KeyTxHistory       = "txHistory"
	KeyDemoMode        = "demoMode"
	KeyWalletConnected = "walletConnected"
)
