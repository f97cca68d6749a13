package domain

import (
	"fmt"
	"strings"
)

// IsZeroAddress reports whether addr is unset or a placeholder zero address.
func IsZeroAddress(addr string) bool {
	a := strings.ToLower(strings.TrimSpace(addr))
	if a == "" {
		return true
	}
	a = strings.TrimPrefix(a, "0x")
	return strings.Trim(a, "0") == ""
}

// ShortAddress renders 0x1234...abcd for log and notification text.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// ExplorerTxURL links a transaction hash on the block explorer.
func ExplorerTxURL(explorerBase, txHash string) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(explorerBase, "/"), txHash)
}
