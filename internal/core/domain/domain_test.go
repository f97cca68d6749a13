package domain

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"SIMULATED", ModeSimulated, true},
		{"demo", ModeSimulated, true},
		{"remote", ModeRemote, true},
		{" live ", ModeRemote, true},
		{"testnet", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_IsSimulated(t *testing.T) {
	assert.True(t, ModeSimulated.IsSimulated())
	assert.False(t, ModeRemote.IsSimulated())
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.5", a.String())

	_, err = ParseAmount("-1")
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = ParseAmount("ten")
	assert.Error(t, err)
}

func TestAmount_BaseUnits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10000000000000000000"},
		{"0.5", "500000000000000000"},
		{"0.000000000000000001", "1"},
		{"1.500000000000000000000", "1500000000000000000"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := MustAmount(tt.in).BaseUnits()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Dec())
		})
	}
}

func TestParseAmount_Bounds(t *testing.T) {
	const maxU256 = "115792089237316195423570985008687907853269984665640564039457.584007913129639935"
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"smallest unit", "0.000000000000000001", "0.000000000000000001", nil},
		{"trailing zeros past 18 digits", "2.50000000000000000000", "2.5", nil},
		{"largest u256", maxU256, maxU256, nil},
		{"excess precision", "0.0000000000000000001", "", ErrAmountPrecision},
		{"excess precision with integer part", "1.1234567890123456789", "", ErrAmountPrecision},
		{"exponent notation", "1e50000000", "", ErrAmountNotation},
		{"small exponent", "1E2", "", ErrAmountNotation},
		{"negative exponent", "5e-1", "", ErrAmountNotation},
		{"one unit above u256", "115792089237316195423570985008687907853269984665640564039457.584007913129639936", "", ErrAmountOverflow},
		{"79 integer digits", "1" + strings.Repeat("0", 78), "", ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAmount(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestAmount_BaseUnitsAtU256Limit(t *testing.T) {
	limit := new(uint256.Int).SetAllOne()
	a := AmountFromBaseUnits(limit)

	parsed, err := ParseAmount(a.String())
	require.NoError(t, err)
	v, err := parsed.BaseUnits()
	require.NoError(t, err)
	assert.True(t, limit.Eq(v))

	_, err = a.Add(MustAmount("0.000000000000000001")).BaseUnits()
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func TestAmount_BaseUnitsRoundTrip(t *testing.T) {
	v := uint256.MustFromDecimal("1234500000000000000000")
	a := AmountFromBaseUnits(v)
	assert.Equal(t, "1234.5", a.String())

	back, err := a.BaseUnits()
	require.NoError(t, err)
	assert.True(t, v.Eq(back))
}

func TestAmount_Arithmetic(t *testing.T) {
	balance := MustAmount("0")
	for i := 0; i < 10; i++ {
		balance = balance.Add(MustAmount("0.1"))
	}
	assert.Equal(t, "1", balance.String())

	for i := 0; i < 10; i++ {
		balance = balance.Sub(MustAmount("0.1"))
	}
	assert.True(t, balance.IsZero())
	assert.True(t, MustAmount("1").LessThan(MustAmount("1.01")))
}

func TestPrependCapped(t *testing.T) {
	var log []TransactionEntry
	now := time.Unix(1700000000, 0)
	for i := 0; i < 51; i++ {
		e := NewTransactionEntry(TransactionKindReward, MustAmount("10"), fmt.Sprintf("0x%02d", i), "Daily check-in reward", now)
		log = PrependCapped(log, e, 50)
	}

	require.Len(t, log, 50)
	assert.Equal(t, "0x50", log[0].TxHash)
	assert.Equal(t, "0x01", log[49].TxHash)
	for _, e := range log {
		assert.NotEqual(t, "0x00", e.TxHash)
	}
}

func TestPrependCapped_DefaultLimit(t *testing.T) {
	e := NewTransactionEntry(TransactionKindSpend, MustAmount("1"), "0x1", "Purchase", time.Now())
	log := PrependCapped(nil, e, 0)
	assert.Len(t, log, 1)
}

func TestNewTransactionEntry(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	a := NewTransactionEntry(TransactionKindSpend, MustAmount("20"), "0xabc", "Purchased Coffee", now)
	b := NewTransactionEntry(TransactionKindSpend, MustAmount("20"), "0xabc", "Purchased Coffee", now)

	assert.Equal(t, int64(1700000000123), a.Timestamp)
	assert.Equal(t, "20", a.Amount)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFilterByKind(t *testing.T) {
	now := time.Now()
	log := []TransactionEntry{
		NewTransactionEntry(TransactionKindSpend, MustAmount("20"), "0x3", "Purchase", now),
		NewTransactionEntry(TransactionKindReward, MustAmount("10"), "0x2", "Daily check-in reward", now),
		NewTransactionEntry(TransactionKindReward, MustAmount("10"), "0x1", "Daily check-in reward", now),
	}

	assert.Len(t, FilterByKind(log, ""), 3)
	assert.Len(t, FilterByKind(log, TransactionKindReward), 2)
	spend := FilterByKind(log, TransactionKindSpend)
	require.Len(t, spend, 1)
	assert.Equal(t, "0x3", spend[0].TxHash)
}

func TestParseTransactionKind(t *testing.T) {
	k, ok := ParseTransactionKind("all")
	assert.True(t, ok)
	assert.Empty(t, k)

	k, ok = ParseTransactionKind("reward")
	assert.True(t, ok)
	assert.Equal(t, TransactionKindReward, k)

	_, ok = ParseTransactionKind("refund")
	assert.False(t, ok)
}

func TestConfirmationState_IsTerminal(t *testing.T) {
	assert.True(t, ConfirmationConfirmed.IsTerminal())
	assert.True(t, ConfirmationRejected.IsTerminal())
	assert.False(t, ConfirmationSubmitted.IsTerminal())
	assert.False(t, ConfirmationTimedOut.IsTerminal())
}

func TestIsZeroAddress(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"", true},
		{"0x0", true},
		{"0x0000000000000000000000000000000000000000000000000000000000000000", true},
		{"0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7", false},
		{"0x1", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, IsZeroAddress(tt.addr))
		})
	}
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x049d...4dc7", ShortAddress("0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7"))
	assert.Equal(t, "0x1", ShortAddress("0x1"))
}

func TestExplorerTxURL(t *testing.T) {
	assert.Equal(t, "https://sepolia.voyager.online/tx/0xabc", ExplorerTxURL("https://sepolia.voyager.online/", "0xabc"))
}

func TestFindProduct(t *testing.T) {
	p, ok := FindProduct(DefaultProducts, "bread")
	require.True(t, ok)
	assert.Equal(t, "30", p.Price.String())

	_, ok = FindProduct(DefaultProducts, "pizza")
	assert.False(t, ok)
}

func TestIdentityMetadata_IsEmpty(t *testing.T) {
	assert.True(t, IdentityMetadata{}.IsEmpty())
	assert.False(t, IdentityMetadata{StudentName: "An"}.IsEmpty())
}
