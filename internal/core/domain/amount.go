package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// TokenDecimals is the number of fractional digits of the on-chain CPT representation.
const TokenDecimals = 18

var (
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrAmountOverflow  = errors.New("amount does not fit in 256 bits")
	ErrAmountPrecision = errors.New("amount has more than 18 fractional digits")
	ErrAmountNotation  = errors.New("amount must be a plain decimal without exponent")
)

// maxAmount is the largest CPT value whose base units fit in a felt-pair u256.
var maxAmount = decimal.NewFromBigInt(new(uint256.Int).SetAllOne().ToBig(), -TokenDecimals)

// Amount is a decimal CPT value. The zero value is 0.
type Amount struct {
	d decimal.Decimal
}

// ParseAmount parses a non-negative decimal string such as "10" or "12.5".
// Every accepted value converts to base units exactly; anything else is
// rejected before any scaling happens.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		return Amount{}, ErrAmountNotation
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}
	if !d.Equal(d.Truncate(TokenDecimals)) {
		return Amount{}, ErrAmountPrecision
	}
	if d.GreaterThan(maxAmount) {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{d: d}, nil
}

// MustAmount is ParseAmount for constants; it panics on bad input.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFromBaseUnits converts an 18-decimal fixed-point integer back to CPT.
func AmountFromBaseUnits(v *uint256.Int) Amount {
	if v == nil {
		return Amount{}
	}
	return Amount{d: decimal.NewFromBigInt(v.ToBig(), -TokenDecimals)}
}

// BaseUnits converts the amount to its 18-decimal fixed-point integer form.
func (a Amount) BaseUnits() (*uint256.Int, error) {
	if a.d.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if a.d.GreaterThan(maxAmount) {
		return nil, ErrAmountOverflow
	}
	if !a.d.Equal(a.d.Truncate(TokenDecimals)) {
		return nil, ErrAmountPrecision
	}
	v, overflow := uint256.FromBig(a.d.Shift(TokenDecimals).Truncate(0).BigInt())
	if overflow {
		return nil, ErrAmountOverflow
	}
	return v, nil
}

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool { return a.d.LessThan(b.d) }

func (a Amount) IsZero() bool { return a.d.IsZero() }

// String renders the exact decimal value without trailing zeros.
func (a Amount) String() string { return a.d.String() }
