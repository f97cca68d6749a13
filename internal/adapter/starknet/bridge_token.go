package starknet

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// bridgeAudience identifies tokens minted for the wallet bridge.
const bridgeAudience = "wallet-bridge"

// BridgeTokens issues HS256 tokens that authenticate this client to the wallet bridge.
type BridgeTokens struct {
	secret []byte
	expiry time.Duration
	issuer string
}

func NewBridgeTokens(secret string, expiry time.Duration, issuer string) *BridgeTokens {
	return &BridgeTokens{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed token with a unique ID.
func (t *BridgeTokens) Generate() (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.expiry)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    t.issuer,
		Audience:  jwt.ClaimStrings{bridgeAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing bridge token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a bridge token and checks signature, expiry and audience.
func (t *BridgeTokens) Validate(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithAudience(bridgeAudience), jwt.WithIssuer(t.issuer))
	if err != nil {
		return nil, fmt.Errorf("parsing bridge token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid bridge token")
	}
	return claims, nil
}
