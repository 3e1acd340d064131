package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fleetflow-backend/pkg/id"
)

// Claims carries the account identity and role so the role guard can decide
// without a DB round trip per request.
type Claims struct {
	jwt.RegisteredClaims
	AccountID uint64 `json:"account_id"`
	Role      string `json:"role"`
}

// Generate signs an HS256 token for the given account.
func Generate(secret string, accountID uint64, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("token: empty secret")
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.NewID32(),
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AccountID: accountID,
		Role:      role,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse validates signature and expiry and returns the account id and role.
func Parse(secret, tokenString string) (accountID uint64, role string, err error) {
	if secret == "" {
		return 0, "", errors.New("token: empty secret")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return 0, "", errors.New("token: invalid claims")
	}
	return claims.AccountID, claims.Role, nil
}
