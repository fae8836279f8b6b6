// Package checkin issues and verifies the signed codes behind the
// organizer's check-in QR tool.
//
// A code is an HS256 JWT naming one event. It expires when the event ends,
// so a code shown on the projector cannot be replayed after the event.
// Each code carries a random jti so two codes for the same event differ.
package checkin

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is written into every code and required when parsing.
const Issuer = "eventboard"

// Claims are the claims embedded in a check-in code.
type Claims struct {
	EventID int `json:"event_id"`
	jwt.RegisteredClaims
}

// GenerateCode signs a check-in code for eventID valid from now until
// expiresAt.
func GenerateCode(eventID int, now, expiresAt time.Time, secret string) (string, error) {
	if !expiresAt.After(now) {
		return "", errors.New("check-in code would already be expired")
	}
	claims := Claims{
		EventID: eventID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   strconv.Itoa(eventID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign check-in code: %w", err)
	}
	return signed, nil
}

// ParseCode verifies a check-in code at now and returns its claims.
// It rejects bad signatures, non-HMAC algorithms, foreign issuers and
// expired codes.
func ParseCode(code, secret string, now time.Time) (*Claims, error) {
	token, err := jwt.ParseWithClaims(code, &Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, fmt.Errorf("parse check-in code: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid check-in code")
	}
	return claims, nil
}
