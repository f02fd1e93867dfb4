package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the decoded, trusted identity payload carried by a token.
type Claims struct {
	UserID   int64
	Username string
	Role     string
}

// TokenCodec encodes and decodes signed, time-bound identity claims.
// It holds no mutable state; output is a pure function of the secret,
// the claims, and the clock.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given signing secret and token
// lifetime. A non-positive ttl falls back to 24 hours.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Encode signs the claims with an embedded expiry and returns the token string.
func (tc *TokenCodec) Encode(claims Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(tc.ttl).Unix(),
	})
	return t.SignedString(tc.secret)
}

// Decode verifies signature and expiry in one step and returns the claims.
// Every failure mode (malformed token, bad signature, wrong algorithm,
// expired) collapses to domain.ErrInvalidToken so callers cannot distinguish
// tamper from expiry.
func (tc *TokenCodec) Decode(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, domain.ErrInvalidToken
	}

	id, ok := mc["id"].(float64)
	if !ok {
		return Claims{}, domain.ErrInvalidToken
	}
	username, _ := mc["username"].(string)
	role, _ := mc["role"].(string)

	return Claims{UserID: int64(id), Username: username, Role: role}, nil
}
