// Package token issues and parses the platform's signed session tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/models"
)

// Kind tags a token as an access or a refresh credential.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer signs HS256 tokens carrying the account identity.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue creates a signed token of the given kind valid for ttl. The jti claim
// makes every token distinct even when two are issued within the same second,
// which the unique index on stored refresh tokens relies on.
func (i *Issuer) Issue(kind Kind, username, email string, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"kind":     string(kind),
		"username": username,
		"email":    email,
		"role":     string(role),
		"jti":      uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Parse verifies the signature and expiry and returns the claims.
func (i *Issuer) Parse(raw string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseKind verifies the token and additionally requires its kind tag.
func (i *Issuer) ParseKind(raw string, kind Kind) (jwt.MapClaims, error) {
	claims, err := i.Parse(raw)
	if err != nil {
		return nil, err
	}
	if k, _ := claims["kind"].(string); k != string(kind) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
