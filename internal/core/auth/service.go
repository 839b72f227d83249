// Package auth issues and validates the short-lived admin tokens that
// gate the diagnostics endpoints.
package auth

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrBadCredentials is returned when the admin password does not
	// match the configured hash.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for malformed, expired or foreign
	// tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the payload of an admin token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service exchanges the admin password for RS256 tokens and validates
// them on admin requests.
type Service struct {
	privateKey   *rsa.PrivateKey
	publicKey    *rsa.PublicKey
	passwordHash string
	ttl          time.Duration
}

// NewService loads (or generates) the signing key and builds the
// token service.
func NewService(cfg Config) (*Service, error) {
	key, err := EnsurePrivateKey(cfg.PrivateKeyFile)
	if err != nil {
		return nil, err
	}

	return &Service{
		privateKey:   key,
		publicKey:    &key.PublicKey,
		passwordHash: cfg.AdminPasswordHash,
		ttl:          cfg.TokenTTL,
	}, nil
}

// IssueToken verifies the admin password and returns a signed token
// with its lifetime in seconds.
func (s *Service) IssueToken(password string) (token string, expiresIn int, err error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", 0, ErrBadCredentials
	}

	now := time.Now()
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", 0, err
	}
	return signed, int(s.ttl.Seconds()), nil
}

// ValidateToken parses and verifies a token string.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.publicKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != "admin" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword produces a bcrypt hash suitable for the
// admin_password_hash config field. Exposed for the gen-admin-hash
// flag in cmd/primedex.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
