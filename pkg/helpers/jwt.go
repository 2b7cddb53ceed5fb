package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired marks a token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure: bad
	// signature, malformed segments, wrong algorithm.
	ErrTokenInvalid = errors.New("token invalid")
)

// JWTManager signs and verifies access tokens. Tokens are HS256 with the
// username as subject; verification needs nothing beyond the secret, so the
// hot path never touches the database.
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:    []byte(secret),
		AccessTTL: accessTTL,
	}
}

type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string { return c.Subject }

// GenerateAccessToken issues a signed token for the given username, valid
// for the configured TTL.
func (m *JWTManager) GenerateAccessToken(username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.AccessTTL)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseAccessToken verifies the signature and expiry before any claim is
// trusted, and reports the failure as ErrTokenExpired or ErrTokenInvalid.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
