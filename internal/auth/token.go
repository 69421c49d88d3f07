package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ayush/org-chart-api/internal/apperror"
)

// Claims carries the token subject alongside the registered claim set.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// TokenIssuer mints and verifies HS256 bearer tokens. The signing key is
// process-wide; rotating it invalidates every outstanding token.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *TokenIssuer) Issue(userID int64, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(i.secret)
}

// Parse validates a token and returns its claims. Bad signature, malformed
// structure and expiry all report the same unauthorized error so callers
// cannot tell which check failed.
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, apperror.New(apperror.CodeUnauthorized, "not authenticated")
	}
	return claims, nil
}
