// Package identity verifies session tokens minted by the external identity
// service. The service signs HS256 JWTs whose subject is the back-office
// user id; this verifier is the only authentication surface the document
// API needs.
package identity

import (
	"context"
	"errors"
	"fmt"

	"mwonto_studio/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("missing AUTH_JWT_SECRET")
	ErrNoToken       = errors.New("no session token")
	ErrInvalidToken  = errors.New("invalid session token")
)

type JWTVerifier struct {
	secret []byte
	issuer string
}

var _ interfaces.IIdentityProvider = (*JWTVerifier)(nil)

func NewJWTVerifier(secret, issuer string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}, nil
}

func (v *JWTVerifier) VerifySession(_ context.Context, token string) (interfaces.Session, error) {
	if token == "" {
		return interfaces.Session{}, ErrNoToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return interfaces.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return interfaces.Session{}, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return interfaces.Session{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	return interfaces.Session{UserID: sub, Email: email}, nil
}
