package helpers

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMissingSubject   = errors.New("token has no subject")
)

// TokenService issues and verifies stateless HS256 identity tokens.
// The secret is fixed at construction; every call is a pure function of
// (token, secret), so one instance is safe to share across goroutines.
//
// Tokens carry no expiry, matching the existing client contract.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// TokenUser is the subject payload, serialized as {"user":{"id":"..."}}.
type TokenUser struct {
	ID string `json:"id"`
}

type Claims struct {
	User *TokenUser `json:"user,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token for subject. Output is deterministic for a given secret.
func (s *TokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{User: &TokenUser{ID: subject}})
	return t.SignedString(s.secret)
}

// Verify checks the signature and returns the subject.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformedToken
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return "", ErrInvalidSignature
		}
		return "", ErrMalformedToken
	}
	if claims.User == nil || claims.User.ID == "" {
		return "", ErrMissingSubject
	}
	return claims.User.ID, nil
}
