package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role allowed through the write guard.
const RoleAdmin = "admin"

const issuer = "archviz-portfolio"

type SignedDetails struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignedToken issues an HS256 token for subject that expires after ttl.
func SignedToken(secret, subject, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}

	now := time.Now()
	claims := &SignedDetails{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature, issuer and expiry and returns the claims.
func ParseToken(secret, tokenString string) (*SignedDetails, error) {
	claims := &SignedDetails{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthorizeRole reports whether role is one of allowed.
func AuthorizeRole(role string, allowed ...string) error {
	for _, a := range allowed {
		if a == role {
			return nil
		}
	}
	return errors.New("role not authorized")
}
