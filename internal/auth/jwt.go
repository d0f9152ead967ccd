// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/mealmatch/internal/config"
)

// MinSecretLength is the minimum accepted JWT secret length.
const MinSecretLength = 32

// Claims carries the role next to the registered claims. Subject is the
// user id the token acts for.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT token creation and validation
type JWTManager struct {
	secret  []byte
	timeout time.Duration
}

// NewJWTManager creates an HS256 token manager.
//
// The secret must be at least MinSecretLength characters. A zero TokenTTL
// defaults to 24 hours.
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", MinSecretLength)
	}
	timeout := cfg.TokenTTL
	if timeout <= 0 {
		timeout = 24 * time.Hour
	}
	return &JWTManager{
		secret:  []byte(cfg.JWTSecret),
		timeout: timeout,
	}, nil
}

// GenerateToken signs a token for subject with the given role.
func (m *JWTManager) GenerateToken(subject, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.timeout)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature, algorithm and time claims. Every failure
// wraps ErrInvalidToken.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if claims.Role == "" {
		claims.Role = RoleUser
	}
	return claims, nil
}
