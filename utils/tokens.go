package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"

	AccessTokenLifetime  = 30 * time.Minute
	RefreshTokenLifetime = 24 * time.Hour
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type Claims struct {
	TokenType string `json:"token_type"`
	UserID    uint   `json:"user_id"`
	IsStaff   bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer signs and verifies HS256 access and refresh tokens.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), now: time.Now}
}

func (ti *TokenIssuer) sign(tokenType string, userID uint, isStaff bool, lifetime time.Duration) (string, error) {
	now := ti.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenType: tokenType,
		UserID:    userID,
		IsStaff:   isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	})
	return token.SignedString(ti.secret)
}

func (ti *TokenIssuer) IssuePair(user models.User) (TokenPair, error) {
	access, err := ti.sign(AccessTokenType, user.ID, user.IsStaff, AccessTokenLifetime)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := ti.sign(RefreshTokenType, user.ID, user.IsStaff, RefreshTokenLifetime)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (ti *TokenIssuer) parse(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: wrong token type %q", ErrInvalidToken, claims.TokenType)
	}
	return claims, nil
}

// ParseAccess verifies an access token. Refresh tokens are rejected.
func (ti *TokenIssuer) ParseAccess(tokenString string) (*Claims, error) {
	return ti.parse(tokenString, AccessTokenType)
}

// Refresh exchanges a valid refresh token for a new access token.
func (ti *TokenIssuer) Refresh(refreshToken string) (string, error) {
	claims, err := ti.parse(refreshToken, RefreshTokenType)
	if err != nil {
		return "", err
	}
	return ti.sign(AccessTokenType, claims.UserID, claims.IsStaff, AccessTokenLifetime)
}
