package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yourname/healthtracker/internal"
)

const DefaultTokenTTL = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID   string  `json:"uid"`
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight_kg,omitempty"`
}

// JWTAuthProvider issues and verifies HS256 tokens. The user is rebuilt
// from the claims, so no user store is consulted.
type JWTAuthProvider struct {
	secret []byte
	ttl    time.Duration
	logger internal.Logger
}

func NewJWTAuthProvider(secret string, ttl time.Duration, logger internal.Logger) *JWTAuthProvider {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTAuthProvider{secret: []byte(secret), ttl: ttl, logger: logger}
}

func (a *JWTAuthProvider) GenerateToken(user *internal.User, now time.Time) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Name:     user.Name,
		WeightKg: user.WeightKg,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *JWTAuthProvider) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}

func (a *JWTAuthProvider) Authenticate(ctx context.Context, token string) (*internal.User, error) {
	claims, err := a.ParseToken(token)
	if err != nil {
		a.logger.Warnf("rejected token: %v", err)
		return nil, err
	}
	return &internal.User{ID: claims.UserID, Name: claims.Name, WeightKg: claims.WeightKg}, nil
}
