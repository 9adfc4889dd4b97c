package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/boleias/internal/pkg/models"
)

// Claims is the coordinator session claim
type Claims struct {
	CoordinatorName string      `json:"coordinator_name"`
	Role            models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a coordinator session for the given name
func GenerateToken(coordinatorName string, cfg *models.Config) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.JWT.Expiration) * time.Minute)

	claims := Claims{
		CoordinatorName: coordinatorName,
		Role:            models.RoleCoordinator,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken validates a coordinator token and returns its claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != models.RoleCoordinator {
		return nil, errors.New("token does not carry the coordinator role")
	}

	return claims, nil
}

// AuthContext converts validated claims into the request-scoped claim
func (c *Claims) AuthContext() models.AuthContext {
	return models.AuthContext{
		Role:            c.Role,
		CoordinatorName: c.CoordinatorName,
		SessionID:       c.ID,
	}
}
