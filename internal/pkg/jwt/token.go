package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// GenerateToken generates a JWT token for the given operator identity
func GenerateToken(email, role string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"exp":  expiresAt,
		"iss":  cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}
