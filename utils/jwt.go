package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the storefront session payload. A session belongs to a
// verified phone number; that is the entire authorization model.
type SessionClaims struct {
	CustomerID string `json:"customerId"`
	Phone      string `json:"phone"`
	jwt.RegisteredClaims
}

// GenerateSessionJWT creates a session token for a verified phone login.
func GenerateSessionJWT(customerID uuid.UUID, phone string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	expiryStr := os.Getenv("JWT_EXPIRY")
	if expiryStr == "" {
		expiryStr = "720h" // 30 days, phone sessions are long-lived
	}

	duration, err := time.ParseDuration(expiryStr)
	if err != nil {
		duration = 720 * time.Hour
	}

	claims := SessionClaims{
		CustomerID: customerID.String(),
		Phone:      phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "bagicha-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateSessionJWT parses and validates a storefront session token.
func ValidateSessionJWT(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.CustomerID == "" || claims.Phone == "" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}
