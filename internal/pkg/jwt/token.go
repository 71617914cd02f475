package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/wakestop/internal/pkg/models"
)

// Roles carried in the role claim
const (
	RoleTraveler = "traveler"
	RoleService  = "service"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the validated content of a token
type Claims struct {
	UserID    uuid.UUID
	Role      string
	Issuer    string
	ExpiresAt time.Time
}

// GenerateToken signs an HS256 token for userID
func GenerateToken(userID uuid.UUID, role string, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies the signature and expiry and extracts the claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	rawID, ok := mc["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: user_id is not a valid UUID", ErrInvalidToken)
	}

	claims := &Claims{UserID: userID}
	claims.Role, _ = mc["role"].(string)
	claims.Issuer, _ = mc["iss"].(string)
	if exp, ok := mc["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return claims, nil
}
