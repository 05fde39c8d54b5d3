package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/carpool/internal/pkg/auth"
	"github.com/piresc/carpool/internal/pkg/models"
)

// Claims carries the account identity and its role grants
type Claims struct {
	AccountID uuid.UUID `json:"account_id"`
	Roles     []string  `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed access token for the account
func GenerateToken(accountID uuid.UUID, roles []auth.Role, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)

	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, string(r))
	}

	claims := Claims{
		AccountID: accountID,
		Roles:     roleNames,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.JWT.Issuer,
			Subject:   accountID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken parses and verifies a token signed with secret
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
	if claims.AccountID == uuid.Nil {
		return nil, errors.New("token carries no account")
	}

	return claims, nil
}

// Capability resolves the token's role grants into a capability
func (c *Claims) Capability() *auth.Capability {
	roles := make([]auth.Role, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, auth.Role(r))
	}
	return auth.NewCapability(c.AccountID, roles...)
}
