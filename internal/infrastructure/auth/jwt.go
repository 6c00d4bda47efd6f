package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"datadesk/internal/shared/authorization"
)

type Claims struct {
	UserID    uint                   `json:"user_id"`
	Username  string                 `json:"username"`
	Role      authorization.UserRole `json:"role"`
	CompanyID string                 `json:"company_id"`
	BranchID  string                 `json:"branch_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate issues a signed access token carrying the user's identity and
// visibility scope.
func (s *JWTService) Generate(userID uint, username string, role authorization.UserRole, companyID, branchID string) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		CompanyID: companyID,
		BranchID:  branchID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Scope converts token claims into the row-visibility scope used by
// repository queries.
func (c *Claims) Scope() authorization.Scope {
	return authorization.Scope{
		Role:      c.Role,
		UserID:    c.UserID,
		CompanyID: c.CompanyID,
		BranchID:  c.BranchID,
	}
}
