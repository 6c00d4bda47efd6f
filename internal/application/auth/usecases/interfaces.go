package usecases

import "datadesk/internal/shared/authorization"

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenGenerator issues signed access tokens.
type TokenGenerator interface {
	Generate(userID uint, username string, role authorization.UserRole, companyID, branchID string) (string, error)
}
