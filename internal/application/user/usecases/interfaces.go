package usecases

// PasswordHasher derives a storable hash from a plaintext password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
