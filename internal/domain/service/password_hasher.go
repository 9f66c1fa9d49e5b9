// Package service declares the ports usecases depend on. Implementations live
// under internal/infra.
package service

// PasswordHasher hashes and checks login passwords for business and admin users.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches the stored hash.
	Check(password, hash string) bool
}
