// Package service defines domain-level service contracts implemented by the infra layer.
package service

// PasswordHasher abstracts password hashing so the application layer never
// depends on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
