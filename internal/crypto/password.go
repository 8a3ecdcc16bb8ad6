// Package crypto wraps password hashing so callers never touch bcrypt directly.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest of plain at the default cost.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword reports whether plain matches the stored digest,
// returning a non-nil error on mismatch.
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}
