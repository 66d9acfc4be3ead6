package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes plaintext passwords and verifies plaintext against a stored
// hash. Call sites depend on this interface so the hashing scheme can be
// swapped without touching them.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// BcryptHasher implements Hasher with bcrypt at the default cost.
type BcryptHasher struct{}

// NewBcryptHasher returns a bcrypt-backed Hasher.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash turns a plaintext password into a salted bcrypt hash.
func (BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hashed), err
}

// Verify reports whether the plaintext matches the stored hash.
func (BcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
