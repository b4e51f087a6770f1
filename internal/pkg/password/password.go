// Package password wraps bcrypt behind the two operations the account
// lifecycle needs: digest a plaintext and verify a candidate against a
// stored digest. The salt is generated per call and baked into the
// digest encoding, so hashing the same plaintext twice yields different
// digests.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a one-way salted digest of plaintext.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
// A wrong password returns false, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
