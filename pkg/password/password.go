// Package password wraps the bcrypt primitives behind the pair of
// capabilities the services need: hash a plaintext and check one.
package password

import "golang.org/x/crypto/bcrypt"

const hashCost = 10

// Hash derives a bcrypt digest from the plaintext password.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Matches reports whether the plaintext corresponds to the stored digest.
func Matches(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
