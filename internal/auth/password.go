package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest. The salt is generated per
// call and embedded in the output, so verification needs no side channel.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
