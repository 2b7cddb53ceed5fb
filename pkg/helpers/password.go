package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the plain text password using bcrypt. The result
// embeds the salt and cost, so verification needs no extra state.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// A malformed hash reports false rather than an error.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
