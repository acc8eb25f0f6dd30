package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	return HashPasswordCost(plain, bcrypt.DefaultCost)
}

// HashPasswordCost hashes with an explicit bcrypt cost (seeding uses 10).
func HashPasswordCost(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// A malformed hash never matches.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
