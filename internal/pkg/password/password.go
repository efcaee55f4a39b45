// Package password wraps bcrypt hashing so that hashing happens in exactly
// one place, invoked explicitly before persistence.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of plain at the given cost. A cost outside
// bcrypt's valid range falls back to the library default.
func Hash(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
