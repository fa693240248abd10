package session

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost factor of the hashes already on the shelf,
// raising it only affects newly registered users.
const bcryptCost = 10

func HashPassword(plain string) (string, error) {
	if len(plain) == 0 {
		return "", errors.New("session: refusing to hash an empty password")
	}
	buf, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// VerifyPassword reports whether plain matches the given bcrypt hash.
// Malformed or empty input is simply a mismatch, never a fault. bcrypt
// embeds the salt in the hash and compares in constant time.
func VerifyPassword(plain string, hash string) bool {
	if len(plain) == 0 || len(hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
