package helper

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"schoolquiz_backend/internals/configs"
)

// HashPassword hashes plain with the configured bcrypt cost (SALT_ROUND).
func HashPassword(plain string) (string, error) {
	cost := configs.SaltRound
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// RandomHex returns n random bytes hex-encoded (2n characters).
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RandomPassword returns a short hex password of length chars.
func RandomPassword(length int) (string, error) {
	s, err := RandomHex((length + 1) / 2)
	if err != nil {
		return "", err
	}
	return s[:length], nil
}
