package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinPasswordLength = 8
	MaxPasswordLength = 128
)

var ErrPasswordLength = errors.New("password length must be between 8 and 128")

// GeneratePassword returns a random password of the given length containing
// at least one upper-case letter, lower-case letter, digit and symbol.
// Used to create throwaway accounts when exercising signup.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", ErrPasswordLength
	}

	sets := []string{upperChars, lowerChars, digitChars, symbolChars}
	pool := upperChars + lowerChars + digitChars + symbolChars

	out := make([]byte, length)
	for i := range out {
		charset := pool
		if i < len(sets) {
			charset = sets[i]
		}
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		out[i] = charset[n.Int64()]
	}

	// Fisher-Yates so the guaranteed characters are not always first.
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}

	return string(out), nil
}
