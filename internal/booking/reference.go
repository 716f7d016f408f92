package booking

import (
	"crypto/rand"
	"math/big"
)

const (
	referenceLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	referenceDigits  = "0123456789"
)

// NewReference returns two uppercase letters followed by four digits.
// References are not checked against existing bookings.
func NewReference() (string, error) {
	code := make([]byte, 6)
	for i := range code {
		charset := referenceDigits
		if i < 2 {
			charset = referenceLetters
		}
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[n.Int64()]
	}
	return string(code), nil
}
