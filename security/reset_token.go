package security

import (
	"crypto/rand"
	"encoding/hex"
)

const resetTokenSize = 32

// GenerateResetToken returns a 256-bit random token, hex encoded. The
// raw value is what gets mailed out and matched against the database.
func GenerateResetToken() (string, error) {
	b := make([]byte, resetTokenSize)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
