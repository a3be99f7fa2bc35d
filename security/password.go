// Package security contains everything related to the security of user data
package security

import "golang.org/x/crypto/bcrypt"

// bcrypt embeds the salt and cost in its output so the hash column is
// self-describing. Cost 12 matches what the seeded admin hash was made with.
const hashCost = 12

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), hashCost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// VerifyPassword compares p against the stored bcrypt hash. Any failure
// (mismatch, malformed hash) reports as a plain false.
func VerifyPassword(p, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}
