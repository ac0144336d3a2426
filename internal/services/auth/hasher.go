package auth

import (
	"strings"

	"github.com/alexedwards/argon2id"
)

// Argon2Hasher hashes secrets with argon2id
type Argon2Hasher struct {
	Params *argon2id.Params
}

func (h Argon2Hasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, h.Params)
}

func (h Argon2Hasher) Compare(password, hash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, hash)
}

// isHash reports whether a stored secret is an argon2id encoding rather than
// a plaintext password left by an older client
func isHash(stored string) bool {
	return strings.HasPrefix(stored, "$argon2id$")
}
