package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns bcrypt hash using the given cost.  It backs the
// `hash-password` command used to produce ADMIN_PASSWORD_HASH.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifyAdmin checks basic auth credentials against the configured admin
// user and bcrypt hash.
func VerifyAdmin(wantUser, hash, user, plain string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(wantUser), []byte(user)) == 1
	// always run bcrypt so a wrong user name costs the same as a wrong password
	passOK := VerifyPassword(hash, plain)
	return userOK && passOK
}
