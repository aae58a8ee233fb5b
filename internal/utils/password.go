package utils

import "crypto/subtle"

// VerifyPassword compares a stored password with the one typed at the
// prompt in constant time.  Passwords are kept as typed in the student
// file, so there is no hash to check against.
func VerifyPassword(stored, typed string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(typed)) == 1
}
