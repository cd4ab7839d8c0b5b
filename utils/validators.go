package utils

import (
	"net/mail"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
	MaxEmailLength    = 120
	MaxTitleLength    = 200
)

// ValidatePassword bounds password length in characters. Complexity rules are
// deliberately not enforced; the adaptive hash is the brute-force defense.
func ValidatePassword(password string) bool {
	length := utf8.RuneCountInString(password)
	return length >= MinPasswordLength && length <= MaxPasswordLength
}

// ValidateEmail checks syntax and length in characters.
func ValidateEmail(email string) bool {
	if email == "" || utf8.RuneCountInString(email) > MaxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject the "Name <addr>" form; only the bare address is acceptable.
	return addr.Address == email
}
