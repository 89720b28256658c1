package validate

import (
	"net/mail"
	"regexp"
)

// Phone numbers are accepted in international format, digits only with an
// optional leading +.
var phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
