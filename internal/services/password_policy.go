package services

import "strings"

// bcrypt rejects longer passwords.
const maxPasswordBytes = 72

func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
