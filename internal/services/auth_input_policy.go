package services

import (
	"net/mail"
	"strings"
)

// NormalizeAuthEmail lowercases a bare address. Display-name forms such as
// "Alice <alice@example.com>" are rejected, as is anything mail cannot parse.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return ""
	}
	return email
}

// NormalizeCredentialsInput validates the fields every account needs.
// Passwords are kept verbatim.
func NormalizeCredentialsInput(emailRaw string, password string) (string, string, error) {
	if strings.TrimSpace(emailRaw) == "" {
		return "", "", ErrEmailRequired
	}
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return "", "", ErrInvalidEmail
	}
	if err := ValidatePassword(password); err != nil {
		return "", "", err
	}
	return email, password, nil
}
