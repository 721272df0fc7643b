package services

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "normalizes case and spaces", raw: " USER@EXAMPLE.COM ", want: "user@example.com"},
		{name: "invalid email returns empty", raw: "not-email", want: ""},
		{name: "empty returns empty", raw: "   ", want: ""},
		{name: "display name form returns empty", raw: "Alice <a@x.com>", want: ""},
		{name: "angle brackets return empty", raw: "<a@x.com>", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" USER@EXAMPLE.COM ", " secret ")
	if err != nil {
		t.Fatalf("expected valid credentials input, got %v", err)
	}
	if email != "user@example.com" {
		t.Fatalf("expected normalized email, got %q", email)
	}
	if password != " secret " {
		t.Fatalf("expected password to be kept verbatim, got %q", password)
	}

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{name: "missing email", email: " ", password: "secret", want: ErrEmailRequired},
		{name: "invalid email", email: "not-email", password: "secret", want: ErrInvalidEmail},
		{name: "display name email", email: "Alice <alice@example.com>", password: "secret", want: ErrInvalidEmail},
		{name: "missing password", email: "user@example.com", password: "  ", want: ErrPasswordRequired},
		{name: "password too long", email: "user@example.com", password: strings.Repeat("a", 73), want: ErrPasswordTooLong},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, _, err := NormalizeCredentialsInput(testCase.email, testCase.password)
			if !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
			if KindOf(err) != KindValidation {
				t.Fatalf("expected validation kind, got %s", KindOf(err))
			}
		})
	}
}
