package utils

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "Minimum Length", password: "abcdef", want: true},
		{name: "Typical", password: "secret1", want: true},
		{name: "Too Short", password: "abcde", want: false},
		{name: "Empty", password: "", want: false},
		{name: "Maximum Length", password: strings.Repeat("a", 128), want: true},
		{name: "Too Long", password: strings.Repeat("a", 129), want: false},
		{name: "Multibyte Counted As Characters", password: strings.Repeat("ü", 128), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "Simple", email: "a@x.com", want: true},
		{name: "Subdomain", email: "user@mail.example.org", want: true},
		{name: "Plus Tag", email: "user+tag@example.org", want: true},
		{name: "Empty", email: "", want: false},
		{name: "No At", email: "not-an-email", want: false},
		{name: "Display Name Form", email: "User <user@example.org>", want: false},
		{name: "Too Long", email: strings.Repeat("a", 120) + "@x.com", want: false},
		// 66 characters but 126 bytes; the limit counts characters
		{name: "Multibyte Within Limit", email: strings.Repeat("ä", 60) + "@x.com", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
