package signup

import (
	"errors"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want State
	}{
		{"", Empty},
		{"   ", Empty},
		{"a@b.co", Valid},
		{"  first.last@example.com  ", Valid},
		{"user+tag@sub.domain.org", Valid},
		{"plainaddress", Invalid},
		{"no-at.example.com", Invalid},
		{"no@dot", Invalid},
		{"two@@example.com", Invalid},
		{"sp ace@example.com", Invalid},
		{"@example.com", Invalid},
		{"user@.com", Invalid},
		{"user@.co.uk", Valid}, // the pattern only requires non-empty parts
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.in); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSubmit(t *testing.T) {
	got, err := Submit("  hi@example.com ")
	if err != nil || got != "hi@example.com" {
		t.Fatalf("Submit = %q, %v", got, err)
	}
	if _, err := Submit(" "); !errors.Is(err, ErrEmptyEmail) {
		t.Fatalf("empty err = %v", err)
	}
	if _, err := Submit("nope"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("invalid err = %v", err)
	}
}
