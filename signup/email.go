// Package signup validates the address typed into the signup form.
package signup

import (
	"errors"
	"regexp"
	"strings"
)

// State is the validation outcome shown by the form.
type State int

const (
	// Empty shows no error; the user has not typed anything yet.
	Empty State = iota
	// Valid addresses can be submitted.
	Valid
	// Invalid addresses show the error state.
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "empty"
	}
}

// Errors returned by Submit.
var (
	// ErrEmptyEmail means nothing but whitespace was entered.
	ErrEmptyEmail = errors.New("email is empty")
	// ErrInvalidEmail means the address failed the format check.
	ErrInvalidEmail = errors.New("email is not a valid address")
)

// emailPattern is deliberately loose: something@something.something with no
// whitespace or extra @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail classifies s after trimming surrounding whitespace.
func ValidateEmail(s string) State {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty
	}
	if emailPattern.MatchString(s) {
		return Valid
	}
	return Invalid
}

// Submit returns the trimmed address, or an error when it cannot be sent.
func Submit(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch ValidateEmail(s) {
	case Empty:
		return "", ErrEmptyEmail
	case Invalid:
		return "", ErrInvalidEmail
	}
	return s, nil
}
