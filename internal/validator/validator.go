package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidName     = errors.New("invalid name")
	ErrPasswordTooWeak = errors.New("Password must be at least 6 characters")
	ErrMissingAddress  = errors.New("Please enter a wallet address")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 1 || len(trimmed) > 60 {
		return ErrInvalidName
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooWeak
	}
	return nil
}

func ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrMissingAddress
	}
	return nil
}
