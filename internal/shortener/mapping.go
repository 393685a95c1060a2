package shortener

import (
	"errors"
	"strings"
	"time"
)

// Alphabet is the character set short codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultCodeLength matches the original prototype's 6-character codes.
const DefaultCodeLength = 6

var (
	// ErrNotFound is returned when no mapping exists for a code.
	ErrNotFound = errors.New("mapping not found")

	// ErrCodeTaken is returned by a Repository when the code is already
	// assigned. It is an expected, retryable outcome of allocation, not a
	// fatal error.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrEmptyURL is returned when a shorten request carries no URL.
	ErrEmptyURL = errors.New("target url must not be empty")

	// ErrNoFreeCode is returned when allocation gives up after the
	// configured number of insert attempts.
	ErrNoFreeCode = errors.New("could not allocate a free short code")
)

// Code is a short URL code.
type Code string

// Valid reports whether the code is non-empty and drawn entirely from
// Alphabet. An invalid code cannot match any stored mapping.
func (c Code) Valid() bool {
	if c == "" {
		return false
	}

	for _, r := range c {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}

	return true
}

// Mapping is the persisted association between a short code and the URL it
// resolves to. TargetURL is stored verbatim and never changes once the
// mapping exists.
type Mapping struct {
	Code      Code
	TargetURL string
	CreatedAt time.Time
}
