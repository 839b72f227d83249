// Package plate converts license-plate parts between their text form
// and the integers the prime service operates on. Parts containing
// letters are read as base-36; purely numeric parts stay base-10, so
// "97" means ninety-seven and not 9*36+7.
package plate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Part length limits for a plate half, matching common plate formats.
const (
	MinPartLen = 2
	MaxPartLen = 5
)

var (
	ErrPartLength  = errors.New("plate part must be 2 to 5 characters")
	ErrPartCharset = errors.New("plate part must contain only letters and digits")
)

// Part is a validated half of a license plate.
type Part struct {
	// Raw is the normalized (upper-cased) input.
	Raw string
	// Value is the numeric interpretation of Raw.
	Value uint64
	// HasLetters records which base Raw was read in: base-36 when
	// true, base-10 otherwise.
	HasLetters bool
}

// ParsePart validates and converts one plate half.
func ParsePart(s string) (Part, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if len(raw) < MinPartLen || len(raw) > MaxPartLen {
		return Part{}, ErrPartLength
	}
	for _, r := range raw {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
			return Part{}, ErrPartCharset
		}
	}

	hasLetters := ContainsLetters(raw)
	base := 10
	if hasLetters {
		base = 36
	}
	value, err := strconv.ParseUint(raw, base, 64)
	if err != nil {
		return Part{}, fmt.Errorf("parse plate part %q: %w", raw, err)
	}

	return Part{Raw: raw, Value: value, HasLetters: hasLetters}, nil
}

// Render formats n in the part's own base, so results read like the
// plate the user typed.
func (p Part) Render(n uint64) string {
	if p.HasLetters {
		return ToBase36(n)
	}
	return strconv.FormatUint(n, 10)
}

// ContainsLetters reports whether s has at least one ASCII letter.
func ContainsLetters(s string) bool {
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return true
		}
	}
	return false
}

// ToBase10 converts a base-36 string to an integer. Case-insensitive.
func ToBase10(s string) (uint64, error) {
	return strconv.ParseUint(s, 36, 64)
}

// ToBase36 converts an integer to an upper-case base-36 string.
func ToBase36(n uint64) string {
	return strings.ToUpper(strconv.FormatUint(n, 36))
}
