// src/security/validation/field_validator.go
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/username/brokertax/src/logger"
)

var ErrValidationFailed = fmt.Errorf("validation failed")

const (
	MaxSectionNameLength = 128
	MinTaxYear           = 1900
	MaxTaxYear           = 2200
)

var sectionKeyRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidateStringNotEmpty checks if a string is not empty after trimming.
func ValidateStringNotEmpty(s, fieldName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateStringMaxLength checks if a string's UTF-8 character count is within max bounds.
func ValidateStringMaxLength(s string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(s) > maxLength {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", ErrValidationFailed, fieldName, maxLength)
	}
	return nil
}

// ValidateIntString parses a string to int and checks if it's within a range.
// An empty string yields def.
func ValidateIntString(s, fieldName string, def, minVal, maxVal int) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return def, nil
	}
	val, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %s ('%s') is not a valid integer", ErrValidationFailed, fieldName, SanitizeText(s))
	}
	if val < minVal || val > maxVal {
		logger.L.Warn("Integer value out of range", "field", fieldName, "value", val, "min", minVal, "max", maxVal)
		return 0, fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrValidationFailed, fieldName, minVal, maxVal, val)
	}
	return val, nil
}

// ValidateTaxYear parses the taxYear query parameter.
func ValidateTaxYear(s string, def int) (int, error) {
	return ValidateIntString(s, "taxYear", def, MinTaxYear, MaxTaxYear)
}

// ValidateSectionKey checks a section key taken from a URL. Keys are in
// normalized form: lower case letters, digits and underscores.
func ValidateSectionKey(s string) error {
	if err := ValidateStringNotEmpty(s, "sectionName"); err != nil {
		return err
	}
	if err := ValidateStringMaxLength(s, MaxSectionNameLength, "sectionName"); err != nil {
		return err
	}
	if !sectionKeyRegex.MatchString(s) {
		return fmt.Errorf("%w: sectionName ('%s') is not a normalized section key", ErrValidationFailed, SanitizeText(s))
	}
	return nil
}

// ValidateSessionID accepts only UUIDs so client supplied ids cannot be used
// to probe arbitrary cache keys.
func ValidateSessionID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("%w: session id is not a valid UUID", ErrValidationFailed)
	}
	return nil
}
