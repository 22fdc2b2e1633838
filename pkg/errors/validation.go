package errors

import (
	"math"
	"strings"
	"unicode"
)

// RequirePositive rejects zero, negative and non-finite dimensions.
func RequirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewField(ErrCodeInvalidGeometry, field, "must be a finite number, got %v", v)
	}
	if v <= 0 {
		return NewField(ErrCodeInvalidGeometry, field, "must be positive, got %v", v)
	}
	return nil
}

// RequireNonNegative rejects negative and non-finite dimensions. Zero is allowed.
func RequireNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewField(ErrCodeInvalidGeometry, field, "must be a finite number, got %v", v)
	}
	if v < 0 {
		return NewField(ErrCodeInvalidGeometry, field, "must not be negative, got %v", v)
	}
	return nil
}

// RequireSpan checks that [lo, hi] lies inside [min, max].
func RequireSpan(field string, lo, hi, min, max float64) error {
	if lo < min || hi > max {
		return NewField(ErrCodeInvalidGeometry, field,
			"span [%g, %g] falls outside [%g, %g]", lo, hi, min, max)
	}
	return nil
}

// ValidateOutputName validates a base name used to derive output file names.
// It must be a plain name without path components.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidPath, "output name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "output name cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "output name cannot be a hidden file")
	}

	return nil
}
