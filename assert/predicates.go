package assert

import "github.com/google/uuid"

// Predicates for common invariants, intended for use inside condition
// thunks:
//
//	assert.Error(func() bool { return assert.InRange(idx, 0, size-1) }, "idx in bounds")

// Positive reports whether n > 0.
func Positive(n int64) bool {
	return n > 0
}

// NonNegative reports whether n >= 0.
func NonNegative(n int64) bool {
	return n >= 0
}

// NotZero reports whether n != 0.
func NotZero(n int64) bool {
	return n != 0
}

// InRange reports whether lo <= n <= hi.
func InRange(n, lo, hi int64) bool {
	return n >= lo && n <= hi
}

// NotEmpty reports whether s is a non-empty string.
func NotEmpty(s string) bool {
	return s != ""
}

// ValidUUID reports whether s is a well-formed UUID.
func ValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
