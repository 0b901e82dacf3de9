//go:build unit

package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// --- Ordering Tests ---

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	require.Less(t, LevelWarning, LevelError)
	require.Less(t, LevelError, LevelNoAssertions)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Level
		b        Level
		expected int
	}{
		{
			name:     "warning below error",
			a:        LevelWarning,
			b:        LevelError,
			expected: -1,
		},
		{
			name:     "error below no-assertions",
			a:        LevelError,
			b:        LevelNoAssertions,
			expected: -1,
		},
		{
			name:     "warning below no-assertions",
			a:        LevelWarning,
			b:        LevelNoAssertions,
			expected: -1,
		},
		{
			name:     "error above warning",
			a:        LevelError,
			b:        LevelWarning,
			expected: 1,
		},
		{
			name:     "equal levels",
			a:        LevelError,
			b:        LevelError,
			expected: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

// --- IsActive Tests ---

func TestIsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		site      Level
		threshold Level
		expected  bool
	}{
		{
			name:      "warning site at warning threshold",
			site:      LevelWarning,
			threshold: LevelWarning,
			expected:  true,
		},
		{
			name:      "warning site at error threshold",
			site:      LevelWarning,
			threshold: LevelError,
			expected:  false,
		},
		{
			name:      "warning site at no-assertions threshold",
			site:      LevelWarning,
			threshold: LevelNoAssertions,
			expected:  false,
		},
		{
			name:      "error site at warning threshold",
			site:      LevelError,
			threshold: LevelWarning,
			expected:  true,
		},
		{
			name:      "error site at error threshold",
			site:      LevelError,
			threshold: LevelError,
			expected:  true,
		},
		{
			name:      "error site at no-assertions threshold",
			site:      LevelError,
			threshold: LevelNoAssertions,
			expected:  false,
		},
		{
			name:      "no-assertions is not a valid site level",
			site:      LevelNoAssertions,
			threshold: LevelNoAssertions,
			expected:  false,
		},
		{
			name:      "no-assertions site rejected at any threshold",
			site:      LevelNoAssertions,
			threshold: LevelWarning,
			expected:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, IsActive(tt.site, tt.threshold))
		})
	}
}

// --- ParseLevel Tests ---

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    Level
		expectError bool
	}{
		{
			name:        "parse warning",
			input:       "Warning",
			expected:    LevelWarning,
			expectError: false,
		},
		{
			name:        "parse error",
			input:       "Error",
			expected:    LevelError,
			expectError: false,
		},
		{
			name:        "parse no-assertions",
			input:       "NoAssertions",
			expected:    LevelNoAssertions,
			expectError: false,
		},
		{
			name:        "absent value defaults to no-assertions",
			input:       "",
			expected:    LevelNoAssertions,
			expectError: false,
		},
		{
			name:        "names are case-exact",
			input:       "warning",
			expectError: true,
		},
		{
			name:        "uppercase rejected",
			input:       "ERROR",
			expectError: true,
		},
		{
			name:        "unrecognized name rejected",
			input:       "bogus",
			expectError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidLevel)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, level)
		})
	}
}

// --- String Tests ---

func TestLevelString_RoundTrips(t *testing.T) {
	t.Parallel()

	for _, level := range []Level{LevelWarning, LevelError, LevelNoAssertions} {
		parsed, err := ParseLevel(level.String())
		require.NoError(t, err)
		require.Equal(t, level, parsed)
	}
}

func TestLevelString_Unknown(t *testing.T) {
	t.Parallel()

	require.Equal(t, "unknown", Level(42).String())
}
