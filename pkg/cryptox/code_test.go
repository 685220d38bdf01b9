package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})

	for range 100 {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code %q should be decimal digits", code)
		}
		seen[code] = struct{}{}
	}

	// 100 draws from 10000 possibilities should not collapse to a handful
	// of values; a stuck generator would.
	require.Greater(t, len(seen), 50)
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0123", "0123"},
		{"123", "0123"},
		{"7", "0007"},
		{"00123", "0123"},
		{"0 183", "0183"},
		{" 0183 ", "0183"},
		{"000183", "0183"},
		{"", "0000"},
		{"   ", "0000"},
		{"0000", "0000"},
		{"12345", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeCode(tt.in))
		})
	}
}
