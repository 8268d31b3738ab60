package auth

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_Generate(t *testing.T) {
	gen := NewOTPGenerator()

	for range 50 {
		otp, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, unicode.IsDigit(r), "otp %q contains non-digit", otp)
		}
	}
}
