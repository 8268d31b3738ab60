// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"aquashop/internal/domain/service"
)

const otpDigits = 6

// otpGenerator produces 6-digit numeric one-time passwords from crypto/rand.
type otpGenerator struct{}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator() service.OTPGenerator {
	return &otpGenerator{}
}

// Generate returns a zero-padded 6-digit code.
func (g *otpGenerator) Generate() (string, error) {
	max := big.NewInt(1)
	for range otpDigits {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
