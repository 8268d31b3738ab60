// Package service defines interfaces for core, stateless domain logic.
package service

// OTPGenerator produces short-lived single-use login codes.
type OTPGenerator interface {
	// Generate returns a fresh one-time password.
	Generate() (string, error)
}
