// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. The username doubles as the login
// identifier (an email address or phone number).
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Role         Role       `json:"role"`
	PasswordHash string     `json:"-"` // bcrypt hash; empty for OTP-only accounts.
	OTP          string     `json:"-"` // Outstanding one-time password, at most one per user.
	OTPExpiresAt *time.Time `json:"-"` // Expiry of the outstanding OTP; nil when no OTP is set.
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// HasOTP reports whether the user has an outstanding one-time password.
func (u *User) HasOTP() bool {
	return u.OTP != "" && u.OTPExpiresAt != nil
}

// SetOTP stores a fresh one-time password, replacing any outstanding one.
func (u *User) SetOTP(otp string, expiresAt time.Time) {
	u.OTP = otp
	u.OTPExpiresAt = &expiresAt
}

// ClearOTP consumes the outstanding one-time password. Called on first
// successful use, on expiry detection, and before issuing a new OTP.
func (u *User) ClearOTP() {
	u.OTP = ""
	u.OTPExpiresAt = nil
}
