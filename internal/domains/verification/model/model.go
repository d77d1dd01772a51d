package model

import (
	"time"

	"medibook/shared/model"
)

const (
	TableName  = "otp_verifications"
	EntityName = "otp_verification"

	FieldID         = "id"
	FieldPhone      = "phone"
	FieldCodeHash   = "code_hash"
	FieldExpiresAt  = "expires_at"
	FieldAttempts   = "attempts"
	FieldVerifiedAt = "verified_at"
)

// OtpVerification is one issued code for a phone number. The plaintext code
// is only ever sent through the notification channel; the row keeps a bcrypt
// hash. A row is spent once VerifiedAt is set.
type OtpVerification struct {
	ID         string     `db:"id"`
	Phone      string     `db:"phone"`
	CodeHash   string     `db:"code_hash"`
	ExpiresAt  time.Time  `db:"expires_at"`
	Attempts   int        `db:"attempts"`
	VerifiedAt *time.Time `db:"verified_at"`
	model.Metadata
}

func (o *OtpVerification) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

func (o *OtpVerification) IsSpent() bool {
	return o.VerifiedAt != nil
}
