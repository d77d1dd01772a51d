package dto

type SendOtpRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type VerifyOtpRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Code  string `json:"code"  validate:"required,numeric,len=6"`
}

type SendOtpResponse struct {
	Phone          string `json:"phone"`
	ExpiresInMins  int    `json:"expires_in_minutes"`
	ResendCooldown int    `json:"resend_cooldown_seconds"`
}

type VerifyOtpResponse struct {
	Phone             string `json:"phone"`
	Verified          bool   `json:"verified"`
	ValidForMins      int    `json:"valid_for_minutes"`
	RemainingAttempts int    `json:"remaining_attempts,omitempty"`
}
