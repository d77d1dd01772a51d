package dto

// CreateOrderRequest opens a payment order for a booking that is still
// awaiting payment.
type CreateOrderRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type CreateOrderResponse struct {
	BookingID string `json:"booking_id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	KeyID     string `json:"key_id"`
}

// VerifyPaymentRequest carries the gateway checkout callback fields. The
// signature covers order id and payment id and is checked before the booking
// is confirmed.
type VerifyPaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	OrderID   string `json:"order_id"   validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature"  validate:"required"`
}

type VerifyPaymentResponse struct {
	BookingID string `json:"booking_id"`
	Verified  bool   `json:"verified"`
	Status    string `json:"status"`
}
