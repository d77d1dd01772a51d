package razorpay

//go:generate go run go.uber.org/mock/mockgen -source=./razorpay.go -destination=./mocks/razorpay_mock.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"medibook/config"
	"medibook/shared/failure"
)

// Order is the payment order created at the gateway before the patient pays.
// Amount is in the smallest currency unit, matching the gateway contract.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Client interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (Order, error)
	VerifySignature(orderID, paymentID, signature string) error
}

type clientImpl struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &clientImpl{
		baseURL:   cfg.External.Razorpay.BaseURL,
		keyID:     cfg.External.Razorpay.KeyID,
		keySecret: cfg.External.Razorpay.KeySecret,
		http: &http.Client{
			Timeout: time.Duration(cfg.External.Razorpay.TimeoutSeconds) * time.Second,
		},
	}
}

// CreateOrder registers a payment order at the gateway and returns its id.
// The receipt is our booking id so gateway records can be reconciled back.
func (c *clientImpl) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (Order, error) {
	payload, err := json.Marshal(map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return Order{}, fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return Order{}, fmt.Errorf("failed to build order request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("payment gateway unreachable")

		return Order{}, failure.ExternalService("payment gateway unreachable") // nolint:wrapcheck
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("payment gateway rejected order")

		return Order{}, failure.ExternalService("payment gateway rejected the order") // nolint:wrapcheck
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, fmt.Errorf("failed to decode order response: %w", err)
	}

	return order, nil
}

// VerifySignature checks the gateway callback signature, an HMAC-SHA256 of
// "<orderID>|<paymentID>" under the key secret. Comparison is constant time.
func (c *clientImpl) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		return failure.Unauthorized("payment signature mismatch") // nolint:wrapcheck
	}

	return nil
}
