package request

import (
	"errors"
	"strings"
)

var (
	ErrPayerEmailRequired = errors.New("payer email is required")
	ErrInvalidAmount      = errors.New("invalid payment amount")
)

// PixPaymentRequest is the checkout payload posted by the frontend. Amount
// may be omitted when productId is given; the product price is used then.
type PixPaymentRequest struct {
	ProductID   string   `json:"productId"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	PayerEmail  string   `json:"payerEmail"`
	PayerName   string   `json:"payerName"`
	Quantity    int      `json:"quantity"`
}

func (r PixPaymentRequest) Validate() error {
	if strings.TrimSpace(r.PayerEmail) == "" {
		return ErrPayerEmailRequired
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.Amount == nil && strings.TrimSpace(r.ProductID) == "" {
		return ErrInvalidAmount
	}
	return nil
}
