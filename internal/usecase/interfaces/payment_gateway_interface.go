package interfaces

import (
	"context"
	"errors"
	"fmt"
)

// ErrGatewayUnavailable marks transport-level failures (timeout, refused
// connection) talking to the payment provider. No preference exists on
// the provider side when this is returned.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// GatewayError is a non-2xx answer from the payment provider. Body keeps
// the raw response for logging and error surfacing.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway returned status %d: %s", e.StatusCode, e.Body)
}

// PreferenceItem is one line item of a checkout preference.
type PreferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PreferencePayer identifies who pays.
type PreferencePayer struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// PreferenceRequest is the payload sent to the provider's
// checkout-preference endpoint. ExternalReference is generated per
// attempt and is distinct from the provider's own transaction id.
type PreferenceRequest struct {
	Purpose           string           `json:"purpose"`
	ExternalReference string           `json:"external_reference"`
	Items             []PreferenceItem `json:"items"`
	Payer             PreferencePayer  `json:"payer"`
	AutoReturn        string           `json:"auto_return,omitempty"`
}

// PreferenceTransactionData carries the PIX copy-and-paste payload when
// the provider includes one.
type PreferenceTransactionData struct {
	QRCode string `json:"qr_code"`
}

type PreferencePointOfInteraction struct {
	TransactionData *PreferenceTransactionData `json:"transaction_data"`
}

// PreferenceResponse is the provider's answer, decoded once at the
// gateway boundary. Every field besides ID may be absent.
type PreferenceResponse struct {
	ID                 string                        `json:"id"`
	PreferenceID       string                        `json:"preference_id"`
	InitPoint          string                        `json:"init_point"`
	PointOfInteraction *PreferencePointOfInteraction `json:"point_of_interaction"`
}

// QRCode returns the embedded PIX payload, or "" when the provider sent none.
func (r PreferenceResponse) QRCode() string {
	if r.PointOfInteraction == nil || r.PointOfInteraction.TransactionData == nil {
		return ""
	}
	return r.PointOfInteraction.TransactionData.QRCode
}

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// One call is one outbound POST; there is no retry. A *GatewayError or
// ErrGatewayUnavailable result means nothing may be persisted locally.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResponse, error)
}

// ProviderPaymentStatus is the provider-side view of a payment, as
// resolved from a webhook notification.
type ProviderPaymentStatus struct {
	Status            string
	ExternalReference string
}

// IPaymentStatusSource resolves the current provider-side status of a
// payment. Used by webhook processing to move local records forward.
type IPaymentStatusSource interface {
	GetPaymentStatus(ctx context.Context, providerPaymentID string) (ProviderPaymentStatus, error)
}
