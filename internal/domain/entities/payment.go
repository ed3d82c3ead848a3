package entities

import "time"

// PaymentStatus represents the lifecycle of a PIX payment.
//
// Transitions are forward-only: PENDING may move to COMPLETED or FAILED,
// and both of those are terminal.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// CanTransitionTo reports whether a payment in status s may move to next.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s != PaymentStatusPending {
		return false
	}
	return next == PaymentStatusCompleted || next == PaymentStatusFailed
}

// IsTerminal reports whether s admits no further transitions.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Payment is the PIX payment record persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: transaction_id (provider-issued, unique, immutable)
//   - GSI1 (external_reference-index): external_reference
//
// TransactionID comes from the Mercado Pago preference response; the
// external reference is generated locally before the gateway call and is
// what provider webhooks carry back for reconciliation. QRCode and
// QRCodeURL are opaque provider artifacts, empty until the gateway
// returns them. CompletedAt is set exactly once, when the status moves
// to COMPLETED.

type Payment struct {
	ID                string        `json:"id"`
	TransactionID     string        `json:"transactionId"`
	ExternalReference string        `json:"externalReference,omitempty"`
	Amount            float64       `json:"amount"`
	Status            PaymentStatus `json:"status"`
	PaymentMethod     string        `json:"paymentMethod"`
	QRCode            string        `json:"qrCode,omitempty"`
	QRCodeURL         string        `json:"qrCodeUrl,omitempty"`
	PayerEmail        string        `json:"payerEmail"`
	PayerName         string        `json:"payerName,omitempty"`
	Quantity          int           `json:"quantity"`
	Description       string        `json:"description,omitempty"`
	ProductID         string        `json:"productId,omitempty"`
	MerchantOrderID   string        `json:"merchantOrderId,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	CompletedAt       *time.Time    `json:"completedAt,omitempty"`
	ExpirationTime    time.Time     `json:"expirationTime"`
}
