package interfaces

import (
	"context"
	"time"

	"play12/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Lookups return a zero-value Payment (empty TransactionID) with a nil
// error when no record matches; callers decide what "not found" means.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error)
	GetByExternalReference(ctx context.Context, externalReference string) (entities.Payment, error)
	UpdateStatus(ctx context.Context, transactionID string, status entities.PaymentStatus, completedAt *time.Time) (entities.Payment, error)
}
