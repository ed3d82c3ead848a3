package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"play12/internal/domain/entities"
	"play12/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPayerEmailRequired      = errors.New("payer email is required")
	ErrInvalidPaymentAmount    = errors.New("payment amount must be positive")
	ErrProductNotFound         = errors.New("product not found")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidTransactionID    = errors.New("invalid transaction id")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
)

const (
	paymentMethodPix        = "PIX"
	preferencePurpose       = "wallet_purchase"
	externalReferencePrefix = "PLAY12_"
	defaultItemTitle        = "Compra Play12"
	defaultExpiration       = 30 * time.Minute
)

// CreatePixPaymentInput is the validated-at-the-boundary command for a
// new PIX payment. Amount nil means "use the referenced product's price".
type CreatePixPaymentInput struct {
	ProductID   string
	Amount      *float64
	Description string
	PayerEmail  string
	PayerName   string
	Quantity    int
}

// WebhookNotification is the provider notification reduced to what the
// service acts on.
type WebhookNotification struct {
	Type      string
	PaymentID string
}

// IPaymentUseCase encapsulates the PIX payment lifecycle.
//
// Create is one synchronous chain: validate, resolve product, call the
// gateway, persist a PENDING record, respond. A gateway failure aborts
// before anything is persisted.

type IPaymentUseCase interface {
	CreatePixPayment(ctx context.Context, in CreatePixPaymentInput) (entities.Payment, error)
	GetPaymentStatus(ctx context.Context, transactionID string) (entities.Payment, error)
	UpdatePaymentStatus(ctx context.Context, transactionID string, status entities.PaymentStatus) (entities.Payment, error)
	ProcessWebhook(ctx context.Context, n WebhookNotification) error
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	productRepo  interfaces.IProductRepository
	gateway      interfaces.IPaymentGateway
	statusSource interfaces.IPaymentStatusSource
	expiration   time.Duration
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	productRepo interfaces.IProductRepository,
	gateway interfaces.IPaymentGateway,
	statusSource interfaces.IPaymentStatusSource,
	expirationMinutes int,
) *PaymentUseCase {
	expiration := time.Duration(expirationMinutes) * time.Minute
	if expirationMinutes <= 0 {
		expiration = defaultExpiration
	}
	return &PaymentUseCase{
		repo:         repo,
		productRepo:  productRepo,
		gateway:      gateway,
		statusSource: statusSource,
		expiration:   expiration,
	}
}

func (u *PaymentUseCase) CreatePixPayment(ctx context.Context, in CreatePixPaymentInput) (entities.Payment, error) {
	payerEmail := strings.TrimSpace(in.PayerEmail)
	log.Printf("[payment][usecase] create start payer_email=%s product_id=%q", payerEmail, in.ProductID)
	if payerEmail == "" {
		log.Printf("[payment][usecase] missing payer email")
		return entities.Payment{}, ErrPayerEmailRequired
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var product entities.Product
	if productID := strings.TrimSpace(in.ProductID); productID != "" {
		if u.productRepo == nil {
			log.Printf("[payment][usecase] product repository not configured product_id=%s", productID)
			return entities.Payment{}, errors.New("product repository not configured")
		}
		p, err := u.productRepo.GetByID(ctx, productID)
		if err != nil {
			log.Printf("[payment][usecase] failed loading product product_id=%s err=%v", productID, err)
			return entities.Payment{}, err
		}
		if p.ID == "" {
			log.Printf("[payment][usecase] product not found product_id=%s", productID)
			return entities.Payment{}, ErrProductNotFound
		}
		product = p
	}

	amount := 0.0
	if in.Amount != nil {
		amount = *in.Amount
	} else if product.ID != "" {
		amount = product.Price
	}
	if amount <= 0 {
		log.Printf("[payment][usecase] non-positive amount payer_email=%s amount=%.2f", payerEmail, amount)
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	// Line item title precedence: request description, product name, fallback.
	title := strings.TrimSpace(in.Description)
	if title == "" {
		title = strings.TrimSpace(product.Name)
	}
	if title == "" {
		title = defaultItemTitle
	}

	if u.gateway == nil {
		log.Printf("[payment][usecase] payment gateway not configured")
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	externalReference := externalReferencePrefix + uuid.NewString()
	pref, err := u.gateway.CreatePreference(ctx, interfaces.PreferenceRequest{
		Purpose:           preferencePurpose,
		ExternalReference: externalReference,
		Items: []interfaces.PreferenceItem{{
			Title:     title,
			Quantity:  quantity,
			UnitPrice: amount,
		}},
		Payer: interfaces.PreferencePayer{
			Email: payerEmail,
			Name:  strings.TrimSpace(in.PayerName),
		},
		AutoReturn: "approved",
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway call failed external_reference=%s err=%v", externalReference, err)
		return entities.Payment{}, err
	}

	// The provider id is the transaction id; generate one only when the
	// provider omitted it so the record is always addressable.
	transactionID := pref.ID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:                uuid.NewString(),
		TransactionID:     transactionID,
		ExternalReference: externalReference,
		Amount:            amount,
		Status:            entities.PaymentStatusPending,
		PaymentMethod:     paymentMethodPix,
		QRCode:            pref.QRCode(),
		QRCodeURL:         pref.InitPoint,
		PayerEmail:        payerEmail,
		PayerName:         strings.TrimSpace(in.PayerName),
		Quantity:          quantity,
		Description:       strings.TrimSpace(in.Description),
		ProductID:         product.ID,
		MerchantOrderID:   pref.PreferenceID,
		CreatedAt:         now,
		ExpirationTime:    now.Add(u.expiration),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		// The provider-side preference already exists at this point; keep the
		// transaction id in the log for manual reconciliation.
		log.Printf("[payment][usecase] persisting payment failed transaction_id=%s external_reference=%s err=%v", transactionID, externalReference, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create success transaction_id=%s status=%s amount=%.2f", created.TransactionID, created.Status, created.Amount)
	return created, nil
}

func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, transactionID string) (entities.Payment, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Payment{}, ErrInvalidTransactionID
	}

	p, err := u.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.TransactionID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// UpdatePaymentStatus moves a payment forward. Re-applying the current
// status is a no-op (provider webhooks are redelivered); any other
// transition out of a terminal status is rejected.
func (u *PaymentUseCase) UpdatePaymentStatus(ctx context.Context, transactionID string, status entities.PaymentStatus) (entities.Payment, error) {
	p, err := u.GetPaymentStatus(ctx, transactionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status == status {
		log.Printf("[payment][usecase] status unchanged transaction_id=%s status=%s", p.TransactionID, status)
		return p, nil
	}
	if !p.Status.CanTransitionTo(status) {
		log.Printf("[payment][usecase] rejected status transition transaction_id=%s from=%s to=%s", p.TransactionID, p.Status, status)
		return entities.Payment{}, ErrInvalidStatusTransition
	}

	var completedAt *time.Time
	if status == entities.PaymentStatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}

	updated, err := u.repo.UpdateStatus(ctx, p.TransactionID, status, completedAt)
	if err != nil {
		log.Printf("[payment][usecase] status update failed transaction_id=%s err=%v", p.TransactionID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] status updated transaction_id=%s %s -> %s", p.TransactionID, p.Status, status)
	return updated, nil
}

// ProcessWebhook applies an asynchronous provider notification. Anything
// that cannot be acted on (unknown type, unknown reference, already
// terminal) is logged and dropped; only infrastructure failures surface.
func (u *PaymentUseCase) ProcessWebhook(ctx context.Context, n WebhookNotification) error {
	paymentID := strings.TrimSpace(n.PaymentID)
	if !strings.EqualFold(strings.TrimSpace(n.Type), "payment") || paymentID == "" {
		log.Printf("[payment][usecase] webhook ignored type=%q payment_id=%q", n.Type, n.PaymentID)
		return nil
	}
	if u.statusSource == nil {
		log.Printf("[payment][usecase] webhook received but no status source configured payment_id=%s", paymentID)
		return nil
	}

	provider, err := u.statusSource.GetPaymentStatus(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] webhook status lookup failed payment_id=%s err=%v", paymentID, err)
		return err
	}

	target, actionable := paymentStatusFromProvider(provider.Status)
	if !actionable {
		log.Printf("[payment][usecase] webhook not actionable payment_id=%s provider_status=%s", paymentID, provider.Status)
		return nil
	}
	if provider.ExternalReference == "" {
		log.Printf("[payment][usecase] webhook missing external reference payment_id=%s", paymentID)
		return nil
	}

	p, err := u.repo.GetByExternalReference(ctx, provider.ExternalReference)
	if err != nil {
		return err
	}
	if p.TransactionID == "" {
		log.Printf("[payment][usecase] webhook for unknown external reference external_reference=%s", provider.ExternalReference)
		return nil
	}

	if _, err := u.UpdatePaymentStatus(ctx, p.TransactionID, target); err != nil {
		if errors.Is(err, ErrInvalidStatusTransition) {
			log.Printf("[payment][usecase] webhook replay on terminal payment transaction_id=%s target=%s", p.TransactionID, target)
			return nil
		}
		return err
	}
	return nil
}

func paymentStatusFromProvider(providerStatus string) (entities.PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusCompleted, true
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusFailed, true
	default:
		return "", false
	}
}
