package response

import (
	"testing"
	"time"

	"play12/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	expires := time.Now().UTC().Add(30 * time.Minute)
	p := entities.Payment{
		TransactionID:  "MP123",
		Amount:         50,
		Status:         entities.PaymentStatusPending,
		QRCode:         "00020101...",
		QRCodeURL:      "https://pay/x",
		ExpirationTime: expires,
	}

	res := FromPayment(p)
	if res.TransactionID != "MP123" {
		t.Fatalf("unexpected transaction id: %+v", res)
	}
	if res.QRCode != "00020101..." || res.QRCodeURL != "https://pay/x" || res.PaymentLink != "https://pay/x" {
		t.Fatalf("unexpected qr fields: %+v", res)
	}
	if res.Amount != 50 || res.Status != "PENDING" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.ExpirationTime.Equal(expires) {
		t.Fatalf("unexpected expiration: %+v", res)
	}
	if res.Message != "QR Code gerado com sucesso! Escaneie para pagar com Pix." {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestPaymentError(t *testing.T) {
	res := PaymentError("Valor deve ser maior que zero")
	if res.Status != "ERROR" {
		t.Fatalf("expected ERROR status, got %q", res.Status)
	}
	if res.Message != "Valor deve ser maior que zero" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}
