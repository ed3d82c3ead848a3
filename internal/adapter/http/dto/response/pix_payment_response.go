package response

import (
	"time"

	"play12/internal/domain/entities"
)

const pixSuccessMessage = "QR Code gerado com sucesso! Escaneie para pagar com Pix."

// PixPaymentResponse is the checkout answer: everything the frontend needs
// to render the PIX QR code and poll for completion.
type PixPaymentResponse struct {
	TransactionID  string    `json:"transactionId"`
	QRCode         string    `json:"qrCode"`
	QRCodeURL      string    `json:"qrCodeUrl"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	ExpirationTime time.Time `json:"expirationTime"`
	PaymentLink    string    `json:"paymentLink"`
	Message        string    `json:"message"`
}

func FromPayment(p entities.Payment) PixPaymentResponse {
	return PixPaymentResponse{
		TransactionID:  p.TransactionID,
		QRCode:         p.QRCode,
		QRCodeURL:      p.QRCodeURL,
		Amount:         p.Amount,
		Status:         string(p.Status),
		ExpirationTime: p.ExpirationTime,
		PaymentLink:    p.QRCodeURL,
		Message:        pixSuccessMessage,
	}
}

// PaymentErrorResponse is the uniform error shape for the checkout endpoint.
type PaymentErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func PaymentError(message string) PaymentErrorResponse {
	return PaymentErrorResponse{Status: "ERROR", Message: message}
}
