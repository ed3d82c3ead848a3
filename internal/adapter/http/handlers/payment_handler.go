package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "play12/internal/adapter/http/dto/request"
	response "play12/internal/adapter/http/dto/response"
	"play12/internal/usecase"
	"play12/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for PIX payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePixPayment creates a PIX checkout: Mercado Pago preference plus a
// PENDING local record, answered with the QR code artifacts.
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var payload request.PixPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, response.PaymentError("Requisição inválida"))
		return
	}

	if err := payload.Validate(); err != nil {
		log.Printf("[payment][handler] validation failed payer_email=%q err=%v", payload.PayerEmail, err)
		c.JSON(http.StatusBadRequest, response.PaymentError(validationMessage(err)))
		return
	}

	created, err := h.usecase.CreatePixPayment(c.Request.Context(), usecase.CreatePixPaymentInput{
		ProductID:   payload.ProductID,
		Amount:      payload.Amount,
		Description: payload.Description,
		PayerEmail:  payload.PayerEmail,
		PayerName:   payload.PayerName,
		Quantity:    payload.Quantity,
	})
	if err != nil {
		log.Printf("[payment][handler] create failed payer_email=%s err=%v", payload.PayerEmail, err)
		status, body := mapCreatePaymentError(err)
		c.JSON(status, body)
		return
	}
	log.Printf("[payment][handler] create success transaction_id=%s status=%s", created.TransactionID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentStatus returns the stored payment record by transaction id.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	log.Printf("[payment][handler] status start transaction_id=%s", transactionID)

	p, err := h.usecase.GetPaymentStatus(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[payment][handler] status failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapPaymentLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] status success transaction_id=%s status=%s", p.TransactionID, p.Status)

	c.JSON(http.StatusOK, p)
}

// HandleWebhook acknowledges Mercado Pago notifications. The provider
// retries on anything but 200, so processing failures are logged and the
// notification is acknowledged anyway.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	notification, err := readWebhookNotification(c)
	if err != nil {
		log.Printf("[payment][handler] webhook body read failed err=%v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	log.Printf("[payment][handler] webhook received type=%q payment_id=%q", notification.Type, notification.PaymentID)

	if err := h.usecase.ProcessWebhook(c.Request.Context(), notification); err != nil {
		log.Printf("[payment][handler] webhook processing failed payment_id=%s err=%v", notification.PaymentID, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// readWebhookNotification merges the two notification shapes Mercado Pago
// sends: query parameters (type + data.id) and a JSON body with the same
// fields. Body values win when both are present.
func readWebhookNotification(c *gin.Context) (usecase.WebhookNotification, error) {
	n := usecase.WebhookNotification{
		Type:      c.Query("type"),
		PaymentID: c.Query("data.id"),
	}
	if n.Type == "" {
		n.Type = c.Query("topic")
	}
	if n.PaymentID == "" {
		n.PaymentID = c.Query("id")
	}

	raw, err := c.GetRawData()
	if err != nil {
		return usecase.WebhookNotification{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return n, nil
	}

	var body struct {
		Type string `json:"type"`
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		// Malformed bodies are tolerated; the query parameters carry enough.
		log.Printf("[payment][handler] webhook body not json; using query params err=%v", err)
		return n, nil
	}
	if body.Type != "" {
		n.Type = body.Type
	}
	if body.Data.ID != "" {
		n.PaymentID = body.Data.ID
	}
	return n, nil
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, request.ErrPayerEmailRequired):
		return "Email do pagador é obrigatório"
	case errors.Is(err, request.ErrInvalidAmount):
		return "Valor deve ser maior que zero"
	default:
		return "Requisição inválida"
	}
}

func mapCreatePaymentError(err error) (int, response.PaymentErrorResponse) {
	switch {
	case errors.Is(err, usecase.ErrPayerEmailRequired):
		return http.StatusBadRequest, response.PaymentError("Email do pagador é obrigatório")
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return http.StatusBadRequest, response.PaymentError("Valor deve ser maior que zero")
	case errors.Is(err, usecase.ErrProductNotFound):
		return http.StatusNotFound, response.PaymentError("Produto não encontrado")
	default:
		return http.StatusInternalServerError, response.PaymentError("Erro ao criar pagamento: " + err.Error())
	}
}

func mapPaymentLookupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound), errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
