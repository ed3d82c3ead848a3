package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"play12/internal/adapter/http/handlers/mocks"
	"play12/internal/domain/entities"
	"play12/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/payments/pix/create", h.CreatePixPayment)
	r.GET("/api/payments/pix/status/:transaction_id", h.GetPaymentStatus)
	r.POST("/api/payments/webhook/mercadopago", h.HandleWebhook)
	return r
}

func TestPaymentHandler_CreatePixPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["status"] != "ERROR" {
			t.Fatalf("expected ERROR status, got %+v", body)
		}
	})

	t.Run("missing payer email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(`{"amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["message"] != "Email do pagador é obrigatório" {
			t.Fatalf("unexpected message: %+v", body)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(`{"payerEmail":"a@b.com","amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["message"] != "Valor deve ser maior que zero" {
			t.Fatalf("unexpected message: %+v", body)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePixPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(`{"payerEmail":"a@b.com","productId":"prod-404"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["message"] != "Produto não encontrado" {
			t.Fatalf("unexpected message: %+v", body)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreatePixPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("provider down"))

		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(`{"payerEmail":"a@b.com","amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["status"] != "ERROR" || body["message"] != "Erro ao criar pagamento: provider down" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		expires := time.Now().UTC().Add(30 * time.Minute)
		uc.EXPECT().CreatePixPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreatePixPaymentInput) (entities.Payment, error) {
				if in.PayerEmail != "a@b.com" || in.Amount == nil || *in.Amount != 50 {
					t.Errorf("unexpected input: %+v", in)
				}
				return entities.Payment{
					TransactionID:  "MP123",
					Amount:         50,
					Status:         entities.PaymentStatusPending,
					QRCode:         "00020101...",
					QRCodeURL:      "https://pay/x",
					ExpirationTime: expires,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(`{"payerEmail":"a@b.com","amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["transactionId"] != "MP123" || body["qrCode"] != "00020101..." || body["qrCodeUrl"] != "https://pay/x" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body["message"] != "QR Code gerado com sucesso! Escaneie para pagar com Pix." {
			t.Fatalf("unexpected message: %+v", body)
		}
	})
}

func TestPaymentHandler_GetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetPaymentStatus(gomock.Any(), "MP404").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/payments/pix/status/MP404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["error"] != "Pagamento não encontrado" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetPaymentStatus(gomock.Any(), "MP1").Return(entities.Payment{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/api/payments/pix/status/MP1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetPaymentStatus(gomock.Any(), "MP123").Return(entities.Payment{
			TransactionID: "MP123",
			Amount:        50,
			Status:        entities.PaymentStatusCompleted,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/payments/pix/status/MP123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["transactionId"] != "MP123" || body["status"] != "COMPLETED" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestPaymentHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query parameter notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ProcessWebhook(gomock.Any(), usecase.WebhookNotification{Type: "payment", PaymentID: "777"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook/mercadopago?type=payment&data.id=777", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["status"] != "received" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("json body wins over query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ProcessWebhook(gomock.Any(), usecase.WebhookNotification{Type: "payment", PaymentID: "888"}).Return(nil)

		req := httptest.NewRequest(
			http.MethodPost,
			"/api/payments/webhook/mercadopago?type=test&data.id=777",
			bytes.NewBufferString(`{"type":"payment","data":{"id":"888"}}`),
		)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("processing failure still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).Return(errors.New("provider down"))

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook/mercadopago?type=payment&data.id=777", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["status"] != "received" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("malformed body falls back to query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().ProcessWebhook(gomock.Any(), usecase.WebhookNotification{Type: "payment", PaymentID: "777"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook/mercadopago?type=payment&data.id=777", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("body read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook/mercadopago", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
