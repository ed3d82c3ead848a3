package routes

import (
	"play12/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix/create", paymentHandler.CreatePixPayment)
		payments.GET("/pix/status/:transaction_id", paymentHandler.GetPaymentStatus)
		payments.POST("/webhook/mercadopago", paymentHandler.HandleWebhook)
	}
}
