package routes

import (
	"log"
	"strconv"

	_ "play12/docs" // This will be auto-generated
	"play12/internal/adapter/http/handlers"
	repository2 "play12/internal/adapter/persistence/repository"
	"play12/internal/infrastructure/config"
	"play12/internal/infrastructure/database"
	"play12/internal/infrastructure/payments"
	"play12/internal/usecase"
	"play12/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)

	pixConfig := config.LoadPixFromEnv()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(pixConfig)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var statusSource interfaces.IPaymentStatusSource
	mpStatusSource, err := payments.NewMercadoPagoStatusSource(pixConfig)
	if err != nil {
		log.Printf("Mercado Pago status source not configured: %v", err)
	} else {
		statusSource = mpStatusSource
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, productRepo, paymentGateway, statusSource, pixConfig.ExpirationMinutes)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addPaymentRoutes(api, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
