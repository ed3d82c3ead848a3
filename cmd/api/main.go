package main

import (
	_ "play12/docs"
	"play12/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Play12 Payment Service API
// @version         1.0
// @description     PIX payment service (Mercado Pago checkout preferences) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
