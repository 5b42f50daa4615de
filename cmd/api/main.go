package main

import (
	_ "github.com/alexVinter/fire-dynamics1/docs"
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fire Dynamics Quote API
// @version         1.0
// @description     Quote calculation and approval workflow for fire-suppression equipment, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller id forwarded by the authentication gateway.

// @securityDefinitions.apikey UserRole
// @in header
// @name X-User-Role
// @description Caller role (admin, manager, warehouse) forwarded by the authentication gateway.

func main() {
	routes.Run()
}
