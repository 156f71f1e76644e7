package main

import (
	_ "oficina_os/docs"
	"oficina_os/internal/adapter/http/routes"
	"oficina_os/internal/infrastructure/config"
	"oficina_os/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina OS API
// @version         1.0
// @description     Service order workflow for an equipment repair shop: intake, kanban, budgets, payments and attachments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	routes.Run(cfg)
}
