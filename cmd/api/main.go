package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "os_service_api/docs"
	"os_service_api/internal/adapter/http/routes"
	"os_service_api/pkg/config"
	"os_service_api/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OS Service API
// @version         1.0
// @description     Service order (OS) lifecycle: registration, diagnosis, budget, approval, execution and stock consumption, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log = log.With().Str("service", cfg.App.Name).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}
