package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "os_service_api/docs" // This will be auto-generated
	"os_service_api/internal/adapter/http/handlers"
	repository2 "os_service_api/internal/adapter/persistence/repository"
	"os_service_api/internal/domain/policy"
	"os_service_api/internal/infrastructure/database"
	"os_service_api/internal/usecase"
	"os_service_api/pkg/config"
	"os_service_api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups what the router needs to serve the API.
type Handlers struct {
	ServiceOrders *handlers.ServiceOrderHandler
	Insumos       *handlers.InsumoHandler
}

// Run wires the DynamoDB adapters into the use cases and serves until ctx is done.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	h, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, cfg.HTTP.RateLimit, log)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.App.Env).Msg("starting http server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received; draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, limits config.RateLimitConfig, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, limits, logger.Component(log, "http"))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, h.ServiceOrders, h.Insumos)

	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, err
	}

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb, cfg.Tables.ServiceOrders)
	clientGateway := repository2.NewClientDynamoGateway(ddb, cfg.Tables.Clients)
	serviceGateway := repository2.NewServiceDynamoGateway(ddb, cfg.Tables.Services)
	stockRepo := repository2.NewStockDynamoRepository(ddb, cfg.Tables.Stock)
	uowFactory := repository2.NewDynamoUnitOfWorkFactory(ddb, cfg.Tables.ServiceOrders, stockRepo, log)
	outbox := repository2.NewDynamoEventOutbox(ddb, cfg.Tables.ServiceOrderEvents)

	rules := policy.QuoteRules{
		ExpirationDays: cfg.Rules.QuoteExpirationDays,
		AllowZeroQuote: cfg.Rules.AllowZeroQuote,
	}

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, clientGateway, serviceGateway, uowFactory, outbox, rules, log)
	insumoUseCase := usecase.NewInsumoUseCase(orderRepo, uowFactory, log)

	log.Info().
		Str("orders_table", cfg.Tables.ServiceOrders).
		Str("stock_table", cfg.Tables.Stock).
		Int("quote_expiration_days", rules.ExpirationDays).
		Bool("allow_zero_quote", rules.AllowZeroQuote).
		Msg("service order use cases wired")

	return Handlers{
		ServiceOrders: handlers.NewServiceOrderHandler(orderUseCase),
		Insumos:       handlers.NewInsumoHandler(insumoUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine, limits config.RateLimitConfig, log zerolog.Logger) {
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Interface("panic", recovered).
			Str("request_id", c.GetString(requestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
	router.Use(rateLimitMiddleware(limits))
	router.Use(actorMiddleware())
}
