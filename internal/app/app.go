package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/findash/config"
	"github.com/guttosm/findash/internal/api"
	"github.com/guttosm/findash/internal/provider"
	"github.com/guttosm/findash/internal/service"
)

// clientOpener is an indirection for creating the market-data client;
// overridden in tests to avoid real network calls.
var clientOpener = func(cfg config.Config) provider.MarketDataClient {
	return provider.NewYahooClient(
		cfg.Provider.BaseURL,
		time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
	)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market-data provider client from configuration.
//   - Initializes the service layer (history fetch + shaping).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release idle provider connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Market-data provider client (the only external collaborator)
	client := clientOpener(cfg)

	// Initialize service layer (business logic)
	svc := service.NewStockService(client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return client.Ping(ctx)
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if yc, ok := client.(*provider.YahooClient); ok {
			yc.CloseIdle()
		}
	}

	return router, cleanup, nil
}
