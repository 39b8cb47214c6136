package api

import (
	graphqlapi "customer-graph-api/internal/api/graphql"
	"customer-graph-api/internal/api/handler"
	mw "customer-graph-api/internal/api/middleware"
	"customer-graph-api/internal/config"
	"customer-graph-api/internal/domain/customer"
	"log/slog"
	"net/http"
	"time"

	_ "customer-graph-api/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SetupRouter wires both access paths onto one router. The REST account
// endpoint runs through the same schema that serves /graphql.
func SetupRouter(customerService customer.CustomerService, schema *graphqlgo.Schema, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupRESTRoutes(router, customerService, schema, logger)
	setupGraphQLEndpoint(router, schema, cfg, logger)
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	requestTimeout := cfg.Server.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(requestTimeout))
	if cfg.Metrics.Enabled {
		router.Use(mw.MetricsMiddleware())
	}
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	if !cfg.Metrics.Enabled {
		logger.Info("Prometheus metrics disabled")
		return
	}
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupRESTRoutes(router *chi.Mux, svc customer.CustomerService, schema *graphqlgo.Schema, logger *slog.Logger) {
	customerHandler := handler.NewCustomerHandler(svc, logger)
	accountHandler := handler.NewAccountHandler(graphqlapi.NewExecutor(schema), logger)

	router.Get("/", handler.Welcome)
	router.Get("/health", handler.Health)
	router.Get("/customer", customerHandler.GetCustomer)
	router.Get("/graphql-query", accountHandler.GetAccount)
}

func setupGraphQLEndpoint(router *chi.Mux, schema *graphqlgo.Schema, cfg *config.Config, logger *slog.Logger) {
	path := cfg.GraphQL.Path
	if path == "" {
		path = "/graphql"
	}
	logger.Info("Setting up GraphQL endpoint", "path", path, "playground", cfg.GraphQL.Playground)
	router.Handle(path, graphqlapi.NewHandler(schema, cfg.GraphQL.Playground, logger))
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/docs/")
	router.Get("/docs/*", httpSwagger.WrapHandler)
	router.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
}
