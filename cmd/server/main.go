package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/database"
	"dinarx-gateway/internal/errors"
	"dinarx-gateway/internal/handlers"
	"dinarx-gateway/internal/middleware"
	"dinarx-gateway/internal/partner"
	"dinarx-gateway/internal/repositories"
	"dinarx-gateway/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file for local development. In production, env vars are set directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("database initialization failed", "error", err)
		os.Exit(1)
	}

	// Outbound partner stack: one breaker and one metrics recorder shared by
	// every call the gateway makes.
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	metrics := services.NewPrometheusMetrics()
	gateway := partner.NewClient(&cfg.Partner,
		partner.WithBreaker(breaker),
		partner.WithMetrics(metrics),
		partner.WithLogger(logger),
	)

	consentRepo := repositories.NewConsentRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	aggregationService := services.NewAggregationService(gateway, &cfg.Partner, metrics)
	fxService := services.NewFXService(gateway, &cfg.Partner, metrics)
	consentService := services.NewConsentService(gateway, consentRepo, metrics)
	paymentService := services.NewPaymentService(gateway, paymentRepo, metrics)

	accountHandler := handlers.NewAccountHandler(aggregationService)
	fxHandler := handlers.NewFXHandler(fxService)
	consentHandler := handlers.NewConsentHandler(consentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	healthHandler := handlers.NewHealthCheckHandler(db, breaker)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.IsDevelopment() {
		registerDevTokenEndpoint(e, cfg)
	}

	api := e.Group("/api/v1", middleware.RequireAuth(&cfg.Auth))

	api.GET("/accounts", accountHandler.GetAccounts)
	api.GET("/accounts/:accountId/balances", accountHandler.GetAccountBalances)
	api.GET("/accounts/:accountId/fx", fxHandler.GetAccountRates)

	api.GET("/fx/rates", fxHandler.GetInstitutionRates)
	api.POST("/fx/quotes", fxHandler.CreateQuote)

	api.POST("/consents", consentHandler.CreateConsent)
	api.GET("/consents", consentHandler.ListConsents)
	api.GET("/consents/:consentId", consentHandler.GetConsent)

	api.POST("/payments/consents", paymentHandler.CreatePaymentConsent)
	api.POST("/payments", paymentHandler.SubmitPayment)
	api.GET("/payments", paymentHandler.ListPayments)
	api.GET("/payments/:paymentId", paymentHandler.GetPayment)

	stopCleanup := startConsentCleanup(consentRepo, logger)
	defer stopCleanup()

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// startConsentCleanup periodically expires stale local consent records. The
// partner remains authoritative on read paths; this only keeps the local
// mirror honest between reads.
func startConsentCleanup(repo repositories.ConsentRepositoryInterface, logger *slog.Logger) func() {
	ticker := time.NewTicker(time.Hour)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				expired, err := repo.ExpireStale(time.Now().UTC())
				if err != nil {
					logger.Error("consent cleanup failed", "error", err)
					continue
				}
				if expired > 0 {
					logger.Info("expired stale consents", "count", expired)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

// registerDevTokenEndpoint exposes a token mint for local testing only. The
// route is never registered outside the development environment.
func registerDevTokenEndpoint(e *echo.Echo, cfg *config.Config) {
	type tokenRequest struct {
		UserID     string `json:"user_id" validate:"required"`
		CustomerID string `json:"customer_id"`
	}

	e.POST("/dev/token", func(c echo.Context) error {
		var req tokenRequest
		if err := c.Bind(&req); err != nil {
			return handlers.SendError(c, errors.ValidationInvalidFormat)
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		customerID := req.CustomerID
		if customerID == "" {
			customerID = cfg.Partner.DefaultCustomerID
		}

		token, err := middleware.IssueToken(&cfg.Auth, req.UserID, customerID)
		if err != nil {
			return handlers.SendSystemError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"token":      token,
			"expires_in": cfg.Auth.TokenDuration.String(),
		})
	})
}
