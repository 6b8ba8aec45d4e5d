package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/config"
	"github.com/georgemunganga/dagangcerdas-backend/internal/database"
	"github.com/georgemunganga/dagangcerdas-backend/internal/httpx"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/customer"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/debt"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/inventory"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/notification"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/payment"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/promotion"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/sales"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/store"
	"github.com/georgemunganga/dagangcerdas-backend/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	logger := log.Logger.With().Str("service", cfg.AppName).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot set up telemetry")
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot connect to database")
	}
	defer db.Close()
	logger.Info().Msg("Successfully connected to the database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(hlog.NewHandler(logger))
	router.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.Success(w, http.StatusOK, map[string]string{
			"message": "DagangCerdas API is running",
			"version": "1.0.0",
		})
	})

	// ── Catalog & Stock ─────────────────────────────────────
	productRepo := inventory.NewProductPostgresRepository(db)
	stockAdjuster := inventory.NewAdjuster(productRepo, logger)

	// ── Promotions ──────────────────────────────────────────
	policy := promotion.Policy{
		HotThreshold:     cfg.HotProductThreshold,
		Window:           cfg.HotProductWindow,
		DiscountPercent:  decimal.NewFromFloat(cfg.AutoPromoDiscountPercent),
		Duration:         cfg.AutoPromoDuration,
		MinOrderQuantity: cfg.AutoPromoMinOrderQty,
	}
	salesRepo := sales.NewPostgresRepository(db)
	promotionRepo := promotion.NewPostgresRepository(db)
	detector := promotion.NewDetector(salesRepo, policy, time.Now)
	issuer := promotion.NewIssuer(promotionRepo, productRepo, detector, policy, time.Now, logger)

	// ── Sales & Payments ────────────────────────────────────
	salesService := sales.NewService(salesRepo, stockAdjuster, issuer, time.Now, logger)
	gateway := payment.NewSnapGateway(
		payment.BaseURL(cfg.MidtransBaseURL, cfg.MidtransIsProduction),
		cfg.MidtransServerKey,
	)
	paymentService := payment.NewService(gateway, salesRepo, time.Now, logger)

	// ── Store back office ───────────────────────────────────
	debtRepo := debt.NewPostgresRepository(db)
	notificationService := notification.NewService(productRepo, debtRepo, salesRepo, time.Now, logger)

	router.Route("/api", func(r chi.Router) {
		inventory.NewHandler(inventory.NewService(productRepo)).RegisterRoutes(r)
		promotion.NewHandler(promotion.NewService(promotionRepo)).RegisterRoutes(r)
		sales.NewHandler(salesService).RegisterRoutes(r)
		payment.NewHandler(paymentService).RegisterRoutes(r)
		store.NewHandler(store.NewService(store.NewPostgresRepository(db))).RegisterRoutes(r)
		customer.NewHandler(customer.NewService(customer.NewPostgresRepository(db))).RegisterRoutes(r)
		debt.NewHandler(debt.NewService(debtRepo)).RegisterRoutes(r)
		notification.NewHandler(notificationService).RegisterRoutes(r)
	})

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("DagangCerdas API server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
