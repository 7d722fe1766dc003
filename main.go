package main

import (
	"crypto/tls"
	"encoding/json"
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"github.com/username/brokertax/src/config"
	"github.com/username/brokertax/src/handlers"
	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/parsers"
	"github.com/username/brokertax/src/processors"
	"github.com/username/brokertax/src/services"
	"github.com/username/brokertax/src/utils"
	"golang.org/x/time/rate"
)

func proxyHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Forwarded-Proto") == "https" {
			r.URL.Scheme = "https"
			r.TLS = &tls.ConnectionState{}
		}
		next.ServeHTTP(w, r)
	})
}

func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.FromContext(r.Context()).Warn("Rate limit exceeded", "path", r.URL.Path)
				utils.SendJSONError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel, config.Cfg.LogFormat)

	logger.L.Info("Broker tax backend server starting...")

	// Amounts are sent as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	if err := utils.InitCodeTables(config.Cfg.CodeTablesPath); err != nil {
		logger.L.Warn("Continuing with built-in code tables", "error", err)
	}

	interpreters := parsers.DefaultInterpreters()
	taxProcessor := processors.NewTaxProcessor(utils.CodeTables())
	sessionStore := services.NewSessionStore(config.Cfg.SessionTTL, config.Cfg.CacheCleanupInterval)
	resultCache := cache.New(config.Cfg.ResultCacheTTL, config.Cfg.CacheCleanupInterval)

	reportService := services.NewReportService(
		sessionStore,
		taxProcessor,
		interpreters,
		resultCache,
		config.Cfg.DefaultFileName,
	)
	reportHandler := handlers.NewReportHandler(reportService, config.Cfg)

	limiter := rate.NewLimiter(rate.Limit(config.Cfg.RateLimitPerSecond), config.Cfg.RateLimitBurst)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.Cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Content-Length",
			"If-None-Match",
			handlers.SessionHeader,
		},
		ExposedHeaders: []string{
			"ETag",
			handlers.SessionHeader,
			handlers.RequestIDHeader,
		},
		AllowCredentials: true,
	})

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(proxyHeadersMiddleware)
	r.Use(corsHandler.Handler)
	r.Use(rateLimitMiddleware(limiter))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":  "Broker tax backend is running",
			"sessions": sessionStore.Count(),
		})
	})

	r.Route("/api/reports", reportHandler.RegisterRoutes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.SendJSONError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
