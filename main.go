package main

import (
	"log"
	"net/http"
	"strings"

	"paddleoffer/cache"
	"paddleoffer/config"
	"paddleoffer/engine"
	"paddleoffer/handlers"
	"paddleoffer/middleware"
	"paddleoffer/scheduler"
	"paddleoffer/scraper"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Build the scrape-and-match pipeline
	fetcher := scraper.NewFetcher(cfg.FetchTimeout, cfg.FetchMaxAttempts, cfg.FetchBackoff)
	source := scraper.NewHTTPCatalogSource(fetcher, cfg.SourceURL)
	catalogCache := cache.NewCatalogCache(source, cfg.CatalogTTL)
	offerEngine := engine.NewOfferEngine(catalogCache)
	h := handlers.NewHandlers(offerEngine, catalogCache)

	// Keep the cache warm in the background
	refresher := scheduler.NewCatalogRefresher(catalogCache, cfg.RefreshCron)
	refresher.Start()
	defer refresher.Stop()

	// Setup router
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.LoggingMiddleware)
	if cfg.RateLimitEnabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS))
	}
	r.Use(middleware.APIKeyMiddleware(cfg.RequireAPIKey))

	// Health and monitoring endpoints (no auth required)
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/metrics", h.GetMetrics).Methods("GET")
	r.HandleFunc("/status", h.GetStatus).Methods("GET")

	// API v1 routes
	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/offers", h.ComputeOffer).Methods("POST")

	// CORS configuration
	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Printf("🌐 Server starting on port %s", cfg.Port)
	log.Printf("📋 API Documentation:")
	log.Printf("   GET  /health - Health check")
	log.Printf("   GET  /metrics - System metrics")
	log.Printf("   GET  /status - Detailed status")
	log.Printf("   POST /api/v1/offers - Compute a purchase offer")

	// Start server
	log.Fatal(http.ListenAndServe(cfg.Host+":"+cfg.Port, c.Handler(r)))
}
