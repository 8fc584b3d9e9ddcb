package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"time"

	"paddleoffer/cache"
	"paddleoffer/engine"
	"paddleoffer/models"
)

type Handlers struct {
	engine  *engine.OfferEngine
	cache   *cache.CatalogCache
	started time.Time
}

func NewHandlers(offerEngine *engine.OfferEngine, catalogCache *cache.CatalogCache) *Handlers {
	return &Handlers{
		engine:  offerEngine,
		cache:   catalogCache,
		started: time.Now(),
	}
}

// ComputeOffer handles POST /api/v1/offers
func (h *Handlers) ComputeOffer(w http.ResponseWriter, r *http.Request) {
	var req models.OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.engine.ComputeOffer(r.Context(), req)
	if err != nil {
		if errors.Is(err, engine.ErrValidation) {
			writeError(w, http.StatusBadRequest, "model and condition are required")
			return
		}
		log.Printf("❌ Offer computation failed: %v", err)
		writeError(w, http.StatusServiceUnavailable, "offer calculation unavailable, try again shortly")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck returns a simple health check response
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service":   "paddleoffer",
		"status":    "healthy",
		"timestamp": time.Now(),
		"version":   "1.0.0",
		"endpoints": map[string]string{
			"health":  "/health",
			"metrics": "/metrics",
			"status":  "/status",
			"offers":  "/api/v1/offers",
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// Metrics struct for basic monitoring
type Metrics struct {
	Timestamp   time.Time   `json:"timestamp"`
	Uptime      string      `json:"uptime"`
	Goroutines  int         `json:"goroutines"`
	MemoryUsage string      `json:"memory_usage"`
	Catalog     cache.Stats `json:"catalog"`
}

// GetMetrics returns runtime and cache metrics
func (h *Handlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	metricsData := Metrics{
		Timestamp:   time.Now(),
		Uptime:      time.Since(h.started).String(),
		Goroutines:  runtime.NumGoroutine(),
		MemoryUsage: fmt.Sprintf("%.2f MB", float64(m.Alloc)/1024/1024),
		Catalog:     h.cache.GetStats(),
	}

	writeJSON(w, http.StatusOK, metricsData)
}

// GetStatus returns a condensed service status
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	stats := h.cache.GetStats()

	health := "healthy"
	if !stats.Populated {
		health = "warming up"
	}

	status := map[string]interface{}{
		"timestamp":        time.Now(),
		"uptime":           time.Since(h.started).String(),
		"catalog_listings": stats.Listings,
		"catalog_age":      stats.Age,
		"system_health":    health,
	}

	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
