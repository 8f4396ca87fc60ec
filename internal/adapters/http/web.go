package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"fitstudio/internal/adapters/advice"
	"fitstudio/internal/adapters/http/middleware"
	"fitstudio/internal/adapters/http/perf"
	"fitstudio/internal/adapters/images"
	accountStore "fitstudio/internal/adapters/storage/account"
	appointmentStore "fitstudio/internal/adapters/storage/appointment"
	serviceStore "fitstudio/internal/adapters/storage/service"
	trainerStore "fitstudio/internal/adapters/storage/trainer"
	"fitstudio/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore     accountStore.Store
	ServiceStore     serviceStore.Store
	TrainerStore     trainerStore.Store
	AppointmentStore appointmentStore.Store
}

// loadCSRFKey decodes the CSRF secret from config (hex-encoded, 32 bytes).
// In production the key MUST be set. In development a random key is generated
// per startup.
func loadCSRFKey(cfg config.Config) []byte {
	if cfg.CSRFKeyHex != "" {
		key, err := hex.DecodeString(cfg.CSRFKeyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FITSTUDIO_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if cfg.IsProduction() {
		log.Fatal("FITSTUDIO_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (forms won't survive restart). Set FITSTUDIO_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global advice generator (set by NewMux)
var adviceGenerator advice.Generator

// Global image store for admin uploads (set by NewMux)
var imageStore *images.Store

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(cfg config.Config, s *Stores, collector *perf.Collector, generator advice.Generator, imgs *images.Store) http.Handler {
	stores = s
	perfCollector = collector
	adviceGenerator = generator
	imageStore = imgs
	sessions = middleware.NewSessionStore()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	if imgs != nil {
		mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(imgs.Dir()))))
	}
	registerRoutes(mux)

	csrfKey := loadCSRFKey(cfg)

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
