package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"

	_ "modernc.org/sqlite"

	"fitstudio/internal/adapters/advice"
	web "fitstudio/internal/adapters/http"
	"fitstudio/internal/adapters/http/perf"
	"fitstudio/internal/adapters/images"
	"fitstudio/internal/adapters/storage"
	accountStore "fitstudio/internal/adapters/storage/account"
	appointmentStore "fitstudio/internal/adapters/storage/appointment"
	serviceStore "fitstudio/internal/adapters/storage/service"
	trainerStore "fitstudio/internal/adapters/storage/trainer"
	"fitstudio/internal/application/orchestrators"
	"fitstudio/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	} else {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// WAL mode, foreign keys, and busy timeout keep concurrent form posts and
	// catalog reads from tripping over each other.
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	svcStore := serviceStore.NewSQLiteStore(timedDB)
	trStore := trainerStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:     acctStore,
		ServiceStore:     svcStore,
		TrainerStore:     trStore,
		AppointmentStore: appointmentStore.NewSQLiteStore(timedDB),
	}

	// Uploaded catalog images live under the static root and are served back
	// from /uploads/.
	imageStore, err := images.NewStore(filepath.Join(cfg.StaticDir, "images"))
	if err != nil {
		log.Fatalf("failed to prepare image store: %v", err)
	}

	// Seed default admin account if no accounts exist
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed a demo catalog for development only
	if !cfg.IsProduction() {
		synDeps := orchestrators.SyntheticSeedDeps{
			ServiceStore: svcStore,
			Catalog: orchestrators.CatalogDeps{
				ServiceStore: svcStore,
				TrainerStore: trStore,
				Images:       imageStore,
			},
		}
		if err := orchestrators.ExecuteSeedSynthetic(context.Background(), synDeps, 5); err != nil {
			log.Fatalf("failed to seed demo catalog: %v", err)
		}
		log.Println("Demo catalog loaded (dev mode)")
	}

	// Advice provider: real Gemini client when a key is configured, otherwise
	// a noop that renders a setup hint.
	var generator advice.Generator
	if cfg.GeminiAPIKey != "" {
		generator = advice.NewGeminiClient(cfg.GeminiAPIKey)
		log.Println("Advice generator configured (Gemini)")
	} else {
		generator = advice.NewNoopGenerator()
		log.Println("Advice generator configured (noop — set FITSTUDIO_GEMINI_KEY for real advice)")
	}

	mux := web.NewMux(cfg, stores, collector, generator, imageStore)

	log.Printf("FitStudio %s starting on %s (env=%s, schema=%d)", version, cfg.Addr, cfg.Env, storage.LatestSchemaVersion())
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
