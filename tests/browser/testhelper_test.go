package browser_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	"fitstudio/internal/adapters/advice"
	web "fitstudio/internal/adapters/http"
	"fitstudio/internal/adapters/http/middleware"
	"fitstudio/internal/adapters/http/perf"
	"fitstudio/internal/adapters/images"
	"fitstudio/internal/adapters/storage"
	accountStore "fitstudio/internal/adapters/storage/account"
	appointmentStore "fitstudio/internal/adapters/storage/appointment"
	serviceStore "fitstudio/internal/adapters/storage/service"
	trainerStore "fitstudio/internal/adapters/storage/trainer"
	"fitstudio/internal/application/orchestrators"
	"fitstudio/internal/config"
	"fitstudio/internal/domain/account"
	"fitstudio/internal/domain/service"
	"fitstudio/internal/domain/trainer"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
	AdminID string
	tmpDir  string
}

// newTestApp creates a fully wired app with a temp SQLite DB and starts an HTTP server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("failed to migrate test DB: %v", err)
	}

	acctStore := accountStore.NewSQLiteStore(db)
	svcStore := serviceStore.NewSQLiteStore(db)
	trStore := trainerStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:     acctStore,
		ServiceStore:     svcStore,
		TrainerStore:     trStore,
		AppointmentStore: appointmentStore.NewSQLiteStore(db),
	}

	ctx := context.Background()
	adminID, err := orchestrators.ExecuteCreateAccount(ctx, orchestrators.CreateAccountInput{
		Email:    "admin@test.com",
		Password: "TestPass123!",
		Role:     account.RoleAdmin,
	}, orchestrators.CreateAccountDeps{AccountStore: acctStore})
	if err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	// A small catalog so the booking form has something to offer.
	if err := svcStore.Save(ctx, service.Service{
		ID: "svc-pt", Name: "Personal Training", Description: "One on one coaching.",
		DurationMinutes: 60, Price: 500,
	}); err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	if err := trStore.Save(ctx, trainer.Trainer{
		ID: "tr-ayse", FullName: "Ayşe Demir", Specialization: "Yoga",
		WorkStart: "09:00", WorkEnd: "17:00",
	}); err != nil {
		t.Fatalf("failed to seed trainer: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	imgStore, err := images.NewStore(filepath.Join(tmpDir, "images"))
	if err != nil {
		t.Fatalf("failed to create image store: %v", err)
	}

	cfg := config.Config{Env: "development", StaticDir: "static"}
	web.RateLimitPerSecond = 1000
	mux := web.NewMux(cfg, stores, perf.NewCollector(1000), advice.NewNoopGenerator(), imgStore)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	// Start Playwright
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
		AdminID: adminID,
		tmpDir:  tmpDir,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// loginAs navigates to the login page and logs in with the given credentials.
func (a *testApp) loginAs(t *testing.T, page playwright.Page, email, password, landing string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=Email]").Fill(email); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=Password]").Fill(password); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+landing, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to %s: %v", landing, err)
	}
}

// loginAdmin logs in as the seeded admin.
func (a *testApp) loginAdmin(t *testing.T, page playwright.Page) {
	a.loginAs(t, page, "admin@test.com", "TestPass123!", "/admin/appointments")
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
