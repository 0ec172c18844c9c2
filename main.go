package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"gopkg.in/natefinch/lumberjack.v2"

	"cinetrack/api"
	"cinetrack/config"
	"cinetrack/handlers"
	"cinetrack/models"
	"cinetrack/services/catalog"
	"cinetrack/services/docstore"
	"cinetrack/services/identity"
	"cinetrack/services/localstore"
	"cinetrack/services/ratings"
	"cinetrack/services/recommend"
	"cinetrack/services/watchlist"
)

func main() {
	portOverride := flag.Int("port", 0, "override server port from config")
	flag.Parse()

	fmt.Println("🎬 cinetrack Backend Starting...")

	// Determine config path (env or default)
	configPath := os.Getenv("CINETRACK_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("data", "settings.json")
	}

	// Init config manager and load settings (creates defaults if missing)
	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// Set up file logging with rotation
	if settings.Log.File != "" {
		logDir := filepath.Dir(settings.Log.File)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   settings.Log.File,
				MaxSize:    settings.Log.MaxSize,
				MaxBackups: settings.Log.MaxBackups,
				MaxAge:     settings.Log.MaxAge,
				Compress:   settings.Log.Compress,
			}
			multiWriter := io.MultiWriter(os.Stdout, fileWriter)
			log.SetOutput(multiWriter)
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			log.Printf("Logging to file: %s", settings.Log.File)
		}
	}

	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}

	// Local persistence
	localStore, err := localstore.NewStore(nil, settings.Storage.DataDir)
	if err != nil {
		log.Fatalf("failed to create local store: %v", err)
	}

	// Cloud document store; without a configured backend the watchlist stays
	// local-only.
	var remoteStore docstore.Store
	if settings.DocStore.BaseURL != "" {
		httpc := &http.Client{Timeout: time.Duration(settings.DocStore.TimeoutSeconds) * time.Second}
		client, err := docstore.NewClient(settings.DocStore.BaseURL, settings.DocStore.APIKey, httpc)
		if err != nil {
			log.Fatalf("failed to create document store client: %v", err)
		}
		remoteStore = client
	} else {
		log.Printf("warning: no document store configured; watchlist sync is disabled")
	}

	identitySvc, err := identity.NewService(settings.Storage.DataDir)
	if err != nil {
		log.Fatalf("failed to initialise identities: %v", err)
	}

	watchlistSvc, err := watchlist.NewService(localStore, remoteStore)
	if err != nil {
		log.Fatalf("failed to create watchlist service: %v", err)
	}

	// Reconcile local and cloud state on every identity transition, including
	// the initial resolution below.
	identitySvc.OnChange(func(id *models.Identity) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := watchlistSvc.OnIdentityChange(ctx, id); err != nil {
			log.Printf("watchlist sync: %v", err)
		}
	})

	catalogSvc := catalog.NewService(
		settings.Catalog.APIKey,
		settings.Catalog.Language,
		time.Duration(settings.Catalog.CacheTTLMinutes)*time.Minute,
	)
	if settings.Catalog.APIKey == "" {
		log.Printf("warning: no catalog API key configured; catalog feeds will be empty")
	}

	ratingsClient := ratings.NewClient(settings.Ratings.APIKey, settings.Ratings.Enabled)
	engine := recommend.NewService(nil)

	r := mux.NewRouter()
	api.Register(
		r,
		handlers.NewAuthHandler(identitySvc),
		handlers.NewWatchlistHandler(watchlistSvc),
		handlers.NewRecommendHandler(engine),
		handlers.NewCatalogHandler(catalogSvc, ratingsClient),
	)

	// Resolve the persisted session now that the synchronizer is listening.
	identitySvc.Resolve()

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	fmt.Printf("Server starting on %s\n", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("🛑 Shutdown signal received, cleaning up...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Let in-flight watchlist pushes land before the process exits.
	watchlistSvc.Wait()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
