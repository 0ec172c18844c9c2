package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"cinetrack/handlers"
)

// corsMiddleware handles CORS for API routes
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Register mounts API endpoints onto the provided router.
func Register(
	r *mux.Router,
	authHandler *handlers.AuthHandler,
	watchlistHandler *handlers.WatchlistHandler,
	recommendHandler *handlers.RecommendHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(corsMiddleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Auth
	api.HandleFunc("/auth/signup", authHandler.SignUp).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/signin", authHandler.SignIn).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/signout", authHandler.SignOut).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/session", authHandler.Session).Methods(http.MethodGet, http.MethodOptions)

	// Watchlist
	api.HandleFunc("/watchlist", watchlistHandler.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/watchlist", watchlistHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/watchlist", watchlistHandler.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/watchlist/status", watchlistHandler.Status).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/watchlist/toggle", watchlistHandler.Toggle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/watchlist/{id}", watchlistHandler.Remove).Methods(http.MethodDelete, http.MethodOptions)

	// Recommendations
	api.HandleFunc("/recommendations", recommendHandler.Recommendations).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/movies/{id}/similar", recommendHandler.Similar).Methods(http.MethodGet, http.MethodOptions)

	// Catalog
	api.HandleFunc("/catalog/search", catalogHandler.Search).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/catalog/movie/{id}", catalogHandler.Detail).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/catalog/{feed}", catalogHandler.Feed).Methods(http.MethodGet, http.MethodOptions)
}
