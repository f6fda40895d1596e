package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/prakashgyan/mafiamanagerirl/internal/cache"
	"github.com/prakashgyan/mafiamanagerirl/internal/service"
	"github.com/prakashgyan/mafiamanagerirl/internal/transport/rest/handler"
	"github.com/prakashgyan/mafiamanagerirl/internal/transport/rest/middleware"
	"github.com/prakashgyan/mafiamanagerirl/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	GameService   *service.GameService
	FriendService *service.FriendService
	Snapshots     cache.SnapshotCache
	WSHub         *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	gameHandler := handler.NewGameHandler(c.GameService)
	friendHandler := handler.NewFriendHandler(c.FriendService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Snapshots)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (host with token in query param, viewers public)
	v1.HandleFunc("/ws/games/{id}/host", wsHandler.HostWS).Methods("GET")
	v1.HandleFunc("/ws/games/{id}/watch", wsHandler.WatchWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := v1.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")

	hostRoutes.HandleFunc("/games", gameHandler.Create).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/games", gameHandler.List).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/games/{id}", gameHandler.Get).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/games/{id}/roles", gameHandler.AssignRoles).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/games/{id}/start", gameHandler.Start).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/games/{id}/actions", gameHandler.QueueAction).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/games/{id}/phase", gameHandler.EndPhase).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/games/{id}/finish", gameHandler.Finish).Methods("POST", "OPTIONS")

	hostRoutes.HandleFunc("/friends", friendHandler.List).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/friends", friendHandler.Create).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/friends/{id}", friendHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
