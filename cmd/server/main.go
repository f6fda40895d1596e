package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/prakashgyan/mafiamanagerirl/docs"
	"github.com/prakashgyan/mafiamanagerirl/internal/cache"
	"github.com/prakashgyan/mafiamanagerirl/internal/config"
	"github.com/prakashgyan/mafiamanagerirl/internal/repository"
	"github.com/prakashgyan/mafiamanagerirl/internal/service"
	"github.com/prakashgyan/mafiamanagerirl/internal/transport/rest"
	"github.com/prakashgyan/mafiamanagerirl/internal/transport/ws"
)

// @title Mafia Manager API
// @version 1.0
// @description Host-driven Mafia game night manager with live viewer sync
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	gameRepo := repository.NewGameRepo(db)
	playerRepo := repository.NewPlayerRepo(db)
	logRepo := repository.NewLogRepo(db)
	userRepo := repository.NewUserRepo(db)
	friendRepo := repository.NewFriendRepo(db)

	// Initialize caches
	snapshots := cache.NewSnapshotCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	gameSvc := service.NewGameService(gameRepo, playerRepo, logRepo, friendRepo, snapshots)
	friendSvc := service.NewFriendService(friendRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	gameSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:   authSvc,
		GameService:   gameSvc,
		FriendService: friendSvc,
		Snapshots:     snapshots,
		WSHub:         wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/signup")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/games")
		log.Println("  POST /v1/games/{id}/roles|start|actions|phase|finish")
		log.Println("  GET/POST/DELETE /v1/friends")
		log.Println("  WS  /v1/ws/games/{id}/host")
		log.Println("  WS  /v1/ws/games/{id}/watch")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
