package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/prakashgyan/mafiamanagerirl/internal/config"
	"github.com/prakashgyan/mafiamanagerirl/internal/model"
	"github.com/prakashgyan/mafiamanagerirl/internal/repository"
)

// Seeds a demo host account with a small friend roster for local
// development.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	userRepo := repository.NewUserRepo(db)
	friendRepo := repository.NewFriendRepo(db)

	existing, err := userRepo.GetByUsername(ctx, "demo")
	if err != nil {
		log.Fatalf("Failed to check demo user: %v", err)
	}
	if existing != nil {
		log.Println("Demo user already seeded")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     "demo",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	roster := []struct {
		name  string
		desc  string
		image string
	}{
		{"Asha", "Always the first to accuse", "🦊"},
		{"Boris", "Quiet until night two", "🐻"},
		{"Chitra", "Claims doctor every game", "🐼"},
		{"Dinesh", "Has never survived a night", "🦉"},
		{"Elif", "Reads everyone perfectly", "🐱"},
	}
	for _, f := range roster {
		friend := &model.Friend{
			ID:          uuid.New().String(),
			UserID:      user.ID,
			Name:        f.name,
			Description: f.desc,
			Image:       f.image,
			CreatedAt:   time.Now().UTC(),
		}
		if err := friendRepo.Create(ctx, friend); err != nil {
			log.Fatalf("Failed to create friend %s: %v", f.name, err)
		}
	}

	log.Printf("Seeded demo user %s with %d friends (password: demo-password)", user.ID, len(roster))
}
