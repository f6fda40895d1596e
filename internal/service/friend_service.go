package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
	"github.com/prakashgyan/mafiamanagerirl/internal/repository"
)

// FriendService manages a host's reusable roster of regular players.
type FriendService struct {
	friendRepo repository.FriendRepo
}

// NewFriendService creates a new friend service
func NewFriendService(friendRepo repository.FriendRepo) *FriendService {
	return &FriendService{friendRepo: friendRepo}
}

// List returns the user's roster, sorted by name.
func (s *FriendService) List(ctx context.Context, userID string) ([]*model.Friend, error) {
	return s.friendRepo.ListByUser(ctx, userID)
}

// Create adds a roster entry.
func (s *FriendService) Create(ctx context.Context, userID, name, description, image string) (*model.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	friend := &model.Friend{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Image:       image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.friendRepo.Create(ctx, friend); err != nil {
		return nil, fmt.Errorf("failed to create friend: %w", err)
	}
	return friend, nil
}

// Delete removes a roster entry; reports whether one existed.
func (s *FriendService) Delete(ctx context.Context, id, userID string) (bool, error) {
	return s.friendRepo.Delete(ctx, id, userID)
}
