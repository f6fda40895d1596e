package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

// SnapshotCache keeps the latest broadcast snapshot per game so a viewer
// connecting late (or reconnecting) catches up immediately instead of
// waiting for the next host mutation.
type SnapshotCache interface {
	Set(ctx context.Context, snap model.Snapshot) error
	Get(ctx context.Context, gameID string) (*model.Snapshot, error)
	Delete(ctx context.Context, gameID string) error
}

type snapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client) SnapshotCache {
	return &snapshotCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *snapshotCache) Set(ctx context.Context, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "snapshot:"+snap.GameID, data, c.ttl).Err()
}

func (c *snapshotCache) Get(ctx context.Context, gameID string) (*model.Snapshot, error) {
	data, err := c.client.Get(ctx, "snapshot:"+gameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *snapshotCache) Delete(ctx context.Context, gameID string) error {
	return c.client.Del(ctx, "snapshot:"+gameID).Err()
}
