package inventory

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/ducttape-items/internal/redis"
)

const (
	// Key pattern: inventory:{id}
	snapshotKeyPrefix = "inventory:"
	// Set of every saved id
	indexKey = "inventory_index"

	errIDEmpty       = "snapshot id cannot be empty"
	errSnapshotNil   = "snapshot cannot be nil"
	errNegativeIndex = "slot index cannot be negative"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL applied to saved snapshots; zero keeps them forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("config").Build()
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for inventory snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save stores the snapshot and records its id in the index
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	for _, slot := range input.Snapshot.Slots {
		if slot.Index < 0 {
			return nil, errors.InvalidArgument(errNegativeIndex).WithMeta("item", slot.Item)
		}
	}

	snapshot := *input.Snapshot
	snapshot.Slots = append([]Slot(nil), input.Snapshot.Slots...)
	snapshot.SavedAt = r.clock.Now().UTC()

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.buildKey(snapshot.ID), data, ttl)
	pipe.SAdd(ctx, indexKey, snapshot.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store snapshot %s", snapshot.ID)
	}

	return &SaveOutput{Snapshot: &snapshot}, nil
}

// Load retrieves a snapshot by id
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.ID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("inventory snapshot %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot %s", input.ID)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot %s", input.ID)
	}

	return &LoadOutput{Snapshot: &snapshot}, nil
}

// Delete removes a snapshot and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, r.buildKey(input.ID))
	pipe.SRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete snapshot %s", input.ID)
	}

	return &DeleteOutput{Deleted: del.Val() > 0}, nil
}

// List returns the ids of snapshots that still exist. Index entries whose
// snapshot expired are pruned.
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list snapshots")
	}

	live := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := r.client.Exists(ctx, r.buildKey(id)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check snapshot %s", id)
		}
		if n == 0 {
			_ = r.client.SRem(ctx, indexKey, id).Err()
			continue
		}
		live = append(live, id)
	}
	sort.Strings(live)

	return &ListOutput{IDs: live}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return snapshotKeyPrefix + id
}
