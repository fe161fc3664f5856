package selectionmemory

import (
	"context"
	"strings"
	"time"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	redisclient "github.com/SwiggitySwerve/megamek-web-sub007/internal/redis"
)

const (
	memoryKeyPrefix = "selection_memory:"
	fieldSeparator  = "|"

	// DefaultTTL is how long an idle session's memory is kept
	DefaultTTL = 24 * time.Hour

	errSessionIDEmpty = "session ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a repository that keeps each session's memory
// in a Redis hash with one field per category and tech base. A non-positive
// ttl falls back to DefaultTTL.
func NewRedisRepository(client redisclient.Client, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func memoryKey(sessionID string) string {
	return memoryKeyPrefix + sessionID
}

func field(category mech.ComponentCategory, tb mech.TechBase) string {
	return string(category) + fieldSeparator + string(tb)
}

func parseField(f string) (mech.ComponentCategory, mech.TechBase, bool) {
	category, tb, ok := strings.Cut(f, fieldSeparator)
	if !ok {
		return "", "", false
	}
	return mech.ComponentCategory(category), mech.TechBase(tb), true
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, memoryKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load selection memory")
	}

	memory := techbase.NewMemory()
	for f, value := range fields {
		category, tb, ok := parseField(f)
		if !ok || !tb.IsValid() {
			// stale field from an older layout
			continue
		}
		memory.Put(category, tb, value)
	}

	return &GetOutput{Memory: memory}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := memoryKey(input.SessionID)
	entries := input.Memory.Entries()

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(entries) > 0 {
		values := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			values[field(e.Category, e.TechBase)] = e.Value
		}
		pipe.HSet(ctx, key, values)
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save selection memory")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	if err := r.client.Del(ctx, memoryKey(input.SessionID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete selection memory")
	}

	return &DeleteOutput{}, nil
}
