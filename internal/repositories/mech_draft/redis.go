package mechdraft

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	redisclient "github.com/SwiggitySwerve/megamek-web-sub007/internal/redis"
)

const (
	draftKeyPrefix = "mech_draft:"
	ownerKeyPrefix = "mech_draft:owner:"

	// DefaultTTL is how long an untouched draft survives
	DefaultTTL = 30 * 24 * time.Hour

	errDraftNil     = "draft cannot be nil"
	errDraftIDEmpty = "draft ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed draft repository. A
// non-positive ttl falls back to DefaultTTL.
func NewRedisRepository(client redisclient.Client, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func ownerKey(ownerID string) string {
	return ownerKeyPrefix + ownerID
}

func validateDraft(d *mech.Draft) error {
	if d == nil {
		return errors.InvalidArgument(errDraftNil)
	}
	if d.ID == "" {
		return errors.InvalidArgument(errDraftIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	created, err := r.client.SetNX(ctx, draftKey(input.Draft.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}
	if !created {
		return nil, errors.AlreadyExistsf("draft with ID %s already exists", input.Draft.ID)
	}

	if input.Draft.OwnerID != "" {
		pipe := r.client.TxPipeline()
		pipe.SAdd(ctx, ownerKey(input.Draft.OwnerID), input.Draft.ID)
		pipe.Expire(ctx, ownerKey(input.Draft.OwnerID), r.ttl)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, errors.Wrapf(err, "failed to index draft owner")
		}
	}

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	draft, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Draft: draft}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*mech.Draft, error) {
	result, err := r.client.Get(ctx, draftKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var draft mech.Draft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}
	return &draft, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	existing, err := r.load(ctx, input.Draft.ID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, draftKey(input.Draft.ID), data, r.ttl)
	if existing.OwnerID != input.Draft.OwnerID && existing.OwnerID != "" {
		pipe.SRem(ctx, ownerKey(existing.OwnerID), input.Draft.ID)
	}
	if input.Draft.OwnerID != "" {
		pipe.SAdd(ctx, ownerKey(input.Draft.OwnerID), input.Draft.ID)
		pipe.Expire(ctx, ownerKey(input.Draft.OwnerID), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	existing, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKey(input.ID))
	if existing.OwnerID != "" {
		pipe.SRem(ctx, ownerKey(existing.OwnerID), input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, ownerKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list owner drafts")
	}
	if len(ids) == 0 {
		return &ListByOwnerOutput{Drafts: []*mech.Draft{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = draftKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load owner drafts")
	}

	drafts := make([]*mech.Draft, 0, len(values))
	var expired []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// draft expired, drop it from the index
			expired = append(expired, ids[i])
			continue
		}
		var draft mech.Draft
		if err := json.Unmarshal([]byte(raw), &draft); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal draft %s", ids[i])
		}
		drafts = append(drafts, &draft)
	}

	if len(expired) > 0 {
		slog.WarnContext(ctx, "drafts expired, cleaning up owner index",
			"owner_id", input.OwnerID,
			"count", len(expired))
		if err := r.client.SRem(ctx, ownerKey(input.OwnerID), expired...).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to clean up owner index",
				"owner_id", input.OwnerID,
				"error", err)
		}
	}

	sort.Slice(drafts, func(i, j int) bool {
		if drafts[i].UpdatedAt != drafts[j].UpdatedAt {
			return drafts[i].UpdatedAt > drafts[j].UpdatedAt
		}
		return drafts[i].ID < drafts[j].ID
	})

	if input.Limit > 0 && len(drafts) > input.Limit {
		drafts = drafts[:input.Limit]
	}

	return &ListByOwnerOutput{Drafts: drafts}, nil
}
