package mechdraft

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	redisclient "github.com/SwiggitySwerve/megamek-web-sub007/internal/redis"
)

const scanBatch = 100

// Corruption is a stored draft entry that can no longer be loaded
type Corruption struct {
	Key    string
	ID     string
	Reason string
}

// FindCorrupted scans every stored draft and reports the ones that fail to
// decode, carry no tonnage or are stored under another draft's key.
func FindCorrupted(ctx context.Context, client redisclient.Client) ([]Corruption, error) {
	var found []Corruption

	iter := client.Scan(ctx, 0, draftKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, ownerKeyPrefix) {
			continue
		}

		data, err := client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		id := strings.TrimPrefix(key, draftKeyPrefix)
		if reason := inspect(id, data); reason != "" {
			found = append(found, Corruption{Key: key, ID: id, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan drafts")
	}

	return found, nil
}

func inspect(id string, data []byte) string {
	var d mech.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return "malformed JSON: " + err.Error()
	}
	switch {
	case d.ID != id:
		return "stored ID " + d.ID + " does not match key"
	case d.Tonnage == 0:
		return "missing tonnage"
	}
	return ""
}

// Purge deletes corrupted entries and drops their IDs from every owner
// index. It returns the number of draft keys removed.
func Purge(ctx context.Context, client redisclient.Client, items []Corruption) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(items))
	ids := make([]any, 0, len(items))
	for _, item := range items {
		keys = append(keys, item.Key)
		ids = append(ids, item.ID)
	}

	removed, err := client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete corrupted drafts")
	}

	iter := client.Scan(ctx, 0, ownerKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		if err := client.SRem(ctx, iter.Val(), ids...).Err(); err != nil {
			return int(removed), errors.Wrapf(err, "failed to clean owner index %s", iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		return int(removed), errors.Wrapf(err, "failed to scan owner indexes")
	}

	return int(removed), nil
}
