package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"clearview/internal/clearing/models"
	id "clearview/pkg/domain"
	"clearview/pkg/platform/sentinel"
)

const (
	redisSeqKey        = "clearing:seq"
	redisItemKeyPrefix = "clearing:item:"
	redisIDKeyPrefix   = "clearing:event:"
)

// appendScript pushes the event and claims its id in one server-side step.
// RPUSH runs before the claim is written, so a failed push leaves nothing
// behind and the same event can be retried.
//
// KEYS[1] id claim, KEYS[2] item list; ARGV[1] payload, ARGV[2] item id.
var appendScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('RPUSH', KEYS[2], ARGV[1])
redis.call('SET', KEYS[1], ARGV[2])
return 1
`)

// RedisStore keeps one Redis list per item. INCR hands out Seq and a Lua
// script appends, both atomic server-side, so concurrent writers need no
// locking. A failed append may leave a gap in Seq; order is unaffected.
type RedisStore struct {
	client *redis.Client
	clock  Clock
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisClock sets the clock used for events without a timestamp.
func WithRedisClock(clock Clock) RedisOption {
	return func(s *RedisStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewRedis(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func itemKey(item id.ItemID) string { return redisItemKeyPrefix + item.String() }

func (s *RedisStore) Append(ctx context.Context, e models.ClearingEvent) (models.ClearingEvent, error) {
	e, err := prepare(e, s.clock)
	if err != nil {
		return models.ClearingEvent{}, err
	}

	claimKey := redisIDKeyPrefix + e.ID.String()
	exists, err := s.client.Exists(ctx, claimKey).Result()
	if err != nil {
		return models.ClearingEvent{}, fmt.Errorf("check event id: %w", err)
	}
	if exists > 0 {
		return models.ClearingEvent{}, sentinel.ErrConflict
	}

	seq, err := s.client.Incr(ctx, redisSeqKey).Result()
	if err != nil {
		return models.ClearingEvent{}, fmt.Errorf("allocate event seq: %w", err)
	}
	e.Seq = seq

	payload, err := json.Marshal(e)
	if err != nil {
		return models.ClearingEvent{}, fmt.Errorf("marshal clearing event: %w", err)
	}
	appended, err := appendScript.Run(ctx, s.client,
		[]string{claimKey, itemKey(e.ItemID)},
		payload, e.ItemID.String(),
	).Int()
	if err != nil {
		return models.ClearingEvent{}, fmt.Errorf("append clearing event: %w", err)
	}
	if appended == 0 {
		return models.ClearingEvent{}, sentinel.ErrConflict
	}
	return e, nil
}

func (s *RedisStore) ListByItems(ctx context.Context, items []id.ItemID) ([]models.ClearingEvent, error) {
	if len(items) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringSliceCmd, len(items))
	for i, item := range items {
		cmds[i] = pipe.LRange(ctx, itemKey(item), 0, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("read clearing events: %w", err)
	}

	seen := make(map[id.EventID]struct{})
	var out []models.ClearingEvent
	for _, cmd := range cmds {
		for _, raw := range cmd.Val() {
			var e models.ClearingEvent
			if err := json.Unmarshal([]byte(raw), &e); err != nil {
				return nil, fmt.Errorf("decode clearing event: %w", err)
			}
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out, nil
}
