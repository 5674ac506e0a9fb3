package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurajewels/storefront-api/libs/go/types/business"
)

// DefaultRuleCacheTTL is how long a loaded active rule list stays fresh.
const DefaultRuleCacheTTL = 60 * time.Second

const activeRulesCacheKey = "lucky_discount:active_rules"

// RuleCache holds the most recently loaded active rule list. Get reports
// ok=false on a miss or after expiry, along with the cache generation.
// Invalidate bumps the generation and Set only stores a list loaded under
// the current one, so a load that overlaps an admin write is dropped.
type RuleCache interface {
	Get(ctx context.Context) (rules []business.DiscountRule, generation uint64, ok bool, err error)
	Set(ctx context.Context, generation uint64, rules []business.DiscountRule) error
	Invalidate(ctx context.Context) error
}

// MemoryRuleCache is a process-local RuleCache.
type MemoryRuleCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	now        func() time.Time
	rules      []business.DiscountRule
	expiresAt  time.Time
	loaded     bool
	generation uint64
}

func NewMemoryRuleCache(ttl time.Duration) *MemoryRuleCache {
	if ttl <= 0 {
		ttl = DefaultRuleCacheTTL
	}
	return &MemoryRuleCache{ttl: ttl, now: time.Now}
}

func (c *MemoryRuleCache) Get(_ context.Context) ([]business.DiscountRule, uint64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded || !c.now().Before(c.expiresAt) {
		return nil, c.generation, false, nil
	}
	return cloneRules(c.rules), c.generation, true, nil
}

func (c *MemoryRuleCache) Set(_ context.Context, generation uint64, rules []business.DiscountRule) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return nil
	}
	c.rules = cloneRules(rules)
	c.expiresAt = c.now().Add(c.ttl)
	c.loaded = true
	return nil
}

func (c *MemoryRuleCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.rules = nil
	c.loaded = false
	return nil
}

// cloneRules copies the slice so callers cannot mutate the cached snapshot.
// Pointer fields are shared; rules are never modified in place.
func cloneRules(rules []business.DiscountRule) []business.DiscountRule {
	if rules == nil {
		return []business.DiscountRule{}
	}
	out := make([]business.DiscountRule, len(rules))
	copy(out, rules)
	return out
}

// errStaleGeneration aborts a Redis write whose load predates an invalidation.
var errStaleGeneration = errors.New("rule cache generation changed")

// RedisRuleCache shares the active rule list between API instances. The
// generation lives in its own key without expiry.
type RedisRuleCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	key    string
}

func NewRedisRuleCache(client redis.UniversalClient, ttl time.Duration) *RedisRuleCache {
	if ttl <= 0 {
		ttl = DefaultRuleCacheTTL
	}
	return &RedisRuleCache{client: client, ttl: ttl, key: activeRulesCacheKey}
}

func (c *RedisRuleCache) generationKey() string {
	return c.key + ":generation"
}

func (c *RedisRuleCache) Get(ctx context.Context) ([]business.DiscountRule, uint64, bool, error) {
	values, err := c.client.MGet(ctx, c.key, c.generationKey()).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to read cached rules: %w", err)
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, false, err
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, false, nil
	}

	var rules []business.DiscountRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, 0, false, fmt.Errorf("failed to decode cached rules: %w", err)
	}
	if rules == nil {
		rules = []business.DiscountRule{}
	}
	return rules, generation, true, nil
}

func (c *RedisRuleCache) Set(ctx context.Context, generation uint64, rules []business.DiscountRule) error {
	if rules == nil {
		rules = []business.DiscountRule{}
	}
	raw, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, c.generationKey()).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		stored, err := parseGeneration(current)
		if err != nil {
			return err
		}
		if stored != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key, raw, c.ttl)
			return nil
		})
		return err
	}, c.generationKey())

	// A newer invalidation won the race; the next read reloads.
	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache rules: %w", err)
	}
	return nil
}

func (c *RedisRuleCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey())
		pipe.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached rules: %w", err)
	}
	return nil
}

// parseGeneration reads a generation counter; a missing key is generation 0.
func parseGeneration(value interface{}) (uint64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case string:
		if v == "" {
			return 0, nil
		}
		generation, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid rule cache generation %q: %w", v, err)
		}
		return generation, nil
	default:
		return 0, fmt.Errorf("unexpected rule cache generation type %T", value)
	}
}
