package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// BalanceCache is a Redis read cache for available balances.
//
// Postgres is always the source of truth: the engine never makes a reserve,
// commit, or credit decision from the cache. Only GetBalance reads it, every
// mutating operation invalidates the account's entry, and entries carry a
// short TTL so a missed invalidation self-heals. Stale reads are therefore
// bounded and only on the read-only surface.
type BalanceCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewBalanceCache wraps an existing Redis client. ttl <= 0 defaults to 5s.
func NewBalanceCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *BalanceCache {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &BalanceCache{
		rdb: rdb,
		ttl: ttl,
		log: logger.With().Str("component", "balance_cache").Logger(),
	}
}

func cacheKey(accountID string) string {
	return "account:available:" + accountID
}

// Get returns the cached balance if present. Redis errors degrade to a miss.
func (c *BalanceCache) Get(ctx context.Context, accountID string) (*Balance, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(accountID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("account_id", accountID).Msg("cache read failed, treating as miss")
		return nil, false
	}

	amount, currency, ok := decodeBalance(raw)
	if !ok {
		c.log.Warn().Str("account_id", accountID).Str("raw", raw).Msg("malformed cache entry, dropping")
		c.Invalidate(ctx, accountID)
		return nil, false
	}
	return &Balance{Available: amount, Currency: currency}, true
}

// Set stores the balance with the cache TTL. Failures are logged only.
func (c *BalanceCache) Set(ctx context.Context, accountID string, b *Balance) {
	value := fmt.Sprintf("%d|%s", b.Available, b.Currency)
	if err := c.rdb.Set(ctx, cacheKey(accountID), value, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("account_id", accountID).Msg("cache write failed")
	}
}

// Invalidate drops the account's entry. Failures are logged only; the TTL
// bounds the staleness window.
func (c *BalanceCache) Invalidate(ctx context.Context, accountID string) {
	if err := c.rdb.Del(ctx, cacheKey(accountID)).Err(); err != nil {
		c.log.Warn().Err(err).Str("account_id", accountID).Msg("cache invalidation failed")
	}
}

func decodeBalance(raw string) (int64, string, bool) {
	i := strings.IndexByte(raw, '|')
	if i < 0 {
		return 0, "", false
	}
	amount, err := strconv.ParseInt(raw[:i], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return amount, raw[i+1:], true
}
