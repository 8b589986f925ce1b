package helper

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"studio_booking/utils"

	"github.com/redis/go-redis/v9"
)

// generationTTL outlives any slot list stored under an older generation.
const generationTTL = 24 * time.Hour

// SlotCache keeps computed availability lists in Redis. A nil *SlotCache is
// a valid, disabled cache. Entries are advisory; CreateBooking never reads them.
//
// Lists are stored under a per-(coach, date) generation. Invalidate bumps the
// generation, so a list computed before a booking committed is written under a
// key no reader looks up any more.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Slots is the cache used by AvailableTimes, set up from main when Redis is configured.
var Slots *SlotCache

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	if rdb == nil {
		return nil
	}
	return &SlotCache{rdb: rdb, ttl: ttl}
}

func generationKey(coach string, date utils.CustomDate) string {
	return "slots:gen:" + coach + ":" + date.String()
}

func slotKey(coach string, date utils.CustomDate, gen int64) string {
	return "slots:" + coach + ":" + date.String() + ":" + strconv.FormatInt(gen, 10)
}

// Generation reads the current generation for (coach, date). ok is false when
// Redis cannot be read, in which case the caller should skip the cache.
func (s *SlotCache) Generation(ctx context.Context, coach string, date utils.CustomDate) (gen int64, ok bool) {
	if s == nil {
		return 0, false
	}
	gen, err := s.rdb.Get(ctx, generationKey(coach, date)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		utils.Logger.Warn().Err(err).Str("coach", coach).Msg("slot cache generation read failed")
		return 0, false
	}
	return gen, true
}

func (s *SlotCache) Get(ctx context.Context, coach string, date utils.CustomDate, gen int64) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, slotKey(coach, date, gen)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.Logger.Warn().Err(err).Str("coach", coach).Msg("slot cache read failed")
		}
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// Set stores slots under gen, the generation read before the bookings were loaded.
func (s *SlotCache) Set(ctx context.Context, coach string, date utils.CustomDate, gen int64, slots []string) {
	if s == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, slotKey(coach, date, gen), raw, s.ttl).Err(); err != nil {
		utils.Logger.Warn().Err(err).Str("coach", coach).Msg("slot cache write failed")
	}
}

func (s *SlotCache) Invalidate(ctx context.Context, coach string, date utils.CustomDate) {
	if s == nil {
		return
	}
	key := generationKey(coach, date)
	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, generationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		utils.Logger.Warn().Err(err).Str("coach", coach).Msg("slot cache invalidation failed")
	}
}
