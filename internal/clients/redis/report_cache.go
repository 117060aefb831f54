package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/gigpay-backend/internal/logger"
)

// ReportCache is a short-TTL read cache for the admin report aggregates.
// The reporting path tolerates stale reads, so a small TTL keeps repeated
// dashboard refreshes off the database without ordering concerns.
type ReportCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error
	Close() error
}

type reportCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewReportCache(log *logger.Logger) (ReportCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &reportCache{
		log: log.With("service", "ReportCache"),
		rdb: rdb,
	}, nil
}

func (rc *reportCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if rc == nil || rc.rdb == nil {
		return false, fmt.Errorf("report cache not initialized")
	}
	raw, err := rc.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (rc *reportCache) Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error {
	if rc == nil || rc.rdb == nil {
		return fmt.Errorf("report cache not initialized")
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return rc.rdb.Set(ctx, key, raw, ttl).Err()
}

func (rc *reportCache) Close() error {
	if rc == nil || rc.rdb == nil {
		return nil
	}
	return rc.rdb.Close()
}
