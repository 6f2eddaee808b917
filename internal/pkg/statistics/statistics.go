package statistics

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/cache"
)

const (
	pageViewsKeyPrefix = "pageviews:" // pageviews:<YYYY-MM-DD> hash, field = path
	blogViewsKey       = "blog:counters:views"

	flushInterval = 5 * time.Minute
)

// TrackPageView increments the pending view counter for a path in Redis.
// Hits are aggregated per day and drained to MySQL in batches.
func TrackPageView(path string) {
	day := time.Now().Format("2006-01-02")
	ctx := context.Background()
	if err := cache.GetClient().HIncrBy(ctx, pageViewsKeyPrefix+day, path, 1).Err(); err != nil {
		fiberlog.Warnf("[Statistics] Failed to track page view for %s: %v", path, err)
	}
}

// TrackBlogView increments the pending view counter for a blog post
func TrackBlogView(postID uint) {
	ctx := context.Background()
	field := strconv.FormatUint(uint64(postID), 10)
	if err := cache.GetClient().HIncrBy(ctx, blogViewsKey, field, 1).Err(); err != nil {
		fiberlog.Warnf("[Statistics] Failed to track blog view for %d: %v", postID, err)
	}
}

// StartFlusher drains the Redis counters into MySQL on a fixed interval
// until the stop channel closes.
func StartFlusher(stop <-chan struct{}) {
	ticker := time.NewTicker(flushInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				// Final drain so counts are not lost on shutdown
				if err := FlushAll(); err != nil {
					fiberlog.Errorf("[Statistics] Final flush failed: %v", err)
				}
				return
			case <-ticker.C:
				if err := FlushAll(); err != nil {
					fiberlog.Errorf("[Statistics] Flush failed: %v", err)
				}
			}
		}
	}()
}

// FlushAll drains both page view and blog view counters to the database
func FlushAll() error {
	if err := flushPageViews(); err != nil {
		return err
	}
	return flushBlogViews()
}

// flushPageViews drains every pageviews:<day> hash atomically. The hash is
// RENAMEd to a temp key first so in-flight increments are never lost.
func flushPageViews() error {
	ctx := context.Background()
	rdb := cache.GetClient()
	analyticsRepo := repository.GetGlobalFactory().GetAnalyticsRepository()

	keys, err := rdb.Keys(ctx, pageViewsKeyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to list page view keys: %w", err)
	}

	for _, key := range keys {
		if strings.Contains(key, ":tmp:") {
			continue
		}
		day := strings.TrimPrefix(key, pageViewsKeyPrefix)

		fields, err := drainHash(ctx, rdb, key)
		if err != nil {
			return err
		}

		for path, raw := range fields {
			delta, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || delta == 0 {
				continue
			}
			if err := analyticsRepo.AddCount(path, day, delta); err != nil {
				fiberlog.Errorf("[Statistics] Failed to persist %d views for %s: %v", delta, path, err)
			}
		}
	}

	return nil
}

// flushBlogViews drains the blog view hash into blog_posts.view_count
func flushBlogViews() error {
	ctx := context.Background()
	rdb := cache.GetClient()
	blogRepo := repository.GetGlobalFactory().GetBlogRepository()

	fields, err := drainHash(ctx, rdb, blogViewsKey)
	if err != nil {
		return err
	}

	for field, raw := range fields {
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		delta, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || delta == 0 {
			continue
		}
		if err := blogRepo.AddViews(uint(id), delta); err != nil {
			fiberlog.Errorf("[Statistics] Failed to persist %d views for post %d: %v", delta, id, err)
		}
	}

	return nil
}

// drainHash atomically moves a hash to a temp key and returns its fields.
// Returns an empty map when the hash does not exist.
func drainHash(ctx context.Context, rdb *redis.Client, key string) (map[string]string, error) {
	tmpKey := fmt.Sprintf("%s:tmp:%d", key, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", key, tmpKey).Err(); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "no such key") {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to drain %s: %w", key, err)
	}

	fields, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read drained hash %s: %w", tmpKey, err)
	}
	_ = rdb.Del(ctx, tmpKey).Err()

	return fields, nil
}
