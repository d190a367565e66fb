package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"agroflow-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const videoKeyPrefix = "videos:"

type videoCache struct {
	client *goredis.Client
}

func NewVideoCache(client *goredis.Client) domain.VideoCache {
	return &videoCache{client: client}
}

func videoKey(query string, max int) string {
	return videoKeyPrefix + strconv.Itoa(max) + ":" + query
}

func (c *videoCache) Get(ctx context.Context, query string, max int) ([]domain.Video, bool, error) {
	raw, err := c.client.Get(ctx, videoKey(query, max)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("video cache get: %w", err)
	}

	var videos []domain.Video
	if err := json.Unmarshal(raw, &videos); err != nil {
		return nil, false, fmt.Errorf("video cache decode: %w", err)
	}
	return videos, true, nil
}

func (c *videoCache) Set(ctx context.Context, query string, max int, videos []domain.Video, ttl time.Duration) error {
	raw, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("video cache encode: %w", err)
	}
	if err := c.client.Set(ctx, videoKey(query, max), raw, ttl).Err(); err != nil {
		return fmt.Errorf("video cache set: %w", err)
	}
	return nil
}
