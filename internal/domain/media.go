package domain

import (
	"context"
	"time"
)

// Video sources reported by the listing endpoint.
const (
	VideoSourceYouTube  = "youtube"
	VideoSourceFallback = "fallback"
)

type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	Image       string `json:"image"`
	Timestamp   string `json:"timestamp"`
	Company     string `json:"company"`
}

type Video struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	PublishedAt string `json:"publishedAt"`
}

type VideoList struct {
	Videos []Video `json:"videos"`
	Source string  `json:"source"`
}

type NewsUsecase interface {
	Latest(ctx context.Context, limit int) []NewsItem
}

type VideoUsecase interface {
	Search(ctx context.Context, query string, max int) VideoList
}

// VideoSearcher queries an external video catalogue.
type VideoSearcher interface {
	Search(ctx context.Context, query string, max int) ([]Video, error)
}

// VideoCache stores search results keyed by enhanced query and size.
type VideoCache interface {
	Get(ctx context.Context, query string, max int) ([]Video, bool, error)
	Set(ctx context.Context, query string, max int, videos []Video, ttl time.Duration) error
}
