package youtube

import (
	"context"
	"fmt"
	"time"

	"agroflow-backend/internal/domain"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const watchURL = "https://www.youtube.com/watch?v="

type searcher struct {
	svc *yt.Service
}

// NewSearcher creates a YouTube Data API v3 backed video searcher.
func NewSearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (domain.VideoSearcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}
	return &searcher{svc: svc}, nil
}

func (s *searcher) Search(ctx context.Context, query string, max int) ([]domain.Video, error) {
	resp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(max)).
		RelevanceLanguage("pt").
		Order("relevance").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: search: %w", err)
	}

	now := time.Now()
	videos := make([]domain.Video, 0, len(resp.Items))
	for i, item := range resp.Items {
		videos = append(videos, toVideo(item, i, now))
	}
	return videos, nil
}

func toVideo(item *yt.SearchResult, index int, now time.Time) domain.Video {
	var videoID string
	if item.Id != nil {
		videoID = item.Id.VideoId
	}

	v := domain.Video{
		ID:          videoID,
		URL:         watchURL + videoID,
		Title:       "Sem título",
		Channel:     "YouTube",
		PublishedAt: now.UTC().Format(time.RFC3339),
	}
	if v.ID == "" {
		v.ID = fmt.Sprintf("video-%d-%d", now.UnixMilli(), index)
	}

	sn := item.Snippet
	if sn == nil {
		return v
	}
	if sn.Title != "" {
		v.Title = sn.Title
	}
	if sn.ChannelTitle != "" {
		v.Channel = sn.ChannelTitle
	}
	if sn.PublishedAt != "" {
		v.PublishedAt = sn.PublishedAt
	}
	if th := sn.Thumbnails; th != nil {
		switch {
		case th.High != nil && th.High.Url != "":
			v.Thumbnail = th.High.Url
		case th.Medium != nil:
			v.Thumbnail = th.Medium.Url
		}
	}
	return v
}
