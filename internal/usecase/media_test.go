package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agroflow-backend/internal/domain"
	"agroflow-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string, max int) ([]domain.Video, error) {
	args := m.Called(ctx, query, max)
	videos, _ := args.Get(0).([]domain.Video)
	return videos, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, query string, max int) ([]domain.Video, bool, error) {
	args := m.Called(ctx, query, max)
	videos, _ := args.Get(0).([]domain.Video)
	return videos, args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, query string, max int, videos []domain.Video, ttl time.Duration) error {
	return m.Called(ctx, query, max, videos, ttl).Error(0)
}

func TestNewsLatest(t *testing.T) {
	uc := usecase.NewNewsUsecase()

	t.Run("Should default to twenty items or the whole catalogue", func(t *testing.T) {
		want := min(usecase.DefaultNewsLimit, usecase.NewsCatalogSize)
		assert.Len(t, uc.Latest(context.Background(), 0), want)
		assert.Len(t, uc.Latest(context.Background(), -3), want)
	})

	t.Run("Should respect a small limit", func(t *testing.T) {
		items := uc.Latest(context.Background(), 3)
		require.Len(t, items, 3)
		for i, item := range items {
			assert.Regexp(t, `^news-\d+-`+string(rune('0'+i))+`$`, item.ID)
			assert.Equal(t, "water", item.Company)
			assert.NotEmpty(t, item.Image)
			assert.NotEmpty(t, item.Link)
		}
	})

	t.Run("Should cap at the catalogue size", func(t *testing.T) {
		items := uc.Latest(context.Background(), 500)
		assert.Len(t, items, min(usecase.MaxNewsLimit, usecase.NewsCatalogSize))
	})
}

func TestEnhanceQuery(t *testing.T) {
	assert.Equal(t, "água agricultura portugal irrigação eficiente 2024", usecase.EnhanceQuery("água agricultura"))
	assert.Equal(t, "rega gota a gota portugal 2024", usecase.EnhanceQuery("rega gota a gota"))
}

func TestFallbackVideos(t *testing.T) {
	now := time.Now()

	t.Run("Should use at most six templates", func(t *testing.T) {
		assert.Len(t, usecase.FallbackVideos("rega", 12, now), 6)
		assert.Len(t, usecase.FallbackVideos("rega", 2, now), 2)
	})

	t.Run("Should switch to English for water queries outside Portugal", func(t *testing.T) {
		videos := usecase.FallbackVideos("water saving", 1, now)
		require.Len(t, videos, 1)
		assert.Contains(t, []string{
			"Smart Irrigation Systems for Sustainable Agriculture",
			"Advanced Water Management Technologies in Farming",
			"How to Reduce Water Waste in Agriculture",
		}, videos[0].Title)
		assert.Equal(t, "https://img.youtube.com/vi/vp5cf7UfxR0/hqdefault.jpg", videos[0].Thumbnail)
	})

	t.Run("Should stay Portuguese when Portugal is mentioned", func(t *testing.T) {
		videos := usecase.FallbackVideos("water portugal", 1, now)
		assert.Contains(t, []string{
			"Sistemas de Irrigação Inteligente para Agricultura Sustentável",
			"Tecnologias Avançadas de Gestão de Água no Campo",
			"Como Reduzir o Desperdício de Água na Agricultura",
		}, videos[0].Title)
	})
}

func TestVideoSearch(t *testing.T) {
	ctx := context.Background()
	found := []domain.Video{{ID: "abc", URL: "https://www.youtube.com/watch?v=abc", Title: "Rega"}}

	t.Run("Should use the fallback without a searcher", func(t *testing.T) {
		uc := usecase.NewVideoUsecase(nil, nil, time.Hour)
		res := uc.Search(ctx, "", 0)
		assert.Equal(t, domain.VideoSourceFallback, res.Source)
		assert.Len(t, res.Videos, 6)
	})

	t.Run("Should return and cache YouTube results", func(t *testing.T) {
		searcher := new(MockSearcher)
		cache := new(MockCache)
		q := "irrigação sustentável agricultura portugal 2024"
		cache.On("Get", mock.Anything, q, 12).Return(nil, false, nil)
		searcher.On("Search", mock.Anything, q, 12).Return(found, nil)
		cache.On("Set", mock.Anything, q, 12, found, time.Hour).Return(nil)

		res := usecase.NewVideoUsecase(searcher, cache, time.Hour).Search(ctx, "", 0)

		assert.Equal(t, domain.VideoSourceYouTube, res.Source)
		assert.Equal(t, found, res.Videos)
		searcher.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("Should serve cached results without searching", func(t *testing.T) {
		searcher := new(MockSearcher)
		cache := new(MockCache)
		cache.On("Get", mock.Anything, "rega portugal 2024", 5).Return(found, true, nil)

		res := usecase.NewVideoUsecase(searcher, cache, time.Hour).Search(ctx, "rega", 5)

		assert.Equal(t, domain.VideoSourceYouTube, res.Source)
		searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fall back when YouTube fails", func(t *testing.T) {
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything, 50).Return(nil, errors.New("quota exceeded"))

		res := usecase.NewVideoUsecase(searcher, nil, time.Hour).Search(ctx, "rega", 80)

		assert.Equal(t, domain.VideoSourceFallback, res.Source)
		assert.Len(t, res.Videos, 6)
	})

	t.Run("Should fall back on an empty result", func(t *testing.T) {
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything, 3).Return([]domain.Video{}, nil)

		res := usecase.NewVideoUsecase(searcher, nil, time.Hour).Search(ctx, "rega", 3)

		assert.Equal(t, domain.VideoSourceFallback, res.Source)
		assert.Len(t, res.Videos, 3)
	})
}
