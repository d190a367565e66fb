package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"agroflow-backend/internal/domain"
	"agroflow-backend/pkg/logger"

	"github.com/samber/lo"
)

const (
	DefaultVideoQuery = "irrigação sustentável agricultura"
	DefaultVideoMax   = 12
	MaxVideoMax       = 50
)

var queryEnhancements = map[string]string{
	"irrigação sustentável": "irrigação sustentável agricultura portugal água 2024",
	"água agricultura":      "água agricultura portugal irrigação eficiente 2024",
	"desperdício água":      "desperdício água agricultura soluções tecnologias portugal",
}

// EnhanceQuery widens a listing query before it is sent to YouTube.
func EnhanceQuery(q string) string {
	if enhanced, ok := queryEnhancements[q]; ok {
		return enhanced
	}
	return q + " portugal 2024"
}

type videoUsecase struct {
	searcher domain.VideoSearcher
	cache    domain.VideoCache
	ttl      time.Duration
	now      func() time.Time
}

// NewVideoUsecase creates the video listing usecase. searcher and cache are
// optional; without a searcher every listing comes from the fallback set.
func NewVideoUsecase(searcher domain.VideoSearcher, cache domain.VideoCache, ttl time.Duration) domain.VideoUsecase {
	return &videoUsecase{
		searcher: searcher,
		cache:    cache,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Search never fails: any upstream problem degrades to the fallback list.
func (uc *videoUsecase) Search(ctx context.Context, query string, max int) domain.VideoList {
	query = strings.TrimSpace(query)
	if query == "" {
		query = DefaultVideoQuery
	}
	if max <= 0 {
		max = DefaultVideoMax
	}
	max = lo.Clamp(max, 1, MaxVideoMax)

	if uc.searcher != nil {
		if videos := uc.searchYouTube(ctx, EnhanceQuery(query), max); len(videos) > 0 {
			return domain.VideoList{Videos: videos, Source: domain.VideoSourceYouTube}
		}
	}

	return domain.VideoList{
		Videos: FallbackVideos(query, max, uc.now()),
		Source: domain.VideoSourceFallback,
	}
}

func (uc *videoUsecase) searchYouTube(ctx context.Context, q string, max int) []domain.Video {
	if uc.cache != nil {
		videos, ok, err := uc.cache.Get(ctx, q, max)
		if err != nil {
			logger.Log.Warn("video cache read failed", "error", err)
		} else if ok {
			return videos
		}
	}

	videos, err := uc.searcher.Search(ctx, q, max)
	if err != nil {
		logger.Log.Warn("youtube search failed, using fallback videos", "query", q, "error", err)
		return nil
	}

	if len(videos) > 0 && uc.cache != nil {
		if err := uc.cache.Set(ctx, q, max, videos, uc.ttl); err != nil {
			logger.Log.Warn("video cache write failed", "error", err)
		}
	}
	return videos
}

type videoTemplate struct {
	baseID   string
	titles   map[string][]string
	channels map[string][]string
}

var videoTemplates = []videoTemplate{
	{
		baseID: "vp5cf7UfxR0",
		titles: map[string][]string{
			"pt": {"Sistemas de Irrigação Inteligente para Agricultura Sustentável", "Tecnologias Avançadas de Gestão de Água no Campo", "Como Reduzir o Desperdício de Água na Agricultura"},
			"en": {"Smart Irrigation Systems for Sustainable Agriculture", "Advanced Water Management Technologies in Farming", "How to Reduce Water Waste in Agriculture"},
		},
		channels: map[string][]string{
			"pt": {"Tecnologia Agrícola", "Agricultura Moderna", "Inovação no Campo"},
			"en": {"Agricultural Technology", "Modern Agriculture", "Field Innovation"},
		},
	},
	{
		baseID: "UNBr-VqbZ_g",
		titles: map[string][]string{
			"pt": {"Gestão Eficiente da Água na Agricultura Portuguesa", "Soluções para a Crise Hídrica na Agricultura", "O Futuro da Irrigação em Portugal"},
			"en": {"Efficient Water Management in Portuguese Agriculture", "Solutions for Water Crisis in Agriculture", "The Future of Irrigation in Portugal"},
		},
		channels: map[string][]string{
			"pt": {"Agricultura Portugal", "Sustentabilidade Rural", "AgroTech PT"},
			"en": {"Agriculture Portugal", "Rural Sustainability", "AgroTech PT"},
		},
	},
	{
		baseID: "BXnbVvP4y3U",
		titles: map[string][]string{
			"pt": {"Tecnologias para Reduzir Desperdício de Água", "Inovação na Gestão de Recursos Hídricos", "Sensores Inteligentes para Monitorização da Água"},
			"en": {"Technologies to Reduce Water Waste", "Innovation in Water Resources Management", "Smart Sensors for Water Monitoring"},
		},
		channels: map[string][]string{
			"pt": {"Inovação Agrícola", "Tech no Campo", "Sensores Inteligentes"},
			"en": {"Agricultural Innovation", "Tech in Field", "Smart Sensors"},
		},
	},
	{
		baseID: "376xyMcwmOo",
		titles: map[string][]string{
			"pt": {"Agricultura 4.0: O Futuro da Gestão Hídrica", "Digitalização na Gestão de Água Agrícola", "IoT e Big Data na Otimização da Rega"},
			"en": {"Agriculture 4.0: The Future of Water Management", "Digitalization in Agricultural Water Management", "IoT and Big Data in Irrigation Optimization"},
		},
		channels: map[string][]string{
			"pt": {"AgroTech Portugal", "Agricultura Digital", "IoT no Campo"},
			"en": {"AgroTech Portugal", "Digital Agriculture", "IoT in Field"},
		},
	},
	{
		baseID: "S3VKar0cWh0",
		titles: map[string][]string{
			"pt": {"Casos de Sucesso: Poupança de Água na Agricultura", "Projetos Inovadores em Eficiência Hídrica", "Experiências Reais de Agricultura Sustentável"},
			"en": {"Success Cases: Water Savings in Agriculture", "Innovative Projects in Water Efficiency", "Real Experiences in Sustainable Agriculture"},
		},
		channels: map[string][]string{
			"pt": {"Sustentabilidade Agrícola", "Casos Reais", "Agricultura Prática"},
			"en": {"Agricultural Sustainability", "Real Cases", "Practical Agriculture"},
		},
	},
	{
		baseID: "abc123def456",
		titles: map[string][]string{
			"pt": {"Como Implementar Irrigação de Precisão", "Guia Prático para Gestão Eficiente de Água", "Passo a Passo da Agricultura de Precisão"},
			"en": {"How to Implement Precision Irrigation", "Practical Guide for Efficient Water Management", "Step by Step Precision Agriculture"},
		},
		channels: map[string][]string{
			"pt": {"Consultoria Agrícola", "Guia Prático", "Agricultura de Precisão"},
			"en": {"Agricultural Consulting", "Practical Guide", "Precision Agriculture"},
		},
	},
}

// FallbackVideos builds up to max videos from the local templates. Titles are
// in Portuguese unless the query asks about "water" without "portugal".
func FallbackVideos(query string, max int, now time.Time) []domain.Video {
	q := strings.ToLower(query)
	lang := "pt"
	if strings.Contains(q, "water") && !strings.Contains(q, "portugal") {
		lang = "en"
	}

	templates := videoTemplates
	if max < len(templates) {
		templates = templates[:max]
	}

	const month = 30 * 24 * time.Hour
	return lo.Map(templates, func(t videoTemplate, i int) domain.Video {
		published := now.Add(-time.Duration(rand.Int64N(int64(month))))
		return domain.Video{
			ID:          fmt.Sprintf("video-%d-%d", now.UnixMilli(), i),
			URL:         "https://www.youtube.com/watch?v=" + t.baseID,
			Title:       lo.Sample(t.titles[lang]),
			Channel:     lo.Sample(t.channels[lang]),
			Thumbnail:   "https://img.youtube.com/vi/" + t.baseID + "/hqdefault.jpg",
			PublishedAt: published.UTC().Format(time.RFC3339),
		}
	})
}
