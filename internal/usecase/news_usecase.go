package usecase

import (
	"context"
	"fmt"
	"time"

	"agroflow-backend/internal/domain"

	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

const (
	DefaultNewsLimit = 20
	MaxNewsLimit     = 50
)

type newsUsecase struct {
	now func() time.Time
}

func NewNewsUsecase() domain.NewsUsecase {
	return &newsUsecase{now: time.Now}
}

// Latest returns up to limit catalogue items in random order. A non-positive
// limit means the default.
func (uc *newsUsecase) Latest(ctx context.Context, limit int) []domain.NewsItem {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}
	limit = lo.Clamp(limit, 1, MaxNewsLimit)

	items := lo.Map(newsCatalog, func(n domain.NewsItem, i int) domain.NewsItem {
		n.Image = newsImages[i%len(newsImages)]
		return n
	})
	mutable.Shuffle(items)

	if limit < len(items) {
		items = items[:limit]
	}

	stamp := uc.now().UnixMilli()
	for i := range items {
		items[i].ID = fmt.Sprintf("news-%d-%d", stamp, i)
		items[i].Company = "water"
	}
	return items
}
