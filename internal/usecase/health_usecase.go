package usecase

import (
	"context"
	"time"

	"agroflow-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	redis *goredis.Client
}

// NewHealthUsecase creates the liveness check. client may be nil when redis
// is not configured.
func NewHealthUsecase(client *goredis.Client) HealthUsecase {
	return &healthUsecase{redis: client}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"redis":  "disabled",
	}
	if u.redis == nil {
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := redis.HealthCheck(ctx, u.redis); err != nil {
		status["redis"] = "down"
	} else {
		status["redis"] = "up"
	}
	return status
}
