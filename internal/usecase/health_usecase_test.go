package usecase_test

import (
	"context"
	"testing"

	"agroflow-backend/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	t.Run("Should report redis disabled", func(t *testing.T) {
		res := usecase.NewHealthUsecase(nil).Check(context.Background())
		assert.Equal(t, map[string]string{"status": "ok", "redis": "disabled"}, res)
	})

	t.Run("Should report redis up and down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		defer client.Close()
		uc := usecase.NewHealthUsecase(client)

		assert.Equal(t, "up", uc.Check(context.Background())["redis"])

		mr.Close()
		res := uc.Check(context.Background())
		assert.Equal(t, "down", res["redis"])
		assert.Equal(t, "ok", res["status"])
	})
}
