package handler

import (
	"context"
	"net/http"
	"time"

	"comanda/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Health returns a JSON health check response.
// Reports the remote API breaker state and Redis connectivity; never exposes
// credentials or internals.
func Health(client *api.Client, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		apiStatus := client.Breaker().State().String()

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		if apiStatus == "open" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"api":   apiStatus,
			"redis": redisStatus,
		})
	}
}
