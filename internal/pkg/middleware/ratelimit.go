package middleware

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/TobiasLindner/DevFolio/internal/pkg/cache"
)

// NewRateLimiter returns a limiter middleware backed by the shared Redis
// connection (database 3), so limits survive restarts and apply across
// replicas. Used on the newsletter subscribe endpoint and the admin login.
func NewRateLimiter(max int, window time.Duration) fiber.Handler {
	host, port := "localhost", 6379
	if cli := cache.GetClient(); cli != nil {
		if h, p, err := net.SplitHostPort(cli.Options().Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Storage: redisstorage.New(redisstorage.Config{
			Host:     host,
			Port:     port,
			Database: 3, // separate database for rate limit counters
			Reset:    false,
		}),
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests. Please try again later.")
		},
	})
}
