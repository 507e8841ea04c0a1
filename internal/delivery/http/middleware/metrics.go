package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/transit-backoffice/internal/metrics"
)

// Metrics records request counts and latency per registered route.
// The route pattern, not the raw path, is used as the label so the
// cardinality stays bounded.
func Metrics(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		collector.HTTPRequests.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		collector.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}
