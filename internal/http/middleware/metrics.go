package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/tasknotes-backend/internal/observability"
)

const unmatchedRoute = "unmatched"

// Probe and scrape routes are served but not counted in the tn_api_* series.
var unmeteredRoutes = map[string]bool{
	"/metrics":     true,
	"/healthcheck": true,
	"/readyz":      true,
}

// Metrics records tn_api_* series keyed by route template, so /api/notes/1 and
// /api/notes/2 share one label. Requests that match no route share "unmatched".
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if m == nil || unmeteredRoutes[route] {
			c.Next()
			return
		}
		if route == "" {
			route = unmatchedRoute
		}

		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()
		c.Next()
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
