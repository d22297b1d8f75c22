package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status"},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	TokensIssued    = prometheus.NewCounter(prometheus.CounterOpts{Name: "tokens_issued_total", Help: "Access/refresh token pairs issued"})
	VideoViews      = prometheus.NewCounter(prometheus.CounterOpts{Name: "video_views_total", Help: "Counted video views"})
	VideosPublished = prometheus.NewCounter(prometheus.CounterOpts{Name: "videos_published_total", Help: "Videos published"})
	LikeToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "like_toggles_total", Help: "Like toggles by target kind and resulting state"},
		[]string{"kind", "state"},
	)
	SubscriptionToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "subscription_toggles_total", Help: "Subscription toggles by resulting state"},
		[]string{"state"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, TokensIssued, VideoViews, VideosPublished, LikeToggles, SubscriptionToggles)
}

// Handler records request count and latency per matched route.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }

// ToggleState labels a toggle result.
func ToggleState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
