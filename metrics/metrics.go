// Package metrics 暴露 Prometheus 指标: HTTP 请求、详情缓存命中情况和角色字段完整性。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 详情缓存读取结果
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "board_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	detailCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_detail_cache_requests_total",
			Help: "Board detail cache lookups by result",
		},
		[]string{"result"},
	)

	projectionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "board_projection_failures_total",
			Help: "Board records whose role fields could not be decoded on read",
		},
	)

	malformedBoards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_role_integrity_malformed_boards",
			Help: "Boards with malformed role fields found by the last integrity scan",
		},
	)
)

// Middleware 记录请求数和耗时。path 使用路由模板，避免 ID 造成高基数。
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler 返回 /metrics 的处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveDetailCache(result string) {
	detailCacheRequests.WithLabelValues(result).Inc()
}

func IncProjectionFailure() {
	projectionFailures.Inc()
}

func SetMalformedBoards(n int) {
	malformedBoards.Set(float64(n))
}
