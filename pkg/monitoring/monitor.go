package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 生成尝试的结果标签
const (
	OutcomeSuccess       = "success"
	OutcomeProviderError = "provider_error"
	OutcomeParseError    = "parse_error"
	OutcomeSchemaError   = "schema_error"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 15, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	GenerationAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mimir_generation_attempts_total",
			Help: "LLM generation attempts by content type and outcome",
		},
		[]string{"content_type", "outcome"},
	)

	// GenerationDuration 含重试与间隔在内的整体耗时
	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mimir_generation_duration_seconds",
			Help:    "Duration of a full generate-with-retry run",
			Buckets: []float64{1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"content_type"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(GenerationAttempts)
		prometheus.MustRegister(GenerationDuration)
	})
}

// RecordAttempt 记录一次生成尝试
func RecordAttempt(contentType, outcome string) {
	GenerationAttempts.WithLabelValues(contentType, outcome).Inc()
}

func ObserveGeneration(contentType string, d time.Duration) {
	GenerationDuration.WithLabelValues(contentType).Observe(d.Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
