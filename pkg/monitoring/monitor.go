package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	TaskCompletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecotrack_task_completions_total",
			Help: "Task completion attempts by task tag and outcome",
		},
		[]string{"task", "result"},
	)

	BadgesGranted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecotrack_badges_granted_total",
			Help: "Badges granted by name",
		},
		[]string{"badge"},
	)

	registerOnce sync.Once
)

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(TaskCompletions)
		prometheus.MustRegister(BadgesGranted)
	})
}

// ObserveTaskCompletion records the outcome of one completion attempt.
func ObserveTaskCompletion(task, result string) {
	TaskCompletions.WithLabelValues(task, result).Inc()
}

func ObserveBadgeGranted(name string) {
	BadgesGranted.WithLabelValues(name).Inc()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
