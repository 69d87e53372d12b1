package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	chatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total number of chat turns processed",
		},
		[]string{"complete"},
	)

	leadsFinalizadosTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_finalizados_total",
			Help: "Total number of finalized leads by temperature",
		},
		[]string{"status_lead"},
	)

	quotesSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_saved_total",
			Help: "Total number of quote requests saved",
		},
		[]string{"webhook_status"},
	)

	iaErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ia_errors_total",
			Help: "Total number of IA generation errors",
		},
		[]string{"operation"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordChatTurn(complete bool) {
	chatTurnsTotal.WithLabelValues(strconv.FormatBool(complete)).Inc()
}

func RecordLeadFinalizado(statusLead string) {
	leadsFinalizadosTotal.WithLabelValues(statusLead).Inc()
}

func RecordQuoteSaved(webhookStatus string) {
	quotesSavedTotal.WithLabelValues(webhookStatus).Inc()
}

func RecordIAError(operation string) {
	iaErrorsTotal.WithLabelValues(operation).Inc()
}
