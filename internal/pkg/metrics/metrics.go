package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas Prometheus expostas em /metrics.
var (
	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_http_requests_in_flight",
			Help: "Requisições HTTP em andamento",
		},
	)

	// Banco de dados
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_db_query_duration_seconds",
			Help:    "Duração das consultas ao PostgreSQL em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_db_query_errors_total",
			Help: "Total de consultas ao PostgreSQL que falharam",
		},
		[]string{"operation"},
	)

	// Cache
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_cache_hits_total",
			Help: "Acertos no cache Redis",
		},
		[]string{"key"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_cache_misses_total",
			Help: "Faltas no cache Redis",
		},
		[]string{"key"},
	)

	// Mensageria (mode: "sent" ou "simulated")
	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_messages_total",
			Help: "Mensagens de email/WhatsApp processadas",
		},
		[]string{"channel", "mode"},
	)
)

// RecordDBQuery registra a duração e, se houver, o erro de uma consulta.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordHTTPRequest registra uma requisição concluída.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
