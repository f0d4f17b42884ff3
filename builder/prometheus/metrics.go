package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "report_notifier"

// delivery paths
const (
	PathSlack   = "slack"
	PathWebhook = "webhook"
)

// outcomes
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultDelivered = "delivered"
	ResultAbandoned = "abandoned"
)

var (
	ReportSendsTotal       *prometheus.CounterVec
	RelayDeliveriesTotal   *prometheus.CounterVec
	RelayAttemptsHistogram prometheus.Histogram
	HttpPanicsTotal        prometheus.Counter

	initOnce sync.Once
)

// InitMetrics registers the collectors on the default registry, calling it more than once is a no-op.
func InitMetrics() {
	initOnce.Do(func() {
		ReportSendsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sends_total",
			Help:      "Report sends by delivery path and result.",
		}, []string{"path", "result"})
		RelayDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relay_deliveries_total",
			Help:      "Webhook relay deliveries by result.",
		}, []string{"result"})
		RelayAttemptsHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "relay_attempts",
			Help:      "POST attempts spent per webhook relay.",
			Buckets:   prometheus.LinearBuckets(1, 1, 6),
		})
		HttpPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_panics_total",
			Help:      "Panics recovered by the http server.",
		})
		prometheus.MustRegister(ReportSendsTotal, RelayDeliveriesTotal, RelayAttemptsHistogram, HttpPanicsTotal)
	})
}

func ObserveSend(path, result string) {
	if ReportSendsTotal == nil {
		return
	}
	ReportSendsTotal.WithLabelValues(path, result).Inc()
}

func ObserveRelay(delivered bool, attempts uint) {
	if RelayDeliveriesTotal == nil || RelayAttemptsHistogram == nil {
		return
	}
	result := ResultAbandoned
	if delivered {
		result = ResultDelivered
	}
	RelayDeliveriesTotal.WithLabelValues(result).Inc()
	RelayAttemptsHistogram.Observe(float64(attempts))
}
