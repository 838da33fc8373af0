package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talentops/resume-intake/internal/core/domain"
)

type BatchMetrics struct {
	registry *prometheus.Registry

	documentsTotal *prometheus.CounterVec
	batchesTotal   *prometheus.CounterVec
	batchDuration  *prometheus.HistogramVec
	datasetSize    prometheus.Gauge
}

func NewBatchMetrics(service string) *BatchMetrics {
	registry := prometheus.NewRegistry()

	documentsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "batch",
			Name:      "documents_total",
			Help:      "Total documents by processing outcome.",
		},
		[]string{"service", "outcome"},
	)
	batchesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Total intake passes by result.",
		},
		[]string{"service", "result"},
	)
	batchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "intake",
			Subsystem: "batch",
			Name:      "duration_seconds",
			Help:      "Full intake pass duration in seconds.",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)
	datasetSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "intake",
			Subsystem: "batch",
			Name:      "dataset_records",
			Help:      "Candidate records in the store after the last pass.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(documentsTotal, batchesTotal, batchDuration, datasetSize)

	return &BatchMetrics{
		registry:       registry,
		documentsTotal: documentsTotal,
		batchesTotal:   batchesTotal,
		batchDuration:  batchDuration,
		datasetSize:    datasetSize,
	}
}

func (m *BatchMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBatch records one intake pass from its summary.
func (m *BatchMetrics) ObserveBatch(service string, summary domain.BatchSummary, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.batchesTotal.WithLabelValues(service, result).Inc()
	m.batchDuration.WithLabelValues(service).Observe(duration.Seconds())

	m.documentsTotal.WithLabelValues(service, "new").Add(float64(summary.New))
	m.documentsTotal.WithLabelValues(service, "duplicate").Add(float64(summary.Duplicate))
	m.documentsTotal.WithLabelValues(service, "discarded").Add(float64(summary.Discarded))
	m.documentsTotal.WithLabelValues(service, "failed").Add(float64(summary.Failed))

	if err == nil {
		m.datasetSize.Set(float64(summary.DatasetSize))
	}
}
