package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutliersNamespace is the namespace for all outlier report metrics
const OutliersNamespace = "outliers"

// Metrics exposes the figures of the most recent report on a private
// registry so that a one-shot run can dump them to a text file.
type Metrics struct {
	registry    *prometheus.Registry
	datasetSize prometheus.Gauge
	found       prometheus.Gauge
	iqr         prometheus.Gauge
	fenceLower  prometheus.Gauge
	fenceUpper  prometheus.Gauge
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		datasetSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: OutliersNamespace,
			Name:      "dataset_size",
			Help:      "How many records were analyzed",
		}),
		found: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: OutliersNamespace,
			Name:      "found",
			Help:      "How many records fell outside the fences",
		}),
		iqr: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: OutliersNamespace,
			Name:      "iqr",
			Help:      "Interquartile range of the analyzed records",
		}),
		fenceLower: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: OutliersNamespace,
			Name:      "fence_lower",
			Help:      "Lower fence below which a record is an outlier",
		}),
		fenceUpper: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: OutliersNamespace,
			Name:      "fence_upper",
			Help:      "Upper fence above which a record is an outlier",
		}),
	}
}

func (m *Metrics) Observe(report Report) {
	m.datasetSize.Set(float64(report.Summary.Count))
	m.found.Set(float64(len(report.Outliers)))
	m.iqr.Set(report.Fences.IQR)
	m.fenceLower.Set(report.Fences.Lower)
	m.fenceUpper.Set(report.Fences.Upper)
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteToTextfile writes the metrics in the text exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
