package handler

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/mirrorlog/core"
)

// Collector exports a Stats instance as Prometheus metrics.
type Collector struct {
	stats *Stats

	records        *prometheus.Desc
	platformErrors *prometheus.Desc
	fileWritten    *prometheus.Desc
	fileErrors     *prometheus.Desc
	clockErrors    *prometheus.Desc
}

// NewCollector creates a collector for stats. Metric names are prefixed
// with namespace, "mirrorlog" when empty.
func NewCollector(stats *Stats, namespace string) *Collector {
	if namespace == "" {
		namespace = "mirrorlog"
	}
	return &Collector{
		stats: stats,
		records: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "records_total"),
			"Total number of records written, by level",
			[]string{"level"}, nil,
		),
		platformErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "platform", "errors_total"),
			"Total number of failed platform sink writes",
			nil, nil,
		),
		fileWritten: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "file", "records_total"),
			"Total number of records written and flushed to the mirrored file",
			nil, nil,
		),
		fileErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "file", "errors_total"),
			"Total number of records whose file write or flush failed",
			nil, nil,
		),
		clockErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "clock", "errors_total"),
			"Total number of failed wall-clock samples",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.records
	ch <- c.platformErrors
	ch <- c.fileWritten
	ch <- c.fileErrors
	ch <- c.clockErrors
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.stats.GetSnapshot()
	for l := core.VerboseLevel; l <= core.FatalLevel; l++ {
		ch <- prometheus.MustNewConstMetric(c.records, prometheus.CounterValue,
			float64(snap.Records[l]), strings.ToLower(l.String()))
	}
	ch <- prometheus.MustNewConstMetric(c.platformErrors, prometheus.CounterValue, float64(snap.PlatformErrors))
	ch <- prometheus.MustNewConstMetric(c.fileWritten, prometheus.CounterValue, float64(snap.FileWritten))
	ch <- prometheus.MustNewConstMetric(c.fileErrors, prometheus.CounterValue, float64(snap.FileErrors))
	ch <- prometheus.MustNewConstMetric(c.clockErrors, prometheus.CounterValue, float64(snap.ClockErrors))
}
