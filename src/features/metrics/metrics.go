package metrics

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/contre95/mediastore/src/media"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mediastore"

// Recorder records media store activity as prometheus metrics.
type Recorder struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	fsEvents   *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Media store operations by operation and result.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of media store operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"operation"}),
		fsEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fs_events_total",
			Help:      "Changes observed under the media root by category and type.",
		}, []string{"category", "type"}),
	}
	reg.MustRegister(r.operations, r.duration, r.fsEvents)
	return r
}

// Observe records one finished operation. The result label is "ok" or the
// error kind of err.
func (r *Recorder) Observe(operation string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = media.ErrorKind(err)
	}
	r.operations.WithLabelValues(operation, result).Inc()
	r.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// FileEvent counts a change observed on disk.
func (r *Recorder) FileEvent(event media.FileEvent) {
	r.fsEvents.WithLabelValues(event.Category, string(event.Type)).Inc()
}

// LibraryCollector reports the number of files per category. It lists the
// store on every scrape so the value always matches the disk.
type LibraryCollector struct {
	store media.Store
	files *prometheus.Desc
}

var _ prometheus.Collector = (*LibraryCollector)(nil)

// NewLibraryCollector creates a collector over store.
func NewLibraryCollector(store media.Store) *LibraryCollector {
	return &LibraryCollector{
		store: store,
		files: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "files"),
			"Number of managed files per category.",
			[]string{"category"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *LibraryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.files
}

// Collect implements prometheus.Collector.
func (c *LibraryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()
	for _, category := range media.Categories {
		files, err := c.store.List(ctx, string(category))
		if err != nil {
			if !errors.Is(err, media.ErrEnvironment) {
				slog.Warn("Failed to count files for metrics", "category", category, "error", err)
			}
			ch <- prometheus.NewInvalidMetric(c.files, err)
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.files, prometheus.GaugeValue, float64(len(files)), string(category))
	}
}
