package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pauljaws/StackBot/internal/db"
)

var (
	resolutionDesc = prometheus.NewDesc(
		"stackbot_resolutions_total",
		"Total resolution pipeline outcomes by slug",
		[]string{"slug", "outcome"},
		nil,
	)

	// UpstreamReachable reports whether the ranking API answered the last
	// background probe.
	UpstreamReachable = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "stackbot_ranking_api_reachable",
		Help: "1 if the last ranking API probe succeeded, 0 otherwise",
	})
)

// ResolutionCollector is a custom Prometheus collector that reads resolution
// outcome counts from the database on each scrape.
type ResolutionCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *ResolutionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- resolutionDesc
}

// Collect queries the database for all resolution stats and emits them as counters.
func (c *ResolutionCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.db.GetAllResolutionStats(context.Background())
	if err != nil {
		slog.Error("failed to collect resolution metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			resolutionDesc,
			prometheus.CounterValue,
			float64(s.Count),
			s.Slug,
			s.Outcome,
		)
	}
}

// Recorder provides async resolution outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&ResolutionCollector{db: database})
		prometheus.MustRegister(UpstreamReachable)
	})
}

// RecordResolution asynchronously records a resolution outcome for a phrase.
// The phrase is slugged by the caller; recording never blocks a pipeline run.
func RecordResolution(slug, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementResolutionStat(context.Background(), slug, outcome); err != nil {
			slog.Error("failed to record resolution outcome", "slug", slug, "outcome", outcome, "error", err)
		}
	}()
}
