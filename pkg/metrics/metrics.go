// Package metrics exposes store and generator activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/limaJavier/classplanner/pkg/generator"
	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	_ model.Recorder     = (*Collector)(nil)
	_ generator.Observer = (*Collector)(nil)
)

// Collector records store mutations and conflicts and generator placement effort
type Collector struct {
	mutations    *prometheus.CounterVec
	conflicts    *prometheus.CounterVec
	slotAttempts prometheus.Histogram
	failedPasses prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classplanner_store_mutations_total",
			Help: "Successful store operations by operation and entity kind",
		}, []string{"op", "kind"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classplanner_store_conflicts_total",
			Help: "Store operations rejected because of schedule conflicts",
		}, []string{"kind"}),
		slotAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "classplanner_generator_slot_attempts",
			Help:    "Random start times drawn before a slot was placed",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
		failedPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "classplanner_generator_failed_passes_total",
			Help: "Group placement passes thrown away by the generator",
		}),
	}

	reg.MustRegister(
		c.mutations,
		c.conflicts,
		c.slotAttempts,
		c.failedPasses,
	)
	return c
}

func (c *Collector) Mutation(op string, kind model.Kind) {
	c.mutations.WithLabelValues(op, string(kind)).Inc()
}

func (c *Collector) Conflict(kind model.Kind) {
	c.conflicts.WithLabelValues(string(kind)).Inc()
}

func (c *Collector) SlotPlaced(attempts int) {
	c.slotAttempts.Observe(float64(attempts))
}

func (c *Collector) PassFailed() {
	c.failedPasses.Inc()
}

// Handler serves the metrics gathered by gatherer in the Prometheus text format
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
