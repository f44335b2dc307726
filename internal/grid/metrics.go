package grid

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts grid traffic. A nil *Metrics is valid and records nothing.
type Metrics struct {
	reads        prometheus.Counter
	writes       prometheus.Counter
	cycleErrors  prometheus.Counter
	autovivified prometheus.Counter
	bindings     prometheus.Gauge
}

// NewMetrics creates the grid collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		reads: factory.NewCounter(prometheus.CounterOpts{
			Name: "cellgrid_reads_total",
			Help: "Total cell reads, including failed ones",
		}),
		writes: factory.NewCounter(prometheus.CounterOpts{
			Name: "cellgrid_writes_total",
			Help: "Total successful cell writes",
		}),
		cycleErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "cellgrid_cycle_errors_total",
			Help: "Reads and writes aborted by a cycle",
		}),
		autovivified: factory.NewCounter(prometheus.CounterOpts{
			Name: "cellgrid_autovivified_total",
			Help: "Unbound coordinates implicitly bound to zero",
		}),
		bindings: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cellgrid_bindings",
			Help: "Number of bound coordinates",
		}),
	}
}

func (m *Metrics) read() {
	if m != nil {
		m.reads.Inc()
	}
}

func (m *Metrics) write() {
	if m != nil {
		m.writes.Inc()
	}
}

func (m *Metrics) cycle() {
	if m != nil {
		m.cycleErrors.Inc()
	}
}

func (m *Metrics) bound(autovivified bool, total int) {
	if m == nil {
		return
	}
	if autovivified {
		m.autovivified.Inc()
	}
	m.bindings.Set(float64(total))
}
