// Package metrics exposes per-run Prometheus counters for scene validation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gtmstudio/scenedirector/internal/director"
)

// Metrics holds the collectors of a single run. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	scenes   prometheus.Counter
	failed   prometheus.Counter
	issues   *prometheus.CounterVec
	resolved prometheus.Counter
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		scenes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scenedirector_scenes_total",
			Help: "Scenes validated.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scenedirector_scenes_with_issues_total",
			Help: "Scenes that produced at least one diagnostic.",
		}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenedirector_issues_total",
			Help: "Diagnostics reported, by kind.",
		}, []string{"kind"}),
		resolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scenedirector_conflicts_resolved_total",
			Help: "Conflicting settings disabled by the resolver.",
		}),
	}
	m.Registry.MustRegister(m.scenes, m.failed, m.issues, m.resolved)
	return m
}

// ObserveScene records the outcome of one scene.
func (m *Metrics) ObserveScene(issues director.Issues, resolved int) {
	if m == nil {
		return
	}
	m.scenes.Inc()
	if len(issues) > 0 {
		m.failed.Inc()
	}
	for _, issue := range issues {
		m.issues.WithLabelValues(issue.Kind.String()).Inc()
	}
	m.resolved.Add(float64(resolved))
}

// WriteTextfile writes the current values in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
