package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enable bool
	// Runtime adds the Go and process collectors.
	Runtime bool
}

// Registry is an in-process prometheus registry. Nothing is served over the
// network; Dump renders the text exposition on demand.
type Registry struct {
	config     MetricsConfig
	registry   *prometheus.Registry
	collectors []prometheus.Collector
	mu         sync.Mutex
}

// NewRegistry creates a new metrics registry
func NewRegistry(config MetricsConfig) *Registry {
	registry := prometheus.NewRegistry()
	if config.Runtime {
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	return &Registry{
		config:     config,
		registry:   registry,
		collectors: make([]prometheus.Collector, 0),
	}
}

// Enabled reports whether metrics were switched on in configuration.
func (r *Registry) Enabled() bool {
	return r.config.Enable
}

// RegisterCollector registers a prometheus collector
func (r *Registry) RegisterCollector(collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.registry.Register(collector); err != nil {
		return fmt.Errorf("failed to register collector: %w", err)
	}
	r.collectors = append(r.collectors, collector)
	return nil
}

// Registerer returns the registry for collectors that register themselves.
func (r *Registry) Registerer() prometheus.Registerer {
	return r.registry
}

// GetRegistry returns the prometheus registry
func (r *Registry) GetRegistry() *prometheus.Registry {
	return r.registry
}

// Dump writes every gathered metric family in the text exposition format.
func (r *Registry) Dump(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
