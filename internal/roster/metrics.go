// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roster

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder turns store changes into prometheus metrics.
type Recorder struct {
	mutations    *prometheus.CounterVec
	members      prometheus.Gauge
	loading      prometheus.Gauge
	loadDuration prometheus.Histogram
	loadErrors   prometheus.Counter

	mu  sync.Mutex
	now func() time.Time
	// start times of loads in flight, oldest first
	loadsStarted []time.Time
}

// NewRecorder creates the roster collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roster_mutations_total",
				Help: "Store mutations by operation and whether they changed anything",
			},
			[]string{"op", "result"},
		),
		members: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_members",
			Help: "Members currently in the roster",
		}),
		loading: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_loading",
			Help: "1 while a load is in flight",
		}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_load_duration_seconds",
			Help:    "Time between raising and lowering the loading flag",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~32s
		}),
		loadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_load_errors_total",
			Help: "Errors stored in the roster error slot",
		}),
		now: time.Now,
	}

	for _, c := range []prometheus.Collector{r.mutations, r.members, r.loading, r.loadDuration, r.loadErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Attach subscribes the recorder to s and returns the unsubscribe func.
func (r *Recorder) Attach(s *Store) func() {
	r.members.Set(float64(s.Len()))
	return s.Subscribe(r.Observe)
}

func (r *Recorder) Observe(c Change) {
	r.members.Set(float64(c.Size))

	switch c.Op {
	case OpLoading:
		r.observeLoading(c.Loading)
	case OpSetError:
		if c.Err != nil {
			r.loadErrors.Inc()
		}
	default:
		result := "applied"
		if !c.Applied {
			result = "noop"
		}
		r.mutations.WithLabelValues(string(c.Op), result).Inc()
	}
}

func (r *Recorder) observeLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if loading {
		r.loading.Set(1)
		r.loadsStarted = append(r.loadsStarted, r.now())
		return
	}
	r.loading.Set(0)
	if len(r.loadsStarted) == 0 {
		return
	}
	// Overlapping loads are paired first in, first out, so each load is
	// observed once but individual durations are approximate.
	started := r.loadsStarted[0]
	r.loadsStarted = r.loadsStarted[1:]
	r.loadDuration.Observe(r.now().Sub(started).Seconds())
}
