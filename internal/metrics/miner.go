// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mineRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "mine_range_total",
		Help:      "Count of proof searches over a nonce range.",
	}, []string{"difficulty", "status"})

	mineRangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "mine_range_duration_seconds",
		Help:      "Duration of proof searches over a nonce range.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms..32s
	}, []string{"difficulty", "status"})

	mineRangeTasks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "mine_range_tasks",
		Help:      "Number of chunks a nonce range was split into.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 13), // 1..4096
	}, []string{"difficulty"})

	taskTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "task_total",
		Help:      "Count of completed mining tasks.",
	}, []string{"difficulty", "status"})

	taskNoncesScanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "task_nonces_scanned_total",
		Help:      "Nonces hashed by mining tasks.",
	}, []string{"difficulty"})

	taskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "miner",
		Name:      "task_duration_seconds",
		Help:      "Duration of a single mining task.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"difficulty", "status"})
)

// Miner tracks metrics for proof searches at a fixed difficulty.
type Miner struct {
	difficulty string
}

// NewMiner constructs a Miner collector labelled with difficulty.
func NewMiner(difficulty uint8) *Miner {
	return &Miner{difficulty: label(difficulty)}
}

// ObserveMineRange records the outcome of a range search.
func (m Miner) ObserveMineRange(found bool, tasks int, started time.Time) {
	status := searchStatus(found)
	mineRangeTotal.WithLabelValues(m.difficulty, status).Inc()
	mineRangeDuration.WithLabelValues(m.difficulty, status).Observe(time.Since(started).Seconds())
	mineRangeTasks.WithLabelValues(m.difficulty).Observe(float64(tasks))
}

// ObserveTask records a completed mining task.
func (m Miner) ObserveTask(found bool, scanned uint64, started time.Time) {
	status := searchStatus(found)
	taskTotal.WithLabelValues(m.difficulty, status).Inc()
	taskNoncesScanned.WithLabelValues(m.difficulty).Add(float64(scanned))
	taskDuration.WithLabelValues(m.difficulty, status).Observe(time.Since(started).Seconds())
}

func searchStatus(found bool) string {
	if found {
		return "found"
	}
	return "not_found"
}
