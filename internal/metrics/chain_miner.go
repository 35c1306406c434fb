package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blocksMinedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powchain",
		Subsystem: "chain_miner",
		Name:      "blocks_mined_total",
		Help:      "Count of blocks the chain miner attempted to mine.",
	}, []string{"difficulty", "status"})

	blockMineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powchain",
		Subsystem: "chain_miner",
		Name:      "block_mine_duration_seconds",
		Help:      "Duration of mining a single block.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
	}, []string{"difficulty", "status"})

	chainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "powchain",
		Subsystem: "chain_miner",
		Name:      "chain_height",
		Help:      "Generation of the last mined block.",
	}, []string{"difficulty"})
)

// ChainMiner tracks metrics for the chain miner service.
type ChainMiner struct {
	difficulty string
}

// NewChainMiner constructs a ChainMiner collector labelled with difficulty.
func NewChainMiner(difficulty uint8) *ChainMiner {
	return &ChainMiner{difficulty: label(difficulty)}
}

// ObserveBlock records the outcome of mining the block at generation.
func (m ChainMiner) ObserveBlock(err error, generation uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	blocksMinedTotal.WithLabelValues(m.difficulty, status).Inc()
	blockMineDuration.WithLabelValues(m.difficulty, status).Observe(time.Since(started).Seconds())
	if err == nil {
		chainHeight.WithLabelValues(m.difficulty).Set(float64(generation))
	}
}

func label(difficulty uint8) string {
	return strconv.FormatUint(uint64(difficulty), 10)
}
