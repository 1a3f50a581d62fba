// Package analytics aggregates processing results into fleet-level
// operational statistics.
package analytics

import (
	"sync"

	"github.com/seaops/mariner/pkg/mariner"
	"github.com/seaops/mariner/pkg/mariner/priority"
)

// Collector accumulates per-document results. It is safe for concurrent
// use.
type Collector struct {
	mu              sync.Mutex
	totalProcessed  int64
	criticalAlerts  int64
	classifications map[string]int64
	priorities      map[string]int64
	confidenceSum   float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		classifications: make(map[string]int64),
		priorities:      make(map[string]int64),
	}
}

// Add consumes one processing result.
func (c *Collector) Add(res *mariner.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalProcessed++
	c.classifications[res.Classification.String()]++
	c.priorities[res.Priority.String()]++
	c.confidenceSum += res.Confidence
	if res.Priority == priority.Critical {
		c.criticalAlerts++
	}
}

// Report is a point-in-time aggregate over every result added so far.
type Report struct {
	TotalProcessed          int64            `json:"total_processed"`
	CriticalAlerts          int64            `json:"critical_alerts"`
	ClassificationBreakdown map[string]int64 `json:"classification_breakdown"`
	PriorityBreakdown       map[string]int64 `json:"priority_breakdown"`
	AverageConfidence       float64          `json:"average_confidence"`
}

// Snapshot returns a copy of the current aggregates. The returned maps are
// detached from the collector.
func (c *Collector) Snapshot() Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	copyClass := make(map[string]int64, len(c.classifications))
	for k, v := range c.classifications {
		copyClass[k] = v
	}
	copyPrio := make(map[string]int64, len(c.priorities))
	for k, v := range c.priorities {
		copyPrio[k] = v
	}

	avg := 0.0
	if c.totalProcessed > 0 {
		avg = c.confidenceSum / float64(c.totalProcessed)
	}

	return Report{
		TotalProcessed:          c.totalProcessed,
		CriticalAlerts:          c.criticalAlerts,
		ClassificationBreakdown: copyClass,
		PriorityBreakdown:       copyPrio,
		AverageConfidence:       avg,
	}
}
