package moldiv

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; the library itself stays free of any metrics backend.
type MetricsCollector interface {
	// RecordDescribe is called after each batch descriptor computation.
	// count is the number of structures attempted, duration is the total
	// time taken, err is nil if successful.
	RecordDescribe(count int, duration time.Duration, err error)

	// RecordScore is called after each sum-of-spreads computation.
	RecordScore(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDescribe(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScore(time.Duration, error)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DescribeCount      atomic.Int64
	DescribeStructures atomic.Int64
	DescribeErrors     atomic.Int64
	DescribeTotalNanos atomic.Int64
	ScoreCount         atomic.Int64
	ScoreErrors        atomic.Int64
	ScoreTotalNanos    atomic.Int64
}

// RecordDescribe implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDescribe(count int, duration time.Duration, err error) {
	b.DescribeCount.Add(1)
	b.DescribeStructures.Add(int64(count))
	b.DescribeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DescribeErrors.Add(1)
	}
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(duration time.Duration, err error) {
	b.ScoreCount.Add(1)
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScoreErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DescribeCount:      b.DescribeCount.Load(),
		DescribeStructures: b.DescribeStructures.Load(),
		DescribeErrors:     b.DescribeErrors.Load(),
		DescribeAvgNanos:   b.getAvgDescribeNanos(),
		ScoreCount:         b.ScoreCount.Load(),
		ScoreErrors:        b.ScoreErrors.Load(),
		ScoreAvgNanos:      b.getAvgScoreNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgDescribeNanos() int64 {
	count := b.DescribeCount.Load()
	if count == 0 {
		return 0
	}
	return b.DescribeTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgScoreNanos() int64 {
	count := b.ScoreCount.Load()
	if count == 0 {
		return 0
	}
	return b.ScoreTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DescribeCount      int64
	DescribeStructures int64
	DescribeErrors     int64
	DescribeAvgNanos   int64
	ScoreCount         int64
	ScoreErrors        int64
	ScoreAvgNanos      int64
}
