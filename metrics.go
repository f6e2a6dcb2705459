package raygo

import (
	"errors"
	"sync/atomic"

	"github.com/hupe1980/raygo/tuple"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordOperation is called after each tuple operation (add, sub, negate).
	// err is nil if the operation was valid.
	RecordOperation(op string, err error)

	// RecordEncode is called after each encode. count is the number of tuples,
	// size the encoded length in bytes.
	RecordEncode(count, size int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperation(string, error) {}
func (NoopMetricsCollector) RecordEncode(int, int, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	AddCount            atomic.Int64
	SubCount            atomic.Int64
	NegateCount         atomic.Int64
	InvalidAdditions    atomic.Int64
	InvalidSubtractions atomic.Int64
	OtherErrors         atomic.Int64
	EncodeCount         atomic.Int64
	EncodeErrors        atomic.Int64
	EncodedTuples       atomic.Int64
	EncodedBytes        atomic.Int64
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(op string, err error) {
	switch op {
	case "add":
		b.AddCount.Add(1)
	case "sub":
		b.SubCount.Add(1)
	case "negate":
		b.NegateCount.Add(1)
	}

	if err == nil {
		return
	}

	var ia *tuple.ErrInvalidAddition
	var is *tuple.ErrInvalidSubtraction
	switch {
	case errors.As(err, &ia):
		b.InvalidAdditions.Add(1)
	case errors.As(err, &is):
		b.InvalidSubtractions.Add(1)
	default:
		b.OtherErrors.Add(1)
	}
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(count, size int, err error) {
	b.EncodeCount.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodedTuples.Add(int64(count))
	b.EncodedBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:            b.AddCount.Load(),
		SubCount:            b.SubCount.Load(),
		NegateCount:         b.NegateCount.Load(),
		InvalidAdditions:    b.InvalidAdditions.Load(),
		InvalidSubtractions: b.InvalidSubtractions.Load(),
		OtherErrors:         b.OtherErrors.Load(),
		EncodeCount:         b.EncodeCount.Load(),
		EncodeErrors:        b.EncodeErrors.Load(),
		EncodedTuples:       b.EncodedTuples.Load(),
		EncodedBytes:        b.EncodedBytes.Load(),
		AvgBytesPerTuple:    b.avgBytesPerTuple(),
	}
}

func (b *BasicMetricsCollector) avgBytesPerTuple() float64 {
	n := b.EncodedTuples.Load()
	if n == 0 {
		return 0
	}
	return float64(b.EncodedBytes.Load()) / float64(n)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount            int64
	SubCount            int64
	NegateCount         int64
	InvalidAdditions    int64
	InvalidSubtractions int64
	OtherErrors         int64
	EncodeCount         int64
	EncodeErrors        int64
	EncodedTuples       int64
	EncodedBytes        int64
	AvgBytesPerTuple    float64
}
