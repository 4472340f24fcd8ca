package tlswire

import "sync/atomic"

// Stats collects record transport indicators. All fields are updated
// atomically; read them through Copy.
type Stats struct {
	RecordsIn  uint64 // records fully read
	RecordsOut uint64 // records written
	BytesIn    uint64 // raw bytes read, headers included
	BytesOut   uint64 // raw bytes written
	ReadErrs   uint64 // stream read failures, truncation included
	HeaderErrs uint64 // record headers that failed to decode
	Oversized  uint64 // records above the length ceiling
}

func newStats() *Stats {
	return new(Stats)
}

// Copy makes a snapshot of the current counters.
func (s *Stats) Copy() *Stats {
	d := newStats()
	d.RecordsIn = atomic.LoadUint64(&s.RecordsIn)
	d.RecordsOut = atomic.LoadUint64(&s.RecordsOut)
	d.BytesIn = atomic.LoadUint64(&s.BytesIn)
	d.BytesOut = atomic.LoadUint64(&s.BytesOut)
	d.ReadErrs = atomic.LoadUint64(&s.ReadErrs)
	d.HeaderErrs = atomic.LoadUint64(&s.HeaderErrs)
	d.Oversized = atomic.LoadUint64(&s.Oversized)
	return d
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.RecordsIn, 0)
	atomic.StoreUint64(&s.RecordsOut, 0)
	atomic.StoreUint64(&s.BytesIn, 0)
	atomic.StoreUint64(&s.BytesOut, 0)
	atomic.StoreUint64(&s.ReadErrs, 0)
	atomic.StoreUint64(&s.HeaderErrs, 0)
	atomic.StoreUint64(&s.Oversized, 0)
}

// DefaultStats is the global transport statistics collector.
var DefaultStats *Stats

func init() {
	DefaultStats = newStats()
}
