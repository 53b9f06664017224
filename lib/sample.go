package lib

import "github.com/golang/geo/r2"
import "golang.org/x/exp/slices"

// MaxPoints - default capacity of the sample buffer, self node included.
const MaxPoints = 30

// Sample - a single neighbor observation: node id, planar position and
// received signal strength.
type Sample struct {
	ID   int
	Pos  r2.Point
	RSSI float64
}

// SampleBuffer keeps samples ordered by ascending RSSI, capped at a fixed
// capacity. The self node is pinned in front of the sequence and is never
// evicted.
type SampleBuffer struct {
	capacity int
	self     Sample
	hasSelf  bool
	samples  []Sample
}

func NewSampleBuffer(capacity int) *SampleBuffer {
	if capacity < 1 {
		capacity = MaxPoints
	}
	return &SampleBuffer{
		capacity: capacity,
		samples:  make([]Sample, 0, capacity),
	}
}

func (b *SampleBuffer) Capacity() int { return b.capacity }

// Len returns number of samples in the buffer, self node included.
func (b *SampleBuffer) Len() int {
	if b.hasSelf {
		return len(b.samples) + 1
	}
	return len(b.samples)
}

// SetSelf sets the position of the local node, replacing any previous one.
func (b *SampleBuffer) SetSelf(id int, x, y float64) {
	b.self = Sample{ID: id, Pos: r2.Point{X: x, Y: y}}
	b.hasSelf = true
	for b.Len() > b.capacity && len(b.samples) > 0 {
		b.samples = b.samples[:len(b.samples)-1]
	}
}

func (b *SampleBuffer) Self() (Sample, bool) {
	return b.self, b.hasSelf
}

// Admit inserts s before the first sample with RSSI not lower than its own.
// If the buffer overflows the last sample in the sequence is evicted
// and returned. It may be s itself.
func (b *SampleBuffer) Admit(s Sample) (Sample, bool) {
	i := slices.IndexFunc(b.samples, func(o Sample) bool {
		return o.RSSI >= s.RSSI
	})
	if i < 0 {
		i = len(b.samples)
	}
	b.samples = slices.Insert(b.samples, i, s)
	if b.Len() <= b.capacity {
		return Sample{}, false
	}
	evicted := b.samples[len(b.samples)-1]
	b.samples = b.samples[:len(b.samples)-1]
	return evicted, true
}

// Neighbors returns a copy of the neighbor samples in buffer order.
func (b *SampleBuffer) Neighbors() []Sample {
	return slices.Clone(b.samples)
}

// Snapshot returns a copy of the whole point sequence, self node first.
func (b *SampleBuffer) Snapshot() []Sample {
	points := make([]Sample, 0, b.Len())
	if b.hasSelf {
		points = append(points, b.self)
	}
	return append(points, b.samples...)
}

// Reset drops all neighbor samples, keeping the self node.
func (b *SampleBuffer) Reset() {
	b.samples = b.samples[:0]
}
