package lib

import "errors"

import "github.com/golang/geo/r2"
import "github.com/golang/groupcache/lru"

var ErrNoSelf = errors.New("position of the local node is not set")

// Result - outcome of a single topology control cycle.
type Result struct {
	// Number of triangulated points, or a negative failure code.
	Status Status
	Err    error
	// Triangles of the cleaned up triangulation.
	Triangles [][3]Sample
	Ring      Ring
	Search    PowerResult
	// Coded power to configure on the radio.
	Power int
	// Set if Power is the default, because no specific power was computed.
	Default    bool
	PeakMemory int
}

// Node - topology control state of a single network node.
type Node struct {
	params  nodeParams
	samples *SampleBuffer
	// Ids of nodes whose power announcement was received.
	heard *lru.Cache
}

func NewNode(options ...NodeOption) *Node {
	params := nodeParams{
		maxPoints:    MaxPoints,
		table:        DefaultPowerTable,
		defaultPower: MaxPowerCode,
	}
	for _, option := range options {
		option.apply(&params)
	}
	if params.maxPoints < 1 {
		params.maxPoints = MaxPoints
	}
	return &Node{
		params:  params,
		samples: NewSampleBuffer(params.maxPoints),
		heard:   lru.New(params.maxPoints),
	}
}

func (n *Node) SetSelf(id int, x, y float64) {
	n.samples.SetSelf(id, x, y)
}

// Admit records a position broadcast received from node id. It returns
// the sample evicted from the full buffer, if any.
func (n *Node) Admit(id int, x, y, rssi float64) (Sample, bool) {
	return n.samples.Admit(Sample{ID: id, Pos: r2.Point{X: x, Y: y}, RSSI: rssi})
}

// Receive decodes a broadcast payload from node id. Position payloads go
// to the sample buffer, radioRSSI being the raw radio reading.
func (n *Node) Receive(id int, payload string, radioRSSI float64) error {
	if IsAnnouncement(payload) {
		n.Hear(id)
		return nil
	}
	x, y, err := ParsePosition(payload)
	if err != nil {
		return err
	}
	n.Admit(id, x, y, radioRSSI-RSSIOffset)
	return nil
}

func (n *Node) Samples() *SampleBuffer {
	return n.samples
}

func (n *Node) PowerTable() PowerTable {
	return n.params.table
}

// Hear records a power announcement of node id.
func (n *Node) Hear(id int) {
	n.heard.Add(id, struct{}{})
}

func (n *Node) HasHeard(id int) bool {
	_, ok := n.heard.Get(id)
	return ok
}

func (n *Node) NumHeard() int {
	return n.heard.Len()
}

// RunTopologyControl triangulates the current samples, extracts ring of
// the self node and searches power reaching every ring neighbor. The
// sample buffer is left intact, unless the samples could not be
// triangulated. Then neighbor samples are dropped and the next cycle
// starts collecting from scratch. Too few samples are kept.
func (n *Node) RunTopologyControl() Result {
	result := Result{Power: n.params.defaultPower, Default: true}
	if _, ok := n.samples.Self(); !ok {
		result.Status = StatusTooFewPoints
		result.Err = ErrNoSelf
		return result
	}
	t := NewTriangulation(n.samples.Snapshot())
	num, err := t.Triangulate()
	if err != nil {
		result.Status = StatusOf(err)
		result.Err = err
		if result.Status != StatusTooFewPoints {
			n.samples.Reset()
		}
		return result
	}
	result.Status = Status(num)
	result.PeakMemory = t.PeakMemory()
	result.Triangles = t.Triangles()
	t.ExtractRing()
	result.Ring = t.Ring()
	result.Search = SearchPower(result.Ring, n.params.table)
	if result.Ring.Degree() > 0 && result.Search.Power > 0 {
		result.Power = result.Search.Power
		result.Default = false
	}
	return result
}
