package lib

import "errors"
import "fmt"

import "github.com/pwiecz/redelca/lib/r2geo"

// PowerTable - ascending squared distances reachable at each of the
// eight transmission power settings of the radio.
type PowerTable [8]float64

// DefaultPowerTable - calibration of the CC2420 radio.
var DefaultPowerTable = PowerTable{2.107, 11.472, 28.330, 52.680, 84.520, 123.850, 170.680, 225.000}

// MaxPowerCode - coded level of the strongest setting, used whenever no
// specific power could be computed.
const MaxPowerCode = 31

// noEdge - cost of an edge which cannot be traveled.
const noEdge = 500

func (t PowerTable) Validate() error {
	for i, v := range t {
		if v <= 0 {
			return fmt.Errorf("power table entry %d is not positive: %f", i, v)
		}
		if i > 0 && v <= t[i-1] {
			return errors.New("power table is not ascending")
		}
	}
	return nil
}

// Level returns the smallest setting reaching squared distance distSq,
// or the strongest setting if none does.
func (t PowerTable) Level(distSq float64) int {
	for i, v := range t {
		if v >= distSq {
			return i
		}
	}
	return len(t) - 1
}

// Code returns coded power level needed to reach squared distance distSq.
func (t PowerTable) Code(distSq float64) int {
	return 3 + 4*t.Level(distSq)
}

// Reach returns squared distance reachable with coded power level code.
func (t PowerTable) Reach(code int) float64 {
	level := (code - 3) / 4
	if code < 3 {
		level = 0
	}
	if level >= len(t) {
		level = len(t) - 1
	}
	return t[level]
}

// NeighborPower - power needed to reach a single ring neighbor.
type NeighborPower struct {
	ID int
	// Coded power to reach the neighbor directly.
	Direct int
	// Summed coded power of the relay path, valid if Reachable.
	Relay     int
	Reachable bool
	Power     int
}

type PowerResult struct {
	// Minimax over Neighbors, or 0 if there are no neighbors.
	Power     int
	Neighbors []NeighborPower
}

// via markers of the power search.
const (
	viaNone = -1
	viaSelf = -2
)

type powerSearch struct {
	ring  Ring
	table PowerTable
	power []int
	via   []int
}

func (s *powerSearch) edgeCode(i, j int) int {
	return s.table.Code(r2geo.DistanceSq(s.ring.Nodes[i].Pos, s.ring.Nodes[j].Pos))
}

func (s *powerSearch) directCode(i int) int {
	return s.table.Code(r2geo.DistanceSq(s.ring.Self.Pos, s.ring.Nodes[i].Pos))
}

// travelCost returns cost of moving from node cur along its link
// slot, or noEdge if the link is absent or leads to a visited node.
func (s *powerSearch) travelCost(cur, slot int) int {
	l := s.ring.Nodes[cur].Links[slot]
	if l < 0 || s.via[l] != viaNone {
		return noEdge
	}
	return s.edgeCode(cur, l)
}

// relayTo walks the ring from the cheapest start toward target, always
// taking the cheaper unvisited link. A single alternate node is kept
// on ties, the walk returns to it when it gets stuck.
func (s *powerSearch) relayTo(target int) (int, bool) {
	n := len(s.ring.Nodes)
	for k := range s.ring.Nodes {
		s.power[k] = s.directCode(k)
		s.via[k] = viaNone
	}
	j := 0
	for k := 1; k < n && j != target; k++ {
		if s.power[j] > s.power[k] {
			j = k
		}
	}
	cur := j
	if s.power[j] == s.power[target] {
		cur = target
	}
	s.via[cur] = viaSelf
	alternate := viaNone
	for steps := 0; cur != target; steps++ {
		if steps > 2*n {
			return 0, false
		}
		c0, c1 := s.travelCost(cur, 0), s.travelCost(cur, 1)
		if c0 == noEdge && c1 == noEdge {
			if alternate == viaNone {
				return 0, false
			}
			from := alternate
			alternate = viaNone
			to := s.ring.Nodes[from].Links[0]
			if to < 0 {
				return 0, false
			}
			s.power[to] = s.edgeCode(from, to)
			s.via[to] = from
			cur = to
			continue
		}
		if c0 == c1 {
			alternate = cur
		}
		slot, cost := 1, c1
		if c0 < c1 {
			slot, cost = 0, c0
		}
		nxt := s.ring.Nodes[cur].Links[slot]
		s.power[nxt] = cost
		s.via[nxt] = cur
		cur = nxt
	}
	relay := 0
	for k, hops := cur, 0; k >= 0; k, hops = s.via[k], hops+1 {
		if hops > n {
			// Backtracking rewired the path into a loop.
			return 0, false
		}
		relay += s.power[k]
	}
	return relay, true
}

// SearchPower computes the coded power with which the self node reaches
// every ring neighbor, either directly or through a relay path along
// the ring.
func SearchPower(ring Ring, table PowerTable) PowerResult {
	n := len(ring.Nodes)
	s := &powerSearch{
		ring:  ring,
		table: table,
		power: make([]int, n),
		via:   make([]int, n),
	}
	result := PowerResult{Neighbors: make([]NeighborPower, 0, n)}
	for i := range ring.Nodes {
		np := NeighborPower{ID: ring.Nodes[i].ID, Direct: s.directCode(i)}
		np.Relay, np.Reachable = s.relayTo(i)
		np.Power = np.Direct
		if np.Reachable && np.Relay < np.Power {
			np.Power = np.Relay
		}
		if np.Power > result.Power {
			result.Power = np.Power
		}
		result.Neighbors = append(result.Neighbors, np)
	}
	return result
}
