package lib

// RingNode - a neighbor of the self node together with its two
// neighbors along the ring. Links hold indices into Ring.Nodes, or -1.
type RingNode struct {
	Sample
	Links [2]int
}

// Ring - 1-ring of the self node in the triangulation.
type Ring struct {
	Self  Sample
	Nodes []RingNode
}

func (r Ring) Degree() int {
	return len(r.Nodes)
}

// ExtractRing consumes all triangles around the self node and turns their
// vertices into the ring of the self node. Each triangle and each vertex
// outside of the ring is freed. It returns number of newly absorbed
// ring nodes, so running it again on a consumed triangulation returns 0.
func (t *Triangulation) ExtractRing() int {
	added := 0
	for i := range t.triangles {
		ti := triangleIndex(i)
		if !t.triangles[ti].live {
			continue
		}
		v := t.triangles[ti].v
		t.freeTriangle(ti)
		s := -1
		for j, p := range v {
			if t.points[p].ID < 0 {
				s = -1
				break
			}
			if p == t.self {
				s = j
			}
		}
		if s < 0 {
			continue
		}
		n, q := v[next(s)], v[prev(s)]
		added += t.attach(n, q)
		added += t.attach(q, n)
	}
	for _, p := range t.sequence {
		if p == t.self || t.points[p].inRing {
			continue
		}
		t.freePoint(p)
	}
	if t.self != invalidPointIndex {
		t.sequence = []pointIndex{t.self}
	} else {
		t.sequence = nil
	}
	return added
}

// attach records neighbor as a ring neighbor of p, absorbing p into
// the ring if it's not there yet.
func (t *Triangulation) attach(p, neighbor pointIndex) int {
	v := &t.points[p]
	if v.inRing {
		v.links[1] = neighbor
		return 0
	}
	v.inRing = true
	v.links = [2]pointIndex{neighbor, invalidPointIndex}
	t.ring = append(t.ring, p)
	return 1
}

// Ring returns the ring extracted so far.
func (t *Triangulation) Ring() Ring {
	var ring Ring
	if t.self == invalidPointIndex {
		return ring
	}
	ring.Self = t.points[t.self].Sample
	position := make(map[pointIndex]int, len(t.ring))
	for i, p := range t.ring {
		position[p] = i
	}
	ring.Nodes = make([]RingNode, 0, len(t.ring))
	for _, p := range t.ring {
		node := RingNode{Sample: t.points[p].Sample, Links: [2]int{-1, -1}}
		for i, l := range t.points[p].links {
			if l == invalidPointIndex {
				continue
			}
			if pos, ok := position[l]; ok {
				node.Links[i] = pos
			}
		}
		ring.Nodes = append(ring.Nodes, node)
	}
	return ring
}
