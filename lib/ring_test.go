package lib

import "math/rand"
import "reflect"
import "sort"
import "testing"

import "github.com/golang/geo/r2"

func diamondRing(t *testing.T) Ring {
	samples := samplesFromPoints([]r2.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: -4, Y: 0}, {X: 0, Y: -4}})
	tr := NewTriangulation(samples)
	if _, err := tr.Triangulate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	tr.ExtractRing()
	return tr.Ring()
}

func TestExtractRingDiamond(t *testing.T) {
	ring := diamondRing(t)
	if ring.Self.ID != 0 {
		t.Errorf("Expected self 0, got %d", ring.Self.ID)
	}
	if ring.Degree() != 4 {
		t.Fatalf("Expected ring degree 4, got %d", ring.Degree())
	}
	expected := map[int][]int{
		1: {2, 4},
		2: {1, 3},
		3: {2, 4},
		4: {1, 3},
	}
	for _, node := range ring.Nodes {
		var links []int
		for _, l := range node.Links {
			if l < 0 {
				t.Errorf("Node %d is missing a link", node.ID)
				continue
			}
			links = append(links, ring.Nodes[l].ID)
		}
		sort.Ints(links)
		if !reflect.DeepEqual(links, expected[node.ID]) {
			t.Errorf("Node %d: expected links %v, got %v", node.ID, expected[node.ID], links)
		}
	}
}

func TestRingOfFreshTriangulation(t *testing.T) {
	tr := NewTriangulation(nil)
	if added := tr.ExtractRing(); added != 0 {
		t.Errorf("Expected empty ring, got %d", added)
	}
	if ring := tr.Ring(); ring.Degree() != 0 {
		t.Errorf("Expected empty ring, got degree %d", ring.Degree())
	}
}

// checkRingCycle verifies that the links of ring form a single cycle
// through all of its nodes.
func checkRingCycle(ring Ring, t *testing.T) {
	for i, node := range ring.Nodes {
		for _, l := range node.Links {
			if l < 0 || l >= ring.Degree() {
				t.Errorf("Node %d has link %d", node.ID, l)
				return
			}
			other := ring.Nodes[l].Links
			if other[0] != i && other[1] != i {
				t.Errorf("Link from node %d to node %d is one way", node.ID, ring.Nodes[l].ID)
			}
		}
		if node.Links[0] == node.Links[1] {
			t.Errorf("Node %d links twice to node %d", node.ID, ring.Nodes[node.Links[0]].ID)
		}
	}
	prev, current := -1, 0
	for step := 0; step < ring.Degree(); step++ {
		links := ring.Nodes[current].Links
		following := links[0]
		if following == prev {
			following = links[1]
		}
		prev, current = current, following
		if current == 0 && step != ring.Degree()-1 {
			t.Errorf("Cycle closes after %d of %d nodes", step+1, ring.Degree())
			return
		}
	}
	if current != 0 {
		t.Errorf("Walk of %d links does not return to the first node", ring.Degree())
	}
}

func TestExtractRingDiamondCycle(t *testing.T) {
	checkRingCycle(diamondRing(t), t)
}

func TestExtractRingRandomInterior(t *testing.T) {
	iterations := 500
	if testing.Short() {
		iterations = 50
	}
	rnd := rand.New(rand.NewSource(16))
	for i := 0; i < iterations; i++ {
		// Frame keeps the self node at the origin inside the hull.
		points := []r2.Point{{X: 0, Y: 0}, {X: -20, Y: -20}, {X: 20, Y: -20}, {X: 20, Y: 20}, {X: -20, Y: 20}}
		for _, s := range randomSamples(rnd, rnd.Intn(MaxPoints-len(points)), 15) {
			if s.Pos != (r2.Point{}) {
				points = append(points, s.Pos)
			}
		}
		samples := samplesFromPoints(points)
		tr := NewTriangulation(samples)
		if _, err := tr.Triangulate(); err != nil {
			t.Fatalf("Iteration %d: unexpected error %v for %v", i, err, points)
		}
		neighbors := make(map[int]bool)
		for _, tri := range tr.Triangles() {
			if tri[0].ID == 0 || tri[1].ID == 0 || tri[2].ID == 0 {
				for _, s := range tri {
					if s.ID != 0 {
						neighbors[s.ID] = true
					}
				}
			}
		}
		if added := tr.ExtractRing(); added != len(neighbors) {
			t.Errorf("Iteration %d: expected %d ring nodes, got %d", i, len(neighbors), added)
		}
		ring := tr.Ring()
		if ring.Degree() < 3 {
			t.Fatalf("Iteration %d: interior self node has ring degree %d", i, ring.Degree())
		}
		checkRingCycle(ring, t)
		if t.Failed() {
			t.Fatalf("Iteration %d failed for %v", i, points)
		}
	}
}
