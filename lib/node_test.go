package lib

import "errors"
import "testing"

func TestNodeDiamond(t *testing.T) {
	node := NewNode()
	node.SetSelf(0, 0, 0)
	node.Admit(1, 4, 0, -60)
	node.Admit(2, 0, 4, -61)
	node.Admit(3, -4, 0, -62)
	node.Admit(4, 0, -4, -63)
	result := node.RunTopologyControl()
	if result.Err != nil {
		t.Fatalf("Unexpected error: %v", result.Err)
	}
	if result.Status != 5 {
		t.Errorf("Expected status 5, got %d", result.Status)
	}
	if result.Ring.Degree() != 4 {
		t.Errorf("Expected ring degree 4, got %d", result.Ring.Degree())
	}
	if result.Power != 11 || result.Default {
		t.Errorf("Expected power 11, got %d (default %v)", result.Power, result.Default)
	}
	if len(result.Triangles) != 4 {
		t.Errorf("Expected 4 triangles, got %d", len(result.Triangles))
	}
	if result.PeakMemory <= 0 {
		t.Errorf("Expected positive peak memory")
	}
	// The cycle leaves the samples for the next one.
	if node.Samples().Len() != 5 {
		t.Errorf("Expected 5 samples kept, got %d", node.Samples().Len())
	}
}

func TestNodeDefaultPower(t *testing.T) {
	node := NewNode(NodeDefaultPower(27))
	result := node.RunTopologyControl()
	if !errors.Is(result.Err, ErrNoSelf) {
		t.Errorf("Expected ErrNoSelf, got %v", result.Err)
	}
	if result.Power != 27 || !result.Default {
		t.Errorf("Expected default power 27, got %d", result.Power)
	}

	node.SetSelf(0, 0, 0)
	node.Admit(1, 1, 1, -50)
	result = node.RunTopologyControl()
	if result.Status != StatusTooFewPoints {
		t.Errorf("Expected status %d, got %d", StatusTooFewPoints, result.Status)
	}
	if result.Power != 27 || !result.Default {
		t.Errorf("Expected default power 27, got %d", result.Power)
	}
	if node.Samples().Len() != 2 {
		t.Errorf("Expected samples kept while too few, got %d", node.Samples().Len())
	}

	node.Admit(2, 2, 2, -50)
	result = node.RunTopologyControl()
	if result.Status != StatusOnBoundaryEdge {
		t.Errorf("Expected status %d, got %d", StatusOnBoundaryEdge, result.Status)
	}
	var terr *TriangulationError
	if !errors.As(result.Err, &terr) {
		t.Errorf("Expected TriangulationError, got %v", result.Err)
	}
	if node.Samples().Len() != 1 {
		t.Errorf("Expected neighbor samples dropped after failure, got %d samples", node.Samples().Len())
	}
	if _, ok := node.Samples().Self(); !ok {
		t.Errorf("Expected self node kept after failure")
	}

	// Fresh samples make the next cycle succeed.
	node.Admit(3, 4, 0, -50)
	node.Admit(4, 0, 4, -50)
	result = node.RunTopologyControl()
	if result.Err != nil {
		t.Fatalf("Unexpected error: %v", result.Err)
	}
	if result.Status != 3 || result.Default {
		t.Errorf("Expected status 3 with specific power, got %d (default %v)", result.Status, result.Default)
	}
}

func TestNodeFullBuffer(t *testing.T) {
	node := NewNode()
	node.SetSelf(0, 0, 0)
	for i := 1; i < MaxPoints; i++ {
		if _, evicted := node.Admit(i, float64(i), float64(i*i%7), float64(-40-i)); evicted {
			t.Fatalf("Unexpected eviction at %d", i)
		}
	}
	// The highest RSSI belongs to node 1.
	evicted, ok := node.Admit(100, 3, 3, -95)
	if !ok || evicted.ID != 1 {
		t.Errorf("Expected node 1 evicted, got %v (%v)", evicted.ID, ok)
	}
	if node.Samples().Len() != MaxPoints {
		t.Errorf("Expected %d samples, got %d", MaxPoints, node.Samples().Len())
	}
	if self, ok := node.Samples().Self(); !ok || self.ID != 0 {
		t.Errorf("Self node lost")
	}
}

func TestNodeReceive(t *testing.T) {
	node := NewNode(NodeMaxPoints(4))
	node.SetSelf(0, 0, 0)
	if err := node.Receive(7, "1.500#-2.250", -20); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	samples := node.Samples().Neighbors()
	if len(samples) != 1 || samples[0].ID != 7 || samples[0].RSSI != -65 {
		t.Errorf("Unexpected samples %+v", samples)
	}
	if samples[0].Pos.X != 1.5 || samples[0].Pos.Y != -2.25 {
		t.Errorf("Unexpected position %v", samples[0].Pos)
	}
	if err := node.Receive(8, "N", -20); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !node.HasHeard(8) || node.HasHeard(7) || node.NumHeard() != 1 {
		t.Errorf("Announcement of node 8 not recorded")
	}
	if err := node.Receive(9, "garbage", -20); err == nil {
		t.Errorf("Expected error for malformed payload")
	}
}

func TestNodeHeardCapacity(t *testing.T) {
	node := NewNode(NodeMaxPoints(3))
	for id := 1; id <= 5; id++ {
		node.Hear(id)
	}
	if node.NumHeard() != 3 {
		t.Errorf("Expected 3 announcements kept, got %d", node.NumHeard())
	}
	if node.HasHeard(1) || !node.HasHeard(5) {
		t.Errorf("Expected the oldest announcements dropped")
	}
}
