package lib

import "reflect"
import "testing"

func TestRSSIDecreasesWithDistance(t *testing.T) {
	if RSSIAt(1) <= RSSIAt(4) || RSSIAt(4) <= RSSIAt(225) {
		t.Errorf("RSSI does not decrease with distance")
	}
}

func TestSimulate(t *testing.T) {
	network, err := ParseNetworkFile("testdata/network.yaml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var lastDone, lastTotal int
	reports := Simulate(network, 0, 3, func(done, total int) {
		lastDone, lastTotal = done, total
	})
	if lastDone != 6 || lastTotal != 6 {
		t.Errorf("Expected final progress 6/6, got %d/%d", lastDone, lastTotal)
	}
	if len(reports) != 6 {
		t.Fatalf("Expected 6 reports, got %d", len(reports))
	}
	center := reports[0]
	if center.NumReceived != 4 {
		t.Errorf("Expected 4 broadcasts received by the center node, got %d", center.NumReceived)
	}
	if center.Result.Power != 11 || center.Result.Default {
		t.Errorf("Expected power 11 for the center node, got %d", center.Result.Power)
	}
	if !reflect.DeepEqual(center.HeardBy, []int{2, 3, 4, 5}) {
		t.Errorf("Expected center heard by 2,3,4,5, got %v", center.HeardBy)
	}
	if center.NumHeard != 4 {
		t.Errorf("Expected center to hear 4 announcements, got %d", center.NumHeard)
	}
	isolated := reports[5]
	if isolated.NumReceived != 0 || isolated.Result.Status != StatusTooFewPoints {
		t.Errorf("Unexpected report of the isolated node %+v", isolated)
	}
	if isolated.Result.Power != MaxPowerCode || !isolated.Result.Default {
		t.Errorf("Expected default power for the isolated node, got %d", isolated.Result.Power)
	}
	if len(isolated.HeardBy) != 0 || isolated.NumHeard != 0 {
		t.Errorf("Isolated node takes part in announcements")
	}
	for _, report := range reports[1:5] {
		if report.Result.Err != nil {
			t.Errorf("Node %d failed: %v", report.Node.ID, report.Result.Err)
		}
	}
}
