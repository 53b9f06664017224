package lib

import "math"
import "sort"
import "sync"

import "github.com/pwiecz/redelca/lib/r2geo"

// Radio model of the simulation: RSSI at 1 unit of distance and the
// path loss exponent.
const (
	referenceRSSI    = -10.
	pathLossExponent = 2.5
)

// RSSIAt returns raw radio RSSI of a broadcast received from squared
// distance distSq.
func RSSIAt(distSq float64) float64 {
	distSq = math.Max(distSq, 0.01)
	return referenceRSSI - 5*pathLossExponent*math.Log10(distSq)
}

// NodeReport - outcome of the topology control cycle of one node of
// a simulated network.
type NodeReport struct {
	Node Sample
	// Number of position broadcasts the node received.
	NumReceived int
	Result      Result
	// Ids of nodes which received power announcement of this node.
	HeardBy []int
	// Number of announcements of other nodes this node received.
	NumHeard int
}

type simulationRequest struct {
	index  int
	node   *Node
	result Result
}

func simulationWorker(requestChannel, responseChannel chan simulationRequest, wg *sync.WaitGroup) {
	for req := range requestChannel {
		req.result = req.node.RunTopologyControl()
		responseChannel <- req
	}
	wg.Done()
}

// Simulate runs a topology control cycle on every node of network.
// Each node first receives position broadcast of every other node within
// squared distance rangeSq, and afterwards power announcement of every
// node whose chosen power reaches it.
func Simulate(network []Sample, rangeSq float64, numWorkers int, progressFunc func(int, int), options ...NodeOption) []NodeReport {
	if numWorkers < 1 {
		numWorkers = 1
	}
	nodes := make([]*Node, 0, len(network))
	reports := make([]NodeReport, len(network))
	for i, self := range network {
		node := NewNode(options...)
		node.SetSelf(self.ID, self.Pos.X, self.Pos.Y)
		if rangeSq <= 0 {
			rangeSq = node.PowerTable().Reach(MaxPowerCode)
		}
		reports[i].Node = self
		for j, other := range network {
			if i == j {
				continue
			}
			distSq := r2geo.DistanceSq(self.Pos, other.Pos)
			if distSq > rangeSq {
				continue
			}
			payload := FormatPosition(other.Pos.X, other.Pos.Y)
			if err := node.Receive(other.ID, payload, RSSIAt(distSq)); err == nil {
				reports[i].NumReceived++
			}
		}
		nodes = append(nodes, node)
	}

	requestChannel := make(chan simulationRequest, numWorkers)
	responseChannel := make(chan simulationRequest, numWorkers)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go simulationWorker(requestChannel, responseChannel, &wg)
	}
	go func() {
		for i, node := range nodes {
			requestChannel <- simulationRequest{index: i, node: node}
		}
		close(requestChannel)
	}()
	go func() {
		wg.Wait()
		close(responseChannel)
	}()

	numNodes := len(nodes)
	numProcessed := 0
	if progressFunc != nil && numNodes > 0 {
		progressFunc(0, numNodes)
	}
	for resp := range responseChannel {
		reports[resp.index].Result = resp.result
		numProcessed++
		if progressFunc != nil {
			progressFunc(numProcessed, numNodes)
		}
	}

	for i, report := range reports {
		reachSq := nodes[i].PowerTable().Reach(report.Result.Power)
		for j, other := range network {
			if i == j || r2geo.DistanceSq(report.Node.Pos, other.Pos) > reachSq {
				continue
			}
			nodes[j].Receive(report.Node.ID, "N", RSSIAt(0))
			reports[i].HeardBy = append(reports[i].HeardBy, other.ID)
		}
		sort.Ints(reports[i].HeardBy)
	}
	for i, node := range nodes {
		reports[i].NumHeard = node.NumHeard()
	}
	return reports
}
