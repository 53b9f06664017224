package lib

import "errors"
import "fmt"

// Status - outcome of a triangulation. Non-negative values count the
// triangulated points, negative values classify the failure.
type Status int

const (
	StatusTooFewPoints     Status = -100
	StatusOutside          Status = -200
	StatusOnBoundaryEdge   Status = -300
	StatusInconsistent     Status = -400
	StatusLegalizeT        Status = -510
	StatusLegalizeA        Status = -520
	StatusLegalizeB        Status = -530
	StatusLegalizeC        Status = -540
	StatusLegalizeSplitT   Status = -610
	StatusLegalizeSplitA   Status = -620
	StatusLegalizeSplitB   Status = -630
	StatusHullNextAdjacent Status = -710
	StatusHullNextFlip     Status = -711
	StatusHullPrevAdjacent Status = -720
	StatusHullPrevFlip     Status = -721
)

// Failures of a single edge legalization. They are subtracted from
// the legalization status of the failing triangle.
type legalizeFailure int

const (
	legalizeOK legalizeFailure = iota
	legalizeMissingVertex
	legalizeDegenerate
	legalizeFlip
)

func (f legalizeFailure) String() string {
	switch f {
	case legalizeMissingVertex:
		return "inserted point is not a vertex of the triangle"
	case legalizeDegenerate:
		return "degenerate triangle"
	case legalizeFlip:
		return "edge flip failed"
	}
	return "ok"
}

func (s Status) Failed() bool {
	return s < 0
}

func (s Status) String() string {
	if s >= 0 {
		return fmt.Sprintf("triangulated %d points", int(s))
	}
	switch s {
	case StatusTooFewPoints:
		return "too few points to triangulate"
	case StatusOutside:
		return "point lies outside every triangle"
	case StatusOnBoundaryEdge:
		return "point lies on a boundary edge"
	case StatusInconsistent:
		return "inconsistent triangle adjacency"
	case StatusHullNextAdjacent, StatusHullPrevAdjacent:
		return "convex hull patch-up found no adjacent triangle"
	case StatusHullNextFlip, StatusHullPrevFlip:
		return "convex hull patch-up could not flip an edge"
	}
	switch {
	case s <= StatusLegalizeT && s > StatusLegalizeA:
		return "legalization of the split triangle failed"
	case s <= StatusLegalizeA && s > StatusLegalizeB:
		return "legalization of the adjacent triangle failed"
	case s <= StatusLegalizeB && s > StatusLegalizeSplitT:
		return "legalization of a new triangle failed"
	case s <= StatusLegalizeSplitT && s > StatusHullNextAdjacent:
		return "legalization of an inner split triangle failed"
	}
	return "unknown failure"
}

// TriangulationError - failed triangulation. The arena it was raised from
// must not be reused.
type TriangulationError struct {
	Status   Status
	SampleID int
	Detail   string
}

func (e *TriangulationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("triangulation failed (%d) at node %d: %s: %s", int(e.Status), e.SampleID, e.Status, e.Detail)
	}
	return fmt.Sprintf("triangulation failed (%d) at node %d: %s", int(e.Status), e.SampleID, e.Status)
}

// StatusOf returns the status carried by err, or StatusInconsistent
// for errors not raised by a triangulation.
func StatusOf(err error) Status {
	var terr *TriangulationError
	if errors.As(err, &terr) {
		return terr.Status
	}
	return StatusInconsistent
}
