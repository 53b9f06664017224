package r2geo

import "github.com/golang/geo/r2"

// Orientation returns twice the signed area of triangle abc.
// It's positive if a,b,c are ordered counterclockwise, negative
// if they are ordered clockwise and zero if they are collinear.
func Orientation(a, b, c r2.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// OnEdgeBox reports whether p lies inside the bounding box of segment ab.
// Combined with a zero orientation it means p lies on the segment.
func OnEdgeBox(a, b, p r2.Point) bool {
	return r2.RectFromPoints(a, b).ContainsPoint(p)
}

func DistanceSq(p0, p1 r2.Point) float64 {
	dx, dy := p0.X-p1.X, p0.Y-p1.Y
	return dx*dx + dy*dy
}

// Location of a point relative to a triangle.
type Location int

const (
	OnEdge0 Location = iota // on segment v0-v1
	OnEdge1                 // on segment v1-v2
	OnEdge2                 // on segment v2-v0
	Inside
	Outside
)

// IsOnEdge reports whether l is one of OnEdge0, OnEdge1, OnEdge2.
func (l Location) IsOnEdge() bool {
	return l >= OnEdge0 && l <= OnEdge2
}

// Edge returns the index of the first vertex of the edge a point
// lies on. Only meaningful if IsOnEdge() is true.
func (l Location) Edge() int {
	return int(l)
}

func (l Location) String() string {
	switch l {
	case OnEdge0:
		return "on edge 0"
	case OnEdge1:
		return "on edge 1"
	case OnEdge2:
		return "on edge 2"
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	}
	return "unknown"
}

// TriangleQuery helps to answer question where a point lies in relation
// to a triangle. Vertices may be given in either orientation.
type TriangleQuery struct {
	v   [3]r2.Point
	den float64
}

func NewTriangleQuery(v0, v1, v2 r2.Point) TriangleQuery {
	return TriangleQuery{
		v:   [3]r2.Point{v0, v1, v2},
		den: (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y),
	}
}

// Locate classifies p using barycentric coordinates. Points on an edge
// (vertices included) are reported as lying on the lowest numbered
// matching edge. A degenerate triangle never contains a point strictly.
func (t *TriangleQuery) Locate(p r2.Point) Location {
	v0, v1, v2 := t.v[0], t.v[1], t.v[2]
	a := ((v1.Y-v2.Y)*(p.X-v2.X) + (v2.X-v1.X)*(p.Y-v2.Y)) / t.den
	b := ((v2.Y-v0.Y)*(p.X-v2.X) + (v0.X-v2.X)*(p.Y-v2.Y)) / t.den
	c := 1 - a - b
	if Orientation(v0, p, v1) == 0 && OnEdgeBox(v0, v1, p) {
		return OnEdge0
	} else if Orientation(v1, p, v2) == 0 && OnEdgeBox(v1, v2, p) {
		return OnEdge1
	} else if Orientation(v2, p, v0) == 0 && OnEdgeBox(v2, v0, p) {
		return OnEdge2
	} else if a > 0 && b > 0 && c > 0 {
		return Inside
	}
	return Outside
}

// Classify is a shorthand for a single use TriangleQuery.
func Classify(p, v0, v1, v2 r2.Point) Location {
	q := NewTriangleQuery(v0, v1, v2)
	return q.Locate(p)
}

func slope(a, b r2.Point) float64 {
	return (b.Y - a.Y) / (b.X - a.X)
}

func vertical(a, b r2.Point) bool {
	return a.X == b.X
}

// bisectorsIntersection intersects perpendicular bisectors of segments
// ab and bc, given their slopes mab and mbc.
func bisectorsIntersection(a, b, c r2.Point, mab, mbc float64) r2.Point {
	x := (mab*mbc*(a.Y-c.Y) + mbc*(a.X+b.X) - mab*(b.X+c.X)) / (2 * (mbc - mab))
	var y float64
	if mab != 0 {
		y = -(1/mab)*(x-(a.X+b.X)/2) + (a.Y+b.Y)/2
	} else {
		y = -(1/mbc)*(x-(b.X+c.X)/2) + (b.Y+c.Y)/2
	}
	return r2.Point{X: x, Y: y}
}

// Circumcenter returns the point equidistant from v0, v1 and v2.
// It returns false if the triangle is degenerate.
func Circumcenter(v0, v1, v2 r2.Point) (r2.Point, bool) {
	if Orientation(v0, v1, v2) == 0 {
		return r2.Point{}, false
	}
	m01, m12, m20 := slope(v0, v1), slope(v1, v2), slope(v2, v0)
	// Pick a pair of edges, none of them vertical.
	if !vertical(v0, v1) && !vertical(v1, v2) && m01 != m12 {
		return bisectorsIntersection(v0, v1, v2, m01, m12), true
	} else if !vertical(v1, v2) && !vertical(v2, v0) && m12 != m20 {
		return bisectorsIntersection(v1, v2, v0, m12, m20), true
	}
	return bisectorsIntersection(v2, v0, v1, m20, m01), true
}
