package lib

import "math"

import "github.com/golang/geo/r2"
import "github.com/pwiecz/redelca/lib/r2geo"

// Triangulation - incremental Delaunay triangulation of a single sample
// snapshot. The first sample is the self node. A Triangulation is used
// for one cycle only: after a failure it has to be discarded.
type Triangulation struct {
	arena
	// Plain point list. Bounding vertices come first while the
	// triangulation is being built.
	sequence []pointIndex
	self     pointIndex
	bounds   [3]pointIndex
	numReal  int
	// Ring of the self node, in order of absorption.
	ring       []pointIndex
	peakMemory int
	pending    worklist
}

// Synthetic ids of the bounding triangle vertices.
const (
	boundID0 = -1
	boundID1 = -2
	boundID2 = -3
)

func NewTriangulation(samples []Sample) *Triangulation {
	t := &Triangulation{
		self:   invalidPointIndex,
		bounds: [3]pointIndex{invalidPointIndex, invalidPointIndex, invalidPointIndex},
	}
	t.points = make([]vertex, 0, len(samples)+3)
	t.triangles = make([]triangle, 0, 2*len(samples)+1)
	for _, s := range samples {
		t.sequence = append(t.sequence, t.newPoint(s))
	}
	t.numReal = len(samples)
	if len(t.sequence) > 0 {
		t.self = t.sequence[0]
	}
	return t
}

func (t *Triangulation) pos(p pointIndex) r2.Point {
	return t.points[p].Pos
}

func (t *Triangulation) isBound(p pointIndex) bool {
	return p != invalidPointIndex && (p == t.bounds[0] || p == t.bounds[1] || p == t.bounds[2])
}

func (t *Triangulation) numBounds(ti triangleIndex) int {
	n := 0
	for _, v := range t.triangles[ti].v {
		if t.isBound(v) {
			n++
		}
	}
	return n
}

func (t *Triangulation) boundIndex(ti triangleIndex) int {
	for i, v := range t.triangles[ti].v {
		if t.isBound(v) {
			return i
		}
	}
	return -1
}

// limitPoint returns p as seen by the geometric predicates.
func (t *Triangulation) limitPoint(p pointIndex) r2geo.LimitPoint {
	if t.isBound(p) {
		return r2geo.Receding(t.pos(p))
	}
	return r2geo.Fixed(t.pos(p))
}

func (t *Triangulation) orientation(a, b, c pointIndex) float64 {
	return r2geo.LimitOrientation(t.limitPoint(a), t.limitPoint(b), t.limitPoint(c))
}

func sign(v float64) int {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

// locate classifies p against triangle ti.
func (t *Triangulation) locate(ti triangleIndex, p pointIndex) r2geo.Location {
	v := t.triangles[ti].v
	if t.numBounds(ti) == 0 {
		return r2geo.Classify(t.pos(p), t.pos(v[0]), t.pos(v[1]), t.pos(v[2]))
	}
	s := sign(t.orientation(v[0], v[1], v[2]))
	if s == 0 {
		return r2geo.Outside
	}
	loc := r2geo.Inside
	for i := range v {
		o := s * sign(t.orientation(v[i], v[next(i)], p))
		if o < 0 {
			return r2geo.Outside
		}
		if o == 0 {
			if loc != r2geo.Inside {
				return r2geo.Outside
			}
			loc = r2geo.Location(i)
		}
	}
	return loc
}

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of triangle ti. The second result is false for a degenerate triangle.
func (t *Triangulation) inCircumcircle(ti triangleIndex, p pointIndex) (bool, bool) {
	v := t.triangles[ti].v
	if t.numBounds(ti) == 0 && !t.isBound(p) {
		center, ok := r2geo.Circumcenter(t.pos(v[0]), t.pos(v[1]), t.pos(v[2]))
		if !ok {
			return false, false
		}
		return r2geo.DistanceSq(t.pos(p), center) < r2geo.DistanceSq(center, t.pos(v[0])), true
	}
	s := sign(t.orientation(v[0], v[1], v[2]))
	if s == 0 {
		return false, false
	}
	d := r2geo.LimitInCircle(t.limitPoint(v[0]), t.limitPoint(v[1]), t.limitPoint(v[2]), t.limitPoint(p))
	return s*sign(d) > 0, true
}

func (t *Triangulation) fail(status Status, p pointIndex, detail string) *TriangulationError {
	id := -1
	if p != invalidPointIndex {
		id = t.points[p].ID
	}
	return &TriangulationError{Status: status, SampleID: id, Detail: detail}
}

// PeakMemory returns estimated number of bytes used by the arena when
// the triangulation was at its largest.
func (t *Triangulation) PeakMemory() int {
	return t.peakMemory
}

// NumTriangles returns number of live triangles.
func (t *Triangulation) NumTriangles() int {
	return t.numTriangles
}

// Triangles returns vertices of all live triangles.
func (t *Triangulation) Triangles() [][3]Sample {
	result := make([][3]Sample, 0, t.numTriangles)
	for _, tri := range t.triangles {
		if !tri.live {
			continue
		}
		result = append(result, [3]Sample{
			t.points[tri.v[0]].Sample,
			t.points[tri.v[1]].Sample,
			t.points[tri.v[2]].Sample})
	}
	return result
}

// adjacent returns the other live triangle sharing edge uv with ti.
func (t *Triangulation) adjacent(ti triangleIndex, u, v pointIndex) triangleIndex {
	for i := range t.triangles {
		o := &t.triangles[i]
		if triangleIndex(i) == ti || !o.live {
			continue
		}
		if o.contains(u) && o.contains(v) {
			return triangleIndex(i)
		}
	}
	return invalidTriangleIndex
}

// flip replaces the shared edge of triangles a and b with the other
// diagonal of the quadrilateral they form. Each triangle keeps its
// vertex not shared with the other one.
func (t *Triangulation) flip(ai, bi triangleIndex) bool {
	a, b := &t.triangles[ai], &t.triangles[bi]
	ua, ub := a.farVertex(b), b.farVertex(a)
	if ua < 0 || ub < 0 {
		return false
	}
	farA := a.v[ua]
	a.v[next(ua)] = b.v[ub]
	if b.v[next(ub)] == a.v[prev(ua)] {
		b.v[next(ub)] = farA
	} else {
		b.v[prev(ub)] = farA
	}
	return true
}

// legalize restores the empty circle property of the edges opposite
// to p, starting from triangle root.
func (t *Triangulation) legalize(p pointIndex, root triangleIndex) legalizeFailure {
	t.pending.Reset()
	t.pending.Push(root)
	for !t.pending.Empty() {
		ti := t.pending.Pop()
		tri := &t.triangles[ti]
		ut := tri.index(p)
		if ut < 0 {
			return legalizeMissingVertex
		}
		s1, s2 := tri.v[next(ut)], tri.v[prev(ut)]
		ai := t.adjacent(ti, s1, s2)
		if ai == invalidTriangleIndex {
			// Hull edge.
			continue
		}
		ua := t.triangles[ai].farVertex(tri)
		if ua < 0 {
			return legalizeFlip
		}
		far := t.triangles[ai].v[ua]
		inside, ok := t.inCircumcircle(ti, far)
		if !ok {
			return legalizeDegenerate
		}
		if !inside || sign(t.orientation(p, far, s1))*sign(t.orientation(p, far, s2)) >= 0 {
			continue
		}
		if !t.flip(ti, ai) {
			return legalizeFlip
		}
		// ti has to be fully legalized before ai.
		t.pending.Push(ai)
		t.pending.Push(ti)
	}
	return legalizeOK
}

func (t *Triangulation) collinear() bool {
	p0 := t.pos(t.sequence[0])
	var p1 r2.Point
	found := false
	for _, p := range t.sequence[1:] {
		if t.pos(p) != p0 {
			p1 = t.pos(p)
			found = true
			break
		}
	}
	if !found {
		return true
	}
	for _, p := range t.sequence[1:] {
		if r2geo.Orientation(p0, p1, t.pos(p)) != 0 {
			return false
		}
	}
	return true
}

// bootstrap creates the bounding triangle enclosing all real points, and
// prepends its vertices to the point list. Geometric predicates treat the
// bounding vertices as receding to infinity along their positions, so
// they never fall inside a circle through three real points.
func (t *Triangulation) bootstrap() {
	m := 0.
	for _, p := range t.sequence {
		pos := t.pos(p)
		m = math.Max(m, math.Max(math.Abs(pos.X), math.Abs(pos.Y)))
	}
	d := 3*m + 1
	t.bounds[0] = t.newPoint(Sample{ID: boundID0, Pos: r2.Point{X: d, Y: 0}})
	t.bounds[1] = t.newPoint(Sample{ID: boundID1, Pos: r2.Point{X: 0, Y: d}})
	t.bounds[2] = t.newPoint(Sample{ID: boundID2, Pos: r2.Point{X: -d, Y: -d}})
	t.sequence = append([]pointIndex{t.bounds[0], t.bounds[1], t.bounds[2]}, t.sequence...)
	t.newTriangle(t.bounds[0], t.bounds[1], t.bounds[2])
}

// Triangulate builds the Delaunay triangulation of the real points and
// returns their number.
func (t *Triangulation) Triangulate() (int, error) {
	if t.numReal < 3 {
		return 0, t.fail(StatusTooFewPoints, t.self, "")
	}
	if t.collinear() {
		return 0, t.fail(StatusOnBoundaryEdge, t.self, "all points are collinear")
	}
	t.bootstrap()
	for _, p := range t.sequence[3:] {
		if err := t.insert(p); err != nil {
			return 0, err
		}
	}
	if err := t.patchHull(); err != nil {
		return 0, err
	}
	t.peakMemory = t.memory()
	t.cleanup()
	return t.numReal, nil
}

func (t *Triangulation) insert(p pointIndex) error {
	for i := range t.triangles {
		if !t.triangles[i].live {
			continue
		}
		loc := t.locate(triangleIndex(i), p)
		if loc == r2geo.Inside {
			return t.splitInside(triangleIndex(i), p)
		} else if loc.IsOnEdge() {
			return t.splitEdge(triangleIndex(i), loc.Edge(), p)
		}
	}
	return t.fail(StatusOutside, p, "")
}

func (t *Triangulation) legalizeAll(p pointIndex, triangles []triangleIndex, statuses []Status) error {
	for i, ti := range triangles {
		if f := t.legalize(p, ti); f != legalizeOK {
			return t.fail(statuses[i]-Status(f), p, f.String())
		}
	}
	return nil
}

func (t *Triangulation) splitInside(ti triangleIndex, p pointIndex) error {
	v := t.triangles[ti].v
	ai := t.newTriangle(v[1], v[2], p)
	bi := t.newTriangle(v[2], v[0], p)
	t.triangles[ti].v[2] = p
	return t.legalizeAll(p,
		[]triangleIndex{ti, ai, bi},
		[]Status{StatusLegalizeSplitT, StatusLegalizeSplitA, StatusLegalizeSplitB})
}

// splitEdge splits triangle ti and its neighbor across edge e into four.
func (t *Triangulation) splitEdge(ti triangleIndex, e int, p pointIndex) error {
	v := t.triangles[ti].v
	u, w := v[e], v[next(e)]
	ai := t.adjacent(ti, u, w)
	if ai == invalidTriangleIndex {
		return t.fail(StatusOnBoundaryEdge, p, "")
	}
	a := t.triangles[ai].v
	m := t.triangles[ai].index(u)
	if m < 0 {
		return t.fail(StatusInconsistent, p, "")
	}
	far := a[next(m)]
	if far == w {
		far = a[prev(m)]
	}
	bi := t.newTriangle(u, v[prev(e)], p)
	ci := t.newTriangle(u, far, p)
	t.triangles[ti].v[e] = p
	t.triangles[ai].v[m] = p
	return t.legalizeAll(p,
		[]triangleIndex{ti, ai, bi, ci},
		[]Status{StatusLegalizeT, StatusLegalizeA, StatusLegalizeB, StatusLegalizeC})
}

// patchHullEdge checks edge between the bounding vertex of triangle ti
// and its vertex r, with o being the remaining vertex. If the triangle on
// the other side of that edge also touches a single bounding vertex and
// the quadrilateral is convex, the edge gets flipped. It returns the
// triangle to continue checking from, or invalidTriangleIndex if nothing
// changed.
func (t *Triangulation) patchHullEdge(ti triangleIndex, s, r, o pointIndex, adjacentStatus, flipStatus Status) (triangleIndex, error) {
	ai := t.adjacent(ti, s, r)
	if ai == invalidTriangleIndex {
		return invalidTriangleIndex, t.fail(adjacentStatus, r, "")
	}
	if t.numBounds(ai) != 1 {
		return invalidTriangleIndex, nil
	}
	ua := t.triangles[ai].farVertex(&t.triangles[ti])
	if ua < 0 {
		return invalidTriangleIndex, nil
	}
	far := t.triangles[ai].v[ua]
	if sign(t.orientation(o, s, far))*sign(t.orientation(o, r, far)) >= 0 {
		return invalidTriangleIndex, nil
	}
	if !t.flip(ti, ai) {
		return invalidTriangleIndex, t.fail(flipStatus, r, "")
	}
	if t.numBounds(ti) > 0 {
		return ti, nil
	}
	return ai, nil
}

// patchHull flips edges from a bounding vertex that still cut across the
// convex hull of the real points.
func (t *Triangulation) patchHull() error {
	for i := range t.triangles {
		ti := triangleIndex(i)
		if !t.triangles[ti].live || t.numBounds(ti) != 1 {
			continue
		}
		for {
			e := t.boundIndex(ti)
			v := t.triangles[ti].v
			nt, err := t.patchHullEdge(ti, v[e], v[next(e)], v[prev(e)], StatusHullNextAdjacent, StatusHullNextFlip)
			if err != nil {
				return err
			}
			if nt != invalidTriangleIndex {
				ti = nt
				continue
			}
			nt, err = t.patchHullEdge(ti, v[e], v[prev(e)], v[next(e)], StatusHullPrevAdjacent, StatusHullPrevFlip)
			if err != nil {
				return err
			}
			if nt != invalidTriangleIndex {
				ti = nt
				continue
			}
			break
		}
	}
	return nil
}

// cleanup removes the bounding triangle vertices and every triangle
// referencing them.
func (t *Triangulation) cleanup() {
	for i := range t.triangles {
		ti := triangleIndex(i)
		if t.triangles[ti].live && t.numBounds(ti) > 0 {
			t.freeTriangle(ti)
		}
	}
	for _, b := range t.bounds {
		t.freePoint(b)
	}
	t.sequence = t.sequence[3:]
	t.bounds = [3]pointIndex{invalidPointIndex, invalidPointIndex, invalidPointIndex}
}
