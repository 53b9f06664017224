package lib

import "unsafe"

type pointIndex int32

const invalidPointIndex pointIndex = -1

type triangleIndex int32

const invalidTriangleIndex triangleIndex = -1

func next(i int) int { return (i + 1) % 3 }
func prev(i int) int { return (i + 2) % 3 }

type vertex struct {
	Sample
	live bool
	// Ring neighbors: both invalid until the vertex joins the ring
	// of the self node.
	links  [2]pointIndex
	inRing bool
}

type triangle struct {
	v    [3]pointIndex
	live bool
}

func (t *triangle) index(p pointIndex) int {
	for i, v := range t.v {
		if v == p {
			return i
		}
	}
	return -1
}

func (t *triangle) contains(p pointIndex) bool {
	return t.index(p) >= 0
}

// farVertex returns vertex of t which is not a vertex of o.
func (t *triangle) farVertex(o *triangle) int {
	for i, v := range t.v {
		if !o.contains(v) {
			return i
		}
	}
	return -1
}

// arena owns every vertex and triangle of a triangulation. Slots of freed
// items are reused.
type arena struct {
	points        []vertex
	freePoints    []pointIndex
	triangles     []triangle
	freeTriangles []triangleIndex
	numPoints     int
	numTriangles  int
}

func (a *arena) newPoint(s Sample) pointIndex {
	v := vertex{
		Sample: s,
		live:   true,
		links:  [2]pointIndex{invalidPointIndex, invalidPointIndex},
	}
	a.numPoints++
	if n := len(a.freePoints); n > 0 {
		p := a.freePoints[n-1]
		a.freePoints = a.freePoints[:n-1]
		a.points[p] = v
		return p
	}
	a.points = append(a.points, v)
	return pointIndex(len(a.points) - 1)
}

func (a *arena) freePoint(p pointIndex) {
	if !a.points[p].live {
		panic("vertex freed twice")
	}
	a.points[p].live = false
	a.freePoints = append(a.freePoints, p)
	a.numPoints--
}

func (a *arena) newTriangle(v0, v1, v2 pointIndex) triangleIndex {
	t := triangle{v: [3]pointIndex{v0, v1, v2}, live: true}
	a.numTriangles++
	if n := len(a.freeTriangles); n > 0 {
		i := a.freeTriangles[n-1]
		a.freeTriangles = a.freeTriangles[:n-1]
		a.triangles[i] = t
		return i
	}
	a.triangles = append(a.triangles, t)
	return triangleIndex(len(a.triangles) - 1)
}

func (a *arena) freeTriangle(t triangleIndex) {
	if !a.triangles[t].live {
		panic("triangle freed twice")
	}
	a.triangles[t].live = false
	a.freeTriangles = append(a.freeTriangles, t)
	a.numTriangles--
}

// memory estimates number of bytes taken by live items.
func (a *arena) memory() int {
	return a.numTriangles*int(unsafe.Sizeof(triangle{})) + a.numPoints*int(unsafe.Sizeof(vertex{}))
}
