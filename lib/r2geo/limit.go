package r2geo

import "github.com/golang/geo/r2"

// LimitPoint is the point Base + λ*Dir for an arbitrarily large λ.
// A point with zero Dir is an ordinary point. Predicates on limit points
// return the sign they have for every large enough λ.
type LimitPoint struct {
	Base r2.Point
	Dir  r2.Point
}

func Fixed(p r2.Point) LimitPoint {
	return LimitPoint{Base: p}
}

// Receding returns the point moving away to infinity along dir.
func Receding(dir r2.Point) LimitPoint {
	return LimitPoint{Dir: dir}
}

// poly holds coefficients of a polynomial in λ, lowest degree first.
type poly [5]float64

func (p poly) add(q poly) poly {
	for i := range p {
		p[i] += q[i]
	}
	return p
}

func (p poly) sub(q poly) poly {
	for i := range p {
		p[i] -= q[i]
	}
	return p
}

// mul drops terms above degree 4, none of the predicates produces them.
func (p poly) mul(q poly) poly {
	var r poly
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j := 0; i+j < len(r); j++ {
			r[i+j] += a * q[j]
		}
	}
	return r
}

// lead returns the coefficient deciding the sign for large λ.
func (p poly) lead() float64 {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return p[i]
		}
	}
	return 0
}

func (p LimitPoint) x() poly {
	return poly{p.Base.X, p.Dir.X}
}

func (p LimitPoint) y() poly {
	return poly{p.Base.Y, p.Dir.Y}
}

// LimitOrientation is Orientation of limit points. For fixed points it
// returns exactly the same value as Orientation.
func LimitOrientation(a, b, c LimitPoint) float64 {
	abx, aby := b.x().sub(a.x()), b.y().sub(a.y())
	acx, acy := c.x().sub(a.x()), c.y().sub(a.y())
	return abx.mul(acy).sub(aby.mul(acx)).lead()
}

// lifted returns coordinates of p lifted onto the paraboloid.
func (p LimitPoint) lifted() [3]poly {
	x, y := p.x(), p.y()
	return [3]poly{x, y, x.mul(x).add(y.mul(y))}
}

func det3(p, q, r [3]poly) poly {
	return p[0].mul(q[1].mul(r[2]).sub(q[2].mul(r[1]))).
		sub(p[1].mul(q[0].mul(r[2]).sub(q[2].mul(r[0])))).
		add(p[2].mul(q[0].mul(r[1]).sub(q[1].mul(r[0]))))
}

// LimitInCircle is positive if d lies inside the circle through a, b, c
// ordered counterclockwise, negative if it lies outside and zero if the
// four points are cocircular.
//
// The points are not translated, so terms of receding points never
// cancel out each other.
func LimitInCircle(a, b, c, d LimitPoint) float64 {
	la, lb, lc, ld := a.lifted(), b.lifted(), c.lifted(), d.lifted()
	det := det3(la, lb, lc).
		sub(det3(la, lb, ld)).
		add(det3(la, lc, ld)).
		sub(det3(lb, lc, ld))
	return det.lead()
}
