package hexmap

import "math"

// Sqrt3 is √3.
const Sqrt3 = 1.7320508075688772935274463415059

// Vec3 is a point in the consumer's world space. Tiles lie in the X/Z plane
// and Y is height.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp interpolates between v and to.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
		Z: v.Z + (to.Z-v.Z)*t,
	}
}

// Layout converts axial coordinates into world positions for a flat-top grid.
// It holds no state besides its parameters, so conversion is a pure function
// of (q, r).
type Layout struct {
	HexSize float64 // centre to corner
	Height  float64 // Y of every tile centre
}

// ToWorld returns the centre of h.
func (l Layout) ToWorld(h Hex) Vec3 {
	return Vec3{
		X: l.HexSize * 1.5 * float64(h.Q),
		Y: l.Height,
		Z: l.HexSize * (Sqrt3/2*float64(h.Q) + Sqrt3*float64(h.R)),
	}
}

// EdgeMidpoint returns the point halfway between h and its neighbour across
// edge, i.e. the middle of the shared side.
func (l Layout) EdgeMidpoint(h Hex, edge int) Vec3 {
	return l.ToWorld(h).Lerp(l.ToWorld(h.Neighbor(edge)), 0.5)
}

// Corner returns the i-th corner of h. Corner i sits between edges i-1 and i.
func (l Layout) Corner(h Hex, i int) Vec3 {
	c := l.ToWorld(h)
	a := l.EdgeMidpoint(h, i-1)
	b := l.EdgeMidpoint(h, i)
	// The mean of two adjacent mid-side points sits at 3/4 of the corner radius.
	m := a.Lerp(b, 0.5)
	return c.Lerp(m, 4.0/3.0)
}

// FromWorld returns the hex containing the world point (x, z).
func (l Layout) FromWorld(x, z float64) Hex {
	q := (2.0 / 3.0 * x) / l.HexSize
	r := (-1.0/3.0*x + Sqrt3/3.0*z) / l.HexSize
	return axialRound(q, r)
}

// axialRound snaps fractional axial coordinates to the nearest hex by rounding
// in cube space and fixing the component with the largest rounding error.
func axialRound(q, r float64) Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}
