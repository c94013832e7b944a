package vmath

import "math"

// Epsilon is the tolerance for component-wise equality of positions,
// velocities and accelerations. Tight, but forgiving of float
// accumulation over many integration steps.
const Epsilon = 1e-10

// Position is a location on the field in meters. X is horizontal range,
// Y is altitude above the launch plane (0 = sea level).
type Position struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the position scaled by factor.
func (p Position) Scale(factor float64) Position {
	return Position{X: p.X * factor, Y: p.Y * factor}
}

// DistanceTo returns the Euclidean distance to q.
func (p Position) DistanceTo(q Position) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Advance applies the kinematic equation s = s₀ + v·dt + ½·a·dt²
// and returns the new position. dt must be non-negative.
func (p Position) Advance(v Velocity, a Acceleration, dt float64) Position {
	return Position{
		X: p.X + v.DX*dt + 0.5*a.DDX*dt*dt,
		Y: p.Y + v.DY*dt + 0.5*a.DDY*dt*dt,
	}
}

// IsOrigin reports whether the position is exactly (0, 0).
func (p Position) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}

// Equals compares component-wise within Epsilon.
func (p Position) Equals(q Position) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}
