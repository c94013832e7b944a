package vmath

import "math"

// Velocity is a 2D velocity in meters per second, same axis convention
// as Position.
type Velocity struct {
	DX, DY float64
}

// VelocityFromAngle builds the velocity pointing along angle with the
// given magnitude.
func VelocityFromAngle(angle Angle, magnitude float64) Velocity {
	return Velocity{DX: magnitude * angle.Dx(), DY: magnitude * angle.Dy()}
}

// Add returns the component-wise sum.
func (v Velocity) Add(w Velocity) Velocity {
	return Velocity{DX: v.DX + w.DX, DY: v.DY + w.DY}
}

// Sub returns the component-wise difference v - w.
func (v Velocity) Sub(w Velocity) Velocity {
	return Velocity{DX: v.DX - w.DX, DY: v.DY - w.DY}
}

// Scale returns the velocity scaled by factor.
func (v Velocity) Scale(factor float64) Velocity {
	return Velocity{DX: v.DX * factor, DY: v.DY * factor}
}

// Reverse returns the velocity pointing the opposite way.
func (v Velocity) Reverse() Velocity {
	return Velocity{DX: -v.DX, DY: -v.DY}
}

// Speed returns the magnitude in m/s.
func (v Velocity) Speed() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

// Angle returns the direction of travel. The zero velocity maps to
// straight up.
func (v Velocity) Angle() Angle {
	return AngleFromComponents(v.DX, v.DY)
}

// Advance applies v = v₀ + a·dt and returns the new velocity.
// dt must be non-negative.
func (v Velocity) Advance(a Acceleration, dt float64) Velocity {
	return Velocity{DX: v.DX + a.DDX*dt, DY: v.DY + a.DDY*dt}
}

// IsZero reports whether both components are exactly zero.
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// KineticEnergy returns ½·m·|v|² in joules.
func (v Velocity) KineticEnergy(mass float64) float64 {
	speed2 := v.DX*v.DX + v.DY*v.DY
	return 0.5 * mass * speed2
}

// Equals compares component-wise within Epsilon.
func (v Velocity) Equals(w Velocity) bool {
	return math.Abs(v.DX-w.DX) < Epsilon && math.Abs(v.DY-w.DY) < Epsilon
}
