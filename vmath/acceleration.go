package vmath

import "math"

// Acceleration is a 2D acceleration in meters per second squared.
// Independent causes (gravity, drag) compose additively via Add before
// being applied to a step.
type Acceleration struct {
	DDX, DDY float64
}

// AccelerationFromAngle builds the acceleration pointing along angle
// with the given magnitude.
func AccelerationFromAngle(angle Angle, magnitude float64) Acceleration {
	return Acceleration{DDX: magnitude * angle.Dx(), DDY: magnitude * angle.Dy()}
}

// Add returns the component-wise sum.
func (a Acceleration) Add(b Acceleration) Acceleration {
	return Acceleration{DDX: a.DDX + b.DDX, DDY: a.DDY + b.DDY}
}

// Sub returns the component-wise difference a - b.
func (a Acceleration) Sub(b Acceleration) Acceleration {
	return Acceleration{DDX: a.DDX - b.DDX, DDY: a.DDY - b.DDY}
}

// Scale returns the acceleration scaled by factor.
func (a Acceleration) Scale(factor float64) Acceleration {
	return Acceleration{DDX: a.DDX * factor, DDY: a.DDY * factor}
}

// Magnitude returns |a| in m/s².
func (a Acceleration) Magnitude() float64 {
	return math.Sqrt(a.DDX*a.DDX + a.DDY*a.DDY)
}

// IsZero reports whether both components are exactly zero.
func (a Acceleration) IsZero() bool {
	return a.DDX == 0 && a.DDY == 0
}

// Equals compares component-wise within Epsilon.
func (a Acceleration) Equals(b Acceleration) bool {
	return math.Abs(a.DDX-b.DDX) < Epsilon && math.Abs(a.DDY-b.DDY) < Epsilon
}
