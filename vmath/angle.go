package vmath

import "math"

// AngleEpsilon is the tolerance for angle equality checks.
// Looser than the vector epsilon: angles go through trig round trips.
const AngleEpsilon = 1e-6

// Angle is a direction in radians, normalized to [0, 2π) on every write.
// Zero points straight up; positive rotation is clockwise, so
// Dx = sin θ and Dy = cos θ.
type Angle struct {
	radians float64
}

// NewAngle builds an angle from radians, normalizing into [0, 2π).
func NewAngle(radians float64) Angle {
	return Angle{radians: normalize(radians)}
}

// AngleFromDegrees builds an angle from degrees.
func AngleFromDegrees(degrees float64) Angle {
	return NewAngle(degrees * math.Pi / 180.0)
}

// AngleFromComponents builds the angle pointing along (dx, dy).
// The zero vector maps to straight up.
func AngleFromComponents(dx, dy float64) Angle {
	return NewAngle(math.Atan2(dx, dy))
}

// Radians returns the normalized value in [0, 2π).
func (a Angle) Radians() float64 { return a.radians }

// Degrees returns the normalized value in [0, 360).
func (a Angle) Degrees() float64 { return a.radians * 180.0 / math.Pi }

// Dx returns the horizontal component of the unit vector.
func (a Angle) Dx() float64 { return math.Sin(a.radians) }

// Dy returns the vertical component of the unit vector.
func (a Angle) Dy() float64 { return math.Cos(a.radians) }

// IsRight reports whether the angle points into the right half-plane.
func (a Angle) IsRight() bool { return a.radians > 0 && a.radians < math.Pi }

// IsLeft reports whether the angle points into the left half-plane.
func (a Angle) IsLeft() bool { return a.radians > math.Pi && a.radians < 2*math.Pi }

// Add returns the angle rotated by delta radians, normalized.
func (a Angle) Add(delta float64) Angle {
	return NewAngle(a.radians + delta)
}

// Opposite returns the angle rotated by half a turn.
func (a Angle) Opposite() Angle {
	return NewAngle(a.radians + math.Pi)
}

// ShortestRotationTo returns the smallest signed rotation from a to
// target, wrapped into [-π, π]. Positive means clockwise.
func (a Angle) ShortestRotationTo(target Angle) float64 {
	diff := target.radians - a.radians
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

// IsClockwiseTo reports whether the shortest rotation to target is
// clockwise. An exact half-turn counts as clockwise.
func (a Angle) IsClockwiseTo(target Angle) bool {
	return a.ShortestRotationTo(target) >= 0
}

// Equals compares two angles within AngleEpsilon, treating values near
// 0 and 2π as equal.
func (a Angle) Equals(b Angle) bool {
	diff := math.Abs(a.ShortestRotationTo(b))
	return diff < AngleEpsilon
}

// normalize wraps radians into [0, 2π). Idempotent for in-range input.
func normalize(radians float64) float64 {
	r := math.Mod(radians, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	// Mod can return 2π for inputs just below a multiple of 2π
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}
