// Package howitzer models the M777 firing platform: barrel elevation
// within its operational limits, muzzle velocity, and the firing
// parameters handed to the projectile.
package howitzer

import (
	"errors"
	"math"
	"math/rand"

	"howitzer/constant"
	"howitzer/vmath"
)

// ErrUnreachable reports a requested range beyond what the current
// muzzle velocity can cover.
var ErrUnreachable = errors.New("howitzer: target range unreachable at current muzzle velocity")

// Howitzer is an M777 155mm gun. Elevation is measured from vertical
// (0° = straight up) and clamped to [MinElevationDeg, MaxElevationDeg];
// any attempt to move past a bound lands exactly on the bound.
type Howitzer struct {
	position       vmath.Position
	muzzleVelocity float64 // m/s
	elevation      vmath.Angle
	lastFireTime   float64
	roundsFired    int
}

// New returns a howitzer with the default M777 specification.
func New() *Howitzer {
	return &Howitzer{
		muzzleVelocity: constant.DefaultMuzzleVelocity,
		elevation:      vmath.AngleFromDegrees(constant.DefaultElevationDeg),
		lastFireTime:   -1,
	}
}

// Position returns the gun emplacement.
func (h *Howitzer) Position() vmath.Position { return h.position }

// SetPosition moves the gun.
func (h *Howitzer) SetPosition(pos vmath.Position) { h.position = pos }

// GeneratePosition places the gun at ground level somewhere in the
// middle 80% of a field fieldWidth meters across.
func (h *Howitzer) GeneratePosition(fieldWidth float64, rng *rand.Rand) {
	x := fieldWidth*0.1 + rng.Float64()*fieldWidth*0.8
	h.position = vmath.Position{X: x}
}

// MuzzleVelocity returns the muzzle velocity in m/s.
func (h *Howitzer) MuzzleVelocity() float64 { return h.muzzleVelocity }

// SetMuzzleVelocity updates the muzzle velocity; non-positive values
// are ignored.
func (h *Howitzer) SetMuzzleVelocity(velocity float64) {
	if velocity > 0 {
		h.muzzleVelocity = velocity
	}
}

// Elevation returns the barrel angle.
func (h *Howitzer) Elevation() vmath.Angle { return h.elevation }

// SetElevation sets the barrel angle, clamped into the operational
// range.
func (h *Howitzer) SetElevation(angle vmath.Angle) {
	h.elevation = clampElevation(angle.Degrees())
}

// SetElevationDegrees sets the barrel angle in degrees from vertical,
// clamped into the operational range.
func (h *Howitzer) SetElevationDegrees(degrees float64) {
	h.elevation = clampElevation(degrees)
}

// Rotate adds a signed delta in radians to the elevation, clamping at
// the limits rather than wrapping.
func (h *Howitzer) Rotate(radians float64) {
	h.elevation = clampElevation(h.elevation.Degrees() + radians*180.0/math.Pi)
}

// Raise is the fine elevation control: the same clamped delta as
// Rotate, driven by a smaller input step.
func (h *Howitzer) Raise(radians float64) {
	h.Rotate(radians)
}

// SetMaxElevation pins the barrel at the upper limit.
func (h *Howitzer) SetMaxElevation() {
	h.elevation = vmath.AngleFromDegrees(constant.MaxElevationDeg)
}

// SetMinElevation pins the barrel straight up.
func (h *Howitzer) SetMinElevation() {
	h.elevation = vmath.AngleFromDegrees(constant.MinElevationDeg)
}

// CanFire reports whether the gun can produce a round.
func (h *Howitzer) CanFire() bool { return h.muzzleVelocity > 0 }

// BarrelLength returns the M777 barrel length in meters.
func (h *Howitzer) BarrelLength() float64 { return constant.BarrelLength }

// MuzzlePosition returns the barrel tip, offset from the emplacement
// along the elevation angle.
func (h *Howitzer) MuzzlePosition() vmath.Position {
	return vmath.Position{
		X: h.position.X + constant.BarrelLength*h.elevation.Dx(),
		Y: h.position.Y + constant.BarrelLength*h.elevation.Dy(),
	}
}

// MuzzleVector returns the initial velocity a round leaves the barrel
// with.
func (h *Howitzer) MuzzleVector() vmath.Velocity {
	return vmath.VelocityFromAngle(h.elevation, h.muzzleVelocity)
}

// RecordFiring notes a round leaving the gun at currentTime.
func (h *Howitzer) RecordFiring(currentTime float64) {
	h.lastFireTime = currentTime
	h.roundsFired++
}

// RoundsFired returns the number of rounds fired since reset.
func (h *Howitzer) RoundsFired() int { return h.roundsFired }

// LastFireTime returns the time of the last shot, or -1 before any.
func (h *Howitzer) LastFireTime() float64 { return h.lastFireTime }

// EstimateRange returns the vacuum-ballistics range on flat ground at
// the current elevation and muzzle velocity. Drag makes the real range
// shorter; this is a gunnery first guess, not the integrated answer.
func (h *Howitzer) EstimateRange() float64 {
	// Elevation is from vertical, so sin(2·(π/2−e)) = sin(2e)
	e := h.elevation.Radians()
	return h.muzzleVelocity * h.muzzleVelocity * math.Sin(2*e) / physicsGravity
}

// AngleForRange returns the steeper of the two elevations that cover
// range r in vacuum at the current muzzle velocity, clamped into the
// operational limits.
func (h *Howitzer) AngleForRange(r float64) (vmath.Angle, error) {
	sin2e := r * physicsGravity / (h.muzzleVelocity * h.muzzleVelocity)
	if sin2e > 1 {
		return vmath.Angle{}, ErrUnreachable
	}
	e := 0.5 * math.Asin(sin2e)
	return clampElevation(e * 180.0 / math.Pi), nil
}

// Reset restores the default M777 state.
func (h *Howitzer) Reset() {
	h.muzzleVelocity = constant.DefaultMuzzleVelocity
	h.elevation = vmath.AngleFromDegrees(constant.DefaultElevationDeg)
	h.lastFireTime = -1
	h.roundsFired = 0
}

// physicsGravity is sea-level gravity used by the closed-form range
// estimates only; the integrator looks gravity up per step.
const physicsGravity = 9.807

func clampElevation(degrees float64) vmath.Angle {
	if degrees < constant.MinElevationDeg {
		degrees = constant.MinElevationDeg
	}
	if degrees > constant.MaxElevationDeg {
		degrees = constant.MaxElevationDeg
	}
	return vmath.AngleFromDegrees(degrees)
}
