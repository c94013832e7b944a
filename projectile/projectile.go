// Package projectile owns the kinetic state machine of a fired shell.
// A projectile is idle until fired, appends one trajectory sample per
// advance, and goes idle again on ground impact or reset.
package projectile

import (
	"errors"
	"math"

	"howitzer/constant"
	"howitzer/physics"
	"howitzer/vmath"
)

// ErrInvalidParameter reports firing or specification values that make
// no physical sense (negative muzzle velocity or launch time,
// non-positive mass or radius).
var ErrInvalidParameter = errors.New("projectile: invalid parameter")

// Projectile is an artillery shell with M795 defaults. The zero state
// is idle with an empty trajectory.
type Projectile struct {
	mass       float64 // kg
	radius     float64 // m
	active     bool
	trajectory Trajectory
}

// New returns an idle projectile with the default M795 specification.
func New() *Projectile {
	return &Projectile{
		mass:   constant.DefaultProjectileMass,
		radius: constant.DefaultProjectileRadius,
	}
}

// NewWithSpec returns an idle projectile with a custom mass (kg) and
// radius (m); both must be positive.
func NewWithSpec(mass, radius float64) (*Projectile, error) {
	if mass <= 0 || radius <= 0 {
		return nil, ErrInvalidParameter
	}
	return &Projectile{mass: mass, radius: radius}, nil
}

// Fire launches the shell from pos along angle at muzzleVelocity (m/s),
// recording the launch sample at time t. Any previous flight history is
// discarded.
func (p *Projectile) Fire(pos vmath.Position, angle vmath.Angle, muzzleVelocity, t float64) error {
	if muzzleVelocity < 0 || t < 0 {
		return ErrInvalidParameter
	}
	p.trajectory.clear()
	p.trajectory.append(Sample{
		Pos: pos,
		Vel: vmath.VelocityFromAngle(angle, muzzleVelocity),
		T:   t,
	})
	p.active = true
	return nil
}

// Advance integrates one step to simTime. It is a no-op while idle or
// when simTime does not strictly advance past the last sample.
//
// The step uses a single acceleration evaluated at the start of the
// step (first-order Euler); callers drive it with a fixed small step
// and there is no internal substepping.
func (p *Projectile) Advance(simTime float64) {
	last, ok := p.trajectory.Last()
	if !p.active || !ok {
		return
	}
	dt := simTime - last.T
	if dt <= 0 {
		return
	}

	accel := p.totalAcceleration(last)
	next := Sample{
		Pos: last.Pos.Advance(last.Vel, accel, dt),
		Vel: last.Vel.Advance(accel, dt),
		T:   simTime,
	}
	p.trajectory.append(next)

	if next.Pos.Y < 0 {
		p.active = false
	}
}

// Reset restores the M795 defaults, clears the trajectory and goes
// idle.
func (p *Projectile) Reset() {
	p.mass = constant.DefaultProjectileMass
	p.radius = constant.DefaultProjectileRadius
	p.active = false
	p.trajectory.clear()
}

// totalAcceleration combines gravity (straight down, by altitude) with
// drag (opposite the velocity) at the given sample.
func (p *Projectile) totalAcceleration(s Sample) vmath.Acceleration {
	altitude := math.Max(0, s.Pos.Y)
	gravity := vmath.Acceleration{DDY: -physics.GravityFromAltitude(altitude)}
	return gravity.Add(p.dragAcceleration(s))
}

// dragAcceleration returns the drag term. A shell at rest produces
// exactly zero drag; this is the designed fallback, not an error.
func (p *Projectile) dragAcceleration(s Sample) vmath.Acceleration {
	speed := s.Vel.Speed()
	if speed == 0 {
		return vmath.Acceleration{}
	}

	altitude := math.Max(0, s.Pos.Y)
	density := physics.DensityFromAltitude(altitude)
	mach := physics.MachFromSpeed(speed, altitude)
	drag := physics.DragFromMach(mach)

	force := physics.ForceFromDrag(density, drag, p.radius, speed)
	magnitude, err := physics.AccelerationFromForce(force, p.mass)
	if err != nil {
		// Mass positivity is an invariant of the constructors/setters
		return vmath.Acceleration{}
	}

	// Opposite the velocity unit vector: drag only ever decelerates
	return vmath.Acceleration{
		DDX: -magnitude * s.Vel.DX / speed,
		DDY: -magnitude * s.Vel.DY / speed,
	}
}

// IsFlying reports whether the shell is in flight.
func (p *Projectile) IsFlying() bool {
	return p.active && p.trajectory.Len() > 0
}

// Position returns the latest position, or the origin when idle with no
// history.
func (p *Projectile) Position() vmath.Position {
	if s, ok := p.trajectory.Last(); ok {
		return s.Pos
	}
	return vmath.Position{}
}

// Velocity returns the latest velocity, or zero when there is no
// history.
func (p *Projectile) Velocity() vmath.Velocity {
	if s, ok := p.trajectory.Last(); ok {
		return s.Vel
	}
	return vmath.Velocity{}
}

// Altitude returns the latest altitude clamped to >= 0.
func (p *Projectile) Altitude() float64 {
	if s, ok := p.trajectory.Last(); ok {
		return math.Max(0, s.Pos.Y)
	}
	return 0
}

// Speed returns the latest speed in m/s.
func (p *Projectile) Speed() float64 {
	if s, ok := p.trajectory.Last(); ok {
		return s.Vel.Speed()
	}
	return 0
}

// FlightTime returns the elapsed time between the launch sample and the
// latest sample; zero with fewer than two samples.
func (p *Projectile) FlightTime() float64 {
	if p.trajectory.Len() < 2 {
		return 0
	}
	first, _ := p.trajectory.First()
	last, _ := p.trajectory.Last()
	return last.T - first.T
}

// MaxAltitude returns the highest altitude reached this flight, floored
// at zero.
func (p *Projectile) MaxAltitude() float64 {
	maxAlt := 0.0
	for i := 0; i < p.trajectory.Len(); i++ {
		maxAlt = math.Max(maxAlt, p.trajectory.At(i).Pos.Y)
	}
	return maxAlt
}

// TotalDistance returns the absolute horizontal distance between launch
// and the latest sample; zero with fewer than two samples.
func (p *Projectile) TotalDistance() float64 {
	if p.trajectory.Len() < 2 {
		return 0
	}
	first, _ := p.trajectory.First()
	last, _ := p.trajectory.Last()
	return math.Abs(last.Pos.X - first.Pos.X)
}

// Trajectory exposes the flight history for rendering and analysis.
func (p *Projectile) Trajectory() *Trajectory { return &p.trajectory }

// Mass returns the shell mass in kg.
func (p *Projectile) Mass() float64 { return p.mass }

// Radius returns the shell radius in meters.
func (p *Projectile) Radius() float64 { return p.radius }

// SetMass updates the mass; non-positive values are rejected.
func (p *Projectile) SetMass(mass float64) error {
	if mass <= 0 {
		return ErrInvalidParameter
	}
	p.mass = mass
	return nil
}

// SetRadius updates the radius; non-positive values are rejected.
func (p *Projectile) SetRadius(radius float64) error {
	if radius <= 0 {
		return ErrInvalidParameter
	}
	p.radius = radius
	return nil
}
