// Package physics models the forces acting on an artillery shell:
// altitude-dependent gravity, air density and speed of sound, and the
// Mach-dependent drag of the M795 projectile. All lookups are
// piecewise-linear interpolation over fixed empirical tables.
package physics

import (
	"errors"
	"math"
)

// ErrInvalidParameter reports a physically meaningless input such as a
// non-positive mass.
var ErrInvalidParameter = errors.New("physics: invalid physical parameter")

// AreaFromRadius returns the cross-sectional area π·r² of the shell.
func AreaFromRadius(radius float64) float64 {
	return math.Pi * radius * radius
}

// ForceFromDrag returns the drag force in newtons:
//
//	F = ½ · ρ · c · π·r² · v²
//
// where ρ is air density (kg/m³), c the drag coefficient, r the shell
// radius (m) and v the speed (m/s).
func ForceFromDrag(density, drag, radius, speed float64) float64 {
	return 0.5 * density * drag * AreaFromRadius(radius) * speed * speed
}

// AccelerationFromForce converts a force (N) acting on a mass (kg) into
// acceleration (m/s²). Mass must be positive.
func AccelerationFromForce(force, mass float64) (float64, error) {
	if mass <= 0 {
		return 0, ErrInvalidParameter
	}
	return force / mass, nil
}

// MachFromSpeed returns the Mach number for a speed (m/s) at the given
// altitude (m).
func MachFromSpeed(speed, altitude float64) float64 {
	return speed / SpeedSoundFromAltitude(altitude)
}
