package projectile

import (
	"math"
	"testing"

	"howitzer/constant"
	"howitzer/vmath"
)

// launch fires a shell so its initial sample is exactly {pos, vel, t}.
func launch(t *testing.T, vel vmath.Velocity, pos vmath.Position, at float64) *Projectile {
	t.Helper()
	p := New()
	if err := p.Fire(pos, vel.Angle(), vel.Speed(), at); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	return p
}

func near(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestFireRecordsSingleSample(t *testing.T) {
	p := New()
	if err := p.Fire(vmath.Position{X: 111, Y: 222}, vmath.NewAngle(0), 100, 1); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if !p.IsFlying() {
		t.Fatal("fired shell should be flying")
	}
	if got := p.Trajectory().Len(); got != 1 {
		t.Fatalf("trajectory length = %d, want 1", got)
	}
	s, _ := p.Trajectory().Last()
	if !s.Pos.Equals(vmath.Position{X: 111, Y: 222}) {
		t.Errorf("launch position = %+v", s.Pos)
	}
	if !s.Vel.Equals(vmath.Velocity{DX: 0, DY: 100}) {
		t.Errorf("launch velocity = %+v, want (0, 100)", s.Vel)
	}
	if s.T != 1 {
		t.Errorf("launch time = %v, want 1", s.T)
	}
}

func TestFireRejectsInvalidParameters(t *testing.T) {
	p := New()
	if err := p.Fire(vmath.Position{}, vmath.NewAngle(0), -1, 0); err != ErrInvalidParameter {
		t.Errorf("negative muzzle velocity: err = %v", err)
	}
	if err := p.Fire(vmath.Position{}, vmath.NewAngle(0), 100, -1); err != ErrInvalidParameter {
		t.Errorf("negative launch time: err = %v", err)
	}
	if p.IsFlying() {
		t.Error("rejected fire should leave the shell idle")
	}
}

func TestFireDiscardsPriorFlight(t *testing.T) {
	p := launch(t, vmath.Velocity{DX: 50}, vmath.Position{Y: 500}, 0)
	p.Advance(1)
	p.Advance(2)
	if p.Trajectory().Len() != 3 {
		t.Fatalf("setup: trajectory length = %d", p.Trajectory().Len())
	}

	if err := p.Fire(vmath.Position{Y: 500}, vmath.NewAngle(0), 100, 0); err != nil {
		t.Fatalf("refire: %v", err)
	}
	if got := p.Trajectory().Len(); got != 1 {
		t.Errorf("refire trajectory length = %d, want 1", got)
	}
}

// The four reference integration scenarios: one 1-second step at low
// altitude where gravity interpolates to 9.8064.

func TestAdvanceStationaryFall(t *testing.T) {
	p := launch(t, vmath.Velocity{}, vmath.Position{X: 100, Y: 200}, 100)
	p.Advance(101)

	pos, vel := p.Position(), p.Velocity()
	if !near(pos.X, 100, 1e-9) || !near(pos.Y, 195.0968, 1e-4) {
		t.Errorf("position = %+v, want (100, 195.0968)", pos)
	}
	if !near(vel.DX, 0, 1e-9) || !near(vel.DY, -9.8064, 1e-4) {
		t.Errorf("velocity = %+v, want (0, -9.8064)", vel)
	}
	if s, _ := p.Trajectory().Last(); s.T != 101 {
		t.Errorf("sample time = %v, want 101", s.T)
	}
}

func TestAdvanceHorizontal(t *testing.T) {
	p := launch(t, vmath.Velocity{DX: 50}, vmath.Position{X: 100, Y: 200}, 100)
	p.Advance(101)

	pos, vel := p.Position(), p.Velocity()
	if !near(pos.X, 149.9756, 1e-3) || !near(pos.Y, 195.0968, 1e-3) {
		t.Errorf("position = %+v, want (149.9756, 195.0968)", pos)
	}
	if !near(vel.DX, 49.9513, 1e-3) || !near(vel.DY, -9.8064, 1e-3) {
		t.Errorf("velocity = %+v, want (49.9513, -9.8064)", vel)
	}
}

func TestAdvanceStraightUp(t *testing.T) {
	p := launch(t, vmath.Velocity{DY: 100}, vmath.Position{X: 100, Y: 200}, 100)
	p.Advance(101)

	pos, vel := p.Position(), p.Velocity()
	if !near(pos.X, 100, 1e-9) || !near(pos.Y, 294.9021, 1e-3) {
		t.Errorf("position = %+v, want (100, 294.9021)", pos)
	}
	if !near(vel.DY, 89.8042, 1e-3) {
		t.Errorf("velocity = %+v, want dy 89.8042", vel)
	}
}

func TestAdvanceDiagonal(t *testing.T) {
	p := launch(t, vmath.Velocity{DX: 50, DY: 40}, vmath.Position{X: 100, Y: 200}, 100)
	p.Advance(101)

	pos, vel := p.Position(), p.Velocity()
	if !near(pos.X, 149.9600, 1e-3) || !near(pos.Y, 235.0648, 1e-3) {
		t.Errorf("position = %+v, want (149.9600, 235.0648)", pos)
	}
	if !near(vel.DX, 49.9201, 1e-3) || !near(vel.DY, 30.1297, 1e-3) {
		t.Errorf("velocity = %+v, want (49.9201, 30.1297)", vel)
	}
}

func TestAdvanceZeroSpeedHasNoDrag(t *testing.T) {
	p := launch(t, vmath.Velocity{}, vmath.Position{Y: 1000}, 0)
	if got := p.dragAcceleration(Sample{Pos: vmath.Position{Y: 1000}}); !got.IsZero() {
		t.Errorf("drag at rest = %+v, want zero", got)
	}
	// Only gravity applies: dx must stay exactly zero
	p.Advance(1)
	if vel := p.Velocity(); vel.DX != 0 {
		t.Errorf("stationary fall picked up horizontal velocity: %+v", vel)
	}
}

func TestAdvanceGuards(t *testing.T) {
	idle := New()
	idle.Advance(10)
	if idle.Trajectory().Len() != 0 {
		t.Error("Advance on an idle shell should be a no-op")
	}

	p := launch(t, vmath.Velocity{DX: 50}, vmath.Position{Y: 500}, 5)
	for _, simTime := range []float64{5, 4, 0} {
		p.Advance(simTime)
		if got := p.Trajectory().Len(); got != 1 {
			t.Errorf("Advance(%v) grew the trajectory to %d samples", simTime, got)
		}
	}
}

func TestTrajectoryTimestampsStrictlyIncrease(t *testing.T) {
	p := launch(t, vmath.Velocity{DX: 200, DY: 300}, vmath.Position{Y: 0}, 0)
	for i := 1; i <= 40 && p.IsFlying(); i++ {
		p.Advance(float64(i) * 0.5)
	}
	tr := p.Trajectory()
	for i := 1; i < tr.Len(); i++ {
		if tr.At(i).T <= tr.At(i-1).T {
			t.Fatalf("timestamps not strictly increasing at %d: %v then %v", i, tr.At(i-1).T, tr.At(i).T)
		}
	}
}

func TestGroundImpactDeactivates(t *testing.T) {
	// Thrown down from low altitude; one step buries it
	p := launch(t, vmath.Velocity{DY: -100}, vmath.Position{Y: 10}, 0)
	p.Advance(1)

	if p.IsFlying() {
		t.Fatal("shell below ground should be idle")
	}
	if p.Position().Y >= 0 {
		t.Fatalf("expected sub-ground sample, got y = %v", p.Position().Y)
	}
	// Impact is terminal until refire: further advances are no-ops
	n := p.Trajectory().Len()
	p.Advance(2)
	if p.Trajectory().Len() != n {
		t.Error("Advance after impact should be a no-op")
	}
	// Altitude accessor floors at zero even with a sub-ground sample
	if p.Altitude() != 0 {
		t.Errorf("Altitude = %v, want 0", p.Altitude())
	}
}

func TestFlightStats(t *testing.T) {
	p := launch(t, vmath.Velocity{DX: 30, DY: 50}, vmath.Position{X: 1000, Y: 0}, 2)
	for i := 1; i <= 30 && p.IsFlying(); i++ {
		p.Advance(2 + float64(i)*0.5)
	}

	if p.IsFlying() {
		t.Fatal("shell should have landed")
	}
	if got := p.FlightTime(); got <= 0 {
		t.Errorf("FlightTime = %v, want > 0", got)
	}
	if got := p.MaxAltitude(); got <= 0 {
		t.Errorf("MaxAltitude = %v, want > 0", got)
	}
	first, _ := p.Trajectory().First()
	last, _ := p.Trajectory().Last()
	if got := p.TotalDistance(); !near(got, math.Abs(last.Pos.X-first.Pos.X), 1e-12) {
		t.Errorf("TotalDistance = %v", got)
	}
}

func TestStatsOnEmptyTrajectory(t *testing.T) {
	p := New()
	if p.FlightTime() != 0 || p.MaxAltitude() != 0 || p.TotalDistance() != 0 {
		t.Error("aggregate stats should be zero before firing")
	}
	if !p.Position().IsOrigin() || !p.Velocity().IsZero() {
		t.Error("position/velocity should be zero-valued before firing")
	}
	if p.Altitude() != 0 || p.Speed() != 0 {
		t.Error("altitude/speed should be zero before firing")
	}
}

func TestReset(t *testing.T) {
	p, err := NewWithSpec(100, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Fire(vmath.Position{Y: 100}, vmath.NewAngle(0), 50, 0); err != nil {
		t.Fatal(err)
	}
	p.Advance(1)

	p.Reset()
	if p.IsFlying() {
		t.Error("reset shell should be idle")
	}
	if p.Trajectory().Len() != 0 {
		t.Error("reset should clear the trajectory")
	}
	if p.Mass() != constant.DefaultProjectileMass || p.Radius() != constant.DefaultProjectileRadius {
		t.Errorf("reset should restore M795 defaults, got mass %v radius %v", p.Mass(), p.Radius())
	}
}

func TestSpecSetters(t *testing.T) {
	p := New()
	if err := p.SetMass(0); err != ErrInvalidParameter {
		t.Errorf("SetMass(0) err = %v", err)
	}
	if err := p.SetRadius(-0.1); err != ErrInvalidParameter {
		t.Errorf("SetRadius(-0.1) err = %v", err)
	}
	if p.Mass() != constant.DefaultProjectileMass {
		t.Error("rejected setter must not change mass")
	}
	if err := p.SetMass(50); err != nil || p.Mass() != 50 {
		t.Errorf("SetMass(50): err = %v, mass = %v", err, p.Mass())
	}
	if _, err := NewWithSpec(-1, 0.1); err != ErrInvalidParameter {
		t.Errorf("NewWithSpec(-1, ...) err = %v", err)
	}
}
