package physics

import (
	"math"
	"testing"
)

func TestAreaFromRadius(t *testing.T) {
	if got := AreaFromRadius(1); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("AreaFromRadius(1) = %v, want π", got)
	}
	if got := AreaFromRadius(0); got != 0 {
		t.Errorf("AreaFromRadius(0) = %v, want 0", got)
	}
}

func TestForceFromDrag(t *testing.T) {
	// ½ · 1.225 · 0.3 · π·0.1² · 100²
	want := 0.5 * 1.225 * 0.3 * math.Pi * 0.01 * 10000
	if got := ForceFromDrag(1.225, 0.3, 0.1, 100); math.Abs(got-want) > 1e-9 {
		t.Errorf("ForceFromDrag = %v, want %v", got, want)
	}
	if got := ForceFromDrag(1.225, 0.3, 0.1, 0); got != 0 {
		t.Errorf("zero speed drag force = %v, want 0", got)
	}
}

func TestAccelerationFromForce(t *testing.T) {
	got, err := AccelerationFromForce(93.4, 46.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("AccelerationFromForce = %v, want 2.0", got)
	}

	for _, mass := range []float64{0, -1} {
		if _, err := AccelerationFromForce(10, mass); err != ErrInvalidParameter {
			t.Errorf("mass %v: error = %v, want ErrInvalidParameter", mass, err)
		}
	}
}

func TestMachFromSpeed(t *testing.T) {
	// 340 m/s at sea level is Mach 1
	if got := MachFromSpeed(340, 0); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("MachFromSpeed(340, 0) = %v, want 1.0", got)
	}
	if got := MachFromSpeed(50, 200); math.Abs(got-50/339.2) > 1e-12 {
		t.Errorf("MachFromSpeed(50, 200) = %v, want %v", got, 50/339.2)
	}
}
