package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"howitzer/constant"
	"howitzer/howitzer"
	"howitzer/vmath"
)

// flatGround is a test double: sea-level plain with a fixed target.
type flatGround struct {
	target vmath.Position
	resets int
}

func (g *flatGround) ElevationAt(x float64) float64 { return 0 }

func (g *flatGround) Target() vmath.Position { return g.target }

func (g *flatGround) Reset(howitzerPos *vmath.Position) {
	g.resets++
	howitzerPos.Y = 0
	g.target = vmath.Position{X: howitzerPos.X + 10000}
}

func newTestSim(target vmath.Position) (*Simulator, *flatGround, *howitzer.Howitzer) {
	gun := howitzer.New()
	gun.SetPosition(vmath.Position{X: 5000})
	ground := &flatGround{target: target}
	s := New(DefaultConfig(), gun, ground, rand.New(rand.NewSource(1)), zerolog.Nop())
	return s, ground, gun
}

// runShot drives Update until the round lands, with a step cap so a
// broken integrator cannot hang the test.
func runShot(t *testing.T, s *Simulator) {
	t.Helper()
	for i := 0; i < 10000 && s.IsFiring(); i++ {
		s.Update()
	}
	if s.IsFiring() {
		t.Fatal("shot never landed")
	}
}

func TestFireIntentLaunchesOneRound(t *testing.T) {
	s, _, _ := newTestSim(vmath.Position{X: 20000})

	s.Apply(IntentFire)
	if !s.IsFiring() {
		t.Fatal("fire intent should launch")
	}
	stats := s.Stats()
	if stats.Shots != 1 {
		t.Errorf("shots = %d, want 1", stats.Shots)
	}

	// A second fire while in flight is ignored
	s.Apply(IntentFire)
	if got := s.Stats().Shots; got != 1 {
		t.Errorf("shots after refire attempt = %d, want 1", got)
	}
}

func TestUpdateAdvancesSimTime(t *testing.T) {
	s, _, _ := newTestSim(vmath.Position{X: 20000})

	s.Update()
	if got := s.Stats().Time; got != 0 {
		t.Errorf("idle update moved time to %v", got)
	}

	s.Apply(IntentFire)
	s.Update()
	if got := s.Stats().Time; got != constant.TimeStep {
		t.Errorf("time after one update = %v, want %v", got, constant.TimeStep)
	}
}

func TestMissLeavesTerrainAlone(t *testing.T) {
	// Target on the far side of the field; a straight-up shot misses
	s, ground, gun := newTestSim(vmath.Position{X: 20000})
	gun.SetMinElevation()

	s.Apply(IntentFire)
	runShot(t, s)

	stats := s.Stats()
	if stats.Hit {
		t.Error("vertical shot should not hit a target 15 km away")
	}
	if stats.Score != 0 || stats.Shots != 1 {
		t.Errorf("score/shots = %d/%d, want 0/1", stats.Score, stats.Shots)
	}
	if ground.resets != 0 {
		t.Error("miss must not regenerate terrain")
	}
	if s.Shell().IsFlying() {
		t.Error("shell should be reset after landing")
	}
	if len(s.Trail()) != 0 {
		t.Error("trail should be cleared after landing")
	}
}

func TestHitScoresAndRegenerates(t *testing.T) {
	// Firing straight up lands the round on the gun, so park the
	// target there
	s, ground, gun := newTestSim(vmath.Position{X: 5000})
	gun.SetMinElevation()

	s.Apply(IntentFire)
	runShot(t, s)

	stats := s.Stats()
	if !stats.Hit {
		t.Fatal("round landing on the target should score")
	}
	if stats.Score != 1 {
		t.Errorf("score = %d, want 1", stats.Score)
	}
	if ground.resets != 1 {
		t.Errorf("terrain resets = %d, want 1", ground.resets)
	}
	if s.HitRate() != 1 {
		t.Errorf("hit rate = %v, want 1", s.HitRate())
	}
	if stats.LastFlight <= 0 || stats.LastMaxAlt <= 0 {
		t.Errorf("landing diagnostics missing: %+v", stats)
	}
}

func TestRotateIntents(t *testing.T) {
	s, _, gun := newTestSim(vmath.Position{X: 20000})
	start := gun.Elevation().Degrees()

	s.Apply(IntentRotateRight)
	want := start + constant.RotateStep*180/math.Pi
	if got := gun.Elevation().Degrees(); math.Abs(got-want) > 1e-9 {
		t.Errorf("rotate right: %v°, want %v°", got, want)
	}

	s.Apply(IntentRaiseUp)
	want -= constant.RaiseStep * 180 / math.Pi
	if got := gun.Elevation().Degrees(); math.Abs(got-want) > 1e-9 {
		t.Errorf("raise up: %v°, want %v°", got, want)
	}
}

func TestTrailIsBoundedAndNewestFirst(t *testing.T) {
	s, _, _ := newTestSim(vmath.Position{X: 20000})
	s.Apply(IntentFire)

	for i := 0; i < constant.TrailLength*2 && s.IsFiring(); i++ {
		s.Update()
	}
	trail := s.Trail()
	if len(trail) > constant.TrailLength {
		t.Fatalf("trail length = %d, cap is %d", len(trail), constant.TrailLength)
	}
	if !trail[0].Equals(s.Shell().Position()) {
		t.Error("trail head should be the current shell position")
	}
}

func TestNewGameClearsSession(t *testing.T) {
	s, ground, _ := newTestSim(vmath.Position{X: 5000})
	s.Gun().SetMinElevation()
	s.Apply(IntentFire)
	runShot(t, s)

	s.Apply(IntentNewGame)
	stats := s.Stats()
	if stats.Score != 0 || stats.Shots != 0 || stats.Time != 0 {
		t.Errorf("new game stats = %+v", stats)
	}
	if ground.resets < 2 {
		t.Error("new game should regenerate terrain")
	}
	gunX := s.Gun().Position().X
	if gunX < constant.FieldWidth*0.1 || gunX > constant.FieldWidth*0.9 {
		t.Errorf("new game gun position %v outside field interior", gunX)
	}
}
