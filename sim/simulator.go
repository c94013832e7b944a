// Package sim is the orchestrator: it drives the projectile state
// machine at a fixed simulated timestep, collides shells against the
// terrain, keeps score and regenerates the landscape after a hit.
package sim

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"howitzer/constant"
	"howitzer/howitzer"
	"howitzer/projectile"
	"howitzer/vmath"
)

// Ground is what the simulator needs from the terrain model.
// *terrain.Terrain implements it; tests substitute a flat fake.
type Ground interface {
	ElevationAt(x float64) float64
	Target() vmath.Position
	Reset(howitzerPos *vmath.Position)
}

// Config carries the tunables the orchestrator does not hard-code.
type Config struct {
	TimeStep     float64 // simulated seconds per Update
	HitTolerance float64 // meters from target that counts as a hit
	FieldWidth   float64
}

// DefaultConfig mirrors the constants the original game shipped with.
func DefaultConfig() Config {
	return Config{
		TimeStep:     constant.TimeStep,
		HitTolerance: constant.HitTolerance,
		FieldWidth:   constant.FieldWidth,
	}
}

// Stats is a read-only snapshot for the render layer.
type Stats struct {
	Time         float64
	ElevationDeg float64
	Score        int
	Shots        int
	Firing       bool
	Hit          bool
	LastRange    float64
	LastFlight   float64
	LastMaxAlt   float64
}

// Simulator owns the gun, the shell and the terrain, and serializes
// every mutation of the shell's trajectory: Advance is called exactly
// once per simulated instant, from Update.
type Simulator struct {
	cfg    Config
	gun    *howitzer.Howitzer
	shell  *projectile.Projectile
	ground Ground
	rng    *rand.Rand
	log    zerolog.Logger

	time   float64
	firing bool
	hit    bool
	score  int
	shots  int

	shotID     string
	lastRange  float64
	lastFlight float64
	lastMaxAlt float64

	trail []vmath.Position
}

// New wires a simulator around an already-generated ground. The gun is
// placed by the caller (typically via GeneratePosition + terrain reset).
func New(cfg Config, gun *howitzer.Howitzer, ground Ground, rng *rand.Rand, log zerolog.Logger) *Simulator {
	return &Simulator{
		cfg:    cfg,
		gun:    gun,
		shell:  projectile.New(),
		ground: ground,
		rng:    rng,
		log:    log,
		trail:  make([]vmath.Position, 0, constant.TrailLength),
	}
}

// Apply handles one player intent. IntentQuit is the caller's business;
// it is ignored here.
func (s *Simulator) Apply(intent Intent) {
	switch intent {
	case IntentRotateLeft:
		s.gun.Rotate(-constant.RotateStep)
	case IntentRotateRight:
		s.gun.Rotate(constant.RotateStep)
	case IntentRaiseUp:
		s.gun.Raise(-constant.RaiseStep)
	case IntentRaiseDown:
		s.gun.Raise(constant.RaiseStep)
	case IntentFire:
		s.fire()
	case IntentNewGame:
		s.NewGame()
	}
}

// fire launches a round unless one is already in the air.
func (s *Simulator) fire() {
	if s.firing || !s.gun.CanFire() {
		return
	}
	s.time = 0
	s.shots++
	s.shotID = uuid.NewString()

	if err := s.shell.Fire(s.gun.Position(), s.gun.Elevation(), s.gun.MuzzleVelocity(), s.time); err != nil {
		s.log.Error().Err(err).Str("shot_id", s.shotID).Msg("fire rejected")
		s.shots--
		return
	}
	s.gun.RecordFiring(s.time)
	s.firing = true
	s.hit = false

	s.log.Info().
		Str("shot_id", s.shotID).
		Float64("elevation_deg", s.gun.Elevation().Degrees()).
		Float64("muzzle_velocity", s.gun.MuzzleVelocity()).
		Float64("gun_x", s.gun.Position().X).
		Float64("target_x", s.ground.Target().X).
		Msg("shot fired")
}

// Update advances the simulation by one fixed timestep.
func (s *Simulator) Update() {
	if !s.firing {
		return
	}

	s.time += s.cfg.TimeStep
	s.shell.Advance(s.time)
	s.pushTrail(s.shell.Position())

	if !s.groundCollision() {
		return
	}

	// Shot is over: score it, log it, and ready the next round
	s.firing = false
	s.hit = s.targetHit()
	s.lastRange = s.shell.TotalDistance()
	s.lastFlight = s.shell.FlightTime()
	s.lastMaxAlt = s.shell.MaxAltitude()

	s.log.Info().
		Str("shot_id", s.shotID).
		Bool("hit", s.hit).
		Float64("range", s.lastRange).
		Float64("flight_time", s.lastFlight).
		Float64("max_altitude", s.lastMaxAlt).
		Msg("shot landed")

	if s.hit {
		s.score++
		pos := s.gun.Position()
		s.ground.Reset(&pos)
		s.gun.SetPosition(pos)
	}

	s.shell.Reset()
	s.trail = s.trail[:0]
}

// groundCollision reports whether the shell has met the terrain.
func (s *Simulator) groundCollision() bool {
	pos := s.shell.Position()
	return pos.Y <= s.ground.ElevationAt(pos.X)
}

// targetHit reports whether the shell came down within tolerance of the
// target.
func (s *Simulator) targetHit() bool {
	return s.shell.Position().DistanceTo(s.ground.Target()) < s.cfg.HitTolerance
}

// pushTrail keeps the most recent TrailLength positions, newest first.
func (s *Simulator) pushTrail(pos vmath.Position) {
	if len(s.trail) < constant.TrailLength {
		s.trail = append(s.trail, vmath.Position{})
	}
	copy(s.trail[1:], s.trail)
	s.trail[0] = pos
}

// NewGame resets score, shell and landscape for a fresh session.
func (s *Simulator) NewGame() {
	s.time = 0
	s.firing = false
	s.hit = false
	s.score = 0
	s.shots = 0
	s.shell.Reset()
	s.trail = s.trail[:0]

	s.gun.GeneratePosition(s.cfg.FieldWidth, s.rng)
	pos := s.gun.Position()
	s.ground.Reset(&pos)
	s.gun.SetPosition(pos)
	s.log.Info().Float64("gun_x", pos.X).Msg("new game")
}

// Stats returns the current snapshot for rendering.
func (s *Simulator) Stats() Stats {
	return Stats{
		Time:         s.time,
		ElevationDeg: s.gun.Elevation().Degrees(),
		Score:        s.score,
		Shots:        s.shots,
		Firing:       s.firing,
		Hit:          s.hit,
		LastRange:    s.lastRange,
		LastFlight:   s.lastFlight,
		LastMaxAlt:   s.lastMaxAlt,
	}
}

// HitRate returns hits per shot, zero before the first shot.
func (s *Simulator) HitRate() float64 {
	if s.shots == 0 {
		return 0
	}
	return float64(s.score) / float64(s.shots)
}

// Gun exposes the firing platform for rendering and input feedback.
func (s *Simulator) Gun() *howitzer.Howitzer { return s.gun }

// Shell exposes the projectile for trail rendering.
func (s *Simulator) Shell() *projectile.Projectile { return s.shell }

// Ground exposes the terrain model for rendering.
func (s *Simulator) Ground() Ground { return s.ground }

// Target returns the current target position.
func (s *Simulator) Target() vmath.Position { return s.ground.Target() }

// Trail returns the recent shell positions, newest first.
func (s *Simulator) Trail() []vmath.Position { return s.trail }

// IsFiring reports whether a round is in the air.
func (s *Simulator) IsFiring() bool { return s.firing }
