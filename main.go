package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"howitzer/audio"
	"howitzer/config"
	"howitzer/constant"
	"howitzer/howitzer"
	"howitzer/input"
	"howitzer/logging"
	"howitzer/render"
	"howitzer/sim"
	"howitzer/terrain"
)

// Game wires the screen, the simulator and the cue engine together and
// owns the main loop.
type Game struct {
	screen    tcell.Screen
	simulator *sim.Simulator
	renderer  *render.Renderer
	sound     *audio.Engine
	log       zerolog.Logger
}

// NewGame builds the whole stack from configuration.
func NewGame(log zerolog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	seed := config.GetInt64("terrain.seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	fieldW := config.GetFloat64("sim.fieldWidth")
	fieldH := config.GetFloat64("sim.fieldHeight")

	gun := howitzer.New()
	gun.SetMuzzleVelocity(config.GetFloat64("howitzer.muzzleVelocity"))
	gun.SetElevationDegrees(config.GetFloat64("howitzer.elevationDeg"))
	gun.GeneratePosition(fieldW, rng)

	pos := gun.Position()
	ground := terrain.New(fieldW, fieldH, rng, &pos)
	gun.SetPosition(pos)

	simCfg := sim.Config{
		TimeStep:     config.GetFloat64("sim.timeStep"),
		HitTolerance: config.GetFloat64("sim.hitTolerance"),
		FieldWidth:   fieldW,
	}

	sound, err := audio.NewEngine(config.GetBool("audio.enabled"))
	if err != nil {
		// Non-fatal, the game runs silent
		log.Warn().Err(err).Msg("audio initialization failed")
	}

	return &Game{
		screen:    screen,
		simulator: sim.New(simCfg, gun, ground, rng, log),
		renderer:  render.New(screen, fieldW, fieldH),
		sound:     sound,
		log:       log,
	}, nil
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := input.IntentFor(ev)
		if intent == sim.IntentQuit {
			return false
		}
		wasFiring := g.simulator.IsFiring()
		g.simulator.Apply(intent)
		if intent == sim.IntentFire && !wasFiring && g.simulator.IsFiring() {
			g.sound.Fire()
		}
	case *tcell.EventResize:
		g.renderer.Resize()
		g.screen.Sync()
	}
	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(constant.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			wasFiring := g.simulator.IsFiring()
			g.simulator.Update()
			if wasFiring && !g.simulator.IsFiring() {
				if g.simulator.Stats().Hit {
					g.sound.Hit()
				} else {
					g.sound.Impact()
				}
			}
			g.renderer.RenderFrame(g.simulator)
		}
	}
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.Setup(config.GetString("log.dir"), config.GetString("log.level"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer func(c io.Closer) { _ = c.Close() }(closer)

	game, err := NewGame(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	log.Info().Msg("session start")
	game.run()
	log.Info().Msg("session end")
}
