// Command trajectory prints an integrated flight table for one shot
// without the terminal UI. Useful for checking firing solutions and for
// eyeballing the drag model.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"howitzer/constant"
	"howitzer/physics"
	"howitzer/projectile"
	"howitzer/vmath"
)

func main() {
	angleDeg := flag.Float64("angle", 45.0, "elevation in degrees from vertical")
	velocity := flag.Float64("velocity", constant.DefaultMuzzleVelocity, "muzzle velocity in m/s")
	step := flag.Float64("step", constant.TimeStep, "integration step in seconds")
	maxTime := flag.Float64("max-time", 300.0, "give up after this many simulated seconds")
	flag.Parse()

	shell := projectile.New()
	angle := vmath.AngleFromDegrees(*angleDeg)
	if err := shell.Fire(vmath.Position{}, angle, *velocity, 0); err != nil {
		fmt.Fprintf(os.Stderr, "fire: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "t (s)\tx (m)\ty (m)\tspeed (m/s)\tmach\t")

	for t := 0.0; shell.IsFlying() && t < *maxTime; {
		t += *step
		shell.Advance(t)
		pos := shell.Position()
		speed := shell.Speed()
		mach := physics.MachFromSpeed(speed, shell.Altitude())
		fmt.Fprintf(w, "%.1f\t%.1f\t%.1f\t%.1f\t%.2f\t\n", t, pos.X, pos.Y, speed, mach)
	}
	w.Flush()

	fmt.Printf("\nrange %.1f m, apex %.1f m, flight time %.1f s\n",
		shell.TotalDistance(), shell.MaxAltitude(), shell.FlightTime())
}
