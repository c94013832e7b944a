package projectile

import "howitzer/vmath"

// Sample is one moment in the flight of a shell: where it was, how fast
// it was going, and when. Samples are immutable snapshots.
type Sample struct {
	Pos vmath.Position
	Vel vmath.Velocity
	T   float64
}

// Trajectory is the append-only flight history of a single shot.
// Timestamps are strictly increasing; samples are never mutated or
// removed except by a full clear.
type Trajectory struct {
	samples []Sample
}

// Len returns the number of recorded samples.
func (tr *Trajectory) Len() int { return len(tr.samples) }

// At returns the i-th sample.
func (tr *Trajectory) At(i int) Sample { return tr.samples[i] }

// First returns the launch sample, or false if the trajectory is empty.
func (tr *Trajectory) First() (Sample, bool) {
	if len(tr.samples) == 0 {
		return Sample{}, false
	}
	return tr.samples[0], true
}

// Last returns the most recent sample, or false if empty.
func (tr *Trajectory) Last() (Sample, bool) {
	if len(tr.samples) == 0 {
		return Sample{}, false
	}
	return tr.samples[len(tr.samples)-1], true
}

// Samples returns a copy of the flight history for rendering and
// analysis. Callers cannot mutate the trajectory through it.
func (tr *Trajectory) Samples() []Sample {
	out := make([]Sample, len(tr.samples))
	copy(out, tr.samples)
	return out
}

func (tr *Trajectory) append(s Sample) {
	tr.samples = append(tr.samples, s)
}

func (tr *Trajectory) clear() {
	tr.samples = tr.samples[:0]
}
