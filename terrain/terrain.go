// Package terrain holds the destructible-world half of the game: a
// procedural heightfield in meters, the target placed on it, and the
// elevation queries the orchestrator collides projectiles against.
package terrain

import (
	"math"
	"math/rand"

	"howitzer/vmath"
)

const (
	// columnSpacing is the heightfield resolution in meters.
	columnSpacing = 100.0

	// Terrain stays inside this band of the field height.
	minHeightFrac = 0.02
	maxHeightFrac = 0.35

	// flattenRadius levels the ground around the gun emplacement.
	flattenRadius = 300.0
)

// Terrain is a rolling heightfield with a single target on it.
// Generation is deterministic for a given *rand.Rand state.
type Terrain struct {
	width   float64 // field width in meters
	height  float64 // field height in meters, bounds the hills
	heights []float64
	target  vmath.Position
	rng     *rand.Rand
}

// New allocates a terrain for a field of the given size and generates
// an initial landscape with the gun at howitzerPos. The howitzer's Y is
// moved onto the ground.
func New(fieldWidth, fieldHeight float64, rng *rand.Rand, howitzerPos *vmath.Position) *Terrain {
	t := &Terrain{
		width:   fieldWidth,
		height:  fieldHeight,
		heights: make([]float64, int(fieldWidth/columnSpacing)+1),
		rng:     rng,
	}
	t.Reset(howitzerPos)
	return t
}

// Reset generates a fresh landscape and target, flattens the ground
// under the gun and snaps the gun onto it.
func (t *Terrain) Reset(howitzerPos *vmath.Position) {
	t.generate()
	t.flattenAround(howitzerPos.X)
	howitzerPos.Y = t.ElevationAt(howitzerPos.X)
	t.placeTarget(howitzerPos.X)
}

// generate walks a slope across the field, bounded to the terrain band.
func (t *Terrain) generate() {
	level := t.height * (minHeightFrac + t.rng.Float64()*(maxHeightFrac-minHeightFrac))
	slope := 0.0
	minH := t.height * minHeightFrac
	maxH := t.height * maxHeightFrac

	for i := range t.heights {
		t.heights[i] = level
		slope += (t.rng.Float64() - 0.5) * columnSpacing * 0.2
		// Keep hillsides walkable and inside the band
		slope = math.Max(-columnSpacing*0.5, math.Min(columnSpacing*0.5, slope))
		level += slope
		if level < minH {
			level = minH
			slope = 0
		}
		if level > maxH {
			level = maxH
			slope = 0
		}
	}

	t.smooth()
}

// smooth runs one box-filter pass so single-column spikes do not eat
// shells.
func (t *Terrain) smooth() {
	if len(t.heights) < 3 {
		return
	}
	prev := t.heights[0]
	for i := 1; i < len(t.heights)-1; i++ {
		cur := t.heights[i]
		t.heights[i] = (prev + cur + t.heights[i+1]) / 3.0
		prev = cur
	}
}

// flattenAround levels the ground in a radius around x to the local
// elevation, giving the gun a stable emplacement.
func (t *Terrain) flattenAround(x float64) {
	center := t.clampIndex(int(math.Round(x / columnSpacing)))
	level := t.heights[center]
	span := int(flattenRadius / columnSpacing)
	for i := center - span; i <= center+span; i++ {
		t.heights[t.clampIndex(i)] = level
	}
}

// placeTarget drops the target on the ground at least a quarter of the
// field away from the gun.
func (t *Terrain) placeTarget(gunX float64) {
	minDist := t.width / 4
	for {
		x := t.rng.Float64() * t.width
		if math.Abs(x-gunX) >= minDist {
			t.target = vmath.Position{X: x, Y: t.ElevationAt(x)}
			return
		}
	}
}

// ElevationAt returns the ground elevation in meters at horizontal
// position x, interpolating between columns. Queries outside the field
// clamp to the edge columns.
func (t *Terrain) ElevationAt(x float64) float64 {
	pos := x / columnSpacing
	i := t.clampIndex(int(math.Floor(pos)))
	j := t.clampIndex(i + 1)
	frac := pos - float64(i)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return t.heights[i] + (t.heights[j]-t.heights[i])*frac
}

// Target returns the target position on the ground.
func (t *Terrain) Target() vmath.Position { return t.target }

// Width returns the field width in meters.
func (t *Terrain) Width() float64 { return t.width }

func (t *Terrain) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(t.heights) {
		return len(t.heights) - 1
	}
	return i
}
