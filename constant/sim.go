package constant

// Simulation tuning
const (
	TimeStep     = 0.5   // simulated seconds per tick
	HitTolerance = 175.0 // meters from target center that counts as a hit
	TrailLength  = 20    // rendered trail samples behind the shell

	RotateStep = 0.05  // radians per rotate input
	RaiseStep  = 0.003 // radians per raise/lower input
)

// Field dimensions in meters. The M777 tops out around 24 km of range,
// so the field spans a little beyond that.
const (
	FieldWidth  = 25000.0
	FieldHeight = 12000.0
)
