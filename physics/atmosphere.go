package physics

// Empirical standard-atmosphere tables, sea level through 80 km.
// Values are the published standard atmosphere figures used for the
// M795 firing solution; they are compiled in and not configurable.

// gravityTable maps altitude (m) to gravitational acceleration (m/s²).
var gravityTable = mustTable([]Mapping{
	{0.0, 9.807},
	{1000.0, 9.804},
	{2000.0, 9.801},
	{3000.0, 9.797},
	{4000.0, 9.794},
	{5000.0, 9.791},
	{6000.0, 9.788},
	{7000.0, 9.785},
	{8000.0, 9.782},
	{9000.0, 9.779},
	{10000.0, 9.776},
	{15000.0, 9.761},
	{20000.0, 9.745},
	{25000.0, 9.730},
	{30000.0, 9.715},
	{40000.0, 9.684},
	{50000.0, 9.654},
	{60000.0, 9.624},
	{70000.0, 9.594},
	{80000.0, 9.564},
})

// densityTable maps altitude (m) to air density (kg/m³).
var densityTable = mustTable([]Mapping{
	{0.0, 1.225},
	{1000.0, 1.112},
	{2000.0, 1.007},
	{3000.0, 0.9093},
	{4000.0, 0.8194},
	{5000.0, 0.7364},
	{6000.0, 0.6601},
	{7000.0, 0.5900},
	{8000.0, 0.5258},
	{9000.0, 0.4671},
	{10000.0, 0.4135},
	{15000.0, 0.1948},
	{20000.0, 0.08891},
	{25000.0, 0.04008},
	{30000.0, 0.01841},
	{40000.0, 0.003996},
	{50000.0, 0.001027},
	{60000.0, 0.0003097},
	{70000.0, 0.0000828},
	{80000.0, 0.0000185},
})

// speedSoundTable maps altitude (m) to the speed of sound (m/s).
// Non-monotonic: temperature dips in the stratosphere and recovers.
var speedSoundTable = mustTable([]Mapping{
	{0.0, 340.0},
	{1000.0, 336.0},
	{2000.0, 332.0},
	{3000.0, 328.0},
	{4000.0, 324.0},
	{5000.0, 320.0},
	{6000.0, 316.0},
	{7000.0, 312.0},
	{8000.0, 308.0},
	{9000.0, 303.0},
	{10000.0, 299.0},
	{15000.0, 295.0},
	{20000.0, 295.0},
	{25000.0, 295.0},
	{30000.0, 305.0},
	{40000.0, 324.0},
	{50000.0, 337.0},
	{60000.0, 319.0},
	{70000.0, 289.0},
	{80000.0, 269.0},
})

// dragTable maps Mach number to the M795 drag coefficient.
// The transonic peak sits at Mach 1.06.
var dragTable = mustTable([]Mapping{
	{0.0, 0.0},
	{0.1, 0.0543},
	{0.3, 0.1629},
	{0.5, 0.1659},
	{0.7, 0.2031},
	{0.89, 0.2597},
	{0.92, 0.3010},
	{0.96, 0.3287},
	{0.98, 0.4002},
	{1.00, 0.4258},
	{1.02, 0.4335},
	{1.06, 0.4483},
	{1.24, 0.4064},
	{1.53, 0.3663},
	{1.99, 0.2897},
	{2.87, 0.2297},
	{2.89, 0.2306},
	{5.00, 0.2656},
})

// GravityFromAltitude returns gravitational acceleration (m/s²) at the
// given altitude in meters.
func GravityFromAltitude(altitude float64) float64 {
	return gravityTable.Lookup(altitude)
}

// DensityFromAltitude returns air density (kg/m³) at the given altitude
// in meters.
func DensityFromAltitude(altitude float64) float64 {
	return densityTable.Lookup(altitude)
}

// SpeedSoundFromAltitude returns the speed of sound (m/s) at the given
// altitude in meters.
func SpeedSoundFromAltitude(altitude float64) float64 {
	return speedSoundTable.Lookup(altitude)
}

// DragFromMach returns the dimensionless M795 drag coefficient for the
// given Mach number.
func DragFromMach(mach float64) float64 {
	return dragTable.Lookup(mach)
}
