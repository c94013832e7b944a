package constant

// M795 155mm projectile specifications
const (
	DefaultProjectileMass   = 46.7     // kg
	DefaultProjectileRadius = 0.077545 // m (155mm caliber)
)

// M777 howitzer specifications
const (
	DefaultMuzzleVelocity = 827.0 // m/s
	DefaultElevationDeg   = 45.0  // degrees from vertical
	MinElevationDeg       = 0.0   // straight up
	MaxElevationDeg       = 85.0  // near horizontal
	BarrelLength          = 6.0   // m
)
