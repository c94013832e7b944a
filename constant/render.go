package constant

import "time"

// Render loop tuning
const (
	TickInterval = 33 * time.Millisecond // ~30 FPS, one sim step per tick while firing

	StatusBarHeight = 2 // rows reserved at the top for flight stats
)
