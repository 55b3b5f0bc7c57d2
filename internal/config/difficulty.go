package config

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyManager turns round progress into a difficulty level in [0, 1]
// and the ball speed that goes with it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// SetEnabled turns progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// progress reports how far the round is toward max_at, in [0, 1].
// ok is false when the progression type does not advance.
func (d *DifficultyManager) progress(score, ticks int) (float64, bool) {
	var done int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		done = score
	case ProgressionTime:
		done = ticks
	default:
		return 0, false
	}

	maxAt := max(d.cfg.Progression.MaxAt, 1)
	return unit(float64(done) / float64(maxAt)), true
}

// Level returns the difficulty for the given score and tick count. It starts
// at the initial level and rises linearly to 1 at max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return d.start
	}
	p, ok := d.progress(score, ticks)
	if !ok {
		return d.start
	}
	return d.start + p*(1-d.start)
}

// Speed scales baseSpeed by the current level, reaching
// baseSpeed*(1+speed_multiplier) at full difficulty.
// Disabled difficulty leaves the base speed untouched.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
