package fingersignal

import (
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
)

type Config struct {
	GrabThreshold    float64 `yaml:"grabThreshold" json:"grabThreshold"`
	ReleaseThreshold float64 `yaml:"releaseThreshold" json:"releaseThreshold"`
}

func DefaultPinchConfig() Config {
	return Config{
		GrabThreshold:    0.9,
		ReleaseThreshold: 0.75,
	}
}

func DefaultPalmConfig() Config {
	return Config{
		GrabThreshold:    0.75,
		ReleaseThreshold: 0.6,
	}
}

func fixConfig(cfg *Config, def Config) Config {
	if cfg == nil {
		return def
	}

	fixed := *cfg

	if fixed.GrabThreshold <= 0 || fixed.GrabThreshold > 1 {
		fixed.GrabThreshold = def.GrabThreshold
	}

	if fixed.ReleaseThreshold <= 0 {
		fixed.ReleaseThreshold = def.ReleaseThreshold
	}

	if fixed.ReleaseThreshold > fixed.GrabThreshold {
		fixed.ReleaseThreshold = fixed.GrabThreshold
	}

	return fixed
}

// fingerStates is the per-finger hysteresis classifier plus the edge bookkeeping
// shared by every source.
type fingerStates struct {
	logger l.Wrapper
	cfg    Config

	prev   [grab.FingerCount]bool
	cur    [grab.FingerCount]bool
	scores [grab.FingerCount]float64
}

func (st *fingerStates) apply(scores [grab.FingerCount]float64) {
	st.prev = st.cur

	for _, f := range grab.Fingers {
		score := clampScore(scores[f])
		if score != scores[f] {
			st.logger.WithFields(l.StringField("finger", f.String())).Debug("score clamped")
		}

		st.scores[f] = score

		if st.cur[f] {
			st.cur[f] = score >= st.cfg.ReleaseThreshold
		} else {
			st.cur[f] = score >= st.cfg.GrabThreshold
		}
	}
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}

func (st *fingerStates) IsGrabbing(f grab.FingerIndex) bool {
	if !f.Valid() {
		return false
	}

	return st.cur[f]
}

func (st *fingerStates) ChangedTo(f grab.FingerIndex, target bool) bool {
	if !f.Valid() {
		return false
	}

	return st.prev[f] != st.cur[f] && st.cur[f] == target
}

func (st *fingerStates) GrabScore(f grab.FingerIndex) float64 {
	if !f.Valid() {
		return 0
	}

	return st.scores[f]
}
