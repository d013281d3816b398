package rulebook

import (
	"time"

	"github.com/sgostarter/libgrab/grab"
)

const (
	PalmRuleName     = "palm"
	PinchRuleName    = "pinch"
	FullGrabRuleName = "full-grab"
)

// DefaultRules are seeded into every rule book and cannot be deleted.
func DefaultRules() map[string]grab.GrabbingRule {
	return map[string]grab.GrabbingRule{
		PalmRuleName:     grab.PalmRule,
		PinchRuleName:    grab.PinchRule,
		FullGrabRuleName: grab.FullGrabRule,
	}
}

type Config struct {
	ProjectionExpiration time.Duration `yaml:"projectionExpiration" json:"projectionExpiration"`
}

type RuleBook interface {
	Get(name string) (grab.GrabbingRule, error)
	Set(name string, rule grab.GrabbingRule) error
	Delete(name string) error
	Names() []string

	// Projected is Get followed by grab.Project with mask.
	Projected(name string, mask grab.FingerBitset) (grab.GrabbingRule, error)
}

type Storage interface {
	LoadRules() (map[string]grab.GrabbingRule, error)
	SaveRule(name string, rule grab.GrabbingRule) error
	DeleteRule(name string) error
}
