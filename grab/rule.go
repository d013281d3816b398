package grab

import (
	"strings"
)

// GrabbingRule is the quorum a grab needs: one requirement per finger and a single policy for how
// a sustained grab ends. It is a comparable value; copies are independent.
type GrabbingRule struct {
	requirements [FingerCount]FingerRequirement
	unselectMode FingerUnselectMode
}

var (
	PalmRule = NewGrabbingRule(RequirementOptional, RequirementRequired, RequirementRequired,
		RequirementRequired, RequirementOptional, UnselectAllReleased)
	PinchRule = NewGrabbingRule(RequirementOptional, RequirementOptional, RequirementOptional,
		RequirementIgnored, RequirementIgnored, UnselectAllReleased)
	FullGrabRule = NewGrabbingRule(RequirementRequired, RequirementRequired, RequirementRequired,
		RequirementRequired, RequirementRequired, UnselectAllReleased)
)

// NewGrabbingRule stores out-of-range requirements as ignored and an out-of-range mode as all-released.
func NewGrabbingRule(thumb, index, middle, ring, pinky FingerRequirement, mode FingerUnselectMode) GrabbingRule {
	rule := GrabbingRule{}

	for idx, requirement := range [FingerCount]FingerRequirement{thumb, index, middle, ring, pinky} {
		rule.requirements[idx] = validRequirement(requirement)
	}

	return rule.WithUnselectMode(mode)
}

func validRequirement(requirement FingerRequirement) FingerRequirement {
	if !requirement.Valid() {
		return RequirementIgnored
	}

	return requirement
}

// Project keeps source's requirement for every finger in mask and ignores the rest.
func Project(mask FingerBitset, source GrabbingRule) GrabbingRule {
	rule := GrabbingRule{
		unselectMode: source.unselectMode,
	}

	for _, f := range Fingers {
		if mask.Has(f) {
			rule.requirements[f] = source.requirements[f]
		} else {
			rule.requirements[f] = RequirementIgnored
		}
	}

	return rule
}

func (r GrabbingRule) Requirement(f FingerIndex) FingerRequirement {
	if !f.Valid() {
		return RequirementIgnored
	}

	return r.requirements[f]
}

func (r GrabbingRule) UnselectMode() FingerUnselectMode {
	return r.unselectMode
}

// SelectsWithOptionals reports whether no finger is Required.
func (r GrabbingRule) SelectsWithOptionals() bool {
	for _, requirement := range r.requirements {
		if requirement == RequirementRequired {
			return false
		}
	}

	return true
}

func (r GrabbingRule) WithRequirement(f FingerIndex, requirement FingerRequirement) GrabbingRule {
	if f.Valid() {
		r.requirements[f] = validRequirement(requirement)
	}

	return r
}

func (r GrabbingRule) WithUnselectMode(mode FingerUnselectMode) GrabbingRule {
	if !mode.Valid() {
		mode = UnselectAllReleased
	}

	r.unselectMode = mode

	return r
}

func (r GrabbingRule) maskOf(requirement FingerRequirement) (m FingerBitset) {
	for _, f := range Fingers {
		if r.requirements[f] == requirement {
			m = m.With(f)
		}
	}

	return
}

func (r GrabbingRule) RequiredMask() FingerBitset {
	return r.maskOf(RequirementRequired)
}

func (r GrabbingRule) OptionalMask() FingerBitset {
	return r.maskOf(RequirementOptional)
}

func (r GrabbingRule) String() string {
	var ss strings.Builder

	ss.WriteString("{")

	for _, f := range Fingers {
		ss.WriteString(f.String())
		ss.WriteString(":")
		ss.WriteString(r.requirements[f].String())
		ss.WriteString(",")
	}

	ss.WriteString(" ")
	ss.WriteString(r.unselectMode.String())
	ss.WriteString("}")

	return ss.String()
}
