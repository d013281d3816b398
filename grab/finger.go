package grab

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/spf13/cast"
)

type FingerIndex int

const (
	Thumb FingerIndex = iota
	Index
	Middle
	Ring
	Pinky

	FingerCount = 5
)

// Fingers lists every finger in evaluation order.
var Fingers = [FingerCount]FingerIndex{Thumb, Index, Middle, Ring, Pinky}

var fingerNames = [FingerCount]string{"thumb", "index", "middle", "ring", "pinky"}

func (f FingerIndex) Valid() bool {
	return f >= Thumb && f <= Pinky
}

func (f FingerIndex) String() string {
	if !f.Valid() {
		return fmt.Sprintf("finger(%d)", int(f))
	}

	return fingerNames[f]
}

func ParseFingerIndex(s string) (FingerIndex, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for idx, name := range fingerNames {
		if name == s {
			return FingerIndex(idx), nil
		}
	}

	return 0, fmt.Errorf("finger %q: %w", s, commerr.ErrInvalidArgument)
}

type FingerRequirement int

const (
	RequirementIgnored FingerRequirement = iota
	RequirementOptional
	RequirementRequired
)

var requirementNames = [...]string{"ignored", "optional", "required"}

func (r FingerRequirement) Valid() bool {
	return r >= RequirementIgnored && r <= RequirementRequired
}

func (r FingerRequirement) String() string {
	if !r.Valid() {
		return fmt.Sprintf("requirement(%d)", int(r))
	}

	return requirementNames[r]
}

// ParseFingerRequirement accepts the textual names as well as the numeric values 0..2,
// as authored rule files carry either.
func ParseFingerRequirement(v interface{}) (FingerRequirement, error) {
	s := strings.ToLower(strings.TrimSpace(cast.ToString(v)))

	for idx, name := range requirementNames {
		if name == s {
			return FingerRequirement(idx), nil
		}
	}

	n, err := cast.ToIntE(s)
	if err == nil && n >= int(RequirementIgnored) && n <= int(RequirementRequired) {
		return FingerRequirement(n), nil
	}

	return RequirementIgnored, fmt.Errorf("finger requirement %q: %w", s, commerr.ErrInvalidArgument)
}

type FingerUnselectMode int

const (
	UnselectAllReleased FingerUnselectMode = iota
	UnselectAnyReleased
)

var unselectModeNames = [...]string{"all-released", "any-released"}

func (m FingerUnselectMode) Valid() bool {
	return m >= UnselectAllReleased && m <= UnselectAnyReleased
}

func (m FingerUnselectMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("unselect(%d)", int(m))
	}

	return unselectModeNames[m]
}

func ParseFingerUnselectMode(v interface{}) (FingerUnselectMode, error) {
	s := strings.ToLower(strings.TrimSpace(cast.ToString(v)))

	switch s {
	case "", unselectModeNames[UnselectAllReleased], "allreleased", "0":
		return UnselectAllReleased, nil
	case unselectModeNames[UnselectAnyReleased], "anyreleased", "1":
		return UnselectAnyReleased, nil
	}

	return UnselectAllReleased, fmt.Errorf("unselect mode %q: %w", s, commerr.ErrInvalidArgument)
}

// FingerBitset holds one bit per finger, bit i for FingerIndex i.
type FingerBitset uint8

const (
	EmptyMask      FingerBitset = 0
	AllFingersMask FingerBitset = 1<<FingerCount - 1
)

func MaskOf(fingers ...FingerIndex) FingerBitset {
	var m FingerBitset

	for _, f := range fingers {
		m = m.With(f)
	}

	return m
}

func (m FingerBitset) Has(f FingerIndex) bool {
	return f.Valid() && m&(1<<uint(f)) != 0
}

func (m FingerBitset) With(f FingerIndex) FingerBitset {
	if !f.Valid() {
		return m
	}

	return m | 1<<uint(f)
}

func (m FingerBitset) Without(f FingerIndex) FingerBitset {
	if !f.Valid() {
		return m
	}

	return m &^ (1 << uint(f))
}

func (m FingerBitset) Count() (n int) {
	for _, f := range Fingers {
		if m.Has(f) {
			n++
		}
	}

	return
}

func (m FingerBitset) String() string {
	var parts []string

	for _, f := range Fingers {
		if m.Has(f) {
			parts = append(parts, f.String())
		}
	}

	return "[" + strings.Join(parts, ",") + "]"
}
