package handgrab

import (
	"fmt"

	"github.com/sgostarter/libgrab/grab"
	"github.com/sgostarter/libgrab/grab/impls/fingersignal"
)

type Channel int

const (
	ChannelPinch Channel = iota
	ChannelPalm

	channelCount = 2
)

func (ch Channel) String() string {
	switch ch {
	case ChannelPinch:
		return "pinch"
	case ChannelPalm:
		return "palm"
	}

	return fmt.Sprintf("channel(%d)", int(ch))
}

type Config struct {
	Pinch fingersignal.Config `yaml:"pinch" json:"pinch"`
	Palm  fingersignal.Config `yaml:"palm" json:"palm"`
}

// DualChannelController keeps a pinch and a palm channel for one tracked hand and answers
// quorum questions against either. Queries before the first Update report no grab.
type DualChannelController interface {
	// ID is unique per controller for the life of the process, so callers can key per-hand state
	// (rule assignments, grabbed objects) on it. It also tags every log line of the controller.
	ID() uint64
	Ready() bool

	Update(pose grab.HandPose)

	IsSustaining(ch Channel, rule grab.GrabbingRule) bool
	SelectTriggeredThisFrame(ch Channel, rule grab.GrabbingRule) bool
	UnselectTriggeredThisFrame(ch Channel, rule grab.GrabbingRule) bool
	Score(ch Channel, rule grab.GrabbingRule, includeCurrentlyGrabbing bool) float64

	IsFingerGrabbing(ch Channel, f grab.FingerIndex) bool
	FingerScore(ch Channel, f grab.FingerIndex) float64

	Center(ch Channel) grab.Vector3
	PinchCenter() grab.Vector3
	PalmCenter() grab.Vector3
}
