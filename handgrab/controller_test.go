package handgrab

import (
	"math"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
	"github.com/sgostarter/libgrab/grab/impls/fingersignal"
	"github.com/stretchr/testify/assert"
)

func newFakeController() (DualChannelController, *fingersignal.FakeSource, *fingersignal.FakeSource) {
	pinch := fingersignal.NewFakeSource()
	palm := fingersignal.NewFakeSource()

	return NewDualChannelController(nil, l.NewConsoleLoggerWrapper(), WithPinchSource(pinch), WithPalmSource(palm)), pinch, palm
}

func TestBeforeFirstUpdate(t *testing.T) {
	c, pinch, palm := newFakeController()

	pinch.Stage(grab.Thumb, true, 1).SetWristOffset(grab.Vector3{X: 1})
	palm.StageMask(grab.AllFingersMask)

	assert.False(t, c.Ready())
	assert.NotZero(t, c.ID())

	other, _, _ := newFakeController()
	assert.NotEqual(t, c.ID(), other.ID())

	hands := map[uint64]string{c.ID(): "left", other.ID(): "right"}
	assert.Len(t, hands, 2)

	for _, ch := range []Channel{ChannelPinch, ChannelPalm} {
		assert.False(t, c.IsSustaining(ch, grab.PinchRule))
		assert.False(t, c.SelectTriggeredThisFrame(ch, grab.PinchRule))
		assert.False(t, c.UnselectTriggeredThisFrame(ch, grab.PinchRule))
		assert.EqualValues(t, 0, c.Score(ch, grab.PinchRule, true))
		assert.False(t, c.IsFingerGrabbing(ch, grab.Thumb))
		assert.EqualValues(t, 0, c.FingerScore(ch, grab.Thumb))
		assert.Equal(t, grab.ZeroVector3, c.Center(ch))
	}

	assert.EqualValues(t, 0, pinch.Updates())
	assert.EqualValues(t, 0, palm.Updates())
}

func TestUpdateRefreshesBothChannelsOnce(t *testing.T) {
	c, pinch, palm := newFakeController()

	c.Update(grab.HandPose{})
	assert.True(t, c.Ready())
	assert.EqualValues(t, 1, pinch.Updates())
	assert.EqualValues(t, 1, palm.Updates())

	c.Update(grab.HandPose{})
	assert.EqualValues(t, 2, pinch.Updates())
	assert.EqualValues(t, 2, palm.Updates())
}

func TestChannelsAreIndependent(t *testing.T) {
	c, pinch, palm := newFakeController()

	pinch.Stage(grab.Thumb, true, 0.95).Stage(grab.Index, true, 0.92)
	palm.Stage(grab.Middle, false, 0.3)

	c.Update(grab.HandPose{})

	assert.True(t, c.SelectTriggeredThisFrame(ChannelPinch, grab.PinchRule))
	assert.True(t, c.IsSustaining(ChannelPinch, grab.PinchRule))
	assert.False(t, c.IsSustaining(ChannelPalm, grab.PalmRule))
	assert.False(t, c.SelectTriggeredThisFrame(ChannelPalm, grab.PalmRule))
	assert.InDelta(t, 0.95, c.Score(ChannelPinch, grab.PinchRule, true), 1e-9)
	assert.InDelta(t, 0.0, c.Score(ChannelPalm, grab.PalmRule, true), 1e-9)
	assert.True(t, c.IsFingerGrabbing(ChannelPinch, grab.Index))
	assert.InDelta(t, 0.3, c.FingerScore(ChannelPalm, grab.Middle), 1e-9)

	c.Update(grab.HandPose{})
	assert.False(t, c.SelectTriggeredThisFrame(ChannelPinch, grab.PinchRule), "already sustaining")

	pinch.StageMask(grab.MaskOf(grab.Index))
	c.Update(grab.HandPose{})
	assert.False(t, c.UnselectTriggeredThisFrame(ChannelPinch, grab.PinchRule))

	pinch.StageMask(grab.EmptyMask)
	c.Update(grab.HandPose{})
	assert.True(t, c.UnselectTriggeredThisFrame(ChannelPinch, grab.PinchRule))

	assert.False(t, c.IsSustaining(Channel(5), grab.PinchRule))
	assert.Equal(t, grab.ZeroVector3, c.Center(Channel(-1)))
}

func TestCenters(t *testing.T) {
	c, pinch, palm := newFakeController()

	pinch.SetWristOffset(grab.Vector3{X: 0.1})
	palm.SetWristOffset(grab.Vector3{Y: 0.05})

	c.Update(grab.HandPose{Scale: 2})
	assert.Equal(t, grab.Vector3{X: 0.2}, c.PinchCenter(), "no wrist: scaled, unrotated")
	assert.Equal(t, grab.Vector3{Y: 0.1}, c.PalmCenter())

	half := math.Sqrt(0.5)
	wrist := grab.Pose{
		Position: grab.Vector3{X: 1, Y: 1, Z: 1},
		Rotation: grab.Quaternion{Y: half, W: half},
	}

	c.Update(grab.HandPose{Wrist: &wrist, Scale: 2})

	wrist.Position = grab.Vector3{}

	center := c.PinchCenter()
	assert.InDelta(t, 1.0, center.X, 1e-9)
	assert.InDelta(t, 1.0, center.Y, 1e-9)
	assert.InDelta(t, 0.8, center.Z, 1e-9)

	c.Update(grab.HandPose{})
	assert.Equal(t, grab.Vector3{X: 0.1}, c.Center(ChannelPinch), "non-positive scale counts as 1")
}

func TestDefaultSources(t *testing.T) {
	c := NewDualChannelController(&Config{
		Palm: fingersignal.Config{GrabThreshold: 0.7, ReleaseThreshold: 0.5},
	}, nil)

	var pose grab.HandPose
	pose.CurlStrength = [grab.FingerCount]float64{0.2, 0.8, 0.9, 0.75, 0.1}
	pose.PinchStrength[grab.Index] = 0.95
	pose.FingerTips[grab.Index] = grab.Vector3{Z: 0.1}
	pose.PalmCenter = grab.Vector3{Y: 0.03}

	c.Update(pose)

	assert.True(t, c.SelectTriggeredThisFrame(ChannelPalm, grab.PalmRule))
	assert.True(t, c.IsSustaining(ChannelPinch, grab.PinchRule))
	assert.True(t, c.IsFingerGrabbing(ChannelPinch, grab.Thumb))
	assert.InDelta(t, 0.75, c.Score(ChannelPalm, grab.PalmRule, true), 1e-9)
	assert.Equal(t, grab.Vector3{Y: 0.03}, c.PalmCenter())
	assert.InDelta(t, 0.05, c.PinchCenter().Z, 1e-9)

	pose.CurlStrength[grab.Ring] = 0.4
	c.Update(pose)
	assert.True(t, c.IsSustaining(ChannelPalm, grab.PalmRule))
	assert.False(t, c.IsSustaining(ChannelPalm, grab.PalmRule.WithUnselectMode(grab.UnselectAnyReleased)))
	assert.True(t, c.UnselectTriggeredThisFrame(ChannelPalm, grab.PalmRule.WithUnselectMode(grab.UnselectAnyReleased)))
}
