package fingersignal

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
)

// FakeSource replays staged finger flags and scores; Update commits whatever was staged.
type FakeSource struct {
	fingerStates

	stagedGrabbing [grab.FingerCount]bool
	stagedScores   [grab.FingerCount]float64
	offset         grab.Vector3

	updates int
}

func NewFakeSource() *FakeSource {
	return &FakeSource{
		fingerStates: fingerStates{
			logger: l.NewNopLoggerWrapper(),
		},
	}
}

func (impl *FakeSource) Stage(f grab.FingerIndex, grabbing bool, score float64) *FakeSource {
	if f.Valid() {
		impl.stagedGrabbing[f] = grabbing
		impl.stagedScores[f] = score
	}

	return impl
}

func (impl *FakeSource) StageMask(grabbing grab.FingerBitset) *FakeSource {
	for _, f := range grab.Fingers {
		impl.stagedGrabbing[f] = grabbing.Has(f)
	}

	return impl
}

func (impl *FakeSource) SetWristOffset(offset grab.Vector3) *FakeSource {
	impl.offset = offset

	return impl
}

func (impl *FakeSource) Update(_ grab.HandPose) {
	impl.prev = impl.cur
	impl.cur = impl.stagedGrabbing
	impl.scores = impl.stagedScores
	impl.updates++
}

func (impl *FakeSource) WristOffsetLocal() grab.Vector3 {
	return impl.offset
}

func (impl *FakeSource) Updates() int {
	return impl.updates
}
