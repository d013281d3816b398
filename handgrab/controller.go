package handgrab

import (
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
	"github.com/sgostarter/libgrab/grab/impls/fingersignal"
)

func NewDualChannelController(cfg *Config, logger l.Wrapper, options ...Option) DualChannelController {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = &Config{}
	}

	id := snowflake.ID()

	logger = logger.WithFields(l.StringField(l.ClsKey, "dualChannelController"), l.UInt64Field("handID", id))

	opts := optionNew(options...)

	if opts.pinchSource == nil {
		opts.pinchSource = fingersignal.NewPinchSource(&cfg.Pinch, logger)
	}

	if opts.palmSource == nil {
		opts.palmSource = fingersignal.NewPalmSource(&cfg.Palm, logger)
	}

	return &dualChannelControllerImpl{
		id:     id,
		logger: logger,
		sources: [channelCount]grab.FingerSignalSource{
			ChannelPinch: opts.pinchSource,
			ChannelPalm:  opts.palmSource,
		},
		scale: 1,
	}
}

type dualChannelControllerImpl struct {
	id     uint64
	logger l.Wrapper

	sources [channelCount]grab.FingerSignalSource
	ready   bool

	wrist *grab.Pose
	scale float64
}

func (impl *dualChannelControllerImpl) ID() uint64 {
	return impl.id
}

func (impl *dualChannelControllerImpl) Ready() bool {
	return impl.ready
}

// Update refreshes pinch then palm, once each.
func (impl *dualChannelControllerImpl) Update(pose grab.HandPose) {
	for _, source := range impl.sources {
		source.Update(pose)
	}

	if !impl.ready {
		impl.logger.Debug("channels ready")
	}

	if impl.ready && (impl.wrist == nil) != (pose.Wrist == nil) {
		state := "lost"
		if pose.Wrist != nil {
			state = "available"
		}

		impl.logger.WithFields(l.StringField("wrist", state)).Debug("wrist availability changed")
	}

	impl.ready = true

	if pose.Wrist != nil {
		wrist := *pose.Wrist
		impl.wrist = &wrist
	} else {
		impl.wrist = nil
	}

	impl.scale = pose.Scale
	if impl.scale <= 0 {
		impl.scale = 1
	}
}

func (impl *dualChannelControllerImpl) snapshot(ch Channel) grab.FingerSignalSource {
	if !impl.ready || ch < 0 || ch >= channelCount {
		return nil
	}

	return impl.sources[ch]
}

func (impl *dualChannelControllerImpl) IsSustaining(ch Channel, rule grab.GrabbingRule) bool {
	snapshot := impl.snapshot(ch)
	if snapshot == nil {
		return false
	}

	return grab.IsSustainingGrab(rule, snapshot)
}

func (impl *dualChannelControllerImpl) SelectTriggeredThisFrame(ch Channel, rule grab.GrabbingRule) bool {
	snapshot := impl.snapshot(ch)
	if snapshot == nil {
		return false
	}

	return grab.SelectTriggered(rule, snapshot)
}

func (impl *dualChannelControllerImpl) UnselectTriggeredThisFrame(ch Channel, rule grab.GrabbingRule) bool {
	snapshot := impl.snapshot(ch)
	if snapshot == nil {
		return false
	}

	return grab.UnselectTriggered(rule, snapshot)
}

func (impl *dualChannelControllerImpl) Score(ch Channel, rule grab.GrabbingRule, includeCurrentlyGrabbing bool) float64 {
	snapshot := impl.snapshot(ch)
	if snapshot == nil {
		return 0
	}

	return grab.Score(rule, includeCurrentlyGrabbing, snapshot)
}

func (impl *dualChannelControllerImpl) IsFingerGrabbing(ch Channel, f grab.FingerIndex) bool {
	snapshot := impl.snapshot(ch)
	if snapshot == nil {
		return false
	}

	return snapshot.IsGrabbing(f)
}

func (impl *dualChannelControllerImpl) FingerScore(ch Channel, f grab.FingerIndex) float64 {
	snapshot := impl.snapshot(ch)
	if snapshot == nil {
		return 0
	}

	return snapshot.GrabScore(f)
}

// Center places the channel's wrist-local offset, scaled by the hand scale, in world space.
// Without a wrist pose the scaled offset is returned unrotated.
func (impl *dualChannelControllerImpl) Center(ch Channel) grab.Vector3 {
	source := impl.snapshot(ch)
	if source == nil {
		return grab.ZeroVector3
	}

	offset := source.WristOffsetLocal().Scale(impl.scale)

	if impl.wrist == nil {
		return offset
	}

	return impl.wrist.Transform(offset)
}

func (impl *dualChannelControllerImpl) PinchCenter() grab.Vector3 {
	return impl.Center(ChannelPinch)
}

func (impl *dualChannelControllerImpl) PalmCenter() grab.Vector3 {
	return impl.Center(ChannelPalm)
}
