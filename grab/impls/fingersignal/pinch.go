package fingersignal

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
)

// NewPinchSource classifies each finger by its pinch strength against the thumb.
// The thumb itself follows its strongest partner.
func NewPinchSource(cfg *Config, logger l.Wrapper) grab.FingerSignalSource {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "pinchSource"))

	return &pinchSource{
		fingerStates: fingerStates{
			logger: logger,
			cfg:    fixConfig(cfg, DefaultPinchConfig()),
		},
	}
}

type pinchSource struct {
	fingerStates

	offset grab.Vector3
}

func (impl *pinchSource) Update(pose grab.HandPose) {
	var scores [grab.FingerCount]float64

	partner := grab.Index

	for _, f := range grab.Fingers[grab.Index:] {
		scores[f] = pose.PinchStrength[f]

		if clampScore(scores[f]) > clampScore(scores[partner]) {
			partner = f
		}
	}

	scores[grab.Thumb] = scores[partner]

	impl.apply(scores)

	impl.offset = pose.FingerTips[grab.Thumb].Lerp(pose.FingerTips[partner], 0.5)
}

// WristOffsetLocal is the midpoint between the thumb tip and its strongest partner's tip.
func (impl *pinchSource) WristOffsetLocal() grab.Vector3 {
	return impl.offset
}
