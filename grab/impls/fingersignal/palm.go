package fingersignal

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
)

func NewPalmSource(cfg *Config, logger l.Wrapper) grab.FingerSignalSource {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "palmSource"))

	return &palmSource{
		fingerStates: fingerStates{
			logger: logger,
			cfg:    fixConfig(cfg, DefaultPalmConfig()),
		},
	}
}

type palmSource struct {
	fingerStates

	offset grab.Vector3
}

func (impl *palmSource) Update(pose grab.HandPose) {
	impl.apply(pose.CurlStrength)

	impl.offset = pose.PalmCenter
}

func (impl *palmSource) WristOffsetLocal() grab.Vector3 {
	return impl.offset
}
