package handgrab

import "github.com/sgostarter/libgrab/grab"

type Options struct {
	pinchSource grab.FingerSignalSource
	palmSource  grab.FingerSignalSource
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithPinchSource(source grab.FingerSignalSource) Option {
	return func(o *Options) {
		o.pinchSource = source
	}
}

func WithPalmSource(source grab.FingerSignalSource) Option {
	return func(o *Options) {
		o.palmSource = source
	}
}
