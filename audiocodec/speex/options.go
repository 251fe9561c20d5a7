package speex

import spx "github.com/actioninja/go-speex"

type Option func(*Options)

type Options struct {
	Name       string
	Mode       spx.ModeID
	Quality    int
	VBR        bool
	VAD        bool
	Highpass   bool
	Samplerate int
}

// Mode sets the bandwidth mode of the codec.
func Mode(mode spx.ModeID) Option {
	return func(args *Options) {
		args.Mode = mode
	}
}

// Quality sets the overall encoding quality (0...10).
func Quality(quality int) Option {
	return func(args *Options) {
		args.Quality = quality
	}
}

// VBR enables or disables variable bit-rate encoding.
func VBR(enabled bool) Option {
	return func(args *Options) {
		args.VBR = enabled
	}
}

// VAD enables or disables voice activity detection.
func VAD(enabled bool) Option {
	return func(args *Options) {
		args.VAD = enabled
	}
}

// Highpass enables or disables highpass filtering of the signal.
func Highpass(enabled bool) Option {
	return func(args *Options) {
		args.Highpass = enabled
	}
}

// Samplerate sets the sampling rate used for bit-rate computation. It
// defaults to the native rate of the selected mode.
func Samplerate(rate int) Option {
	return func(args *Options) {
		args.Samplerate = rate
	}
}
