package speex

import (
	"fmt"

	spx "github.com/actioninja/go-speex"
)

// SpeexEncoder is the data structure which holds internal values
// for the encoder.
type SpeexEncoder struct {
	name    string
	options Options
	encoder *spx.DynamicEncoder
}

// NewSpeexEncoder is the constructor method for a Speex encoder.
func NewSpeexEncoder(opts ...Option) (*SpeexEncoder, error) {

	enc := &SpeexEncoder{
		name: "speex",
		options: Options{
			Mode:     spx.WideBand,
			Quality:  8,
			Highpass: true,
		},
	}

	for _, option := range opts {
		option(&enc.options)
	}

	if enc.options.Quality < 0 || enc.options.Quality > 10 {
		return nil, fmt.Errorf("speex quality out of range: %d", enc.options.Quality)
	}

	if _, err := spx.ModeIDFromInt(int(enc.options.Mode)); err != nil {
		return nil, err
	}

	if enc.options.Samplerate == 0 {
		enc.options.Samplerate = enc.options.Mode.SampleRate()
	}

	encoder := spx.NewDynamicEncoder(enc.options.Mode)
	encoder.SetQuality(enc.options.Quality)
	encoder.SetVBR(enc.options.VBR)
	encoder.SetVAD(enc.options.VAD)
	encoder.SetHighpass(enc.options.Highpass)
	encoder.SetSamplingRate(enc.options.Samplerate)

	enc.encoder = encoder
	return enc, nil
}

// Name returns the name of the audio codec
func (enc *SpeexEncoder) Name() string {
	return enc.name
}

// Options returns a copy of the codec's options
func (enc *SpeexEncoder) Options() Options {
	return enc.options
}

// FrameSize returns the amount of samples the encoder consumes per frame.
func (enc *SpeexEncoder) FrameSize() int {
	return enc.encoder.FrameSize()
}

// Encode one frame of []int16 with the speex codec into the supplied buffer.
// On success the amount of bytes written into the buffer will be returned.
func (enc *SpeexEncoder) Encode(pcm interface{}, data []byte) (int, error) {
	switch s := pcm.(type) {
	case []int16:
		return enc.encoder.Encode(s, data)
	default:
		return 0, fmt.Errorf("can not encode type %T with speex codec", pcm)
	}
}

// Close releases the underlying encoder.
func (enc *SpeexEncoder) Close() {
	enc.encoder.Close()
}
