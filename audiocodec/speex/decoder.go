package speex

import (
	spx "github.com/actioninja/go-speex"
	ac "github.com/actioninja/go-speex/audiocodec"
)

// SpeexDecoder is the data structure which holds internal values
// for the decoder.
type SpeexDecoder struct {
	name    string
	options Options
	decoder *spx.DynamicDecoder
}

// NewSpeexDecoder is the constructor method for a Speex decoder.
func NewSpeexDecoder(opts ...Option) (*SpeexDecoder, error) {

	dec := &SpeexDecoder{
		name: "speex",
		options: Options{
			Mode:     spx.WideBand,
			Highpass: true,
		},
	}

	for _, option := range opts {
		option(&dec.options)
	}

	if _, err := spx.ModeIDFromInt(int(dec.options.Mode)); err != nil {
		return nil, err
	}

	if dec.options.Samplerate == 0 {
		dec.options.Samplerate = dec.options.Mode.SampleRate()
	}

	decoder := spx.NewDynamicDecoder(dec.options.Mode)
	decoder.SetHighpass(dec.options.Highpass)
	decoder.SetSamplingRate(dec.options.Samplerate)

	dec.decoder = decoder
	return dec, nil
}

// Name returns the name of the audio codec
func (dec *SpeexDecoder) Name() string {
	return dec.name
}

// Options returns a copy of the codec's options
func (dec *SpeexDecoder) Options() Options {
	return dec.options
}

// FrameSize returns the amount of samples the decoder produces per frame.
func (dec *SpeexDecoder) FrameSize() int {
	return dec.decoder.FrameSize()
}

// Decode encoded Speex data into the supplied int16 buffer, which must hold
// one frame. Passing nil data conceals a lost frame instead. On success, the
// number of samples written into the buffer will be returned.
func (dec *SpeexDecoder) Decode(data []byte, pcm []int16, opts ...ac.Options) (int, error) {
	if err := dec.decoder.Decode(data, pcm); err != nil {
		return 0, err
	}
	return dec.decoder.FrameSize(), nil
}

// Close releases the underlying decoder.
func (dec *SpeexDecoder) Close() {
	dec.decoder.Close()
}
