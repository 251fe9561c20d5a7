package speex

import "fmt"

// DynamicEncoder is an encoder whose bandwidth mode is chosen at run time,
// for example from a stream header. It holds exactly one of the three
// per-mode encoders and forwards every operation to it; the mode never
// changes after construction.
type DynamicEncoder struct {
	mode ModeID
	nb   *NBEncoder
	wb   *WBEncoder
	uwb  *UWBEncoder
}

// NewDynamicEncoder creates an encoder for the given mode. A ModeID outside
// the three defined modes panics.
func NewDynamicEncoder(mode ModeID) *DynamicEncoder {
	d := &DynamicEncoder{mode: mode}
	switch mode {
	case NarrowBand:
		d.nb = NewNBEncoder()
	case WideBand:
		d.wb = NewWBEncoder()
	case UltraWideBand:
		d.uwb = NewUWBEncoder()
	default:
		panic(fmt.Sprintf("speex: invalid mode id %d", int(mode)))
	}
	return d
}

// inner resolves the one live variant. The match must stay exhaustive over
// ModeID.
func (d *DynamicEncoder) inner() *encoder {
	switch d.mode {
	case NarrowBand:
		return &d.nb.encoder
	case WideBand:
		return &d.wb.encoder
	case UltraWideBand:
		return &d.uwb.encoder
	}
	panic(fmt.Sprintf("speex: invalid mode id %d", int(d.mode)))
}

// Mode returns the bandwidth mode the encoder was created with.
func (d *DynamicEncoder) Mode() ModeID { return d.mode }

// Ctl issues a raw control request; see the documentation on the per-mode
// encoders.
func (d *DynamicEncoder) Ctl(request int, value any) error {
	return d.inner().Ctl(request, value)
}

// FrameSize returns the number of samples processed per frame.
func (d *DynamicEncoder) FrameSize() int { return d.inner().FrameSize() }

// SetVBR enables or disables variable bit-rate.
func (d *DynamicEncoder) SetVBR(enabled bool) { d.inner().SetVBR(enabled) }

// VBR reports whether variable bit-rate is enabled.
func (d *DynamicEncoder) VBR() bool { return d.inner().VBR() }

// SetVBRQuality sets the quality target used in variable bit-rate operation,
// between 0.0 and 10.0.
func (d *DynamicEncoder) SetVBRQuality(quality float32) { d.inner().SetVBRQuality(quality) }

// VBRQuality returns the quality target used in variable bit-rate operation.
func (d *DynamicEncoder) VBRQuality() float32 { return d.inner().VBRQuality() }

// SetVAD enables or disables voice activity detection.
func (d *DynamicEncoder) SetVAD(enabled bool) { d.inner().SetVAD(enabled) }

// VAD reports whether voice activity detection is enabled.
func (d *DynamicEncoder) VAD() bool { return d.inner().VAD() }

// SetABR sets the average bit-rate target in bits per second.
func (d *DynamicEncoder) SetABR(bitrate int) { d.inner().SetABR(bitrate) }

// ABR returns the average bit-rate target in bits per second.
func (d *DynamicEncoder) ABR() int { return d.inner().ABR() }

// SetQuality sets the overall quality, between 0 and 10. The default is 8.
func (d *DynamicEncoder) SetQuality(quality int) { d.inner().SetQuality(quality) }

// SetBitrate sets the bit-rate in bits per second.
func (d *DynamicEncoder) SetBitrate(bitrate int) { d.inner().SetBitrate(bitrate) }

// Bitrate returns the current bit-rate in bits per second.
func (d *DynamicEncoder) Bitrate() int { return d.inner().Bitrate() }

// SetSamplingRate sets the sampling rate, in Hz, used for bit-rate
// computation.
func (d *DynamicEncoder) SetSamplingRate(rate int) { d.inner().SetSamplingRate(rate) }

// SamplingRate returns the sampling rate used for bit-rate computation.
func (d *DynamicEncoder) SamplingRate() int { return d.inner().SamplingRate() }

// ResetState resets the codec memories to zero.
func (d *DynamicEncoder) ResetState() { d.inner().ResetState() }

// SetSubmodeEncoding sets whether each frame carries its submode in-band.
// Disabling it breaks compliance with the Speex format.
func (d *DynamicEncoder) SetSubmodeEncoding(enabled bool) { d.inner().SetSubmodeEncoding(enabled) }

// SubmodeEncoding reports whether each frame carries its submode in-band.
func (d *DynamicEncoder) SubmodeEncoding() bool { return d.inner().SubmodeEncoding() }

// Lookahead returns the algorithmic delay of the encoder in samples.
func (d *DynamicEncoder) Lookahead() int { return d.inner().Lookahead() }

// SetPLCTuning sets the expected packet loss percentage used to tune the
// loss concealment.
func (d *DynamicEncoder) SetPLCTuning(lossRate int) { d.inner().SetPLCTuning(lossRate) }

// PLCTuning returns the expected packet loss percentage.
func (d *DynamicEncoder) PLCTuning() int { return d.inner().PLCTuning() }

// SetVBRMaxBitrate caps the bit-rate that variable bit-rate operation may
// select.
func (d *DynamicEncoder) SetVBRMaxBitrate(bitrate int) { d.inner().SetVBRMaxBitrate(bitrate) }

// VBRMaxBitrate returns the bit-rate cap for variable bit-rate operation.
func (d *DynamicEncoder) VBRMaxBitrate() int { return d.inner().VBRMaxBitrate() }

// SetHighpass enables or disables highpass filtering of the input.
func (d *DynamicEncoder) SetHighpass(enabled bool) { d.inner().SetHighpass(enabled) }

// Highpass reports whether highpass filtering is enabled.
func (d *DynamicEncoder) Highpass() bool { return d.inner().Highpass() }

// Encode compresses exactly one frame of audio into data and returns the
// number of bytes written.
func (d *DynamicEncoder) Encode(pcm []int16, data []byte) (int, error) {
	return d.inner().Encode(pcm, data)
}

// Close destroys the underlying encoder. It is safe to call more than once.
func (d *DynamicEncoder) Close() { d.inner().Close() }

// DynamicDecoder is a decoder whose bandwidth mode is chosen at run time. It
// holds exactly one of the three per-mode decoders and forwards every
// operation to it; the mode never changes after construction.
type DynamicDecoder struct {
	mode ModeID
	nb   *NBDecoder
	wb   *WBDecoder
	uwb  *UWBDecoder
}

// NewDynamicDecoder creates a decoder for the given mode. A ModeID outside
// the three defined modes panics.
func NewDynamicDecoder(mode ModeID) *DynamicDecoder {
	d := &DynamicDecoder{mode: mode}
	switch mode {
	case NarrowBand:
		d.nb = NewNBDecoder()
	case WideBand:
		d.wb = NewWBDecoder()
	case UltraWideBand:
		d.uwb = NewUWBDecoder()
	default:
		panic(fmt.Sprintf("speex: invalid mode id %d", int(mode)))
	}
	return d
}

// inner resolves the one live variant. The match must stay exhaustive over
// ModeID.
func (d *DynamicDecoder) inner() *decoder {
	switch d.mode {
	case NarrowBand:
		return &d.nb.decoder
	case WideBand:
		return &d.wb.decoder
	case UltraWideBand:
		return &d.uwb.decoder
	}
	panic(fmt.Sprintf("speex: invalid mode id %d", int(d.mode)))
}

// Mode returns the bandwidth mode the decoder was created with.
func (d *DynamicDecoder) Mode() ModeID { return d.mode }

// Ctl issues a raw control request; see the documentation on the per-mode
// decoders.
func (d *DynamicDecoder) Ctl(request int, value any) error {
	return d.inner().Ctl(request, value)
}

// FrameSize returns the number of samples produced per frame.
func (d *DynamicDecoder) FrameSize() int { return d.inner().FrameSize() }

// SetVBR enables or disables variable bit-rate.
func (d *DynamicDecoder) SetVBR(enabled bool) { d.inner().SetVBR(enabled) }

// VBR reports whether variable bit-rate is enabled.
func (d *DynamicDecoder) VBR() bool { return d.inner().VBR() }

// SetVBRQuality sets the quality target used in variable bit-rate operation,
// between 0.0 and 10.0.
func (d *DynamicDecoder) SetVBRQuality(quality float32) { d.inner().SetVBRQuality(quality) }

// VBRQuality returns the quality target used in variable bit-rate operation.
func (d *DynamicDecoder) VBRQuality() float32 { return d.inner().VBRQuality() }

// SetVAD enables or disables voice activity detection.
func (d *DynamicDecoder) SetVAD(enabled bool) { d.inner().SetVAD(enabled) }

// VAD reports whether voice activity detection is enabled.
func (d *DynamicDecoder) VAD() bool { return d.inner().VAD() }

// SetABR sets the average bit-rate target in bits per second.
func (d *DynamicDecoder) SetABR(bitrate int) { d.inner().SetABR(bitrate) }

// ABR returns the average bit-rate target in bits per second.
func (d *DynamicDecoder) ABR() int { return d.inner().ABR() }

// SetQuality sets the overall quality, between 0 and 10.
func (d *DynamicDecoder) SetQuality(quality int) { d.inner().SetQuality(quality) }

// SetBitrate sets the bit-rate in bits per second.
func (d *DynamicDecoder) SetBitrate(bitrate int) { d.inner().SetBitrate(bitrate) }

// Bitrate returns the bit-rate of the stream being decoded, in bits per
// second.
func (d *DynamicDecoder) Bitrate() int { return d.inner().Bitrate() }

// SetSamplingRate sets the sampling rate, in Hz, used for bit-rate
// computation.
func (d *DynamicDecoder) SetSamplingRate(rate int) { d.inner().SetSamplingRate(rate) }

// SamplingRate returns the sampling rate used for bit-rate computation.
func (d *DynamicDecoder) SamplingRate() int { return d.inner().SamplingRate() }

// ResetState resets the codec memories to zero.
func (d *DynamicDecoder) ResetState() { d.inner().ResetState() }

// SetPLCTuning sets the expected packet loss percentage used to tune the
// loss concealment.
func (d *DynamicDecoder) SetPLCTuning(lossRate int) { d.inner().SetPLCTuning(lossRate) }

// PLCTuning returns the expected packet loss percentage.
func (d *DynamicDecoder) PLCTuning() int { return d.inner().PLCTuning() }

// SetVBRMaxBitrate caps the bit-rate that variable bit-rate operation may
// select.
func (d *DynamicDecoder) SetVBRMaxBitrate(bitrate int) { d.inner().SetVBRMaxBitrate(bitrate) }

// VBRMaxBitrate returns the bit-rate cap for variable bit-rate operation.
func (d *DynamicDecoder) VBRMaxBitrate() int { return d.inner().VBRMaxBitrate() }

// SetSubmodeEncoding sets whether each frame carries its submode in-band.
func (d *DynamicDecoder) SetSubmodeEncoding(enabled bool) { d.inner().SetSubmodeEncoding(enabled) }

// SubmodeEncoding reports whether each frame carries its submode in-band.
func (d *DynamicDecoder) SubmodeEncoding() bool { return d.inner().SubmodeEncoding() }

// Lookahead returns the algorithmic delay of the decoder in samples.
func (d *DynamicDecoder) Lookahead() int { return d.inner().Lookahead() }

// SetHighpass enables or disables highpass filtering of the output.
func (d *DynamicDecoder) SetHighpass(enabled bool) { d.inner().SetHighpass(enabled) }

// Highpass reports whether highpass filtering is enabled.
func (d *DynamicDecoder) Highpass() bool { return d.inner().Highpass() }

// Decode decompresses one frame of data into pcm. A nil or empty data slice
// makes the decoder conceal a lost frame instead.
func (d *DynamicDecoder) Decode(data []byte, pcm []int16) error {
	return d.inner().Decode(data, pcm)
}

// Close destroys the underlying decoder. It is safe to call more than once.
func (d *DynamicDecoder) Close() { d.inner().Close() }
