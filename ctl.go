package speex

/*
#include <speex/speex.h>
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Control request identifiers as defined by <speex/speex.h>, accepted by Ctl.
// The named accessors cover the common ones; the full set is exported for
// callers that need the rest.
const (
	SPEEX_SET_ENH              = C.SPEEX_SET_ENH
	SPEEX_GET_ENH              = C.SPEEX_GET_ENH
	SPEEX_GET_FRAME_SIZE       = C.SPEEX_GET_FRAME_SIZE
	SPEEX_SET_QUALITY          = C.SPEEX_SET_QUALITY
	SPEEX_SET_MODE             = C.SPEEX_SET_MODE
	SPEEX_GET_MODE             = C.SPEEX_GET_MODE
	SPEEX_SET_LOW_MODE         = C.SPEEX_SET_LOW_MODE
	SPEEX_GET_LOW_MODE         = C.SPEEX_GET_LOW_MODE
	SPEEX_SET_HIGH_MODE        = C.SPEEX_SET_HIGH_MODE
	SPEEX_GET_HIGH_MODE        = C.SPEEX_GET_HIGH_MODE
	SPEEX_SET_VBR              = C.SPEEX_SET_VBR
	SPEEX_GET_VBR              = C.SPEEX_GET_VBR
	SPEEX_SET_VBR_QUALITY      = C.SPEEX_SET_VBR_QUALITY
	SPEEX_GET_VBR_QUALITY      = C.SPEEX_GET_VBR_QUALITY
	SPEEX_SET_COMPLEXITY       = C.SPEEX_SET_COMPLEXITY
	SPEEX_GET_COMPLEXITY       = C.SPEEX_GET_COMPLEXITY
	SPEEX_SET_BITRATE          = C.SPEEX_SET_BITRATE
	SPEEX_GET_BITRATE          = C.SPEEX_GET_BITRATE
	SPEEX_SET_SAMPLING_RATE    = C.SPEEX_SET_SAMPLING_RATE
	SPEEX_GET_SAMPLING_RATE    = C.SPEEX_GET_SAMPLING_RATE
	SPEEX_RESET_STATE          = C.SPEEX_RESET_STATE
	SPEEX_SET_VAD              = C.SPEEX_SET_VAD
	SPEEX_GET_VAD              = C.SPEEX_GET_VAD
	SPEEX_SET_ABR              = C.SPEEX_SET_ABR
	SPEEX_GET_ABR              = C.SPEEX_GET_ABR
	SPEEX_SET_DTX              = C.SPEEX_SET_DTX
	SPEEX_GET_DTX              = C.SPEEX_GET_DTX
	SPEEX_SET_SUBMODE_ENCODING = C.SPEEX_SET_SUBMODE_ENCODING
	SPEEX_GET_SUBMODE_ENCODING = C.SPEEX_GET_SUBMODE_ENCODING
	SPEEX_GET_LOOKAHEAD        = C.SPEEX_GET_LOOKAHEAD
	SPEEX_SET_PLC_TUNING       = C.SPEEX_SET_PLC_TUNING
	SPEEX_GET_PLC_TUNING       = C.SPEEX_GET_PLC_TUNING
	SPEEX_SET_VBR_MAX_BITRATE  = C.SPEEX_SET_VBR_MAX_BITRATE
	SPEEX_GET_VBR_MAX_BITRATE  = C.SPEEX_GET_VBR_MAX_BITRATE
	SPEEX_SET_HIGHPASS         = C.SPEEX_SET_HIGHPASS
	SPEEX_GET_HIGHPASS         = C.SPEEX_GET_HIGHPASS
	SPEEX_GET_ACTIVITY         = C.SPEEX_GET_ACTIVITY
)

type handleKind int

const (
	kindEncoder handleKind = iota
	kindDecoder
)

// controller is the control surface shared by encoder and decoder handles.
// It holds the native state pointer on behalf of the embedding handle and
// routes every operation through the engine's per-kind ctl entry point.
type controller struct {
	st   unsafe.Pointer
	kind handleKind
}

func (c *controller) raw(request C.int, ptr unsafe.Pointer) C.int {
	if c.st == nil {
		panic("speex: use of closed handle")
	}
	var ret C.int
	switch c.kind {
	case kindEncoder:
		ret = C.speex_encoder_ctl(c.st, request, ptr)
	case kindDecoder:
		ret = C.speex_decoder_ctl(c.st, request, ptr)
	default:
		panic(fmt.Sprintf("speex: invalid handle kind %d", int(c.kind)))
	}
	runtime.KeepAlive(c)
	return ret
}

// ctlError translates the engine's three-valued control result. The engine
// contract guarantees only {0, -1, -2}; anything else is a defect and not
// recoverable.
func ctlError(ret C.int, request int) error {
	switch ret {
	case 0:
		return nil
	case -1:
		return UnknownRequestError{Request: request}
	case -2:
		return ErrInvalidParameter
	}
	panic(fmt.Sprintf("speex: control request %d returned %d", request, int(ret)))
}

// Ctl issues a raw control request. value must be a *int32, a *float32 or nil,
// matching what the request code expects; any other type panics. Most callers
// want the named accessors instead, which cannot fail.
func (c *controller) Ctl(request int, value any) error {
	var ptr unsafe.Pointer
	switch v := value.(type) {
	case nil:
	case *int32:
		ptr = unsafe.Pointer(v)
	case *float32:
		ptr = unsafe.Pointer(v)
	default:
		panic(fmt.Sprintf("speex: unsupported ctl value type %T", value))
	}
	return ctlError(c.raw(C.int(request), ptr), request)
}

// must issues a request that is known to be valid for the handle kind, so any
// failure means the engine broke its contract.
func (c *controller) must(request C.int, ptr unsafe.Pointer) {
	if err := ctlError(c.raw(request, ptr), int(request)); err != nil {
		panic(fmt.Sprintf("speex: control request %d rejected: %v", int(request), err))
	}
}

func (c *controller) getInt(request C.int) int32 {
	var v C.spx_int32_t
	c.must(request, unsafe.Pointer(&v))
	return int32(v)
}

func (c *controller) setInt(request C.int, v int32) {
	cv := C.spx_int32_t(v)
	c.must(request, unsafe.Pointer(&cv))
}

func (c *controller) getBool(request C.int) bool {
	return c.getInt(request) != 0
}

func (c *controller) setBool(request C.int, v bool) {
	var i int32
	if v {
		i = 1
	}
	c.setInt(request, i)
}

func (c *controller) getFloat(request C.int) float32 {
	var v C.float
	c.must(request, unsafe.Pointer(&v))
	return float32(v)
}

func (c *controller) setFloat(request C.int, v float32) {
	cv := C.float(v)
	c.must(request, unsafe.Pointer(&cv))
}

// FrameSize returns the number of samples processed per frame.
func (c *controller) FrameSize() int {
	return int(c.getInt(C.SPEEX_GET_FRAME_SIZE))
}

// SetVBR enables or disables variable bit-rate.
func (c *controller) SetVBR(enabled bool) {
	c.setBool(C.SPEEX_SET_VBR, enabled)
}

// VBR reports whether variable bit-rate is enabled.
func (c *controller) VBR() bool {
	return c.getBool(C.SPEEX_GET_VBR)
}

// SetVBRQuality sets the quality target used in variable bit-rate operation,
// between 0.0 and 10.0.
func (c *controller) SetVBRQuality(quality float32) {
	c.setFloat(C.SPEEX_SET_VBR_QUALITY, quality)
}

// VBRQuality returns the quality target used in variable bit-rate operation.
func (c *controller) VBRQuality() float32 {
	return c.getFloat(C.SPEEX_GET_VBR_QUALITY)
}

// SetVAD enables or disables voice activity detection.
func (c *controller) SetVAD(enabled bool) {
	c.setBool(C.SPEEX_SET_VAD, enabled)
}

// VAD reports whether voice activity detection is enabled.
func (c *controller) VAD() bool {
	return c.getBool(C.SPEEX_GET_VAD)
}

// SetABR sets the average bit-rate target in bits per second.
func (c *controller) SetABR(bitrate int) {
	c.setInt(C.SPEEX_SET_ABR, int32(bitrate))
}

// ABR returns the average bit-rate target in bits per second.
func (c *controller) ABR() int {
	return int(c.getInt(C.SPEEX_GET_ABR))
}

// SetQuality sets the overall quality, between 0 and 10. The default is 8.
func (c *controller) SetQuality(quality int) {
	c.setInt(C.SPEEX_SET_QUALITY, int32(quality))
}

// SetBitrate sets the bit-rate in bits per second. The engine picks the
// closest tier it can honor, so Bitrate may afterwards report a lower value
// than the one requested.
func (c *controller) SetBitrate(bitrate int) {
	c.setInt(C.SPEEX_SET_BITRATE, int32(bitrate))
}

// Bitrate returns the current bit-rate in bits per second.
func (c *controller) Bitrate() int {
	return int(c.getInt(C.SPEEX_GET_BITRATE))
}

// SetSamplingRate sets the sampling rate, in Hz, used for bit-rate
// computation. It does not resample; feeding audio at a different rate than
// the mode's native one still produces frequency-shifted output.
func (c *controller) SetSamplingRate(rate int) {
	c.setInt(C.SPEEX_SET_SAMPLING_RATE, int32(rate))
}

// SamplingRate returns the sampling rate used for bit-rate computation.
func (c *controller) SamplingRate() int {
	return int(c.getInt(C.SPEEX_GET_SAMPLING_RATE))
}

// ResetState resets the codec memories to zero, as if the handle had just
// been created. Tuning parameters are not part of those memories.
func (c *controller) ResetState() {
	c.must(C.SPEEX_RESET_STATE, nil)
}

// SetSubmodeEncoding sets whether each frame carries its submode in-band.
// Disabling it saves a few bits per frame but breaks compliance with the
// Speex format.
func (c *controller) SetSubmodeEncoding(enabled bool) {
	c.setBool(C.SPEEX_SET_SUBMODE_ENCODING, enabled)
}

// SubmodeEncoding reports whether each frame carries its submode in-band.
func (c *controller) SubmodeEncoding() bool {
	return c.getBool(C.SPEEX_GET_SUBMODE_ENCODING)
}

// Lookahead returns the algorithmic delay of the handle in samples. The total
// end-to-end delay of a stream is the encoder lookahead plus the decoder
// lookahead.
func (c *controller) Lookahead() int {
	return int(c.getInt(C.SPEEX_GET_LOOKAHEAD))
}

// SetPLCTuning sets the expected packet loss percentage used to tune the
// loss concealment.
func (c *controller) SetPLCTuning(lossRate int) {
	c.setInt(C.SPEEX_SET_PLC_TUNING, int32(lossRate))
}

// PLCTuning returns the expected packet loss percentage.
func (c *controller) PLCTuning() int {
	return int(c.getInt(C.SPEEX_GET_PLC_TUNING))
}

// SetVBRMaxBitrate caps the bit-rate, in bits per second, that variable
// bit-rate operation may select.
func (c *controller) SetVBRMaxBitrate(bitrate int) {
	c.setInt(C.SPEEX_SET_VBR_MAX_BITRATE, int32(bitrate))
}

// VBRMaxBitrate returns the bit-rate cap for variable bit-rate operation.
func (c *controller) VBRMaxBitrate() int {
	return int(c.getInt(C.SPEEX_GET_VBR_MAX_BITRATE))
}

// SetHighpass enables or disables highpass filtering of the signal.
func (c *controller) SetHighpass(enabled bool) {
	c.setBool(C.SPEEX_SET_HIGHPASS, enabled)
}

// Highpass reports whether highpass filtering is enabled.
func (c *controller) Highpass() bool {
	return c.getBool(C.SPEEX_GET_HIGHPASS)
}
