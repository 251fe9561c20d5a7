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

// decoder carries the state shared by all decoder kinds. The embedding type
// fixes the bandwidth mode.
type decoder struct {
	controller
	mode      ModeID
	frameSize int
	bits      bits
}

func (d *decoder) init(mode ModeID) {
	st := C.speex_decoder_init(mode.mode())
	if st == nil {
		panic("speex: speex_decoder_init returned nil")
	}
	d.st = st
	d.kind = kindDecoder
	d.mode = mode
	d.bits.init()
	d.frameSize = d.FrameSize()
}

// Mode returns the bandwidth mode the decoder was created with.
func (d *decoder) Mode() ModeID {
	return d.mode
}

// Decode decompresses one frame of data into pcm, which must hold FrameSize
// samples. A nil or empty data slice makes the decoder conceal a lost frame
// instead, extrapolating it from the previous ones.
func (d *decoder) Decode(data []byte, pcm []int16) error {
	if d.st == nil {
		panic("speex: use of closed decoder")
	}
	if len(pcm) != d.frameSize {
		return fmt.Errorf("speex: pcm holds %d samples, frame size is %d", len(pcm), d.frameSize)
	}
	var bp *C.SpeexBits
	if len(data) > 0 {
		C.speex_bits_read_from(&d.bits.b, (*C.char)(unsafe.Pointer(&data[0])), C.int(len(data)))
		bp = &d.bits.b
	}
	ret := C.speex_decode_int(d.st, bp, (*C.spx_int16_t)(unsafe.Pointer(&pcm[0])))
	runtime.KeepAlive(d)
	switch ret {
	case 0:
		return nil
	case -1:
		return ErrEndOfStream
	case -2:
		return ErrCorruptStream
	}
	panic(fmt.Sprintf("speex: speex_decode_int returned %d", int(ret)))
}

// Close destroys the native decoder state. It is safe to call more than
// once; only the first call releases anything. The decoder must not be used
// afterwards.
func (d *decoder) Close() {
	if d.st == nil {
		return
	}
	C.speex_decoder_destroy(d.st)
	d.st = nil
	d.bits.destroy()
}

// NBDecoder is a decoder fixed to the 8 kHz narrowband mode.
type NBDecoder struct {
	decoder
}

// NewNBDecoder creates a narrowband decoder.
func NewNBDecoder() *NBDecoder {
	d := &NBDecoder{}
	d.init(NarrowBand)
	runtime.SetFinalizer(d, func(d *NBDecoder) { d.Close() })
	return d
}

// WBDecoder is a decoder fixed to the 16 kHz wideband mode.
type WBDecoder struct {
	decoder
}

// NewWBDecoder creates a wideband decoder.
func NewWBDecoder() *WBDecoder {
	d := &WBDecoder{}
	d.init(WideBand)
	runtime.SetFinalizer(d, func(d *WBDecoder) { d.Close() })
	return d
}

// UWBDecoder is a decoder fixed to the 32 kHz ultra-wideband mode.
type UWBDecoder struct {
	decoder
}

// NewUWBDecoder creates an ultra-wideband decoder.
func NewUWBDecoder() *UWBDecoder {
	d := &UWBDecoder{}
	d.init(UltraWideBand)
	runtime.SetFinalizer(d, func(d *UWBDecoder) { d.Close() })
	return d
}
