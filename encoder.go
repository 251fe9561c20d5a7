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

// encoder carries the state shared by all encoder kinds. The embedding type
// fixes the bandwidth mode.
type encoder struct {
	controller
	mode      ModeID
	frameSize int
	bits      bits
}

func (e *encoder) init(mode ModeID) {
	st := C.speex_encoder_init(mode.mode())
	if st == nil {
		panic("speex: speex_encoder_init returned nil")
	}
	e.st = st
	e.kind = kindEncoder
	e.mode = mode
	e.bits.init()
	e.frameSize = e.FrameSize()
}

// Mode returns the bandwidth mode the encoder was created with.
func (e *encoder) Mode() ModeID {
	return e.mode
}

// Encode compresses exactly one frame of audio into data and returns the
// number of bytes written. pcm must hold FrameSize samples; data must be
// large enough for the compressed frame, for which 2048 bytes is always
// sufficient.
func (e *encoder) Encode(pcm []int16, data []byte) (int, error) {
	if e.st == nil {
		panic("speex: use of closed encoder")
	}
	if len(pcm) != e.frameSize {
		return 0, fmt.Errorf("speex: pcm holds %d samples, frame size is %d", len(pcm), e.frameSize)
	}
	if len(data) == 0 {
		return 0, ErrBufferTooSmall
	}
	C.speex_bits_reset(&e.bits.b)
	C.speex_encode_int(e.st, (*C.spx_int16_t)(unsafe.Pointer(&pcm[0])), &e.bits.b)
	if int(C.speex_bits_nbytes(&e.bits.b)) > len(data) {
		return 0, ErrBufferTooSmall
	}
	n := C.speex_bits_write(&e.bits.b, (*C.char)(unsafe.Pointer(&data[0])), C.int(len(data)))
	runtime.KeepAlive(e)
	return int(n), nil
}

// Close destroys the native encoder state. It is safe to call more than
// once; only the first call releases anything. The encoder must not be used
// afterwards.
func (e *encoder) Close() {
	if e.st == nil {
		return
	}
	C.speex_encoder_destroy(e.st)
	e.st = nil
	e.bits.destroy()
}

// NBEncoder is an encoder fixed to the 8 kHz narrowband mode.
type NBEncoder struct {
	encoder
}

// NewNBEncoder creates a narrowband encoder.
func NewNBEncoder() *NBEncoder {
	e := &NBEncoder{}
	e.init(NarrowBand)
	runtime.SetFinalizer(e, func(e *NBEncoder) { e.Close() })
	return e
}

// WBEncoder is an encoder fixed to the 16 kHz wideband mode.
type WBEncoder struct {
	encoder
}

// NewWBEncoder creates a wideband encoder.
func NewWBEncoder() *WBEncoder {
	e := &WBEncoder{}
	e.init(WideBand)
	runtime.SetFinalizer(e, func(e *WBEncoder) { e.Close() })
	return e
}

// UWBEncoder is an encoder fixed to the 32 kHz ultra-wideband mode.
type UWBEncoder struct {
	encoder
}

// NewUWBEncoder creates an ultra-wideband encoder.
func NewUWBEncoder() *UWBEncoder {
	e := &UWBEncoder{}
	e.init(UltraWideBand)
	runtime.SetFinalizer(e, func(e *UWBEncoder) { e.Close() })
	return e
}
