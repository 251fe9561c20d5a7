package speex

/*
#include <speex/speex.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ModeID selects one of the three bandwidth modes of the codec. The values
// mirror the SPEEX_MODEID_* constants and are what Speex stream headers carry.
type ModeID int

const (
	// NarrowBand is the 8 kHz mode.
	NarrowBand ModeID = C.SPEEX_MODEID_NB
	// WideBand is the 16 kHz mode.
	WideBand ModeID = C.SPEEX_MODEID_WB
	// UltraWideBand is the 32 kHz mode.
	UltraWideBand ModeID = C.SPEEX_MODEID_UWB
)

// ModeIDFromInt converts a raw mode identifier, such as one read from a
// stream header, into a ModeID. Values outside the three defined modes are
// rejected.
func ModeIDFromInt(v int) (ModeID, error) {
	switch m := ModeID(v); m {
	case NarrowBand, WideBand, UltraWideBand:
		return m, nil
	}
	return 0, fmt.Errorf("speex: invalid mode id %d", v)
}

func (m ModeID) String() string {
	switch m {
	case NarrowBand:
		return "narrowband"
	case WideBand:
		return "wideband"
	case UltraWideBand:
		return "ultra-wideband"
	}
	return fmt.Sprintf("ModeID(%d)", int(m))
}

// SampleRate returns the nominal sampling rate of the mode in Hz.
func (m ModeID) SampleRate() int {
	switch m {
	case NarrowBand:
		return 8000
	case WideBand:
		return 16000
	case UltraWideBand:
		return 32000
	}
	panic(fmt.Sprintf("speex: invalid mode id %d", int(m)))
}

// FrameSize returns the native frame length of the mode in samples. The value
// is a constant of the engine and identical for every handle of the mode.
func (m ModeID) FrameSize() int {
	var size C.spx_int32_t
	if ret := C.speex_mode_query(m.mode(), C.SPEEX_MODE_FRAME_SIZE, unsafe.Pointer(&size)); ret != 0 {
		panic(fmt.Sprintf("speex: SPEEX_MODE_FRAME_SIZE query failed for %s (%d)", m, int(ret)))
	}
	return int(size)
}

// mode resolves the engine's static descriptor. The descriptors are hard
// constants of libspeex, so a nil result means the library itself is broken
// or linked incorrectly.
func (m ModeID) mode() *C.SpeexMode {
	if m != NarrowBand && m != WideBand && m != UltraWideBand {
		panic(fmt.Sprintf("speex: invalid mode id %d", int(m)))
	}
	ptr := C.speex_lib_get_mode(C.int(m))
	if ptr == nil {
		panic(fmt.Sprintf("speex: no mode descriptor for %s", m))
	}
	return ptr
}
