// Package speex provides Go bindings for the Speex voice codec (libspeex).
//
// Speex operates in one of three fixed bandwidth modes: narrowband (8 kHz),
// wideband (16 kHz) and ultra-wideband (32 kHz). The mode is chosen when an
// encoder or decoder is created and cannot change afterwards. Callers that
// know the mode at compile time use one of the per-mode types (NBEncoder,
// WBDecoder, ...); callers that learn the mode at run time, for example from
// a stream header, use DynamicEncoder and DynamicDecoder instead.
//
// All runtime tuning goes through the control surface shared by every encoder
// and decoder: named accessors such as SetQuality, SetVBR or Lookahead, and a
// raw Ctl escape hatch for request codes the accessors do not cover.
//
// Every encoder, decoder and stereo state owns a native handle and must be
// released with Close. Close is idempotent; a finalizer releases handles that
// are garbage collected without it, but relying on that delays the release
// until an arbitrary later GC cycle.
//
// This package requires libspeex and its development headers (pkg-config
// entry "speex").
package speex

/*
#cgo pkg-config: speex
#include <speex/speex.h>
*/
import "C"

import "unsafe"

// Version returns the version string of the linked libspeex.
func Version() string {
	var v *C.char
	C.speex_lib_ctl(C.SPEEX_LIB_GET_VERSION_STRING, unsafe.Pointer(&v))
	return C.GoString(v)
}
