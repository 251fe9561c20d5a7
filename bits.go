package speex

/*
#include <speex/speex_bits.h>
*/
import "C"

// bits wraps the engine's bit-level container. The container format belongs
// to the streaming layer; only what the encode and decode entry points need
// is wrapped here, so the type stays unexported.
type bits struct {
	b C.SpeexBits
}

func (bt *bits) init() {
	C.speex_bits_init(&bt.b)
}

func (bt *bits) destroy() {
	C.speex_bits_destroy(&bt.b)
}
