package speex

/*
#include <speex/speex_stereo.h>
*/
import "C"

import "runtime"

// StereoState holds the intensity-stereo folding state of one stream. It is
// used by the streaming layer to fold interleaved stereo into the mono
// representation the codec works on, and to unfold it again after decoding.
// Its lifecycle is independent of any encoder or decoder.
type StereoState struct {
	st *C.SpeexStereoState
}

// NewStereoState creates a stereo state with the default folding
// coefficients.
func NewStereoState() *StereoState {
	st := C.speex_stereo_state_init()
	if st == nil {
		panic("speex: speex_stereo_state_init returned nil")
	}
	s := &StereoState{st: st}
	runtime.SetFinalizer(s, func(s *StereoState) { s.Close() })
	return s
}

// Reset restores the default folding coefficients in place. It may be called
// at any time, including before the state has ever been used.
func (s *StereoState) Reset() {
	if s.st == nil {
		panic("speex: use of closed stereo state")
	}
	C.speex_stereo_state_reset(s.st)
	runtime.KeepAlive(s)
}

// Close destroys the native stereo state. It is safe to call more than once;
// only the first call releases anything.
func (s *StereoState) Close() {
	if s.st == nil {
		return
	}
	C.speex_stereo_state_destroy(s.st)
	s.st = nil
}
