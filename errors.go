package speex

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned by Ctl when the engine rejects the supplied
// value as out of range.
var ErrInvalidParameter = errors.New("speex: invalid parameter")

// ErrBufferTooSmall is returned by Encode when the output buffer cannot hold
// the compressed frame.
var ErrBufferTooSmall = errors.New("speex: output buffer too small")

// ErrEndOfStream is returned by Decode when the compressed data ends before a
// whole frame could be read.
var ErrEndOfStream = errors.New("speex: end of stream")

// ErrCorruptStream is returned by Decode when the compressed data is damaged.
var ErrCorruptStream = errors.New("speex: corrupt stream")

// UnknownRequestError is returned by Ctl when the handle does not recognize
// the request code, for example an encoder-only request issued to a decoder.
type UnknownRequestError struct {
	// Request is the rejected request code.
	Request int
}

func (e UnknownRequestError) Error() string {
	return fmt.Sprintf("speex: unknown control request %d", e.Request)
}
