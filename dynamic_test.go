package speex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicEncoderMatchesDirect(t *testing.T) {
	// the facade must behave exactly like a handle of the fixed type
	direct := NewWBEncoder()
	dynamic := NewDynamicEncoder(WideBand)
	defer direct.Close()
	defer dynamic.Close()

	direct.SetQuality(7)
	dynamic.SetQuality(7)
	assert.Equal(t, direct.Bitrate(), dynamic.Bitrate())

	direct.SetVBR(true)
	dynamic.SetVBR(true)
	assert.Equal(t, direct.VBR(), dynamic.VBR())

	assert.Equal(t, direct.FrameSize(), dynamic.FrameSize())
	assert.Equal(t, direct.Lookahead(), dynamic.Lookahead())
}

func TestDynamicEncoderModeFixed(t *testing.T) {
	for _, mode := range []ModeID{NarrowBand, WideBand, UltraWideBand} {
		enc := NewDynamicEncoder(mode)
		assert.Equal(t, mode, enc.Mode())
		assert.Equal(t, mode.FrameSize(), enc.FrameSize())

		enc.SetQuality(3)
		enc.SetHighpass(false)
		assert.Equal(t, mode, enc.Mode())

		enc.Close()
	}
}

func TestDynamicDecoderForwarding(t *testing.T) {
	dec := NewDynamicDecoder(UltraWideBand)
	defer dec.Close()

	assert.Equal(t, UltraWideBand, dec.Mode())
	assert.Equal(t, UltraWideBand.FrameSize(), dec.FrameSize())

	dec.SetHighpass(false)
	assert.False(t, dec.Highpass())

	out := make([]int16, dec.FrameSize())
	require.NoError(t, dec.Decode(nil, out))
}

func TestDynamicInvalidModePanics(t *testing.T) {
	assert.Panics(t, func() { NewDynamicEncoder(ModeID(9)) })
	assert.Panics(t, func() { NewDynamicDecoder(ModeID(-2)) })
}

func TestDynamicCloseIdempotent(t *testing.T) {
	enc := NewDynamicEncoder(NarrowBand)
	dec := NewDynamicDecoder(NarrowBand)
	enc.Close()
	dec.Close()
	assert.NotPanics(t, func() { enc.Close() })
	assert.NotPanics(t, func() { dec.Close() })
}

func TestDynamicRoundtrip(t *testing.T) {
	enc := NewDynamicEncoder(WideBand)
	dec := NewDynamicDecoder(WideBand)
	defer enc.Close()
	defer dec.Close()

	pcm := make([]int16, enc.FrameSize())
	buf := make([]byte, 2048)

	n, err := enc.Encode(pcm, buf)
	require.NoError(t, err)

	out := make([]int16, dec.FrameSize())
	require.NoError(t, dec.Decode(buf[:n], out))
}
