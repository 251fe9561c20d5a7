package speex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderLifecycle(t *testing.T) {
	nb := NewNBDecoder()
	wb := NewWBDecoder()
	uwb := NewUWBDecoder()

	assert.Equal(t, NarrowBand, nb.Mode())
	assert.Equal(t, WideBand, wb.Mode())
	assert.Equal(t, UltraWideBand, uwb.Mode())

	assert.NotEqual(t, nb.st, wb.st)
	assert.NotEqual(t, wb.st, uwb.st)

	nb.Close()
	wb.Close()
	uwb.Close()

	assert.NotPanics(t, func() { nb.Close() })
}

func TestDecoderUseAfterClosePanics(t *testing.T) {
	dec := NewWBDecoder()
	dec.Close()

	assert.Panics(t, func() { dec.FrameSize() })
	assert.Panics(t, func() { _ = dec.Decode(nil, make([]int16, WideBand.FrameSize())) })
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	for _, mode := range []ModeID{NarrowBand, WideBand, UltraWideBand} {
		t.Run(mode.String(), func(t *testing.T) {
			enc := NewDynamicEncoder(mode)
			dec := NewDynamicDecoder(mode)
			defer enc.Close()
			defer dec.Close()

			frameSize := mode.FrameSize()
			pcm := make([]int16, frameSize)
			for i := range pcm {
				pcm[i] = int16(1000 * (i % 3))
			}
			buf := make([]byte, 2048)

			n, err := enc.Encode(pcm, buf)
			require.NoError(t, err)
			require.Positive(t, n)

			out := make([]int16, frameSize)
			require.NoError(t, dec.Decode(buf[:n], out))
		})
	}
}

func TestDecoderConcealment(t *testing.T) {
	dec := NewNBDecoder()
	defer dec.Close()

	out := make([]int16, NarrowBand.FrameSize())
	// nil data extrapolates a lost frame from the (empty) history
	require.NoError(t, dec.Decode(nil, out))
	require.NoError(t, dec.Decode(nil, out))
}

func TestDecoderWrongFrameSize(t *testing.T) {
	dec := NewNBDecoder()
	defer dec.Close()

	assert.Error(t, dec.Decode(nil, make([]int16, 10)))
}
