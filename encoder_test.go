package speex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderLifecycle(t *testing.T) {
	nb := NewNBEncoder()
	wb := NewWBEncoder()
	uwb := NewUWBEncoder()

	assert.Equal(t, NarrowBand, nb.Mode())
	assert.Equal(t, WideBand, wb.Mode())
	assert.Equal(t, UltraWideBand, uwb.Mode())

	// every construction yields its own handle
	assert.NotEqual(t, nb.st, wb.st)
	assert.NotEqual(t, wb.st, uwb.st)
	assert.NotEqual(t, nb.st, uwb.st)

	nb.Close()
	wb.Close()
	uwb.Close()
}

func TestEncoderCloseIdempotent(t *testing.T) {
	enc := NewNBEncoder()
	enc.Close()
	assert.NotPanics(t, func() { enc.Close() })
}

func TestEncoderUseAfterClosePanics(t *testing.T) {
	enc := NewNBEncoder()
	enc.Close()

	assert.Panics(t, func() { enc.FrameSize() })
	assert.Panics(t, func() { enc.SetVBR(true) })

	pcm := make([]int16, NarrowBand.FrameSize())
	buf := make([]byte, 2048)
	assert.Panics(t, func() { _, _ = enc.Encode(pcm, buf) })
}

func TestEncoderEncode(t *testing.T) {
	for _, mode := range []ModeID{NarrowBand, WideBand, UltraWideBand} {
		t.Run(mode.String(), func(t *testing.T) {
			enc := NewDynamicEncoder(mode)
			defer enc.Close()

			pcm := make([]int16, mode.FrameSize())
			for i := range pcm {
				pcm[i] = int16((i * 7) % 256)
			}
			buf := make([]byte, 2048)

			n, err := enc.Encode(pcm, buf)
			require.NoError(t, err)
			assert.Positive(t, n)
			assert.LessOrEqual(t, n, len(buf))
		})
	}
}

func TestEncoderEncodeWrongFrameSize(t *testing.T) {
	enc := NewNBEncoder()
	defer enc.Close()

	buf := make([]byte, 2048)
	_, err := enc.Encode(make([]int16, 10), buf)
	assert.Error(t, err)

	_, err = enc.Encode(make([]int16, NarrowBand.FrameSize()+1), buf)
	assert.Error(t, err)
}

func TestEncoderEncodeSmallBuffer(t *testing.T) {
	enc := NewNBEncoder()
	defer enc.Close()

	pcm := make([]int16, NarrowBand.FrameSize())
	_, err := enc.Encode(pcm, nil)
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	_, err = enc.Encode(pcm, make([]byte, 2))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}
