package speex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spx "github.com/actioninja/go-speex"
	ac "github.com/actioninja/go-speex/audiocodec"
)

var (
	_ ac.Encoder = (*SpeexEncoder)(nil)
	_ ac.Decoder = (*SpeexDecoder)(nil)
)

func TestEncoderDefaults(t *testing.T) {
	enc, err := NewSpeexEncoder()
	require.NoError(t, err)
	defer enc.Close()

	assert.Equal(t, "speex", enc.Name())
	opts := enc.Options()
	assert.Equal(t, spx.WideBand, opts.Mode)
	assert.Equal(t, 8, opts.Quality)
	assert.Equal(t, 16000, opts.Samplerate)
	assert.True(t, opts.Highpass)
	assert.Equal(t, spx.WideBand.FrameSize(), enc.FrameSize())
}

func TestEncoderOptions(t *testing.T) {
	enc, err := NewSpeexEncoder(
		Mode(spx.NarrowBand),
		Quality(5),
		VBR(true),
		VAD(true),
		Highpass(false),
	)
	require.NoError(t, err)
	defer enc.Close()

	opts := enc.Options()
	assert.Equal(t, spx.NarrowBand, opts.Mode)
	assert.Equal(t, 5, opts.Quality)
	assert.True(t, opts.VBR)
	assert.True(t, opts.VAD)
	assert.False(t, opts.Highpass)
	assert.Equal(t, 8000, opts.Samplerate)
}

func TestEncoderRejectsBadOptions(t *testing.T) {
	_, err := NewSpeexEncoder(Quality(11))
	assert.Error(t, err)

	_, err = NewSpeexEncoder(Mode(spx.ModeID(9)))
	assert.Error(t, err)
}

func TestEncoderRejectsUnknownType(t *testing.T) {
	enc, err := NewSpeexEncoder()
	require.NoError(t, err)
	defer enc.Close()

	_, err = enc.Encode([]float64{1, 2, 3}, make([]byte, 2048))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	enc, err := NewSpeexEncoder(Mode(spx.NarrowBand))
	require.NoError(t, err)
	defer enc.Close()

	dec, err := NewSpeexDecoder(Mode(spx.NarrowBand))
	require.NoError(t, err)
	defer dec.Close()

	pcm := make([]int16, enc.FrameSize())
	for i := range pcm {
		pcm[i] = int16(i % 128)
	}
	data := make([]byte, 2048)

	n, err := enc.Encode(pcm, data)
	require.NoError(t, err)
	require.Positive(t, n)

	out := make([]int16, dec.FrameSize())
	samples, err := dec.Decode(data[:n], out)
	require.NoError(t, err)
	assert.Equal(t, dec.FrameSize(), samples)
}

func TestDecoderConcealment(t *testing.T) {
	dec, err := NewSpeexDecoder()
	require.NoError(t, err)
	defer dec.Close()

	assert.Equal(t, "speex", dec.Name())

	out := make([]int16, dec.FrameSize())
	samples, err := dec.Decode(nil, out)
	require.NoError(t, err)
	assert.Equal(t, dec.FrameSize(), samples)
}
