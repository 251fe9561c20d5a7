package audiocodec

type Encoder interface {
	Name() string
	Encode(interface{}, []byte) (int, error) // typically int16 input
}

type Decoder interface {
	Name() string
	Decode([]byte, []int16, ...Options) (int, error) // int16 output
}

type Option func(*Options)

type Options struct {
	Samplerate int
	Channels   int
	Bitdepth   int
}
