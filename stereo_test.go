package speex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStereoStateLifecycle(t *testing.T) {
	s := NewStereoState()

	// reset may be issued any number of times, including before first use
	for i := 0; i < 10; i++ {
		s.Reset()
	}

	s.Close()
	assert.NotPanics(t, func() { s.Close() })
}

func TestStereoStateResetAfterClosePanics(t *testing.T) {
	s := NewStereoState()
	s.Close()
	assert.Panics(t, func() { s.Reset() })
}

func TestStereoStatesIndependent(t *testing.T) {
	a := NewStereoState()
	b := NewStereoState()
	defer a.Close()
	defer b.Close()

	assert.NotEqual(t, a.st, b.st)
	a.Reset()
	b.Reset()
}
