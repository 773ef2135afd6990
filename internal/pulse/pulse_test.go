package pulse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const volumeDump = "Volume: front-left: 39321 /  60% / -13.31 dB,   front-right: 39321 /  60% / -13.31 dB"

func TestParseVolume(t *testing.T) {
	volume, ok := parseVolume(volumeDump)
	assert.True(t, ok)
	assert.Equal(t, 60, volume)
}

func TestParseVolumeNoPercentage(t *testing.T) {
	_, ok := parseVolume("Volume: unknown")
	assert.False(t, ok)
}

func TestParseMute(t *testing.T) {
	assert.True(t, parseMute("Mute: yes"))
	assert.False(t, parseMute("Mute: no"))
}

func TestSinkQuery(t *testing.T) {
	p := &Pulse{run: func(args ...string) ([]byte, error) {
		switch args[0] {
		case "get-sink-volume":
			return []byte(volumeDump), nil
		case "get-sink-mute":
			return []byte("Mute: yes"), nil
		}
		return nil, errors.New("unexpected command")
	}}

	volume, mute, ok := p.Sink()
	assert.True(t, ok)
	assert.True(t, mute)
	assert.Equal(t, 60, volume)
}

func TestSinkUnavailable(t *testing.T) {
	p := &Pulse{run: func(...string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}}

	_, _, ok := p.Sink()
	assert.False(t, ok, "a failed query reports nothing, not an error")
}
