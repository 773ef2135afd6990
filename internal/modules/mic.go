package modules

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
	"codeberg.org/tkardel/baro/internal/pulse"
)

// Mic reports the default source's volume through the shared audio
// handle.
type Mic struct {
	conf  config.MicConfig
	pulse *pulse.Pulse
}

func NewMic(conf config.MicConfig, handle *pulse.Pulse) *Mic {
	return &Mic{conf: conf, pulse: handle}
}

func (m *Mic) Key() string         { return "mic" }
func (m *Mic) Name() string        { return "mic" }
func (m *Mic) Placeholder() string { return m.conf.Placeholder }
func (m *Mic) Format() string      { return m.conf.Format }
func (m *Mic) Tick() time.Duration { return m.conf.Tick() }

func (m *Mic) Sample(_ context.Context) (*engine.Sample, error) {
	volume, mute, ok := m.pulse.Source()
	if !ok {
		return nil, nil
	}

	label := m.conf.Label
	if mute {
		label = m.conf.MuteLabel
	}

	return &engine.Sample{
		Value: fmt.Sprintf("%3d%%", volume),
		Label: label,
	}, nil
}
