package modules

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
	"codeberg.org/tkardel/baro/internal/pulse"
)

// Sound reports the default sink's volume through the shared audio
// handle. A cycle where the server has nothing to report emits nothing;
// the rendered fragment keeps its last value.
type Sound struct {
	conf  config.SoundConfig
	pulse *pulse.Pulse
}

func NewSound(conf config.SoundConfig, handle *pulse.Pulse) *Sound {
	return &Sound{conf: conf, pulse: handle}
}

func (s *Sound) Key() string         { return "sound" }
func (s *Sound) Name() string        { return "sound" }
func (s *Sound) Placeholder() string { return s.conf.Placeholder }
func (s *Sound) Format() string      { return s.conf.Format }
func (s *Sound) Tick() time.Duration { return s.conf.Tick() }

func (s *Sound) Sample(_ context.Context) (*engine.Sample, error) {
	volume, mute, ok := s.pulse.Sink()
	if !ok {
		return nil, nil
	}

	label := s.conf.Label
	if mute {
		label = s.conf.MuteLabel
	}

	return &engine.Sample{
		Value: fmt.Sprintf("%3d%%", volume),
		Label: label,
	}, nil
}
