package modules

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
	"codeberg.org/tkardel/baro/internal/errors"
)

// Brightness reports the backlight level of one sysfs backlight device.
type Brightness struct {
	conf config.BrightnessConfig
}

func NewBrightness(conf config.BrightnessConfig) *Brightness {
	return &Brightness{conf: conf}
}

func (b *Brightness) Key() string         { return "brightness" }
func (b *Brightness) Name() string        { return "brightness" }
func (b *Brightness) Placeholder() string { return b.conf.Placeholder }
func (b *Brightness) Format() string      { return b.conf.Format }
func (b *Brightness) Tick() time.Duration { return b.conf.Tick() }

func (b *Brightness) Sample(_ context.Context) (*engine.Sample, error) {
	current, err := readInt(filepath.Join(b.conf.Dir, "actual_brightness"))
	if err != nil {
		return nil, err
	}
	max, err := readInt(filepath.Join(b.conf.Dir, "max_brightness"))
	if err != nil {
		return nil, err
	}
	if max <= 0 {
		return nil, errFactory.WithData(errors.ErrMalformedData, "max_brightness is zero")
	}

	return &engine.Sample{
		Value: fmt.Sprintf("%d%%", 100*current/max),
		Label: b.conf.Label,
	}, nil
}
