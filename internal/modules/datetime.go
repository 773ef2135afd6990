package modules

import (
	"context"
	"time"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
)

// DateTime reports the wall clock in the configured Go reference layout.
type DateTime struct {
	conf config.DateTimeConfig
	now  func() time.Time
}

func NewDateTime(conf config.DateTimeConfig) *DateTime {
	return &DateTime{conf: conf, now: time.Now}
}

func (d *DateTime) Key() string         { return "datetime" }
func (d *DateTime) Name() string        { return "datetime" }
func (d *DateTime) Placeholder() string { return d.conf.Placeholder }
func (d *DateTime) Format() string      { return d.conf.Format }
func (d *DateTime) Tick() time.Duration { return d.conf.Tick() }

func (d *DateTime) Sample(_ context.Context) (*engine.Sample, error) {
	return &engine.Sample{Value: d.now().Format(d.conf.Layout)}, nil
}
