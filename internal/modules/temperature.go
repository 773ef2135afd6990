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

// Temperature reports the average of the configured coretemp inputs,
// rounded to whole degrees Celsius.
type Temperature struct {
	conf config.TemperatureConfig
}

func NewTemperature(conf config.TemperatureConfig) *Temperature {
	return &Temperature{conf: conf}
}

func (t *Temperature) Key() string         { return "temperature" }
func (t *Temperature) Name() string        { return "temperature" }
func (t *Temperature) Placeholder() string { return t.conf.Placeholder }
func (t *Temperature) Format() string      { return t.conf.Format }
func (t *Temperature) Tick() time.Duration { return t.conf.Tick() }

func (t *Temperature) Sample(_ context.Context) (*engine.Sample, error) {
	if len(t.conf.Inputs) == 0 {
		return nil, errFactory.WithData(errors.ErrMalformedData, "no temperature inputs configured")
	}

	sum := 0
	for _, input := range t.conf.Inputs {
		path := filepath.Join(t.conf.Dir, fmt.Sprintf("temp%d_input", input))
		milli, err := readInt(path)
		if err != nil {
			return nil, err
		}
		sum += milli
	}

	// Inputs are millidegrees; round the average to whole degrees.
	average := (sum/len(t.conf.Inputs) + 500) / 1000

	return &engine.Sample{
		Value: fmt.Sprintf("%d°", average),
		Label: t.conf.Label,
	}, nil
}
