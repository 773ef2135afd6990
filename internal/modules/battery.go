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

// Battery reports the charge level of one power supply from sysfs, with a
// label reflecting the charge state.
type Battery struct {
	conf config.BatteryConfig
}

func NewBattery(conf config.BatteryConfig) *Battery {
	return &Battery{conf: conf}
}

func (b *Battery) Key() string         { return "battery" }
func (b *Battery) Name() string        { return "battery" }
func (b *Battery) Placeholder() string { return b.conf.Placeholder }
func (b *Battery) Format() string      { return b.conf.Format }
func (b *Battery) Tick() time.Duration { return b.conf.Tick() }

func (b *Battery) Sample(_ context.Context) (*engine.Sample, error) {
	energyFull, err := readInt(filepath.Join(b.conf.Dir, "energy_full_design"))
	if err != nil {
		return nil, err
	}
	energyNow, err := readInt(filepath.Join(b.conf.Dir, "energy_now"))
	if err != nil {
		return nil, err
	}
	status, err := readTrimmed(filepath.Join(b.conf.Dir, "status"))
	if err != nil {
		return nil, err
	}

	level, err := batteryLevel(energyNow, energyFull)
	if err != nil {
		return nil, err
	}

	return &engine.Sample{
		Value: fmt.Sprintf("%d%%", level),
		Label: b.statusLabel(status, level),
	}, nil
}

func (b *Battery) statusLabel(status string, level int) string {
	switch status {
	case "Full":
		return b.conf.FullLabel
	case "Charging":
		return b.conf.ChargingLabel
	}
	if level <= b.conf.LowLevel {
		return b.conf.LowLabel
	}

	return b.conf.Label
}

func batteryLevel(energyNow, energyFull int) (int, error) {
	if energyFull <= 0 {
		return 0, errFactory.WithData(errors.ErrMalformedData, "energy_full_design is zero")
	}

	level := 100 * energyNow / energyFull
	if level > 100 {
		level = 100
	}

	return level, nil
}
