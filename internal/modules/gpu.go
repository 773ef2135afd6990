package modules

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
	"codeberg.org/tkardel/baro/internal/errors"
	"codeberg.org/tkardel/baro/internal/gpu"
)

// GPU reports the graphics card temperature via NVML. The device is
// opened lazily on the first cycle; a machine without a usable NVIDIA
// driver fails the module permanently without touching the others.
type GPU struct {
	conf   config.GPUConfig
	device *gpu.Device
}

func NewGPU(conf config.GPUConfig) *GPU {
	return &GPU{conf: conf}
}

func (g *GPU) Key() string         { return "gpu" }
func (g *GPU) Name() string        { return "gpu" }
func (g *GPU) Placeholder() string { return g.conf.Placeholder }
func (g *GPU) Format() string      { return g.conf.Format }
func (g *GPU) Tick() time.Duration { return g.conf.Tick() }

func (g *GPU) Sample(_ context.Context) (*engine.Sample, error) {
	if g.device == nil {
		device, err := gpu.Open()
		if err != nil {
			return nil, errFactory.Wrap(errors.ErrSourceGone, err)
		}
		g.device = device
	}

	temp, err := g.device.Temperature()
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrSampleTransient, err)
	}

	return &engine.Sample{
		Value: fmt.Sprintf("%d°", temp),
		Label: g.conf.Label,
	}, nil
}
