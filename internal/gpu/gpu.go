package gpu

import (
	"errors"
	"fmt"

	"codeberg.org/tkardel/baro/internal/logger"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

var ErrNVMLFailure = errors.New("NVML operation failed")

// Device wraps the first NVML device for read-only status queries.
type Device struct {
	device nvml.Device
}

// Open initializes NVML and grabs the device at index 0. It fails on
// machines without an NVIDIA GPU or driver, which callers treat as the
// sensor being permanently absent.
func Open() (*Device, error) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, fmt.Errorf("%w: %v", ErrNVMLFailure, nvml.ErrorString(ret))
	}

	device, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, fmt.Errorf("%w: %v", ErrNVMLFailure, nvml.ErrorString(ret))
	}

	if name, ret := device.GetName(); ret == nvml.SUCCESS {
		logger.Info().Msgf("Detected GPU: %v", name)
	}

	return &Device{device: device}, nil
}

func (d *Device) Temperature() (int, error) {
	temp, ret := d.device.GetTemperature(nvml.TEMPERATURE_GPU)
	if ret != nvml.SUCCESS {
		return 0, fmt.Errorf("%w: %v", ErrNVMLFailure, nvml.ErrorString(ret))
	}

	return int(temp), nil
}

func (d *Device) Shutdown() error {
	if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
		return fmt.Errorf("%w: %v", ErrNVMLFailure, nvml.ErrorString(ret))
	}

	return nil
}
