package modules

import (
	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
	"codeberg.org/tkardel/baro/internal/errors"
	"codeberg.org/tkardel/baro/internal/pulse"
)

// Build constructs the module registry in configured display order. The
// shared audio handle is opened once, and only if a module needs it.
func Build(conf *config.Config) ([]engine.Module, error) {
	var audio *pulse.Pulse
	sharedAudio := func() *pulse.Pulse {
		if audio == nil {
			audio = pulse.New()
		}
		return audio
	}

	registry := make([]engine.Module, 0, len(conf.Modules))
	for _, name := range conf.Modules {
		switch name {
		case "battery":
			registry = append(registry, NewBattery(conf.Battery))
		case "brightness":
			registry = append(registry, NewBrightness(conf.Brightness))
		case "cpu":
			registry = append(registry, NewCPU(conf.CPU))
		case "memory":
			registry = append(registry, NewMemory(conf.Memory))
		case "temperature":
			registry = append(registry, NewTemperature(conf.Temperature))
		case "datetime":
			registry = append(registry, NewDateTime(conf.DateTime))
		case "wired":
			registry = append(registry, NewWired(conf.Wired))
		case "wireless":
			registry = append(registry, NewWireless(conf.Wireless))
		case "sound":
			registry = append(registry, NewSound(conf.Sound, sharedAudio()))
		case "mic":
			registry = append(registry, NewMic(conf.Mic, sharedAudio()))
		case "gpu":
			registry = append(registry, NewGPU(conf.GPU))
		default:
			return nil, errFactory.WithData(errors.ErrUnknownModule, name)
		}
	}

	return registry, nil
}
