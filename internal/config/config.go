package config

import (
	"os"
	"path/filepath"
	"time"

	"codeberg.org/tkardel/baro/internal/errors"
	"github.com/spf13/viper"
)

// Common holds the options every module recognizes. Unset options fall
// back to per-module defaults.
type Common struct {
	TickMS      int    `mapstructure:"tick_ms"`
	Placeholder string `mapstructure:"placeholder"`
	Format      string `mapstructure:"format"`
	Label       string `mapstructure:"label"`
}

// Tick returns the sampling interval
func (c Common) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

type BatteryConfig struct {
	Common        `mapstructure:",squash"`
	Dir           string `mapstructure:"dir"`
	ChargingLabel string `mapstructure:"charging_label"`
	FullLabel     string `mapstructure:"full_label"`
	LowLabel      string `mapstructure:"low_label"`
	LowLevel      int    `mapstructure:"low_level"`
}

type BrightnessConfig struct {
	Common `mapstructure:",squash"`
	Dir    string `mapstructure:"dir"`
}

type CPUConfig struct {
	Common `mapstructure:",squash"`
}

type MemoryConfig struct {
	Common `mapstructure:",squash"`
}

type TemperatureConfig struct {
	Common `mapstructure:",squash"`
	Dir    string `mapstructure:"dir"`
	Inputs []int  `mapstructure:"inputs"`
}

type DateTimeConfig struct {
	Common `mapstructure:",squash"`
	Layout string `mapstructure:"layout"`
}

type WiredConfig struct {
	Common            `mapstructure:",squash"`
	Interface         string `mapstructure:"interface"`
	DisconnectedLabel string `mapstructure:"disconnected_label"`
}

// Display modes for the wireless module
const (
	DisplaySignal = "signal"
	DisplayEssid  = "essid"
	DisplayText   = "text"
)

type WirelessConfig struct {
	Common            `mapstructure:",squash"`
	Interface         string `mapstructure:"interface"`
	Display           string `mapstructure:"display"`
	MaxEssidLen       int    `mapstructure:"max_essid_len"`
	DisconnectedLabel string `mapstructure:"disconnected_label"`
}

type SoundConfig struct {
	Common    `mapstructure:",squash"`
	MuteLabel string `mapstructure:"mute_label"`
}

type MicConfig struct {
	Common    `mapstructure:",squash"`
	MuteLabel string `mapstructure:"mute_label"`
}

type GPUConfig struct {
	Common `mapstructure:",squash"`
}

// Config is the immutable startup snapshot. It is validated once before
// any sampling goroutine starts and never reloaded.
type Config struct {
	Modules   []string `mapstructure:"modules"`
	Separator string   `mapstructure:"separator"`
	LogLevel  string   `mapstructure:"log_level"`

	Battery     BatteryConfig     `mapstructure:"battery"`
	Brightness  BrightnessConfig  `mapstructure:"brightness"`
	CPU         CPUConfig         `mapstructure:"cpu"`
	Memory      MemoryConfig      `mapstructure:"memory"`
	Temperature TemperatureConfig `mapstructure:"temperature"`
	DateTime    DateTimeConfig    `mapstructure:"datetime"`
	Wired       WiredConfig       `mapstructure:"wired"`
	Wireless    WirelessConfig    `mapstructure:"wireless"`
	Sound       SoundConfig       `mapstructure:"sound"`
	Mic         MicConfig         `mapstructure:"mic"`
	GPU         GPUConfig         `mapstructure:"gpu"`
}

// Load reads the configuration snapshot. Resolution order for the file:
// explicit path argument, $BARO_CONFIG, $XDG_CONFIG_HOME/baro,
// ~/.config/baro, /etc. A missing file is fine; a malformed one is not.
func Load(path string) (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("baro")
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BARO_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "baro"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "baro"))
		}
		v.AddConfigPath("/etc")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the snapshot before any goroutine starts. Any failure
// here is fatal to the whole process.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if len(c.Modules) == 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "no modules configured")
	}

	seen := make(map[string]bool, len(c.Modules))
	for _, name := range c.Modules {
		if !isKnownModule(name) {
			return errFactory.WithData(errors.ErrUnknownModule, name)
		}
		if seen[name] {
			return errFactory.WithData(errors.ErrDuplicateModule, name)
		}
		seen[name] = true

		if tick := c.moduleCommon(name).TickMS; tick <= 0 {
			return errFactory.WithData(errors.ErrInvalidTick, name)
		}
	}

	if seen["wireless"] {
		switch c.Wireless.Display {
		case DisplaySignal, DisplayEssid, DisplayText:
		default:
			return errFactory.WithData(errors.ErrInvalidDisplay, c.Wireless.Display)
		}
		if c.Wireless.MaxEssidLen <= 0 {
			return errFactory.WithMessage(errors.ErrInvalidConfig, "wireless.max_essid_len must be positive")
		}
	}

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

func (c *Config) moduleCommon(name string) Common {
	switch name {
	case "battery":
		return c.Battery.Common
	case "brightness":
		return c.Brightness.Common
	case "cpu":
		return c.CPU.Common
	case "memory":
		return c.Memory.Common
	case "temperature":
		return c.Temperature.Common
	case "datetime":
		return c.DateTime.Common
	case "wired":
		return c.Wired.Common
	case "wireless":
		return c.Wireless.Common
	case "sound":
		return c.Sound.Common
	case "mic":
		return c.Mic.Common
	case "gpu":
		return c.GPU.Common
	}

	return Common{}
}

func isKnownModule(name string) bool {
	for _, known := range KnownModules {
		if name == known {
			return true
		}
	}

	return false
}
