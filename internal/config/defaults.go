package config

import "github.com/spf13/viper"

const (
	DefaultLogLevel    = "info"
	DefaultSeparator   = " "
	DefaultPlaceholder = "-"
)

// DefaultModules is the display order used when the config file does not
// set one.
var DefaultModules = []string{"cpu", "memory", "battery", "sound", "wireless", "datetime"}

// KnownModules lists every module name the registry can construct.
var KnownModules = []string{
	"battery",
	"brightness",
	"cpu",
	"memory",
	"temperature",
	"datetime",
	"wired",
	"wireless",
	"sound",
	"mic",
	"gpu",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("modules", DefaultModules)
	v.SetDefault("separator", DefaultSeparator)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetDefault("battery.tick_ms", 500)
	v.SetDefault("battery.placeholder", DefaultPlaceholder)
	v.SetDefault("battery.format", "%v")
	v.SetDefault("battery.label", "bat")
	v.SetDefault("battery.charging_label", "chr")
	v.SetDefault("battery.full_label", "ful")
	v.SetDefault("battery.low_label", "low")
	v.SetDefault("battery.low_level", 10)
	v.SetDefault("battery.dir", "/sys/class/power_supply/BAT0")

	v.SetDefault("brightness.tick_ms", 200)
	v.SetDefault("brightness.placeholder", DefaultPlaceholder)
	v.SetDefault("brightness.format", "%v")
	v.SetDefault("brightness.label", "bri")
	v.SetDefault("brightness.dir", "/sys/class/backlight/intel_backlight")

	v.SetDefault("cpu.tick_ms", 500)
	v.SetDefault("cpu.placeholder", DefaultPlaceholder)
	v.SetDefault("cpu.format", "%v")
	v.SetDefault("cpu.label", "cpu")

	v.SetDefault("memory.tick_ms", 500)
	v.SetDefault("memory.placeholder", DefaultPlaceholder)
	v.SetDefault("memory.format", "%v")
	v.SetDefault("memory.label", "mem")

	v.SetDefault("temperature.tick_ms", 500)
	v.SetDefault("temperature.placeholder", DefaultPlaceholder)
	v.SetDefault("temperature.format", "%v")
	v.SetDefault("temperature.label", "tem")
	v.SetDefault("temperature.dir", "/sys/devices/platform/coretemp.0/hwmon/hwmon1")
	v.SetDefault("temperature.inputs", []int{1})

	v.SetDefault("datetime.tick_ms", 500)
	v.SetDefault("datetime.placeholder", DefaultPlaceholder)
	v.SetDefault("datetime.format", "%v")
	v.SetDefault("datetime.layout", "Mon. 2 January 2006, 15h04")

	v.SetDefault("wired.tick_ms", 500)
	v.SetDefault("wired.placeholder", DefaultPlaceholder)
	v.SetDefault("wired.format", "%l")
	v.SetDefault("wired.label", "eth")
	v.SetDefault("wired.disconnected_label", ".et")
	v.SetDefault("wired.interface", "eth0")

	v.SetDefault("wireless.tick_ms", 500)
	v.SetDefault("wireless.placeholder", DefaultPlaceholder)
	v.SetDefault("wireless.format", "%v%l")
	v.SetDefault("wireless.label", "wle")
	v.SetDefault("wireless.disconnected_label", ".wl")
	v.SetDefault("wireless.interface", "wlan0")
	v.SetDefault("wireless.display", "signal")
	v.SetDefault("wireless.max_essid_len", 10)

	v.SetDefault("sound.tick_ms", 50)
	v.SetDefault("sound.placeholder", DefaultPlaceholder)
	v.SetDefault("sound.format", "%l:%v")
	v.SetDefault("sound.label", "sou")
	v.SetDefault("sound.mute_label", ".so")

	v.SetDefault("mic.tick_ms", 50)
	v.SetDefault("mic.placeholder", DefaultPlaceholder)
	v.SetDefault("mic.format", "%l:%v")
	v.SetDefault("mic.label", "mic")
	v.SetDefault("mic.mute_label", ".mi")

	v.SetDefault("gpu.tick_ms", 1000)
	v.SetDefault("gpu.placeholder", DefaultPlaceholder)
	v.SetDefault("gpu.format", "%v")
	v.SetDefault("gpu.label", "gpu")
}
