package modules

import (
	"context"
	"path/filepath"
	"time"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
)

// Wired reports the link state of one ethernet interface from its sysfs
// operstate attribute. The fragment is label-only by default.
type Wired struct {
	conf    config.WiredConfig
	netPath string
}

func NewWired(conf config.WiredConfig) *Wired {
	return &Wired{conf: conf, netPath: "/sys/class/net"}
}

func (w *Wired) Key() string         { return "wired" }
func (w *Wired) Name() string        { return "wired" }
func (w *Wired) Placeholder() string { return w.conf.Placeholder }
func (w *Wired) Format() string      { return w.conf.Format }
func (w *Wired) Tick() time.Duration { return w.conf.Tick() }

func (w *Wired) Sample(_ context.Context) (*engine.Sample, error) {
	operstate, err := readTrimmed(filepath.Join(w.netPath, w.conf.Interface, "operstate"))
	if err != nil {
		return nil, err
	}

	label := w.conf.DisconnectedLabel
	if operstate == "up" {
		label = w.conf.Label
	}

	return &engine.Sample{Label: label}, nil
}
