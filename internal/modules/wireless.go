package modules

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"codeberg.org/tkardel/baro/internal/config"
	"codeberg.org/tkardel/baro/internal/engine"
	"codeberg.org/tkardel/baro/internal/errors"
)

const (
	procNetWireless = "/proc/net/wireless"
	// Link quality ceiling used by the kernel for most drivers.
	maxLinkQuality = 70
)

// Wireless reports the state of one wifi interface: signal strength from
// /proc/net/wireless, ESSID via ioctl, or label only, depending on the
// configured display mode.
type Wireless struct {
	conf      config.WirelessConfig
	procPath  string
	readEssid func(iface string) (string, error)
}

func NewWireless(conf config.WirelessConfig) *Wireless {
	return &Wireless{conf: conf, procPath: procNetWireless, readEssid: essid}
}

func (w *Wireless) Key() string         { return "wireless" }
func (w *Wireless) Name() string        { return "wireless" }
func (w *Wireless) Placeholder() string { return w.conf.Placeholder }
func (w *Wireless) Format() string      { return w.conf.Format }
func (w *Wireless) Tick() time.Duration { return w.conf.Tick() }

func (w *Wireless) Sample(_ context.Context) (*engine.Sample, error) {
	data, err := os.ReadFile(w.procPath)
	if err != nil {
		return nil, classifyRead(w.procPath, err)
	}

	signal, connected, err := parseNetWireless(data, w.conf.Interface)
	if err != nil {
		return nil, err
	}

	label := w.conf.DisconnectedLabel
	if connected {
		label = w.conf.Label
	}

	sample := &engine.Sample{Label: label}
	switch w.conf.Display {
	case config.DisplayText:
	case config.DisplayEssid:
		if connected {
			name, essidErr := w.readEssid(w.conf.Interface)
			if essidErr != nil {
				return nil, essidErr
			}
			sample.Value = truncate(name, w.conf.MaxEssidLen)
		}
	default: // signal
		if connected {
			sample.Value = fmt.Sprintf("%3d%%", signal)
		} else {
			sample.Value = strings.Repeat(" ", 4)
		}
	}

	return sample, nil
}

// parseNetWireless finds the interface's line in /proc/net/wireless and
// converts its link quality to a percentage. The interface not being
// listed just means it is down or disassociated.
func parseNetWireless(data []byte, iface string) (signal int, connected bool, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, iface+":") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, false, errFactory.WithData(errors.ErrMalformedData, procNetWireless)
		}

		link, convErr := strconv.ParseFloat(strings.TrimSuffix(fields[2], "."), 64)
		if convErr != nil {
			return 0, false, errFactory.Wrap(errors.ErrMalformedData, convErr).WithData(procNetWireless)
		}

		signal = int(link * 100 / maxLinkQuality)
		if signal > 100 {
			signal = 100
		}

		return signal, true, nil
	}

	return 0, false, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
