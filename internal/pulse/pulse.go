package pulse

import (
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultSink   = "@DEFAULT_SINK@"
	defaultSource = "@DEFAULT_SOURCE@"
)

// Pulse is the process-wide handle to the audio server, opened once at
// startup and shared by reference among the modules that declare it. The
// lock bounds each holder to a single query; it is never held across a
// tick sleep.
//
// A query that fails, because the server is gone or restarting, reports
// "nothing this cycle" rather than an error. The querying module simply
// emits no message and retries next tick.
type Pulse struct {
	mu  sync.Mutex
	run func(args ...string) ([]byte, error)
}

func New() *Pulse {
	return &Pulse{run: runPactl}
}

func runPactl(args ...string) ([]byte, error) {
	return exec.Command("pactl", args...).Output()
}

// Sink returns the default sink's volume percentage and mute flag. ok is
// false when there is nothing to report this cycle.
func (p *Pulse) Sink() (volume int, mute, ok bool) {
	return p.query(defaultSink, "get-sink-volume", "get-sink-mute")
}

// Source returns the default source's volume percentage and mute flag.
func (p *Pulse) Source() (volume int, mute, ok bool) {
	return p.query(defaultSource, "get-source-volume", "get-source-mute")
}

func (p *Pulse) query(target, volumeCmd, muteCmd string) (int, bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out, err := p.run(volumeCmd, target)
	if err != nil {
		return 0, false, false
	}
	volume, ok := parseVolume(string(out))
	if !ok {
		return 0, false, false
	}

	out, err = p.run(muteCmd, target)
	if err != nil {
		return 0, false, false
	}

	return volume, parseMute(string(out)), true
}

// parseVolume picks the first percentage out of pactl's volume dump,
// e.g. "Volume: front-left: 39321 /  60% / -13.31 dB, ...".
func parseVolume(out string) (int, bool) {
	for _, field := range strings.Fields(out) {
		if !strings.HasSuffix(field, "%") {
			continue
		}
		volume, err := strconv.Atoi(strings.TrimSuffix(field, "%"))
		if err != nil {
			continue
		}

		return volume, true
	}

	return 0, false
}

// parseMute reads pactl's "Mute: yes|no" line.
func parseMute(out string) bool {
	return strings.Contains(out, "Mute: yes")
}
