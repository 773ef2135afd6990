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

const procMeminfo = "/proc/meminfo"

// Memory reports the used fraction of physical memory, where "used" is
// MemTotal minus MemAvailable.
type Memory struct {
	conf        config.MemoryConfig
	meminfoPath string
}

func NewMemory(conf config.MemoryConfig) *Memory {
	return &Memory{conf: conf, meminfoPath: procMeminfo}
}

func (m *Memory) Key() string         { return "memory" }
func (m *Memory) Name() string        { return "memory" }
func (m *Memory) Placeholder() string { return m.conf.Placeholder }
func (m *Memory) Format() string      { return m.conf.Format }
func (m *Memory) Tick() time.Duration { return m.conf.Tick() }

func (m *Memory) Sample(_ context.Context) (*engine.Sample, error) {
	data, err := os.ReadFile(m.meminfoPath)
	if err != nil {
		return nil, classifyRead(m.meminfoPath, err)
	}

	total, available, err := parseMeminfo(data)
	if err != nil {
		return nil, err
	}

	used := 100 * (total - available) / total

	return &engine.Sample{
		Value: fmt.Sprintf("%2d%%", used),
		Label: m.conf.Label,
	}, nil
}

// parseMeminfo pulls MemTotal and MemAvailable (in kB) out of the
// /proc/meminfo key-value dump.
func parseMeminfo(data []byte) (total, available int, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		var target *int
		switch fields[0] {
		case "MemTotal:":
			target = &total
		case "MemAvailable:":
			target = &available
		default:
			continue
		}

		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			return 0, 0, errFactory.Wrap(errors.ErrMalformedData, convErr).WithData(procMeminfo)
		}
		*target = n
	}

	if total <= 0 {
		return 0, 0, errFactory.WithData(errors.ErrMalformedData, "MemTotal missing")
	}

	return total, available, nil
}
