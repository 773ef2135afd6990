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

const procStat = "/proc/stat"

// CPU reports the aggregate processor usage as the delta of idle vs total
// jiffies between two consecutive cycles. The previous counters live in
// the module itself; no other goroutine ever touches them.
type CPU struct {
	conf      config.CPUConfig
	statPath  string
	prevIdle  int
	prevTotal int
}

func NewCPU(conf config.CPUConfig) *CPU {
	return &CPU{conf: conf, statPath: procStat}
}

func (c *CPU) Key() string         { return "cpu" }
func (c *CPU) Name() string        { return "cpu" }
func (c *CPU) Placeholder() string { return c.conf.Placeholder }
func (c *CPU) Format() string      { return c.conf.Format }
func (c *CPU) Tick() time.Duration { return c.conf.Tick() }

func (c *CPU) Sample(_ context.Context) (*engine.Sample, error) {
	data, err := os.ReadFile(c.statPath)
	if err != nil {
		return nil, classifyRead(c.statPath, err)
	}

	idle, total, err := parseProcStat(data)
	if err != nil {
		return nil, err
	}

	diffIdle := idle - c.prevIdle
	diffTotal := total - c.prevTotal
	c.prevIdle = idle
	c.prevTotal = total

	// Counters did not advance, nothing to report this cycle.
	if diffTotal <= 0 {
		return nil, nil
	}

	usage := 100 * (diffTotal - diffIdle) / diffTotal

	return &engine.Sample{
		Value: fmt.Sprintf("%2d%%", usage),
		Label: c.conf.Label,
	}, nil
}

// parseProcStat extracts the idle and total jiffy counts from the
// aggregate "cpu" line. Idle time includes iowait.
func parseProcStat(data []byte) (idle, total int, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		return 0, 0, errFactory.WithData(errors.ErrMalformedData, procStat)
	}

	fields := strings.Fields(scanner.Text())
	if len(fields) < 6 || fields[0] != "cpu" {
		return 0, 0, errFactory.WithData(errors.ErrMalformedData, procStat)
	}

	times := make([]int, 0, len(fields)-1)
	for _, field := range fields[1:] {
		n, convErr := strconv.Atoi(field)
		if convErr != nil {
			return 0, 0, errFactory.Wrap(errors.ErrMalformedData, convErr).WithData(procStat)
		}
		times = append(times, n)
	}

	idle = times[3] + times[4]
	for _, t := range times {
		total += t
	}

	return idle, total, nil
}
