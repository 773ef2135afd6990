package engine

import (
	"context"
	"io"
	"sync"
	"time"

	"codeberg.org/tkardel/baro/internal/errors"
	"codeberg.org/tkardel/baro/internal/logger"
)

// One update per module per tick with ticks in the tens of milliseconds;
// the aggregator always drains faster than this fills.
const msgBuffer = 64

// Engine runs one sampling goroutine per registered module and a single
// aggregator that folds their messages into a continuously rewritten
// output line. The render state is owned exclusively by the aggregator,
// so it needs no lock.
type Engine struct {
	modules      []Module
	keys         []string
	formats      map[string]string
	placeholders map[string]string
	state        map[string]string
	separator    string
	out          io.Writer
	msgs         chan Msg
}

// New builds an engine from the registry in display order. The order of
// modules fixes left-to-right fragment placement for the lifetime of the
// process.
func New(modules []Module, separator string, out io.Writer) (*Engine, error) {
	errFactory := errors.New()

	e := &Engine{
		modules:      modules,
		keys:         make([]string, 0, len(modules)),
		formats:      make(map[string]string, len(modules)),
		placeholders: make(map[string]string, len(modules)),
		state:        make(map[string]string, len(modules)),
		separator:    separator,
		out:          out,
		msgs:         make(chan Msg, msgBuffer),
	}

	for _, m := range modules {
		key := m.Key()
		if _, ok := e.state[key]; ok {
			return nil, errFactory.WithData(errors.ErrDuplicateModule, key)
		}
		e.keys = append(e.keys, key)
		e.formats[key] = m.Format()
		e.placeholders[key] = m.Placeholder()
		e.state[key] = m.Placeholder()
	}

	return e, nil
}

// Run starts every module's sampling loop and consumes updates until all
// producers have exited, either on context cancellation or by permanent
// failure. The first line, all placeholders, is written before any
// producer starts.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.writeLine(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, m := range e.modules {
		wg.Add(1)
		go func(m Module) {
			defer wg.Done()
			e.runModule(ctx, m)
		}(m)
	}

	// Channel closure is the aggregator's only termination signal.
	go func() {
		wg.Wait()
		close(e.msgs)
	}()

	for msg := range e.msgs {
		e.apply(msg)
		if err := e.writeLine(); err != nil {
			return err
		}
	}

	logger.Info().Msg("all modules stopped, engine exiting")

	return nil
}

// runModule is the per-module sampling loop: sample, emit, sleep. It
// holds no state shared with any other module. A transient error skips
// the cycle; a permanent one ends the loop and freezes the module's last
// fragment in the rendered line.
func (e *Engine) runModule(ctx context.Context, m Module) {
	logger.Debug().
		Str("module", m.Name()).
		Dur("tick", m.Tick()).
		Msg("module started")

	ticker := time.NewTicker(m.Tick())
	defer ticker.Stop()

	for {
		sample, err := m.Sample(ctx)
		switch {
		case err != nil && errors.IsPermanent(err):
			logger.Warn().
				Str("module", m.Name()).
				Err(err).
				Msg("permanent failure, module stopped")
			return
		case err != nil:
			logger.Debug().
				Str("module", m.Name()).
				Err(err).
				Msg("sample missed")
		case sample != nil:
			msg := Msg{Key: m.Key(), Value: &sample.Value}
			if sample.Label != "" {
				msg.Label = &sample.Label
			}
			select {
			case e.msgs <- msg:
			case <-ctx.Done():
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (e *Engine) writeLine() error {
	if _, err := io.WriteString(e.out, e.line()+"\n"); err != nil {
		return errors.New().Wrap(errors.ErrMainLoop, err)
	}

	return nil
}
