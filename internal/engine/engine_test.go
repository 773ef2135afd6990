package engine

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	apperrors "codeberg.org/tkardel/baro/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFactory = apperrors.New()

// emitThenFail returns a sample func that produces the given samples one
// per cycle, then fails permanently so the engine can wind down.
func emitThenFail(samples ...*Sample) func(context.Context) (*Sample, error) {
	i := 0
	return func(context.Context) (*Sample, error) {
		if i >= len(samples) {
			return nil, errFactory.New(apperrors.ErrSourceGone)
		}
		s := samples[i]
		i++
		return s, nil
	}
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRunRendersInitialAndUpdatedLines(t *testing.T) {
	m := newFake("cpu", "-", "%v")
	m.sample = emitThenFail(&Sample{Value: "42%"})

	out := &bytes.Buffer{}
	e, err := New([]Module{m}, " ", out)
	require.NoError(t, err)

	require.NoError(t, e.Run(context.Background()))

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, "-", lines[0])
	assert.Equal(t, "42%", lines[1])
}

func TestPermanentFailureFreezesLastFragment(t *testing.T) {
	failing := newFake("a", "-", "%v")
	failing.sample = emitThenFail(&Sample{Value: "A1"})

	healthy := newFake("b", "-", "%v")
	healthy.sample = emitThenFail(
		&Sample{Value: "B"},
		&Sample{Value: "B"},
		&Sample{Value: "B"},
	)

	out := &bytes.Buffer{}
	e, err := New([]Module{failing, healthy}, " ", out)
	require.NoError(t, err)

	require.NoError(t, e.Run(context.Background()))

	lines := outputLines(out)
	// The failed module's fragment stays frozen in every later render.
	assert.Equal(t, "A1 B", lines[len(lines)-1])
}

func TestEmptyCyclesEmitNothing(t *testing.T) {
	m := newFake("sound", "-", "%l:%v")
	m.sample = emitThenFail(nil, nil, nil, nil, nil, &Sample{Value: "40%", Label: "sou"})

	out := &bytes.Buffer{}
	e, err := New([]Module{m}, " ", out)
	require.NoError(t, err)

	require.NoError(t, e.Run(context.Background()))

	// Five empty cycles produce no renders at all; the sixth updates.
	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, "-", lines[0])
	assert.Equal(t, "sou:40%", lines[1])
}

func TestRunStopsOnCancellation(t *testing.T) {
	m := newFake("datetime", "-", "%v")
	m.sample = func(context.Context) (*Sample, error) {
		return &Sample{Value: "tick"}, nil
	}

	out := &bytes.Buffer{}
	e, err := New([]Module{m}, " ", out)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop after cancellation")
	}
}
