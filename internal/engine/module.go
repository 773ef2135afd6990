package engine

import (
	"context"
	"time"
)

// Sample is one reading produced by a module's sampling routine. Value is
// the primary fragment text; Label is an optional unit or state tag the
// format template may place next to it.
type Sample struct {
	Value string
	Label string
}

// Module is an independently scheduled producer of status fragments.
// A module is configured once at startup and owned by a single goroutine
// for the lifetime of the process.
//
// Sample is called once per tick. It returns (nil, nil) when there is
// nothing to report this cycle, a transient error to skip the cycle, or a
// permanent error to terminate the module's loop for good.
type Module interface {
	// Key is the unique token identifying this module's fragment in the
	// rendered line.
	Key() string
	// Name is the human-readable module name used in logs.
	Name() string
	// Placeholder is rendered before the first successful sample.
	Placeholder() string
	// Format is the fragment template; %v expands to the sample value and
	// %l to its label.
	Format() string
	// Tick is the delay between sampling cycles.
	Tick() time.Duration

	Sample(ctx context.Context) (*Sample, error)
}

// Msg carries one update from a sampling goroutine to the aggregator.
// A nil Value means "render the placeholder". Fire-and-forget: arrival
// order is only meaningful within a single module's stream.
type Msg struct {
	Key   string
	Value *string
	Label *string
}
