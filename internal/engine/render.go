package engine

import (
	"fmt"
	"strings"
)

// expand substitutes the sample value and label into a fragment template.
// The tokens are replaced verbatim; anything else in the template, color
// and font switches included, passes through untouched.
func expand(format, value, label string) string {
	s := strings.ReplaceAll(format, "%v", value)

	return strings.ReplaceAll(s, "%l", label)
}

// apply folds one message into the render state. The key of every message
// must belong to a registered module; anything else is a bug in the
// registry wiring, not a runtime condition.
func (e *Engine) apply(msg Msg) {
	if _, ok := e.state[msg.Key]; !ok {
		panic(fmt.Sprintf("engine: message for unregistered module key %q", msg.Key))
	}

	if msg.Value == nil {
		e.state[msg.Key] = e.placeholders[msg.Key]
		return
	}

	label := ""
	if msg.Label != nil {
		label = *msg.Label
	}
	e.state[msg.Key] = expand(e.formats[msg.Key], *msg.Value, label)
}

// line composes the full output line: each module's current fragment, in
// registration order, joined by the separator. A pure function of the
// render state, whatever order the updates arrived in.
func (e *Engine) line() string {
	fragments := make([]string, 0, len(e.keys))
	for _, key := range e.keys {
		fragments = append(fragments, e.state[key])
	}

	return strings.Join(fragments, e.separator)
}
