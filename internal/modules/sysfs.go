package modules

import (
	"os"
	"strconv"
	"strings"

	"codeberg.org/tkardel/baro/internal/errors"
)

var errFactory = errors.New()

// classifyRead maps a file read failure onto the sampling taxonomy: a
// vanished attribute kills the module, anything else skips one cycle.
func classifyRead(path string, err error) error {
	if os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrSourceGone, err).WithData(path)
	}

	return errFactory.Wrap(errors.ErrSampleTransient, err).WithData(path)
}

// readTrimmed reads a sysfs/procfs attribute as whitespace-trimmed text.
func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classifyRead(path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// readInt reads a sysfs attribute holding a single integer.
func readInt(path string) (int, error) {
	text, err := readTrimmed(path)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errFactory.Wrap(errors.ErrMalformedData, err).WithData(path)
	}

	return n, nil
}
