package modules

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/tkardel/baro/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const netWirelessFixture = `Inter-| sta-|   Quality        |   Discarded packets               | Missed | WE
 face | tus | link level noise |  nwid  crypt   frag  retry   misc | beacon | 22
 wlan0: 0000   54.  -56.  -256        0      0      0      0      0        0
`

func wirelessModule(t *testing.T, display, fixture string) *Wireless {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wireless")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	w := NewWireless(config.WirelessConfig{
		Common:            config.Common{TickMS: 500, Placeholder: "-", Format: "%v%l", Label: "wle"},
		Interface:         "wlan0",
		Display:           display,
		MaxEssidLen:       4,
		DisconnectedLabel: ".wl",
	})
	w.procPath = path
	w.readEssid = func(string) (string, error) { return "HomeNet", nil }

	return w
}

func TestParseNetWireless(t *testing.T) {
	signal, connected, err := parseNetWireless([]byte(netWirelessFixture), "wlan0")
	require.NoError(t, err)
	assert.True(t, connected)
	assert.Equal(t, 77, signal)
}

func TestParseNetWirelessNotListed(t *testing.T) {
	_, connected, err := parseNetWireless([]byte(netWirelessFixture), "wlan1")
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestWirelessSignalDisplay(t *testing.T) {
	w := wirelessModule(t, config.DisplaySignal, netWirelessFixture)

	sample, err := w.Sample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sample)
	assert.Equal(t, " 77%", sample.Value)
	assert.Equal(t, "wle", sample.Label)
}

func TestWirelessDisconnected(t *testing.T) {
	header := "Inter-| sta-|   Quality\n face | tus | link level noise\n"
	w := wirelessModule(t, config.DisplaySignal, header)

	sample, err := w.Sample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sample)
	assert.Equal(t, "    ", sample.Value)
	assert.Equal(t, ".wl", sample.Label)
}

func TestWirelessEssidDisplay(t *testing.T) {
	w := wirelessModule(t, config.DisplayEssid, netWirelessFixture)

	sample, err := w.Sample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sample)
	// Truncated to max_essid_len runes.
	assert.Equal(t, "Home", sample.Value)
}

func TestWirelessTextDisplay(t *testing.T) {
	w := wirelessModule(t, config.DisplayText, netWirelessFixture)

	sample, err := w.Sample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sample)
	assert.Empty(t, sample.Value)
	assert.Equal(t, "wle", sample.Label)
}
