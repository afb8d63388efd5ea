package smc_test

import (
	"testing"

	"codeberg.org/mparkin/smcflux/internal/smc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	key, err := smc.ParseKey("TC0P")
	require.NoError(t, err)
	assert.Equal(t, smc.Key("TC0P"), key)

	_, err = smc.ParseKey("TC0")
	assert.Error(t, err, "short key must be rejected")

	_, err = smc.ParseKey("TC0PX")
	assert.Error(t, err, "long key must be rejected")

	_, err = smc.ParseKey("TC\x000")
	assert.Error(t, err, "non-printable byte must be rejected")
}

func TestKeyPackUnpackIdentity(t *testing.T) {
	keys := []string{"TC0P", "TG0P", "F0Ac", "FNum", "#KEY", "sp78", "fpe2", "flt "}
	for _, s := range keys {
		key, err := smc.ParseKey(s)
		require.NoError(t, err, s)
		assert.Equal(t, key, smc.UnpackKey(key.Pack()), "pack/unpack must be the identity for %q", s)
	}
}

func TestKeyPackWireOrder(t *testing.T) {
	// ASCII bytes packed MSB-first
	assert.Equal(t, uint32('T')<<24|uint32('C')<<16|uint32('0')<<8|uint32('P'), smc.Key("TC0P").Pack())
}

func TestFanKey(t *testing.T) {
	key, err := smc.FanKey(0, "Ac")
	require.NoError(t, err)
	assert.Equal(t, smc.Key("F0Ac"), key)

	key, err = smc.FanKey(3, "Mx")
	require.NoError(t, err)
	assert.Equal(t, smc.Key("F3Mx"), key)

	_, err = smc.FanKey(10, "Ac")
	assert.Error(t, err, "two-digit indices do not fit the key namespace")
}
