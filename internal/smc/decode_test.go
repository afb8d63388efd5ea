package smc_test

import (
	"encoding/binary"
	"math"
	"testing"

	"codeberg.org/mparkin/smcflux/internal/smc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typedValue(dataType string, data ...byte) smc.TypedValue {
	v := smc.TypedValue{
		DataSize: uint32(len(data)),
		DataType: dataType,
	}
	copy(v.Bytes[:], data)

	return v
}

func TestDecodeTemperatureSP78(t *testing.T) {
	tests := []struct {
		name string
		hi   byte
		lo   byte
		want float64
	}{
		{"zero", 0x00, 0x00, 0.0},
		{"whole degrees", 0x20, 0x00, 32.0},
		{"half degree", 0x20, 0x80, 32.5},
		{"typical CPU", 0x24, 0x00, 36.0},
		{"negative", 0xEC, 0x00, -20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp, ok := smc.DecodeTemperature(typedValue(smc.TypeSP78, tt.hi, tt.lo))
			require.True(t, ok)
			assert.InDelta(t, tt.want, temp, 1e-9)
		})
	}
}

func TestDecodeTemperatureUnavailable(t *testing.T) {
	_, ok := smc.DecodeTemperature(typedValue("ui16", 0x20, 0x00))
	assert.False(t, ok, "unrecognized type tag must not decode")

	_, ok = smc.DecodeTemperature(smc.TypedValue{DataType: smc.TypeSP78})
	assert.False(t, ok, "empty payload must not decode")
}

func TestDecodeRPMFloat(t *testing.T) {
	var data [4]byte
	binary.LittleEndian.PutUint32(data[:], math.Float32bits(1800.0))

	rpm, ok := smc.DecodeRPM(typedValue(smc.TypeFloat, data[:]...))
	require.True(t, ok)
	assert.Equal(t, 1800.0, rpm, "flt decode must round-trip exactly")
}

func TestDecodeRPMFPE2(t *testing.T) {
	// 3000 RPM: 3000*4 = 0x2EE0
	rpm, ok := smc.DecodeRPM(typedValue(smc.TypeFPE2, 0x2E, 0xE0))
	require.True(t, ok)
	assert.InDelta(t, 3000.0, rpm, 1e-9)
}

func TestDecodeRPMFPE2Monotonic(t *testing.T) {
	base, ok := smc.DecodeRPM(typedValue(smc.TypeFPE2, 0x2E, 0xE0))
	require.True(t, ok)

	// One fraction tick in the last byte adds a quarter unit
	tick, ok := smc.DecodeRPM(typedValue(smc.TypeFPE2, 0x2E, 0xE1))
	require.True(t, ok)
	assert.InDelta(t, base+0.25, tick, 1e-9)

	// One step in the higher byte adds 2^(8-2) units
	step, ok := smc.DecodeRPM(typedValue(smc.TypeFPE2, 0x2F, 0xE0))
	require.True(t, ok)
	assert.InDelta(t, base+64.0, step, 1e-9)
}

func TestDecodeRPMUnavailable(t *testing.T) {
	_, ok := smc.DecodeRPM(typedValue("sp78", 0x20, 0x00))
	assert.False(t, ok, "temperature encoding is not an RPM")

	_, ok = smc.DecodeRPM(smc.TypedValue{DataType: smc.TypeFloat})
	assert.False(t, ok, "empty payload must not decode")
}

func TestDecodeUintBinary(t *testing.T) {
	assert.Equal(t, uint32(0x0102), smc.DecodeUint([]byte{0x01, 0x02}, 2, 16))
	assert.Equal(t, smc.Key("TC0P").Pack(), smc.DecodeUint([]byte("TC0P"), 4, 16),
		"base-16 packing must match the key wire encoding")
}

func TestDecodeUintCounter(t *testing.T) {
	// FNum-style counters: single raw byte
	assert.Equal(t, uint32(2), smc.DecodeUint([]byte{0x02}, 1, 10))

	// Multi-byte non-hex decodes truncate higher positions to 8 bits
	assert.Equal(t, uint32(0x02), smc.DecodeUint([]byte{0x01, 0x02}, 2, 10))
}

func TestDecodeUintSizeBounded(t *testing.T) {
	assert.Equal(t, uint32(0x01), smc.DecodeUint([]byte{0x01}, 4, 16))
}
