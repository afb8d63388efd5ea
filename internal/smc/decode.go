package smc

import (
	"encoding/binary"
	"math"
)

// Type tags the controller declares for the registers this tool reads.
const (
	TypeFloat = "flt " // IEEE-754 single, native byte order
	TypeFPE2  = "fpe2" // unsigned fixed point, 2 fraction bits, MSB first
	TypeSP78  = "sp78" // signed 8.8 fixed point
)

// ValueBytes is the payload capacity of one protocol response.
const ValueBytes = 32

// TypedValue is the result of one register read: the declared size and
// type tag from the key-info call plus the raw payload from the read call.
type TypedValue struct {
	Key      Key
	DataSize uint32
	DataType string
	Bytes    [ValueBytes]byte
}

// DecodeTemperature interprets v as a temperature in °C. Only the sp78
// encoding is recognized; anything else, or an empty payload, reports not
// decodable. Non-positive results are valid decodes; the caller decides
// whether they mean "sensor not populated".
func DecodeTemperature(v TypedValue) (float64, bool) {
	if v.DataSize == 0 || v.DataType != TypeSP78 {
		return 0, false
	}

	raw := int32(int8(v.Bytes[0]))*256 + int32(v.Bytes[1])

	return float64(raw) / 256.0, true
}

// DecodeRPM interprets v as a rotational speed. Fan registers use either
// flt or the legacy fpe2 encoding depending on controller generation.
func DecodeRPM(v TypedValue) (float64, bool) {
	if v.DataSize == 0 {
		return 0, false
	}

	switch v.DataType {
	case TypeFloat:
		bits := binary.LittleEndian.Uint32(v.Bytes[:4])
		return float64(math.Float32frombits(bits)), true
	case TypeFPE2:
		return decodeFPE2(v.Bytes[:v.DataSize]), true
	}

	return 0, false
}

// decodeFPE2 reconstructs a big-endian fixed-point value with 2 fraction
// bits: every byte but the last contributes its value shifted by 6 bits per
// position, the last byte contributes its top 6 bits, and the low 2 bits
// add quarter units.
func decodeFPE2(b []byte) float64 {
	const fracBits = 2

	n := len(b)
	total := 0.0
	for i, v := range b {
		if i == n-1 {
			total += float64(v >> fracBits)
		} else {
			total += float64(uint64(v) << uint((n-1-i)*(8-fracBits)))
		}
	}
	total += float64(b[n-1]&0x03) * 0.25

	return total
}

// DecodeUint reconstructs an unsigned integer from up to 4 raw bytes. Base
// 16 packs bytes MSB-first (binary keys, type tags); any other base shifts
// each byte by its position and truncates back to 8 bits before summing,
// which reduces to the raw value for the single-byte counters the
// controller returns (e.g. FNum).
func DecodeUint(b []byte, size, base int) uint32 {
	if size > len(b) {
		size = len(b)
	}

	var total uint32
	for i := 0; i < size; i++ {
		shift := uint((size - 1 - i) * 8)
		if base == 16 {
			total += uint32(b[i]) << shift
		} else {
			total += uint32(uint8(uint32(b[i]) << shift))
		}
	}

	return total
}
