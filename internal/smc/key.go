package smc

import (
	"fmt"

	"codeberg.org/mparkin/smcflux/internal/errors"
)

// KeyLength is the fixed length of every SMC register name.
const KeyLength = 4

// Key names one SMC register: exactly four printable ASCII characters,
// packed MSB-first into a 32-bit word on the wire. Construct through
// ParseKey or FanKey; a Key built any other way may not round-trip.
type Key string

// ParseKey validates s as an SMC register name.
func ParseKey(s string) (Key, error) {
	errFactory := errors.New()

	if len(s) != KeyLength {
		return "", errFactory.WithData(ErrInvalidKey, s)
	}
	for i := 0; i < KeyLength; i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return "", errFactory.WithData(ErrInvalidKey, s)
		}
	}

	return Key(s), nil
}

// FanKey builds the register name for one per-fan quantity, e.g.
// FanKey(0, "Ac") -> "F0Ac". Indices above 9 do not fit the 4-character
// namespace and are rejected.
func FanKey(index int, suffix string) (Key, error) {
	return ParseKey(fmt.Sprintf("F%d%s", index, suffix))
}

// Pack encodes the key as its wire form, ASCII bytes MSB-first.
func (k Key) Pack() uint32 {
	var v uint32
	for i := 0; i < len(k) && i < KeyLength; i++ {
		v |= uint32(k[i]) << uint((KeyLength-1-i)*8)
	}

	return v
}

// UnpackKey decodes a wire-form key or type tag back into its four
// characters.
func UnpackKey(v uint32) Key {
	b := [KeyLength]byte{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}

	return Key(b[:])
}

func (k Key) String() string {
	return string(k)
}
