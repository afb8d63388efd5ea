// Package smc talks to the AppleSMC kernel service: a key-addressed
// request/response protocol where every read is a key-info call (to learn
// the payload size and type tag) followed by a bounded read-bytes call.
package smc

import (
	"codeberg.org/mparkin/smcflux/internal/errors"
)

// Driver protocol constants. Only key-info and read-bytes are issued by
// this tool; the remaining sub-commands are listed for completeness of the
// wire contract.
const (
	kernelIndex = 2

	cmdReadBytes   = 5
	cmdWriteBytes  = 6
	cmdReadIndex   = 8
	cmdReadKeyInfo = 9
	cmdReadPLimit  = 11
	cmdReadVers    = 12
)

// Wire layout of one protocol exchange. The field order, widths and
// padding are fixed by the driver ABI (80 bytes total); do not reorder.
type versInfo struct {
	Major    uint8
	Minor    uint8
	Build    uint8
	Reserved uint8
	Release  uint16
}

type pLimitInfo struct {
	Version   uint16
	Length    uint16
	CPUPLimit uint32
	GPUPLimit uint32
	MemPLimit uint32
}

type keyInfo struct {
	DataSize       uint32
	DataType       uint32
	DataAttributes uint8
	_              [3]uint8
}

type param struct {
	Key     uint32
	Vers    versInfo
	PLimit  pLimitInfo
	KeyInfo keyInfo
	Result  uint8
	Status  uint8
	Data8   uint8
	_       uint8
	Data32  uint32
	Bytes   [ValueBytes]byte
}

// caller abstracts the IOKit session for testing
type caller interface {
	open() error
	call(input, output *param) error
	close() error
}

// Conn owns the session to the SMC service for the lifetime of a run:
// opened once, closed once, reads in between.
type Conn struct {
	caller caller
}

// Open locates the single AppleSMC service instance and establishes a
// session. ErrServiceNotFound and ErrOpenFailed are fatal to the run.
func Open() (*Conn, error) {
	return open(newCaller())
}

func open(c caller) (*Conn, error) {
	if err := c.open(); err != nil {
		return nil, err
	}

	return &Conn{caller: c}, nil
}

// Close releases the session. Must be called exactly once per successful
// Open, regardless of read outcomes.
func (c *Conn) Close() error {
	return c.caller.close()
}

// ReadKey performs the two-phase read for one register. The key-info call
// reports how many payload bytes the register holds; the read-bytes call
// is bounded by that size. Any non-success status surfaces ErrCallFailed,
// which callers treat as "sensor absent or unreadable", never fatal.
func (c *Conn) ReadKey(key Key) (TypedValue, error) {
	errFactory := errors.New()

	var input, output param
	input.Key = key.Pack()
	input.Data8 = cmdReadKeyInfo

	if err := c.caller.call(&input, &output); err != nil {
		return TypedValue{}, errFactory.Wrap(ErrCallFailed, err)
	}

	val := TypedValue{
		Key:      key,
		DataSize: output.KeyInfo.DataSize,
		DataType: string(UnpackKey(output.KeyInfo.DataType)),
	}
	if val.DataSize > ValueBytes {
		return TypedValue{}, errFactory.WithData(ErrCallFailed, "declared size exceeds payload capacity")
	}

	input.KeyInfo.DataSize = val.DataSize
	input.Data8 = cmdReadBytes

	if err := c.caller.call(&input, &output); err != nil {
		return TypedValue{}, errFactory.Wrap(ErrCallFailed, err)
	}
	val.Bytes = output.Bytes

	return val, nil
}
