//go:build darwin

package smc

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation
#include <IOKit/IOKitLib.h>

static kern_return_t smcOpenService(io_connect_t *conn) {
	kern_return_t result;
	io_iterator_t iterator;
	io_object_t device;

	CFMutableDictionaryRef matching = IOServiceMatching("AppleSMC");
	result = IOServiceGetMatchingServices(kIOMasterPortDefault, matching, &iterator);
	if (result != kIOReturnSuccess) {
		return result;
	}

	device = IOIteratorNext(iterator);
	IOObjectRelease(iterator);
	if (device == 0) {
		return kIOReturnNotFound;
	}

	result = IOServiceOpen(device, mach_task_self(), 0, conn);
	IOObjectRelease(device);
	return result;
}

static kern_return_t smcCallStruct(io_connect_t conn, uint32_t index, void *in, void *out, size_t size) {
	size_t outSize = size;
	return IOConnectCallStructMethod(conn, index, in, size, out, &outSize);
}
*/
import "C"

import (
	"unsafe"

	"codeberg.org/mparkin/smcflux/internal/errors"
)

// ioKitCaller drives the AppleSMC user client through IOKit. There is no
// Go binding for IOConnectCallStructMethod, so the session plumbing lives
// in the cgo preamble above.
type ioKitCaller struct {
	conn C.io_connect_t
}

func newCaller() caller {
	return &ioKitCaller{}
}

func (c *ioKitCaller) open() error {
	errFactory := errors.New()

	ret := C.smcOpenService(&c.conn)
	switch ret {
	case C.kIOReturnSuccess:
		return nil
	case C.kIOReturnNotFound:
		return errFactory.New(ErrServiceNotFound)
	default:
		return errFactory.Wrap(ErrOpenFailed, kernError{code: int32(ret)})
	}
}

func (c *ioKitCaller) call(input, output *param) error {
	ret := C.smcCallStruct(c.conn, C.uint32_t(kernelIndex),
		unsafe.Pointer(input), unsafe.Pointer(output), C.size_t(unsafe.Sizeof(*input)))
	if ret != C.kIOReturnSuccess {
		return kernError{code: int32(ret)}
	}

	return nil
}

func (c *ioKitCaller) close() error {
	if ret := C.IOServiceClose(c.conn); ret != C.kIOReturnSuccess {
		return errors.New().Wrap(ErrCloseFailed, kernError{code: int32(ret)})
	}

	return nil
}
