package smc

import (
	"fmt"

	"codeberg.org/mparkin/smcflux/internal/errors"
)

const (
	// Session Errors
	ErrServiceNotFound     = errors.ErrorCode("smc_service_not_found")
	ErrOpenFailed          = errors.ErrorCode("smc_open_failed")
	ErrCloseFailed         = errors.ErrorCode("smc_close_failed")
	ErrUnsupportedPlatform = errors.ErrorCode("smc_unsupported_platform")

	// Protocol Errors
	ErrCallFailed = errors.ErrorCode("smc_call_failed")
	ErrInvalidKey = errors.ErrorCode("smc_invalid_key")
)

// kernError represents a non-success kern_return_t from the driver
type kernError struct {
	code int32
}

func (e kernError) Error() string {
	return fmt.Sprintf("kern_return 0x%08x", uint32(e.code))
}
