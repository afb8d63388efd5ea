//go:build !darwin

package smc

import "codeberg.org/mparkin/smcflux/internal/errors"

// stubCaller stands in on platforms without the AppleSMC service.
type stubCaller struct{}

func newCaller() caller {
	return stubCaller{}
}

func (stubCaller) open() error {
	return errors.New().New(ErrUnsupportedPlatform)
}

func (stubCaller) call(_, _ *param) error {
	return errors.New().New(ErrUnsupportedPlatform)
}

func (stubCaller) close() error {
	return nil
}
