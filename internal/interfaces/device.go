// File: internal/interfaces/device.go
package interfaces

import "context"

// DeviceController issues reparse point control codes against a path. Each
// call opens the path, issues exactly one control code and closes the handle
// again on every exit path. Implementations never interpret buffer contents.
type DeviceController interface {
	// GetReparsePoint returns the raw reparse data buffer stored on path
	GetReparsePoint(ctx context.Context, path string) ([]byte, error)

	// SetReparsePoint stores an encoded reparse data buffer on path
	SetReparsePoint(ctx context.Context, path string, buffer []byte) error

	// DeleteReparsePoint removes the reparse point described by a
	// header-only buffer from path
	DeleteReparsePoint(ctx context.Context, path string, buffer []byte) error
}
