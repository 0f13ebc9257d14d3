//go:build !windows

package device

import (
	"context"
	"fmt"

	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
)

type unsupportedController struct{}

func newPlatformController() interfaces.DeviceController {
	return unsupportedController{}
}

func (unsupportedController) GetReparsePoint(ctx context.Context, path string) ([]byte, error) {
	return nil, fmt.Errorf("FSCTL_GET_REPARSE_POINT on %s: %w", path, ErrUnsupportedPlatform)
}

func (unsupportedController) SetReparsePoint(ctx context.Context, path string, buffer []byte) error {
	return fmt.Errorf("FSCTL_SET_REPARSE_POINT on %s: %w", path, ErrUnsupportedPlatform)
}

func (unsupportedController) DeleteReparsePoint(ctx context.Context, path string, buffer []byte) error {
	return fmt.Errorf("FSCTL_DELETE_REPARSE_POINT on %s: %w", path, ErrUnsupportedPlatform)
}

// processCapabilities holds no Windows privileges
type processCapabilities struct{}

func newProcessCapabilities() interfaces.CapabilityChecker {
	return processCapabilities{}
}

func (processCapabilities) HasCapability(types.CapabilityName) bool {
	return false
}
