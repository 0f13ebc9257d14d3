package device

import (
	"errors"

	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/services"
)

// ErrUnsupportedPlatform is returned by device operations on systems without
// NTFS reparse point control codes.
var ErrUnsupportedPlatform = errors.New("reparse point control codes are only supported on Windows")

// NewDeviceController returns the DeviceController for the running platform
func NewDeviceController() interfaces.DeviceController {
	return newPlatformController()
}

// NewCapabilityChecker returns the checker selected by cfg: the process token
// for CapabilitySourceOS, or the configured grant list for
// CapabilitySourceStatic
func NewCapabilityChecker(cfg *Config) interfaces.CapabilityChecker {
	if cfg != nil && cfg.CapabilitySource == CapabilitySourceStatic {
		return services.NewStaticCapabilities(cfg.GrantedCapabilities...)
	}
	return newProcessCapabilities()
}
