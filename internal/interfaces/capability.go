// File: internal/interfaces/capability.go
package interfaces

import "github.com/deploymenttheory/go-ntfslink/internal/types"

// CapabilityChecker answers whether the current process holds a capability
type CapabilityChecker interface {
	// HasCapability reports whether the capability is held and enabled
	HasCapability(name types.CapabilityName) bool
}
