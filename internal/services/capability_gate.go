package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
)

// ErrInsufficientPrivilege is returned when an operation needs a capability
// the process does not hold.
var ErrInsufficientPrivilege = errors.New("insufficient privilege")

// CapabilityGate turns capability answers into errors.
type CapabilityGate struct {
	checker interfaces.CapabilityChecker
}

// NewCapabilityGate creates a gate over checker. A nil checker denies
// everything.
func NewCapabilityGate(checker interfaces.CapabilityChecker) *CapabilityGate {
	return &CapabilityGate{checker: checker}
}

// Require returns ErrInsufficientPrivilege unless name is held.
func (g *CapabilityGate) Require(name types.CapabilityName) error {
	if g == nil || g.checker == nil || !g.checker.HasCapability(name) {
		if privilege, ok := types.PrivilegeForCapability(name); ok {
			return fmt.Errorf("%w: %s (%s) is not held", ErrInsufficientPrivilege, name, privilege)
		}
		return fmt.Errorf("%w: %s is not held", ErrInsufficientPrivilege, name)
	}
	return nil
}

// Allowed reports whether name is held.
func (g *CapabilityGate) Allowed(name types.CapabilityName) bool {
	return g.Require(name) == nil
}

// StaticCapabilities is a CapabilityChecker backed by a fixed set of names.
type StaticCapabilities map[types.CapabilityName]bool

// NewStaticCapabilities grants every capability in names. Names are matched
// case-insensitively and surrounding whitespace is ignored.
func NewStaticCapabilities(names ...string) StaticCapabilities {
	caps := make(StaticCapabilities, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		caps[types.CapabilityName(name)] = true
	}
	return caps
}

// HasCapability implements interfaces.CapabilityChecker.
func (s StaticCapabilities) HasCapability(name types.CapabilityName) bool {
	return s[name]
}
