package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/parsers/reparse"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
)

// ErrInvalidTarget is returned for link targets the requested link kind
// cannot point at.
var ErrInvalidTarget = errors.New("invalid link target")

// LinkService creates, reads and removes reparse points through a
// DeviceController
type LinkService struct {
	device  interfaces.DeviceController
	gate    *CapabilityGate
	decoder reparse.Decoder
}

// NewLinkService creates a new LinkService instance
func NewLinkService(device interfaces.DeviceController, checker interfaces.CapabilityChecker, strict bool) (*LinkService, error) {
	if device == nil {
		return nil, fmt.Errorf("device controller cannot be nil")
	}
	return &LinkService{
		device:  device,
		gate:    NewCapabilityGate(checker),
		decoder: reparse.Decoder{Strict: strict},
	}, nil
}

// Gate returns the capability gate used by the service
func (s *LinkService) Gate() *CapabilityGate {
	return s.gate
}

// BuildJunction encodes the mount point buffer for a junction to target.
// target must be absolute.
func (s *LinkService) BuildJunction(target string) ([]byte, error) {
	if !IsAbsoluteWindowsPath(target) {
		return nil, fmt.Errorf("%w: junction target %q is not absolute", ErrInvalidTarget, target)
	}
	payload, err := reparse.NewMountPointPayload(NTPath(target), DOSPath(target))
	if err != nil {
		return nil, fmt.Errorf("failed to build junction payload: %w", err)
	}
	return reparse.Encode(types.ReparseTagMountPoint, payload, nil)
}

// CreateJunction stores a junction to target on linkPath, which must be an
// existing empty directory
func (s *LinkService) CreateJunction(ctx context.Context, linkPath, target string) error {
	buffer, err := s.BuildJunction(target)
	if err != nil {
		return err
	}
	if err := s.device.SetReparsePoint(ctx, linkPath, buffer); err != nil {
		return fmt.Errorf("failed to create junction %s: %w", linkPath, err)
	}
	return nil
}

// BuildSymbolicLink encodes the symbolic link buffer for target. The
// create-symlink capability is checked before anything is encoded. Absolute
// targets get an NT substitute name; relative targets are stored as given
// with the relative flag set.
func (s *LinkService) BuildSymbolicLink(target string, relative bool) ([]byte, error) {
	if err := s.gate.Require(types.CapabilityCreateSymlink); err != nil {
		return nil, err
	}
	if target == "" {
		return nil, fmt.Errorf("%w: empty symbolic link target", ErrInvalidTarget)
	}

	var substituteName string
	switch {
	case relative:
		substituteName = strings.ReplaceAll(target, "/", `\`)
	case IsAbsoluteWindowsPath(target):
		substituteName = NTPath(target)
	default:
		return nil, fmt.Errorf("%w: absolute symbolic link target %q is not absolute", ErrInvalidTarget, target)
	}

	payload, err := reparse.NewSymbolicLinkPayload(substituteName, DOSPath(substituteName), relative)
	if err != nil {
		return nil, fmt.Errorf("failed to build symbolic link payload: %w", err)
	}
	return reparse.Encode(types.ReparseTagSymlink, payload, nil)
}

// CreateSymbolicLink stores a symbolic link to target on linkPath
func (s *LinkService) CreateSymbolicLink(ctx context.Context, linkPath, target string, relative bool) error {
	buffer, err := s.BuildSymbolicLink(target, relative)
	if err != nil {
		return err
	}
	if err := s.device.SetReparsePoint(ctx, linkPath, buffer); err != nil {
		return fmt.Errorf("failed to create symbolic link %s: %w", linkPath, err)
	}
	return nil
}

// BuildCustom encodes opaque data under tag. guid is required for
// third-party tags. Symbolic-link-class tags need the create-symlink
// capability.
func (s *LinkService) BuildCustom(tag types.ReparseTag, data []byte, guid *uuid.UUID) ([]byte, error) {
	if requiresSymlinkCapability(tag) {
		if err := s.gate.Require(types.CapabilityCreateSymlink); err != nil {
			return nil, err
		}
	}
	return reparse.Encode(tag, reparse.GenericPayload{Data: data}, guid)
}

// CreateCustom stores opaque data under tag on path
func (s *LinkService) CreateCustom(ctx context.Context, path string, tag types.ReparseTag, data []byte, guid *uuid.UUID) error {
	buffer, err := s.BuildCustom(tag, data, guid)
	if err != nil {
		return err
	}
	if err := s.device.SetReparsePoint(ctx, path, buffer); err != nil {
		return fmt.Errorf("failed to set reparse point %s on %s: %w", tag, path, err)
	}
	return nil
}

// SetReparseBuffer stores an already encoded buffer on path. The buffer is
// decoded first so a malformed one never reaches the device, and
// symbolic-link-class tags still need the create-symlink capability.
func (s *LinkService) SetReparseBuffer(ctx context.Context, path string, buffer []byte) error {
	rp, err := reparse.Decode(buffer)
	if err != nil {
		return fmt.Errorf("refusing to store reparse buffer on %s: %w", path, err)
	}
	if requiresSymlinkCapability(rp.Tag()) {
		if err := s.gate.Require(types.CapabilityCreateSymlink); err != nil {
			return err
		}
	}
	if err := s.device.SetReparsePoint(ctx, path, buffer); err != nil {
		return fmt.Errorf("failed to set reparse point %s on %s: %w", rp.Tag(), path, err)
	}
	return nil
}

// ReadLink reads and decodes the reparse point stored on path
func (s *LinkService) ReadLink(ctx context.Context, path string) (*reparse.ReparsePoint, error) {
	raw, err := s.device.GetReparsePoint(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reparse point %s: %w", path, err)
	}
	rp, err := s.decoder.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode reparse point %s: %w", path, err)
	}
	return rp, nil
}

// ReadLinkTarget returns the print name of the junction or symbolic link on
// path, falling back to the DOS form of the substitute name when the print
// name is empty
func (s *LinkService) ReadLinkTarget(ctx context.Context, path string) (string, error) {
	rp, err := s.ReadLink(ctx, path)
	if err != nil {
		return "", err
	}

	var pb reparse.PathBuffer
	switch p := rp.Payload.(type) {
	case reparse.MountPointPayload:
		pb = p.PathBuffer
	case reparse.SymbolicLinkPayload:
		pb = p.PathBuffer
	default:
		return "", fmt.Errorf("%s is a %s reparse point, not a link", path, rp.Tag())
	}

	if pb.PrintName() != "" {
		return pb.PrintName(), nil
	}
	return DOSPath(pb.SubstituteName()), nil
}

// DeleteReparsePoint removes the reparse point on path. The stored tag and
// GUID are read first because the delete request must repeat them.
func (s *LinkService) DeleteReparsePoint(ctx context.Context, path string) error {
	rp, err := s.ReadLink(ctx, path)
	if err != nil {
		return err
	}

	var guid *uuid.UUID
	if id, ok := rp.GUID(); ok {
		guid = &id
	}
	request, err := reparse.EncodeDeleteRequest(rp.Tag(), guid)
	if err != nil {
		return err
	}
	if err := s.device.DeleteReparsePoint(ctx, path, request); err != nil {
		return fmt.Errorf("failed to delete reparse point %s: %w", path, err)
	}
	return nil
}

func requiresSymlinkCapability(tag types.ReparseTag) bool {
	return tag == types.ReparseTagSymlink || tag == types.ReparseTagLxSymlink
}
