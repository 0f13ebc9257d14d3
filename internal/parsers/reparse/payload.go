package reparse

import (
	"bytes"
	"encoding/binary"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
)

// PayloadKind names the layout of the data that follows a reparse header.
type PayloadKind int

const (
	// PayloadGeneric is opaque data.
	PayloadGeneric PayloadKind = iota
	// PayloadMountPoint is IO_REPARSE_TAG_MOUNT_POINT data.
	PayloadMountPoint
	// PayloadSymbolicLink is IO_REPARSE_TAG_SYMLINK data.
	PayloadSymbolicLink
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadMountPoint:
		return "mount-point"
	case PayloadSymbolicLink:
		return "symbolic-link"
	default:
		return "generic"
	}
}

// Payload is the data that follows a reparse header: a MountPointPayload, a
// SymbolicLinkPayload or a GenericPayload.
type Payload interface {
	Kind() PayloadKind

	size() int
	writeTo(buf *bytes.Buffer) error
}

// MountPointPayload is the data of a junction or volume mount point.
type MountPointPayload struct {
	PathBuffer
}

// NewMountPointPayload packs substituteName and printName into a mount point
// payload.
func NewMountPointPayload(substituteName, printName string) (MountPointPayload, error) {
	pb, err := NewPathBuffer(substituteName, printName)
	if err != nil {
		return MountPointPayload{}, err
	}
	return MountPointPayload{PathBuffer: pb}, nil
}

// Kind returns PayloadMountPoint.
func (p MountPointPayload) Kind() PayloadKind {
	return PayloadMountPoint
}

func (p MountPointPayload) size() int {
	return types.MountPointSubHeaderSize + p.Len()
}

func (p MountPointPayload) writeTo(buf *bytes.Buffer) error {
	if err := binary.Write(buf, binary.LittleEndian, types.MountPointReparseBuffer{
		SubstituteNameOffset: p.substituteNameOffset,
		SubstituteNameLength: p.substituteNameLength,
		PrintNameOffset:      p.printNameOffset,
		PrintNameLength:      p.printNameLength,
	}); err != nil {
		return err
	}
	_, err := buf.Write(p.data)
	return err
}

// SymbolicLinkPayload is the data of a file or directory symbolic link.
type SymbolicLinkPayload struct {
	PathBuffer
	Flags uint32
}

// NewSymbolicLinkPayload packs substituteName and printName into a symbolic
// link payload, setting types.SymlinkFlagRelative when relative is true.
func NewSymbolicLinkPayload(substituteName, printName string, relative bool) (SymbolicLinkPayload, error) {
	pb, err := NewPathBuffer(substituteName, printName)
	if err != nil {
		return SymbolicLinkPayload{}, err
	}
	var flags uint32
	if relative {
		flags |= types.SymlinkFlagRelative
	}
	return SymbolicLinkPayload{PathBuffer: pb, Flags: flags}, nil
}

// Kind returns PayloadSymbolicLink.
func (p SymbolicLinkPayload) Kind() PayloadKind {
	return PayloadSymbolicLink
}

// IsRelative reports whether the substitute name is relative to the
// directory holding the link.
func (p SymbolicLinkPayload) IsRelative() bool {
	return p.Flags&types.SymlinkFlagRelative != 0
}

func (p SymbolicLinkPayload) size() int {
	return types.SymbolicLinkSubHeaderSize + p.Len()
}

func (p SymbolicLinkPayload) writeTo(buf *bytes.Buffer) error {
	if err := binary.Write(buf, binary.LittleEndian, types.SymbolicLinkReparseBuffer{
		SubstituteNameOffset: p.substituteNameOffset,
		SubstituteNameLength: p.substituteNameLength,
		PrintNameOffset:      p.printNameOffset,
		PrintNameLength:      p.printNameLength,
		Flags:                p.Flags,
	}); err != nil {
		return err
	}
	_, err := buf.Write(p.data)
	return err
}

// GenericPayload is reparse data without an interpreted structure.
type GenericPayload struct {
	Data []byte
}

// Kind returns PayloadGeneric.
func (p GenericPayload) Kind() PayloadKind {
	return PayloadGeneric
}

func (p GenericPayload) size() int {
	return len(p.Data)
}

func (p GenericPayload) writeTo(buf *bytes.Buffer) error {
	_, err := buf.Write(p.Data)
	return err
}
