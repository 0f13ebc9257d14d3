package reparse

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
)

// Decoder parses reparse data buffers.
type Decoder struct {
	// Strict rejects Microsoft tags whose data layout is unknown with
	// ErrUnrecognizedTagWithSubHeader instead of returning their data as a
	// GenericPayload.
	Strict bool
}

// Decode parses raw with a lenient Decoder.
func Decode(raw []byte) (*ReparsePoint, error) {
	return Decoder{}.Decode(raw)
}

// Decode parses raw, as returned by FSCTL_GET_REPARSE_POINT. Every length and
// offset is validated; the result shares no memory with raw.
func (d Decoder) Decode(raw []byte) (*ReparsePoint, error) {
	if len(raw) < types.ReparseHeaderSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, have %d",
			ErrTruncatedHeader, types.ReparseHeaderSize, len(raw))
	}

	header, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}
	common := header.Common()

	if want := header.Size() + int(common.DataLength); want != len(raw) {
		return nil, fmt.Errorf("%w: header declares %d data bytes, buffer holds %d",
			ErrLengthMismatch, common.DataLength, len(raw)-header.Size())
	}

	payload, err := d.parsePayload(common.Tag, raw[header.Size():])
	if err != nil {
		return nil, err
	}

	return &ReparsePoint{Header: header, Payload: payload}, nil
}

func (d Decoder) parsePayload(tag types.ReparseTag, data []byte) (Payload, error) {
	switch tag {
	case types.ReparseTagMountPoint:
		return parseMountPoint(data)
	case types.ReparseTagSymlink:
		return parseSymbolicLink(data)
	}

	if d.Strict && IsMicrosoftTag(tag) && len(data) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedTagWithSubHeader, tag)
	}

	owned := make([]byte, len(data))
	copy(owned, data)
	return GenericPayload{Data: owned}, nil
}

func parseMountPoint(data []byte) (Payload, error) {
	if len(data) < types.MountPointSubHeaderSize {
		return nil, fmt.Errorf("%w: mount point data needs %d bytes, have %d",
			ErrTruncatedHeader, types.MountPointSubHeaderSize, len(data))
	}

	var sub types.MountPointReparseBuffer
	if err := binary.Read(bytes.NewReader(data[:types.MountPointSubHeaderSize]), binary.LittleEndian, &sub); err != nil {
		return nil, fmt.Errorf("failed to read mount point sub-header: %w", err)
	}

	pb, err := NewPathBufferFromLayout(data[types.MountPointSubHeaderSize:],
		sub.SubstituteNameOffset, sub.SubstituteNameLength,
		sub.PrintNameOffset, sub.PrintNameLength)
	if err != nil {
		return nil, err
	}
	return MountPointPayload{PathBuffer: pb}, nil
}

func parseSymbolicLink(data []byte) (Payload, error) {
	if len(data) < types.SymbolicLinkSubHeaderSize {
		return nil, fmt.Errorf("%w: symbolic link data needs %d bytes, have %d",
			ErrTruncatedHeader, types.SymbolicLinkSubHeaderSize, len(data))
	}

	var sub types.SymbolicLinkReparseBuffer
	if err := binary.Read(bytes.NewReader(data[:types.SymbolicLinkSubHeaderSize]), binary.LittleEndian, &sub); err != nil {
		return nil, fmt.Errorf("failed to read symbolic link sub-header: %w", err)
	}

	pb, err := NewPathBufferFromLayout(data[types.SymbolicLinkSubHeaderSize:],
		sub.SubstituteNameOffset, sub.SubstituteNameLength,
		sub.PrintNameOffset, sub.PrintNameLength)
	if err != nil {
		return nil, err
	}
	return SymbolicLinkPayload{PathBuffer: pb, Flags: sub.Flags}, nil
}
