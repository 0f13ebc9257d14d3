package reparse

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
)

// Header is the prefix of a reparse data buffer. It is either a PlainHeader,
// used by Microsoft tags, or a GUIDHeader, used by third-party tags.
type Header interface {
	// Common returns the fields both layouts share.
	Common() PlainHeader

	// Size returns the encoded size of the header in bytes.
	Size() int

	writeTo(buf *bytes.Buffer, dataLength uint16) error
}

// PlainHeader is the 8-byte header of a Microsoft reparse tag.
type PlainHeader struct {
	Tag types.ReparseTag
	// DataLength is filled in by the decoder. The encoder computes it from
	// the payload and ignores this value.
	DataLength uint16
	Reserved   uint16
}

// Common returns h.
func (h PlainHeader) Common() PlainHeader {
	return h
}

// Size returns types.ReparseHeaderSize.
func (h PlainHeader) Size() int {
	return types.ReparseHeaderSize
}

func (h PlainHeader) writeTo(buf *bytes.Buffer, dataLength uint16) error {
	return binary.Write(buf, binary.LittleEndian, types.ReparseDataBufferHeader{
		ReparseTag:        uint32(h.Tag),
		ReparseDataLength: dataLength,
		Reserved:          h.Reserved,
	})
}

// GUIDHeader is the 24-byte header of a third-party reparse tag.
type GUIDHeader struct {
	PlainHeader
	GUID uuid.UUID
}

// Size returns types.ReparseGUIDHeaderSize.
func (h GUIDHeader) Size() int {
	return types.ReparseGUIDHeaderSize
}

func (h GUIDHeader) writeTo(buf *bytes.Buffer, dataLength uint16) error {
	raw := types.ReparseGUIDDataBufferHeader{
		ReparseTag:        uint32(h.Tag),
		ReparseDataLength: dataLength,
		Reserved:          h.Reserved,
	}
	putGUID(raw.ReparseGUID[:], h.GUID)
	return binary.Write(buf, binary.LittleEndian, raw)
}

// NewHeader returns the header layout tag requires. guid is ignored for
// Microsoft tags and mandatory for all others.
func NewHeader(tag types.ReparseTag, reserved uint16, guid *uuid.UUID) (Header, error) {
	plain := PlainHeader{Tag: tag, Reserved: reserved}
	if IsMicrosoftTag(tag) {
		return plain, nil
	}
	if guid == nil {
		return nil, fmt.Errorf("%w: tag 0x%08X", ErrMissingGUID, uint32(tag))
	}
	return GUIDHeader{PlainHeader: plain, GUID: *guid}, nil
}

// normalizeHeader re-derives the layout of h from its tag, so that a header
// built by hand can never disagree with what the decoder will read back.
func normalizeHeader(h Header) (Header, error) {
	common := h.Common()
	var guid *uuid.UUID
	if gh, ok := h.(GUIDHeader); ok {
		guid = &gh.GUID
	}
	return NewHeader(common.Tag, common.Reserved, guid)
}

// parseHeader reads the header of raw. The caller has checked that raw holds
// at least types.ReparseHeaderSize bytes.
func parseHeader(raw []byte) (Header, error) {
	tag := types.ReparseTag(binary.LittleEndian.Uint32(raw[0:4]))
	if IsMicrosoftTag(tag) {
		var h types.ReparseDataBufferHeader
		if err := binary.Read(bytes.NewReader(raw[:types.ReparseHeaderSize]), binary.LittleEndian, &h); err != nil {
			return nil, fmt.Errorf("failed to read reparse header: %w", err)
		}
		return PlainHeader{
			Tag:        types.ReparseTag(h.ReparseTag),
			DataLength: h.ReparseDataLength,
			Reserved:   h.Reserved,
		}, nil
	}

	if len(raw) < types.ReparseGUIDHeaderSize {
		return nil, fmt.Errorf("%w: tag 0x%08X needs a %d byte GUID header, have %d bytes",
			ErrTruncatedHeader, uint32(tag), types.ReparseGUIDHeaderSize, len(raw))
	}
	var h types.ReparseGUIDDataBufferHeader
	if err := binary.Read(bytes.NewReader(raw[:types.ReparseGUIDHeaderSize]), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("failed to read reparse GUID header: %w", err)
	}
	return GUIDHeader{
		PlainHeader: PlainHeader{
			Tag:        types.ReparseTag(h.ReparseTag),
			DataLength: h.ReparseDataLength,
			Reserved:   h.Reserved,
		},
		GUID: readGUID(h.ReparseGUID[:]),
	}, nil
}
