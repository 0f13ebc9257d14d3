package reparse

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
)

// Encode builds the reparse data buffer for tag and payload, as passed to
// FSCTL_SET_REPARSE_POINT. guid is required when tag is not a Microsoft tag
// and ignored otherwise. A nil payload encodes no data.
//
// Mount point and symbolic link payloads must be paired with their own tag.
// A GenericPayload may be used with any other tag, since the decoder always
// reads MOUNT_POINT and SYMLINK data with their sub-header layout.
func Encode(tag types.ReparseTag, payload Payload, guid *uuid.UUID) ([]byte, error) {
	header, err := NewHeader(tag, 0, guid)
	if err != nil {
		return nil, err
	}
	return Marshal(&ReparsePoint{Header: header, Payload: payload})
}

// EncodeDeleteRequest builds the header-only buffer FSCTL_DELETE_REPARSE_POINT
// expects: the tag, a zero data length and, for third-party tags, the GUID.
func EncodeDeleteRequest(tag types.ReparseTag, guid *uuid.UUID) ([]byte, error) {
	header, err := NewHeader(tag, 0, guid)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, header.Size()))
	if err := header.writeTo(buf, 0); err != nil {
		return nil, fmt.Errorf("failed to write reparse header: %w", err)
	}
	return buf.Bytes(), nil
}

// Marshal encodes rp, preserving its header's Reserved field. The data length
// is always recomputed from the payload.
func Marshal(rp *ReparsePoint) ([]byte, error) {
	if rp == nil || rp.Header == nil {
		return nil, errors.New("reparse point has no header")
	}

	header, err := normalizeHeader(rp.Header)
	if err != nil {
		return nil, err
	}
	tag := header.Common().Tag

	payload := rp.Payload
	if payload == nil {
		payload = GenericPayload{}
	}
	if err := checkPayloadTag(tag, payload); err != nil {
		return nil, err
	}

	dataLength := payload.size()
	total := header.Size() + dataLength
	if total > types.MaximumReparseDataBufferSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the maximum of %d",
			ErrBufferTooLarge, total, types.MaximumReparseDataBufferSize)
	}

	buf := bytes.NewBuffer(make([]byte, 0, total))
	if err := header.writeTo(buf, uint16(dataLength)); err != nil {
		return nil, fmt.Errorf("failed to write reparse header: %w", err)
	}
	if err := payload.writeTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write reparse data: %w", err)
	}
	return buf.Bytes(), nil
}

func checkPayloadTag(tag types.ReparseTag, payload Payload) error {
	switch payload.Kind() {
	case PayloadGeneric:
		if tag == types.ReparseTagMountPoint || tag == types.ReparseTagSymlink {
			return fmt.Errorf("%w: tag %s requires its structured payload, not opaque data", ErrUnknownTag, tag)
		}
	case PayloadMountPoint:
		if tag != types.ReparseTagMountPoint {
			return fmt.Errorf("%w: mount point data cannot be stored under tag 0x%08X", ErrUnknownTag, uint32(tag))
		}
	case PayloadSymbolicLink:
		if tag != types.ReparseTagSymlink {
			return fmt.Errorf("%w: symbolic link data cannot be stored under tag 0x%08X", ErrUnknownTag, uint32(tag))
		}
	}
	return nil
}
