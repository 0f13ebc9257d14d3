package reparse

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGUID = uuid.MustParse("8c3b0dbe-4f3f-4e25-9a1c-7f8e8d6c5b4a")

func TestEncode_MountPointLayout(t *testing.T) {
	payload, err := NewMountPointPayload(`\??\C:\target`, `C:\target`)
	require.NoError(t, err)

	raw, err := Encode(types.ReparseTagMountPoint, payload, nil)
	require.NoError(t, err)
	require.Len(t, raw, 60)

	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0xA0}, raw[0:4], "tag")
	assert.Equal(t, uint16(52), binary.LittleEndian.Uint16(raw[4:6]), "data length")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(raw[6:8]), "reserved")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(raw[8:10]), "substitute offset")
	assert.Equal(t, uint16(26), binary.LittleEndian.Uint16(raw[10:12]), "substitute length")
	assert.Equal(t, uint16(26), binary.LittleEndian.Uint16(raw[12:14]), "print offset")
	assert.Equal(t, uint16(18), binary.LittleEndian.Uint16(raw[14:16]), "print length")
	assert.Equal(t, []byte{0x5C, 0x00}, raw[16:18])
	assert.Equal(t, []byte{'t', 0x00}, raw[58:60])
}

func TestEncode_SymbolicLinkLayout(t *testing.T) {
	payload, err := NewSymbolicLinkPayload(`..\target`, `..\target`, true)
	require.NoError(t, err)

	raw, err := Encode(types.ReparseTagSymlink, payload, nil)
	require.NoError(t, err)

	// 8 byte header, 12 byte sub-header, two 18 byte names.
	require.Len(t, raw, 8+12+36)
	assert.Equal(t, uint32(types.ReparseTagSymlink), binary.LittleEndian.Uint32(raw[0:4]))
	assert.Equal(t, uint16(48), binary.LittleEndian.Uint16(raw[4:6]))
	assert.Equal(t, types.SymlinkFlagRelative, binary.LittleEndian.Uint32(raw[16:20]))
	assert.Equal(t, []byte{'.', 0x00}, raw[20:22])
}

func TestEncode_GUIDWireLayout(t *testing.T) {
	tag := types.ReparseTag(0x00001234)
	raw, err := Encode(tag, GenericPayload{Data: []byte{1, 2, 3}}, &testGUID)
	require.NoError(t, err)
	require.Len(t, raw, 24+3)

	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(raw[4:6]))
	assert.Equal(t, []byte{
		0xbe, 0x0d, 0x3b, 0x8c,
		0x3f, 0x4f,
		0x25, 0x4e,
		0x9a, 0x1c, 0x7f, 0x8e, 0x8d, 0x6c, 0x5b, 0x4a,
	}, raw[8:24])
	assert.Equal(t, []byte{1, 2, 3}, raw[24:])
}

func TestEncode_GUIDIgnoredForMicrosoftTags(t *testing.T) {
	raw, err := Encode(types.ReparseTagSIS, GenericPayload{Data: []byte{0xAA}}, &testGUID)
	require.NoError(t, err)
	assert.Len(t, raw, 9)
}

func TestEncode_Errors(t *testing.T) {
	mountPoint, err := NewMountPointPayload(`\??\C:\a`, `C:\a`)
	require.NoError(t, err)
	symlink, err := NewSymbolicLinkPayload(`C:\a`, `C:\a`, false)
	require.NoError(t, err)

	tests := []struct {
		name    string
		tag     types.ReparseTag
		payload Payload
		guid    *uuid.UUID
		wantErr error
	}{
		{"third party without guid", 0x00000042, GenericPayload{}, nil, ErrMissingGUID},
		{"mount point under symlink tag", types.ReparseTagSymlink, mountPoint, nil, ErrUnknownTag},
		{"symlink under mount point tag", types.ReparseTagMountPoint, symlink, nil, ErrUnknownTag},
		{"symlink under third party tag", 0x00000042, symlink, &testGUID, ErrUnknownTag},
		{"generic data under mount point tag", types.ReparseTagMountPoint, GenericPayload{Data: []byte{1, 2, 3}}, nil, ErrUnknownTag},
		{"generic data under symlink tag", types.ReparseTagSymlink, GenericPayload{Data: make([]byte, 12)}, nil, ErrUnknownTag},
		{"oversized generic data", types.ReparseTagSIS, GenericPayload{Data: make([]byte, types.MaximumReparseDataBufferSize)}, nil, ErrBufferTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.tag, tc.payload, tc.guid)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Encode() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestEncode_LongPathExceedsMaximum(t *testing.T) {
	long := `C:\` + strings.Repeat("x", 5000)

	payload, err := NewMountPointPayload(`\??\`+long, long)
	require.NoError(t, err, "the path buffer itself fits in 16 bits")

	_, err = Encode(types.ReparseTagMountPoint, payload, nil)
	assert.ErrorIs(t, err, ErrBufferTooLarge)
}

func TestEncode_BoundarySize(t *testing.T) {
	data := make([]byte, types.MaximumReparseDataBufferSize-types.ReparseHeaderSize)
	raw, err := Encode(types.ReparseTagSIS, GenericPayload{Data: data}, nil)
	require.NoError(t, err)
	assert.Len(t, raw, types.MaximumReparseDataBufferSize)

	data = append(data, 0)
	_, err = Encode(types.ReparseTagSIS, GenericPayload{Data: data}, nil)
	assert.ErrorIs(t, err, ErrBufferTooLarge)
}

func TestEncode_NilPayload(t *testing.T) {
	raw, err := Encode(types.ReparseTagSIS, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x00, 0x00, 0x80, 0, 0, 0, 0}, raw)

	_, err = Encode(types.ReparseTagMountPoint, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownTag)
}

// Every buffer Encode accepts for a structured tag must decode again, so
// opaque data under those tags is refused.
func TestEncode_GenericDataUnderStructuredTag(t *testing.T) {
	for _, tag := range []types.ReparseTag{types.ReparseTagMountPoint, types.ReparseTagSymlink} {
		for _, data := range [][]byte{{}, {1, 2, 3}, make([]byte, 8), make([]byte, 12)} {
			raw, err := Encode(tag, GenericPayload{Data: data}, nil)
			assert.ErrorIs(t, err, ErrUnknownTag, "%s with %d bytes", tag, len(data))
			assert.Nil(t, raw)
		}
	}

	raw, err := Encode(types.ReparseTagLxSymlink, GenericPayload{Data: []byte("/tmp")}, nil)
	require.NoError(t, err)
	rp, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, PayloadGeneric, rp.Payload.Kind())
}

func TestEncodeDeleteRequest(t *testing.T) {
	raw, err := EncodeDeleteRequest(types.ReparseTagSymlink, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0C, 0x00, 0x00, 0xA0, 0, 0, 0, 0}, raw)

	raw, err = EncodeDeleteRequest(types.ReparseTagMountPoint, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0xA0, 0, 0, 0, 0}, raw)

	raw, err = EncodeDeleteRequest(0x00000042, &testGUID)
	require.NoError(t, err)
	require.Len(t, raw, types.ReparseGUIDHeaderSize)
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(raw[4:6]))

	_, err = EncodeDeleteRequest(0x00000042, nil)
	assert.ErrorIs(t, err, ErrMissingGUID)
}

func TestMarshal(t *testing.T) {
	t.Run("preserves reserved", func(t *testing.T) {
		raw, err := Marshal(&ReparsePoint{
			Header:  PlainHeader{Tag: types.ReparseTagSIS, Reserved: 0xBEEF},
			Payload: GenericPayload{Data: []byte{9}},
		})
		require.NoError(t, err)
		assert.Equal(t, uint16(0xBEEF), binary.LittleEndian.Uint16(raw[6:8]))
	})

	t.Run("recomputes data length", func(t *testing.T) {
		raw, err := Marshal(&ReparsePoint{
			Header:  PlainHeader{Tag: types.ReparseTagSIS, DataLength: 999},
			Payload: GenericPayload{Data: []byte{1, 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(raw[4:6]))
	})

	t.Run("drops guid for microsoft tag", func(t *testing.T) {
		raw, err := Marshal(&ReparsePoint{
			Header: GUIDHeader{PlainHeader: PlainHeader{Tag: types.ReparseTagSIS}, GUID: testGUID},
		})
		require.NoError(t, err)
		assert.Len(t, raw, types.ReparseHeaderSize)
	})

	t.Run("plain header with third party tag", func(t *testing.T) {
		_, err := Marshal(&ReparsePoint{Header: PlainHeader{Tag: 0x00000042}})
		assert.ErrorIs(t, err, ErrMissingGUID)
	})

	t.Run("no header", func(t *testing.T) {
		_, err := Marshal(&ReparsePoint{})
		assert.Error(t, err)
		_, err = Marshal(nil)
		assert.Error(t, err)
	})
}
