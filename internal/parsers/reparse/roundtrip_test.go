package reparse

import (
	"testing"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	symlinkRelative, err := NewSymbolicLinkPayload(`..\data\file.txt`, `..\data\file.txt`, true)
	require.NoError(t, err)
	symlinkAbsolute, err := NewSymbolicLinkPayload(`\??\D:\share`, `D:\share`, false)
	require.NoError(t, err)

	tests := []struct {
		name    string
		tag     types.ReparseTag
		payload Payload
		guid    *uuid.UUID
	}{
		{"junction", types.ReparseTagMountPoint, mustMountPoint(t, `\??\C:\target`, `C:\target`), nil},
		{"volume mount point", types.ReparseTagMountPoint, mustMountPoint(t, `\??\Volume{0e2a1c5f-0000-0000-0000-100000000000}\`, ""), nil},
		{"relative symlink", types.ReparseTagSymlink, symlinkRelative, nil},
		{"absolute symlink", types.ReparseTagSymlink, symlinkAbsolute, nil},
		{"empty generic", types.ReparseTagSIS, GenericPayload{Data: []byte{}}, nil},
		{"generic microsoft", types.ReparseTagCloud, GenericPayload{Data: []byte("cloud")}, nil},
		{"third party", 0x00001234, GenericPayload{Data: []byte{0, 1, 2, 3, 4}}, &testGUID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := Encode(tc.tag, tc.payload, tc.guid)
			require.NoError(t, err)

			rp, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.tag, rp.Tag())
			assert.Equal(t, tc.payload.Kind(), rp.Payload.Kind())

			if tc.guid != nil {
				id, ok := rp.GUID()
				require.True(t, ok)
				assert.Equal(t, *tc.guid, id)
			}

			switch want := tc.payload.(type) {
			case MountPointPayload:
				got := rp.Payload.(MountPointPayload)
				assert.Equal(t, want.SubstituteName(), got.SubstituteName())
				assert.Equal(t, want.PrintName(), got.PrintName())
			case SymbolicLinkPayload:
				got := rp.Payload.(SymbolicLinkPayload)
				assert.Equal(t, want.SubstituteName(), got.SubstituteName())
				assert.Equal(t, want.PrintName(), got.PrintName())
				assert.Equal(t, want.IsRelative(), got.IsRelative())
			case GenericPayload:
				assert.Equal(t, want.Data, rp.Payload.(GenericPayload).Data)
			}

			again, err := Marshal(rp)
			require.NoError(t, err)
			assert.Equal(t, raw, again, "re-encoding a decoded buffer must be byte identical")
		})
	}
}

func TestRoundTrip_UnusualLayout(t *testing.T) {
	// Print name stored before the substitute name, with a gap between them.
	printed, err := encodeWide(`C:\t`)
	require.NoError(t, err)
	substitute, err := encodeWide(`\??\C:\t`)
	require.NoError(t, err)

	data := append(append(append([]byte{}, printed...), 0, 0), substitute...)
	pb, err := NewPathBufferFromLayout(data,
		uint16(len(printed)+2), uint16(len(substitute)),
		0, uint16(len(printed)))
	require.NoError(t, err)

	raw, err := Encode(types.ReparseTagMountPoint, MountPointPayload{PathBuffer: pb}, nil)
	require.NoError(t, err)

	rp, err := Decode(raw)
	require.NoError(t, err)
	mp := rp.Payload.(MountPointPayload)
	assert.Equal(t, `\??\C:\t`, mp.SubstituteName())
	assert.Equal(t, `C:\t`, mp.PrintName())
	assert.Equal(t, uint16(len(printed)+2), mp.SubstituteNameOffset())

	again, err := Marshal(rp)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestRoundTrip_ReservedPreserved(t *testing.T) {
	raw := append(rawHeader(types.ReparseTagSIS, 1), 0x7F)
	raw[6], raw[7] = 0x34, 0x12

	rp, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), rp.Header.Common().Reserved)

	again, err := Marshal(rp)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}
