package reparse

import (
	"testing"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
)

func TestIsMicrosoftTag(t *testing.T) {
	tests := []struct {
		name string
		tag  types.ReparseTag
		want bool
	}{
		{"reserved zero", types.ReparseTagReservedZero, true},
		{"reserved one", types.ReparseTagReservedOne, true},
		{"mount point", types.ReparseTagMountPoint, true},
		{"symlink", types.ReparseTagSymlink, true},
		{"hsm", types.ReparseTagHSM, true},
		{"sis", types.ReparseTagSIS, true},
		{"cloud", types.ReparseTagCloud, true},
		{"unregistered microsoft bit", 0x8000FFFF, true},
		{"all bits set", 0xFFFFFFFF, true},
		{"third party", 0x00001234, false},
		{"third party with surrogate bit", 0x20000042, false},
		{"highest non microsoft", 0x7FFFFFFF, false},
		{"two", 0x00000002, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMicrosoftTag(tc.tag); got != tc.want {
				t.Errorf("IsMicrosoftTag(0x%08X) = %v, want %v", uint32(tc.tag), got, tc.want)
			}
		})
	}
}

func TestIsMicrosoftTag_Total(t *testing.T) {
	// Walk the tag space with a prime stride so every high bit pattern is
	// visited; the classifier must agree with HeaderSize everywhere.
	for v := uint64(0); v <= 0xFFFFFFFF; v += 65521 {
		tag := types.ReparseTag(v)
		size := HeaderSize(tag)
		if IsMicrosoftTag(tag) && size != types.ReparseHeaderSize {
			t.Fatalf("HeaderSize(0x%08X) = %d for Microsoft tag", uint32(tag), size)
		}
		if !IsMicrosoftTag(tag) && size != types.ReparseGUIDHeaderSize {
			t.Fatalf("HeaderSize(0x%08X) = %d for third-party tag", uint32(tag), size)
		}
	}
}

func TestTagBits(t *testing.T) {
	if !IsNameSurrogate(types.ReparseTagMountPoint) {
		t.Error("mount point should be a name surrogate")
	}
	if !IsNameSurrogate(types.ReparseTagSymlink) {
		t.Error("symlink should be a name surrogate")
	}
	if IsNameSurrogate(types.ReparseTagSIS) {
		t.Error("SIS should not be a name surrogate")
	}
	if !IsHighLatency(types.ReparseTagHSM) {
		t.Error("HSM should be high latency")
	}
	if IsHighLatency(types.ReparseTagSymlink) {
		t.Error("symlink should not be high latency")
	}
}
