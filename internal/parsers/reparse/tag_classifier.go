package reparse

import "github.com/deploymenttheory/go-ntfslink/internal/types"

// IsMicrosoftTag reports whether tag is owned by Microsoft. Such tags use the
// plain 8-byte header; every other tag uses the GUID header. It is defined for
// every uint32 value.
func IsMicrosoftTag(tag types.ReparseTag) bool {
	switch tag {
	case types.ReparseTagReservedZero,
		types.ReparseTagReservedOne,
		types.ReparseTagMountPoint,
		types.ReparseTagSymlink,
		types.ReparseTagHSM,
		types.ReparseTagSIS:
		return true
	}
	return tag&types.ReparseTagMicrosoftBit != 0
}

// IsNameSurrogate reports whether tag stands in for another named entity.
func IsNameSurrogate(tag types.ReparseTag) bool {
	return tag&types.ReparseTagNameSurrogateBit != 0
}

// IsHighLatency reports whether resolving tag may be slow.
func IsHighLatency(tag types.ReparseTag) bool {
	return tag&types.ReparseTagHighLatencyBit != 0
}

// HeaderSize returns the size of the header used for tag.
func HeaderSize(tag types.ReparseTag) int {
	if IsMicrosoftTag(tag) {
		return types.ReparseHeaderSize
	}
	return types.ReparseGUIDHeaderSize
}
