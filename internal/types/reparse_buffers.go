package types

// Reparse Data Buffer Layouts
// Reference: ntifs.h REPARSE_DATA_BUFFER, winnt.h REPARSE_GUID_DATA_BUFFER

// ReparseDataBufferHeader is the fixed prefix shared by every reparse data
// buffer that carries a Microsoft tag.
type ReparseDataBufferHeader struct {
	// The reparse point tag.
	ReparseTag uint32
	// Size in bytes of the data that follows this header.
	ReparseDataLength uint16
	// Reserved. Round-trips as written.
	Reserved uint16
}

// ReparseGUIDDataBufferHeader is the prefix of a reparse data buffer for a
// third-party tag. ReparseGUID is stored in the Windows GUID layout (the first
// three groups little-endian).
type ReparseGUIDDataBufferHeader struct {
	ReparseTag        uint32
	ReparseDataLength uint16
	Reserved          uint16
	ReparseGUID       [GUIDSize]byte
}

// MountPointReparseBuffer is the sub-header that precedes the path buffer of
// IO_REPARSE_TAG_MOUNT_POINT data. Offsets and lengths are in bytes and are
// relative to the start of the path buffer.
type MountPointReparseBuffer struct {
	SubstituteNameOffset uint16
	SubstituteNameLength uint16
	PrintNameOffset      uint16
	PrintNameLength      uint16
}

// SymbolicLinkReparseBuffer is the sub-header that precedes the path buffer
// of IO_REPARSE_TAG_SYMLINK data.
type SymbolicLinkReparseBuffer struct {
	SubstituteNameOffset uint16
	SubstituteNameLength uint16
	PrintNameOffset      uint16
	PrintNameLength      uint16
	// Flags holds SymlinkFlagRelative when the substitute name is relative.
	Flags uint32
}

// Buffer sizes, in bytes.
const (
	// GUIDSize is the on-disk size of a GUID.
	GUIDSize = 16

	// ReparseHeaderSize is the size of ReparseDataBufferHeader.
	ReparseHeaderSize = 8

	// ReparseGUIDHeaderSize is the size of ReparseGUIDDataBufferHeader.
	ReparseGUIDHeaderSize = ReparseHeaderSize + GUIDSize

	// ReparseMountPointHeaderSize is the size of the tag and length fields
	// that precede the mount point data (REPARSE_MOUNTPOINT_HEADER_SIZE).
	ReparseMountPointHeaderSize = 4 + 2*2

	// MountPointSubHeaderSize is the size of MountPointReparseBuffer.
	MountPointSubHeaderSize = 8

	// SymbolicLinkSubHeaderSize is the size of SymbolicLinkReparseBuffer.
	SymbolicLinkSubHeaderSize = MountPointSubHeaderSize + 4

	// MaxPath is the classic Win32 path length limit, in characters.
	MaxPath = 260

	// MaxNameLength is the name length unit the reparse buffer maximum is
	// derived from.
	MaxNameLength = 1024

	// MaximumReparseDataBufferSize is the largest reparse data buffer,
	// header included, the file system accepts.
	MaximumReparseDataBufferSize = 16 * MaxNameLength

	// MaxMountPointReparseBuffer is the largest mount point payload once the
	// sub-header is accounted for.
	MaxMountPointReparseBuffer = MaximumReparseDataBufferSize - MountPointSubHeaderSize

	// MaxSymlinkReparseBuffer is the largest symbolic link payload once the
	// sub-header is accounted for.
	MaxSymlinkReparseBuffer = MaximumReparseDataBufferSize - SymbolicLinkSubHeaderSize
)

// Symbolic link flags.
const (
	// SymlinkFlagRelative marks a symbolic link whose substitute name is
	// relative to the directory containing the link.
	SymlinkFlagRelative uint32 = 0x00000001

	// SymlinkFile requests a file symbolic link from CreateSymbolicLink.
	SymlinkFile uint32 = 0x0

	// SymlinkDir requests a directory symbolic link from CreateSymbolicLink.
	SymlinkDir uint32 = 0x1
)

// NTPathPrefix is the object manager prefix used by substitute names of
// junctions and absolute symbolic links.
const NTPathPrefix = `\??\`
