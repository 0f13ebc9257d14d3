// Package types holds the NTFS reparse point constant registry: reparse tags,
// buffer layouts and sizes, file attribute and open flags, device I/O control
// codes, access rights and privilege names.
package types

import "fmt"

// Reparse Point Tags
// Reference: winnt.h, "Reparse Tags" (MS-FSCC section 2.1.2.1)

// ReparseTag identifies the kind of a reparse point and selects the layout of
// the data that follows the reparse header.
type ReparseTag uint32

// Reserved bit layout of a reparse tag.
const (
	// ReparseTagMicrosoftBit is set on every tag owned by Microsoft.
	ReparseTagMicrosoftBit ReparseTag = 0x80000000

	// ReparseTagHighLatencyBit marks tags whose target may take a long time
	// to retrieve (e.g. data moved to tape by an HSM).
	ReparseTagHighLatencyBit ReparseTag = 0x40000000

	// ReparseTagNameSurrogateBit marks tags that stand in for another named
	// entity in the namespace, such as junctions and symbolic links.
	ReparseTagNameSurrogateBit ReparseTag = 0x20000000

	// ReparseTagReservedBits covers the reserved high bits of a tag.
	ReparseTagReservedBits ReparseTag = 0xF0000000
)

const (
	// ReparseTagReservedZero is reserved and never assigned to a filter.
	ReparseTagReservedZero ReparseTag = 0x00000000

	// ReparseTagReservedOne is reserved and never assigned to a filter.
	ReparseTagReservedOne ReparseTag = 0x00000001

	// ReparseTagReservedRange is the highest reserved tag value.
	ReparseTagReservedRange = ReparseTagReservedOne

	// ReparseTagMountPoint is used for mount points and directory junctions.
	ReparseTagMountPoint ReparseTag = 0xA0000003

	// ReparseTagHSM is used by the Hierarchical Storage Manager.
	ReparseTagHSM ReparseTag = 0xC0000004

	// ReparseTagHSM2 is used by the Hierarchical Storage Manager.
	ReparseTagHSM2 ReparseTag = 0x80000006

	// ReparseTagSIS is used by the Single Instance Storage filter.
	ReparseTagSIS ReparseTag = 0x80000007

	// ReparseTagWIM is used by the WIM mount filter.
	ReparseTagWIM ReparseTag = 0x80000008

	// ReparseTagCSV is used by Clustered Shared Volumes.
	ReparseTagCSV ReparseTag = 0x80000009

	// ReparseTagDFS is used by the Distributed File System.
	ReparseTagDFS ReparseTag = 0x8000000A

	// ReparseTagSymlink is used for file and directory symbolic links.
	ReparseTagSymlink ReparseTag = 0xA000000C

	// ReparseTagDFSR is used by the DFS filter.
	ReparseTagDFSR ReparseTag = 0x80000012

	// ReparseTagDedup is used by the Data Deduplication filter.
	ReparseTagDedup ReparseTag = 0x80000013

	// ReparseTagNFS is used by the Network File System server.
	ReparseTagNFS ReparseTag = 0x80000014

	// ReparseTagFilePlaceholder is used by Windows Shell placeholders.
	ReparseTagFilePlaceholder ReparseTag = 0x80000015

	// ReparseTagWOF is used by the Windows Overlay Filter.
	ReparseTagWOF ReparseTag = 0x80000017

	// ReparseTagWCI is used by the Windows Container Isolation filter.
	ReparseTagWCI ReparseTag = 0x80000018

	// ReparseTagGlobalReparse is used by NPFS to redirect named pipes.
	ReparseTagGlobalReparse ReparseTag = 0xA0000019

	// ReparseTagCloud is used by the Cloud Files filter.
	ReparseTagCloud ReparseTag = 0x9000001A

	// ReparseTagAppExecLink is used for Universal Windows Platform app
	// execution aliases.
	ReparseTagAppExecLink ReparseTag = 0x8000001B

	// ReparseTagProjFS is used by the Windows Projected File System.
	ReparseTagProjFS ReparseTag = 0x9000001C

	// ReparseTagLxSymlink is used by the Windows Subsystem for Linux for
	// Linux symbolic links.
	ReparseTagLxSymlink ReparseTag = 0xA000001D

	// ReparseTagStorageSync is used by Azure File Sync.
	ReparseTagStorageSync ReparseTag = 0x8000001E

	// ReparseTagAFUnix is used for Unix domain sockets.
	ReparseTagAFUnix ReparseTag = 0x80000023

	// ReparseTagLxFIFO is used by WSL for FIFO named pipes.
	ReparseTagLxFIFO ReparseTag = 0x80000024

	// ReparseTagLxChr is used by WSL for character special files.
	ReparseTagLxChr ReparseTag = 0x80000025

	// ReparseTagLxBlk is used by WSL for block special files.
	ReparseTagLxBlk ReparseTag = 0x80000026
)

// TagName returns the symbolic name of a well-known reparse tag and whether
// the tag was recognized.
func TagName(tag ReparseTag) (string, bool) {
	switch tag {
	case ReparseTagReservedZero:
		return "IO_REPARSE_TAG_RESERVED_ZERO", true
	case ReparseTagReservedOne:
		return "IO_REPARSE_TAG_RESERVED_ONE", true
	case ReparseTagMountPoint:
		return "IO_REPARSE_TAG_MOUNT_POINT", true
	case ReparseTagHSM:
		return "IO_REPARSE_TAG_HSM", true
	case ReparseTagHSM2:
		return "IO_REPARSE_TAG_HSM2", true
	case ReparseTagSIS:
		return "IO_REPARSE_TAG_SIS", true
	case ReparseTagWIM:
		return "IO_REPARSE_TAG_WIM", true
	case ReparseTagCSV:
		return "IO_REPARSE_TAG_CSV", true
	case ReparseTagDFS:
		return "IO_REPARSE_TAG_DFS", true
	case ReparseTagSymlink:
		return "IO_REPARSE_TAG_SYMLINK", true
	case ReparseTagDFSR:
		return "IO_REPARSE_TAG_DFSR", true
	case ReparseTagDedup:
		return "IO_REPARSE_TAG_DEDUP", true
	case ReparseTagNFS:
		return "IO_REPARSE_TAG_NFS", true
	case ReparseTagFilePlaceholder:
		return "IO_REPARSE_TAG_FILE_PLACEHOLDER", true
	case ReparseTagWOF:
		return "IO_REPARSE_TAG_WOF", true
	case ReparseTagWCI:
		return "IO_REPARSE_TAG_WCI", true
	case ReparseTagGlobalReparse:
		return "IO_REPARSE_TAG_GLOBAL_REPARSE", true
	case ReparseTagCloud:
		return "IO_REPARSE_TAG_CLOUD", true
	case ReparseTagAppExecLink:
		return "IO_REPARSE_TAG_APPEXECLINK", true
	case ReparseTagProjFS:
		return "IO_REPARSE_TAG_PROJFS", true
	case ReparseTagLxSymlink:
		return "IO_REPARSE_TAG_LX_SYMLINK", true
	case ReparseTagStorageSync:
		return "IO_REPARSE_TAG_STORAGE_SYNC", true
	case ReparseTagAFUnix:
		return "IO_REPARSE_TAG_AF_UNIX", true
	case ReparseTagLxFIFO:
		return "IO_REPARSE_TAG_LX_FIFO", true
	case ReparseTagLxChr:
		return "IO_REPARSE_TAG_LX_CHR", true
	case ReparseTagLxBlk:
		return "IO_REPARSE_TAG_LX_BLK", true
	}
	return "", false
}

// KnownTags returns every tag TagName recognizes, in ascending order.
func KnownTags() []ReparseTag {
	return []ReparseTag{
		ReparseTagReservedZero,
		ReparseTagReservedOne,
		ReparseTagHSM2,
		ReparseTagSIS,
		ReparseTagWIM,
		ReparseTagCSV,
		ReparseTagDFS,
		ReparseTagDFSR,
		ReparseTagDedup,
		ReparseTagNFS,
		ReparseTagFilePlaceholder,
		ReparseTagWOF,
		ReparseTagWCI,
		ReparseTagAppExecLink,
		ReparseTagStorageSync,
		ReparseTagAFUnix,
		ReparseTagLxFIFO,
		ReparseTagLxChr,
		ReparseTagLxBlk,
		ReparseTagCloud,
		ReparseTagProjFS,
		ReparseTagMountPoint,
		ReparseTagSymlink,
		ReparseTagGlobalReparse,
		ReparseTagLxSymlink,
		ReparseTagHSM,
	}
}

// String returns the symbolic name of the tag, or its hex value when the tag
// is not in the registry.
func (t ReparseTag) String() string {
	if name, ok := TagName(t); ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(t))
}
