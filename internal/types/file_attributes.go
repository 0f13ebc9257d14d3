package types

// File Attribute and File Open Constants
// Reference: winnt.h, winbase.h

// FileAttribute is a bit set of FILE_ATTRIBUTE_* values as returned by
// directory queries and GetFileAttributes.
type FileAttribute uint32

const (
	FileAttributeReadonly          FileAttribute = 0x00000001
	FileAttributeHidden            FileAttribute = 0x00000002
	FileAttributeSystem            FileAttribute = 0x00000004
	FileAttributeDirectory         FileAttribute = 0x00000010
	FileAttributeArchive           FileAttribute = 0x00000020
	FileAttributeDevice            FileAttribute = 0x00000040
	FileAttributeNormal            FileAttribute = 0x00000080
	FileAttributeTemporary         FileAttribute = 0x00000100
	FileAttributeSparseFile        FileAttribute = 0x00000200
	FileAttributeReparsePoint      FileAttribute = 0x00000400
	FileAttributeCompressed        FileAttribute = 0x00000800
	FileAttributeOffline           FileAttribute = 0x00001000
	FileAttributeNotContentIndexed FileAttribute = 0x00002000
	FileAttributeEncrypted         FileAttribute = 0x00004000
	FileAttributeVirtual           FileAttribute = 0x00010000

	// FileAttributeReparseDirectory is the attribute combination reported
	// for a directory junction or directory symbolic link.
	FileAttributeReparseDirectory = FileAttributeDirectory | FileAttributeReparsePoint
)

// IsReparsePoint reports whether the reparse point attribute is set.
func (a FileAttribute) IsReparsePoint() bool {
	return a&FileAttributeReparsePoint != 0
}

// IsDirectory reports whether the directory attribute is set.
func (a FileAttribute) IsDirectory() bool {
	return a&FileAttributeDirectory != 0
}

// IsReparseDirectory reports whether both the directory and reparse point
// attributes are set.
func (a FileAttribute) IsReparseDirectory() bool {
	return a&FileAttributeReparseDirectory == FileAttributeReparseDirectory
}

// NotifyChange is a FILE_NOTIFY_CHANGE_* filter for ReadDirectoryChangesW.
type NotifyChange uint32

const (
	FileNotifyChangeFileName   NotifyChange = 0x00000001
	FileNotifyChangeDirName    NotifyChange = 0x00000002
	FileNotifyChangeAttributes NotifyChange = 0x00000004
	FileNotifyChangeSize       NotifyChange = 0x00000008
	FileNotifyChangeLastWrite  NotifyChange = 0x00000010
	FileNotifyChangeLastAccess NotifyChange = 0x00000020
	FileNotifyChangeCreation   NotifyChange = 0x00000040
	FileNotifyChangeSecurity   NotifyChange = 0x00000100
)

// FileAction is a FILE_ACTION_* code reported by change notifications.
type FileAction uint32

const (
	FileActionAdded          FileAction = 0x00000001
	FileActionRemoved        FileAction = 0x00000002
	FileActionModified       FileAction = 0x00000003
	FileActionRenamedOldName FileAction = 0x00000004
	FileActionRenamedNewName FileAction = 0x00000005
)

// VolumeFlag is a bit set of file system capability flags returned by
// GetVolumeInformation.
type VolumeFlag uint32

const (
	FileCaseSensitiveSearch        VolumeFlag = 0x00000001
	FileCasePreservedNames         VolumeFlag = 0x00000002
	FileUnicodeOnDisk              VolumeFlag = 0x00000004
	FilePersistentACLs             VolumeFlag = 0x00000008
	FileFileCompression            VolumeFlag = 0x00000010
	FileVolumeQuotas               VolumeFlag = 0x00000020
	FileSupportsSparseFiles        VolumeFlag = 0x00000040
	FileSupportsReparsePoints      VolumeFlag = 0x00000080
	FileSupportsRemoteStorage      VolumeFlag = 0x00000100
	FileVolumeIsCompressed         VolumeFlag = 0x00008000
	FileSupportsObjectIDs          VolumeFlag = 0x00010000
	FileSupportsEncryption         VolumeFlag = 0x00020000
	FileNamedStreams               VolumeFlag = 0x00040000
	FileReadOnlyVolume             VolumeFlag = 0x00080000
	FileSequentialWriteOnce        VolumeFlag = 0x00100000
	FileSupportsTransactions       VolumeFlag = 0x00200000
	FileSupportsHardLinks          VolumeFlag = 0x00400000
	FileSupportsExtendedAttributes VolumeFlag = 0x00800000
	FileSupportsOpenByFileID       VolumeFlag = 0x01000000
	FileSupportsUSNJournal         VolumeFlag = 0x02000000
)

// Mailslot timeouts.
const (
	MailslotNoMessage   uint32 = 0xFFFFFFFF
	MailslotWaitForever uint32 = 0xFFFFFFFF
)

// FileFlag is a FILE_FLAG_* value passed to CreateFile.
type FileFlag uint32

const (
	FileFlagWriteThrough      FileFlag = 0x80000000
	FileFlagOverlapped        FileFlag = 0x40000000
	FileFlagNoBuffering       FileFlag = 0x20000000
	FileFlagRandomAccess      FileFlag = 0x10000000
	FileFlagSequentialScan    FileFlag = 0x08000000
	FileFlagDeleteOnClose     FileFlag = 0x04000000
	FileFlagBackupSemantics   FileFlag = 0x02000000
	FileFlagPosixSemantics    FileFlag = 0x01000000
	FileFlagOpenReparsePoint  FileFlag = 0x00200000
	FileFlagOpenNoRecall      FileFlag = 0x00100000
	FileFlagFirstPipeInstance FileFlag = 0x00080000

	// FileFlagReparseBackup opens the reparse point itself rather than its
	// target, and allows directories to be opened.
	FileFlagReparseBackup = FileFlagOpenReparsePoint | FileFlagBackupSemantics
)

// ShareMode is a FILE_SHARE_* value passed to CreateFile.
type ShareMode uint32

const (
	FileShareRead   ShareMode = 0x00000001
	FileShareWrite  ShareMode = 0x00000002
	FileShareDelete ShareMode = 0x00000004

	FileShareReadWrite = FileShareRead | FileShareWrite
	FileShareAll       = FileShareRead | FileShareWrite | FileShareDelete
)

// CreationDisposition selects what CreateFile does when the file exists or
// does not exist.
type CreationDisposition uint32

const (
	CreateNew        CreationDisposition = 1
	CreateAlways     CreationDisposition = 2
	OpenExisting     CreationDisposition = 3
	OpenAlways       CreationDisposition = 4
	TruncateExisting CreationDisposition = 5
)

// IsReparseAttribute reports whether a raw attribute value from a directory
// query marks a reparse point.
func IsReparseAttribute(attrs uint32) bool {
	return FileAttribute(attrs).IsReparsePoint()
}
