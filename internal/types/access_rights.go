package types

// Access Rights, Token Rights and Privileges
// Reference: winnt.h

// AccessMask is an ACCESS_MASK value.
type AccessMask uint32

// Generic access rights.
const (
	GenericRead    AccessMask = 0x80000000
	GenericWrite   AccessMask = 0x40000000
	GenericExecute AccessMask = 0x20000000
	GenericAll     AccessMask = 0x10000000
)

// File specific access rights. Several names share a value because the same
// bit means different things for files, directories and pipes.
const (
	FileReadData           AccessMask = 0x0001
	FileListDirectory      AccessMask = 0x0001
	FileWriteData          AccessMask = 0x0002
	FileAddFile            AccessMask = 0x0002
	FileAppendData         AccessMask = 0x0004
	FileAddSubdirectory    AccessMask = 0x0004
	FileCreatePipeInstance AccessMask = 0x0004
	FileReadEA             AccessMask = 0x0008
	FileWriteEA            AccessMask = 0x0010
	FileExecute            AccessMask = 0x0020
	FileTraverse           AccessMask = 0x0020
	FileDeleteChild        AccessMask = 0x0040
	FileReadAttributes     AccessMask = 0x0080
	FileWriteAttributes    AccessMask = 0x0100
)

// Standard access rights.
const (
	Delete      AccessMask = 0x00010000
	ReadControl AccessMask = 0x00020000
	WriteDAC    AccessMask = 0x00040000
	WriteOwner  AccessMask = 0x00080000
	Synchronize AccessMask = 0x00100000

	StandardRightsRequired AccessMask = 0x000F0000
	StandardRightsRead                = ReadControl
	StandardRightsWrite               = ReadControl
	StandardRightsExecute             = ReadControl
	StandardRightsAll      AccessMask = 0x001F0000
	SpecificRightsAll      AccessMask = 0x0000FFFF

	AccessSystemSecurity AccessMask = 0x01000000
	MaximumAllowed       AccessMask = 0x02000000
)

// Token access rights.
const (
	TokenAssignPrimary    AccessMask = 0x0001
	TokenDuplicate        AccessMask = 0x0002
	TokenImpersonate      AccessMask = 0x0004
	TokenQuery            AccessMask = 0x0008
	TokenQuerySource      AccessMask = 0x0010
	TokenAdjustPrivileges AccessMask = 0x0020
	TokenAdjustGroups     AccessMask = 0x0040
	TokenAdjustDefault    AccessMask = 0x0080
	TokenAdjustSessionID  AccessMask = 0x0100

	TokenAllAccessP = StandardRightsRequired | TokenAssignPrimary | TokenDuplicate |
		TokenImpersonate | TokenQuery | TokenQuerySource | TokenAdjustPrivileges |
		TokenAdjustGroups | TokenAdjustDefault
	TokenAllAccess = TokenAllAccessP | TokenAdjustSessionID
)

// PrivilegeAttribute is an SE_PRIVILEGE_* attribute of a token privilege.
type PrivilegeAttribute uint32

const (
	SePrivilegeEnabledByDefault PrivilegeAttribute = 0x00000001
	SePrivilegeEnabled          PrivilegeAttribute = 0x00000002
	SePrivilegeRemoved          PrivilegeAttribute = 0x00000004
	SePrivilegeUsedForAccess    PrivilegeAttribute = 0x80000000

	SePrivilegeValidAttributes = SePrivilegeEnabledByDefault | SePrivilegeEnabled |
		SePrivilegeRemoved | SePrivilegeUsedForAccess
)

// PrivilegeSetAllNecessary is the PRIVILEGE_SET control flag requiring every
// listed privilege.
const PrivilegeSetAllNecessary = 1

// PrivilegeName is the system name of a privilege, as accepted by
// LookupPrivilegeValue.
type PrivilegeName string

const (
	SeRestoreName            PrivilegeName = "SeRestorePrivilege"
	SeBackupName             PrivilegeName = "SeBackupPrivilege"
	SeCreateSymbolicLinkName PrivilegeName = "SeCreateSymbolicLinkPrivilege"
	SeManageVolumeName       PrivilegeName = "SeManageVolumePrivilege"
	SeLoadDriverName         PrivilegeName = "SeLoadDriverPrivilege"
)

// CapabilityName is the portable name of an operation-level permission. Each
// capability is backed by exactly one privilege on Windows.
type CapabilityName string

const (
	// CapabilityCreateSymlink is required to create symbolic links.
	CapabilityCreateSymlink CapabilityName = "create-symlink"

	// CapabilityBackup allows reading files regardless of their ACLs.
	CapabilityBackup CapabilityName = "backup"

	// CapabilityRestore allows writing files regardless of their ACLs.
	CapabilityRestore CapabilityName = "restore"

	// CapabilityManageVolume allows volume maintenance tasks.
	CapabilityManageVolume CapabilityName = "manage-volume"

	// CapabilityLoadDriver allows loading device drivers.
	CapabilityLoadDriver CapabilityName = "load-driver"
)

// PrivilegeForCapability returns the privilege backing a capability.
func PrivilegeForCapability(name CapabilityName) (PrivilegeName, bool) {
	switch name {
	case CapabilityCreateSymlink:
		return SeCreateSymbolicLinkName, true
	case CapabilityBackup:
		return SeBackupName, true
	case CapabilityRestore:
		return SeRestoreName, true
	case CapabilityManageVolume:
		return SeManageVolumeName, true
	case CapabilityLoadDriver:
		return SeLoadDriverName, true
	}
	return "", false
}
