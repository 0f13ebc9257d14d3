package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileAttributes(t *testing.T) {
	junction := FileAttributeDirectory | FileAttributeReparsePoint | FileAttributeArchive

	assert.True(t, junction.IsReparsePoint())
	assert.True(t, junction.IsDirectory())
	assert.True(t, junction.IsReparseDirectory())

	plainDir := FileAttributeDirectory
	assert.False(t, plainDir.IsReparsePoint())
	assert.False(t, plainDir.IsReparseDirectory())

	fileLink := FileAttributeReparsePoint
	assert.False(t, fileLink.IsReparseDirectory())

	assert.True(t, IsReparseAttribute(0x410))
	assert.False(t, IsReparseAttribute(0x10))
}

func TestCombinedFlags(t *testing.T) {
	assert.Equal(t, FileFlag(0x02200000), FileFlagReparseBackup)
	assert.Equal(t, ShareMode(0x3), FileShareReadWrite)
	assert.Equal(t, ShareMode(0x7), FileShareAll)
	assert.Equal(t, FileAttribute(0x410), FileAttributeReparseDirectory)
}

func TestAccessRights(t *testing.T) {
	assert.Equal(t, AccessMask(0x000F01FF), TokenAllAccess)
	assert.Equal(t, AccessMask(0x000F00FF), TokenAllAccessP)
	assert.Equal(t, PrivilegeAttribute(0x80000007), SePrivilegeValidAttributes)
}

func TestPrivilegeForCapability(t *testing.T) {
	privilege, ok := PrivilegeForCapability(CapabilityCreateSymlink)
	assert.True(t, ok)
	assert.Equal(t, SeCreateSymbolicLinkName, privilege)

	_, ok = PrivilegeForCapability("fly")
	assert.False(t, ok)
}
