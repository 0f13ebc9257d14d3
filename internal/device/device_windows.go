//go:build windows

package device

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"golang.org/x/sys/windows"
)

// windowsController issues FSCTL reparse point codes with DeviceIoControl
type windowsController struct{}

func newPlatformController() interfaces.DeviceController {
	return windowsController{}
}

// openReparsePoint opens path itself, not its target, so that directories
// and existing reparse points can be addressed
func openReparsePoint(path string, access types.AccessMask) (windows.Handle, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return windows.InvalidHandle, fmt.Errorf("invalid path %q: %w", path, err)
	}
	h, err := windows.CreateFile(name,
		uint32(access),
		uint32(types.FileShareAll),
		nil,
		uint32(types.OpenExisting),
		uint32(types.FileFlagReparseBackup),
		0)
	if err != nil {
		return windows.InvalidHandle, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return h, nil
}

func (windowsController) GetReparsePoint(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, err := openReparsePoint(path, types.GenericRead)
	if err != nil {
		return nil, err
	}
	defer windows.CloseHandle(h)

	buf := make([]byte, types.MaximumReparseDataBufferSize)
	var returned uint32
	if err := windows.DeviceIoControl(h, types.FsctlGetReparsePoint,
		nil, 0, &buf[0], uint32(len(buf)), &returned, nil); err != nil {
		return nil, fmt.Errorf("FSCTL_GET_REPARSE_POINT on %s: %w", path, err)
	}
	return buf[:returned], nil
}

func (windowsController) SetReparsePoint(ctx context.Context, path string, buffer []byte) error {
	return control(ctx, path, types.FsctlSetReparsePoint, "FSCTL_SET_REPARSE_POINT", buffer)
}

func (windowsController) DeleteReparsePoint(ctx context.Context, path string, buffer []byte) error {
	return control(ctx, path, types.FsctlDeleteReparsePoint, "FSCTL_DELETE_REPARSE_POINT", buffer)
}

// control issues an input-only control code against path
func control(ctx context.Context, path string, code uint32, name string, buffer []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(buffer) == 0 {
		return fmt.Errorf("%s on %s: empty buffer", name, path)
	}
	h, err := openReparsePoint(path, types.GenericWrite)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	var returned uint32
	if err := windows.DeviceIoControl(h, code,
		&buffer[0], uint32(len(buffer)), nil, 0, &returned, nil); err != nil {
		return fmt.Errorf("%s on %s: %w", name, path, err)
	}
	return nil
}

// processCapabilities reads privileges from the process token
type processCapabilities struct{}

func newProcessCapabilities() interfaces.CapabilityChecker {
	return processCapabilities{}
}

// HasCapability reports whether the privilege backing name is present and
// enabled in the process token
func (processCapabilities) HasCapability(name types.CapabilityName) bool {
	privilege, ok := types.PrivilegeForCapability(name)
	if !ok {
		return false
	}
	enabled, err := privilegeEnabled(privilege)
	return err == nil && enabled
}

func privilegeEnabled(privilege types.PrivilegeName) (bool, error) {
	privName, err := windows.UTF16PtrFromString(string(privilege))
	if err != nil {
		return false, err
	}
	var luid windows.LUID
	if err := windows.LookupPrivilegeValue(nil, privName, &luid); err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", privilege, err)
	}

	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), uint32(types.TokenQuery), &token); err != nil {
		return false, fmt.Errorf("failed to open process token: %w", err)
	}
	defer token.Close()

	// First call sizes the buffer
	var size uint32
	_ = windows.GetTokenInformation(token, windows.TokenPrivileges, nil, 0, &size)
	if size == 0 {
		return false, fmt.Errorf("failed to size token privileges")
	}
	buf := make([]byte, size)
	if err := windows.GetTokenInformation(token, windows.TokenPrivileges, &buf[0], size, &size); err != nil {
		return false, fmt.Errorf("failed to read token privileges: %w", err)
	}

	privileges := (*windows.Tokenprivileges)(unsafe.Pointer(&buf[0]))
	for _, p := range privileges.AllPrivileges() {
		if p.Luid == luid {
			return p.Attributes&uint32(types.SePrivilegeEnabled) != 0, nil
		}
	}
	return false, nil
}
