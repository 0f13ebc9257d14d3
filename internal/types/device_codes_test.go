package types

import "testing"

func TestCtlCode(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"FSCTL_SET_REPARSE_POINT", FsctlSetReparsePoint, 0x000900A4},
		{"FSCTL_GET_REPARSE_POINT", FsctlGetReparsePoint, 0x000900A8},
		{"FSCTL_DELETE_REPARSE_POINT", FsctlDeleteReparsePoint, 0x000900AC},
		{"CtlCode set", CtlCode(FileDeviceFileSystem, 41, MethodBuffered, FileSpecialAccess), 0x000900A4},
		{"CtlCode get", CtlCode(FileDeviceFileSystem, 42, MethodBuffered, FileAnyAccess), 0x000900A8},
		{"IOCTL_DISK_GET_DRIVE_GEOMETRY", CtlCode(FileDeviceDisk, 0, MethodBuffered, FileAnyAccess), 0x00070000},
		{"read access", CtlCode(FileDeviceMassStorage, 0x0200, MethodBuffered, FileReadAccess), 0x002D4800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got 0x%08X, want 0x%08X", tt.got, tt.want)
			}
		})
	}
}

func TestCtlCodeFields(t *testing.T) {
	code := CtlCode(FileDeviceNamedPipe, 0x123, MethodNeither, FileWriteAccess)

	if got := DeviceTypeFromCtlCode(code); got != FileDeviceNamedPipe {
		t.Errorf("DeviceTypeFromCtlCode = 0x%X, want 0x%X", got, FileDeviceNamedPipe)
	}
	if got := FunctionFromCtlCode(code); got != 0x123 {
		t.Errorf("FunctionFromCtlCode = 0x%X, want 0x123", got)
	}
	if got := MethodFromCtlCode(code); got != MethodNeither {
		t.Errorf("MethodFromCtlCode = %d, want %d", got, MethodNeither)
	}
	if got := AccessFromCtlCode(code); got != FileWriteAccess {
		t.Errorf("AccessFromCtlCode = %d, want %d", got, FileWriteAccess)
	}
}
