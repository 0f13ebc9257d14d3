package types

// Device I/O Control Codes
// Reference: winioctl.h, devioctl.h

// DeviceType is a FILE_DEVICE_* value, the high word of a control code.
type DeviceType uint32

const (
	FileDeviceBeep              DeviceType = 0x00000001
	FileDeviceCDROM             DeviceType = 0x00000002
	FileDeviceCDROMFileSystem   DeviceType = 0x00000003
	FileDeviceController        DeviceType = 0x00000004
	FileDeviceDatalink          DeviceType = 0x00000005
	FileDeviceDFS               DeviceType = 0x00000006
	FileDeviceDisk              DeviceType = 0x00000007
	FileDeviceDiskFileSystem    DeviceType = 0x00000008
	FileDeviceFileSystem        DeviceType = 0x00000009
	FileDeviceInportPort        DeviceType = 0x0000000a
	FileDeviceKeyboard          DeviceType = 0x0000000b
	FileDeviceMailslot          DeviceType = 0x0000000c
	FileDeviceMidiIn            DeviceType = 0x0000000d
	FileDeviceMidiOut           DeviceType = 0x0000000e
	FileDeviceMouse             DeviceType = 0x0000000f
	FileDeviceMultiUNCProvider  DeviceType = 0x00000010
	FileDeviceNamedPipe         DeviceType = 0x00000011
	FileDeviceNetwork           DeviceType = 0x00000012
	FileDeviceNetworkBrowser    DeviceType = 0x00000013
	FileDeviceNetworkFileSystem DeviceType = 0x00000014
	FileDeviceNull              DeviceType = 0x00000015
	FileDeviceParallelPort      DeviceType = 0x00000016
	FileDevicePhysicalNetcard   DeviceType = 0x00000017
	FileDevicePrinter           DeviceType = 0x00000018
	FileDeviceScanner           DeviceType = 0x00000019
	FileDeviceSerialMousePort   DeviceType = 0x0000001a
	FileDeviceSerialPort        DeviceType = 0x0000001b
	FileDeviceScreen            DeviceType = 0x0000001c
	FileDeviceSound             DeviceType = 0x0000001d
	FileDeviceStreams           DeviceType = 0x0000001e
	FileDeviceTape              DeviceType = 0x0000001f
	FileDeviceTapeFileSystem    DeviceType = 0x00000020
	FileDeviceTransport         DeviceType = 0x00000021
	FileDeviceUnknown           DeviceType = 0x00000022
	FileDeviceVideo             DeviceType = 0x00000023
	FileDeviceVirtualDisk       DeviceType = 0x00000024
	FileDeviceWaveIn            DeviceType = 0x00000025
	FileDeviceWaveOut           DeviceType = 0x00000026
	FileDevice8042Port          DeviceType = 0x00000027
	FileDeviceNetworkRedirector DeviceType = 0x00000028
	FileDeviceBattery           DeviceType = 0x00000029
	FileDeviceBusExtender       DeviceType = 0x0000002a
	FileDeviceModem             DeviceType = 0x0000002b
	FileDeviceVDM               DeviceType = 0x0000002c
	FileDeviceMassStorage       DeviceType = 0x0000002d
	FileDeviceSMB               DeviceType = 0x0000002e
	FileDeviceKS                DeviceType = 0x0000002f
	FileDeviceChanger           DeviceType = 0x00000030
	FileDeviceSmartcard         DeviceType = 0x00000031
	FileDeviceACPI              DeviceType = 0x00000032
	FileDeviceDVD               DeviceType = 0x00000033
	FileDeviceFullscreenVideo   DeviceType = 0x00000034
	FileDeviceDFSFileSystem     DeviceType = 0x00000035
	FileDeviceDFSVolume         DeviceType = 0x00000036
	FileDeviceSerenum           DeviceType = 0x00000037
	FileDeviceTermsrv           DeviceType = 0x00000038
	FileDeviceKSEC              DeviceType = 0x00000039
	FileDeviceFIPS              DeviceType = 0x0000003A
	FileDeviceInfiniband        DeviceType = 0x0000003B
	FileDeviceVMBus             DeviceType = 0x0000003E
	FileDeviceCryptProvider     DeviceType = 0x0000003F
	FileDeviceWPD               DeviceType = 0x00000040
	FileDeviceBluetooth         DeviceType = 0x00000041
	FileDeviceMTComposite       DeviceType = 0x00000042
	FileDeviceMTTransport       DeviceType = 0x00000043
	FileDeviceBiometric         DeviceType = 0x00000044
	FileDevicePMI               DeviceType = 0x00000045
)

// TransferMethod is the METHOD_* buffering mode of a control code.
type TransferMethod uint32

const (
	MethodBuffered  TransferMethod = 0
	MethodInDirect  TransferMethod = 1
	MethodOutDirect TransferMethod = 2
	MethodNeither   TransferMethod = 3

	MethodDirectToHardware   = MethodInDirect
	MethodDirectFromHardware = MethodOutDirect
)

// RequiredAccess is the FILE_*_ACCESS requirement of a control code.
type RequiredAccess uint32

const (
	FileAnyAccess     RequiredAccess = 0
	FileSpecialAccess                = FileAnyAccess
	FileReadAccess    RequiredAccess = 0x0001
	FileWriteAccess   RequiredAccess = 0x0002
)

// CtlCode assembles a device I/O control code the way the CTL_CODE macro
// does.
func CtlCode(deviceType DeviceType, function uint32, method TransferMethod, access RequiredAccess) uint32 {
	return uint32(deviceType)<<16 | uint32(access)<<14 | function<<2 | uint32(method)
}

// DeviceTypeFromCtlCode extracts the device type of a control code.
func DeviceTypeFromCtlCode(code uint32) DeviceType {
	return DeviceType((code & 0xffff0000) >> 16)
}

// MethodFromCtlCode extracts the transfer method of a control code.
func MethodFromCtlCode(code uint32) TransferMethod {
	return TransferMethod(code & 3)
}

// FunctionFromCtlCode extracts the function number of a control code.
func FunctionFromCtlCode(code uint32) uint32 {
	return (code >> 2) & 0xfff
}

// AccessFromCtlCode extracts the required access of a control code.
func AccessFromCtlCode(code uint32) RequiredAccess {
	return RequiredAccess((code >> 14) & 3)
}

// File system control codes for reparse points. The values equal
// CtlCode(FileDeviceFileSystem, 41..43, MethodBuffered, FileSpecialAccess /
// FileAnyAccess).
const (
	FsctlSetReparsePoint    uint32 = uint32(FileDeviceFileSystem)<<16 | uint32(FileSpecialAccess)<<14 | 41<<2 | uint32(MethodBuffered)
	FsctlGetReparsePoint    uint32 = uint32(FileDeviceFileSystem)<<16 | uint32(FileAnyAccess)<<14 | 42<<2 | uint32(MethodBuffered)
	FsctlDeleteReparsePoint uint32 = uint32(FileDeviceFileSystem)<<16 | uint32(FileSpecialAccess)<<14 | 43<<2 | uint32(MethodBuffered)
)
