package services

import (
	"context"
	"testing"

	"github.com/deploymenttheory/go-ntfslink/internal/device"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
)

type recordingDevice struct {
	set map[string][]byte
}

func (d *recordingDevice) GetReparsePoint(ctx context.Context, path string) ([]byte, error) {
	return d.set[path], nil
}

func (d *recordingDevice) SetReparsePoint(ctx context.Context, path string, buffer []byte) error {
	d.set[path] = buffer
	return nil
}

func (d *recordingDevice) DeleteReparsePoint(ctx context.Context, path string, buffer []byte) error {
	delete(d.set, path)
	return nil
}

func TestServiceFactory(t *testing.T) {
	dev := &recordingDevice{set: make(map[string][]byte)}
	factory := NewServiceFactory(&device.Config{
		CapabilitySource:    device.CapabilitySourceStatic,
		GrantedCapabilities: []string{"create-symlink"},
	}).WithDeviceController(dev)

	if err := factory.Initialize(); err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if !factory.IsInitialized() {
		t.Error("Factory should be initialized")
	}

	linkSvc, err := factory.LinkService()
	if err != nil {
		t.Fatalf("Failed to get link service: %v", err)
	}
	again, _ := factory.LinkService()
	if linkSvc != again {
		t.Error("LinkService should return the same instance")
	}

	checker, err := factory.CapabilityChecker()
	if err != nil {
		t.Fatalf("Failed to get capability checker: %v", err)
	}
	if !checker.HasCapability(types.CapabilityCreateSymlink) {
		t.Error("static checker should grant create-symlink")
	}

	if err := linkSvc.CreateSymbolicLink(context.Background(), `C:\l`, `C:\t`, false); err != nil {
		t.Fatalf("CreateSymbolicLink failed: %v", err)
	}
	if len(dev.set[`C:\l`]) == 0 {
		t.Error("device should have received a buffer")
	}

	if err := factory.Shutdown(); err != nil {
		t.Fatalf("Failed to shutdown services: %v", err)
	}
	if factory.IsInitialized() {
		t.Error("Factory should not be initialized after shutdown")
	}
	if _, err := factory.LinkService(); err != ErrFactoryClosed {
		t.Errorf("Expected ErrFactoryClosed, got: %v", err)
	}
}

func TestServiceFactory_DefaultConfig(t *testing.T) {
	factory := NewServiceFactory(nil)
	if factory.Config().CapabilitySource != device.CapabilitySourceOS {
		t.Errorf("Expected default capability source %q, got %q", device.CapabilitySourceOS, factory.Config().CapabilitySource)
	}

	dev, err := factory.DeviceController()
	if err != nil {
		t.Fatalf("Failed to get device controller: %v", err)
	}
	if dev == nil {
		t.Error("Device controller should not be nil")
	}
}
