package services

import (
	"errors"
	"sync"

	"github.com/deploymenttheory/go-ntfslink/internal/device"
	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/services"
)

// ErrFactoryClosed is returned by a factory after Shutdown
var ErrFactoryClosed = errors.New("service factory has been shut down")

// ServiceFactory provides a centralized way to create and share the link
// service and its collaborators
type ServiceFactory struct {
	config      *device.Config
	device      interfaces.DeviceController
	checker     interfaces.CapabilityChecker
	linkService *services.LinkService
	mu          sync.Mutex
	initialized bool
	closed      bool
}

// NewServiceFactory creates a new service factory instance. A nil config
// uses the defaults.
func NewServiceFactory(config *device.Config) *ServiceFactory {
	if config == nil {
		config = &device.Config{
			CapabilitySource: device.CapabilitySourceOS,
			OutputFormat:     device.OutputTable,
		}
	}
	return &ServiceFactory{config: config}
}

// WithDeviceController overrides the platform device controller. It must be
// called before the first service is requested.
func (sf *ServiceFactory) WithDeviceController(dev interfaces.DeviceController) *ServiceFactory {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.device = dev
	return sf
}

// WithCapabilityChecker overrides the configured capability checker. It must
// be called before the first service is requested.
func (sf *ServiceFactory) WithCapabilityChecker(checker interfaces.CapabilityChecker) *ServiceFactory {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.checker = checker
	return sf
}

// Initialize initializes all services with their dependencies
func (sf *ServiceFactory) Initialize() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.initializeLocked()
}

func (sf *ServiceFactory) initializeLocked() error {
	if sf.closed {
		return ErrFactoryClosed
	}
	if sf.initialized {
		return nil
	}

	if sf.device == nil {
		sf.device = device.NewDeviceController()
	}
	if sf.checker == nil {
		sf.checker = device.NewCapabilityChecker(sf.config)
	}

	linkService, err := services.NewLinkService(sf.device, sf.checker, sf.config.StrictDecode)
	if err != nil {
		return err
	}
	sf.linkService = linkService

	sf.initialized = true
	return nil
}

// LinkService returns the link service instance
func (sf *ServiceFactory) LinkService() (*services.LinkService, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.initializeLocked(); err != nil {
		return nil, err
	}
	return sf.linkService, nil
}

// DeviceController returns the device controller the services use
func (sf *ServiceFactory) DeviceController() (interfaces.DeviceController, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.initializeLocked(); err != nil {
		return nil, err
	}
	return sf.device, nil
}

// CapabilityChecker returns the capability checker the services use
func (sf *ServiceFactory) CapabilityChecker() (interfaces.CapabilityChecker, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.initializeLocked(); err != nil {
		return nil, err
	}
	return sf.checker, nil
}

// Config returns the configuration the factory was created with
func (sf *ServiceFactory) Config() *device.Config {
	return sf.config
}

// Shutdown releases all services. The factory cannot be reused afterwards.
func (sf *ServiceFactory) Shutdown() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.linkService = nil
	sf.device = nil
	sf.checker = nil
	sf.initialized = false
	sf.closed = true
	return nil
}

// IsInitialized returns whether the factory has been initialized
func (sf *ServiceFactory) IsInitialized() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.initialized
}
