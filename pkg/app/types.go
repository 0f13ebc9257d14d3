package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-ntfslink/internal/device"
	"github.com/deploymenttheory/go-ntfslink/internal/parsers/reparse"
	"github.com/deploymenttheory/go-ntfslink/internal/services"
)

// LinkKind selects the kind of reparse point a command creates
type LinkKind string

const (
	LinkJunction LinkKind = "junction"
	LinkSymlink  LinkKind = "symlink"
	LinkCustom   LinkKind = "custom"
)

// ParseLinkKind parses a link kind, accepting a few common aliases
func ParseLinkKind(s string) (LinkKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junction", "mountpoint", "mount-point":
		return LinkJunction, nil
	case "symlink", "symbolic-link", "symboliclink":
		return LinkSymlink, nil
	case "custom", "generic":
		return LinkCustom, nil
	}
	return "", fmt.Errorf("unknown link kind %q (expected junction, symlink or custom)", s)
}

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeEncode       = "ENCODE_FAILED"
	ErrCodeDecode       = "DECODE_FAILED"
	ErrCodeDevice       = "DEVICE_ACCESS"
	ErrCodePermission   = "PERMISSION_DENIED"
	ErrCodeUnsupported  = "UNSUPPORTED_PLATFORM"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCode returns the code of the first CommonError in err's chain
func ErrorCode(err error) string {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// DeviceError classifies an error returned by a device or link service call
func DeviceError(message string, err error) error {
	switch {
	case errors.Is(err, device.ErrUnsupportedPlatform):
		return NewError(ErrCodeUnsupported, message, err)
	case errors.Is(err, services.ErrInsufficientPrivilege):
		return NewError(ErrCodePermission, message, err)
	case errors.Is(err, services.ErrInvalidTarget):
		return NewError(ErrCodeInvalidInput, message, err)
	case isDecodeError(err):
		return NewError(ErrCodeDecode, message, err)
	case isEncodeError(err):
		return NewError(ErrCodeEncode, message, err)
	}
	return NewError(ErrCodeDevice, message, err)
}

func isEncodeError(err error) bool {
	return errors.Is(err, reparse.ErrUnknownTag) ||
		errors.Is(err, reparse.ErrMissingGUID) ||
		errors.Is(err, reparse.ErrBufferTooLarge)
}

func isDecodeError(err error) bool {
	return errors.Is(err, reparse.ErrTruncatedHeader) ||
		errors.Is(err, reparse.ErrLengthMismatch) ||
		errors.Is(err, reparse.ErrInvalidOffset) ||
		errors.Is(err, reparse.ErrUnrecognizedTagWithSubHeader)
}
