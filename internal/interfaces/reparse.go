// File: internal/interfaces/reparse.go
package interfaces

import (
	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
)

// ReparsePointReader provides read access to a decoded reparse point
type ReparsePointReader interface {
	// Tag returns the reparse tag
	Tag() types.ReparseTag

	// TagName returns the symbolic name of the tag, or its hex value
	TagName() string

	// IsMicrosoft reports whether the tag is owned by Microsoft
	IsMicrosoft() bool

	// IsNameSurrogate reports whether the reparse point stands in for another name
	IsNameSurrogate() bool

	// DataLength returns the header's data length
	DataLength() uint16

	// Reserved returns the header's reserved field
	Reserved() uint16

	// GUID returns the GUID of a third-party reparse point
	GUID() (uuid.UUID, bool)

	// Kind returns the name of the payload layout
	Kind() string

	// SubstituteName returns the substitute name of a junction or symbolic link
	SubstituteName() string

	// PrintName returns the print name of a junction or symbolic link
	PrintName() string

	// Flags returns the symbolic link flags
	Flags() uint32

	// IsRelative reports whether a symbolic link is relative
	IsRelative() bool

	// Data returns the path buffer of a junction or symbolic link, or the
	// opaque data of any other reparse point
	Data() []byte
}
