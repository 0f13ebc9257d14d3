package reparse

import (
	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
)

// reparsePointReader implements the ReparsePointReader interface
type reparsePointReader struct {
	point *ReparsePoint
}

// NewReparsePointReader decodes data with a lenient Decoder and returns a
// reader over the result.
func NewReparsePointReader(data []byte) (interfaces.ReparsePointReader, error) {
	return Decoder{}.NewReader(data)
}

// NewReader decodes data and returns a reader over the result.
func (d Decoder) NewReader(data []byte) (interfaces.ReparsePointReader, error) {
	rp, err := d.Decode(data)
	if err != nil {
		return nil, err
	}
	return &reparsePointReader{point: rp}, nil
}

// Tag returns the reparse tag
func (r *reparsePointReader) Tag() types.ReparseTag {
	return r.point.Tag()
}

// TagName returns the symbolic name of the tag, or its hex value
func (r *reparsePointReader) TagName() string {
	return r.point.Tag().String()
}

// IsMicrosoft reports whether the tag is owned by Microsoft
func (r *reparsePointReader) IsMicrosoft() bool {
	return IsMicrosoftTag(r.point.Tag())
}

// IsNameSurrogate reports whether the reparse point stands in for another name
func (r *reparsePointReader) IsNameSurrogate() bool {
	return IsNameSurrogate(r.point.Tag())
}

// DataLength returns the header's data length
func (r *reparsePointReader) DataLength() uint16 {
	return r.point.DataLength()
}

// Reserved returns the header's reserved field
func (r *reparsePointReader) Reserved() uint16 {
	return r.point.Header.Common().Reserved
}

// GUID returns the GUID of a third-party reparse point
func (r *reparsePointReader) GUID() (uuid.UUID, bool) {
	return r.point.GUID()
}

// Kind returns the name of the payload layout
func (r *reparsePointReader) Kind() string {
	return r.point.Payload.Kind().String()
}

// SubstituteName returns the substitute name of a junction or symbolic link
func (r *reparsePointReader) SubstituteName() string {
	switch p := r.point.Payload.(type) {
	case MountPointPayload:
		return p.SubstituteName()
	case SymbolicLinkPayload:
		return p.SubstituteName()
	}
	return ""
}

// PrintName returns the print name of a junction or symbolic link
func (r *reparsePointReader) PrintName() string {
	switch p := r.point.Payload.(type) {
	case MountPointPayload:
		return p.PrintName()
	case SymbolicLinkPayload:
		return p.PrintName()
	}
	return ""
}

// Flags returns the symbolic link flags
func (r *reparsePointReader) Flags() uint32 {
	if p, ok := r.point.Payload.(SymbolicLinkPayload); ok {
		return p.Flags
	}
	return 0
}

// IsRelative reports whether a symbolic link is relative
func (r *reparsePointReader) IsRelative() bool {
	if p, ok := r.point.Payload.(SymbolicLinkPayload); ok {
		return p.IsRelative()
	}
	return false
}

// Data returns the path buffer of a junction or symbolic link, or the opaque
// data of any other reparse point
func (r *reparsePointReader) Data() []byte {
	switch p := r.point.Payload.(type) {
	case MountPointPayload:
		return p.Bytes()
	case SymbolicLinkPayload:
		return p.Bytes()
	case GenericPayload:
		out := make([]byte, len(p.Data))
		copy(out, p.Data)
		return out
	}
	return nil
}
