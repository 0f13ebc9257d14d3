package reparse

import (
	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/google/uuid"
)

// ReparsePoint is a decoded reparse data buffer.
type ReparsePoint struct {
	Header  Header
	Payload Payload
}

// Tag returns the reparse tag.
func (rp *ReparsePoint) Tag() types.ReparseTag {
	return rp.Header.Common().Tag
}

// DataLength returns the data length read from the header.
func (rp *ReparsePoint) DataLength() uint16 {
	return rp.Header.Common().DataLength
}

// GUID returns the GUID of a third-party reparse point.
func (rp *ReparsePoint) GUID() (uuid.UUID, bool) {
	if h, ok := rp.Header.(GUIDHeader); ok {
		return h.GUID, true
	}
	return uuid.Nil, false
}
