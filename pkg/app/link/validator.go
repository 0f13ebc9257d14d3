package link

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/deploymenttheory/go-ntfslink/pkg/app"
	"github.com/google/uuid"
)

// Validate validates a build request. requireLinkPath is set when the
// reparse point is to be written to disk.
func (r *Request) Validate(requireLinkPath bool) error {
	if requireLinkPath && r.LinkPath == "" {
		return app.NewError(app.ErrCodeInvalidInput, "link path is required", nil)
	}

	switch r.Kind {
	case app.LinkJunction, app.LinkSymlink:
		if r.Target == "" {
			return app.NewError(app.ErrCodeInvalidInput, "target is required", nil)
		}
		if r.Kind == app.LinkJunction && r.Relative {
			return app.NewError(app.ErrCodeInvalidInput, "junctions cannot be relative", nil)
		}
	case app.LinkCustom:
		if r.Tag == "" {
			return app.NewError(app.ErrCodeInvalidInput, "--tag is required for custom reparse points", nil)
		}
		if _, err := parseTag(r.Tag); err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid tag", err)
		}
		if _, err := parseGUID(r.GUID); err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid GUID", err)
		}
		if _, err := hex.DecodeString(r.Data); err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid hex data", err)
		}
	default:
		return app.NewError(app.ErrCodeInvalidInput, "unknown link kind: "+string(r.Kind), nil)
	}
	return nil
}

// parseTag accepts a registered tag name or a decimal or 0x-prefixed number
func parseTag(s string) (types.ReparseTag, error) {
	s = strings.TrimSpace(s)
	for _, tag := range types.KnownTags() {
		name, _ := types.TagName(tag)
		if strings.EqualFold(s, name) || strings.EqualFold("IO_REPARSE_TAG_"+s, name) {
			return tag, nil
		}
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return types.ReparseTag(v), nil
}

func parseGUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
