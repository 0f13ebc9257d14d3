package inspect

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/deploymenttheory/go-ntfslink/internal/interfaces"
	"github.com/deploymenttheory/go-ntfslink/internal/parsers/reparse"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/deploymenttheory/go-ntfslink/pkg/app"
)

// Handle reads and decodes the reparse data buffer selected by req. dev is
// only used when req.Path is set.
func Handle(ctx *app.Context, req *Request, dev interfaces.DeviceController) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, source, err := readBuffer(ctx, req, dev)
	if err != nil {
		return nil, err
	}
	ctx.Log(fmt.Sprintf("Read %d bytes from %s", len(raw), source))

	reader, err := reparse.Decoder{Strict: req.Strict}.NewReader(raw)
	if err != nil {
		return nil, app.NewError(app.ErrCodeDecode, "failed to decode reparse buffer", err)
	}

	resp := &Response{
		Source:         source,
		Size:           len(raw),
		Tag:            fmt.Sprintf("0x%08X", uint32(reader.Tag())),
		TagName:        reader.TagName(),
		Microsoft:      reader.IsMicrosoft(),
		NameSurrogate:  reader.IsNameSurrogate(),
		HighLatency:    reparse.IsHighLatency(reader.Tag()),
		DataLength:     reader.DataLength(),
		Reserved:       reader.Reserved(),
		Kind:           reader.Kind(),
		SubstituteName: reader.SubstituteName(),
		PrintName:      reader.PrintName(),
		Flags:          reader.Flags(),
		Relative:       reader.IsRelative(),
	}
	if id, ok := reader.GUID(); ok {
		resp.GUID = id.String()
	}
	if reader.Kind() == reparse.PayloadGeneric.String() {
		resp.Data = hex.EncodeToString(reader.Data())
	}

	ctx.Log(fmt.Sprintf("Decoded %s reparse point (%s)", resp.TagName, resp.Kind))
	return resp, nil
}

func readBuffer(ctx *app.Context, req *Request, dev interfaces.DeviceController) ([]byte, string, error) {
	switch {
	case req.Hex != "":
		raw, err := decodeHex(req.Hex)
		if err != nil {
			return nil, "", app.NewError(app.ErrCodeInvalidInput, "invalid hex buffer", err)
		}
		return raw, "hex", nil

	case req.File != "":
		raw, err := os.ReadFile(req.File)
		if err != nil {
			return nil, "", app.NewError(app.ErrCodeInvalidInput, "failed to read buffer file", err)
		}
		return raw, req.File, nil
	}

	if dev == nil {
		return nil, "", app.NewError(app.ErrCodeDevice, "no device controller available", nil)
	}
	devCtx, cancel := ctx.WithDefaultTimeout()
	defer cancel()

	raw, err := dev.GetReparsePoint(devCtx, req.Path)
	if err != nil {
		return nil, "", app.DeviceError("failed to read reparse point", err)
	}
	return raw, req.Path, nil
}

// ListTags returns the tag registry in ascending order
func ListTags() []TagEntry {
	known := types.KnownTags()
	entries := make([]TagEntry, 0, len(known))
	for _, tag := range known {
		name, _ := types.TagName(tag)
		entries = append(entries, TagEntry{
			Value:         fmt.Sprintf("0x%08X", uint32(tag)),
			Name:          name,
			Microsoft:     reparse.IsMicrosoftTag(tag),
			NameSurrogate: reparse.IsNameSurrogate(tag),
			HighLatency:   reparse.IsHighLatency(tag),
		})
	}
	return entries
}
