package link

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/deploymenttheory/go-ntfslink/internal/services"
	"github.com/deploymenttheory/go-ntfslink/internal/types"
	"github.com/deploymenttheory/go-ntfslink/pkg/app"
)

// Build encodes the reparse data buffer described by req without touching
// the file system
func Build(ctx *app.Context, svc *services.LinkService, req *Request) (*Result, error) {
	if err := req.Validate(false); err != nil {
		return nil, err
	}

	buffer, err := build(svc, req)
	if err != nil {
		return nil, app.DeviceError("failed to build reparse buffer", err)
	}
	ctx.Log(fmt.Sprintf("Encoded %d byte %s buffer", len(buffer), req.Kind))
	return newResult(req, buffer), nil
}

// Create encodes the reparse point described by req and stores it on
// req.LinkPath
func Create(ctx *app.Context, svc *services.LinkService, req *Request) (*Result, error) {
	if err := req.Validate(true); err != nil {
		return nil, err
	}

	buffer, err := build(svc, req)
	if err != nil {
		return nil, app.DeviceError("failed to build reparse buffer", err)
	}
	result := newResult(req, buffer)
	if err := Store(ctx, svc, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Store writes a buffer returned by Build to the result's link path
func Store(ctx *app.Context, svc *services.LinkService, result *Result) error {
	if result == nil || len(result.raw) == 0 {
		return app.NewError(app.ErrCodeInvalidInput, "no reparse buffer to store", nil)
	}
	if result.LinkPath == "" {
		return app.NewError(app.ErrCodeInvalidInput, "link path is required", nil)
	}

	devCtx, cancel := ctx.WithDefaultTimeout()
	defer cancel()

	ctx.Log(fmt.Sprintf("Creating %s %s -> %s", result.Kind, result.LinkPath, result.Target))
	if err := svc.SetReparseBuffer(devCtx, result.LinkPath, result.raw); err != nil {
		return app.DeviceError("failed to create reparse point", err)
	}
	return nil
}

// ReadTarget returns the target of the junction or symbolic link on path
func ReadTarget(ctx *app.Context, svc *services.LinkService, path string) (string, error) {
	devCtx, cancel := ctx.WithDefaultTimeout()
	defer cancel()

	target, err := svc.ReadLinkTarget(devCtx, path)
	if err != nil {
		return "", app.DeviceError("failed to read link", err)
	}
	return target, nil
}

// Remove deletes the reparse point on path, leaving the file or directory
// itself in place
func Remove(ctx *app.Context, svc *services.LinkService, path string) error {
	devCtx, cancel := ctx.WithDefaultTimeout()
	defer cancel()

	ctx.Log(fmt.Sprintf("Removing reparse point from %s", path))
	if err := svc.DeleteReparsePoint(devCtx, path); err != nil {
		return app.DeviceError("failed to remove reparse point", err)
	}
	return nil
}

func build(svc *services.LinkService, req *Request) ([]byte, error) {
	switch req.Kind {
	case app.LinkJunction:
		return svc.BuildJunction(req.Target)
	case app.LinkSymlink:
		return svc.BuildSymbolicLink(req.Target, req.Relative)
	}
	tag, err := parseTag(req.Tag)
	if err != nil {
		return nil, err
	}
	guid, err := parseGUID(req.GUID)
	if err != nil {
		return nil, err
	}
	data, err := hex.DecodeString(req.Data)
	if err != nil {
		return nil, err
	}
	return svc.BuildCustom(tag, data, guid)
}

func newResult(req *Request, buffer []byte) *Result {
	tag := types.ReparseTag(binary.LittleEndian.Uint32(buffer[0:4]))
	return &Result{
		Kind:     req.Kind,
		LinkPath: req.LinkPath,
		Target:   req.Target,
		Tag:      tag.String(),
		Size:     len(buffer),
		Buffer:   hex.EncodeToString(buffer),
		raw:      buffer,
	}
}
