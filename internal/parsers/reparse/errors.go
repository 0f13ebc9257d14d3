package reparse

import "errors"

// Encode failures.
var (
	// ErrUnknownTag is returned when a structured payload is paired with a
	// tag that does not use that structure.
	ErrUnknownTag = errors.New("unknown reparse tag")

	// ErrMissingGUID is returned when a third-party tag is encoded without
	// the GUID its header requires.
	ErrMissingGUID = errors.New("third-party reparse tag requires a GUID")

	// ErrBufferTooLarge is returned when the encoded buffer would exceed
	// types.MaximumReparseDataBufferSize.
	ErrBufferTooLarge = errors.New("reparse buffer too large")
)

// Decode failures.
var (
	// ErrTruncatedHeader is returned when the buffer is shorter than the
	// header, or the data is shorter than the tag's fixed sub-header.
	ErrTruncatedHeader = errors.New("truncated reparse header")

	// ErrLengthMismatch is returned when the header's data length does not
	// account for exactly the bytes that follow the header.
	ErrLengthMismatch = errors.New("reparse data length mismatch")

	// ErrInvalidOffset is returned when a name offset or length reaches
	// outside of the path buffer.
	ErrInvalidOffset = errors.New("invalid reparse name offset")

	// ErrUnrecognizedTagWithSubHeader is returned by a strict Decoder for a
	// Microsoft tag whose data layout is not known. A lenient Decoder
	// returns the data as a GenericPayload instead.
	ErrUnrecognizedTagWithSubHeader = errors.New("unrecognized sub-header for Microsoft reparse tag")
)
