package reparse

import (
	"fmt"
	"math"

	"golang.org/x/text/encoding/unicode"
)

// wideEncoding converts between Go strings and the UTF-16LE names stored in
// a path buffer. Byte order marks are passed through as ordinary characters.
var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func encodeWide(s string) ([]byte, error) {
	return wideEncoding.NewEncoder().Bytes([]byte(s))
}

func decodeWide(b []byte) (string, error) {
	out, err := wideEncoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PathBuffer is the shared name storage of mount point and symbolic link
// data. The offsets and lengths are kept exactly as encoded, so a buffer read
// from disk with unusual ordering or overlapping names is written back
// unchanged.
type PathBuffer struct {
	substituteNameOffset uint16
	substituteNameLength uint16
	printNameOffset      uint16
	printNameLength      uint16
	data                 []byte

	substituteName string
	printName      string
}

// NewPathBuffer packs the substitute name followed immediately by the print
// name, without terminators or padding.
func NewPathBuffer(substituteName, printName string) (PathBuffer, error) {
	substitute, err := encodeWide(substituteName)
	if err != nil {
		return PathBuffer{}, fmt.Errorf("failed to encode substitute name: %w", err)
	}
	printed, err := encodeWide(printName)
	if err != nil {
		return PathBuffer{}, fmt.Errorf("failed to encode print name: %w", err)
	}

	total := len(substitute) + len(printed)
	if total > math.MaxUint16 {
		return PathBuffer{}, fmt.Errorf("%w: path buffer of %d bytes exceeds %d",
			ErrBufferTooLarge, total, math.MaxUint16)
	}

	data := make([]byte, 0, total)
	data = append(data, substitute...)
	data = append(data, printed...)

	return PathBuffer{
		substituteNameOffset: 0,
		substituteNameLength: uint16(len(substitute)),
		printNameOffset:      uint16(len(substitute)),
		printNameLength:      uint16(len(printed)),
		data:                 data,
		substituteName:       substituteName,
		printName:            printName,
	}, nil
}

// NewPathBufferFromLayout builds a PathBuffer from raw path buffer bytes and
// the four offset and length fields that describe it. data is copied.
func NewPathBufferFromLayout(data []byte, substituteNameOffset, substituteNameLength, printNameOffset, printNameLength uint16) (PathBuffer, error) {
	if len(data) > math.MaxUint16 {
		return PathBuffer{}, fmt.Errorf("%w: path buffer of %d bytes exceeds %d",
			ErrBufferTooLarge, len(data), math.MaxUint16)
	}
	if substituteNameLength%2 != 0 || printNameLength%2 != 0 {
		return PathBuffer{}, fmt.Errorf("%w: name lengths %d and %d must be whole UTF-16 code units",
			ErrInvalidOffset, substituteNameLength, printNameLength)
	}
	if end := int(substituteNameOffset) + int(substituteNameLength); end > len(data) {
		return PathBuffer{}, fmt.Errorf("%w: substitute name [%d:%d] exceeds path buffer of %d bytes",
			ErrInvalidOffset, substituteNameOffset, end, len(data))
	}
	if end := int(printNameOffset) + int(printNameLength); end > len(data) {
		return PathBuffer{}, fmt.Errorf("%w: print name [%d:%d] exceeds path buffer of %d bytes",
			ErrInvalidOffset, printNameOffset, end, len(data))
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	substituteName, err := decodeWide(owned[substituteNameOffset : substituteNameOffset+substituteNameLength])
	if err != nil {
		return PathBuffer{}, fmt.Errorf("failed to decode substitute name: %w", err)
	}
	printName, err := decodeWide(owned[printNameOffset : printNameOffset+printNameLength])
	if err != nil {
		return PathBuffer{}, fmt.Errorf("failed to decode print name: %w", err)
	}

	return PathBuffer{
		substituteNameOffset: substituteNameOffset,
		substituteNameLength: substituteNameLength,
		printNameOffset:      printNameOffset,
		printNameLength:      printNameLength,
		data:                 owned,
		substituteName:       substituteName,
		printName:            printName,
	}, nil
}

// SubstituteName returns the name the file system resolves the link to.
// Unpaired surrogates in a decoded name read back as U+FFFD; Bytes keeps the
// stored code units.
func (p PathBuffer) SubstituteName() string {
	return p.substituteName
}

// PrintName returns the name intended for display. Unpaired surrogates read
// back as U+FFFD, as for SubstituteName.
func (p PathBuffer) PrintName() string {
	return p.printName
}

// SubstituteNameOffset returns the byte offset of the substitute name.
func (p PathBuffer) SubstituteNameOffset() uint16 {
	return p.substituteNameOffset
}

// SubstituteNameLength returns the byte length of the substitute name.
func (p PathBuffer) SubstituteNameLength() uint16 {
	return p.substituteNameLength
}

// PrintNameOffset returns the byte offset of the print name.
func (p PathBuffer) PrintNameOffset() uint16 {
	return p.printNameOffset
}

// PrintNameLength returns the byte length of the print name.
func (p PathBuffer) PrintNameLength() uint16 {
	return p.printNameLength
}

// Bytes returns a copy of the raw path buffer.
func (p PathBuffer) Bytes() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

// Len returns the size of the path buffer in bytes.
func (p PathBuffer) Len() int {
	return len(p.data)
}
