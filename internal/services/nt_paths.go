package services

import (
	"strings"

	"github.com/deploymenttheory/go-ntfslink/internal/types"
)

const (
	win32FilePrefix = `\\?\`
	uncPrefix       = `\\`
	ntUNCPrefix     = types.NTPathPrefix + `UNC\`
)

// NTPath converts an absolute Win32 path into the object manager form used
// as the substitute name of junctions and absolute symbolic links.
//
//	C:\dir            -> \??\C:\dir
//	\\?\C:\dir        -> \??\C:\dir
//	\\server\share    -> \??\UNC\server\share
func NTPath(path string) string {
	path = strings.ReplaceAll(path, "/", `\`)
	switch {
	case strings.HasPrefix(path, types.NTPathPrefix):
		return path
	case strings.HasPrefix(path, win32FilePrefix):
		return types.NTPathPrefix + path[len(win32FilePrefix):]
	case strings.HasPrefix(path, uncPrefix):
		return ntUNCPrefix + path[len(uncPrefix):]
	}
	return types.NTPathPrefix + path
}

// DOSPath is the inverse of NTPath. Paths without an NT prefix are returned
// unchanged.
func DOSPath(path string) string {
	switch {
	case strings.HasPrefix(path, ntUNCPrefix):
		return uncPrefix + path[len(ntUNCPrefix):]
	case strings.HasPrefix(path, types.NTPathPrefix):
		return path[len(types.NTPathPrefix):]
	}
	return path
}

// IsAbsoluteWindowsPath reports whether path is fully qualified: a drive
// letter followed by a separator, a UNC path, or an NT path.
func IsAbsoluteWindowsPath(path string) bool {
	path = strings.ReplaceAll(path, "/", `\`)
	if strings.HasPrefix(path, uncPrefix) || strings.HasPrefix(path, types.NTPathPrefix) {
		return true
	}
	if len(path) < 3 || path[1] != ':' || path[2] != '\\' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}
