package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNTPath(t *testing.T) {
	tests := []struct {
		in, nt, dos string
	}{
		{`C:\dir`, `\??\C:\dir`, `C:\dir`},
		{`C:/dir/sub`, `\??\C:\dir\sub`, `C:\dir\sub`},
		{`\\?\C:\dir`, `\??\C:\dir`, `C:\dir`},
		{`\??\C:\dir`, `\??\C:\dir`, `C:\dir`},
		{`\\server\share`, `\??\UNC\server\share`, `\\server\share`},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			nt := NTPath(tc.in)
			assert.Equal(t, tc.nt, nt)
			assert.Equal(t, tc.dos, DOSPath(nt))
		})
	}
}

func TestDOSPath_Unprefixed(t *testing.T) {
	assert.Equal(t, `relative\dir`, DOSPath(`relative\dir`))
	assert.Equal(t, `\\?\C:\dir`, DOSPath(`\\?\C:\dir`))
}

func TestIsAbsoluteWindowsPath(t *testing.T) {
	assert.True(t, IsAbsoluteWindowsPath(`C:\`))
	assert.True(t, IsAbsoluteWindowsPath(`z:/x`))
	assert.True(t, IsAbsoluteWindowsPath(`\\server\share`))
	assert.True(t, IsAbsoluteWindowsPath(`\??\C:\x`))
	assert.False(t, IsAbsoluteWindowsPath(`C:relative`))
	assert.False(t, IsAbsoluteWindowsPath(`relative\path`))
	assert.False(t, IsAbsoluteWindowsPath(`\rooted`))
	assert.False(t, IsAbsoluteWindowsPath(`1:\x`))
	assert.False(t, IsAbsoluteWindowsPath(""))
}
