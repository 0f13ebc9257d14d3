package inspect

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResponse() *Response {
	return &Response{
		Source:         "hex",
		Size:           60,
		Tag:            "0xA0000003",
		TagName:        "IO_REPARSE_TAG_MOUNT_POINT",
		Microsoft:      true,
		NameSurrogate:  true,
		DataLength:     52,
		Kind:           "mount-point",
		SubstituteName: `\??\C:\target`,
		PrintName:      `C:\target`,
	}
}

func TestFormatOutput(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantErr  bool
		validate func(*testing.T, string)
	}{
		{
			name:   "table format",
			format: "table",
			validate: func(t *testing.T, output string) {
				assert.Contains(t, output, "IO_REPARSE_TAG_MOUNT_POINT")
				assert.Contains(t, output, "Substitute Name")
				assert.Contains(t, output, `C:\target`)
			},
		},
		{
			name:   "json format",
			format: "json",
			validate: func(t *testing.T, output string) {
				var decoded Response
				require.NoError(t, json.Unmarshal([]byte(output), &decoded))
				assert.Equal(t, *sampleResponse(), decoded)
			},
		},
		{
			name:   "yaml format",
			format: "yaml",
			validate: func(t *testing.T, output string) {
				var decoded map[string]interface{}
				require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
				assert.Equal(t, "mount-point", decoded["kind"])
				assert.Equal(t, 52, decoded["data_length"])
			},
		},
		{
			name:    "unknown format",
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := FormatOutput(&buf, sampleResponse(), tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, buf.String())
		})
	}
}

func TestFormatTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatTags(&buf, ListTags(), "table"))
	assert.Contains(t, buf.String(), "IO_REPARSE_TAG_SYMLINK")
	assert.Contains(t, buf.String(), "0xA000000C")

	buf.Reset()
	require.NoError(t, FormatTags(&buf, ListTags(), "json"))
	var entries []TagEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	assert.Len(t, entries, len(ListTags()))
}
