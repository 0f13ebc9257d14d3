package link

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-ntfslink/pkg/app"
)

func TestFormatResult(t *testing.T) {
	result := &Result{
		Kind:     app.LinkJunction,
		LinkPath: `C:\link`,
		Target:   `C:\target`,
		Tag:      "IO_REPARSE_TAG_MOUNT_POINT",
		Size:     60,
		Buffer:   "030000a0",
	}

	var buf bytes.Buffer
	require.NoError(t, FormatResult(&buf, result, "table"))
	assert.Contains(t, buf.String(), `C:\link`)
	assert.Contains(t, buf.String(), "IO_REPARSE_TAG_MOUNT_POINT")

	buf.Reset()
	require.NoError(t, FormatResult(&buf, result, "yaml"))
	var decoded Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *result, decoded)

	assert.Error(t, FormatResult(&buf, result, "csv"))
}
