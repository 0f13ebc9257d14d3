package inspect

import (
	"encoding/hex"
	"strings"

	"github.com/deploymenttheory/go-ntfslink/pkg/app"
)

// Validate validates an inspection request
func (r *Request) Validate() error {
	sources := 0
	for _, s := range []string{r.Path, r.File, r.Hex} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return app.NewError(app.ErrCodeInvalidInput, "a path, --file or --hex is required", nil)
	}
	if sources > 1 {
		return app.NewError(app.ErrCodeInvalidInput, "only one of path, --file and --hex may be given", nil)
	}

	if r.Hex != "" {
		if _, err := decodeHex(r.Hex); err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid hex buffer", err)
		}
	}
	return nil
}

// decodeHex accepts hexadecimal with optional whitespace, colons and a 0x
// prefix
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.NewReplacer(" ", "", "\n", "", "\t", "", ":", "").Replace(s)
	return hex.DecodeString(s)
}
