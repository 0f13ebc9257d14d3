package link

import "github.com/deploymenttheory/go-ntfslink/pkg/app"

// Request represents a request to build or create a reparse point
type Request struct {
	Kind app.LinkKind

	// LinkPath is the file or directory receiving the reparse point. It is
	// not needed to only build a buffer.
	LinkPath string

	// Target of a junction or symbolic link
	Target   string
	Relative bool

	// Tag, GUID and Data describe a custom reparse point
	Tag  string
	GUID string
	Data string
}

// Result describes a created or built reparse point
type Result struct {
	Kind     app.LinkKind `json:"kind" yaml:"kind"`
	LinkPath string       `json:"link_path,omitempty" yaml:"link_path,omitempty"`
	Target   string       `json:"target,omitempty" yaml:"target,omitempty"`
	Tag      string       `json:"tag" yaml:"tag"`
	Size     int          `json:"size" yaml:"size"`
	Buffer   string       `json:"buffer" yaml:"buffer"`

	raw []byte
}
