package inspect

// Request represents a reparse point inspection request. Exactly one of
// Path, File and Hex selects the buffer.
type Request struct {
	// Path is a file or directory whose reparse point is read from the device
	Path string
	// File holds a raw reparse data buffer
	File string
	// Hex is a raw reparse data buffer in hexadecimal
	Hex string

	Strict bool
}

// Response represents a decoded reparse point
type Response struct {
	Source         string `json:"source" yaml:"source"`
	Size           int    `json:"size" yaml:"size"`
	Tag            string `json:"tag" yaml:"tag"`
	TagName        string `json:"tag_name" yaml:"tag_name"`
	Microsoft      bool   `json:"microsoft" yaml:"microsoft"`
	NameSurrogate  bool   `json:"name_surrogate" yaml:"name_surrogate"`
	HighLatency    bool   `json:"high_latency" yaml:"high_latency"`
	DataLength     uint16 `json:"data_length" yaml:"data_length"`
	Reserved       uint16 `json:"reserved" yaml:"reserved"`
	GUID           string `json:"guid,omitempty" yaml:"guid,omitempty"`
	Kind           string `json:"kind" yaml:"kind"`
	SubstituteName string `json:"substitute_name,omitempty" yaml:"substitute_name,omitempty"`
	PrintName      string `json:"print_name,omitempty" yaml:"print_name,omitempty"`
	Flags          uint32 `json:"flags,omitempty" yaml:"flags,omitempty"`
	Relative       bool   `json:"relative,omitempty" yaml:"relative,omitempty"`
	Data           string `json:"data,omitempty" yaml:"data,omitempty"`
}

// TagEntry describes one registered reparse tag
type TagEntry struct {
	Value         string `json:"value" yaml:"value"`
	Name          string `json:"name" yaml:"name"`
	Microsoft     bool   `json:"microsoft" yaml:"microsoft"`
	NameSurrogate bool   `json:"name_surrogate" yaml:"name_surrogate"`
	HighLatency   bool   `json:"high_latency" yaml:"high_latency"`
}
