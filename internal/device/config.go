package device

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Capability sources.
const (
	CapabilitySourceOS     = "os"
	CapabilitySourceStatic = "static"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds ntfslink configuration
type Config struct {
	StrictDecode        bool     `mapstructure:"strict_decode"`
	GrantedCapabilities []string `mapstructure:"granted_capabilities"`
	CapabilitySource    string   `mapstructure:"capability_source"`
	OutputFormat        string   `mapstructure:"output_format"`
}

// LoadConfig loads configuration from the default search paths using Viper
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom loads configuration from configFile, or from the default
// search paths when configFile is empty
func LoadConfigFrom(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ntfslink-config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.ntfslink")
		v.AddConfigPath("/etc/ntfslink")
	}

	// Set defaults
	v.SetDefault("strict_decode", false)
	v.SetDefault("granted_capabilities", []string{})
	v.SetDefault("capability_source", CapabilitySourceOS)
	v.SetDefault("output_format", OutputTable)

	// Allow environment variables
	v.SetEnvPrefix("NTFSLINK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file in the search paths is fine; an explicit one must exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate normalizes enumerated values and rejects unknown ones
func (c *Config) Validate() error {
	c.CapabilitySource = strings.ToLower(strings.TrimSpace(c.CapabilitySource))
	switch c.CapabilitySource {
	case CapabilitySourceOS, CapabilitySourceStatic:
	default:
		return fmt.Errorf("%w: capability_source %q must be %q or %q",
			ErrInvalidConfig, c.CapabilitySource, CapabilitySourceOS, CapabilitySourceStatic)
	}

	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	switch c.OutputFormat {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output_format %q must be one of table, json, yaml",
			ErrInvalidConfig, c.OutputFormat)
	}
	return nil
}
