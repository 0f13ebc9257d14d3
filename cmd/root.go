package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/deploymenttheory/go-ntfslink/internal/device"
	"github.com/deploymenttheory/go-ntfslink/pkg/app"
	"github.com/deploymenttheory/go-ntfslink/pkg/services"
	"github.com/spf13/cobra"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string
	configFile   string

	// Loaded before any subcommand runs
	cfg *device.Config
)

var rootCmd = &cobra.Command{
	Use:   "ntfslink",
	Short: "Create, inspect and remove NTFS reparse points",
	Long: `ntfslink builds and parses NTFS reparse data buffers and applies them
to files and directories through the file system control interface.

Commands:
  tags        List the registered reparse tags
  encode      Build a reparse data buffer without touching the disk
  decode      Decode a reparse data buffer from a file, hex string or path
  link        Create a junction, symbolic link or custom reparse point
  readlink    Print the target of a junction or symbolic link
  unlink      Remove a reparse point, keeping the file or directory
  capability  Show which privileged operations are available`,
	Version:      "0.1.0-dev",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default searches ./ntfslink-config.yaml, $HOME/.ntfslink, /etc/ntfslink)")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// loadConfig reads the configuration and lets explicit flags override it
func loadConfig(cmd *cobra.Command) error {
	loaded, err := device.LoadConfigFrom(configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		loaded.OutputFormat = outputFormat
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	if loaded.CapabilitySource == device.CapabilitySourceStatic && len(loaded.GrantedCapabilities) == 0 && !quiet {
		log.Printf("Warning: capability_source is static but granted_capabilities is empty")
	}
	cfg = loaded
	return nil
}

// newAppContext builds the application context for a command run
func newAppContext(cmd *cobra.Command) *app.Context {
	ctx := app.NewContext()
	if cmd.Context() != nil {
		ctx.Context = cmd.Context()
	}
	ctx.OutputFormat = cfg.OutputFormat
	ctx.StrictDecode = cfg.StrictDecode
	ctx.Verbose = verbose
	ctx.Quiet = quiet
	ctx.Stdout = cmd.OutOrStdout()
	ctx.Stderr = cmd.ErrOrStderr()
	return ctx
}

// newServiceFactory wires the platform device controller and the configured
// capability checker
func newServiceFactory() *services.ServiceFactory {
	return services.NewServiceFactory(cfg)
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quiet
}

// GetOutputFormat returns the effective output format
func GetOutputFormat() string {
	if cfg != nil {
		return cfg.OutputFormat
	}
	return outputFormat
}
