package cmd

import (
	"github.com/deploymenttheory/go-ntfslink/pkg/app/inspect"
	"github.com/spf13/cobra"
)

var (
	decodeFile   string
	decodeHex    string
	decodeStrict bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [path]",
	Short: "Decode a reparse data buffer",
	Long: `Decode a reparse data buffer read from a file or directory, from a file
holding a raw buffer, or from a hex string.

Examples:
  # Decode the reparse point of a junction
  ntfslink decode C:\Users\me\link

  # Decode a saved buffer
  ntfslink decode --file junction.bin -o yaml

  # Decode a hex buffer with strict tag checking
  ntfslink decode --hex 0c0000a0... --strict`,

	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "file holding a raw reparse data buffer")
	decodeCmd.Flags().StringVar(&decodeHex, "hex", "", "reparse data buffer as a hex string")
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false, "reject Microsoft tags with unknown data layouts")

	decodeCmd.MarkFlagsMutuallyExclusive("file", "hex")
}

func runDecode(cmd *cobra.Command, args []string) error {
	ctx := newAppContext(cmd)

	req := &inspect.Request{
		File:   decodeFile,
		Hex:    decodeHex,
		Strict: decodeStrict || ctx.StrictDecode,
	}
	if len(args) == 1 {
		req.Path = args[0]
	}

	factory := newServiceFactory()
	defer factory.Shutdown()

	dev, err := factory.DeviceController()
	if err != nil {
		return err
	}

	resp, err := inspect.Handle(ctx, req, dev)
	if err != nil {
		return err
	}
	return inspect.FormatOutput(ctx.Stdout, resp, ctx.OutputFormat)
}
