package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/deploymenttheory/go-ntfslink/pkg/app"
	"github.com/deploymenttheory/go-ntfslink/pkg/app/link"
	"github.com/spf13/cobra"
)

var (
	linkNoCreate bool
	linkDir      bool
)

var linkCmd = &cobra.Command{
	Use:   "link <junction|symlink|custom> <link-path> [target]",
	Short: "Create a junction, symbolic link or custom reparse point",
	Long: `Create a reparse point on link-path. The buffer is built and checked
first; then the file or directory is created unless --no-create is given.
Junctions and --dir symbolic links get a directory, everything else an empty
file. A path created here is removed again if storing the reparse point fails.

Symbolic links need the create-symlink capability.

Examples:
  ntfslink link junction C:\link C:\target
  ntfslink link symlink C:\logs ..\var\logs --relative --dir
  ntfslink link custom C:\file --tag 0x00001234 --guid 6f1d2c3b-4a59-4e7d-8c1b-2a3f4e5d6c7b --data cafe`,

	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLink(cmd, args)
	},
}

var readlinkCmd = &cobra.Command{
	Use:   "readlink <path>",
	Short: "Print the target of a junction or symbolic link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := newAppContext(cmd)
		factory := newServiceFactory()
		defer factory.Shutdown()

		svc, err := factory.LinkService()
		if err != nil {
			return err
		}
		target, err := link.ReadTarget(ctx, svc, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Stdout, target)
		return nil
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink <path>",
	Short: "Remove a reparse point, keeping the file or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := newAppContext(cmd)
		factory := newServiceFactory()
		defer factory.Shutdown()

		svc, err := factory.LinkService()
		if err != nil {
			return err
		}
		if err := link.Remove(ctx, svc, args[0]); err != nil {
			return err
		}
		ctx.Info(fmt.Sprintf("Removed reparse point from %s", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd, readlinkCmd, unlinkCmd)

	addLinkFlags(linkCmd)
	linkCmd.Flags().BoolVar(&linkNoCreate, "no-create", false, "require link-path to exist already")
	linkCmd.Flags().BoolVar(&linkDir, "dir", false, "create a directory for a symbolic or custom link")
}

func runLink(cmd *cobra.Command, args []string) error {
	ctx := newAppContext(cmd)

	req, err := newLinkRequest(args[0], args[1], args[2:])
	if err != nil {
		return err
	}
	if err := req.Validate(true); err != nil {
		return err
	}

	factory := newServiceFactory()
	defer factory.Shutdown()

	svc, err := factory.LinkService()
	if err != nil {
		return err
	}

	// Build first: a missing capability or a bad target must fail before
	// anything is created on disk.
	result, err := link.Build(ctx, svc, req)
	if err != nil {
		return err
	}

	created := false
	if !linkNoCreate {
		created, err = ensureLinkPath(ctx, req.LinkPath, req.Kind == app.LinkJunction || linkDir)
		if err != nil {
			return err
		}
	}

	if err := link.Store(ctx, svc, result); err != nil {
		if created {
			if rmErr := os.Remove(req.LinkPath); rmErr != nil {
				log.Printf("Warning: failed to remove %s: %v", req.LinkPath, rmErr)
			}
		}
		return err
	}
	if ctx.Quiet {
		return nil
	}
	return link.FormatResult(ctx.Stdout, result, ctx.OutputFormat)
}

// ensureLinkPath creates the file or directory that will carry the reparse
// point and reports whether it did. An existing path is left alone.
func ensureLinkPath(ctx *app.Context, path string, dir bool) (bool, error) {
	if info, err := os.Lstat(path); err == nil {
		if dir && !info.IsDir() {
			log.Printf("Warning: %s exists and is not a directory", path)
		}
		return false, nil
	}

	ctx.Log(fmt.Sprintf("Creating %s", path))
	if dir {
		if err := os.Mkdir(path, 0o755); err != nil {
			return false, err
		}
		return true, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	return true, f.Close()
}
