package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdDelete = &cobra.Command{
	Use:   "delete [flags] PATH ...",
	Short: "Delete version directories from the cache",
	Long: `
The "delete" command removes the given directories, named by their path
relative to the cache root (for example "shot010/sim_fluid/v003"). Only leaf
directories can be deleted; a directory that still contains subdirectories is
refused, as is a protected leaf. Each path is processed independently, so one
refusal does not block the others.

EXIT STATUS
===========

Exit status is 0 if every deletion succeeded.
Exit status is 1 if any deletion was refused or failed.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunDelete(cmd.Context(), deleteOptions, args)
	},
}

// DeleteOptions bundles all options for the delete command.
type DeleteOptions struct {
	Workers uint
}

var deleteOptions DeleteOptions

func init() {
	cmdRoot.AddCommand(cmdDelete)

	f := cmdDelete.Flags()
	f.UintVar(&deleteOptions.Workers, "workers", 0, "scan `n` top-level directories concurrently (default: one per CPU)")
}

func RunDelete(ctx context.Context, opts DeleteOptions, ids []string) error {
	svc, err := newService(opts.Workers, "")
	if err != nil {
		return err
	}
	if err := svc.Refresh(ctx); err != nil {
		return err
	}

	failed := 0
	for _, res := range svc.DeleteSelected(ids) {
		if res.Err != nil {
			failed++
			fmt.Printf("%s: %v\n", res.ID, res.Err)
			continue
		}
		fmt.Printf("%s: deleted\n", res.ID)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d deletions failed", failed, len(ids))
	}
	return nil
}
