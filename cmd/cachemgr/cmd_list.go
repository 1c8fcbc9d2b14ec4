package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fxpipe/cachemgr/internal/cache"
	"github.com/fxpipe/cachemgr/internal/config"
	"github.com/fxpipe/cachemgr/internal/fs"
)

var cmdList = &cobra.Command{
	Use:   "list [flags]",
	Short: "Scan the cache root and print the tree",
	Long: `
The "list" command rebuilds the cache tree from disk and prints one row per
directory: name, comment, size and date. Leaves referenced by the scene
(--refs) are marked with '*', protected leaves with a lock marker.
`,
}

// ListOptions bundles all options for the list command.
type ListOptions struct {
	Workers  uint
	RefsFile string
}

var listOptions ListOptions

func init() {
	cmdList.RunE = func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.Context(), listOptions)
	}
	cmdRoot.AddCommand(cmdList)

	f := cmdList.Flags()
	f.UintVar(&listOptions.Workers, "workers", 0, "scan `n` top-level directories concurrently (default: one per CPU)")
	f.StringVar(&listOptions.RefsFile, "refs", "", "JSON file with active {identifier, version} references")
}

func RunList(ctx context.Context, opts ListOptions) error {
	svc, err := newService(opts.Workers, opts.RefsFile)
	if err != nil {
		return err
	}
	if err := svc.Refresh(ctx); err != nil {
		return err
	}

	fmt.Printf("Target: %s\n", svc.Root())
	if free, total, err := svc.DiskUsage(); err == nil {
		fmt.Printf("Disk: %s free of %s\n",
			cache.FormatSize(int64(free)), cache.FormatSize(int64(total)))
	} else {
		log.Debugf("disk usage unavailable: %v", err)
	}
	fmt.Println()

	w := tabwriter.NewWriter(cmdList.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tcomment\tsize\tdate")
	for _, row := range svc.Rows() {
		name := strings.Repeat("  ", row.Depth) + row.Name
		if row.InUse {
			name += " *"
		}
		if row.Protected {
			name += " [protected]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, row.Comment, row.Size, row.Date)
	}
	return w.Flush()
}

// newService wires a cache service from the loaded config and the real
// collaborators: the OS filesystem, a stdin prompter and an optional
// file-backed reference source.
func newService(workers uint, refsFile string) (*cache.Service, error) {
	cfg, v, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if workers == 0 {
		workers = cfg.Workers
	}

	var refs cache.ReferenceSource
	if refsFile != "" {
		refs = fileReferenceSource{path: refsFile}
	}

	resolver := config.NewResolver(v, terminalPrompter{})
	return cache.NewService(fs.Local{}, resolver, refs, workers), nil
}
