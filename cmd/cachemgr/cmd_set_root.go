package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fxpipe/cachemgr/internal/config"
)

var cmdSetRoot = &cobra.Command{
	Use:   "set-root PATH",
	Short: "Persist the cache root path",
	Long: `
The "set-root" command stores PATH as the cache root in both the $CACHEPATH
environment of this process and the config file, so later invocations skip
the interactive prompt.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSetRoot(args[0])
	},
}

func init() {
	cmdRoot.AddCommand(cmdSetRoot)
}

func RunSetRoot(root string) error {
	_, v, err := loadConfig()
	if err != nil {
		return err
	}

	resolver := config.NewResolver(v, nil)
	if err := resolver.Persist(root); err != nil {
		return err
	}

	fmt.Printf("$%s has been set to: %s\n", config.EnvCacheRoot, root)
	return nil
}
