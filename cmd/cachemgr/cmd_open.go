package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fxpipe/cachemgr/internal/config"
	"github.com/fxpipe/cachemgr/internal/opener"
)

var cmdOpen = &cobra.Command{
	Use:   "open",
	Short: "Print the command that opens the cache root in the file manager",
	Long: `
The "open" command resolves the cache root and prints the platform's
file-manager invocation for it. The command is printed, not executed, so the
host environment stays in charge of running it:

    $(cachemgr open)
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunOpen()
	},
}

func init() {
	cmdRoot.AddCommand(cmdOpen)
}

func RunOpen() error {
	_, v, err := loadConfig()
	if err != nil {
		return err
	}

	resolver := config.NewResolver(v, terminalPrompter{})
	root, err := resolver.ResolveCacheRoot()
	if err != nil {
		return err
	}

	fmt.Println(opener.Command(root))
	return nil
}
