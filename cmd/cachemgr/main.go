package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fxpipe/cachemgr/internal/config"
)

var version = "0.3.0"

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "cachemgr",
	Short: "Browse and prune pipeline cache directories",
	Long: `
cachemgr scans a version-structured cache directory (context/element/version),
annotates each version with its size, date, comment and protection flag, and
deletes version directories that are no longer needed. Only leaf directories
can be deleted.

The cache root comes from the $CACHEPATH environment variable or the config
file; when neither is set you are prompted for it once.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(0)
	},
}

// GlobalOptions are flags shared by all subcommands.
type GlobalOptions struct {
	ConfigFile string
}

var globalOptions GlobalOptions

func init() {
	f := cmdRoot.PersistentFlags()
	f.StringVar(&globalOptions.ConfigFile, "config", "", "config file (default: user config dir)")
}

// loadConfig reads the config file, applies the log level and returns
// the config together with the viper instance backing it.
func loadConfig() (*config.Config, *viper.Viper, error) {
	path := globalOptions.ConfigFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, v, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	return cfg, v, nil
}

// terminalPrompter collects interactive input from stdin. Empty input
// and EOF both count as canceling.
type terminalPrompter struct{}

var stdin = bufio.NewReader(os.Stdin)

func (terminalPrompter) ReadInput(prompt string) (string, bool) {
	fmt.Printf("%s: ", prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	return line, true
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
