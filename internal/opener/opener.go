// Package opener constructs the platform file-manager invocation for a
// directory. It only builds the command string; running it is the host
// environment's job.
package opener

import (
	"fmt"
	"runtime"
)

// Command returns the shell command that opens dir in the default file
// manager of the current platform.
func Command(dir string) string {
	return commandFor(runtime.GOOS, dir)
}

func commandFor(goos, dir string) string {
	switch goos {
	case "darwin":
		return fmt.Sprintf("open %q", dir)
	case "windows":
		return fmt.Sprintf("explorer %q", dir)
	default:
		return fmt.Sprintf("xdg-open %q", dir)
	}
}
