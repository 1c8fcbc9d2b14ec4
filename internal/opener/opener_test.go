package opener

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", `open "/prod/show cache"`},
		{"windows", `explorer "/prod/show cache"`},
		{"linux", `xdg-open "/prod/show cache"`},
		{"freebsd", `xdg-open "/prod/show cache"`},
	}
	for _, test := range tests {
		require.Equal(t, test.want, commandFor(test.goos, "/prod/show cache"), "goos %v", test.goos)
	}
}

func TestCommandUsesCurrentPlatform(t *testing.T) {
	require.Contains(t, Command("/prod/cache"), "/prod/cache")
}
