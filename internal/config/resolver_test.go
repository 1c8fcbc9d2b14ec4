package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fxpipe/cachemgr/internal/cache"
)

// scriptedPrompter returns canned answers in order. A nil entry means
// the user canceled that prompt.
type scriptedPrompter struct {
	answers []*string
	calls   int
}

func answer(s string) *string { return &s }

func (p *scriptedPrompter) ReadInput(string) (string, bool) {
	if p.calls >= len(p.answers) {
		return "", false
	}
	a := p.answers[p.calls]
	p.calls++
	if a == nil {
		return "", false
	}
	return *a, true
}

func TestResolveConfiguredRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_root: \"/prod/cache\"\n"), 0o644))
	_, v, err := Load(path)
	require.NoError(t, err)

	// no prompter wired: resolution must not need one
	root, err := NewResolver(v, nil).ResolveCacheRoot()
	require.NoError(t, err)
	require.Equal(t, "/prod/cache", root)
}

func TestResolvePromptsAndPersists(t *testing.T) {
	t.Setenv(EnvCacheRoot, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	_, v, err := Load(path)
	require.NoError(t, err)

	prompter := &scriptedPrompter{answers: []*string{answer(filepath.Join(dir, "caches")), answer("showA_sq010")}}
	root, err := NewResolver(v, prompter).ResolveCacheRoot()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "caches", "showA_sq010"), root)
	require.Equal(t, 2, prompter.calls)

	// pushed back to the host environment
	require.Equal(t, root, os.Getenv(EnvCacheRoot))

	// and to the config file, so a reload resolves without prompting
	cfg, _, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, root, cfg.CacheRoot)
}

func TestResolveCanceled(t *testing.T) {
	t.Setenv(EnvCacheRoot, "")
	_, v, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		answers []*string
	}{
		{"first prompt canceled", []*string{nil}},
		{"second prompt canceled", []*string{answer("/tmp/caches"), nil}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewResolver(v, &scriptedPrompter{answers: test.answers}).ResolveCacheRoot()
			require.ErrorIs(t, err, cache.ErrUnresolved)
		})
	}
}

func TestResolveNoPrompter(t *testing.T) {
	t.Setenv(EnvCacheRoot, "")
	_, v, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	_, err = NewResolver(v, nil).ResolveCacheRoot()
	require.ErrorIs(t, err, cache.ErrUnresolved)
}
