package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/fxpipe/cachemgr/internal/cache"
)

// Prompter collects interactive input from the host environment. ok is
// false when the user cancels.
type Prompter interface {
	ReadInput(prompt string) (value string, ok bool)
}

// Resolver implements cache.RootResolver on top of the loaded
// configuration. When no root is configured it prompts for a base path
// and a scene base name, joins the two, and persists the result.
type Resolver struct {
	v        *viper.Viper
	prompter Prompter
}

// NewResolver returns a Resolver over the loaded viper instance.
// prompter may be nil for non-interactive use; resolution then fails
// instead of prompting.
func NewResolver(v *viper.Viper, prompter Prompter) *Resolver {
	return &Resolver{v: v, prompter: prompter}
}

var _ cache.RootResolver = (*Resolver)(nil)

// ResolveCacheRoot returns the configured cache root, prompting for one
// if necessary. It fails with cache.ErrUnresolved when the user
// cancels either prompt.
func (r *Resolver) ResolveCacheRoot() (string, error) {
	if root := r.v.GetString("cache_root"); root != "" {
		return root, nil
	}
	if r.prompter == nil {
		return "", errors.Wrap(cache.ErrUnresolved, "no cache root configured and no prompt available")
	}

	base, ok := r.prompter.ReadInput("Enter the cache path for $" + EnvCacheRoot)
	if !ok || base == "" {
		return "", errors.Wrap(cache.ErrUnresolved, "cache path prompt canceled")
	}
	name, ok := r.prompter.ReadInput("Enter the scene base name")
	if !ok {
		return "", errors.Wrap(cache.ErrUnresolved, "scene name prompt canceled")
	}

	root := filepath.Join(base, name)
	if err := r.Persist(root); err != nil {
		// The session can still proceed with the in-memory value.
		log.Warnf("could not persist cache root: %v", err)
	}
	return root, nil
}

// Persist stores root in the environment and the config file so later
// sessions pick it up without prompting.
func (r *Resolver) Persist(root string) error {
	r.v.Set("cache_root", root)
	if err := os.Setenv(EnvCacheRoot, root); err != nil {
		return errors.Wrap(err, "set "+EnvCacheRoot)
	}
	file := r.v.ConfigFileUsed()
	if file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return errors.Wrapf(err, "create config dir for %v", file)
	}
	return errors.Wrapf(r.v.WriteConfig(), "write config %v", file)
}
