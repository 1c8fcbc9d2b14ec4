package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/fxpipe/cachemgr/internal/cache"
)

// versionString accepts the version field as either a JSON string or a
// number, normalized to its decimal text.
type versionString string

func (v *versionString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = versionString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = versionString(n.String())
	return nil
}

// fileReferenceSource reads active references from a JSON file. It
// stands in for the host scene-graph query when running from the
// command line: pipelines export the currently referenced
// {identifier, version} pairs and hand the file to cachemgr.
type fileReferenceSource struct {
	path string
}

func (s fileReferenceSource) ActiveReferences(_ context.Context) ([]cache.Reference, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read references %v", s.path)
	}

	var raw []struct {
		Identifier string        `json:"identifier"`
		Version    versionString `json:"version"`
	}
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, errors.Wrapf(err, "parse references %v", s.path)
	}

	refs := make([]cache.Reference, 0, len(raw))
	for _, r := range raw {
		refs = append(refs, cache.Reference{Identifier: r.Identifier, Version: string(r.Version)})
	}
	return refs, nil
}
