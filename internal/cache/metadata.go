package cache

import (
	"encoding/json"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/fxpipe/cachemgr/internal/fs"
)

// MetadataFile is the fixed name of the per-leaf sidecar file.
const MetadataFile = "cacheinfo.json"

// Metadata is the sidecar read model. The flag is stored as 0/1 in the
// file; absence of the file or of individual keys yields the zero
// value.
type Metadata struct {
	Comment string `json:"comment"`
	Protect int    `json:"cache_protect"`
}

// ReadMetadata reads the sidecar file inside dir. Metadata is advisory:
// a missing or unparseable file yields the defaults ("", false) and
// never an error, so tree construction cannot fail on it.
func ReadMetadata(filesys fs.FS, dir string) (comment string, protected bool) {
	buf, err := filesys.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return "", false
	}

	var meta Metadata
	if err := json.Unmarshal(buf, &meta); err != nil {
		log.Debugf("unreadable sidecar in %v: %v", dir, err)
		return "", false
	}
	return meta.Comment, meta.Protect == 1
}
