package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dnv-opensource/vista-sdk-go/vis"
	"github.com/dnv-opensource/vista-sdk-go/vis/internal/loader"
)

// fileSource reads reference-data payloads from a directory of files
// named "<kind>-<version>.json" (spec §6: "the loader's only contract
// is that given a version tag and a kind tag it returns the
// corresponding record" — a flat directory is the simplest thing that
// satisfies that contract for a standalone CLI).
type fileSource struct {
	dir string
}

func newFileSource(dir string) *fileSource {
	return &fileSource{dir: dir}
}

func (s *fileSource) Fetch(version vis.Version, kind loader.Kind) ([]byte, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", kind, version))
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, nil
}
