package resources

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/okanimoji/core"
)

// SystemCatalog searches for fonts installed on the system, in the current
// directory and in the platform specific user and system font directories.
type SystemCatalog struct{}

var systemSuffixes = []string{".ttf", ".otf", ".ttc"}

// Resolve looks for a font file named like the font. findfont tries exact
// file names first and falls back to substring matching; we accept only
// files whose normalized stem equals the normalized name.
func (SystemCatalog) Resolve(name string) ([]byte, error) {
	key := normalized(name)
	if key == "" {
		return nil, NotFound(name)
	}
	for _, suffix := range systemSuffixes {
		fpath, err := findfont.Find(key + suffix)
		if err != nil || fpath == "" {
			continue
		}
		if normalized(filepath.Base(fpath)) != key {
			tracer().Debugf("system font %s does not match %s exactly", fpath, name)
			continue
		}
		tracer().Debugf("%s is a system font at %s", name, fpath)
		bytez, err := os.ReadFile(fpath)
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "cannot read system font %s", fpath)
		}
		return bytez, nil
	}
	return nil, NotFound(name)
}

// Names lists the normalized names of all font files installed on the system.
func (SystemCatalog) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, fpath := range findfont.List() {
		n := normalized(fpath)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
