package resources

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/okanimoji/core"
)

// ManifestName is the conventional file name of a font manifest.
const ManifestName = "fonts.toml"

// ManifestCatalog looks up font names in a manifest, a TOML document with a
// table 'fonts' mapping names to font file paths:
//
//	[fonts]
//	noto-medium = "noto-medium.ttf"
//	osaka = "osaka.ttc"
//
// Paths are relative to the directory of the manifest.
type ManifestCatalog struct {
	fsys  fs.FS
	dir   string
	fonts *treemap.Map // normalized name -> path within fsys
}

type manifest struct {
	Fonts map[string]string `toml:"fonts"`
}

// DefaultManifestDirs are searched for a manifest if none is configured.
var DefaultManifestDirs = []string{filepath.Join("assets", "fonts"), "fonts"}

// FindManifest returns the path of the first manifest file found in dirs,
// or "" if there is none. Empty directory names are skipped.
func FindManifest(dirs ...string) string {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, ManifestName)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			tracer().Debugf("found font manifest %s", p)
			return p
		}
	}
	return ""
}

// LoadManifest reads a manifest file from the local file system.
func LoadManifest(manifestPath string) (*ManifestCatalog, error) {
	dir, file := filepath.Split(manifestPath)
	if dir == "" {
		dir = "."
	}
	return LoadManifestFS(os.DirFS(dir), file)
}

// LoadManifestFS reads a manifest from a file system, e.g., an embedded one.
func LoadManifestFS(fsys fs.FS, manifestPath string) (*ManifestCatalog, error) {
	f, err := fsys.Open(manifestPath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font manifest not found: %s", manifestPath)
	}
	defer f.Close()
	var m manifest
	if _, err = toml.NewDecoder(f).Decode(&m); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font manifest %s cannot be decoded", manifestPath)
	}
	mc := &ManifestCatalog{
		fsys:  fsys,
		dir:   path.Dir(manifestPath),
		fonts: treemap.NewWithStringComparator(),
	}
	for name, fontpath := range m.Fonts {
		mc.fonts.Put(normalized(name), fontpath)
	}
	tracer().Debugf("font manifest %s lists %d fonts", manifestPath, mc.fonts.Size())
	return mc, nil
}

// Resolve reads the font file the manifest lists for name.
func (mc *ManifestCatalog) Resolve(name string) ([]byte, error) {
	p, found := mc.fonts.Get(normalized(name))
	if !found {
		return nil, NotFound(name)
	}
	fontpath := path.Join(mc.dir, p.(string))
	tracer().Debugf("looking for font file at %s", fontpath)
	bytez, err := fs.ReadFile(mc.fsys, fontpath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING,
			"font %s is listed in manifest, but file %s cannot be read", name, fontpath)
	}
	return bytez, nil
}

// Names returns the normalized names of all fonts listed in the manifest.
func (mc *ManifestCatalog) Names() []string {
	return stringKeys(mc.fonts)
}
