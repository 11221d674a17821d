package resources

import (
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/okanimoji/core"
)

// DirCatalog finds fonts in a directory tree by matching the stem of font
// files (*.ttf, *.otf, *.ttc) against font names.
//
// The directory is scanned once, at the first request.
type DirCatalog struct {
	fsys  fs.FS
	root  string
	scan  sync.Once
	index *treemap.Map // normalized name -> path within fsys
}

// NewDirCatalog creates a catalog for a font directory.
func NewDirCatalog(dir string) *DirCatalog {
	return NewDirCatalogFS(os.DirFS(dir), ".")
}

// NewDirCatalogFS creates a catalog for a directory within a file system,
// e.g., an embedded one.
func NewDirCatalogFS(fsys fs.FS, root string) *DirCatalog {
	return &DirCatalog{
		fsys:  fsys,
		root:  root,
		index: treemap.NewWithStringComparator(),
	}
}

func isFontFile(fname string) bool {
	switch strings.ToLower(path.Ext(fname)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}

func (dc *DirCatalog) buildIndex() {
	err := fs.WalkDir(dc.fsys, dc.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			tracer().Infof("skipping %s: %v", p, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isFontFile(d.Name()) {
			return nil
		}
		key := normalized(d.Name())
		if _, found := dc.index.Get(key); found {
			tracer().Infof("font %s shadowed by an earlier file of the same name", p)
			return nil
		}
		dc.index.Put(key, p)
		return nil
	})
	if err != nil {
		tracer().Errorf("cannot scan font directory %s: %v", dc.root, err)
	}
	tracer().Debugf("font directory %s contains %d fonts", dc.root, dc.index.Size())
}

// Resolve reads the font file whose stem matches name.
func (dc *DirCatalog) Resolve(name string) ([]byte, error) {
	dc.scan.Do(dc.buildIndex)
	p, found := dc.index.Get(normalized(name))
	if !found {
		return nil, NotFound(name)
	}
	bytez, err := fs.ReadFile(dc.fsys, p.(string))
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", p)
	}
	return bytez, nil
}

// Names returns the normalized names of all fonts in the directory.
func (dc *DirCatalog) Names() []string {
	dc.scan.Do(dc.buildIndex)
	return stringKeys(dc.index)
}

func stringKeys(m *treemap.Map) []string {
	keys := m.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}
