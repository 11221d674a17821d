package fontregistry

import (
	"sort"
	"sync"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/okanimoji/core/font"
	"github.com/npillmayer/okanimoji/core/locate/resources"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding information about loaded fonts.
type Registry struct {
	sync.Mutex
	fonts   map[string]*font.ScalableFont
	catalog resources.Catalog
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts. It resolves unknown fonts with the default catalog (packaged
// fonts and system fonts).
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(resources.DefaultCatalog(""))
	})
	return globalFontRegistry
}

// NewRegistry creates a registry which loads fonts from catalog. catalog may
// be nil, in which case only fonts stored with StoreFont are known.
func NewRegistry(catalog resources.Catalog) *Registry {
	fr := &Registry{
		fonts:   make(map[string]*font.ScalableFont),
		catalog: catalog,
	}
	return fr
}

// Catalog returns the catalog the registry loads fonts from.
func (fr *Registry) Catalog() resources.Catalog {
	return fr.catalog
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(name string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	key := font.NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
		fr.fonts[key] = f
	}
}

// Font returns the font registered for name. If it is not present yet, it
// will be resolved through the registry's catalog, parsed and cached.
func (fr *Registry) Font(name string) (*font.ScalableFont, error) {
	key := font.NormalizeFontname(name)
	if key == "" {
		return nil, core.Error(core.EINVALID, "empty font name")
	}
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[key]; ok {
		tracer().Debugf("registry found font %s", key)
		return f, nil
	}
	if fr.catalog == nil {
		tracer().Infof("registry does not contain font %s", key)
		return nil, resources.NotFound(name)
	}
	bytez, err := fr.catalog.Resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := font.ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	if f.Fontname == "" {
		f.Fontname = key
	}
	tracer().Infof("font registry loaded font %s (%s)", key, f.Fontname)
	fr.fonts[key] = f
	return f, nil
}

// TypeCase returns a concrete typecase for a font at a given point size.
// Type cases carry scratch buffers for glyph loading and are therefore
// created for every call; the underlying font is cached.
func (fr *Registry) TypeCase(name string, size float32) (*font.TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", name, size)
	f, err := fr.Font(name)
	if err != nil {
		return nil, err
	}
	return f.PrepareCase(size)
}

// Names returns the names of all fonts the registry knows of, either cached
// or available from its catalog.
func (fr *Registry) Names() []string {
	fr.Lock()
	seen := make(map[string]bool, len(fr.fonts))
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		seen[k] = true
		names = append(names, k)
	}
	fr.Unlock()
	if fr.catalog != nil {
		for _, n := range fr.catalog.Names() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of loaded fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	fr.Lock()
	defer fr.Unlock()
	tracer().Infof("--- registered fonts ---")
	keys := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tracer().Infof("font [%s] = %v", k, fr.fonts[k].Fontname)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
