package pipeline

import (
	"github.com/npillmayer/okanimoji/core/font/fontregistry"
	"github.com/npillmayer/okanimoji/core/locate/resources"
	"github.com/npillmayer/okanimoji/core/parameters"
	"github.com/npillmayer/okanimoji/engine/compose"
	"github.com/npillmayer/okanimoji/engine/quantize"
	"github.com/npillmayer/okanimoji/engine/raster"
	"golang.org/x/text/unicode/norm"
)

// Renderer renders text with a font from a registry.
type Renderer struct {
	Registry *fontregistry.Registry
	Params   parameters.Parameters
}

// NewRenderer creates a renderer. If registry is nil, the global registry
// is used.
func NewRenderer(registry *fontregistry.Registry, params parameters.Parameters) *Renderer {
	if registry == nil {
		registry = fontregistry.GlobalRegistry()
	}
	return &Renderer{Registry: registry, Params: params}
}

// Catalog creates the font catalog for a set of parameters: the manifest,
// the font directory (if configured), the packaged fonts and the system fonts,
// in this order. If no manifest is configured, one is looked for in the font
// directory and in resources.DefaultManifestDirs.
func Catalog(params parameters.Parameters) (resources.Catalog, error) {
	var manifest, dir resources.Catalog
	mpath := params.Manifest
	if mpath == "" {
		mpath = resources.FindManifest(append([]string{params.FontDir}, resources.DefaultManifestDirs...)...)
	}
	if mpath != "" {
		mc, err := resources.LoadManifest(mpath)
		if err != nil {
			return nil, err
		}
		manifest = mc
	}
	if params.FontDir != "" {
		dir = resources.NewDirCatalog(params.FontDir)
	}
	return resources.NewChain(manifest, dir, resources.PackagedCatalog(), resources.SystemCatalog{}), nil
}

// Raster rasterizes text with the configured font and point size.
func (r *Renderer) Raster(text string) (*raster.Coverage, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, err
	}
	tc, err := r.Registry.TypeCase(r.Params.Font, r.Params.PtSize)
	if err != nil {
		return nil, err
	}
	text = norm.NFC.String(text)
	tracer().Debugf("rendering %q with %s at %.1fpt", text, tc.ScalableFontParent().Fontname, tc.PtSize())
	return raster.Rasterize(text, tc)
}

// Compositor returns the compositor for the renderer's parameters.
// With a shadow offset of 0 the art is sized to the configured width and
// the layers are overlaid without offset. Otherwise art is sized to the
// configured minimum height, not exceeding the configured width including
// the shadow.
func (r *Renderer) Compositor() (*compose.Compositor, error) {
	p := r.Params
	if p.Shadow == 0 {
		c, err := compose.New(p.Width, p.MinHeight, 0, p.Margin)
		if err != nil {
			return nil, err
		}
		w := p.Width
		if p.Margin {
			w -= compose.MarginCols
		}
		c.Sizing = quantize.WidthDriven{Cols: w}
		return c, nil
	}
	return compose.New(p.Width, p.MinHeight, p.Shadow, p.Margin)
}

// Render renders text as terminal art, with a newline after every row.
func (r *Renderer) Render(text string) (string, error) {
	cov, err := r.Raster(text)
	if err != nil {
		return "", err
	}
	c, err := r.Compositor()
	if err != nil {
		return "", err
	}
	return c.Render(cov).String(), nil
}
