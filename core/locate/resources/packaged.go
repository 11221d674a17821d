package resources

import (
	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// packagedCatalog serves the Go font family. The Go fonts cover Latin,
// Greek and Cyrillic scripts only.
type packagedCatalog struct {
	fonts *treemap.Map // normalized name -> TTF bytes
}

var packaged = func() *packagedCatalog {
	pc := &packagedCatalog{fonts: treemap.NewWithStringComparator()}
	for name, ttf := range map[string][]byte{
		"go-regular":       goregular.TTF,
		"go-bold":          gobold.TTF,
		"go-italic":        goitalic.TTF,
		"go-bold-italic":   gobolditalic.TTF,
		"go-medium":        gomedium.TTF,
		"go-medium-italic": gomediumitalic.TTF,
		"go-mono":          gomono.TTF,
		"go-mono-bold":     gomonobold.TTF,
		"go-smallcaps":     gosmallcaps.TTF,
	} {
		pc.fonts.Put(name, ttf)
	}
	return pc
}()

// PackagedCatalog returns a catalog of the fonts compiled into the binary.
func PackagedCatalog() Catalog {
	return packaged
}

func (pc *packagedCatalog) Resolve(name string) ([]byte, error) {
	ttf, found := pc.fonts.Get(normalized(name))
	if !found {
		return nil, NotFound(name)
	}
	return ttf.([]byte), nil
}

func (pc *packagedCatalog) Names() []string {
	return stringKeys(pc.fonts)
}
