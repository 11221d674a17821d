package resources

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/okanimoji/core/font"
)

// ErrFontNotFound is the cause of errors for font names a catalog cannot resolve.
var ErrFontNotFound = errors.New("font not found")

// Catalog resolves a font name to the bytes of a font file.
// Names are compared in normalized form (see font.NormalizeFontname).
type Catalog interface {
	Resolve(name string) ([]byte, error)
	Names() []string // normalized names known to the catalog, sorted
}

// NotFound returns an application error for a font name which cannot be resolved.
func NotFound(name string) error {
	return core.WrapError(fmt.Errorf("%w: %q", ErrFontNotFound, name), core.EMISSING,
		"font not found: %s", name)
}

// IsNotFound is a predicate for errors caused by unresolvable font names.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFontNotFound)
}

// --- Chain -----------------------------------------------------------------

// Chain is a catalog which asks a sequence of catalogs in turn.
type Chain []Catalog

// NewChain creates a chain of catalogs. Nil catalogs are skipped.
func NewChain(catalogs ...Catalog) Chain {
	ch := make(Chain, 0, len(catalogs))
	for _, c := range catalogs {
		if c != nil {
			ch = append(ch, c)
		}
	}
	return ch
}

// Resolve asks every catalog of the chain for name and returns the first hit.
// Errors other than 'not found' stop the search.
func (ch Chain) Resolve(name string) ([]byte, error) {
	for i, c := range ch {
		bytez, err := c.Resolve(name)
		if err == nil {
			tracer().Debugf("font %s resolved by catalog #%d", name, i)
			return bytez, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, NotFound(name)
}

// Names returns the names known to any catalog of the chain, sorted and
// without duplicates.
func (ch Chain) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range ch {
		for _, n := range c.Names() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

// DefaultCatalog is a chain of a font directory (if dir is not empty), the
// packaged Go fonts and the fonts installed on the system.
func DefaultCatalog(dir string) Catalog {
	var dc Catalog
	if strings.TrimSpace(dir) != "" {
		dc = NewDirCatalog(dir)
	}
	return NewChain(dc, PackagedCatalog(), SystemCatalog{})
}

func normalized(name string) string {
	return font.NormalizeFontname(name)
}
