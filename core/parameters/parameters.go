/*
Package parameters holds the parameters controlling a rendering run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/okanimoji/core"
	"github.com/npillmayer/schuko"
)

// Configuration keys.
const (
	P_PTSIZE    = "ptsize"    // point size for glyph rasterization
	P_WIDTH     = "width"     // maximum art width in terminal columns
	P_MINHEIGHT = "minheight" // minimum art height in terminal rows
	P_SHADOW    = "shadow"    // shadow offset in cells
	P_MARGIN    = "margin"    // reserve a right margin
	P_FONT      = "font"      // font name
	P_MANIFEST  = "manifest"  // path of a font manifest (fonts.toml)
	P_FONTDIR   = "fontdir"   // directory to scan for font files
)

// Parameters for rendering text to terminal art.
type Parameters struct {
	PtSize    float32
	Width     int
	MinHeight int
	Shadow    int
	Margin    bool
	Font      string
	Manifest  string
	FontDir   string
}

// Defaults returns the parameters used if nothing else is configured.
func Defaults() Parameters {
	return Parameters{
		PtSize:    64,
		Width:     100,
		MinHeight: 10,
		Shadow:    2,
		Font:      "noto-medium",
	}
}

// FromConfig overrides the defaults with the keys set in conf.
// Numeric values out of range result in an EINVALID error.
func FromConfig(conf schuko.Configuration) (Parameters, error) {
	p := Defaults()
	if conf == nil {
		return p, nil
	}
	if conf.IsSet(P_PTSIZE) {
		sz, err := strconv.ParseFloat(conf.GetString(P_PTSIZE), 32)
		if err != nil {
			return p, core.WrapError(err, core.EINVALID, "invalid point size: %s", conf.GetString(P_PTSIZE))
		}
		p.PtSize = float32(sz)
	}
	if conf.IsSet(P_WIDTH) {
		p.Width = conf.GetInt(P_WIDTH)
	}
	if conf.IsSet(P_MINHEIGHT) {
		p.MinHeight = conf.GetInt(P_MINHEIGHT)
	}
	if conf.IsSet(P_SHADOW) {
		p.Shadow = conf.GetInt(P_SHADOW)
	}
	if conf.IsSet(P_MARGIN) {
		p.Margin = conf.GetBool(P_MARGIN)
	}
	if s := conf.GetString(P_FONT); s != "" {
		p.Font = s
	}
	p.Manifest = conf.GetString(P_MANIFEST)
	p.FontDir = conf.GetString(P_FONTDIR)
	return p, p.Validate()
}

// Validate checks the parameters for sensible values.
func (p Parameters) Validate() error {
	switch {
	case p.PtSize <= 0:
		return core.Error(core.EINVALID, "point size must be positive, is %.2f", p.PtSize)
	case p.Width < 1:
		return core.Error(core.EINVALID, "width must be at least 1, is %d", p.Width)
	case p.MinHeight < 0:
		return core.Error(core.EINVALID, "minimum height must not be negative, is %d", p.MinHeight)
	case p.Shadow < 0:
		return core.Error(core.EINVALID, "shadow offset must not be negative, is %d", p.Shadow)
	}
	return nil
}

func (p Parameters) String() string {
	return fmt.Sprintf("font=%s size=%.1f width=%d min-height=%d shadow=%d margin=%v",
		p.Font, p.PtSize, p.Width, p.MinHeight, p.Shadow, p.Margin)
}
