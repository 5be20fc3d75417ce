// Package palette provides the fixed, ordered set of colors cycled over point models.
//
// The default palette is the SVG 1.1 named-color table in alphabetical order with
// black removed. Black is the sentinel "no color" value and never appears in a
// palette built by this package.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Version identifies the default palette contents. Bump it whenever Default changes.
const Version = 1

var (
	// ErrEmpty is returned when a palette would have no colors after filtering.
	ErrEmpty = errors.New("palette: no colors")
	// ErrUnknownColor is returned by FromNames for a name outside the SVG table.
	ErrUnknownColor = errors.New("palette: unknown color name")
)

// Palette is an ordered, read-only list of opaque colors.
type Palette []color.RGBA

var defaultPalette = mustFromNames(colornames.Names...)

// Default returns the versioned default palette.
//
// The returned slice is shared; callers must not modify it.
func Default() Palette { return defaultPalette }

// New builds a palette from explicit colors, dropping sentinel entries.
func New(colors ...color.RGBA) (Palette, error) {
	p := make(Palette, 0, len(colors))
	for _, c := range colors {
		if sentinel(c) {
			continue
		}
		c.A = 0xFF
		p = append(p, c)
	}
	if len(p) == 0 {
		return nil, ErrEmpty
	}
	return p, nil
}

// FromNames builds a palette from SVG color names, preserving order.
func FromNames(names ...string) (Palette, error) {
	colors := make([]color.RGBA, 0, len(names))
	for _, name := range names {
		c, ok := colornames.Map[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		colors = append(colors, c)
	}
	return New(colors...)
}

func mustFromNames(names ...string) Palette {
	p, err := FromNames(names...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p) }

// At returns the color assigned to index i: p[i mod len(p)].
//
// Negative indices wrap to the end. At panics on an empty palette.
func (p Palette) At(i int) color.RGBA {
	n := len(p)
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}

func sentinel(c color.RGBA) bool { return c.R == 0 && c.G == 0 && c.B == 0 }
