// Package vt implements a VT100/ANSI terminal emulator: a byte-level
// escape-sequence parser feeding a cell-grid emulator with cursor, scroll
// region, scrollback, and pen (attribute/colour) state.
package vt

import "github.com/lucasb-eyer/go-colorful"

// ColorKind tags how a Color's value should be interpreted.
type ColorKind uint8

const (
	// ColorDefault means "no colour set" — renders as the host's default
	// foreground or background.
	ColorDefault ColorKind = iota
	// ColorANSI is one of the 16 named indices (0-15).
	ColorANSI
	// ColorIndexed is a 256-colour palette index (0-255).
	ColorIndexed
	// ColorRGB is a direct 24-bit truecolor triple.
	ColorRGB
)

// Color is a tagged pen colour. The zero value is ColorDefault.
type Color struct {
	Kind    ColorKind
	Index   uint8 // valid for ColorANSI and ColorIndexed
	R, G, B uint8 // valid for ColorRGB
}

// DefaultColor is the "reset / default" colour.
var DefaultColor = Color{Kind: ColorDefault}

// ANSIColor builds a named 16-colour pen value (0-15).
func ANSIColor(index uint8) Color {
	return Color{Kind: ColorANSI, Index: index & 0x0F}
}

// IndexedColor builds a 256-palette pen value.
func IndexedColor(index uint8) Color {
	return Color{Kind: ColorIndexed, Index: index}
}

// RGBColor builds a direct truecolor pen value.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// standardANSIRGB is the conventional terminal palette for indices 0-15,
// used to resolve a ColorANSI or the ANSI-range portion of ColorIndexed to
// concrete RGB for rendering.
var standardANSIRGB = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// RGB resolves any Color to a concrete 24-bit triple. ColorDefault resolves
// to the given default (typically the host's assumed fg/bg).
func (c Color) RGB(def [3]uint8) [3]uint8 {
	switch c.Kind {
	case ColorANSI:
		return standardANSIRGB[c.Index&0x0F]
	case ColorIndexed:
		return indexedRGB(c.Index)
	case ColorRGB:
		return [3]uint8{c.R, c.G, c.B}
	default:
		return def
	}
}

// indexedRGB implements the palette mapping: 0-15 are the standard ANSI
// colours, 16-231 map to the 6x6x6 RGB cube at step 51, 232-255 map to a
// 24-step grayscale ramp via (n-232)*10+8.
func indexedRGB(n uint8) [3]uint8 {
	switch {
	case n < 16:
		return standardANSIRGB[n]
	case n < 232:
		i := int(n) - 16
		r := i / 36
		g := (i / 6) % 6
		b := i % 6
		return [3]uint8{cubeStep(r), cubeStep(g), cubeStep(b)}
	default:
		v := uint8((int(n)-232)*10 + 8)
		return [3]uint8{v, v, v}
	}
}

func cubeStep(level int) uint8 {
	return uint8(level * 51)
}

// Colorful resolves a Color to a go-colorful value, for components (the
// viewport renderer) that need exact float colour math or a hex string
// rather than raw byte triples.
func (c Color) Colorful(def [3]uint8) colorful.Color {
	rgb := c.RGB(def)
	return colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}
}

// Hex returns "#rrggbb" for a resolved colour, ready for lipgloss.Color.
func (c Color) Hex(def [3]uint8) string {
	return c.Colorful(def).Hex()
}
