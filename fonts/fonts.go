// Package fonts resolves font specifications to canvas font faces.
package fonts

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/vellum/layout"
)

// Resource names font data for one family and style. Bytes wins over
// Path; a relative Path is resolved against the catalog's base
// directory.
type Resource struct {
	Bytes []byte
	Path  string
}

type fontKey struct {
	family string
	style  canvas.FontStyle
}

// Catalog loads and caches canvas font families. Unregistered family
// names are looked up as system fonts, including the generic names
// serif, sans-serif and monospace; when that fails the catalog falls
// back to its default family. Safe for concurrent use.
type Catalog struct {
	baseDir       string
	defaultFamily string

	mu       sync.Mutex
	sources  map[fontKey]Resource
	families map[fontKey]*canvas.FontFamily
}

// NewCatalog creates an empty catalog. Relative resource paths resolve
// against baseDir; an empty defaultFamily falls back to serif.
func NewCatalog(baseDir, defaultFamily string) *Catalog {
	if defaultFamily == "" {
		defaultFamily = "serif"
	}
	return &Catalog{
		baseDir:       baseDir,
		defaultFamily: defaultFamily,
		sources:       make(map[fontKey]Resource),
		families:      make(map[fontKey]*canvas.FontFamily),
	}
}

// DefaultFamily is the family used when a spec names none and the last
// resort when a family cannot be loaded.
func (c *Catalog) DefaultFamily() string { return c.defaultFamily }

// Register binds font data to a family name, weight and style. The
// name is matched case-insensitively.
func (c *Catalog) Register(family string, weight layout.FontWeight, style layout.FontStyle, res Resource) {
	key := fontKey{family: strings.ToLower(family), style: StyleOf(weight, style)}
	c.mu.Lock()
	c.sources[key] = res
	c.mu.Unlock()
}

// Face resolves a font face for the spec, inked in the given color.
// Decorators such as canvas.FontUnderline apply on top.
func (c *Catalog) Face(spec layout.FontSpec, col color.Color, deco ...canvas.FontDecorator) (*canvas.FontFace, error) {
	style := StyleOf(spec.Weight, spec.Style)
	family, err := c.Family(spec.Family, style)
	if err != nil {
		return nil, err
	}
	args := make([]interface{}, 0, 3+len(deco))
	args = append(args, col, style, canvas.FontNormal)
	for _, d := range deco {
		args = append(args, d)
	}
	return family.Face(spec.Size.Pt(), args...), nil
}

// Family returns a loaded font family for the name and style, going
// through registered resources, system fonts and the default family in
// that order.
func (c *Catalog) Family(name string, style canvas.FontStyle) (*canvas.FontFamily, error) {
	if name == "" {
		name = c.defaultFamily
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.family(strings.ToLower(name), style, true)
}

func (c *Catalog) family(name string, style canvas.FontStyle, allowFallback bool) (*canvas.FontFamily, error) {
	key := fontKey{family: name, style: style}
	if family, ok := c.families[key]; ok {
		return family, nil
	}

	family := canvas.NewFontFamily(name)
	err := c.load(family, key)
	if err == nil {
		c.families[key] = family
		return family, nil
	}

	if allowFallback && name != strings.ToLower(c.defaultFamily) {
		if fallback, fbErr := c.family(strings.ToLower(c.defaultFamily), style, false); fbErr == nil {
			c.families[key] = fallback
			return fallback, nil
		}
	}
	return nil, fmt.Errorf("load font family %s: %w", name, err)
}

func (c *Catalog) load(family *canvas.FontFamily, key fontKey) error {
	res, ok := c.sources[key]
	if !ok {
		return family.LoadSystemFont(key.family, key.style)
	}
	if len(res.Bytes) > 0 {
		return family.LoadFont(res.Bytes, 0, key.style)
	}
	if res.Path == "" {
		return fmt.Errorf("registered font %s has neither bytes nor a path", key.family)
	}
	return family.LoadFontFile(c.resolvePath(res.Path), key.style)
}

func (c *Catalog) resolvePath(path string) string {
	if filepath.IsAbs(path) || c.baseDir == "" {
		return path
	}
	return filepath.Join(c.baseDir, path)
}

// StyleOf maps a font weight and slant onto canvas's style flags.
func StyleOf(weight layout.FontWeight, style layout.FontStyle) canvas.FontStyle {
	var s canvas.FontStyle
	switch weight {
	case layout.WeightThin:
		s = canvas.FontThin
	case layout.WeightUltraLight:
		s = canvas.FontExtraLight
	case layout.WeightLight, layout.WeightSemiLight:
		s = canvas.FontLight
	case layout.WeightMedium:
		s = canvas.FontMedium
	case layout.WeightSemiBold:
		s = canvas.FontSemiBold
	case layout.WeightBold:
		s = canvas.FontBold
	case layout.WeightUltraBold:
		s = canvas.FontExtraBold
	case layout.WeightHeavy, layout.WeightUltraHeavy:
		s = canvas.FontBlack
	default:
		s = canvas.FontRegular
	}
	if style == layout.StyleItalic || style == layout.StyleOblique {
		s |= canvas.FontItalic
	}
	return s
}
