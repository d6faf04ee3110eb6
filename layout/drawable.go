package layout

import (
	"image"
	"strings"
)

// Drawable is anything that can measure itself and be drawn onto a
// surface. Measurements are pure: calling them repeatedly without
// changing the drawable yields the same values, and none of them alter
// the surface.
type Drawable interface {
	// Draw renders the drawable with its top-left corner at position.
	Draw(s Surface, position Vector2) error

	// MinWidth is the smallest width the content can be laid out in.
	MinWidth() Length

	// MaxWidth reports the current width constraint. Values <= 0 mean
	// the drawable is unconstrained.
	MaxWidth() Length

	// Size is the rendered size under the current constraint.
	Size() Vector2

	// Baseline is the distance from the top edge to the first text
	// baseline. ok is false for drawables without a baseline.
	Baseline() (h Length, ok bool)

	// NaturalWidth is the width the drawable would take with no
	// constraint applied. It does not disturb the current constraint.
	NaturalWidth() Length
}

// DrawableMut is a Drawable whose width constraint can be changed after
// construction.
type DrawableMut interface {
	Drawable

	// SetMaxWidth sets the width constraint; values <= 0 clear it.
	SetMaxWidth(Length)
}

// Width returns the current width of d.
func Width(d Drawable) Length { return d.Size().X }

// Height returns the current height of d.
func Height(d Drawable) Length { return d.Size().Y }

// Surface is a drawing target with the origin in the top-left corner and
// y growing downward.
type Surface interface {
	// DrawText draws one shaped line with its top-left corner at
	// position. When stretch exceeds the line width and the style
	// justifies, the backend widens inter-word gaps to fill stretch.
	DrawText(position Vector2, line ShapedLine, style TextStyle, col Color, stretch Length) error

	// FillRect fills the rectangle with the color.
	FillRect(r Rectangle, col Color)

	// StrokeLine strokes a straight line segment with the given pen
	// width.
	StrokeLine(from, to Vector2, width Length, col Color)

	// DrawImage blits img scaled to size with its top-left corner at
	// position.
	DrawImage(position Vector2, img image.Image, size Vector2) error

	// Clear repaints the whole surface fully transparent.
	Clear()
}

// Span is a run of text with uniform attributes. Nil colors inherit the
// drawing color of the surrounding element.
type Span struct {
	Text       string
	Bold       bool
	Italic     bool
	Underline  bool
	Foreground *Color
	Background *Color
}

// ShapedLine is one laid-out line of text.
type ShapedLine struct {
	Spans  []Span
	Width  Length
	Height Length

	// Ascent is the distance from the line top to its baseline.
	Ascent Length

	// Indent shifts the line right relative to the box it is drawn in.
	Indent Length

	// HardBreak marks lines that end a paragraph (explicit newline or
	// end of text). Justification leaves them ragged.
	HardBreak bool
}

// Text concatenates the span contents of the line.
func (l ShapedLine) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ShapedText is the result of shaping a text under a width constraint.
type ShapedText struct {
	Lines []ShapedLine

	// Spacing is the extra gap between consecutive lines.
	Spacing Length
}

// Size is the bounding size of the shaped text: the widest line by the
// summed line heights plus inter-line spacing.
func (t *ShapedText) Size() Vector2 {
	var w, h Length
	for i, line := range t.Lines {
		w = w.Max(line.Width + line.Indent)
		if i > 0 {
			h += t.Spacing
		}
		h += line.Height
	}
	return Vec(w, h)
}

// Baseline is the distance from the top to the first line's baseline.
func (t *ShapedText) Baseline() Length {
	if len(t.Lines) == 0 {
		return 0
	}
	return t.Lines[0].Ascent
}

// Typesetter shapes attributed text into lines.
//
// Shape never fails: implementations fall back to estimated metrics when
// no font face can be resolved and report font problems when drawing
// instead. Shaping an empty text yields a single empty line, so that
// empty boxes still have a height and a baseline.
type Typesetter interface {
	// Shape breaks spans into lines no wider than width; width <= 0
	// disables wrapping. Explicit newlines always break.
	Shape(spans []Span, width Length, style TextStyle) *ShapedText
}
