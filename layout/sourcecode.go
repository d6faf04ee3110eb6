package layout

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is the highlighting theme used until SetTheme picks
// another one.
const DefaultTheme = "github"

// Themes lists the available highlighting theme names.
func Themes() []string { return styles.Names() }

// SourceCode configures syntax highlighted source text. Highlight
// tokenizes the code and produces the drawable form.
type SourceCode struct {
	ts         Typesetter
	lexer      chroma.Lexer
	style      *chroma.Style
	code       string
	font       FontSpec
	foreground *Color
	background *Color
}

// NewSourceCode prepares highlighting for the given language name or
// alias. Unknown languages are an error.
func NewSourceCode(ts Typesetter, language string) (*SourceCode, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("unknown language: %s", language)
	}
	return &SourceCode{
		ts:    ts,
		lexer: chroma.Coalesce(lexer),
		style: styles.Get(DefaultTheme),
		font:  PlainFont("monospace", Pt(10)),
	}, nil
}

// SetCode replaces the source text.
func (s *SourceCode) SetCode(code string) *SourceCode {
	s.code = code
	return s
}

// SetTheme switches to a named highlighting theme. Unknown themes are
// an error and leave the current theme in place.
func (s *SourceCode) SetTheme(name string) error {
	style, ok := styles.Registry[name]
	if !ok {
		return fmt.Errorf("unknown highlighting theme: %s", name)
	}
	s.style = style
	return nil
}

// SetFont replaces the font used for the code and the line numbers.
func (s *SourceCode) SetFont(font FontSpec) *SourceCode {
	s.font = font
	return s
}

// SetTextColor overrides the theme's document foreground; nil restores
// the theme color.
func (s *SourceCode) SetTextColor(c *Color) *SourceCode {
	s.foreground = c
	return s
}

// SetBackgroundColor overrides the theme's document background; nil
// restores the theme color.
func (s *SourceCode) SetBackgroundColor(c *Color) *SourceCode {
	s.background = c
	return s
}

// Highlight tokenizes the code and shapes one numbered line per source
// line. Wrapped continuations hang two font sizes past the line start.
func (s *SourceCode) Highlight() (*HighlightedSourceCode, error) {
	it, err := s.lexer.Tokenise(nil, s.code)
	if err != nil {
		return nil, fmt.Errorf("tokenize source: %w", err)
	}

	docFg := s.style.Get(chroma.Text).Colour
	docBg := s.style.Get(chroma.Background).Background

	style := DefaultTextStyle()
	style.Font = s.font
	style.Indent = -2 * s.font.Size

	h := &HighlightedSourceCode{
		ts:         s.ts,
		style:      style,
		background: s.background,
		foreground: s.foreground,
	}
	if h.background == nil && docBg.IsSet() {
		h.background = colorPtr(fromChroma(docBg))
	}
	if h.foreground == nil && docFg.IsSet() {
		h.foreground = colorPtr(fromChroma(docFg))
	}
	gutter := s.style.Get(chroma.LineNumbers)
	if gutter.Background.IsSet() && gutter.Background != docBg {
		h.gutterBackground = colorPtr(fromChroma(gutter.Background))
	}
	if gutter.Colour.IsSet() && gutter.Colour != docFg {
		h.gutterForeground = colorPtr(fromChroma(gutter.Colour))
	}

	for i, tokens := range chroma.SplitTokensIntoLines(it.Tokens()) {
		spans := make([]Span, 0, len(tokens))
		for _, tok := range tokens {
			spans = append(spans, styleSpan(s.style.Get(tok.Type), docFg, docBg, tok.Value))
		}
		if n := len(spans); n > 0 {
			spans[n-1].Text = strings.TrimSuffix(spans[n-1].Text, "\n")
		}
		h.lines = append(h.lines, sourceLine{
			number: fmt.Sprintf("%d ", i+1),
			spans:  spans,
		})
	}

	h.shapeNumbers()
	h.shapeSources()
	h.recompute()
	return h, nil
}

// styleSpan converts one chroma style entry into span attributes.
// Colors matching the document colors are left implicit so the
// document overrides keep working.
func styleSpan(entry chroma.StyleEntry, docFg, docBg chroma.Colour, text string) Span {
	span := Span{
		Text:      text,
		Bold:      entry.Bold == chroma.Yes,
		Italic:    entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes,
	}
	if entry.Colour.IsSet() && entry.Colour != docFg {
		span.Foreground = colorPtr(fromChroma(entry.Colour))
	}
	if entry.Background.IsSet() && entry.Background != docBg {
		span.Background = colorPtr(fromChroma(entry.Background))
	}
	return span
}

func fromChroma(c chroma.Colour) Color {
	return Color{R: c.Red(), G: c.Green(), B: c.Blue(), A: 255}
}

func colorPtr(c Color) *Color { return &c }

type sourceLine struct {
	number string
	spans  []Span
	nr     *ShapedText
	src    *ShapedText
}

// HighlightedSourceCode draws numbered, highlighted source lines. The
// line numbers sit right-aligned in a gutter; the source follows it.
type HighlightedSourceCode struct {
	ts       Typesetter
	style    TextStyle
	lines    []sourceLine
	maxWidth Length

	gutterWidth        Length
	sourceWidth        Length
	naturalSourceWidth Length
	height             Length

	background       *Color
	foreground       *Color
	gutterBackground *Color
	gutterForeground *Color
}

var _ DrawableMut = (*HighlightedSourceCode)(nil)

func (h *HighlightedSourceCode) shapeNumbers() {
	numberStyle := h.style
	numberStyle.Indent = 0
	var gutter Length
	for i := range h.lines {
		line := &h.lines[i]
		line.nr = h.ts.Shape([]Span{{Text: line.number}}, 0, numberStyle)
		gutter = gutter.Max(line.nr.Size().X)
	}
	h.gutterWidth = gutter
}

func (h *HighlightedSourceCode) shapeSources() {
	var limit Length
	if h.maxWidth > 0 {
		limit = h.maxWidth - h.gutterWidth
	}
	for i := range h.lines {
		line := &h.lines[i]
		line.src = h.ts.Shape(line.spans, limit, h.style)
	}
}

// recompute refreshes the cached size info. The source width never
// reports narrower than 1cm, so an empty block still has some body.
func (h *HighlightedSourceCode) recompute() {
	sourceWidth := Cm(1)
	naturalWidth := Cm(1)
	var height Length
	for i := range h.lines {
		line := &h.lines[i]
		natural := line.src
		if h.maxWidth > 0 {
			natural = h.ts.Shape(line.spans, 0, h.style)
		}
		naturalWidth = naturalWidth.Max(natural.Size().X)
		sourceWidth = sourceWidth.Max(line.src.Size().X)
		height += line.nr.Size().Y.Max(line.src.Size().Y)
	}
	h.sourceWidth = sourceWidth
	h.naturalSourceWidth = naturalWidth
	h.height = height
}

// SetFont switches the font and remeasures everything.
func (h *HighlightedSourceCode) SetFont(font FontSpec) *HighlightedSourceCode {
	h.style.Font = font
	h.style.Indent = -2 * font.Size
	h.shapeNumbers()
	h.shapeSources()
	h.recompute()
	return h
}

// SetMaxWidth constrains the block; the source runs get what the
// gutter leaves over. <= 0 removes the constraint.
func (h *HighlightedSourceCode) SetMaxWidth(width Length) {
	h.maxWidth = width
	h.shapeSources()
	h.recompute()
}

func (h *HighlightedSourceCode) MaxWidth() Length { return h.maxWidth }

// MinWidth leaves room for the gutter plus 1cm of source.
func (h *HighlightedSourceCode) MinWidth() Length {
	if len(h.lines) == 0 {
		return 0
	}
	return h.gutterWidth + Cm(1)
}

// NaturalWidth is the gutter plus the widest unwrapped source line.
func (h *HighlightedSourceCode) NaturalWidth() Length {
	return h.gutterWidth + h.naturalSourceWidth
}

// Size is the gutter plus the source body by the summed line heights.
func (h *HighlightedSourceCode) Size() Vector2 {
	return Vec(h.gutterWidth+h.sourceWidth, h.height)
}

// Baseline is the first line number's baseline.
func (h *HighlightedSourceCode) Baseline() (Length, bool) {
	if len(h.lines) == 0 {
		return 0, false
	}
	return h.lines[0].nr.Baseline(), true
}

// Draw fills the gutter and source backgrounds, then draws each line
// number right-aligned in the gutter with its source run beside it.
func (h *HighlightedSourceCode) Draw(s Surface, position Vector2) error {
	if h.gutterBackground != nil {
		s.FillRect(RectPosSize(position, Vec(h.gutterWidth, h.height)), *h.gutterBackground)
	}
	if h.background != nil {
		// Overlaps the gutter fill by 1pt so no seam shows between them.
		origin := position.Add(Vec(h.gutterWidth-Pt(1), 0))
		s.FillRect(RectPosSize(origin, Vec(h.sourceWidth+Pt(1), h.height)), *h.background)
	}

	numberColor := Black
	if h.foreground != nil {
		numberColor = *h.foreground
	}
	if h.gutterForeground != nil {
		numberColor = *h.gutterForeground
	}
	sourceColor := Black
	if h.foreground != nil {
		sourceColor = *h.foreground
	}

	y := position.Y
	for i := range h.lines {
		line := &h.lines[i]
		nrSize := line.nr.Size()
		srcSize := line.src.Size()

		if len(line.nr.Lines) > 0 {
			nrPos := Vec(position.X+h.gutterWidth-nrSize.X, y)
			if err := s.DrawText(nrPos, line.nr.Lines[0], h.style, numberColor, 0); err != nil {
				return err
			}
		}

		srcY := y
		for _, shaped := range line.src.Lines {
			pos := Vec(position.X+h.gutterWidth+shaped.Indent, srcY)
			if err := s.DrawText(pos, shaped, h.style, sourceColor, 0); err != nil {
				return err
			}
			srcY += shaped.Height + line.src.Spacing
		}

		y += nrSize.Y.Max(srcSize.Y)
	}
	return nil
}
