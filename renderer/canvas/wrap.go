package canvasrenderer

import (
	"math"
	"strings"
	"unicode"

	"github.com/ByLCY/vellum/layout"
)

// measurer provides the text extents wrapSpans needs.
type measurer interface {
	width(span layout.Span, text string) layout.Length
	lineMetrics() (height, ascent layout.Length)
}

var _ measurer = (*faceMeasurer)(nil)

// wrapToken is one indivisible run: a word, a whitespace run or an
// explicit break, remembering which input span it came from.
type wrapToken struct {
	src     int
	text    string
	space   bool
	newline bool
}

// tokenize splits the spans into words, whitespace runs and explicit
// breaks. Carriage returns are dropped.
func tokenize(spans []layout.Span) []wrapToken {
	var tokens []wrapToken
	for src, span := range spans {
		var b strings.Builder
		var space bool
		flush := func() {
			if b.Len() == 0 {
				return
			}
			tokens = append(tokens, wrapToken{src: src, text: b.String(), space: space})
			b.Reset()
		}
		for _, r := range span.Text {
			if r == '\r' {
				continue
			}
			if r == '\n' {
				flush()
				tokens = append(tokens, wrapToken{src: src, newline: true})
				continue
			}
			isSpace := unicode.IsSpace(r)
			if b.Len() > 0 && space != isSpace {
				flush()
			}
			space = isSpace
			b.WriteRune(r)
		}
		flush()
	}
	return tokens
}

// wrapSpans fills lines greedily: whitespace is the preferred break
// opportunity and oversized words are split mid-word. A positive style
// indent narrows the first line of each paragraph, a negative one
// narrows and shifts every later line. Whitespace survives at
// paragraph starts but is consumed by soft wraps.
func wrapSpans(spans []layout.Span, width layout.Length, style layout.TextStyle, m measurer) *layout.ShapedText {
	height, ascent := m.lineMetrics()
	shaped := &layout.ShapedText{Spacing: style.Spacing()}

	type lineToken struct {
		wrapToken
		width layout.Length
	}
	var line []lineToken
	var lineWidth layout.Length
	paragraphStart := true

	indentFor := func(first bool) layout.Length {
		switch {
		case style.Indent > 0 && first:
			return style.Indent
		case style.Indent < 0 && !first:
			return -style.Indent
		}
		return 0
	}

	limitFor := func() layout.Length {
		if width <= 0 {
			return layout.Length(math.MaxFloat64)
		}
		return width - indentFor(paragraphStart)
	}

	emit := func(hard bool) {
		toks := line
		if !hard {
			for len(toks) > 0 && toks[len(toks)-1].space {
				lineWidth -= toks[len(toks)-1].width
				toks = toks[:len(toks)-1]
			}
			if len(toks) == 0 {
				line = line[:0]
				lineWidth = 0
				return
			}
		}
		lineSpans := make([]layout.Span, 0, len(toks))
		lastSrc := -1
		for _, tok := range toks {
			if tok.src == lastSrc {
				lineSpans[len(lineSpans)-1].Text += tok.text
				continue
			}
			span := spans[tok.src]
			span.Text = tok.text
			lineSpans = append(lineSpans, span)
			lastSrc = tok.src
		}
		if len(lineSpans) == 0 {
			lineSpans = append(lineSpans, layout.Span{})
		}
		shaped.Lines = append(shaped.Lines, layout.ShapedLine{
			Spans:     lineSpans,
			Width:     lineWidth,
			Height:    height,
			Ascent:    ascent,
			Indent:    indentFor(paragraphStart),
			HardBreak: hard,
		})
		line = line[:0]
		lineWidth = 0
		paragraphStart = hard
	}

	add := func(tok wrapToken, w layout.Length) {
		line = append(line, lineToken{wrapToken: tok, width: w})
		lineWidth += w
	}

	for _, tok := range tokenize(spans) {
		if tok.newline {
			emit(true)
			continue
		}
		w := m.width(spans[tok.src], tok.text)
		if tok.space {
			if len(line) == 0 && !paragraphStart {
				continue
			}
			add(tok, w)
			continue
		}
		limit := limitFor()
		if lineWidth > 0 && lineWidth+w > limit {
			emit(false)
			limit = limitFor()
		}
		if w <= limit {
			add(tok, w)
			continue
		}
		for _, chunk := range splitByWidth(spans[tok.src], tok.text, limit, m) {
			cw := m.width(spans[tok.src], chunk)
			if lineWidth > 0 && lineWidth+cw > limit {
				emit(false)
			}
			add(wrapToken{src: tok.src, text: chunk}, cw)
		}
	}
	emit(true)
	return shaped
}

// splitByWidth cuts an oversized word into chunks that each fit the
// limit, measuring rune by rune.
func splitByWidth(span layout.Span, text string, limit layout.Length, m measurer) []string {
	if limit <= 0 || limit == layout.Length(math.MaxFloat64) {
		return []string{text}
	}
	var parts []string
	var b strings.Builder
	runes := 0
	for _, r := range text {
		b.WriteRune(r)
		runes++
		if runes > 1 && m.width(span, b.String()) > limit {
			kept := []rune(b.String())
			parts = append(parts, string(kept[:len(kept)-1]))
			b.Reset()
			b.WriteRune(r)
			runes = 1
		}
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}
