package layout

import (
	"math"
	"testing"
)

func widthsNear(t *testing.T, got []Length, want []float64, what string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d widths, want %d", what, len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i].Mm() - want[i]); diff > 1e-6 {
			t.Fatalf("%s: column %d got %gmm want %gmm", what, i, got[i].Mm(), want[i])
		}
	}
}

func grow(n int) []ColumnSpec {
	cols := make([]ColumnSpec, n)
	for i := range cols {
		cols[i].Grow = true
	}
	return cols
}

func fixed(n int) []ColumnSpec { return make([]ColumnSpec, n) }

func TestDivideWidthSurplusAllGrow(t *testing.T) {
	got := divideWidth(grow(3), []Length{Mm(10), Mm(10), Mm(10)}, Mm(36))
	widthsNear(t, got, []float64{12, 12, 12}, "even growth")
}

func TestDivideWidthSurplusSingleGrower(t *testing.T) {
	cols := []ColumnSpec{{}, {Grow: true}, {}}
	got := divideWidth(cols, []Length{Mm(10), Mm(10), Mm(10)}, Mm(36))
	widthsNear(t, got, []float64{10, 16, 10}, "grower takes all the excess")
}

func TestDivideWidthSurplusNoGrowers(t *testing.T) {
	got := divideWidth(fixed(2), []Length{Mm(10), Mm(10)}, Mm(30))
	widthsNear(t, got, []float64{10, 10}, "no growers keep natural widths")
	// The leftover stays unused: the table is narrower than the
	// available width.
	var sum Length
	for _, w := range got {
		sum += w
	}
	if sum >= Mm(30) {
		t.Fatalf("expected the table to stay narrower than 30mm, got %gmm", sum.Mm())
	}
}

func TestDivideWidthDeficit(t *testing.T) {
	got := divideWidth(fixed(3), []Length{Mm(5), Mm(20), Mm(5)}, Mm(18))
	// fair = 6mm: the outer columns keep 5mm and donate 1mm each, the
	// middle donates its fair 6mm and the 8mm pool comes back to it.
	widthsNear(t, got, []float64{5, 8, 5}, "deficit distribution")
}

// TestDivideWidthDeficitConserves verifies that a deficit always hands
// out exactly the available width.
func TestDivideWidthDeficitConserves(t *testing.T) {
	cases := []struct {
		naturals  []float64
		available float64
	}{
		{[]float64{5, 20, 5}, 18},
		{[]float64{40, 40, 40}, 60},
		{[]float64{1, 2, 300}, 100},
		{[]float64{17, 3, 50, 9}, 30},
	}
	for _, c := range cases {
		naturals := make([]Length, len(c.naturals))
		for i, v := range c.naturals {
			naturals[i] = Mm(v)
		}
		got := divideWidth(fixed(len(naturals)), naturals, Mm(c.available))
		var sum Length
		for _, w := range got {
			sum += w
		}
		if diff := math.Abs(sum.Mm() - c.available); diff > 1e-6 {
			t.Fatalf("naturals %v @ %gmm: widths sum to %gmm", c.naturals, c.available, sum.Mm())
		}
	}
}

func TestDivideWidthTinyNaturalsFloor(t *testing.T) {
	// Near-zero naturals are floored to 1mm total, so the excess is
	// computed against that floor rather than blowing up.
	got := divideWidth(grow(2), []Length{0, 0}, Mm(21))
	widthsNear(t, got, []float64{10, 10}, "floored excess split over growers")
}

func tableText(s string) *TextBox {
	return NewTextBox(stubTypesetter{}).SetText(s)
}

func TestTableRows(t *testing.T) {
	table := NewTable().AddColumn(false, 0).AddColumn(false, 0).AddColumn(false, 0)
	if got := table.Rows(); got != 0 {
		t.Fatalf("no cells: got %d rows", got)
	}
	for i := 0; i < 4; i++ {
		table.AddCell(tableText("x"), AlignLeft, nil)
	}
	if got := table.Rows(); got != 2 {
		t.Fatalf("4 cells over 3 columns: got %d rows, want 2", got)
	}
}

func TestTableLayoutEmpty(t *testing.T) {
	lay := NewTable().Layout()
	vecNear(t, lay.Size(), Vector2{}, "empty table size")
	if _, ok := lay.Baseline(); ok {
		t.Fatalf("empty table has no baseline")
	}
	s := &recordingSurface{}
	if err := lay.Draw(s, Vector2{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(s.ops) != 0 {
		t.Fatalf("empty table must not draw, got %d ops", len(s.ops))
	}

	// Columns without cells behave the same.
	lay = NewTable().AddColumn(true, 0).Layout()
	vecNear(t, lay.Size(), Vector2{}, "columns without cells")
}

func TestTableLayoutNaturalWidths(t *testing.T) {
	table := NewTable().SetCellPadding(Margins{}).
		AddColumn(false, 0).AddColumn(false, 0).
		AddCell(tableText("aa"), AlignLeft, nil).
		AddCell(tableText("aaaa"), AlignLeft, nil).
		AddCell(tableText("aaa"), AlignLeft, nil).
		AddCell(tableText("a"), AlignLeft, nil)
	lay := table.Layout()
	// Column width is the widest cell in the column: 3 runes and 4.
	widthsNear(t, lay.columnWidths, []float64{6, 8}, "natural column widths")
	lengthNear(t, lay.Width(), Mm(14), "table width")
}

func TestTableLayoutPaddingWidensColumns(t *testing.T) {
	pad := MarginsVH(Mm(1), Mm(2))
	table := NewTable().SetCellPadding(pad).
		AddColumn(false, 0).
		AddCell(tableText("aa"), AlignLeft, nil)
	lay := table.Layout()
	widthsNear(t, lay.columnWidths, []float64{4 + 4}, "padding added to the natural width")
	lengthNear(t, lay.Height(), Pt(10)+Mm(2), "padding added to the row height")
}

func TestTableLayoutDistributesAndRewraps(t *testing.T) {
	table := NewTable().SetCellPadding(Margins{}).
		SetColumns(grow(3)).
		SetMaxWidth(Mm(36)).
		AddCell(tableText("aaaaa"), AlignLeft, nil).
		AddCell(tableText("aaaaa"), AlignLeft, nil).
		AddCell(tableText("aaaaa"), AlignLeft, nil)
	lay := table.Layout()
	widthsNear(t, lay.columnWidths, []float64{12, 12, 12}, "surplus split over growers")
	lengthNear(t, lay.Width(), Mm(36), "table fills the available width")
	for _, cell := range lay.table.cells {
		lengthNear(t, cell.text.MaxWidth(), Mm(12), "cell constraint")
	}
}

func TestTableLayoutRaggedLastRow(t *testing.T) {
	table := NewTable().SetCellPadding(Margins{}).
		AddColumn(false, 0).AddColumn(false, 0).AddColumn(false, 0).
		AddCell(tableText("a"), AlignLeft, nil).
		AddCell(tableText("a"), AlignLeft, nil).
		AddCell(tableText("a"), AlignLeft, nil).
		AddCell(tableText("a"), AlignLeft, nil)
	lay := table.Layout()
	if len(lay.rowHeights) != 2 {
		t.Fatalf("expected 2 row heights, got %d", len(lay.rowHeights))
	}
	lengthNear(t, lay.Height(), 2*Pt(10), "both rows counted")
}

func TestTableLayoutDrawWalksCells(t *testing.T) {
	table := NewTable().SetCellPadding(Margins{}).
		AddColumn(false, 0).AddColumn(false, 0).
		AddCell(tableText("aa"), AlignLeft, nil).
		AddCell(tableText("bb"), AlignLeft, nil).
		AddCell(tableText("cc"), AlignLeft, nil).
		AddCell(tableText("dd"), AlignLeft, nil)
	lay := table.Layout()
	s := &recordingSurface{}
	if err := lay.Draw(s, Vec(Mm(10), Mm(20))); err != nil {
		t.Fatalf("draw: %v", err)
	}
	texts := s.byKind("text")
	if len(texts) != 4 {
		t.Fatalf("expected 4 cell draws, got %d", len(texts))
	}
	rowH := Pt(10)
	vecNear(t, texts[0].pos, Vec(Mm(10), Mm(20)), "cell (0,0)")
	vecNear(t, texts[1].pos, Vec(Mm(14), Mm(20)), "cell (0,1)")
	vecNear(t, texts[2].pos, Vec(Mm(10), Mm(20)+rowH), "cell (1,0)")
	vecNear(t, texts[3].pos, Vec(Mm(14), Mm(20)+rowH), "cell (1,1)")
}

func TestTableLayoutCellAlignment(t *testing.T) {
	table := NewTable().SetCellPadding(Margins{}).
		SetColumns(grow(1)).
		SetMaxWidth(Mm(20)).
		AddCell(tableText("aa"), AlignRight, nil).
		AddCell(tableText("aa"), AlignCenter, nil)
	lay := table.Layout()
	s := &recordingSurface{}
	if err := lay.Draw(s, Vector2{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	texts := s.byKind("text")
	// The cell text is 4mm wide in a 20mm column. Right anchors the
	// text's right edge at the column width, center halves it.
	lengthNear(t, texts[0].pos.X, Mm(16), "right-aligned cell x")
	lengthNear(t, texts[1].pos.X, Mm(8), "centered cell x")
}

func TestTableRowBaseline(t *testing.T) {
	table := NewTable().
		AddColumn(false, 0).
		AddCell(tableText("aa"), AlignLeft, nil).
		AddCell(tableText("bb"), AlignLeft, nil)
	lay := table.Layout()
	ascent := Length(0.8 * float64(Pt(10)))
	lengthNear(t, lay.RowBaseline(0), ascent, "first row baseline")
	// Row baselines ignore cell padding: the second row's baseline is
	// the first row's full height plus the text ascent.
	rowH := Pt(10) + 2*Pt(1)
	lengthNear(t, lay.RowBaseline(1), rowH+ascent, "second row baseline")

	base, ok := lay.Baseline()
	if !ok {
		t.Fatalf("table with cells must have a baseline")
	}
	lengthNear(t, base, ascent, "table baseline is the first row's")
}

func TestTableDrawHorizontalBorder(t *testing.T) {
	table := NewTable().SetCellPadding(Margins{}).
		AddColumn(false, 0).AddColumn(false, 0).AddColumn(false, 0).
		AddCell(tableText("aa"), AlignLeft, nil).
		AddCell(tableText("aaaa"), AlignLeft, nil).
		AddCell(tableText("aa"), AlignLeft, nil)
	lay := table.Layout()
	s := &recordingSurface{}
	lay.DrawHorizontalBorder(s, Vec(Mm(1), Mm(2)), 0, AllColumns(), Pt(0.5))
	lines := s.byKind("line")
	if len(lines) != 1 {
		t.Fatalf("expected 1 border line, got %d", len(lines))
	}
	vecNear(t, lines[0].from, Vec(Mm(1), Mm(2)), "border start")
	vecNear(t, lines[0].to, Vec(Mm(1)+Mm(16), Mm(2)), "border spans all columns")
	if lines[0].col != Black {
		t.Fatalf("border must be black, got %+v", lines[0].col)
	}

	// A partial range spans only the selected columns.
	s = &recordingSurface{}
	lay.DrawHorizontalBorder(s, Vector2{}, 1, Columns(1, 3), Pt(0.5))
	lines = s.byKind("line")
	lengthNear(t, lines[0].from.X, Mm(4), "partial border start")
	lengthNear(t, lines[0].to.X, Mm(16), "partial border end")
	lengthNear(t, lines[0].from.Y, Pt(10), "border below the single row")
}

func TestTableBorderRangePanics(t *testing.T) {
	lay := NewTable().
		AddColumn(false, 0).
		AddCell(tableText("x"), AlignLeft, nil).
		Layout()
	defer func() {
		if recover() == nil {
			t.Fatalf("out-of-range border must panic")
		}
	}()
	lay.DrawHorizontalBorder(&recordingSurface{}, Vector2{}, 0, Columns(0, 5), Pt(1))
}

func TestTableIntoTableRelayout(t *testing.T) {
	table := NewTable().SetCellPadding(Margins{}).
		AddColumn(false, 0).
		AddCell(tableText("aa"), AlignLeft, nil)
	lay := table.Layout()
	lengthNear(t, lay.Height(), Pt(10), "one row")

	again := lay.IntoTable().AddCell(tableText("bb"), AlignLeft, nil).Layout()
	lengthNear(t, again.Height(), 2*Pt(10), "relayout sees the new row")
}
