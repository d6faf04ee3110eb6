package layout

import "fmt"

// Table collects columns and row-major cells, then computes a layout.
// Configuration is fluent; Layout is the single transition to the
// immutable TableLayout. A table must not be modified once laid out;
// IntoTable hands it back for rebuilding.
type Table struct {
	columns     []ColumnSpec
	cellPadding Margins
	cells       []tableCell
	maxWidth    Length
}

// ColumnSpec configures one table column.
type ColumnSpec struct {
	// Grow lets the column take a share of leftover width.
	Grow bool

	// MaxWidth caps the column; <= 0 means no cap.
	MaxWidth Length
}

type tableCell struct {
	text      *TextBox
	alignment TextAlignment
	padding   *Margins
}

func (c *tableCell) pad(fallback Margins) Margins {
	if c.padding != nil {
		return *c.padding
	}
	return fallback
}

// NewTable creates an empty table with 1pt vertical and 4pt horizontal
// cell padding.
func NewTable() *Table {
	return &Table{cellPadding: MarginsVH(Pt(1), Pt(4))}
}

// SetMaxWidth constrains the summed column widths; <= 0 removes the
// constraint.
func (t *Table) SetMaxWidth(width Length) *Table {
	t.maxWidth = width
	return t
}

// SetCellPadding replaces the default padding applied to cells without
// their own.
func (t *Table) SetCellPadding(padding Margins) *Table {
	t.cellPadding = padding
	return t
}

// SetColumns replaces all column specifications.
func (t *Table) SetColumns(columns []ColumnSpec) *Table {
	t.columns = columns
	return t
}

// AddColumn appends a column specification.
func (t *Table) AddColumn(grow bool, maxWidth Length) *Table {
	t.columns = append(t.columns, ColumnSpec{Grow: grow, MaxWidth: maxWidth})
	return t
}

// AddCell appends a cell in row-major order. A nil padding uses the
// table's cell padding.
func (t *Table) AddCell(text *TextBox, alignment TextAlignment, padding *Margins) *Table {
	t.cells = append(t.cells, tableCell{text: text, alignment: alignment, padding: padding})
	return t
}

// Rows is the number of rows the cells fill; the last row may be
// partial.
func (t *Table) Rows() int {
	if len(t.cells) == 0 || len(t.columns) == 0 {
		return 0
	}
	return (len(t.cells) + len(t.columns) - 1) / len(t.columns)
}

// Layout computes column widths and row heights and freezes the table.
//
// Column widths start from the widest natural cell width per column
// (cell padding included). Without a table max width those are final;
// with one, divideWidth distributes the available width and every cell
// is rewrapped to its column.
func (t *Table) Layout() *TableLayout {
	if len(t.columns) == 0 || len(t.cells) == 0 {
		return &TableLayout{table: t}
	}

	columnCount := len(t.columns)

	naturalWidths := make([]Length, columnCount)
	for i, cell := range t.cells {
		column := i % columnCount
		pad := cell.pad(t.cellPadding)
		naturalWidths[column] = naturalWidths[column].Max(cell.text.NaturalWidth() + pad.TotalHorizontal())
	}

	columnWidths := naturalWidths
	if t.maxWidth > 0 {
		columnWidths = divideWidth(t.columns, naturalWidths, t.maxWidth)
		for i, cell := range t.cells {
			column := i % columnCount
			pad := cell.pad(t.cellPadding)
			cell.text.SetMaxWidth(columnWidths[column] - pad.TotalHorizontal())
		}
	}

	var rowHeights []Length
	var currentRowHeight Length
	for i, cell := range t.cells {
		pad := cell.pad(t.cellPadding)
		currentRowHeight = currentRowHeight.Max(cell.text.Height() + pad.TotalVertical())
		if (i+1)%columnCount == 0 {
			rowHeights = append(rowHeights, currentRowHeight)
			currentRowHeight = 0
		}
	}
	// A ragged final row still occupies its height.
	if len(t.cells)%columnCount != 0 {
		rowHeights = append(rowHeights, currentRowHeight)
	}

	return &TableLayout{
		table:        t,
		columnWidths: columnWidths,
		rowHeights:   rowHeights,
	}
}

// divideWidth distributes the available width over the columns.
//
// With room to spare, the leftover beyond the natural widths is divided
// evenly over the columns marked Grow; with no growers the leftover
// stays unused and the table ends up narrower than the available width.
// When the natural widths exceed the available width, every column is
// owed its fair share (available / count): columns at or under fair keep
// their natural width and donate the difference, columns over fair
// donate their full fair share into the same pool and then split the
// pool in proportion to their natural widths. The shares then add up to
// exactly the available width.
func divideWidth(columns []ColumnSpec, naturalWidths []Length, availableWidth Length) []Length {
	count := len(naturalWidths)
	var totalNatural Length
	for _, w := range naturalWidths {
		totalNatural += w
	}
	totalNatural = totalNatural.Max(Mm(1))
	fair := availableWidth / Length(count)

	if totalNatural <= availableWidth {
		excess := availableWidth - totalNatural
		growers := 0
		for _, spec := range columns {
			if spec.Grow {
				growers++
			}
		}
		var spacing Length
		if growers > 0 {
			spacing = excess / Length(growers)
		}
		widths := make([]Length, 0, count)
		for i, spec := range columns {
			if spec.Grow {
				widths = append(widths, naturalWidths[i]+spacing)
			} else {
				widths = append(widths, naturalWidths[i])
			}
		}
		return widths
	}

	var dividable, totalShrunk Length
	for _, natural := range naturalWidths {
		if natural <= fair {
			dividable += fair - natural
		} else {
			dividable += fair
			totalShrunk += natural
		}
	}

	widths := make([]Length, 0, count)
	for _, natural := range naturalWidths {
		if natural <= fair {
			widths = append(widths, natural)
		} else {
			widths = append(widths, dividable*(natural/totalShrunk))
		}
	}
	return widths
}

// TableLayout is a laid-out table. It draws and measures but cannot be
// reconfigured; IntoTable recovers the underlying table.
type TableLayout struct {
	table        *Table
	columnWidths []Length
	rowHeights   []Length
}

var _ Drawable = (*TableLayout)(nil)

// IntoTable returns the underlying table so it can be modified and laid
// out again.
func (l *TableLayout) IntoTable() *Table { return l.table }

func (l *TableLayout) colStart(index int) Length {
	var sum Length
	for _, w := range l.columnWidths[:index] {
		sum += w
	}
	return sum
}

func (l *TableLayout) rowStart(index int) Length {
	var sum Length
	for _, h := range l.rowHeights[:index] {
		sum += h
	}
	return sum
}

// Draw renders the cells row-major with the table's top-left corner at
// position. Cell text sits inside its padding; right and center
// alignments anchor the text within the column.
func (l *TableLayout) Draw(s Surface, position Vector2) error {
	cursor := position
	columnCount := len(l.table.columns)
	for i, cell := range l.table.cells {
		pad := cell.pad(l.table.cellPadding)
		withOffset := NewOffset(cell.text, Vec(pad.Left, pad.Top))
		switch cell.alignment {
		case AlignRight:
			withOffset.AnchorRight().AddOffset(Vec(l.columnWidths[i%columnCount], 0))
		case AlignCenter:
			withOffset.AnchorCenterX().AddOffset(Vec(l.columnWidths[i%columnCount]/2, 0))
		}
		if err := withOffset.Draw(s, cursor); err != nil {
			return err
		}
		if (i+1)%columnCount == 0 {
			cursor.X = position.X
			cursor.Y += l.rowHeights[i/columnCount]
		} else {
			cursor.X += l.columnWidths[i%columnCount]
		}
	}
	return nil
}

// RowBaseline is the baseline of a row, measured from the table top:
// the row start plus the baseline of the row's first cell.
func (l *TableLayout) RowBaseline(row int) Length {
	cell := &l.table.cells[row*len(l.table.columns)]
	base, _ := cell.text.Baseline()
	return l.rowStart(row) + base
}

// ColumnRange selects a half-open run [Start, End) of table columns. A
// negative End extends the range through the last column.
type ColumnRange struct {
	Start int
	End   int
}

// AllColumns spans every column.
func AllColumns() ColumnRange { return ColumnRange{Start: 0, End: -1} }

// Columns selects the half-open column range [start, end).
func Columns(start, end int) ColumnRange { return ColumnRange{Start: start, End: end} }

// DrawHorizontalBorder strokes a black line along the top edge of the
// given row (row == Rows() strokes below the last row), spanning the
// given columns. Out-of-range columns are a programmer error and panic.
func (l *TableLayout) DrawHorizontalBorder(s Surface, position Vector2, row int, columns ColumnRange, width Length) {
	y := l.rowStart(row)

	count := len(l.table.columns)
	end := columns.End
	if end < 0 {
		end = count
	}
	if columns.Start < 0 || columns.Start >= count {
		panic(fmt.Sprintf("table border start column %d out of range (%d columns)", columns.Start, count))
	}
	if end > count || end <= columns.Start {
		panic(fmt.Sprintf("table border end column %d out of range (%d columns)", columns.End, count))
	}

	x1 := l.colStart(columns.Start)
	x2 := l.colStart(end)
	from := position.Add(Vec(x1, y))
	to := position.Add(Vec(x2, y))
	s.StrokeLine(from, to, width, Black)
}

// Size is the summed column widths by the summed row heights.
func (l *TableLayout) Size() Vector2 {
	return Vec(l.Width(), l.Height())
}

// Width is the summed column widths.
func (l *TableLayout) Width() Length { return l.colStart(len(l.columnWidths)) }

// Height is the summed row heights.
func (l *TableLayout) Height() Length { return l.rowStart(len(l.rowHeights)) }

// MinWidth equals the laid-out width; the layout cannot rewrap.
func (l *TableLayout) MinWidth() Length { return l.Width() }

// MaxWidth reports the constraint the table was laid out with.
func (l *TableLayout) MaxWidth() Length { return l.table.maxWidth }

// NaturalWidth equals the laid-out width.
func (l *TableLayout) NaturalWidth() Length { return l.Width() }

// Baseline is the first row's baseline, if the table has any cells.
func (l *TableLayout) Baseline() (Length, bool) {
	if len(l.rowHeights) == 0 {
		return 0, false
	}
	return l.RowBaseline(0), true
}
