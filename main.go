package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/ByLCY/vellum/desc"
	"github.com/ByLCY/vellum/fonts"
	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
	canvasrenderer "github.com/ByLCY/vellum/renderer/canvas"
)

//go:embed main.go
var mainSource string

const (
	paragraphGap = 2.5 * layout.Millimeter
	blockGap     = 6 * layout.Millimeter
)

const introText = "Vellum builds fixed layout documents out of drawable " +
	"elements: text boxes, lists, tables, images and highlighted source " +
	"listings. Every distance is a typed length, so millimeters, points " +
	"and inches mix freely without conversion mistakes, and every element " +
	"reports its size before anything is drawn."

const indentText = "Elements are measured against a width constraint and " +
	"placed by hand wherever they belong on the page. Nothing reflows " +
	"behind your back: a paragraph set to a width keeps it, a table " +
	"distributes only the surplus its growing columns asked for, and the " +
	"resulting geometry is yours to inspect down to the baseline of each " +
	"row."

var listItems = []string{
	"wrapped and justified text with bold, italic and hanging indents",
	"tables with fixed and growing columns, cell padding and borders",
	"syntax highlighted source code with a numbered gutter",
	"images placed at their natural size or scaled to fit",
}

func main() {
	output := flag.String("o", "vellum-demo.pdf", "output PDF path")
	bodyDesc := flag.String("font", "serif 10pt", "body font description, e.g. \"Noto Serif 10pt\"")
	codeDesc := flag.String("code-font", "monospace 7pt", "source listing font description")
	marginsFlag := flag.String("margins", "30mm 20mm", "page margins, one to four lengths")
	fontDir := flag.String("font-dir", "", "directory relative font paths resolve against")
	fontFile := flag.String("font-file", "", "font file registered for the body family")
	theme := flag.String("theme", layout.DefaultTheme, "highlight theme name")
	imagePath := flag.String("image", "", "figure picture file (PNG, JPEG or GIF); a generated gradient when empty")
	flag.Parse()

	bodyFont, err := desc.ParseFont(*bodyDesc)
	if err != nil {
		log.Fatalf("invalid -font: %v", err)
	}
	codeFont, err := desc.ParseFont(*codeDesc)
	if err != nil {
		log.Fatalf("invalid -code-font: %v", err)
	}
	margins, err := desc.ParseMargins(*marginsFlag)
	if err != nil {
		log.Fatalf("invalid -margins: %v", err)
	}

	picture, caption := demoImage(), "a procedurally generated figure, scaled to 70 mm"
	if *imagePath != "" {
		picture, err = loadImage(*imagePath)
		if err != nil {
			log.Fatalf("invalid -image: %v", err)
		}
		caption = fmt.Sprintf("%s, scaled to 70 mm", filepath.Base(*imagePath))
	}

	opts := canvasrenderer.Options{BaseDir: *fontDir, DefaultFamily: bodyFont.Family}
	if *fontFile != "" {
		if bodyFont.Family == "" {
			bodyFont.Family = "body"
			opts.DefaultFamily = "body"
		}
		opts.Fonts = map[string]fonts.Resource{bodyFont.Family: {Path: *fontFile}}
	}
	ctx, err := canvasrenderer.NewContext(opts)
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}

	doc := &document{
		ctx:      ctx,
		font:     bodyFont,
		codeFont: codeFont,
		margins:  margins,
		theme:    *theme,
		picture:  picture,
		caption:  caption,
	}

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	writer := ctx.PDF(file)
	writer.SetInfo("Vellum showcase", "Fixed layout typesetting in Go",
		"pdf, typesetting, layout", "", "vellum")

	if err := doc.write(writer); err != nil {
		log.Fatalf("write document: %v", err)
	}
	if err := writer.Close(); err != nil {
		log.Fatalf("finish %s: %v", *output, err)
	}
	if err := file.Close(); err != nil {
		log.Fatalf("close %s: %v", *output, err)
	}
	fmt.Printf("wrote %s\n", *output)
}

type document struct {
	ctx      *canvasrenderer.Context
	font     layout.FontSpec
	codeFont layout.FontSpec
	margins  layout.Margins
	theme    string
	picture  image.Image
	caption  string
}

func (d *document) write(w renderer.DocumentWriter) error {
	if err := d.overviewPage(w); err != nil {
		return err
	}
	return d.sourcePages(w)
}

func (d *document) newPage() (*layout.Page, layout.Rectangle) {
	page := d.ctx.Page().SetMargins(d.margins)
	return page, page.TextArea()
}

// text returns a body-font text box so the page code below stays short.
func (d *document) text(content string) *layout.TextBox {
	return layout.NewTextBox(d.ctx).SetFont(d.font).SetText(content)
}

func (d *document) overviewPage(w renderer.DocumentWriter) error {
	page, area := d.newPage()
	y := area.Min.Y

	title := d.text("Vellum").SetFontSize(layout.Pt(28)).MakeBold().AlignCenter()
	title.SetMaxWidth(page.TextWidth())
	if err := page.Draw(title, layout.Vec(area.Min.X, y)); err != nil {
		return err
	}
	y += title.Height()

	subtitle := d.text("fixed layout documents with unit-safe geometry").
		MakeItalic().AlignCenter()
	subtitle.SetMaxWidth(page.TextWidth())
	if err := page.Draw(subtitle, layout.Vec(area.Min.X, y)); err != nil {
		return err
	}
	y += subtitle.Height() + blockGap

	intro := d.text(introText).SetJustify(true)
	intro.SetMaxWidth(page.TextWidth())
	if err := page.Draw(intro, layout.Vec(area.Min.X, y)); err != nil {
		return err
	}
	y += intro.Height() + paragraphGap

	indentStyle := layout.DefaultTextStyle()
	indentStyle.Font = d.font
	indentStyle.Justify = true
	indentStyle.Indent = layout.Mm(6)
	indented := layout.NewTextBox(d.ctx).SetStyle(indentStyle).SetText(indentText)
	indented.SetMaxWidth(page.TextWidth())
	if err := page.Draw(indented, layout.Vec(area.Min.X, y)); err != nil {
		return err
	}
	y += indented.Height() + blockGap

	list := layout.NewItemList(d.ctx, d.font)
	for _, item := range listItems {
		list.AddItem(d.text(item))
	}
	list.SetMaxWidth(page.TextWidth())
	if err := page.Draw(list, layout.Vec(area.Min.X, y)); err != nil {
		return err
	}
	y += list.Size().Y + blockGap

	y, err := d.unitTable(page, area, y)
	if err != nil {
		return err
	}
	y += blockGap

	if err := d.figure(page, area, y); err != nil {
		return err
	}
	return w.Add(page)
}

// unitTable draws the unit overview with a label hanging in the left
// column, aligned to the first data row's baseline.
func (d *document) unitTable(page *layout.Page, area layout.Rectangle, y layout.Length) (layout.Length, error) {
	const labelWidth = 18 * layout.Millimeter

	table := layout.NewTable().
		SetCellPadding(layout.MarginsVH(layout.Mm(0.8), layout.Mm(2))).
		AddColumn(false, 0).
		AddColumn(false, 0).
		AddColumn(true, 0).
		SetMaxWidth(page.TextWidth() - labelWidth)

	header := []string{"unit", "in mm", "typical use"}
	for _, h := range header {
		table.AddCell(d.text(h).MakeBold(), layout.AlignLeft, nil)
	}
	rows := [][3]string{
		{"mm", "1", "page geometry and margins"},
		{"pt", "0.3528", "font sizes and rules"},
		{"in", "25.4", "media sizes"},
		{"du", "0.0003", "shaping backends"},
	}
	for _, r := range rows {
		table.AddCell(d.text(r[0]), layout.AlignLeft, nil)
		table.AddCell(d.text(r[1]), layout.AlignRight, nil)
		table.AddCell(d.text(r[2]), layout.AlignLeft, nil)
	}

	grid := table.Layout()
	pos := layout.Vec(area.Min.X+labelWidth, y)
	if err := grid.Draw(page.Surface(), pos); err != nil {
		return y, err
	}
	rule := layout.Pt(0.75)
	grid.DrawHorizontalBorder(page.Surface(), pos, 0, layout.AllColumns(), rule)
	grid.DrawHorizontalBorder(page.Surface(), pos, 1, layout.AllColumns(), rule)
	grid.DrawHorizontalBorder(page.Surface(), pos, grid.IntoTable().Rows(), layout.AllColumns(), rule)

	label := d.text("units").MakeBold()
	if base, ok := label.Baseline(); ok {
		at := layout.Vec(area.Min.X, y+grid.RowBaseline(1)-base)
		if err := page.Draw(label, at); err != nil {
			return y, err
		}
	}
	return y + grid.Height(), nil
}

func (d *document) figure(page *layout.Page, area layout.Rectangle, y layout.Length) error {
	img := layout.NewImage(d.picture).SetWidth(layout.Mm(70))
	centered := layout.NewOffset(img, layout.Vec(area.Min.X+page.TextWidth()/2, y)).
		AnchorCenterX()
	if err := page.Draw(centered, layout.Vector2{}); err != nil {
		return err
	}
	y += img.Size().Y + paragraphGap

	caption := d.text(d.caption).MakeItalic().AlignCenter()
	caption.SetMaxWidth(page.TextWidth())
	return page.Draw(caption, layout.Vec(area.Min.X, y))
}

// sourcePages renders this program's own source as a highlighted
// listing, split across as many pages as it needs.
func (d *document) sourcePages(w renderer.DocumentWriter) error {
	source, err := layout.NewSourceCode(d.ctx, "go")
	if err != nil {
		return err
	}
	source.SetCode(mainSource).SetFont(d.codeFont)
	if err := source.SetTheme(d.theme); err != nil {
		return err
	}
	listing, err := source.Highlight()
	if err != nil {
		return err
	}

	page, area := d.newPage()
	listing.SetMaxWidth(page.TextWidth())
	pages := int(math.Ceil(float64(listing.Size().Y / page.TextHeight())))
	for i := 0; i < pages; i++ {
		if i > 0 {
			page, area = d.newPage()
		}
		offset := page.TextHeight() * layout.Length(i)
		if err := page.Draw(listing, layout.Vec(area.Min.X, area.Min.Y-offset)); err != nil {
			return err
		}
		maskMargins(page)
		if err := d.sourceHeader(page, area); err != nil {
			return err
		}
		if err := w.Add(page); err != nil {
			return err
		}
	}
	return nil
}

// maskMargins paints the top and bottom margins white: the listing is
// drawn shifted upward to select the page's window, so rows belonging
// to the neighboring windows end up in the margins.
func maskMargins(page *layout.Page) {
	size := page.Size()
	m := page.Margins()
	page.Surface().FillRect(layout.RectXYWH(0, 0, size.X, m.Top-layout.Mm(10)), layout.White)
	page.Surface().FillRect(layout.RectXYWH(0, size.Y-m.Bottom, size.X, m.Bottom), layout.White)
}

// sourceHeader puts a running header into the top margin.
func (d *document) sourceHeader(page *layout.Page, area layout.Rectangle) error {
	header := layout.NewTextBox(d.ctx).SetFont(d.codeFont).SetText("main.go")
	if err := page.Draw(header, layout.Vec(area.Min.X, area.Min.Y-layout.Mm(8))); err != nil {
		return err
	}
	page.Surface().StrokeLine(
		layout.Vec(area.Min.X, area.Min.Y-layout.Mm(3)),
		layout.Vec(area.Max.X, area.Min.Y-layout.Mm(3)),
		layout.Pt(0.5), layout.RGB(120, 120, 120))
	return nil
}

// loadImage decodes a picture in any of the registered formats.
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func demoImage() image.Image {
	const w, h = 240, 160
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x)/w - 0.5
			dy := float64(y)/h - 0.5
			r := math.Sqrt(dx*dx + dy*dy)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(90 + 120*float64(x)/w),
				G: uint8(60 + 100*float64(y)/h),
				B: uint8(200 - 120*r),
				A: 255,
			})
		}
	}
	return img
}
