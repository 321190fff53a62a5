package outwriter

import (
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/huangsam/kdstats/schema"
)

// Table geometry on a portrait Letter page, in inches.
// The table fills the central 80% horizontally and sits below the title.
const (
	tableLeft   = pageShort * 0.1
	tableWidth  = pageShort * 0.8
	tableTop    = pageLong * 0.1
	tableHeight = pageLong * 0.8
	titleTop    = 0.45
	titleHeight = 0.4
)

// Font sizes in points.
const (
	titleFontSize = 14
	cellFontSize  = 8
)

const tableDocumentTitle = "Game Data Table"

var errNoTablePages = errors.New("no table rows to write")

// writeTableDocument paginates the dataset and persists every page in one document.
func writeTableDocument(ow *OutWriter, ds schema.Dataset, path string) error {
	pages := PaginateTable(ds, ow.cfg.RowsPerPage)
	pdf, err := buildTableDocument(pages, ow.cfg.RowsPerPage, ow.meta())
	if err != nil {
		return err
	}
	return writeWithFile(path, pdf.Output, ow.out)
}

// buildTableDocument draws one portrait page per table page.
// Row height is fixed by rowsPerPage so a short last page keeps the same grid.
func buildTableDocument(pages []schema.TablePage, rowsPerPage int, meta docMeta) (*fpdf.Fpdf, error) {
	if len(pages) == 0 {
		return nil, errNoTablePages
	}

	pdf := newDocument("P", tableDocumentTitle, meta)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	rowHeight := tableHeight / float64(rowsPerPage+1)

	for _, page := range pages {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", titleFontSize)
		pdf.SetXY(tableLeft, titleTop)
		pdf.CellFormat(tableWidth, titleHeight, tr(page.Title), "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "B", cellFontSize)
		pdf.SetFillColor(220, 220, 220)
		drawTableRow(pdf, tr, page.Header, tableTop, rowHeight, true)

		pdf.SetFont("Helvetica", "", cellFontSize)
		for i, row := range page.Rows {
			drawTableRow(pdf, tr, row, tableTop+float64(i+1)*rowHeight, rowHeight, false)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out table pages: %w", err)
	}
	return pdf, nil
}

// drawTableRow draws bordered, centered cells across the table width.
func drawTableRow(pdf *fpdf.Fpdf, tr func(string) string, cells []string, y, height float64, fill bool) {
	x := tableLeft
	for i, text := range cells {
		width := tableWidth * schema.TableColumnWidths[i]
		pdf.SetXY(x, y)
		pdf.CellFormat(width, height, tr(text), "1", 0, "C", fill, 0, "")
		x += width
	}
}
