package outwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// Letter size in inches.
const (
	pageShort = 8.5
	pageLong  = 11.0
)

// docMeta is the metadata stamped into every generated document.
type docMeta struct {
	creator string
	created time.Time
}

// meta returns the document metadata for this run.
func (ow *OutWriter) meta() docMeta {
	return docMeta{creator: ow.cfg.Creator(), created: ow.created}
}

// newDocument creates a Letter-sized document measured in inches.
// Page breaks are manual; every page is laid out explicitly.
func newDocument(orientation, title string, meta docMeta) *fpdf.Fpdf {
	pdf := fpdf.New(orientation, "in", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator(meta.creator, true)
	pdf.SetCreationDate(meta.created)
	pdf.SetModificationDate(meta.created)
	pdf.SetCatalogSort(true)
	return pdf
}

// writeWithFile writes a document through a temporary file in the target
// directory and renames it into place, so a failed write leaves no partial file.
func writeWithFile(outputFile string, writer func(io.Writer) error, status io.Writer) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputFile), "."+filepath.Base(outputFile)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op after a successful rename

	if err := writer(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outputFile, err)
	}
	if err := os.Rename(tmpName, outputFile); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", outputFile, err)
	}

	_, _ = fmt.Fprintf(status, "💾 PDF saved as %s\n", outputFile)
	return nil
}
