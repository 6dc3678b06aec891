package pdf

import (
	"fmt"

	"dppify/types"

	"codeberg.org/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Config struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
}

func DefaultConfig() Config {
	return Config{
		PageSize:   "A4",
		MarginsMM:  15,
		FontFamily: "Helvetica",
	}
}

// Renderer writes a DPP worksheet to a PDF file.
type Renderer struct {
	cfg Config
}

func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render lays out the worksheet and writes it to outputFilePath, then
// checks the written artifact is a well-formed PDF before handing the
// path on to the uploader.
func (r *Renderer) Render(doc types.Document, outputFilePath string) error {
	pdf := fpdf.New("P", "mm", r.cfg.PageSize, "")
	pdf.SetMargins(r.cfg.MarginsMM, r.cfg.MarginsMM, r.cfg.MarginsMM)

	title := fmt.Sprintf("Daily Practice Problems: %s", cases.Title(language.English).String(doc.Topic))
	pdf.SetTitle(title, false)
	pdf.AddPage()

	// ---------- header ----------
	pdf.SetFont(r.cfg.FontFamily, "B", 20)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ---------- instructions ----------
	if doc.Instructions != "" {
		pdf.SetFont(r.cfg.FontFamily, "B", 13)
		pdf.CellFormat(0, 8, "Instructions", "", 1, "L", false, 0, "")
		pdf.SetFont(r.cfg.FontFamily, "", 11)
		pdf.MultiCell(0, 6, doc.Instructions, "", "L", false)
		pdf.Ln(6)
	}

	// ---------- questions ----------
	pdf.SetFont(r.cfg.FontFamily, "", 12)
	for i, q := range doc.Questions {
		txt := fmt.Sprintf("%d. %s", i+1, q.Text)
		pdf.MultiCell(0, 7, txt, "", "L", false)
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(outputFilePath); err != nil {
		return fmt.Errorf("write worksheet pdf: %w", err)
	}

	if err := api.ValidateFile(outputFilePath, api.LoadConfiguration()); err != nil {
		return fmt.Errorf("generated pdf failed validation: %w", err)
	}

	return nil
}
