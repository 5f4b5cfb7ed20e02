// Package export writes the employee directory to a file as JSON or as a
// printable PDF table.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/dmitrijs2005/empdir/internal/validators"
	"github.com/jung-kurt/gofpdf"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("export format %q: %w", s, common.ErrorInvalidInput)
}

// Options label the PDF. Headers follow the column order first name, last
// name, employment date, birth date, phone, email, department, position.
type Options struct {
	Title   string
	Headers []string
}

var defaultHeaders = []string{
	"First Name", "Last Name", "Date of Employment", "Date of Birth",
	"Phone", "Email", "Department", "Position",
}

// column widths in mm on landscape A4 (277mm usable)
var columnWidths = []float64{28, 30, 32, 28, 34, 65, 30, 30}

// Write encodes employees to w in the given format.
func Write(w io.Writer, f Format, employees []models.Employee, opts Options) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, employees)
	case FormatPDF:
		return WritePDF(w, employees, opts)
	}
	return fmt.Errorf("export format %q: %w", f, common.ErrorInvalidInput)
}

// WriteFile creates path and writes the export into it.
func WriteFile(path string, f Format, employees []models.Employee, opts Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return Write(file, f, employees, opts)
}

// WriteJSON writes the records as an indented JSON array using the storage
// field names.
func WriteJSON(w io.Writer, employees []models.Employee) error {
	if employees == nil {
		employees = []models.Employee{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(employees); err != nil {
		return fmt.Errorf("failed to encode employees: %w", err)
	}
	return nil
}

// WritePDF renders the records as a landscape A4 table.
func WritePDF(w io.Writer, employees []models.Employee, opts Options) error {
	headers := opts.Headers
	if len(headers) != len(columnWidths) {
		headers = defaultHeaders
	}
	title := opts.Title
	if title == "" {
		title = "Employee List"
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(12)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(255, 107, 0)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(columnWidths[i], 7, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, e := range employees {
		if pdf.GetY()+6 > pageHeight-bottom-10 {
			pdf.AddPage()
			header()
		}
		row := []string{
			e.FirstName, e.LastName, e.DateOfEmployment, e.DateOfBirth,
			validators.FormatPhone(e.Phone), e.Email, string(e.Department), string(e.Position),
		}
		for i, v := range row {
			pdf.CellFormat(columnWidths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
