package resume

import (
	"bytes"
	"fmt"
	"strings"

	"consultly/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont    = "Helvetica"
	lineHeight = 5.5
)

// RenderPDF renders the user's resume to a single-column A4 document.
func (s *DefaultResumeService) RenderPDF(userID string) ([]byte, error) {
	r, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return renderPDF(r)
}

func renderPDF(r *models.Resume) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.FullName, false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 20)
	pdf.CellFormat(0, 10, r.FullName, "", 1, "L", false, 0, "")

	if contact := contactLine(r); contact != "" {
		pdf.SetFont(pdfFont, "", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 6, contact, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)

	if r.Summary != "" {
		sectionHeader(pdf, "Summary")
		pdf.SetFont(pdfFont, "", 10)
		pdf.MultiCell(0, lineHeight, r.Summary, "", "L", false)
		pdf.Ln(2)
	}

	if len(r.Skills) > 0 {
		sectionHeader(pdf, "Skills")
		pdf.SetFont(pdfFont, "", 10)
		pdf.MultiCell(0, lineHeight, strings.Join(r.Skills, ", "), "", "L", false)
		pdf.Ln(2)
	}

	if len(r.Experience) > 0 {
		sectionHeader(pdf, "Experience")
		for _, exp := range r.Experience {
			heading := exp.Title
			if exp.Company != "" && heading != "" {
				heading = fmt.Sprintf("%s, %s", exp.Title, exp.Company)
			} else if exp.Company != "" {
				heading = exp.Company
			}
			pdf.SetFont(pdfFont, "B", 11)
			pdf.CellFormat(0, 6, heading, "", 1, "L", false, 0, "")
			if period := periodLine(exp.Start, exp.End); period != "" {
				pdf.SetFont(pdfFont, "I", 9)
				pdf.CellFormat(0, 5, period, "", 1, "L", false, 0, "")
			}
			if exp.Details != "" {
				pdf.SetFont(pdfFont, "", 10)
				pdf.MultiCell(0, lineHeight, exp.Details, "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	if len(r.Education) > 0 {
		sectionHeader(pdf, "Education")
		for _, edu := range r.Education {
			pdf.SetFont(pdfFont, "B", 11)
			pdf.CellFormat(0, 6, edu.School, "", 1, "L", false, 0, "")
			detail := edu.Degree
			if edu.Year != "" {
				if detail != "" {
					detail = fmt.Sprintf("%s, %s", detail, edu.Year)
				} else {
					detail = edu.Year
				}
			}
			if detail != "" {
				pdf.SetFont(pdfFont, "", 10)
				pdf.CellFormat(0, 5, detail, "", 1, "L", false, 0, "")
			}
			pdf.Ln(1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render resume pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, 7, strings.ToUpper(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1.5)
}

func contactLine(r *models.Resume) string {
	var parts []string
	if r.Email != "" {
		parts = append(parts, r.Email)
	}
	if r.Phone != "" {
		parts = append(parts, r.Phone)
	}
	return strings.Join(parts, "  |  ")
}

func periodLine(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return fmt.Sprintf("%s - Present", start)
	case start == "":
		return end
	}
	return fmt.Sprintf("%s - %s", start, end)
}
