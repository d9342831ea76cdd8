package services

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

var ErrEmptyPlan = errors.New("plan has no ideas and no timeline")

type PlanPDFData struct {
	Query string
	Date  string
	Plan  GeneratePayload
}

// GeneratePlanPDF renders a plan and returns the raw PDF bytes.
func GeneratePlanPDF(data PlanPDFData) ([]byte, error) {
	if len(data.Plan.Ideas) == 0 && len(data.Plan.Timeline) == 0 {
		return nil, ErrEmptyPlan
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Footer ───────────────────────────────────────────────
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Generated by Trip Ideas - suggestions only, verify before booking - page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Trip Ideas", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Travel Suggestions", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(40, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(130, 7, tr(value), "", "L", false)
	}

	item := func(heading, title, description, link string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		if heading != "" {
			title = heading + "  " + title
		}
		pdf.MultiCell(170, 6, tr(title), "", "L", false)
		if description != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(60, 60, 60)
			pdf.MultiCell(170, 5, tr(description), "", "L", false)
		}
		if link != "" {
			pdf.SetFont("Helvetica", "U", 8)
			pdf.SetTextColor(30, 80, 160)
			pdf.CellFormat(170, 5, "Open in Google Maps", "", 1, "L", false, 0, link)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	// ── Request ──────────────────────────────────────────────
	sectionHeader("Your Request")
	if data.Query != "" {
		row("Query", data.Query)
	}
	if data.Date != "" {
		row("Date", fmtDateReadable(data.Date))
	}
	row("Generated", time.Now().UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	if len(data.Plan.Ideas) > 0 {
		sectionHeader("Ideas")
		for _, idea := range data.Plan.Ideas {
			item("", idea.Title, idea.Description, idea.Link)
		}
		pdf.Ln(2)
	}

	if len(data.Plan.Timeline) > 0 {
		sectionHeader("Timeline")
		for _, event := range data.Plan.Timeline {
			item(event.Time, event.Title, event.Description, event.Link)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
