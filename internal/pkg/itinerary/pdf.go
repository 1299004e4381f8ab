package itinerary

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/utils"
	"github.com/jung-kurt/gofpdf"
)

const (
	maxOffersInDocument = 5
	pageWidth           = 210.0
	contentWidth        = 170.0
	marginLeft          = 20.0
)

// PlanDocumentData is everything printed on an itinerary document.
type PlanDocumentData struct {
	Source      string
	Destination string
	Dates       string
	Travelers   int
	Budget      string
	TravelPlan  string
	FlightData  dto.FlightOfferSet
	GeneratedAt time.Time
}

// RenderPDF lays out the itinerary on A4 pages.
func RenderPDF(data PlanDocumentData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 20, marginLeft)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(strings.ReplaceAll(s, "₹", "Rs. "))
	}

	// header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, pageWidth, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, 8)
	pdf.CellFormat(contentWidth, 10, text(fmt.Sprintf("Travel Plan: %s to %s", data.Source, data.Destination)),
		"", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 6, "AI-generated itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth, 8, "  "+text(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 7, text(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth-45, 7, text(value), "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Route", data.Source+" -> "+data.Destination)
	row("Dates", data.Dates)
	row("Travelers", fmt.Sprintf("%d", data.Travelers))
	row("Budget", data.Budget)
	if !data.GeneratedAt.IsZero() {
		row("Generated", data.GeneratedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	}
	pdf.Ln(4)

	if data.TravelPlan != "" {
		sectionHeader("Itinerary")
		writeMarkdown(pdf, text, data.TravelPlan)
		pdf.Ln(4)
	}

	if data.FlightData.Len() > 0 {
		sectionHeader("Flight Options")
		writeOffers(pdf, text, data.FlightData.BestFlights)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}

	return buf.Bytes(), nil
}

// writeMarkdown prints headings in bold and keeps list markers. Inline
// emphasis markers are dropped.
func writeMarkdown(pdf *gofpdf.Fpdf, text func(string) string, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			pdf.Ln(2)
			continue
		}

		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}

		if level > 0 {
			heading := stripEmphasis(strings.TrimSpace(trimmed[level:]))
			size := 13.0
			if level > 2 {
				size = 11
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.SetTextColor(13, 24, 37)
			pdf.MultiCell(contentWidth, 6, text(heading), "", "L", false)
			pdf.Ln(1)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)

		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if marker, rest, ok := listItem(trimmed); ok {
			pdf.SetX(marginLeft + float64(min(indent, 8)))
			pdf.MultiCell(contentWidth-float64(min(indent, 8)), 5, text(marker+" "+stripEmphasis(rest)), "", "L", false)
			continue
		}

		pdf.MultiCell(contentWidth, 5, text(stripEmphasis(trimmed)), "", "L", false)
	}
}

func listItem(line string) (marker, rest string, ok bool) {
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(line, prefix) {
			return "-", strings.TrimSpace(line[len(prefix):]), true
		}
	}

	dot := strings.Index(line, ". ")
	if dot > 0 && dot <= 3 && strings.Trim(line[:dot], "0123456789") == "" {
		return line[:dot+1], strings.TrimSpace(line[dot+2:]), true
	}

	return "", "", false
}

func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	if len(s) > 1 && strings.HasPrefix(s, "*") && strings.HasSuffix(s, "*") {
		s = s[1 : len(s)-1]
	}

	return s
}

func writeOffers(pdf *gofpdf.Fpdf, text func(string) string, offers []dto.FlightOffer) {
	widths := []float64{38, 24, 58, 22, 28}
	headers := []string{"Airline", "Flight", "Departure -> Arrival", "Duration", "Price"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i, offer := range offers {
		if i == maxOffersInDocument {
			break
		}

		airline, number, route := "-", "-", "-"
		if len(offer.Flights) > 0 {
			first := offer.Flights[0]
			last := offer.Flights[len(offer.Flights)-1]
			airline = first.Airline
			number = first.FlightNumber
			route = fmt.Sprintf("%s %s -> %s %s",
				first.DepartureAirport.ID, clock(first.DepartureAirport.Time),
				last.ArrivalAirport.ID, clock(last.ArrivalAirport.Time))
		}

		price := "-"
		if offer.Price > 0 {
			price = utils.FormatINR(int64(offer.Price))
		}

		cells := []string{airline, number, route, utils.ConvertMinutesToDuration(int64(offer.TotalDuration)), price}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 7, text(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// clock returns the HH:MM part of a "YYYY-MM-DD HH:MM" time.
func clock(t string) string {
	if _, after, ok := strings.Cut(t, " "); ok {
		return after
	}

	return t
}
