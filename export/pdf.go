package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	pageWidth    = 210.0
	contentWidth = pageWidth - 2*20
	lineFactor   = 0.4 // mm per point of font size
	lineGap      = 5.0
	bannerHeight = 40.0
	footerOffset = 10.0
	qrSize       = 30.0
)

// RenderPDF lays the trip out and returns the finished document. Footers
// are stamped once the page count is known.
func RenderPDF(d Data) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(A4.Margin, A4.Margin, A4.Margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	setFont := func(l Line) {
		style := ""
		if l.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, l.Size)
	}
	wrap := func(l Line) []string {
		setFont(l)
		lines := pdf.SplitText(tr(l.Text), contentWidth-l.Indent)
		if len(lines) == 0 {
			lines = []string{""}
		}
		return lines
	}
	measure := func(l Line) float64 {
		return float64(len(wrap(l)))*l.Size*lineFactor + lineGap
	}

	pages := Paginate(Build(d), A4, measure)
	for i, page := range pages {
		pdf.AddPage()
		y := A4.Margin
		if i == 0 {
			if err := drawBanner(pdf, tr, d.ShareURL); err != nil {
				return nil, err
			}
			y = A4.FirstPageTop
		}
		for _, b := range page.Blocks {
			for _, l := range b.Lines {
				lines := wrap(l)
				r, g, bl := hexRGB(l.Color)
				pdf.SetTextColor(r, g, bl)
				lh := l.Size * lineFactor
				for j, s := range lines {
					pdf.Text(A4.Margin+l.Indent, y+float64(j)*lh, s)
				}
				y += float64(len(lines))*lh + lineGap
			}
			y += b.SpaceAfter
		}
	}

	total := pdf.PageCount()
	for i := 1; i <= total; i++ {
		pdf.SetPage(i)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.Text(A4.Margin, A4.PageHeight-footerOffset, tr(Footer(d, i, total)))
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return pdf, nil
}

// WritePDF renders the trip and writes the PDF bytes to w.
func WritePDF(w io.Writer, d Data) error {
	pdf, err := RenderPDF(d)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// Footer is the line printed at the bottom of page i of total.
func Footer(d Data, page, total int) string {
	return fmt.Sprintf("Generated on %s | Page %d of %d | NileNavigator.com",
		d.GeneratedAt.Format("2006-01-02"), page, total)
}

func drawBanner(pdf *gofpdf.Fpdf, tr func(string) string, shareURL string) error {
	pdf.SetFillColor(41, 128, 185)
	pdf.Rect(0, 0, pageWidth, bannerHeight, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(A4.Margin, 25, "NileNavigator")
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(A4.Margin, 35, tr("Your Personalized Egypt Itinerary"))

	if shareURL == "" {
		return nil
	}
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("share qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("share-qr", pageWidth-A4.Margin-qrSize, 5, qrSize, qrSize, false, opts, 0, "")
	return nil
}

func hexRGB(s string) (int, int, int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
