package renderer

import (
	"fmt"
	"io"

	"github.com/aesfinancelab/autogaap"
	"github.com/go-pdf/fpdf"
)

// JournalPDF writes the journal entries as a PDF document: one block per
// entry with its number, date and description, followed by one line per
// line item.
func JournalPDF(w io.Writer, entries []autogaap.JournalEntry) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFontSize(12)

	y := 16.0
	for i, entry := range entries {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(12, y, fmt.Sprintf("Entry #: %s", entry.JournalNumber))
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(12, y+6, fmt.Sprintf("Date: %s", entry.PostDate))
		pdf.Text(12, y+12, fmt.Sprintf("Description: %s", entry.Description))
		y += 20

		for _, li := range entry.Lines {
			pdf.Text(16, y, fmt.Sprintf("%s | Debit: %s | Credit: %s", li.Name(), li.Debit.Fixed2(), li.Credit.Fixed2()))
			y += 6
		}
		y += 2

		if i < len(entries)-1 && y > 260 {
			pdf.AddPage()
			y = 20
		}
	}

	return pdf.Output(w)
}
