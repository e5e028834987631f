package services

import (
	"bytes"
	"fmt"
	"strings"

	"booststudio/internal/domain"
	"booststudio/internal/domain/models"
	"booststudio/internal/repositories"
	"booststudio/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the quote (devis) PDF handed to clients.
type DocsService struct {
	ReservationRepo repositories.ReservationRepository
	RequestID       string
}

// GenerateQuotePDF builds the devis for one reservation and returns the bytes
// plus a download filename.
func (s DocsService) GenerateQuotePDF(id string) ([]byte, string, error) {
	res, err := s.ReservationRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}

	quote, err := domain.ComputeQuote(res.ServiceType, res.Location, res.Duration)
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "docs", "generate_quote_pdf", "reservation_id="+id)
	return buildQuotePDF(res, quote)
}

func buildQuotePDF(res models.Reservation, quote domain.Quote) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Devis", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DEVIS - BOOST STUDIO")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", res.ID),
		fmt.Sprintf("Client         : %s", safe(res.FullName, "-")),
		fmt.Sprintf("Telephone      : %s", safe(res.Phone, "-")),
		fmt.Sprintf("Prestation     : %s", string(res.ServiceType)),
		fmt.Sprintf("Lieu           : %s", string(res.Location)),
		fmt.Sprintf("Date           : %s", safe(res.DateTime, "-")),
		fmt.Sprintf("Duree          : %d h", res.Duration),
		fmt.Sprintf("Statut         : %s", string(res.Status)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Tarification")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 12)
	pricing := []string{
		fmt.Sprintf("Tarif horaire  : %.0f", quote.BaseRate),
		fmt.Sprintf("Multiplicateur : x%.1f", quote.LocationMultiplier),
		fmt.Sprintf("Duree          : %d h", quote.Duration),
	}
	for _, line := range pricing {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, fmt.Sprintf("TOTAL          : %.0f FCFA", quote.Total))
	pdf.Ln(12)

	if strings.TrimSpace(res.Comments) != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Commentaires: "+res.Comments, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "échec de génération du PDF", Err: err}
	}

	filename := fmt.Sprintf("devis-%s.pdf", res.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
