// Package export produces XLSX workbooks for the review surface.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// TermLister is the slice of the term catalog the exporter reads.
type TermLister interface {
	ListByFormat(ctx context.Context, formatID uuid.UUID) ([]*entity.VocabularyTerm, error)
}

// Service is a tiny façade over the term repository that produces XLSX
// bytes for reviewers working outside the admin UI.
type Service struct {
	terms  TermLister
	logger *slog.Logger
}

func NewService(terms TermLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{terms: terms, logger: logger}
}

// ExportTermsXLSX returns a workbook with every vocabulary term of one
// format, ordered as the repository returns them (first seen first).
func (s *Service) ExportTermsXLSX(ctx context.Context, formatID uuid.UUID) ([]byte, error) {
	start := time.Now()

	terms, err := s.terms.ListByFormat(ctx, formatID)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Vocabulary"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defaultIndex, _ := f.GetSheetIndex("Sheet1"); defaultIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Term",
		"Normalized",
		"Category",
		"Status",
		"Occurrences",
		"First Seen",
		"Last Seen",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, term := range terms {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, truncate(term.RawText, 140))
		write(2, term.NormalizedText)
		write(3, string(term.Category))
		write(4, string(term.Status))
		write(5, term.OccurrenceCount)
		write(6, term.FirstSeen.Format("2006-01-02"))
		write(7, term.LastSeen.Format("2006-01-02"))
		write(8, fmt.Sprintf("%.2f", term.Confidence))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 36)
	_ = f.SetColWidth(sheet, "C", "D", 18)
	_ = f.SetColWidth(sheet, "E", "E", 12)
	_ = f.SetColWidth(sheet, "F", "G", 14)
	_ = f.SetColWidth(sheet, "H", "H", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"format_id", formatID.String(),
		"rows", len(terms),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
