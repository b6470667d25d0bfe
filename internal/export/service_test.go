package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

type fakeLister struct {
	terms []*entity.VocabularyTerm
	err   error
}

func (f *fakeLister) ListByFormat(ctx context.Context, formatID uuid.UUID) ([]*entity.VocabularyTerm, error) {
	return f.terms, f.err
}

func TestExportTermsXLSX(t *testing.T) {
	seen := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	lister := &fakeLister{terms: []*entity.VocabularyTerm{
		{
			RawText:         "Ocean Freight - FCL",
			NormalizedText:  "ocean freight fcl",
			Category:        constants.CategoryFreight,
			Status:          constants.TermStatusConfirmed,
			OccurrenceCount: 12,
			FirstSeen:       seen,
			LastSeen:        seen.AddDate(0, 0, 3),
			Confidence:      0.92,
		},
		{
			RawText:         "Peak Season Surcharge",
			NormalizedText:  "peak season surcharge",
			Category:        constants.CategorySurcharge,
			Status:          constants.TermStatusPending,
			OccurrenceCount: 1,
			FirstSeen:       seen,
			LastSeen:        seen,
			Confidence:      0.40,
		},
	}}

	svc := NewService(lister, nil)
	data, err := svc.ExportTermsXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Vocabulary")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Term", rows[0][0])
	assert.Equal(t, "Confidence", rows[0][7])

	assert.Equal(t, "Ocean Freight - FCL", rows[1][0])
	assert.Equal(t, "ocean freight fcl", rows[1][1])
	assert.Equal(t, "FREIGHT", rows[1][2])
	assert.Equal(t, "CONFIRMED", rows[1][3])
	assert.Equal(t, "12", rows[1][4])
	assert.Equal(t, "2026-03-10", rows[1][5])
	assert.Equal(t, "2026-03-13", rows[1][6])
	assert.Equal(t, "0.92", rows[1][7])

	assert.Equal(t, "PENDING", rows[2][3])
}

func TestExportTermsXLSX_Empty(t *testing.T) {
	svc := NewService(&fakeLister{}, nil)
	data, err := svc.ExportTermsXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Vocabulary")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 140))
	long := make([]byte, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'a')
	}
	got := truncate(string(long), 140)
	assert.Len(t, []rune(got), 140)
}
