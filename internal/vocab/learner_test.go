package vocab

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

type fakeTermStore struct {
	terms []*entity.VocabularyTerm
}

func (f *fakeTermStore) ListByFormat(_ context.Context, formatID uuid.UUID) ([]*entity.VocabularyTerm, error) {
	var out []*entity.VocabularyTerm
	for _, t := range f.terms {
		if t.FormatID == formatID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTermStore) Create(_ context.Context, term *entity.VocabularyTerm) (*entity.VocabularyTerm, error) {
	for _, existing := range f.terms {
		if existing.FormatID == term.FormatID && existing.NormalizedText == term.NormalizedText {
			return existing, nil
		}
	}
	term.ID = uuid.New()
	f.terms = append(f.terms, term)
	return term, nil
}

func (f *fakeTermStore) IncrementOccurrence(_ context.Context, id uuid.UUID, lastSeen time.Time) error {
	for _, t := range f.terms {
		if t.ID == id {
			t.OccurrenceCount++
			t.LastSeen = lastSeen
		}
	}
	return nil
}

func recordWithItems(items ...map[string]string) *entity.MappedRecord {
	return &entity.MappedRecord{
		DocumentID: uuid.New(),
		Fields:     map[string]string{},
		LineItems:  items,
	}
}

func TestLearn_NewTerm(t *testing.T) {
	store := &fakeTermStore{}
	learner := NewLearner(store, nil)
	formatID := uuid.New()

	result, err := learner.Learn(context.Background(),
		recordWithItems(map[string]string{"description": "Ocean Freight - FCL"}), formatID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordedNew)
	assert.Zero(t, result.RecordedSeen)

	require.Len(t, store.terms, 1)
	term := store.terms[0]
	assert.Equal(t, "Ocean Freight - FCL", term.RawText)
	assert.Equal(t, "ocean freight fcl", term.NormalizedText)
	assert.Equal(t, constants.CategoryFreight, term.Category)
	assert.Equal(t, constants.TermStatusPending, term.Status)
	assert.Equal(t, 1, term.OccurrenceCount)
}

func TestLearn_DedupNearDuplicate(t *testing.T) {
	store := &fakeTermStore{}
	learner := NewLearner(store, nil)
	formatID := uuid.New()

	_, err := learner.Learn(context.Background(),
		recordWithItems(map[string]string{"description": "ocean freight fcl"}), formatID)
	require.NoError(t, err)

	// one edit away, similarity above the dedup threshold
	result, err := learner.Learn(context.Background(),
		recordWithItems(map[string]string{"description": "ocean freight fc"}), formatID)
	require.NoError(t, err)
	assert.Zero(t, result.RecordedNew)
	assert.Equal(t, 1, result.RecordedSeen)

	require.Len(t, store.terms, 1)
	assert.Equal(t, 2, store.terms[0].OccurrenceCount)
	assert.Equal(t, "ocean freight fcl", store.terms[0].NormalizedText)
}

func TestLearn_DistinctTermCreatesRow(t *testing.T) {
	store := &fakeTermStore{}
	learner := NewLearner(store, nil)
	formatID := uuid.New()

	_, err := learner.Learn(context.Background(),
		recordWithItems(map[string]string{"description": "ocean freight fcl"}), formatID)
	require.NoError(t, err)

	result, err := learner.Learn(context.Background(),
		recordWithItems(map[string]string{"description": "customs clearance fee"}), formatID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordedNew)
	assert.Len(t, store.terms, 2)
}

func TestLearn_DuplicateWithinOneDocument(t *testing.T) {
	store := &fakeTermStore{}
	learner := NewLearner(store, nil)

	result, err := learner.Learn(context.Background(), recordWithItems(
		map[string]string{"description": "Fuel Surcharge"},
		map[string]string{"description": "fuel surcharge"},
	), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordedNew)
	assert.Len(t, store.terms, 1)
}

func TestLearn_TopLevelTermBearingFields(t *testing.T) {
	store := &fakeTermStore{}
	learner := NewLearner(store, nil)

	record := &entity.MappedRecord{
		DocumentID: uuid.New(),
		Fields: map[string]string{
			"serviceType":   "Air Freight",
			"invoiceNumber": "INV-1", // not term-bearing
		},
	}
	result, err := learner.Learn(context.Background(), record, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordedNew)
	require.Len(t, store.terms, 1)
	assert.Equal(t, "air freight", store.terms[0].NormalizedText)
}

func TestLearn_FormatScoped(t *testing.T) {
	store := &fakeTermStore{}
	learner := NewLearner(store, nil)
	formatA, formatB := uuid.New(), uuid.New()

	_, err := learner.Learn(context.Background(),
		recordWithItems(map[string]string{"description": "ocean freight fcl"}), formatA)
	require.NoError(t, err)

	// identical term under another format is a separate row
	result, err := learner.Learn(context.Background(),
		recordWithItems(map[string]string{"description": "ocean freight fcl"}), formatB)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordedNew)
	assert.Len(t, store.terms, 2)
}

func TestLearn_EmptyAndNonDescriptionFieldsIgnored(t *testing.T) {
	store := &fakeTermStore{}
	learner := NewLearner(store, nil)

	result, err := learner.Learn(context.Background(), recordWithItems(
		map[string]string{"description": "", "quantity": "3", "unitPrice": "10.00"},
	), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, result.RecordedNew)
	assert.Zero(t, result.RecordedSeen)
	assert.Empty(t, store.terms)
}
