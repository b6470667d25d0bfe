package format

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

type fakeFormatStore struct {
	mu      sync.Mutex
	formats []*entity.DocumentFormat
	created int
}

func (f *fakeFormatStore) ListByOrganization(_ context.Context, orgID uuid.UUID) ([]*entity.DocumentFormat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.DocumentFormat
	for _, fm := range f.formats {
		if fm.OrganizationID == orgID {
			out = append(out, fm)
		}
	}
	return out, nil
}

func (f *fakeFormatStore) Create(_ context.Context, format *entity.DocumentFormat) (*entity.DocumentFormat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// (organization, fingerprint) uniqueness: the loser of a race gets
	// the winner's row back.
	for _, existing := range f.formats {
		if existing.OrganizationID == format.OrganizationID && existing.Fingerprint == format.Fingerprint {
			return existing, nil
		}
	}
	format.ID = uuid.New()
	f.formats = append(f.formats, format)
	f.created++
	return format, nil
}

func (f *fakeFormatStore) IncrementMatchCount(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fm := range f.formats {
		if fm.ID == id {
			fm.MatchCount++
		}
	}
	return nil
}

func storedFormat(orgID uuid.UUID, name, header, logo string) *entity.DocumentFormat {
	return &entity.DocumentFormat{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           name,
		HeaderPattern:  header,
		LogoSignature:  logo,
		Fingerprint:    Features{HeaderText: header, LogoSignature: logo}.Fingerprint(),
		IsActive:       true,
	}
}

func TestClassify_ExactMatch(t *testing.T) {
	orgID := uuid.New()
	known := storedFormat(orgID, "Format 1", "DHL EXPRESS COMMERCIAL INVOICE", "logo-sig-abc")
	store := &fakeFormatStore{formats: []*entity.DocumentFormat{known}}
	m := NewMatcher(store, nil, nil)

	match, err := m.Classify(context.Background(), orgID, Features{
		HeaderText:    "dhl express commercial invoice",
		LogoSignature: "logo-sig-abc",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, known.ID, match.Format.ID)
	assert.Equal(t, constants.MatchExact, match.Method)
	assert.Equal(t, 1.0, match.Confidence)
	assert.Equal(t, 1, known.MatchCount)
	assert.Zero(t, store.created)
}

func TestClassify_ExactSingleSignalFallsThrough(t *testing.T) {
	// one matching signal scores 0.5, below the 0.8 bar, so the
	// fuzzy strategy decides instead.
	orgID := uuid.New()
	known := storedFormat(orgID, "Format 1", "ACME FREIGHT INVOICE", "logo-1")
	store := &fakeFormatStore{formats: []*entity.DocumentFormat{known}}
	m := NewMatcher(store, nil, nil)

	match, err := m.Classify(context.Background(), orgID, Features{
		HeaderText:    "ACME FREIGHT INVOICE",
		LogoSignature: "completely-different",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, known.ID, match.Format.ID)
	assert.Equal(t, constants.MatchFuzzy, match.Method)
}

func TestClassify_FuzzyMatch(t *testing.T) {
	orgID := uuid.New()
	known := storedFormat(orgID, "Format 1", "MAERSK LINE OCEAN BILL OF LADING", "")
	store := &fakeFormatStore{formats: []*entity.DocumentFormat{known}}
	m := NewMatcher(store, nil, nil)

	match, err := m.Classify(context.Background(), orgID, Features{
		HeaderText: "MAERSK LINES OCEAN BILL OF LADING",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, known.ID, match.Format.ID)
	assert.Equal(t, constants.MatchFuzzy, match.Method)
	assert.GreaterOrEqual(t, match.Confidence, constants.FormatMatchThreshold)
}

func TestClassify_FeatureMatch(t *testing.T) {
	orgID := uuid.New()
	known := &entity.DocumentFormat{
		ID:                uuid.New(),
		OrganizationID:    orgID,
		Name:              "Format 1",
		LayoutFingerprint: "3col-header-table-footer",
		DetectedFields:    []string{"invoice_no", "date", "total", "vendor", "currency"},
		Fingerprint:       "fp-known",
		IsActive:          true,
	}
	store := &fakeFormatStore{formats: []*entity.DocumentFormat{known}}
	m := NewMatcher(store, nil, nil)

	match, err := m.Classify(context.Background(), orgID, Features{
		LayoutFingerprint: "3col-header-table-footer",
		DetectedFields:    []string{"Invoice_No", "Date", "Total", "Vendor"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, known.ID, match.Format.ID)
	assert.Equal(t, constants.MatchFeature, match.Method)
	// layout identical (0.4) + 4/5 overlap (0.6*0.8)
	assert.InDelta(t, 0.88, match.Confidence, 0.001)
}

func TestClassify_AutoCreate(t *testing.T) {
	orgID := uuid.New()
	store := &fakeFormatStore{}
	m := NewMatcher(store, nil, nil)

	docID := uuid.New()
	match, err := m.Classify(context.Background(), orgID, Features{
		HeaderText:     "NEVER SEEN BEFORE HEADER",
		DetectedFields: []string{"a", "b"},
	}, &docID)
	require.NoError(t, err)
	assert.Equal(t, constants.MatchNew, match.Method)
	assert.Equal(t, 1.0, match.Confidence)
	assert.Equal(t, "Format 1", match.Format.Name)
	assert.True(t, match.Format.AutoCreated)
	assert.Equal(t, &docID, match.Format.SourceDocumentID)
	assert.Equal(t, 1, store.created)

	// a second organization gets its own counter
	otherOrg := uuid.New()
	match2, err := m.Classify(context.Background(), otherOrg, Features{HeaderText: "X"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Format 1", match2.Format.Name)
}

func TestClassify_AutoCreate_RaceSafe(t *testing.T) {
	orgID := uuid.New()
	store := &fakeFormatStore{}
	m := NewMatcher(store, nil, nil)
	features := Features{HeaderText: "RACE HEADER", LogoSignature: "race-logo"}

	var wg sync.WaitGroup
	results := make([]*Match, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			match, err := m.Classify(context.Background(), orgID, features, nil)
			require.NoError(t, err)
			results[i] = match
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.created, "exactly one row under two concurrent identical calls")
	assert.Equal(t, results[0].Format.ID, results[1].Format.ID)
}

func TestClassify_NoCrossOrganizationMatching(t *testing.T) {
	orgA, orgB := uuid.New(), uuid.New()
	known := storedFormat(orgA, "Format 1", "SHARED HEADER", "shared-logo")
	store := &fakeFormatStore{formats: []*entity.DocumentFormat{known}}
	m := NewMatcher(store, nil, nil)

	match, err := m.Classify(context.Background(), orgB, Features{
		HeaderText:    "SHARED HEADER",
		LogoSignature: "shared-logo",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.MatchNew, match.Method, "fingerprints are scoped to the owning organization")
	assert.NotEqual(t, known.ID, match.Format.ID)
}

func TestFieldOverlap(t *testing.T) {
	assert.Equal(t, 1.0, fieldOverlap([]string{"a", "b"}, []string{"B", "A"}))
	assert.Equal(t, 0.0, fieldOverlap([]string{"a"}, []string{"b"}))
	assert.Equal(t, 0.0, fieldOverlap(nil, []string{"a"}))
	assert.InDelta(t, 0.5, fieldOverlap([]string{"a", "b", "c"}, []string{"a", "b", "d"}), 0.001)
}
