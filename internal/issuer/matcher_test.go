package issuer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/similarity"
)

type fakeOrgStore struct {
	orgs    []*entity.Organization
	created []*entity.Organization
	listErr error
}

func (f *fakeOrgStore) ListActive(_ context.Context) ([]*entity.Organization, error) {
	return f.orgs, f.listErr
}

func (f *fakeOrgStore) Create(_ context.Context, org *entity.Organization) (*entity.Organization, error) {
	// lost-race semantics: an existing row with the same normalized
	// identity wins.
	for _, existing := range f.orgs {
		if existing.NormalizedName == org.NormalizedName {
			return existing, nil
		}
	}
	org.ID = uuid.New()
	f.orgs = append(f.orgs, org)
	f.created = append(f.created, org)
	return org, nil
}

func org(name, code string, aliases ...string) *entity.Organization {
	return &entity.Organization{
		ID:             uuid.New(),
		Name:           name,
		Code:           code,
		NormalizedName: similarity.Normalize(name),
		Aliases:        aliases,
		IsActive:       true,
	}
}

func TestIdentify_ExactMatch(t *testing.T) {
	dhl := org("DHL Express", "DHL", "DHL International")
	store := &fakeOrgStore{orgs: []*entity.Organization{org("FedEx", "FDX"), dhl}}
	m := NewMatcher(store, nil, nil)

	tests := []struct {
		name  string
		input string
	}{
		{name: "canonical name", input: "DHL Express"},
		{name: "case insensitive", input: "dhl express"},
		{name: "punctuation insensitive", input: "DHL - Express,"},
		{name: "code", input: "DHL"},
		{name: "alias", input: "DHL International"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := m.Identify(context.Background(), tt.input, 0.95, nil)
			require.NoError(t, err)
			assert.Equal(t, dhl.ID, match.Organization.ID)
			assert.Equal(t, constants.MatchExact, match.Method)
			assert.Equal(t, 1.0, match.Confidence)
		})
	}
	assert.Empty(t, store.created, "exact match must not create rows")
}

func TestIdentify_FuzzyMatch(t *testing.T) {
	maersk := org("Maersk Line", "MAERSK")
	store := &fakeOrgStore{orgs: []*entity.Organization{maersk}}
	m := NewMatcher(store, nil, nil)

	match, err := m.Identify(context.Background(), "Maersk Lines", 0.9, nil)
	require.NoError(t, err)
	assert.Equal(t, maersk.ID, match.Organization.ID)
	assert.Equal(t, constants.MatchFuzzy, match.Method)
	assert.GreaterOrEqual(t, match.Confidence, constants.IssuerMatchThreshold)
	assert.Less(t, match.Confidence, 1.0)
}

func TestIdentify_AutoCreate(t *testing.T) {
	store := &fakeOrgStore{}
	m := NewMatcher(store, nil, nil)
	m.now = func() time.Time { return time.Date(2024, 12, 18, 10, 30, 0, 0, time.UTC) }

	docID := uuid.New()
	match, err := m.Identify(context.Background(), "Nippon Cargo Airlines", 0.88, &docID)
	require.NoError(t, err)
	assert.Equal(t, constants.MatchCreated, match.Method)
	assert.Equal(t, 0.88, match.Confidence)

	require.Len(t, store.created, 1)
	created := store.created[0]
	assert.Equal(t, "Nippon Cargo Airlines", created.Name)
	assert.Equal(t, "NCA-241218103000", created.Code)
	assert.True(t, created.AutoCreated)
	assert.Equal(t, &docID, created.SourceDocumentID)
}

func TestIdentify_AutoCreate_LostRace(t *testing.T) {
	winner := org("Nippon Cargo Airlines", "NCA")
	store := &fakeOrgStore{}
	m := NewMatcher(store, nil, nil)

	// simulate the winner landing between our lookup and create
	store.orgs = []*entity.Organization{}
	first, err := m.Identify(context.Background(), "Nippon Cargo Airlines", 0.9, nil)
	require.NoError(t, err)

	store.orgs = []*entity.Organization{winner}
	store.created = nil
	// second identify now exact-matches the surviving row
	second, err := m.Identify(context.Background(), "Nippon Cargo Airlines", 0.9, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.Organization.ID, second.Organization.ID)
	assert.Empty(t, store.created)
}

func TestIdentify_Unresolved(t *testing.T) {
	store := &fakeOrgStore{orgs: []*entity.Organization{org("FedEx", "FDX")}}
	m := NewMatcher(store, nil, nil)

	_, err := m.Identify(context.Background(), "Completely Unknown Logistics", 0.4, nil)
	var unresolved *common.UnresolvedIssuerError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "Completely Unknown Logistics", unresolved.Name)
	assert.Less(t, unresolved.BestScore, constants.IssuerMatchThreshold)
	assert.Empty(t, store.created, "low recognizer confidence must not create rows")
}

func TestIdentify_StoreErrorIsNotUnresolved(t *testing.T) {
	// read failures must stay distinguishable from "no match": callers
	// map unresolved to not-found and everything else to internal
	listErr := errors.New("connection refused")
	store := &fakeOrgStore{listErr: listErr}
	m := NewMatcher(store, nil, nil)

	_, err := m.Identify(context.Background(), "DHL Express", 0.95, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)
	var unresolved *common.UnresolvedIssuerError
	assert.False(t, errors.As(err, &unresolved))
}

func TestIdentify_EmptyName(t *testing.T) {
	m := NewMatcher(&fakeOrgStore{}, nil, nil)
	_, err := m.Identify(context.Background(), "   ", 0.99, nil)
	var unresolved *common.UnresolvedIssuerError
	assert.True(t, errors.As(err, &unresolved))
}

func TestIdentify_CacheInvalidatedOnCreate(t *testing.T) {
	store := &fakeOrgStore{}
	c := cache.New(time.Minute)
	m := NewMatcher(store, c, nil)

	// prime the candidate cache
	_, err := m.Identify(context.Background(), "First Forwarder", 0.9, nil)
	require.NoError(t, err)

	// the create above must have evicted the candidate list, so the
	// next call sees the new row instead of a stale empty list
	match, err := m.Identify(context.Background(), "First Forwarder", 0.9, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.MatchExact, match.Method)
	assert.Len(t, store.created, 1)
}

func TestGenerateCode_NonLatin(t *testing.T) {
	m := NewMatcher(&fakeOrgStore{}, nil, nil)
	m.now = func() time.Time { return time.Date(2024, 12, 18, 10, 30, 0, 0, time.UTC) }

	code := m.generateCode("日本通運株式会社")
	assert.Equal(t, "日本通-241218103000", code)

	code = m.generateCode("Kuehne + Nagel")
	assert.Equal(t, "KN-241218103000", code)
}
