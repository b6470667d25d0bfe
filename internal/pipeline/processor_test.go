package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/format"
	"github.com/laitim2001/ai-document-extraction/internal/issuer"
	"github.com/laitim2001/ai-document-extraction/internal/mapping"
	"github.com/laitim2001/ai-document-extraction/internal/resolver"
	"github.com/laitim2001/ai-document-extraction/internal/similarity"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
	"github.com/laitim2001/ai-document-extraction/internal/vocab"
)

// in-memory catalog backing every store interface the pipeline needs

type catalog struct {
	orgs     []*entity.Organization
	formats  []*entity.DocumentFormat
	mappings []*entity.FieldMappingConfig
	terms    []*entity.VocabularyTerm
}

func (c *catalog) ListActive(_ context.Context) ([]*entity.Organization, error) {
	return c.orgs, nil
}

func (c *catalog) Create(_ context.Context, org *entity.Organization) (*entity.Organization, error) {
	for _, existing := range c.orgs {
		if existing.NormalizedName == org.NormalizedName {
			return existing, nil
		}
	}
	org.ID = uuid.New()
	c.orgs = append(c.orgs, org)
	return org, nil
}

type formatCatalog struct{ c *catalog }

func (f formatCatalog) ListByOrganization(_ context.Context, orgID uuid.UUID) ([]*entity.DocumentFormat, error) {
	var out []*entity.DocumentFormat
	for _, fm := range f.c.formats {
		if fm.OrganizationID == orgID {
			out = append(out, fm)
		}
	}
	return out, nil
}

func (f formatCatalog) Create(_ context.Context, fm *entity.DocumentFormat) (*entity.DocumentFormat, error) {
	for _, existing := range f.c.formats {
		if existing.OrganizationID == fm.OrganizationID && existing.Fingerprint == fm.Fingerprint {
			return existing, nil
		}
	}
	fm.ID = uuid.New()
	f.c.formats = append(f.c.formats, fm)
	return fm, nil
}

func (f formatCatalog) IncrementMatchCount(_ context.Context, id uuid.UUID) error {
	for _, fm := range f.c.formats {
		if fm.ID == id {
			fm.MatchCount++
		}
	}
	return nil
}

type configCatalog struct{ c *catalog }

func sameScope(a, b *uuid.UUID) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func (f configCatalog) FindActiveMapping(_ context.Context, orgID, formatID *uuid.UUID) (*entity.FieldMappingConfig, error) {
	for _, cfg := range f.c.mappings {
		if cfg.IsActive && sameScope(cfg.OrganizationID, orgID) && sameScope(cfg.FormatID, formatID) {
			return cfg, nil
		}
	}
	return nil, nil
}

func (f configCatalog) FindActivePrompt(_ context.Context, _, _ *uuid.UUID, _ constants.PromptPurpose) (*entity.PromptConfig, error) {
	return nil, nil
}

type termCatalog struct{ c *catalog }

func (f termCatalog) ListByFormat(_ context.Context, formatID uuid.UUID) ([]*entity.VocabularyTerm, error) {
	var out []*entity.VocabularyTerm
	for _, t := range f.c.terms {
		if t.FormatID == formatID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f termCatalog) Create(_ context.Context, term *entity.VocabularyTerm) (*entity.VocabularyTerm, error) {
	for _, existing := range f.c.terms {
		if existing.FormatID == term.FormatID && existing.NormalizedText == term.NormalizedText {
			return existing, nil
		}
	}
	term.ID = uuid.New()
	f.c.terms = append(f.c.terms, term)
	return term, nil
}

func (f termCatalog) IncrementOccurrence(_ context.Context, id uuid.UUID, lastSeen time.Time) error {
	for _, t := range f.c.terms {
		if t.ID == id {
			t.OccurrenceCount++
			t.LastSeen = lastSeen
		}
	}
	return nil
}

func newProcessor(c *catalog) *Processor {
	return NewProcessor(
		issuer.NewMatcher(c, nil, nil),
		format.NewMatcher(formatCatalog{c}, nil, nil),
		resolver.NewResolver(configCatalog{c}, nil, nil),
		mapping.NewApplier(transform.NewEngine(), nil),
		vocab.NewLearner(termCatalog{c}, nil),
		nil,
	)
}

func TestProcess_UnknownIssuerDefaultConfig(t *testing.T) {
	c := &catalog{}
	p := newProcessor(c)

	raw := &entity.RawExtraction{
		DocumentID:       uuid.New(),
		Fields:           map[string]any{"description": "Ocean Freight - FCL"},
		IssuerName:       "Evergreen Marine",
		IssuerConfidence: 0.9,
		HeaderText:       "EVERGREEN MARINE INVOICE",
	}
	result, err := p.Process(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, constants.MatchCreated, result.Issuer.Method)
	assert.Equal(t, constants.MatchNew, result.Format.Method)
	assert.Equal(t, constants.TierDefault, result.Record.Tier)
	assert.Equal(t, "Ocean Freight - FCL", result.Record.Fields["description"])

	assert.Equal(t, 1, result.Terms.RecordedNew)
	require.Len(t, c.terms, 1)
	assert.Equal(t, "ocean freight fcl", c.terms[0].NormalizedText)
	assert.Equal(t, constants.CategoryFreight, c.terms[0].Category)
	assert.Equal(t, constants.TermStatusPending, c.terms[0].Status)
}

func TestProcess_CompanyTierConfig(t *testing.T) {
	acme := &entity.Organization{
		ID:             uuid.New(),
		Name:           "Acme Logistics",
		Code:           "ACME",
		NormalizedName: similarity.Normalize("Acme Logistics"),
		IsActive:       true,
	}
	c := &catalog{
		orgs: []*entity.Organization{acme},
		mappings: []*entity.FieldMappingConfig{{
			ID:             uuid.New(),
			OrganizationID: &acme.ID,
			Name:           "acme company config",
			Mappings: []entity.FieldMapping{{
				SourceField: "vendor_name", TargetField: "companyName", Transform: transform.KindTrim,
			}},
			IsActive: true,
		}},
	}
	p := newProcessor(c)

	raw := &entity.RawExtraction{
		DocumentID:       uuid.New(),
		Fields:           map[string]any{"vendor_name": "  Acme Co  "},
		IssuerName:       "Acme Logistics",
		IssuerConfidence: 0.92,
	}
	result, err := p.Process(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, constants.TierCompany, result.Record.Tier)
	assert.Equal(t, "Acme Co", result.Record.Fields["companyName"])
	require.Len(t, result.Record.Audit, 1)
	assert.Equal(t, entity.AuditSuccess, result.Record.Audit[0].Status)
	assert.Equal(t, constants.DocumentIdentified, result.Record.Status)
}

func TestProcess_ExactIssuerNoNewRow(t *testing.T) {
	dhl := &entity.Organization{
		ID:             uuid.New(),
		Name:           "DHL Express",
		Code:           "DHL",
		NormalizedName: similarity.Normalize("DHL Express"),
		IsActive:       true,
	}
	c := &catalog{orgs: []*entity.Organization{dhl}}
	p := newProcessor(c)

	raw := &entity.RawExtraction{
		DocumentID:       uuid.New(),
		Fields:           map[string]any{},
		IssuerName:       "DHL Express",
		IssuerConfidence: 0.95,
		HeaderText:       "DHL EXPRESS",
	}
	result, err := p.Process(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, constants.MatchExact, result.Issuer.Method)
	assert.Equal(t, 1.0, result.Issuer.Confidence)
	assert.Equal(t, dhl.ID, result.Issuer.Organization.ID)
	assert.Len(t, c.orgs, 1, "exact match must not create a row")
	assert.Equal(t, &dhl.ID, result.Record.OrganizationID)
}

func TestProcess_UnresolvedIssuerDegrades(t *testing.T) {
	c := &catalog{}
	p := newProcessor(c)

	raw := &entity.RawExtraction{
		DocumentID:       uuid.New(),
		Fields:           map[string]any{"vendor_name": "Illegible Scan Ltd"},
		IssuerName:       "Illegible Scan Ltd",
		IssuerConfidence: 0.2,
	}
	result, err := p.Process(context.Background(), raw)
	require.NoError(t, err, "an unresolved issuer degrades, it does not fail")

	assert.Equal(t, constants.DocumentUnidentified, result.Record.Status)
	assert.Equal(t, constants.TierDefault, result.Record.Tier)
	assert.Nil(t, result.Issuer)
	assert.Nil(t, result.Format)
	assert.Empty(t, c.orgs)
	assert.Empty(t, c.terms, "no format, no term learning")
	// the record is still complete
	assert.Equal(t, "Illegible Scan Ltd", result.Record.Fields["companyName"])
}

func TestProcess_SecondDocumentReusesCatalog(t *testing.T) {
	c := &catalog{}
	p := newProcessor(c)

	raw := func() *entity.RawExtraction {
		return &entity.RawExtraction{
			DocumentID:       uuid.New(),
			Fields:           map[string]any{"description": "Fuel Surcharge"},
			IssuerName:       "Hapag-Lloyd",
			IssuerConfidence: 0.9,
			HeaderText:       "HAPAG-LLOYD INVOICE",
			LogoSignature:    "hl-logo",
		}
	}

	first, err := p.Process(context.Background(), raw())
	require.NoError(t, err)
	second, err := p.Process(context.Background(), raw())
	require.NoError(t, err)

	assert.Equal(t, constants.MatchCreated, first.Issuer.Method)
	assert.Equal(t, constants.MatchExact, second.Issuer.Method)
	assert.Equal(t, constants.MatchNew, first.Format.Method)
	assert.Equal(t, constants.MatchExact, second.Format.Method)
	assert.Len(t, c.orgs, 1)
	assert.Len(t, c.formats, 1)

	assert.Equal(t, 1, first.Terms.RecordedNew)
	assert.Equal(t, 1, second.Terms.RecordedSeen)
	require.Len(t, c.terms, 1)
	assert.Equal(t, 2, c.terms[0].OccurrenceCount)
}
