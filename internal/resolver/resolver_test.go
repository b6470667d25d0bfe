package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

type fakeConfigStore struct {
	mappings []*entity.FieldMappingConfig
	prompts  []*entity.PromptConfig
	lookups  int
}

func sameScope(a, b *uuid.UUID) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func (f *fakeConfigStore) FindActiveMapping(_ context.Context, orgID, formatID *uuid.UUID) (*entity.FieldMappingConfig, error) {
	f.lookups++
	for _, cfg := range f.mappings {
		if cfg.IsActive && sameScope(cfg.OrganizationID, orgID) && sameScope(cfg.FormatID, formatID) {
			return cfg, nil
		}
	}
	return nil, nil
}

func (f *fakeConfigStore) FindActivePrompt(_ context.Context, orgID, formatID *uuid.UUID, purpose constants.PromptPurpose) (*entity.PromptConfig, error) {
	for _, p := range f.prompts {
		if p.IsActive && p.Purpose == purpose && sameScope(p.OrganizationID, orgID) && sameScope(p.FormatID, formatID) {
			return p, nil
		}
	}
	return nil, nil
}

func mappingConfig(name string, orgID, formatID *uuid.UUID) *entity.FieldMappingConfig {
	return &entity.FieldMappingConfig{
		ID:             uuid.New(),
		OrganizationID: orgID,
		FormatID:       formatID,
		Name:           name,
		Mappings:       []entity.FieldMapping{{SourceField: "vendor_name", TargetField: "companyName"}},
		IsActive:       true,
	}
}

func TestResolveMapping_TierOrder(t *testing.T) {
	orgID, formatID := uuid.New(), uuid.New()
	specific := mappingConfig("specific", &orgID, &formatID)
	formatOnly := mappingConfig("format", nil, &formatID)
	company := mappingConfig("company", &orgID, nil)
	global := mappingConfig("global", nil, nil)

	store := &fakeConfigStore{mappings: []*entity.FieldMappingConfig{global, company, formatOnly, specific}}
	r := NewResolver(store, nil, nil)

	// peel tiers off one at a time, most specific first
	steps := []struct {
		tier constants.ResolutionTier
		want *entity.FieldMappingConfig
	}{
		{constants.TierSpecific, specific},
		{constants.TierFormat, formatOnly},
		{constants.TierCompany, company},
		{constants.TierGlobal, global},
	}
	for _, step := range steps {
		for i := 0; i < 3; i++ { // deterministic across repeated calls
			resolved, err := r.ResolveMapping(context.Background(), &orgID, &formatID)
			require.NoError(t, err)
			assert.Equal(t, step.tier, resolved.Tier)
			assert.Equal(t, step.want.ID, resolved.Config.ID)
		}
		step.want.IsActive = false
	}

	resolved, err := r.ResolveMapping(context.Background(), &orgID, &formatID)
	require.NoError(t, err)
	assert.Equal(t, constants.TierDefault, resolved.Tier)
	assert.Equal(t, "built-in default", resolved.Config.Name)
}

func TestResolveMapping_PartialScopes(t *testing.T) {
	orgID, formatID := uuid.New(), uuid.New()
	store := &fakeConfigStore{mappings: []*entity.FieldMappingConfig{
		mappingConfig("company", &orgID, nil),
		mappingConfig("format", nil, &formatID),
	}}
	r := NewResolver(store, nil, nil)

	resolved, err := r.ResolveMapping(context.Background(), &orgID, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.TierCompany, resolved.Tier)

	resolved, err = r.ResolveMapping(context.Background(), nil, &formatID)
	require.NoError(t, err)
	assert.Equal(t, constants.TierFormat, resolved.Tier)

	// no identifiers at all still resolves
	resolved, err = r.ResolveMapping(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.TierDefault, resolved.Tier)
}

func TestResolveMapping_ReadThroughCache(t *testing.T) {
	orgID := uuid.New()
	store := &fakeConfigStore{mappings: []*entity.FieldMappingConfig{mappingConfig("company", &orgID, nil)}}
	c := cache.New(time.Minute)
	r := NewResolver(store, c, nil)

	_, err := r.ResolveMapping(context.Background(), &orgID, nil)
	require.NoError(t, err)
	after := store.lookups

	_, err = r.ResolveMapping(context.Background(), &orgID, nil)
	require.NoError(t, err)
	assert.Equal(t, after, store.lookups, "second resolve must be served from cache")

	// a catalog write invalidates, forcing a re-read
	c.InvalidatePrefix("config:")
	_, err = r.ResolveMapping(context.Background(), &orgID, nil)
	require.NoError(t, err)
	assert.Greater(t, store.lookups, after)
}

func TestResolvePrompt_IndependentPurposes(t *testing.T) {
	orgID := uuid.New()
	extraction := &entity.PromptConfig{
		ID:             uuid.New(),
		OrganizationID: &orgID,
		Purpose:        constants.PurposeExtraction,
		Template:       "extract these fields: {{.Fields}}",
		IsActive:       true,
	}
	global := &entity.PromptConfig{
		ID:       uuid.New(),
		Purpose:  constants.PurposeClassification,
		Template: "classify this document",
		IsActive: true,
	}
	store := &fakeConfigStore{prompts: []*entity.PromptConfig{extraction, global}}
	r := NewResolver(store, nil, nil)

	prompts, err := r.ResolvePrompts(context.Background(), &orgID, nil)
	require.NoError(t, err)

	require.Contains(t, prompts, constants.PurposeExtraction)
	assert.Equal(t, constants.TierCompany, prompts[constants.PurposeExtraction].Tier)

	require.Contains(t, prompts, constants.PurposeClassification)
	assert.Equal(t, constants.TierGlobal, prompts[constants.PurposeClassification].Tier)

	// purposes with no stored prompt are absent, not errors
	assert.NotContains(t, prompts, constants.PurposeValidation)
	assert.NotContains(t, prompts, constants.PurposeIssuerIdentification)
}

func TestResolvePrompt_UnknownPurpose(t *testing.T) {
	r := NewResolver(&fakeConfigStore{}, nil, nil)
	_, err := r.ResolvePrompt(context.Background(), nil, nil, "SUMMARIZATION")
	assert.Error(t, err)
}

func TestDefaultMappingConfig(t *testing.T) {
	cfg := DefaultMappingConfig()
	assert.True(t, cfg.IsActive)

	// top-level and line-item outputs are separate namespaces
	targets := map[string]map[string]bool{}
	var lineItem int
	for _, m := range cfg.Mappings {
		level := "top"
		if m.IsLineItem {
			level = "line"
			lineItem++
		}
		if targets[level] == nil {
			targets[level] = map[string]bool{}
		}
		assert.False(t, targets[level][m.TargetField], "duplicate target %s", m.TargetField)
		targets[level][m.TargetField] = true
	}
	assert.True(t, targets["top"]["invoiceNumber"])
	assert.True(t, targets["top"]["companyName"])
	assert.Greater(t, lineItem, 0, "defaults must cover line items")
}
