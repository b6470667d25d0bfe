// Package resolver picks the effective field-mapping and prompt
// configuration for a (organization, format) pair through a fixed
// specificity hierarchy.
package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// ConfigStore looks up stored configs by exact scope. A nil orgID or
// formatID means "unscoped on that axis", so the global tier is the
// (nil, nil) lookup. Implementations return (nil, nil) when no active
// row matches and break priority ties by highest priority, then most
// recently updated.
type ConfigStore interface {
	FindActiveMapping(ctx context.Context, orgID, formatID *uuid.UUID) (*entity.FieldMappingConfig, error)
	FindActivePrompt(ctx context.Context, orgID, formatID *uuid.UUID, purpose constants.PromptPurpose) (*entity.PromptConfig, error)
}

// ResolvedConfig is a mapping config plus the tier it was found at.
// The tier is persisted downstream for audit, not just debugging.
type ResolvedConfig struct {
	Config *entity.FieldMappingConfig
	Tier   constants.ResolutionTier
}

// ResolvedPrompt is a prompt config plus the tier it was found at.
type ResolvedPrompt struct {
	Prompt *entity.PromptConfig
	Tier   constants.ResolutionTier
}

// Resolver resolves configs with a read-through TTL cache. Catalog
// writers invalidate the "config:" key prefix synchronously.
type Resolver struct {
	store  ConfigStore
	cache  *cache.TTLCache
	logger *slog.Logger
}

func NewResolver(store ConfigStore, c *cache.TTLCache, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, cache: c, logger: logger}
}

// scope is one tier's lookup shape.
type scope struct {
	tier   constants.ResolutionTier
	orgID  *uuid.UUID
	format *uuid.UUID
}

// scopes returns the tiers to try, most specific first, limited to the
// axes the caller actually has.
func scopes(orgID, formatID *uuid.UUID) []scope {
	out := make([]scope, 0, 4)
	if orgID != nil && formatID != nil {
		out = append(out, scope{constants.TierSpecific, orgID, formatID})
	}
	if formatID != nil {
		out = append(out, scope{constants.TierFormat, nil, formatID})
	}
	if orgID != nil {
		out = append(out, scope{constants.TierCompany, orgID, nil})
	}
	return append(out, scope{constants.TierGlobal, nil, nil})
}

func scopeKey(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

func mappingCacheKey(orgID, formatID *uuid.UUID) string {
	return fmt.Sprintf("config:mapping:%s:%s", scopeKey(orgID), scopeKey(formatID))
}

func promptCacheKey(orgID, formatID *uuid.UUID, purpose constants.PromptPurpose) string {
	return fmt.Sprintf("config:prompt:%s:%s:%s", scopeKey(orgID), scopeKey(formatID), purpose)
}

// ResolveMapping returns the effective mapping config for the pair.
// It never fails for lack of configuration: when no stored tier hits,
// the built-in default set is returned at the "default" tier.
func (r *Resolver) ResolveMapping(ctx context.Context, orgID, formatID *uuid.UUID) (*ResolvedConfig, error) {
	key := mappingCacheKey(orgID, formatID)
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			return v.(*ResolvedConfig), nil
		}
	}

	for _, s := range scopes(orgID, formatID) {
		cfg, err := r.store.FindActiveMapping(ctx, s.orgID, s.format)
		if err != nil {
			return nil, fmt.Errorf("find mapping config (%s): %w", s.tier, err)
		}
		if cfg == nil {
			continue
		}
		resolved := &ResolvedConfig{Config: cfg, Tier: s.tier}
		if r.cache != nil {
			r.cache.Set(key, resolved)
		}
		r.logger.Info("config.resolve.ok",
			"tier", s.tier, "config_id", cfg.ID, "config_name", cfg.Name)
		return resolved, nil
	}

	resolved := &ResolvedConfig{Config: DefaultMappingConfig(), Tier: constants.TierDefault}
	if r.cache != nil {
		r.cache.Set(key, resolved)
	}
	r.logger.Info("config.resolve.default",
		"organization_id", scopeKey(orgID), "format_id", scopeKey(formatID))
	return resolved, nil
}

// ResolvePrompt resolves one purpose through the same tier order.
// There is no built-in prompt, so a miss on every tier returns
// (nil, nil) rather than an error.
func (r *Resolver) ResolvePrompt(ctx context.Context, orgID, formatID *uuid.UUID, purpose constants.PromptPurpose) (*ResolvedPrompt, error) {
	if !constants.ValidPromptPurpose(purpose) {
		return nil, fmt.Errorf("unknown prompt purpose %q", purpose)
	}
	key := promptCacheKey(orgID, formatID, purpose)
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			return v.(*ResolvedPrompt), nil
		}
	}

	for _, s := range scopes(orgID, formatID) {
		prompt, err := r.store.FindActivePrompt(ctx, s.orgID, s.format, purpose)
		if err != nil {
			return nil, fmt.Errorf("find prompt config (%s, %s): %w", s.tier, purpose, err)
		}
		if prompt == nil {
			continue
		}
		resolved := &ResolvedPrompt{Prompt: prompt, Tier: s.tier}
		if r.cache != nil {
			r.cache.Set(key, resolved)
		}
		r.logger.Info("prompt.resolve.ok", "tier", s.tier, "purpose", purpose, "prompt_id", prompt.ID)
		return resolved, nil
	}
	return nil, nil
}

// ResolvePrompts resolves every purpose tag independently. A purpose
// with no stored prompt is simply absent from the result, it never
// blocks the others.
func (r *Resolver) ResolvePrompts(ctx context.Context, orgID, formatID *uuid.UUID) (map[constants.PromptPurpose]*ResolvedPrompt, error) {
	out := make(map[constants.PromptPurpose]*ResolvedPrompt, len(constants.AllPromptPurposes))
	for _, purpose := range constants.AllPromptPurposes {
		resolved, err := r.ResolvePrompt(ctx, orgID, formatID, purpose)
		if err != nil {
			return nil, err
		}
		if resolved != nil {
			out[purpose] = resolved
		}
	}
	return out, nil
}
