// Package issuer resolves a recognized issuer name to a canonical
// organization, creating one when the recognizer is confident enough
// and nothing in the catalog matches.
package issuer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/similarity"
)

const candidateCacheKey = "issuer:organizations"

// OrganizationStore is the catalog surface the matcher needs. Create
// must treat a uniqueness violation on normalized identity as a lost
// race: re-fetch and return the winner's row instead of failing.
type OrganizationStore interface {
	ListActive(ctx context.Context) ([]*entity.Organization, error)
	Create(ctx context.Context, org *entity.Organization) (*entity.Organization, error)
}

// Match is the outcome of one identification.
type Match struct {
	Organization *entity.Organization
	Method       constants.MatchMethod
	Confidence   float64
	MatchedOn    string // which name/code/alias produced the match
}

// Matcher finds or creates organizations.
type Matcher struct {
	store  OrganizationStore
	cache  *cache.TTLCache
	logger *slog.Logger
	now    func() time.Time
}

func NewMatcher(store OrganizationStore, c *cache.TTLCache, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{store: store, cache: c, logger: logger, now: time.Now}
}

// Identify resolves name to an organization. confidence is the
// external recognizer's confidence in [0,1]; sourceDoc, when set, is
// recorded on auto-created rows.
func (m *Matcher) Identify(ctx context.Context, name string, confidence float64, sourceDoc *uuid.UUID) (*Match, error) {
	normalized := similarity.Normalize(name)
	if normalized == "" {
		return nil, &common.UnresolvedIssuerError{Name: name, Confidence: confidence}
	}

	candidates, err := m.candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	// 1) exact: case/punctuation-insensitive equality on name, code,
	// or any alias.
	for _, org := range candidates {
		if on, ok := exactMatch(org, normalized); ok {
			m.logger.Info("issuer.match.exact", "name", name, "organization_id", org.ID, "matched_on", on)
			return &Match{Organization: org, Method: constants.MatchExact, Confidence: 1.0, MatchedOn: on}, nil
		}
	}

	// 2) fuzzy: best similarity across every identity string.
	var (
		best      *entity.Organization
		bestScore float64
		bestOn    string
	)
	for _, org := range candidates {
		for _, s := range identityStrings(org) {
			if score := similarity.Score(normalized, similarity.Normalize(s)); score > bestScore {
				best, bestScore, bestOn = org, score, s
			}
		}
	}
	if best != nil && bestScore >= constants.IssuerMatchThreshold {
		m.logger.Info("issuer.match.fuzzy",
			"name", name, "organization_id", best.ID, "score", bestScore, "matched_on", bestOn)
		return &Match{Organization: best, Method: constants.MatchFuzzy, Confidence: bestScore, MatchedOn: bestOn}, nil
	}

	// 3) auto-create when the recognizer itself was confident.
	if confidence >= constants.IssuerMatchThreshold {
		org, err := m.store.Create(ctx, &entity.Organization{
			Name:             strings.TrimSpace(name),
			Code:             m.generateCode(name),
			NormalizedName:   normalized,
			AutoCreated:      true,
			SourceDocumentID: sourceDoc,
			IsActive:         true,
		})
		if err != nil {
			return nil, fmt.Errorf("auto-create organization: %w", err)
		}
		if m.cache != nil {
			m.cache.Invalidate(candidateCacheKey)
		}
		m.logger.Info("issuer.match.created",
			"name", name, "organization_id", org.ID, "code", org.Code, "recognizer_confidence", confidence)
		return &Match{Organization: org, Method: constants.MatchCreated, Confidence: confidence, MatchedOn: name}, nil
	}

	m.logger.Warn("issuer.match.unresolved", "name", name, "best_score", bestScore, "recognizer_confidence", confidence)
	return nil, &common.UnresolvedIssuerError{Name: name, BestScore: bestScore, Confidence: confidence}
}

func (m *Matcher) candidates(ctx context.Context) ([]*entity.Organization, error) {
	if m.cache != nil {
		if v, ok := m.cache.Get(candidateCacheKey); ok {
			return v.([]*entity.Organization), nil
		}
	}
	orgs, err := m.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if m.cache != nil {
		m.cache.Set(candidateCacheKey, orgs)
	}
	return orgs, nil
}

func exactMatch(org *entity.Organization, normalized string) (string, bool) {
	if org.NormalizedName == normalized || similarity.Normalize(org.Name) == normalized {
		return org.Name, true
	}
	if similarity.Normalize(org.Code) == normalized {
		return org.Code, true
	}
	for _, alias := range org.Aliases {
		if similarity.Normalize(alias) == normalized {
			return alias, true
		}
	}
	return "", false
}

func identityStrings(org *entity.Organization) []string {
	out := make([]string, 0, 2+len(org.Aliases))
	out = append(out, org.Name, org.Code)
	return append(out, org.Aliases...)
}

// generateCode derives an organization code from Latin initials, or
// the leading runes for non-Latin names, plus a time suffix so two
// auto-created rows never collide on code.
func (m *Matcher) generateCode(name string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			initials.WriteRune(unicode.ToUpper(r))
		}
		if initials.Len() >= 6 {
			break
		}
	}
	prefix := initials.String()
	if prefix == "" {
		for _, r := range name {
			if unicode.IsLetter(r) {
				prefix += string(r)
			}
			if len([]rune(prefix)) >= 3 {
				break
			}
		}
	}
	if prefix == "" {
		prefix = "ORG"
	}
	return fmt.Sprintf("%s-%s", prefix, m.now().UTC().Format("060102150405"))
}
