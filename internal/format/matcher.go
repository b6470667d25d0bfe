// Package format classifies a document's layout within one
// organization, creating a new canonical format when nothing known
// matches well enough.
package format

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/similarity"
)

// Features is the bundle of layout signals extracted from one document.
type Features struct {
	HeaderText        string
	LogoSignature     string
	LayoutFingerprint string
	DetectedFields    []string
}

// Fingerprint derives the stable identity for these features. It backs
// the per-organization uniqueness constraint that keeps two concurrent
// auto-creates from producing two rows.
func (f Features) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(similarity.Normalize(f.HeaderText)))
	h.Write([]byte{0})
	h.Write([]byte(f.LogoSignature))
	h.Write([]byte{0})
	h.Write([]byte(f.LayoutFingerprint))
	return hex.EncodeToString(h.Sum(nil))[:32]
}

// FormatStore is the catalog surface the matcher needs. Create must
// resolve a uniqueness violation on (organization, fingerprint) by
// re-fetching the winner's row.
type FormatStore interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*entity.DocumentFormat, error)
	Create(ctx context.Context, format *entity.DocumentFormat) (*entity.DocumentFormat, error)
	IncrementMatchCount(ctx context.Context, id uuid.UUID) error
}

// Match is the outcome of one classification.
type Match struct {
	Format     *entity.DocumentFormat
	Method     constants.MatchMethod
	Confidence float64
}

// Matcher tries exact, fuzzy, then feature strategies in order, and
// auto-creates below the acceptance bar.
type Matcher struct {
	store  FormatStore
	cache  *cache.TTLCache
	logger *slog.Logger
}

func NewMatcher(store FormatStore, c *cache.TTLCache, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{store: store, cache: c, logger: logger}
}

func formatCacheKey(orgID uuid.UUID) string {
	return "format:organization:" + orgID.String()
}

// Classify resolves features to a format under orgID. sourceDoc, when
// set, is recorded on auto-created rows. Never returns a nil format on
// success: when no strategy clears the bar a new format is created.
func (m *Matcher) Classify(ctx context.Context, orgID uuid.UUID, features Features, sourceDoc *uuid.UUID) (*Match, error) {
	candidates, err := m.candidates(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}

	strategies := []struct {
		method constants.MatchMethod
		run    func([]*entity.DocumentFormat, Features) (*entity.DocumentFormat, float64, bool)
	}{
		{constants.MatchExact, matchExact},
		{constants.MatchFuzzy, matchFuzzy},
		{constants.MatchFeature, matchFeature},
	}

	for _, s := range strategies {
		best, confidence, tied := s.run(candidates, features)
		if best == nil || confidence < constants.FormatMatchThreshold {
			continue
		}
		if tied {
			// highest confidence wins; the tie itself is logged
			m.logger.Warn("format.match.tie",
				"organization_id", orgID, "format_id", best.ID, "method", s.method, "confidence", confidence)
		}
		if err := m.store.IncrementMatchCount(ctx, best.ID); err != nil {
			m.logger.Warn("format.match_count.failed", "format_id", best.ID, "error", err)
		}
		m.logger.Info("format.match.ok",
			"organization_id", orgID, "format_id", best.ID, "method", s.method, "confidence", confidence)
		return &Match{Format: best, Method: s.method, Confidence: confidence}, nil
	}

	return m.create(ctx, orgID, features, sourceDoc, len(candidates))
}

func (m *Matcher) candidates(ctx context.Context, orgID uuid.UUID) ([]*entity.DocumentFormat, error) {
	key := formatCacheKey(orgID)
	if m.cache != nil {
		if v, ok := m.cache.Get(key); ok {
			return v.([]*entity.DocumentFormat), nil
		}
	}
	formats, err := m.store.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if m.cache != nil {
		m.cache.Set(key, formats)
	}
	return formats, nil
}

func (m *Matcher) create(ctx context.Context, orgID uuid.UUID, features Features, sourceDoc *uuid.UUID, existing int) (*Match, error) {
	created, err := m.store.Create(ctx, &entity.DocumentFormat{
		OrganizationID:    orgID,
		Name:              fmt.Sprintf("Format %d", existing+1),
		HeaderPattern:     features.HeaderText,
		LogoSignature:     features.LogoSignature,
		LayoutFingerprint: features.LayoutFingerprint,
		DetectedFields:    features.DetectedFields,
		Fingerprint:       features.Fingerprint(),
		AutoCreated:       true,
		SourceDocumentID:  sourceDoc,
		IsActive:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("auto-create format: %w", err)
	}
	if m.cache != nil {
		m.cache.Invalidate(formatCacheKey(orgID))
	}
	m.logger.Info("format.match.new", "organization_id", orgID, "format_id", created.ID, "name", created.Name)
	return &Match{Format: created, Method: constants.MatchNew, Confidence: 1.0}, nil
}

// matchExact scores equality on header pattern and logo signature,
// weighted 0.5 per matching signal.
func matchExact(candidates []*entity.DocumentFormat, features Features) (*entity.DocumentFormat, float64, bool) {
	header := similarity.Normalize(features.HeaderText)
	return pickBest(candidates, func(f *entity.DocumentFormat) float64 {
		score := 0.0
		if header != "" && similarity.Normalize(f.HeaderPattern) == header {
			score += constants.FormatExactSignalWeight
		}
		if features.LogoSignature != "" && f.LogoSignature == features.LogoSignature {
			score += constants.FormatExactSignalWeight
		}
		return score
	})
}

// matchFuzzy scores similarity over header text and logo signature;
// the strongest signal wins.
func matchFuzzy(candidates []*entity.DocumentFormat, features Features) (*entity.DocumentFormat, float64, bool) {
	return pickBest(candidates, func(f *entity.DocumentFormat) float64 {
		var best float64
		if features.HeaderText != "" && f.HeaderPattern != "" {
			best = similarity.NormalizedScore(features.HeaderText, f.HeaderPattern)
		}
		if features.LogoSignature != "" && f.LogoSignature != "" {
			if s := similarity.Score(features.LogoSignature, f.LogoSignature); s > best {
				best = s
			}
		}
		return best
	})
}

// matchFeature blends layout-pattern similarity (40%) with detected
// field-set overlap (60%), against formats that recorded feature data.
func matchFeature(candidates []*entity.DocumentFormat, features Features) (*entity.DocumentFormat, float64, bool) {
	return pickBest(candidates, func(f *entity.DocumentFormat) float64 {
		if f.LayoutFingerprint == "" && len(f.DetectedFields) == 0 {
			return 0
		}
		layout := 0.0
		if features.LayoutFingerprint != "" && f.LayoutFingerprint != "" {
			layout = similarity.Score(features.LayoutFingerprint, f.LayoutFingerprint)
		}
		overlap := fieldOverlap(features.DetectedFields, f.DetectedFields)
		return constants.FormatLayoutWeight*layout + constants.FormatFieldSetWeight*overlap
	})
}

func pickBest(candidates []*entity.DocumentFormat, score func(*entity.DocumentFormat) float64) (*entity.DocumentFormat, float64, bool) {
	var (
		best      *entity.DocumentFormat
		bestScore float64
		tied      bool
	)
	for _, f := range candidates {
		s := score(f)
		switch {
		case s > bestScore:
			best, bestScore, tied = f, s, false
		case s == bestScore && s > 0 && best != nil:
			tied = true
		}
	}
	return best, bestScore, tied
}

// fieldOverlap is the Jaccard ratio of the two field-name sets,
// compared case-insensitively.
func fieldOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[strings.ToLower(s)] = struct{}{}
	}
	intersection := 0
	union := len(set)
	seen := make(map[string]struct{}, len(b))
	for _, s := range b {
		k := strings.ToLower(s)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := set[k]; ok {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}
