// Package vocab learns line-item vocabulary from mapped records and
// keeps the per-format term catalog deduplicated.
package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/similarity"
)

// termBearingFields are the top-level record fields that carry
// learnable terms in addition to line-item descriptions.
var termBearingFields = []string{
	"description",
	"serviceDescription",
	"serviceType",
	"chargeDescription",
	"remarks",
}

// TermStore is the vocabulary surface the learner needs. Create must
// resolve a uniqueness violation on (format, normalized text) by
// re-fetching the winner's row.
type TermStore interface {
	ListByFormat(ctx context.Context, formatID uuid.UUID) ([]*entity.VocabularyTerm, error)
	Create(ctx context.Context, term *entity.VocabularyTerm) (*entity.VocabularyTerm, error)
	IncrementOccurrence(ctx context.Context, id uuid.UUID, lastSeen time.Time) error
}

// Result counts what one learning pass recorded.
type Result struct {
	RecordedNew  int
	RecordedSeen int
}

// Learner extracts, deduplicates, and records vocabulary terms.
type Learner struct {
	store  TermStore
	logger *slog.Logger
	now    func() time.Time
}

func NewLearner(store TermStore, logger *slog.Logger) *Learner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Learner{store: store, logger: logger, now: time.Now}
}

// Learn records the record's candidate terms under formatID. A
// candidate within the dedup threshold of a known term of the same
// format increments that term instead of creating a row.
func (l *Learner) Learn(ctx context.Context, record *entity.MappedRecord, formatID uuid.UUID) (*Result, error) {
	candidates := extractCandidates(record)
	if len(candidates) == 0 {
		return &Result{}, nil
	}

	known, err := l.store.ListByFormat(ctx, formatID)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	result := &Result{}
	seenThisRun := make(map[string]struct{}, len(candidates))
	for _, raw := range candidates {
		normalized := similarity.Normalize(raw)
		if normalized == "" {
			continue
		}
		if _, dup := seenThisRun[normalized]; dup {
			continue
		}
		seenThisRun[normalized] = struct{}{}

		if existing := bestKnownMatch(known, normalized); existing != nil {
			if err := l.store.IncrementOccurrence(ctx, existing.ID, l.now()); err != nil {
				return nil, fmt.Errorf("increment term %s: %w", existing.ID, err)
			}
			result.RecordedSeen++
			continue
		}

		category, score := ClassifyTerm(normalized)
		now := l.now()
		created, err := l.store.Create(ctx, &entity.VocabularyTerm{
			FormatID:        formatID,
			RawText:         strings.TrimSpace(raw),
			NormalizedText:  normalized,
			Category:        category,
			Status:          constants.TermStatusPending,
			OccurrenceCount: 1,
			FirstSeen:       now,
			LastSeen:        now,
			Confidence:      score,
		})
		if err != nil {
			return nil, fmt.Errorf("create term: %w", err)
		}
		// later candidates in this document dedup against it too
		known = append(known, created)
		result.RecordedNew++
		l.logger.Info("vocab.term.new",
			"format_id", formatID, "term", normalized, "category", category, "score", score)
	}

	l.logger.Info("vocab.learn.done",
		"document_id", record.DocumentID, "format_id", formatID,
		"new", result.RecordedNew, "seen", result.RecordedSeen)
	return result, nil
}

func bestKnownMatch(known []*entity.VocabularyTerm, normalized string) *entity.VocabularyTerm {
	var (
		best      *entity.VocabularyTerm
		bestScore float64
	)
	for _, term := range known {
		if score := similarity.Score(normalized, term.NormalizedText); score > bestScore {
			best, bestScore = term, score
		}
	}
	if bestScore >= constants.TermDedupThreshold {
		return best
	}
	return nil
}

// extractCandidates pulls description-like values from line items plus
// the fixed term-bearing top-level fields.
func extractCandidates(record *entity.MappedRecord) []string {
	var out []string
	for _, field := range termBearingFields {
		if v, ok := record.Fields[field]; ok && v != "" {
			out = append(out, v)
		}
	}
	for _, item := range record.LineItems {
		keys := make([]string, 0, len(item))
		for key := range item {
			if descriptionLike(key) {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			if v := item[key]; v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func descriptionLike(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "description") ||
		strings.Contains(k, "desc") ||
		strings.Contains(k, "service") ||
		strings.Contains(k, "charge")
}
