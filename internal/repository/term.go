package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/gen/ent"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// TermRepository covers the vocabulary catalog: the learner's surface
// plus the review operations exposed to curators.
type TermRepository interface {
	ListByFormat(ctx context.Context, formatID uuid.UUID) ([]*entity.VocabularyTerm, error)
	ListPending(ctx context.Context, formatID *uuid.UUID) ([]*entity.VocabularyTerm, error)
	Create(ctx context.Context, term *entity.VocabularyTerm) (*entity.VocabularyTerm, error)
	IncrementOccurrence(ctx context.Context, id uuid.UUID, lastSeen time.Time) error
	Review(ctx context.Context, id uuid.UUID, status constants.TermStatus, category constants.TermCategory) (*entity.VocabularyTerm, error)
}

type termRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTermRepository(client *ent.Client, logger *slog.Logger) TermRepository {
	return &termRepository{client: client, logger: logger}
}

func (r *termRepository) ListByFormat(ctx context.Context, formatID uuid.UUID) ([]*entity.VocabularyTerm, error) {
	rows, err := r.client.VocabularyTerm.Query().
		Where(vocabularyterm.FormatID(formatID)).
		Order(vocabularyterm.ByFirstSeen()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list terms", "format_id", formatID, "error", err)
		return nil, err
	}
	return toEntityTerms(rows), nil
}

func (r *termRepository) ListPending(ctx context.Context, formatID *uuid.UUID) ([]*entity.VocabularyTerm, error) {
	q := r.client.VocabularyTerm.Query().
		Where(vocabularyterm.Status(string(constants.TermStatusPending)))
	if formatID != nil {
		q.Where(vocabularyterm.FormatID(*formatID))
	}
	rows, err := q.Order(vocabularyterm.ByFirstSeen()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list pending terms", "error", err)
		return nil, err
	}
	return toEntityTerms(rows), nil
}

// Create inserts a new term. A constraint violation on
// (format, normalized text) means a concurrent document recorded the
// same term first; the winner gets an occurrence bump instead.
func (r *termRepository) Create(ctx context.Context, term *entity.VocabularyTerm) (*entity.VocabularyTerm, error) {
	row, err := r.client.VocabularyTerm.Create().
		SetFormatID(term.FormatID).
		SetRawText(term.RawText).
		SetNormalizedText(term.NormalizedText).
		SetCategory(string(term.Category)).
		SetStatus(string(term.Status)).
		SetOccurrenceCount(term.OccurrenceCount).
		SetFirstSeen(term.FirstSeen).
		SetLastSeen(term.LastSeen).
		SetConfidence(term.Confidence).
		Save(ctx)
	if ent.IsConstraintError(err) {
		winner, ferr := r.client.VocabularyTerm.Query().
			Where(
				vocabularyterm.FormatID(term.FormatID),
				vocabularyterm.NormalizedText(term.NormalizedText),
			).
			Only(ctx)
		if ferr != nil {
			r.logger.Error("failed to re-fetch term after lost race",
				"format_id", term.FormatID, "error", ferr)
			return nil, ferr
		}
		if err := r.IncrementOccurrence(ctx, winner.ID, term.LastSeen); err != nil {
			return nil, err
		}
		return toEntityTerm(winner), nil
	}
	if err != nil {
		r.logger.Error("failed to create term",
			"format_id", term.FormatID, "term", term.NormalizedText, "error", err)
		return nil, err
	}
	return toEntityTerm(row), nil
}

func (r *termRepository) IncrementOccurrence(ctx context.Context, id uuid.UUID, lastSeen time.Time) error {
	return r.client.VocabularyTerm.UpdateOneID(id).
		AddOccurrenceCount(1).
		SetLastSeen(lastSeen).
		Exec(ctx)
}

// Review transitions a pending term. An empty category keeps the
// classifier's suggestion.
func (r *termRepository) Review(ctx context.Context, id uuid.UUID, status constants.TermStatus, category constants.TermCategory) (*entity.VocabularyTerm, error) {
	builder := r.client.VocabularyTerm.UpdateOneID(id).
		SetStatus(string(status))
	if category != "" {
		builder.SetCategory(string(category))
	}
	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("term %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to review term", "term_id", id, "status", status, "error", err)
		return nil, err
	}
	return toEntityTerm(row), nil
}

func toEntityTerm(row *ent.VocabularyTerm) *entity.VocabularyTerm {
	return &entity.VocabularyTerm{
		ID:              row.ID,
		FormatID:        row.FormatID,
		RawText:         row.RawText,
		NormalizedText:  row.NormalizedText,
		Category:        constants.TermCategory(row.Category),
		Status:          constants.TermStatus(row.Status),
		OccurrenceCount: row.OccurrenceCount,
		FirstSeen:       row.FirstSeen,
		LastSeen:        row.LastSeen,
		Confidence:      row.Confidence,
	}
}

func toEntityTerms(rows []*ent.VocabularyTerm) []*entity.VocabularyTerm {
	out := make([]*entity.VocabularyTerm, len(rows))
	for i, row := range rows {
		out[i] = toEntityTerm(row)
	}
	return out
}
