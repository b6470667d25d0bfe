package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/gen/ent"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// FormatRepository is the catalog surface over document formats.
type FormatRepository interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*entity.DocumentFormat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentFormat, error)
	Create(ctx context.Context, format *entity.DocumentFormat) (*entity.DocumentFormat, error)
	IncrementMatchCount(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type formatRepository struct {
	client *ent.Client
	cache  *cache.TTLCache
	logger *slog.Logger
}

func NewFormatRepository(client *ent.Client, c *cache.TTLCache, logger *slog.Logger) FormatRepository {
	return &formatRepository{client: client, cache: c, logger: logger}
}

func (r *formatRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*entity.DocumentFormat, error) {
	rows, err := r.client.DocumentFormat.Query().
		Where(documentformat.OrganizationID(orgID), documentformat.IsActive(true)).
		Order(documentformat.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list formats", "organization_id", orgID, "error", err)
		return nil, err
	}
	out := make([]*entity.DocumentFormat, len(rows))
	for i, row := range rows {
		out[i] = toEntityFormat(row)
	}
	return out, nil
}

func (r *formatRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentFormat, error) {
	row, err := r.client.DocumentFormat.Query().Where(documentformat.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("format %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return toEntityFormat(row), nil
}

// Create inserts a new format. A constraint violation on
// (organization, fingerprint) means another document won the
// auto-create race; the winner's row is returned.
func (r *formatRepository) Create(ctx context.Context, format *entity.DocumentFormat) (*entity.DocumentFormat, error) {
	builder := r.client.DocumentFormat.Create().
		SetOrganizationID(format.OrganizationID).
		SetName(format.Name).
		SetHeaderPattern(format.HeaderPattern).
		SetLogoSignature(format.LogoSignature).
		SetLayoutFingerprint(format.LayoutFingerprint).
		SetFingerprint(format.Fingerprint).
		SetAutoCreated(format.AutoCreated).
		SetIsActive(format.IsActive)
	if len(format.DetectedFields) > 0 {
		builder.SetDetectedFields(format.DetectedFields)
	}
	if format.SourceDocumentID != nil {
		builder.SetSourceDocumentID(*format.SourceDocumentID)
	}

	row, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		winner, ferr := r.client.DocumentFormat.Query().
			Where(
				documentformat.OrganizationID(format.OrganizationID),
				documentformat.Fingerprint(format.Fingerprint),
			).
			Only(ctx)
		if ferr != nil {
			r.logger.Error("failed to re-fetch format after lost race",
				"organization_id", format.OrganizationID, "error", ferr)
			return nil, ferr
		}
		r.logger.Info("lost format create race", "format_id", winner.ID)
		row = winner
	} else if err != nil {
		r.logger.Error("failed to create format",
			"organization_id", format.OrganizationID, "name", format.Name, "error", err)
		return nil, err
	}

	r.invalidate(format.OrganizationID)
	return toEntityFormat(row), nil
}

func (r *formatRepository) IncrementMatchCount(ctx context.Context, id uuid.UUID) error {
	return r.client.DocumentFormat.UpdateOneID(id).AddMatchCount(1).Exec(ctx)
}

func (r *formatRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	row, err := r.client.DocumentFormat.UpdateOneID(id).SetIsActive(false).Save(ctx)
	if err != nil {
		r.logger.Error("failed to deactivate format", "format_id", id, "error", err)
		return err
	}
	r.invalidate(row.OrganizationID)
	return nil
}

func (r *formatRepository) invalidate(orgID uuid.UUID) {
	if r.cache != nil {
		r.cache.Invalidate("format:organization:" + orgID.String())
	}
}

func toEntityFormat(row *ent.DocumentFormat) *entity.DocumentFormat {
	return &entity.DocumentFormat{
		ID:                row.ID,
		OrganizationID:    row.OrganizationID,
		Name:              row.Name,
		HeaderPattern:     row.HeaderPattern,
		LogoSignature:     row.LogoSignature,
		LayoutFingerprint: row.LayoutFingerprint,
		DetectedFields:    row.DetectedFields,
		Fingerprint:       row.Fingerprint,
		AutoCreated:       row.AutoCreated,
		SourceDocumentID:  row.SourceDocumentID,
		IsActive:          row.IsActive,
		MatchCount:        row.MatchCount,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
