package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/gen/ent"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// OrganizationRepository is the full catalog surface over organizations;
// the pipeline consumes the narrow subset declared in internal/issuer.
type OrganizationRepository interface {
	ListActive(ctx context.Context) ([]*entity.Organization, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
	Create(ctx context.Context, org *entity.Organization) (*entity.Organization, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type organizationRepository struct {
	client *ent.Client
	cache  *cache.TTLCache
	logger *slog.Logger
}

func NewOrganizationRepository(client *ent.Client, c *cache.TTLCache, logger *slog.Logger) OrganizationRepository {
	return &organizationRepository{client: client, cache: c, logger: logger}
}

func (r *organizationRepository) ListActive(ctx context.Context) ([]*entity.Organization, error) {
	rows, err := r.client.Organization.Query().
		Where(organization.IsActive(true)).
		Order(organization.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list organizations", "error", err)
		return nil, err
	}
	out := make([]*entity.Organization, len(rows))
	for i, row := range rows {
		out[i] = toEntityOrganization(row)
	}
	return out, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	row, err := r.client.Organization.Query().Where(organization.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("organization %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return toEntityOrganization(row), nil
}

// Create inserts a new organization. Losing the race on the
// normalized-name constraint returns the winner's row instead of an
// error, so two concurrent documents from a new issuer converge.
func (r *organizationRepository) Create(ctx context.Context, org *entity.Organization) (*entity.Organization, error) {
	builder := r.client.Organization.Create().
		SetName(org.Name).
		SetCode(org.Code).
		SetNormalizedName(org.NormalizedName).
		SetAutoCreated(org.AutoCreated).
		SetIsActive(org.IsActive)
	if len(org.Aliases) > 0 {
		builder.SetAliases(org.Aliases)
	}
	if org.SourceDocumentID != nil {
		builder.SetSourceDocumentID(*org.SourceDocumentID)
	}

	row, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		winner, ferr := r.client.Organization.Query().
			Where(organization.NormalizedName(org.NormalizedName)).
			Only(ctx)
		if ferr != nil {
			r.logger.Error("failed to re-fetch organization after lost race",
				"normalized_name", org.NormalizedName, "error", ferr)
			return nil, ferr
		}
		r.logger.Info("lost organization create race", "organization_id", winner.ID)
		row = winner
	} else if err != nil {
		r.logger.Error("failed to create organization", "name", org.Name, "error", err)
		return nil, err
	}

	r.invalidate()
	return toEntityOrganization(row), nil
}

func (r *organizationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := r.client.Organization.UpdateOneID(id).SetIsActive(false).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to deactivate organization", "organization_id", id, "error", err)
		return err
	}
	r.invalidate()
	return nil
}

func (r *organizationRepository) invalidate() {
	if r.cache != nil {
		r.cache.Invalidate("issuer:organizations")
	}
}

func toEntityOrganization(row *ent.Organization) *entity.Organization {
	return &entity.Organization{
		ID:               row.ID,
		Name:             row.Name,
		Code:             row.Code,
		NormalizedName:   row.NormalizedName,
		Aliases:          row.Aliases,
		AutoCreated:      row.AutoCreated,
		SourceDocumentID: row.SourceDocumentID,
		IsActive:         row.IsActive,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
