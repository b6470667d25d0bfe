package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/gen/ent"
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
	"github.com/laitim2001/ai-document-extraction/internal/cache"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// ConfigRepository covers stored mapping and prompt configs: the
// resolver's exact-scope lookups plus the admin CRUD surface.
type ConfigRepository interface {
	FindActiveMapping(ctx context.Context, orgID, formatID *uuid.UUID) (*entity.FieldMappingConfig, error)
	FindActivePrompt(ctx context.Context, orgID, formatID *uuid.UUID, purpose constants.PromptPurpose) (*entity.PromptConfig, error)

	CreateMapping(ctx context.Context, cfg *entity.FieldMappingConfig) (*entity.FieldMappingConfig, error)
	UpdateMapping(ctx context.Context, cfg *entity.FieldMappingConfig) (*entity.FieldMappingConfig, error)
	ListMappings(ctx context.Context) ([]*entity.FieldMappingConfig, error)
	DeactivateMapping(ctx context.Context, id uuid.UUID) error

	CreatePrompt(ctx context.Context, cfg *entity.PromptConfig) (*entity.PromptConfig, error)
	ListPrompts(ctx context.Context) ([]*entity.PromptConfig, error)
	DeactivatePrompt(ctx context.Context, id uuid.UUID) error
}

type configRepository struct {
	client *ent.Client
	cache  *cache.TTLCache
	logger *slog.Logger
}

func NewConfigRepository(client *ent.Client, c *cache.TTLCache, logger *slog.Logger) ConfigRepository {
	return &configRepository{client: client, cache: c, logger: logger}
}

// FindActiveMapping looks up one scope tier exactly: a nil id matches
// rows with that axis unset, not rows with any value.
func (r *configRepository) FindActiveMapping(ctx context.Context, orgID, formatID *uuid.UUID) (*entity.FieldMappingConfig, error) {
	q := r.client.FieldMappingConfig.Query().
		Where(fieldmappingconfig.IsActive(true))
	if orgID != nil {
		q.Where(fieldmappingconfig.OrganizationID(*orgID))
	} else {
		q.Where(fieldmappingconfig.OrganizationIDIsNil())
	}
	if formatID != nil {
		q.Where(fieldmappingconfig.FormatID(*formatID))
	} else {
		q.Where(fieldmappingconfig.FormatIDIsNil())
	}

	row, err := q.
		Order(
			fieldmappingconfig.ByPriority(sql.OrderDesc()),
			fieldmappingconfig.ByUpdatedAt(sql.OrderDesc()),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to find mapping config", "error", err)
		return nil, err
	}
	return toEntityMappingConfig(row), nil
}

func (r *configRepository) FindActivePrompt(ctx context.Context, orgID, formatID *uuid.UUID, purpose constants.PromptPurpose) (*entity.PromptConfig, error) {
	q := r.client.PromptConfig.Query().
		Where(promptconfig.IsActive(true), promptconfig.Purpose(string(purpose)))
	if orgID != nil {
		q.Where(promptconfig.OrganizationID(*orgID))
	} else {
		q.Where(promptconfig.OrganizationIDIsNil())
	}
	if formatID != nil {
		q.Where(promptconfig.FormatID(*formatID))
	} else {
		q.Where(promptconfig.FormatIDIsNil())
	}

	row, err := q.
		Order(
			promptconfig.ByPriority(sql.OrderDesc()),
			promptconfig.ByVersion(sql.OrderDesc()),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to find prompt config", "purpose", purpose, "error", err)
		return nil, err
	}
	return toEntityPromptConfig(row), nil
}

func (r *configRepository) CreateMapping(ctx context.Context, cfg *entity.FieldMappingConfig) (*entity.FieldMappingConfig, error) {
	builder := r.client.FieldMappingConfig.Create().
		SetName(cfg.Name).
		SetMappings(cfg.Mappings).
		SetIsActive(cfg.IsActive).
		SetPriority(cfg.Priority).
		SetNillableOrganizationID(cfg.OrganizationID).
		SetNillableFormatID(cfg.FormatID)
	if cfg.CreatedBy != "" {
		builder.SetCreatedBy(cfg.CreatedBy)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create mapping config", "name", cfg.Name, "error", err)
		return nil, err
	}
	r.invalidate()
	return toEntityMappingConfig(row), nil
}

func (r *configRepository) UpdateMapping(ctx context.Context, cfg *entity.FieldMappingConfig) (*entity.FieldMappingConfig, error) {
	row, err := r.client.FieldMappingConfig.UpdateOneID(cfg.ID).
		SetName(cfg.Name).
		SetMappings(cfg.Mappings).
		SetIsActive(cfg.IsActive).
		SetPriority(cfg.Priority).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update mapping config", "config_id", cfg.ID, "error", err)
		return nil, err
	}
	r.invalidate()
	return toEntityMappingConfig(row), nil
}

func (r *configRepository) ListMappings(ctx context.Context) ([]*entity.FieldMappingConfig, error) {
	rows, err := r.client.FieldMappingConfig.Query().
		Order(fieldmappingconfig.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list mapping configs", "error", err)
		return nil, err
	}
	out := make([]*entity.FieldMappingConfig, len(rows))
	for i, row := range rows {
		out[i] = toEntityMappingConfig(row)
	}
	return out, nil
}

func (r *configRepository) DeactivateMapping(ctx context.Context, id uuid.UUID) error {
	err := r.client.FieldMappingConfig.UpdateOneID(id).SetIsActive(false).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to deactivate mapping config", "config_id", id, "error", err)
		return err
	}
	r.invalidate()
	return nil
}

func (r *configRepository) CreatePrompt(ctx context.Context, cfg *entity.PromptConfig) (*entity.PromptConfig, error) {
	row, err := r.client.PromptConfig.Create().
		SetPurpose(string(cfg.Purpose)).
		SetTemplate(cfg.Template).
		SetVersion(cfg.Version).
		SetIsActive(cfg.IsActive).
		SetPriority(cfg.Priority).
		SetNillableOrganizationID(cfg.OrganizationID).
		SetNillableFormatID(cfg.FormatID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create prompt config", "purpose", cfg.Purpose, "error", err)
		return nil, err
	}
	r.invalidate()
	return toEntityPromptConfig(row), nil
}

func (r *configRepository) ListPrompts(ctx context.Context) ([]*entity.PromptConfig, error) {
	rows, err := r.client.PromptConfig.Query().
		Order(promptconfig.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list prompt configs", "error", err)
		return nil, err
	}
	out := make([]*entity.PromptConfig, len(rows))
	for i, row := range rows {
		out[i] = toEntityPromptConfig(row)
	}
	return out, nil
}

func (r *configRepository) DeactivatePrompt(ctx context.Context, id uuid.UUID) error {
	err := r.client.PromptConfig.UpdateOneID(id).SetIsActive(false).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to deactivate prompt config", "prompt_id", id, "error", err)
		return err
	}
	r.invalidate()
	return nil
}

// invalidate drops every resolved config synchronously with the
// write; the TTL alone is not an acceptable staleness bound.
func (r *configRepository) invalidate() {
	if r.cache != nil {
		r.cache.InvalidatePrefix("config:")
	}
}

func toEntityMappingConfig(row *ent.FieldMappingConfig) *entity.FieldMappingConfig {
	return &entity.FieldMappingConfig{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		FormatID:       row.FormatID,
		Name:           row.Name,
		Mappings:       row.Mappings,
		IsActive:       row.IsActive,
		Priority:       row.Priority,
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toEntityPromptConfig(row *ent.PromptConfig) *entity.PromptConfig {
	return &entity.PromptConfig{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		FormatID:       row.FormatID,
		Purpose:        constants.PromptPurpose(row.Purpose),
		Template:       row.Template,
		Version:        row.Version,
		IsActive:       row.IsActive,
		Priority:       row.Priority,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
