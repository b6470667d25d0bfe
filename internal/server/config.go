package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	mappingpb "github.com/laitim2001/ai-document-extraction/gen/proto/mapping/v1"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/mapping"
	"github.com/laitim2001/ai-document-extraction/internal/repository"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

type ConfigService struct {
	mappingpb.UnimplementedConfigServiceServer
	configs repository.ConfigRepository
	engine  *transform.Engine
	logger  *slog.Logger
}

func NewConfigService(configs repository.ConfigRepository, engine *transform.Engine, logger *slog.Logger) *ConfigService {
	return &ConfigService{configs: configs, engine: engine, logger: logger}
}

func (s *ConfigService) CreateMappingConfig(ctx context.Context, req *mappingpb.CreateMappingConfigRequest) (*mappingpb.MappingConfigResponse, error) {
	if err := common.NewValidator().
		Field("name", req.GetName(), common.Required, common.MaxLength(120)).
		Field("organization_id", req.GetOrganizationId(), common.UUIDOrEmpty).
		Field("format_id", req.GetFormatId(), common.UUIDOrEmpty).
		Error(); err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	orgID, err := parseScopeID(req.GetOrganizationId())
	if err != nil {
		return nil, common.InvalidArgumentError("organization_id must be a UUID")
	}
	formatID, err := parseScopeID(req.GetFormatId())
	if err != nil {
		return nil, common.InvalidArgumentError("format_id must be a UUID")
	}

	cfg := &entity.FieldMappingConfig{
		OrganizationID: orgID,
		FormatID:       formatID,
		Name:           req.GetName(),
		Mappings:       fromPBMappings(req.GetMappings()),
		IsActive:       true,
		Priority:       int(req.GetPriority()),
		CreatedBy:      req.GetCreatedBy(),
	}
	// bad configs are rejected here, never at document time
	if err := mapping.ValidateConfig(cfg, s.engine); err != nil {
		return nil, common.InvalidArgumentErrorf("invalid config: %v", err)
	}

	created, err := s.configs.CreateMapping(ctx, cfg)
	if err != nil {
		s.logger.Error("failed to create mapping config", "name", cfg.Name, "error", err)
		return nil, common.InternalErrorf("create config: %v", err)
	}
	return &mappingpb.MappingConfigResponse{Config: toPBMappingConfig(created)}, nil
}

func (s *ConfigService) ImportMappingConfig(ctx context.Context, req *mappingpb.ImportMappingConfigRequest) (*mappingpb.MappingConfigResponse, error) {
	if err := mapping.ValidateConfigDocument(req.GetDocument()); err != nil {
		return nil, common.InvalidArgumentErrorf("invalid config document: %v", err)
	}
	cfg, err := mapping.DecodeConfigDocument(req.GetDocument())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid config document: %v", err)
	}
	cfg.IsActive = true
	cfg.CreatedBy = req.GetCreatedBy()
	if err := mapping.ValidateConfig(cfg, s.engine); err != nil {
		return nil, common.InvalidArgumentErrorf("invalid config: %v", err)
	}

	created, err := s.configs.CreateMapping(ctx, cfg)
	if err != nil {
		s.logger.Error("failed to import mapping config", "name", cfg.Name, "error", err)
		return nil, common.InternalErrorf("import config: %v", err)
	}
	s.logger.Info("config imported", "config_id", created.ID, "name", created.Name)
	return &mappingpb.MappingConfigResponse{Config: toPBMappingConfig(created)}, nil
}

func (s *ConfigService) UpdateMappingConfig(ctx context.Context, req *mappingpb.UpdateMappingConfigRequest) (*mappingpb.MappingConfigResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	cfg := &entity.FieldMappingConfig{
		ID:       id,
		Name:     req.GetName(),
		Mappings: fromPBMappings(req.GetMappings()),
		IsActive: req.GetIsActive(),
		Priority: int(req.GetPriority()),
	}
	if err := mapping.ValidateConfig(cfg, s.engine); err != nil {
		return nil, common.InvalidArgumentErrorf("invalid config: %v", err)
	}

	updated, err := s.configs.UpdateMapping(ctx, cfg)
	if err != nil {
		s.logger.Error("failed to update mapping config", "config_id", id, "error", err)
		return nil, common.InternalErrorf("update config: %v", err)
	}
	return &mappingpb.MappingConfigResponse{Config: toPBMappingConfig(updated)}, nil
}

func (s *ConfigService) ListMappingConfigs(ctx context.Context, _ *mappingpb.ListMappingConfigsRequest) (*mappingpb.ListMappingConfigsResponse, error) {
	configs, err := s.configs.ListMappings(ctx)
	if err != nil {
		s.logger.Error("failed to list mapping configs", "error", err)
		return nil, common.InternalErrorf("list configs: %v", err)
	}
	resp := &mappingpb.ListMappingConfigsResponse{}
	for _, cfg := range configs {
		resp.Configs = append(resp.Configs, toPBMappingConfig(cfg))
	}
	return resp, nil
}

func (s *ConfigService) DeactivateMappingConfig(ctx context.Context, req *mappingpb.DeactivateConfigRequest) (*mappingpb.DeactivateConfigResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	if err := s.configs.DeactivateMapping(ctx, id); err != nil {
		s.logger.Error("failed to deactivate mapping config", "config_id", id, "error", err)
		return nil, common.InternalErrorf("deactivate config: %v", err)
	}
	return &mappingpb.DeactivateConfigResponse{}, nil
}

func (s *ConfigService) CreatePromptConfig(ctx context.Context, req *mappingpb.CreatePromptConfigRequest) (*mappingpb.PromptConfigResponse, error) {
	purpose := constants.PromptPurpose(req.GetPurpose())
	if !constants.ValidPromptPurpose(purpose) {
		return nil, common.InvalidArgumentErrorf("unknown purpose %q", req.GetPurpose())
	}
	if err := common.NewValidator().
		Field("template", req.GetTemplate(), common.Required).
		Field("organization_id", req.GetOrganizationId(), common.UUIDOrEmpty).
		Field("format_id", req.GetFormatId(), common.UUIDOrEmpty).
		Error(); err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	orgID, err := parseScopeID(req.GetOrganizationId())
	if err != nil {
		return nil, common.InvalidArgumentError("organization_id must be a UUID")
	}
	formatID, err := parseScopeID(req.GetFormatId())
	if err != nil {
		return nil, common.InvalidArgumentError("format_id must be a UUID")
	}

	created, err := s.configs.CreatePrompt(ctx, &entity.PromptConfig{
		OrganizationID: orgID,
		FormatID:       formatID,
		Purpose:        purpose,
		Template:       req.GetTemplate(),
		Version:        1,
		IsActive:       true,
		Priority:       int(req.GetPriority()),
	})
	if err != nil {
		s.logger.Error("failed to create prompt config", "purpose", purpose, "error", err)
		return nil, common.InternalErrorf("create prompt: %v", err)
	}
	return &mappingpb.PromptConfigResponse{Prompt: toPBPromptConfig(created)}, nil
}

func (s *ConfigService) ListPromptConfigs(ctx context.Context, _ *mappingpb.ListPromptConfigsRequest) (*mappingpb.ListPromptConfigsResponse, error) {
	prompts, err := s.configs.ListPrompts(ctx)
	if err != nil {
		s.logger.Error("failed to list prompt configs", "error", err)
		return nil, common.InternalErrorf("list prompts: %v", err)
	}
	resp := &mappingpb.ListPromptConfigsResponse{}
	for _, p := range prompts {
		resp.Prompts = append(resp.Prompts, toPBPromptConfig(p))
	}
	return resp, nil
}

func (s *ConfigService) DeactivatePromptConfig(ctx context.Context, req *mappingpb.DeactivateConfigRequest) (*mappingpb.DeactivateConfigResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	if err := s.configs.DeactivatePrompt(ctx, id); err != nil {
		s.logger.Error("failed to deactivate prompt config", "prompt_id", id, "error", err)
		return nil, common.InternalErrorf("deactivate prompt: %v", err)
	}
	return &mappingpb.DeactivateConfigResponse{}, nil
}
