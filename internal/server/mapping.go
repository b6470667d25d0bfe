// Package server exposes the pipeline and catalog over gRPC.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mappingpb "github.com/laitim2001/ai-document-extraction/gen/proto/mapping/v1"
	"github.com/laitim2001/ai-document-extraction/internal/async"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/issuer"
	"github.com/laitim2001/ai-document-extraction/internal/pipeline"
	"github.com/laitim2001/ai-document-extraction/internal/resolver"
)

type MappingService struct {
	mappingpb.UnimplementedMappingServiceServer
	processor *pipeline.Processor
	issuers   *issuer.Matcher
	resolver  *resolver.Resolver
	queue     async.Queue
	logger    *slog.Logger
}

func NewMappingService(processor *pipeline.Processor, issuers *issuer.Matcher, res *resolver.Resolver, queue async.Queue, logger *slog.Logger) *MappingService {
	return &MappingService{processor: processor, issuers: issuers, resolver: res, queue: queue, logger: logger}
}

func fromPBExtraction(req *mappingpb.ProcessDocumentRequest) (*entity.RawExtraction, error) {
	docID, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	raw := &entity.RawExtraction{
		DocumentID:        docID,
		IssuerName:        req.GetIssuerName(),
		IssuerConfidence:  req.GetIssuerConfidence(),
		HeaderText:        req.GetHeaderText(),
		LogoSignature:     req.GetLogoSignature(),
		LayoutFingerprint: req.GetLayoutFingerprint(),
		DetectedFields:    req.GetDetectedFields(),
	}
	if f := req.GetFields(); f != nil {
		raw.Fields = f.AsMap()
	} else {
		raw.Fields = map[string]any{}
	}
	for _, item := range req.GetLineItems() {
		raw.LineItems = append(raw.LineItems, item.AsMap())
	}
	return raw, nil
}

func (s *MappingService) ProcessDocument(ctx context.Context, req *mappingpb.ProcessDocumentRequest) (*mappingpb.ProcessDocumentResponse, error) {
	raw, err := fromPBExtraction(req)
	if err != nil {
		return nil, err
	}

	result, err := s.processor.Process(ctx, raw)
	if err != nil {
		s.logger.Error("failed to process document", "document_id", raw.DocumentID, "error", err)
		return nil, common.InternalErrorf("process document: %v", err)
	}

	resp := &mappingpb.ProcessDocumentResponse{
		Record: toPBRecord(result.Record),
		Issuer: toPBIssuerMatch(result.Issuer),
		Format: toPBFormatMatch(result.Format),
	}
	if result.Terms != nil {
		resp.Terms = &mappingpb.TermLearnResult{
			RecordedNew:  int32(result.Terms.RecordedNew),
			RecordedSeen: int32(result.Terms.RecordedSeen),
		}
	}
	return resp, nil
}

func (s *MappingService) ResolvePreview(ctx context.Context, req *mappingpb.ResolvePreviewRequest) (*mappingpb.ResolvePreviewResponse, error) {
	orgID, err := parseScopeID(req.GetOrganizationId())
	if err != nil {
		return nil, common.InvalidArgumentError("organization_id must be a UUID")
	}
	formatID, err := parseScopeID(req.GetFormatId())
	if err != nil {
		return nil, common.InvalidArgumentError("format_id must be a UUID")
	}

	resolved, err := s.resolver.ResolveMapping(ctx, orgID, formatID)
	if err != nil {
		s.logger.Error("failed to resolve mapping config", "error", err)
		return nil, common.InternalErrorf("resolve config: %v", err)
	}
	prompts, err := s.resolver.ResolvePrompts(ctx, orgID, formatID)
	if err != nil {
		s.logger.Error("failed to resolve prompt configs", "error", err)
		return nil, common.InternalErrorf("resolve prompts: %v", err)
	}

	resp := &mappingpb.ResolvePreviewResponse{
		Config: toPBMappingConfig(resolved.Config),
		Tier:   string(resolved.Tier),
	}
	for _, p := range prompts {
		resp.Prompts = append(resp.Prompts, &mappingpb.ResolvedPrompt{
			Prompt: toPBPromptConfig(p.Prompt),
			Tier:   string(p.Tier),
		})
	}
	return resp, nil
}

func (s *MappingService) IdentifyIssuer(ctx context.Context, req *mappingpb.IdentifyIssuerRequest) (*mappingpb.IdentifyIssuerResponse, error) {
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	match, err := s.issuers.Identify(ctx, req.GetName(), req.GetConfidence(), nil)
	if err != nil {
		// the admin lookup surfaces unresolved as not-found, unlike the
		// pipeline which degrades; store failures stay internal
		var unresolved *common.UnresolvedIssuerError
		if errors.As(err, &unresolved) {
			return nil, common.NotFoundError(err.Error())
		}
		s.logger.Error("failed to identify issuer", "name", req.GetName(), "error", err)
		return nil, common.InternalErrorf("identify issuer: %v", err)
	}
	return &mappingpb.IdentifyIssuerResponse{Match: toPBIssuerMatch(match)}, nil
}

func (s *MappingService) SubmitDocument(ctx context.Context, req *mappingpb.ProcessDocumentRequest) (*mappingpb.SubmitDocumentResponse, error) {
	raw, err := fromPBExtraction(req)
	if err != nil {
		return nil, err
	}

	job := async.Job{Extraction: raw, SubmittedAt: time.Now()}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		if errors.Is(err, async.ErrQueueFull) {
			return nil, status.Error(codes.ResourceExhausted, "queue full, retry later")
		}
		s.logger.Error("failed to enqueue document", "document_id", raw.DocumentID, "error", err)
		return nil, status.Errorf(codes.Unavailable, "enqueue document: %v", err)
	}
	s.logger.Info("document queued", "document_id", raw.DocumentID)
	return &mappingpb.SubmitDocumentResponse{Accepted: true}, nil
}
