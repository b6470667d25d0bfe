package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
	mappingpb "github.com/laitim2001/ai-document-extraction/gen/proto/mapping/v1"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/export"
	"github.com/laitim2001/ai-document-extraction/internal/repository"
)

type TermService struct {
	mappingpb.UnimplementedTermServiceServer
	terms    repository.TermRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewTermService(terms repository.TermRepository, exporter *export.Service, logger *slog.Logger) *TermService {
	return &TermService{terms: terms, exporter: exporter, logger: logger}
}

func (s *TermService) ListPendingTerms(ctx context.Context, req *mappingpb.ListPendingTermsRequest) (*mappingpb.ListPendingTermsResponse, error) {
	formatID, err := parseScopeID(req.GetFormatId())
	if err != nil {
		return nil, common.InvalidArgumentError("format_id must be a UUID")
	}

	terms, err := s.terms.ListPending(ctx, formatID)
	if err != nil {
		s.logger.Error("failed to list pending terms", "error", err)
		return nil, common.InternalErrorf("list pending terms: %v", err)
	}
	resp := &mappingpb.ListPendingTermsResponse{}
	for _, term := range terms {
		resp.Terms = append(resp.Terms, toPBTerm(term))
	}
	return resp, nil
}

func (s *TermService) ReviewTerm(ctx context.Context, req *mappingpb.ReviewTermRequest) (*mappingpb.ReviewTermResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	reviewed := constants.TermStatus(req.GetStatus())
	if reviewed != constants.TermStatusConfirmed && reviewed != constants.TermStatusRejected {
		return nil, common.InvalidArgumentErrorf(
			"status must be %s or %s", constants.TermStatusConfirmed, constants.TermStatusRejected)
	}

	var category constants.TermCategory
	if raw := req.GetCategory(); raw != "" {
		canonical, ok := constants.CanonicalizeTermCategory(raw)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown category %q", raw)
		}
		category = canonical
	}

	term, err := s.terms.Review(ctx, id, reviewed, category)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError(err.Error())
		}
		s.logger.Error("failed to review term", "term_id", id, "error", err)
		return nil, common.InternalErrorf("review term: %v", err)
	}
	s.logger.Info("term reviewed", "term_id", id, "status", reviewed, "category", term.Category)
	return &mappingpb.ReviewTermResponse{Term: toPBTerm(term)}, nil
}

func (s *TermService) GetTermStats(ctx context.Context, req *mappingpb.GetTermStatsRequest) (*mappingpb.GetTermStatsResponse, error) {
	formatID, err := uuid.Parse(req.GetFormatId())
	if err != nil {
		return nil, common.InvalidArgumentError("format_id must be a UUID")
	}

	terms, err := s.terms.ListByFormat(ctx, formatID)
	if err != nil {
		s.logger.Error("failed to list terms", "format_id", formatID, "error", err)
		return nil, common.InternalErrorf("list terms: %v", err)
	}

	resp := &mappingpb.GetTermStatsResponse{
		Total:      int32(len(terms)),
		ByStatus:   map[string]int32{},
		ByCategory: map[string]int32{},
	}
	for _, term := range terms {
		resp.ByStatus[string(term.Status)]++
		resp.ByCategory[string(term.Category)]++
	}
	return resp, nil
}

func (s *TermService) ExportTerms(ctx context.Context, req *mappingpb.ExportTermsRequest) (*mappingpb.ExportTermsResponse, error) {
	formatID, err := uuid.Parse(req.GetFormatId())
	if err != nil {
		return nil, common.InvalidArgumentError("format_id must be a UUID")
	}

	xlsx, err := s.exporter.ExportTermsXLSX(ctx, formatID)
	if err != nil {
		s.logger.Error("failed to export terms", "format_id", formatID, "error", err)
		return nil, common.InternalErrorf("export terms: %v", err)
	}
	return &mappingpb.ExportTermsResponse{Xlsx: xlsx}, nil
}
