// Package pipeline runs the per-document sequence: issuer, format,
// config resolution, field mapping, term learning. One invocation per
// document; stages run in strict order because each stage's output is
// the next stage's input.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/common"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/format"
	"github.com/laitim2001/ai-document-extraction/internal/issuer"
	"github.com/laitim2001/ai-document-extraction/internal/mapping"
	"github.com/laitim2001/ai-document-extraction/internal/resolver"
	"github.com/laitim2001/ai-document-extraction/internal/vocab"
)

// Result bundles everything one document run produced.
type Result struct {
	Record *entity.MappedRecord
	Issuer *issuer.Match
	Format *format.Match
	Terms  *vocab.Result
}

// Processor wires the stages together. It holds no per-document state;
// independent instances may run concurrently.
type Processor struct {
	issuers  *issuer.Matcher
	formats  *format.Matcher
	resolver *resolver.Resolver
	applier  *mapping.Applier
	learner  *vocab.Learner
	logger   *slog.Logger
}

func NewProcessor(
	issuers *issuer.Matcher,
	formats *format.Matcher,
	res *resolver.Resolver,
	applier *mapping.Applier,
	learner *vocab.Learner,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		issuers:  issuers,
		formats:  formats,
		resolver: res,
		applier:  applier,
		learner:  learner,
		logger:   logger,
	}
}

// Process runs one document through the full pipeline. An unresolved
// issuer is not an error: the document degrades to unidentified
// processing with whatever global or built-in config applies, and no
// terms are learned because there is no format to attach them to.
func (p *Processor) Process(ctx context.Context, raw *entity.RawExtraction) (*Result, error) {
	logger := p.logger.With("document_id", raw.DocumentID)

	issuerMatch, err := p.issuers.Identify(ctx, raw.IssuerName, raw.IssuerConfidence, &raw.DocumentID)
	if err != nil {
		var unresolved *common.UnresolvedIssuerError
		if !errors.As(err, &unresolved) {
			return nil, fmt.Errorf("identify issuer: %w", err)
		}
		return p.processUnidentified(ctx, raw, logger)
	}
	orgID := issuerMatch.Organization.ID

	formatMatch, err := p.formats.Classify(ctx, orgID, format.Features{
		HeaderText:        raw.HeaderText,
		LogoSignature:     raw.LogoSignature,
		LayoutFingerprint: raw.LayoutFingerprint,
		DetectedFields:    raw.DetectedFields,
	}, &raw.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("classify format: %w", err)
	}
	formatID := formatMatch.Format.ID

	resolved, err := p.resolver.ResolveMapping(ctx, &orgID, &formatID)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}

	record := p.applier.Apply(raw, resolved.Config, resolved.Tier)
	record.OrganizationID = &orgID
	record.FormatID = &formatID

	terms, err := p.learner.Learn(ctx, record, formatID)
	if err != nil {
		return nil, fmt.Errorf("learn terms: %w", err)
	}

	logger.Info("pipeline.process.done",
		"organization_id", orgID, "format_id", formatID,
		"issuer_method", issuerMatch.Method, "format_method", formatMatch.Method,
		"tier", record.Tier, "status", record.Status,
		"terms_new", terms.RecordedNew, "terms_seen", terms.RecordedSeen)
	return &Result{Record: record, Issuer: issuerMatch, Format: formatMatch, Terms: terms}, nil
}

// processUnidentified maps a document whose issuer could not be
// resolved. The record is still emitted so nothing is silently lost;
// the status tells the caller to route it for manual handling.
func (p *Processor) processUnidentified(ctx context.Context, raw *entity.RawExtraction, logger *slog.Logger) (*Result, error) {
	resolved, err := p.resolver.ResolveMapping(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve fallback config: %w", err)
	}

	record := p.applier.Apply(raw, resolved.Config, resolved.Tier)
	record.Status = constants.DocumentUnidentified

	logger.Warn("pipeline.process.unidentified",
		"issuer_name", raw.IssuerName, "issuer_confidence", raw.IssuerConfidence, "tier", record.Tier)
	return &Result{Record: record, Terms: &vocab.Result{}}, nil
}
