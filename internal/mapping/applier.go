// Package mapping applies a resolved field-mapping configuration to a
// raw extraction, producing the final record and its audit trail.
package mapping

import (
	"log/slog"
	"time"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

// Applier runs one config over one extraction. It never aborts a
// document: every degraded field becomes an audit entry and the record
// is emitted regardless.
type Applier struct {
	engine *transform.Engine
	logger *slog.Logger
	now    func() time.Time
}

func NewApplier(engine *transform.Engine, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{engine: engine, logger: logger, now: time.Now}
}

// Apply maps raw through cfg. tier is recorded on the record for
// downstream audit. The returned status is IDENTIFIED when every field
// mapped cleanly and NEEDS_REVIEW when any audit entry is degraded;
// callers that could not even resolve the issuer downgrade it further.
func (a *Applier) Apply(raw *entity.RawExtraction, cfg *entity.FieldMappingConfig, tier constants.ResolutionTier) *entity.MappedRecord {
	start := a.now()
	record := &entity.MappedRecord{
		DocumentID: raw.DocumentID,
		Fields:     make(map[string]string),
		Tier:       tier,
	}

	var topLevel, lineItem []entity.FieldMapping
	for _, m := range cfg.Mappings {
		if m.IsLineItem {
			lineItem = append(lineItem, m)
		} else {
			topLevel = append(topLevel, m)
		}
	}

	for _, m := range topLevel {
		a.applyOne(raw.Fields, m, 0, record.Fields, &record.Audit)
	}

	if len(lineItem) > 0 {
		for i, item := range raw.LineItems {
			mapped := make(map[string]string)
			for _, m := range lineItem {
				a.applyOne(item, m, i+1, mapped, &record.Audit)
			}
			record.LineItems = append(record.LineItems, mapped)
		}
	}

	mapped, failed := 0, 0
	for _, entry := range record.Audit {
		switch entry.Status {
		case entity.AuditSuccess, entity.AuditDefaultValue:
			mapped++
		default:
			failed++
		}
	}
	record.Stats = entity.ExtractionStats{
		TotalFields:  len(record.Audit),
		MappedFields: mapped,
		FailedFields: failed,
		ProcessingMs: a.now().Sub(start).Milliseconds(),
	}
	record.Status = constants.DocumentIdentified
	if failed > 0 {
		record.Status = constants.DocumentNeedsReview
	}

	a.logger.Info("mapping.apply.done",
		"document_id", raw.DocumentID, "tier", tier, "status", record.Status,
		"mapped", mapped, "failed", failed, "line_items", len(record.LineItems))
	return record
}

// kindOrNone maps an omitted transform to the identity kind.
func kindOrNone(k transform.Kind) transform.Kind {
	if k == "" {
		return transform.KindNone
	}
	return k
}

// applyOne maps a single field. lineItem is 1-based for audit entries,
// 0 for top-level fields.
func (a *Applier) applyOne(fields map[string]any, m entity.FieldMapping, lineItem int, out map[string]string, audit *[]entity.FieldAudit) {
	entry := entity.FieldAudit{
		TargetField: m.TargetField,
		SourceField: m.SourceField,
		LineItem:    lineItem,
	}

	value, found := lookupPath(fields, m.SourceField)
	raw, ok := "", false
	if found {
		raw, ok = stringify(value)
	}

	if !ok {
		if m.Default != nil {
			out[m.TargetField] = *m.Default
			entry.Status = entity.AuditDefaultValue
			entry.Value = *m.Default
			*audit = append(*audit, entry)
			return
		}
		if !m.Required {
			// absent optional field: no outcome to record
			return
		}
		entry.Status = entity.AuditMissingRequired
		*audit = append(*audit, entry)
		return
	}

	entry.RawValue = raw
	transformed, applied, err := a.engine.Apply(raw, kindOrNone(m.Transform), m.Options)
	if !applied {
		// keep the untransformed value so the record stays complete
		out[m.TargetField] = raw
		entry.Status = entity.AuditTransformationFailed
		entry.Value = raw
		if err != nil {
			entry.Error = err.Error()
		}
		*audit = append(*audit, entry)
		return
	}

	out[m.TargetField] = transformed
	entry.Status = entity.AuditSuccess
	entry.Value = transformed
	*audit = append(*audit, entry)
}
