package server

import (
	"time"

	"github.com/google/uuid"

	mappingpb "github.com/laitim2001/ai-document-extraction/gen/proto/mapping/v1"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/format"
	"github.com/laitim2001/ai-document-extraction/internal/issuer"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func toPBRecord(record *entity.MappedRecord) *mappingpb.MappedRecord {
	out := &mappingpb.MappedRecord{
		DocumentId:     record.DocumentID.String(),
		OrganizationId: uuidString(record.OrganizationID),
		FormatId:       uuidString(record.FormatID),
		Fields:         record.Fields,
		Tier:           string(record.Tier),
		Status:         string(record.Status),
		Stats: &mappingpb.ExtractionStats{
			TotalFields:  int32(record.Stats.TotalFields),
			MappedFields: int32(record.Stats.MappedFields),
			FailedFields: int32(record.Stats.FailedFields),
			ProcessingMs: record.Stats.ProcessingMs,
		},
	}
	for _, item := range record.LineItems {
		out.LineItems = append(out.LineItems, &mappingpb.LineItem{Fields: item})
	}
	for _, a := range record.Audit {
		out.Audit = append(out.Audit, &mappingpb.FieldAudit{
			TargetField: a.TargetField,
			SourceField: a.SourceField,
			Status:      string(a.Status),
			RawValue:    a.RawValue,
			Value:       a.Value,
			LineItem:    int32(a.LineItem),
			Error:       a.Error,
		})
	}
	return out
}

func toPBIssuerMatch(match *issuer.Match) *mappingpb.IssuerMatch {
	if match == nil {
		return nil
	}
	return &mappingpb.IssuerMatch{
		Organization: toPBOrganization(match.Organization),
		Method:       string(match.Method),
		Confidence:   match.Confidence,
		MatchedOn:    match.MatchedOn,
	}
}

func toPBOrganization(org *entity.Organization) *mappingpb.Organization {
	return &mappingpb.Organization{
		Id:          org.ID.String(),
		Name:        org.Name,
		Code:        org.Code,
		Aliases:     org.Aliases,
		AutoCreated: org.AutoCreated,
		IsActive:    org.IsActive,
		CreatedAt:   org.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   org.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toPBFormatMatch(match *format.Match) *mappingpb.FormatMatch {
	if match == nil {
		return nil
	}
	return &mappingpb.FormatMatch{
		Format:     toPBFormat(match.Format),
		Method:     string(match.Method),
		Confidence: match.Confidence,
	}
}

func toPBFormat(f *entity.DocumentFormat) *mappingpb.DocumentFormat {
	return &mappingpb.DocumentFormat{
		Id:             f.ID.String(),
		OrganizationId: f.OrganizationID.String(),
		Name:           f.Name,
		Fingerprint:    f.Fingerprint,
		AutoCreated:    f.AutoCreated,
		IsActive:       f.IsActive,
		MatchCount:     int32(f.MatchCount),
		CreatedAt:      f.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      f.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toPBMappingConfig(cfg *entity.FieldMappingConfig) *mappingpb.MappingConfig {
	out := &mappingpb.MappingConfig{
		Id:             cfg.ID.String(),
		OrganizationId: uuidString(cfg.OrganizationID),
		FormatId:       uuidString(cfg.FormatID),
		Name:           cfg.Name,
		IsActive:       cfg.IsActive,
		Priority:       int32(cfg.Priority),
		CreatedBy:      cfg.CreatedBy,
		CreatedAt:      cfg.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      cfg.UpdatedAt.Format(time.RFC3339Nano),
	}
	for _, m := range cfg.Mappings {
		out.Mappings = append(out.Mappings, toPBMapping(m))
	}
	return out
}

func toPBMapping(m entity.FieldMapping) *mappingpb.FieldMapping {
	return &mappingpb.FieldMapping{
		SourceField:  m.SourceField,
		TargetField:  m.TargetField,
		Required:     m.Required,
		DefaultValue: m.Default,
		Transform:    string(m.Transform),
		IsLineItem:   m.IsLineItem,
		Options: &mappingpb.TransformOptions{
			DateFormat:  m.Options.DateFormat,
			Currency:    m.Options.Currency,
			Locale:      m.Options.Locale,
			PatternName: m.Options.PatternName,
			Delimiter:   m.Options.Delimiter,
			Index:       int32(m.Options.Index),
			Search:      m.Options.Search,
			Replacement: m.Options.Replacement,
			Prefix:      m.Options.Prefix,
			Suffix:      m.Options.Suffix,
		},
	}
}

func fromPBMappings(in []*mappingpb.FieldMapping) []entity.FieldMapping {
	out := make([]entity.FieldMapping, 0, len(in))
	for _, m := range in {
		mapping := entity.FieldMapping{
			SourceField: m.GetSourceField(),
			TargetField: m.GetTargetField(),
			Required:    m.GetRequired(),
			Default:     m.DefaultValue,
			Transform:   transform.Kind(m.GetTransform()),
			IsLineItem:  m.GetIsLineItem(),
		}
		if opts := m.GetOptions(); opts != nil {
			mapping.Options = transform.Options{
				DateFormat:  opts.GetDateFormat(),
				Currency:    opts.GetCurrency(),
				Locale:      opts.GetLocale(),
				PatternName: opts.GetPatternName(),
				Delimiter:   opts.GetDelimiter(),
				Index:       int(opts.GetIndex()),
				Search:      opts.GetSearch(),
				Replacement: opts.GetReplacement(),
				Prefix:      opts.GetPrefix(),
				Suffix:      opts.GetSuffix(),
			}
		}
		out = append(out, mapping)
	}
	return out
}

func toPBPromptConfig(cfg *entity.PromptConfig) *mappingpb.PromptConfig {
	return &mappingpb.PromptConfig{
		Id:             cfg.ID.String(),
		OrganizationId: uuidString(cfg.OrganizationID),
		FormatId:       uuidString(cfg.FormatID),
		Purpose:        string(cfg.Purpose),
		Template:       cfg.Template,
		Version:        int32(cfg.Version),
		IsActive:       cfg.IsActive,
		Priority:       int32(cfg.Priority),
		CreatedAt:      cfg.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      cfg.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toPBTerm(term *entity.VocabularyTerm) *mappingpb.VocabularyTerm {
	return &mappingpb.VocabularyTerm{
		Id:              term.ID.String(),
		FormatId:        term.FormatID.String(),
		RawText:         term.RawText,
		NormalizedText:  term.NormalizedText,
		Category:        string(term.Category),
		Status:          string(term.Status),
		OccurrenceCount: int32(term.OccurrenceCount),
		FirstSeen:       term.FirstSeen.Format(time.RFC3339Nano),
		LastSeen:        term.LastSeen.Format(time.RFC3339Nano),
		Confidence:      term.Confidence,
	}
}

// parseScopeID parses an optional UUID field; empty means unscoped.
func parseScopeID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
