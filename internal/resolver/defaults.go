package resolver

import (
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/transform"
)

// DefaultMappingConfig is the built-in fallback mapping set. It covers
// the field names extraction emits for common invoice layouts so the
// pipeline always produces a record, even for a tenant with no stored
// configuration at all.
func DefaultMappingConfig() *entity.FieldMappingConfig {
	return &entity.FieldMappingConfig{
		Name:     "built-in default",
		IsActive: true,
		Mappings: []entity.FieldMapping{
			{SourceField: "invoice_number", TargetField: "invoiceNumber", Required: true, Transform: transform.KindTrim},
			{SourceField: "invoice_date", TargetField: "invoiceDate", Transform: transform.KindFormatDate,
				Options: transform.Options{DateFormat: "2006-01-02"}},
			{SourceField: "due_date", TargetField: "dueDate", Transform: transform.KindFormatDate,
				Options: transform.Options{DateFormat: "2006-01-02"}},
			{SourceField: "vendor_name", TargetField: "companyName", Transform: transform.KindTrim},
			{SourceField: "currency", TargetField: "currency", Transform: transform.KindUpper},
			{SourceField: "total_amount", TargetField: "totalAmount", Transform: transform.KindExtractNumber},
			{SourceField: "tax_amount", TargetField: "taxAmount", Transform: transform.KindExtractNumber},
			{SourceField: "description", TargetField: "description", Transform: transform.KindTrim},
			{SourceField: "description", TargetField: "description", Transform: transform.KindTrim, IsLineItem: true},
			{SourceField: "quantity", TargetField: "quantity", Transform: transform.KindExtractNumber, IsLineItem: true},
			{SourceField: "unit_price", TargetField: "unitPrice", Transform: transform.KindExtractNumber, IsLineItem: true},
			{SourceField: "amount", TargetField: "amount", Transform: transform.KindExtractNumber, IsLineItem: true},
		},
	}
}
