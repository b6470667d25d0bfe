// Code generated by ent, DO NOT EDIT.

package documentformat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldOrganizationID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldName, v))
}

// HeaderPattern applies equality check predicate on the "header_pattern" field. It's identical to HeaderPatternEQ.
func HeaderPattern(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldHeaderPattern, v))
}

// LogoSignature applies equality check predicate on the "logo_signature" field. It's identical to LogoSignatureEQ.
func LogoSignature(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldLogoSignature, v))
}

// LayoutFingerprint applies equality check predicate on the "layout_fingerprint" field. It's identical to LayoutFingerprintEQ.
func LayoutFingerprint(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldLayoutFingerprint, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldFingerprint, v))
}

// AutoCreated applies equality check predicate on the "auto_created" field. It's identical to AutoCreatedEQ.
func AutoCreated(v bool) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldAutoCreated, v))
}

// SourceDocumentID applies equality check predicate on the "source_document_id" field. It's identical to SourceDocumentIDEQ.
func SourceDocumentID(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldSourceDocumentID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldIsActive, v))
}

// MatchCount applies equality check predicate on the "match_count" field. It's identical to MatchCountEQ.
func MatchCount(v int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldMatchCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContainsFold(FieldName, v))
}

// HeaderPatternEQ applies the EQ predicate on the "header_pattern" field.
func HeaderPatternEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldHeaderPattern, v))
}

// HeaderPatternNEQ applies the NEQ predicate on the "header_pattern" field.
func HeaderPatternNEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldHeaderPattern, v))
}

// HeaderPatternIn applies the In predicate on the "header_pattern" field.
func HeaderPatternIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldHeaderPattern, vs...))
}

// HeaderPatternNotIn applies the NotIn predicate on the "header_pattern" field.
func HeaderPatternNotIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldHeaderPattern, vs...))
}

// HeaderPatternGT applies the GT predicate on the "header_pattern" field.
func HeaderPatternGT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldHeaderPattern, v))
}

// HeaderPatternGTE applies the GTE predicate on the "header_pattern" field.
func HeaderPatternGTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldHeaderPattern, v))
}

// HeaderPatternLT applies the LT predicate on the "header_pattern" field.
func HeaderPatternLT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldHeaderPattern, v))
}

// HeaderPatternLTE applies the LTE predicate on the "header_pattern" field.
func HeaderPatternLTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldHeaderPattern, v))
}

// HeaderPatternContains applies the Contains predicate on the "header_pattern" field.
func HeaderPatternContains(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContains(FieldHeaderPattern, v))
}

// HeaderPatternHasPrefix applies the HasPrefix predicate on the "header_pattern" field.
func HeaderPatternHasPrefix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasPrefix(FieldHeaderPattern, v))
}

// HeaderPatternHasSuffix applies the HasSuffix predicate on the "header_pattern" field.
func HeaderPatternHasSuffix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasSuffix(FieldHeaderPattern, v))
}

// HeaderPatternIsNil applies the IsNil predicate on the "header_pattern" field.
func HeaderPatternIsNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIsNull(FieldHeaderPattern))
}

// HeaderPatternNotNil applies the NotNil predicate on the "header_pattern" field.
func HeaderPatternNotNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotNull(FieldHeaderPattern))
}

// HeaderPatternEqualFold applies the EqualFold predicate on the "header_pattern" field.
func HeaderPatternEqualFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEqualFold(FieldHeaderPattern, v))
}

// HeaderPatternContainsFold applies the ContainsFold predicate on the "header_pattern" field.
func HeaderPatternContainsFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContainsFold(FieldHeaderPattern, v))
}

// LogoSignatureEQ applies the EQ predicate on the "logo_signature" field.
func LogoSignatureEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldLogoSignature, v))
}

// LogoSignatureNEQ applies the NEQ predicate on the "logo_signature" field.
func LogoSignatureNEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldLogoSignature, v))
}

// LogoSignatureIn applies the In predicate on the "logo_signature" field.
func LogoSignatureIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldLogoSignature, vs...))
}

// LogoSignatureNotIn applies the NotIn predicate on the "logo_signature" field.
func LogoSignatureNotIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldLogoSignature, vs...))
}

// LogoSignatureGT applies the GT predicate on the "logo_signature" field.
func LogoSignatureGT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldLogoSignature, v))
}

// LogoSignatureGTE applies the GTE predicate on the "logo_signature" field.
func LogoSignatureGTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldLogoSignature, v))
}

// LogoSignatureLT applies the LT predicate on the "logo_signature" field.
func LogoSignatureLT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldLogoSignature, v))
}

// LogoSignatureLTE applies the LTE predicate on the "logo_signature" field.
func LogoSignatureLTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldLogoSignature, v))
}

// LogoSignatureContains applies the Contains predicate on the "logo_signature" field.
func LogoSignatureContains(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContains(FieldLogoSignature, v))
}

// LogoSignatureHasPrefix applies the HasPrefix predicate on the "logo_signature" field.
func LogoSignatureHasPrefix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasPrefix(FieldLogoSignature, v))
}

// LogoSignatureHasSuffix applies the HasSuffix predicate on the "logo_signature" field.
func LogoSignatureHasSuffix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasSuffix(FieldLogoSignature, v))
}

// LogoSignatureIsNil applies the IsNil predicate on the "logo_signature" field.
func LogoSignatureIsNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIsNull(FieldLogoSignature))
}

// LogoSignatureNotNil applies the NotNil predicate on the "logo_signature" field.
func LogoSignatureNotNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotNull(FieldLogoSignature))
}

// LogoSignatureEqualFold applies the EqualFold predicate on the "logo_signature" field.
func LogoSignatureEqualFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEqualFold(FieldLogoSignature, v))
}

// LogoSignatureContainsFold applies the ContainsFold predicate on the "logo_signature" field.
func LogoSignatureContainsFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContainsFold(FieldLogoSignature, v))
}

// LayoutFingerprintEQ applies the EQ predicate on the "layout_fingerprint" field.
func LayoutFingerprintEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldLayoutFingerprint, v))
}

// LayoutFingerprintNEQ applies the NEQ predicate on the "layout_fingerprint" field.
func LayoutFingerprintNEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldLayoutFingerprint, v))
}

// LayoutFingerprintIn applies the In predicate on the "layout_fingerprint" field.
func LayoutFingerprintIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldLayoutFingerprint, vs...))
}

// LayoutFingerprintNotIn applies the NotIn predicate on the "layout_fingerprint" field.
func LayoutFingerprintNotIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldLayoutFingerprint, vs...))
}

// LayoutFingerprintGT applies the GT predicate on the "layout_fingerprint" field.
func LayoutFingerprintGT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldLayoutFingerprint, v))
}

// LayoutFingerprintGTE applies the GTE predicate on the "layout_fingerprint" field.
func LayoutFingerprintGTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldLayoutFingerprint, v))
}

// LayoutFingerprintLT applies the LT predicate on the "layout_fingerprint" field.
func LayoutFingerprintLT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldLayoutFingerprint, v))
}

// LayoutFingerprintLTE applies the LTE predicate on the "layout_fingerprint" field.
func LayoutFingerprintLTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldLayoutFingerprint, v))
}

// LayoutFingerprintContains applies the Contains predicate on the "layout_fingerprint" field.
func LayoutFingerprintContains(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContains(FieldLayoutFingerprint, v))
}

// LayoutFingerprintHasPrefix applies the HasPrefix predicate on the "layout_fingerprint" field.
func LayoutFingerprintHasPrefix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasPrefix(FieldLayoutFingerprint, v))
}

// LayoutFingerprintHasSuffix applies the HasSuffix predicate on the "layout_fingerprint" field.
func LayoutFingerprintHasSuffix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasSuffix(FieldLayoutFingerprint, v))
}

// LayoutFingerprintIsNil applies the IsNil predicate on the "layout_fingerprint" field.
func LayoutFingerprintIsNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIsNull(FieldLayoutFingerprint))
}

// LayoutFingerprintNotNil applies the NotNil predicate on the "layout_fingerprint" field.
func LayoutFingerprintNotNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotNull(FieldLayoutFingerprint))
}

// LayoutFingerprintEqualFold applies the EqualFold predicate on the "layout_fingerprint" field.
func LayoutFingerprintEqualFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEqualFold(FieldLayoutFingerprint, v))
}

// LayoutFingerprintContainsFold applies the ContainsFold predicate on the "layout_fingerprint" field.
func LayoutFingerprintContainsFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContainsFold(FieldLayoutFingerprint, v))
}

// DetectedFieldsIsNil applies the IsNil predicate on the "detected_fields" field.
func DetectedFieldsIsNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIsNull(FieldDetectedFields))
}

// DetectedFieldsNotNil applies the NotNil predicate on the "detected_fields" field.
func DetectedFieldsNotNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotNull(FieldDetectedFields))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldContainsFold(FieldFingerprint, v))
}

// AutoCreatedEQ applies the EQ predicate on the "auto_created" field.
func AutoCreatedEQ(v bool) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldAutoCreated, v))
}

// AutoCreatedNEQ applies the NEQ predicate on the "auto_created" field.
func AutoCreatedNEQ(v bool) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldAutoCreated, v))
}

// SourceDocumentIDEQ applies the EQ predicate on the "source_document_id" field.
func SourceDocumentIDEQ(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDNEQ applies the NEQ predicate on the "source_document_id" field.
func SourceDocumentIDNEQ(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDIn applies the In predicate on the "source_document_id" field.
func SourceDocumentIDIn(vs ...uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDNotIn applies the NotIn predicate on the "source_document_id" field.
func SourceDocumentIDNotIn(vs ...uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDGT applies the GT predicate on the "source_document_id" field.
func SourceDocumentIDGT(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldSourceDocumentID, v))
}

// SourceDocumentIDGTE applies the GTE predicate on the "source_document_id" field.
func SourceDocumentIDGTE(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldSourceDocumentID, v))
}

// SourceDocumentIDLT applies the LT predicate on the "source_document_id" field.
func SourceDocumentIDLT(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldSourceDocumentID, v))
}

// SourceDocumentIDLTE applies the LTE predicate on the "source_document_id" field.
func SourceDocumentIDLTE(v uuid.UUID) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldSourceDocumentID, v))
}

// SourceDocumentIDIsNil applies the IsNil predicate on the "source_document_id" field.
func SourceDocumentIDIsNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIsNull(FieldSourceDocumentID))
}

// SourceDocumentIDNotNil applies the NotNil predicate on the "source_document_id" field.
func SourceDocumentIDNotNil() predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotNull(FieldSourceDocumentID))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldIsActive, v))
}

// MatchCountEQ applies the EQ predicate on the "match_count" field.
func MatchCountEQ(v int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldMatchCount, v))
}

// MatchCountNEQ applies the NEQ predicate on the "match_count" field.
func MatchCountNEQ(v int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldMatchCount, v))
}

// MatchCountIn applies the In predicate on the "match_count" field.
func MatchCountIn(vs ...int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldMatchCount, vs...))
}

// MatchCountNotIn applies the NotIn predicate on the "match_count" field.
func MatchCountNotIn(vs ...int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldMatchCount, vs...))
}

// MatchCountGT applies the GT predicate on the "match_count" field.
func MatchCountGT(v int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldMatchCount, v))
}

// MatchCountGTE applies the GTE predicate on the "match_count" field.
func MatchCountGTE(v int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldMatchCount, v))
}

// MatchCountLT applies the LT predicate on the "match_count" field.
func MatchCountLT(v int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldMatchCount, v))
}

// MatchCountLTE applies the LTE predicate on the "match_count" field.
func MatchCountLTE(v int) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldMatchCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTerms applies the HasEdge predicate on the "terms" edge.
func HasTerms() predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TermsTable, TermsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTermsWith applies the HasEdge predicate on the "terms" edge with a given conditions (other predicates).
func HasTermsWith(preds ...predicate.VocabularyTerm) predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := newTermsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMappingConfigs applies the HasEdge predicate on the "mapping_configs" edge.
func HasMappingConfigs() predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MappingConfigsTable, MappingConfigsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMappingConfigsWith applies the HasEdge predicate on the "mapping_configs" edge with a given conditions (other predicates).
func HasMappingConfigsWith(preds ...predicate.FieldMappingConfig) predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := newMappingConfigsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromptConfigs applies the HasEdge predicate on the "prompt_configs" edge.
func HasPromptConfigs() predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromptConfigsTable, PromptConfigsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptConfigsWith applies the HasEdge predicate on the "prompt_configs" edge with a given conditions (other predicates).
func HasPromptConfigsWith(preds ...predicate.PromptConfig) predicate.DocumentFormat {
	return predicate.DocumentFormat(func(s *sql.Selector) {
		step := newPromptConfigsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentFormat) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentFormat) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentFormat) predicate.DocumentFormat {
	return predicate.DocumentFormat(sql.NotPredicates(p))
}
