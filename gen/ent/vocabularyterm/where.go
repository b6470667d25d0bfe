// Code generated by ent, DO NOT EDIT.

package vocabularyterm

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldID, id))
}

// FormatID applies equality check predicate on the "format_id" field. It's identical to FormatIDEQ.
func FormatID(v uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldFormatID, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldRawText, v))
}

// NormalizedText applies equality check predicate on the "normalized_text" field. It's identical to NormalizedTextEQ.
func NormalizedText(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldNormalizedText, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldCategory, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldStatus, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldOccurrenceCount, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldLastSeen, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldUpdatedAt, v))
}

// FormatIDEQ applies the EQ predicate on the "format_id" field.
func FormatIDEQ(v uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldFormatID, v))
}

// FormatIDNEQ applies the NEQ predicate on the "format_id" field.
func FormatIDNEQ(v uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldFormatID, v))
}

// FormatIDIn applies the In predicate on the "format_id" field.
func FormatIDIn(vs ...uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldFormatID, vs...))
}

// FormatIDNotIn applies the NotIn predicate on the "format_id" field.
func FormatIDNotIn(vs ...uuid.UUID) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldFormatID, vs...))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContainsFold(FieldRawText, v))
}

// NormalizedTextEQ applies the EQ predicate on the "normalized_text" field.
func NormalizedTextEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldNormalizedText, v))
}

// NormalizedTextNEQ applies the NEQ predicate on the "normalized_text" field.
func NormalizedTextNEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldNormalizedText, v))
}

// NormalizedTextIn applies the In predicate on the "normalized_text" field.
func NormalizedTextIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldNormalizedText, vs...))
}

// NormalizedTextNotIn applies the NotIn predicate on the "normalized_text" field.
func NormalizedTextNotIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldNormalizedText, vs...))
}

// NormalizedTextGT applies the GT predicate on the "normalized_text" field.
func NormalizedTextGT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldNormalizedText, v))
}

// NormalizedTextGTE applies the GTE predicate on the "normalized_text" field.
func NormalizedTextGTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldNormalizedText, v))
}

// NormalizedTextLT applies the LT predicate on the "normalized_text" field.
func NormalizedTextLT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldNormalizedText, v))
}

// NormalizedTextLTE applies the LTE predicate on the "normalized_text" field.
func NormalizedTextLTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldNormalizedText, v))
}

// NormalizedTextContains applies the Contains predicate on the "normalized_text" field.
func NormalizedTextContains(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContains(FieldNormalizedText, v))
}

// NormalizedTextHasPrefix applies the HasPrefix predicate on the "normalized_text" field.
func NormalizedTextHasPrefix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasPrefix(FieldNormalizedText, v))
}

// NormalizedTextHasSuffix applies the HasSuffix predicate on the "normalized_text" field.
func NormalizedTextHasSuffix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasSuffix(FieldNormalizedText, v))
}

// NormalizedTextEqualFold applies the EqualFold predicate on the "normalized_text" field.
func NormalizedTextEqualFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEqualFold(FieldNormalizedText, v))
}

// NormalizedTextContainsFold applies the ContainsFold predicate on the "normalized_text" field.
func NormalizedTextContainsFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContainsFold(FieldNormalizedText, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContainsFold(FieldCategory, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldContainsFold(FieldStatus, v))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldOccurrenceCount, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldLastSeen, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFormat applies the HasEdge predicate on the "format" edge.
func HasFormat() predicate.VocabularyTerm {
	return predicate.VocabularyTerm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FormatTable, FormatColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFormatWith applies the HasEdge predicate on the "format" edge with a given conditions (other predicates).
func HasFormatWith(preds ...predicate.DocumentFormat) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(func(s *sql.Selector) {
		step := newFormatStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VocabularyTerm) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VocabularyTerm) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VocabularyTerm) predicate.VocabularyTerm {
	return predicate.VocabularyTerm(sql.NotPredicates(p))
}
