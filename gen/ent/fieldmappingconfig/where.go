// Code generated by ent, DO NOT EDIT.

package fieldmappingconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLTE(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldOrganizationID, v))
}

// FormatID applies equality check predicate on the "format_id" field. It's identical to FormatIDEQ.
func FormatID(v uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldFormatID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldName, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldIsActive, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldPriority, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDIsNil applies the IsNil predicate on the "organization_id" field.
func OrganizationIDIsNil() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIsNull(FieldOrganizationID))
}

// OrganizationIDNotNil applies the NotNil predicate on the "organization_id" field.
func OrganizationIDNotNil() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotNull(FieldOrganizationID))
}

// FormatIDEQ applies the EQ predicate on the "format_id" field.
func FormatIDEQ(v uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldFormatID, v))
}

// FormatIDNEQ applies the NEQ predicate on the "format_id" field.
func FormatIDNEQ(v uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldFormatID, v))
}

// FormatIDIn applies the In predicate on the "format_id" field.
func FormatIDIn(vs ...uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldFormatID, vs...))
}

// FormatIDNotIn applies the NotIn predicate on the "format_id" field.
func FormatIDNotIn(vs ...uuid.UUID) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldFormatID, vs...))
}

// FormatIDIsNil applies the IsNil predicate on the "format_id" field.
func FormatIDIsNil() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIsNull(FieldFormatID))
}

// FormatIDNotNil applies the NotNil predicate on the "format_id" field.
func FormatIDNotNil() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotNull(FieldFormatID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldContainsFold(FieldName, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldIsActive, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLTE(FieldPriority, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFormat applies the HasEdge predicate on the "format" edge.
func HasFormat() predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FormatTable, FormatColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFormatWith applies the HasEdge predicate on the "format" edge with a given conditions (other predicates).
func HasFormatWith(preds ...predicate.DocumentFormat) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(func(s *sql.Selector) {
		step := newFormatStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldMappingConfig) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldMappingConfig) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldMappingConfig) predicate.FieldMappingConfig {
	return predicate.FieldMappingConfig(sql.NotPredicates(p))
}
