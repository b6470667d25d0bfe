// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// DocumentFormatUpdate is the builder for updating DocumentFormat entities.
type DocumentFormatUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentFormatMutation
}

// Where appends a list predicates to the DocumentFormatUpdate builder.
func (_u *DocumentFormatUpdate) Where(ps ...predicate.DocumentFormat) *DocumentFormatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *DocumentFormatUpdate) SetOrganizationID(v uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableOrganizationID(v *uuid.UUID) *DocumentFormatUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentFormatUpdate) SetName(v string) *DocumentFormatUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableName(v *string) *DocumentFormatUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHeaderPattern sets the "header_pattern" field.
func (_u *DocumentFormatUpdate) SetHeaderPattern(v string) *DocumentFormatUpdate {
	_u.mutation.SetHeaderPattern(v)
	return _u
}

// SetNillableHeaderPattern sets the "header_pattern" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableHeaderPattern(v *string) *DocumentFormatUpdate {
	if v != nil {
		_u.SetHeaderPattern(*v)
	}
	return _u
}

// ClearHeaderPattern clears the value of the "header_pattern" field.
func (_u *DocumentFormatUpdate) ClearHeaderPattern() *DocumentFormatUpdate {
	_u.mutation.ClearHeaderPattern()
	return _u
}

// SetLogoSignature sets the "logo_signature" field.
func (_u *DocumentFormatUpdate) SetLogoSignature(v string) *DocumentFormatUpdate {
	_u.mutation.SetLogoSignature(v)
	return _u
}

// SetNillableLogoSignature sets the "logo_signature" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableLogoSignature(v *string) *DocumentFormatUpdate {
	if v != nil {
		_u.SetLogoSignature(*v)
	}
	return _u
}

// ClearLogoSignature clears the value of the "logo_signature" field.
func (_u *DocumentFormatUpdate) ClearLogoSignature() *DocumentFormatUpdate {
	_u.mutation.ClearLogoSignature()
	return _u
}

// SetLayoutFingerprint sets the "layout_fingerprint" field.
func (_u *DocumentFormatUpdate) SetLayoutFingerprint(v string) *DocumentFormatUpdate {
	_u.mutation.SetLayoutFingerprint(v)
	return _u
}

// SetNillableLayoutFingerprint sets the "layout_fingerprint" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableLayoutFingerprint(v *string) *DocumentFormatUpdate {
	if v != nil {
		_u.SetLayoutFingerprint(*v)
	}
	return _u
}

// ClearLayoutFingerprint clears the value of the "layout_fingerprint" field.
func (_u *DocumentFormatUpdate) ClearLayoutFingerprint() *DocumentFormatUpdate {
	_u.mutation.ClearLayoutFingerprint()
	return _u
}

// SetDetectedFields sets the "detected_fields" field.
func (_u *DocumentFormatUpdate) SetDetectedFields(v []string) *DocumentFormatUpdate {
	_u.mutation.SetDetectedFields(v)
	return _u
}

// AppendDetectedFields appends value to the "detected_fields" field.
func (_u *DocumentFormatUpdate) AppendDetectedFields(v []string) *DocumentFormatUpdate {
	_u.mutation.AppendDetectedFields(v)
	return _u
}

// ClearDetectedFields clears the value of the "detected_fields" field.
func (_u *DocumentFormatUpdate) ClearDetectedFields() *DocumentFormatUpdate {
	_u.mutation.ClearDetectedFields()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *DocumentFormatUpdate) SetFingerprint(v string) *DocumentFormatUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableFingerprint(v *string) *DocumentFormatUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetAutoCreated sets the "auto_created" field.
func (_u *DocumentFormatUpdate) SetAutoCreated(v bool) *DocumentFormatUpdate {
	_u.mutation.SetAutoCreated(v)
	return _u
}

// SetNillableAutoCreated sets the "auto_created" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableAutoCreated(v *bool) *DocumentFormatUpdate {
	if v != nil {
		_u.SetAutoCreated(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *DocumentFormatUpdate) SetSourceDocumentID(v uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableSourceDocumentID(v *uuid.UUID) *DocumentFormatUpdate {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *DocumentFormatUpdate) ClearSourceDocumentID() *DocumentFormatUpdate {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DocumentFormatUpdate) SetIsActive(v bool) *DocumentFormatUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableIsActive(v *bool) *DocumentFormatUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetMatchCount sets the "match_count" field.
func (_u *DocumentFormatUpdate) SetMatchCount(v int) *DocumentFormatUpdate {
	_u.mutation.ResetMatchCount()
	_u.mutation.SetMatchCount(v)
	return _u
}

// SetNillableMatchCount sets the "match_count" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableMatchCount(v *int) *DocumentFormatUpdate {
	if v != nil {
		_u.SetMatchCount(*v)
	}
	return _u
}

// AddMatchCount adds value to the "match_count" field.
func (_u *DocumentFormatUpdate) AddMatchCount(v int) *DocumentFormatUpdate {
	_u.mutation.AddMatchCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentFormatUpdate) SetCreatedAt(v time.Time) *DocumentFormatUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentFormatUpdate) SetNillableCreatedAt(v *time.Time) *DocumentFormatUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentFormatUpdate) SetUpdatedAt(v time.Time) *DocumentFormatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *DocumentFormatUpdate) SetOrganization(v *Organization) *DocumentFormatUpdate {
	return _u.SetOrganizationID(v.ID)
}

// AddTermIDs adds the "terms" edge to the VocabularyTerm entity by IDs.
func (_u *DocumentFormatUpdate) AddTermIDs(ids ...uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.AddTermIDs(ids...)
	return _u
}

// AddTerms adds the "terms" edges to the VocabularyTerm entity.
func (_u *DocumentFormatUpdate) AddTerms(v ...*VocabularyTerm) *DocumentFormatUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTermIDs(ids...)
}

// AddMappingConfigIDs adds the "mapping_configs" edge to the FieldMappingConfig entity by IDs.
func (_u *DocumentFormatUpdate) AddMappingConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.AddMappingConfigIDs(ids...)
	return _u
}

// AddMappingConfigs adds the "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *DocumentFormatUpdate) AddMappingConfigs(v ...*FieldMappingConfig) *DocumentFormatUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingConfigIDs(ids...)
}

// AddPromptConfigIDs adds the "prompt_configs" edge to the PromptConfig entity by IDs.
func (_u *DocumentFormatUpdate) AddPromptConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.AddPromptConfigIDs(ids...)
	return _u
}

// AddPromptConfigs adds the "prompt_configs" edges to the PromptConfig entity.
func (_u *DocumentFormatUpdate) AddPromptConfigs(v ...*PromptConfig) *DocumentFormatUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptConfigIDs(ids...)
}

// Mutation returns the DocumentFormatMutation object of the builder.
func (_u *DocumentFormatUpdate) Mutation() *DocumentFormatMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *DocumentFormatUpdate) ClearOrganization() *DocumentFormatUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearTerms clears all "terms" edges to the VocabularyTerm entity.
func (_u *DocumentFormatUpdate) ClearTerms() *DocumentFormatUpdate {
	_u.mutation.ClearTerms()
	return _u
}

// RemoveTermIDs removes the "terms" edge to VocabularyTerm entities by IDs.
func (_u *DocumentFormatUpdate) RemoveTermIDs(ids ...uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.RemoveTermIDs(ids...)
	return _u
}

// RemoveTerms removes "terms" edges to VocabularyTerm entities.
func (_u *DocumentFormatUpdate) RemoveTerms(v ...*VocabularyTerm) *DocumentFormatUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTermIDs(ids...)
}

// ClearMappingConfigs clears all "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *DocumentFormatUpdate) ClearMappingConfigs() *DocumentFormatUpdate {
	_u.mutation.ClearMappingConfigs()
	return _u
}

// RemoveMappingConfigIDs removes the "mapping_configs" edge to FieldMappingConfig entities by IDs.
func (_u *DocumentFormatUpdate) RemoveMappingConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.RemoveMappingConfigIDs(ids...)
	return _u
}

// RemoveMappingConfigs removes "mapping_configs" edges to FieldMappingConfig entities.
func (_u *DocumentFormatUpdate) RemoveMappingConfigs(v ...*FieldMappingConfig) *DocumentFormatUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingConfigIDs(ids...)
}

// ClearPromptConfigs clears all "prompt_configs" edges to the PromptConfig entity.
func (_u *DocumentFormatUpdate) ClearPromptConfigs() *DocumentFormatUpdate {
	_u.mutation.ClearPromptConfigs()
	return _u
}

// RemovePromptConfigIDs removes the "prompt_configs" edge to PromptConfig entities by IDs.
func (_u *DocumentFormatUpdate) RemovePromptConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdate {
	_u.mutation.RemovePromptConfigIDs(ids...)
	return _u
}

// RemovePromptConfigs removes "prompt_configs" edges to PromptConfig entities.
func (_u *DocumentFormatUpdate) RemovePromptConfigs(v ...*PromptConfig) *DocumentFormatUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptConfigIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentFormatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentFormatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentFormatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentFormatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentFormatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentformat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentFormatUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documentformat.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentFormat.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := documentformat.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "DocumentFormat.fingerprint": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentFormat.organization"`)
	}
	return nil
}

func (_u *DocumentFormatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentformat.Table, documentformat.Columns, sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(documentformat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeaderPattern(); ok {
		_spec.SetField(documentformat.FieldHeaderPattern, field.TypeString, value)
	}
	if _u.mutation.HeaderPatternCleared() {
		_spec.ClearField(documentformat.FieldHeaderPattern, field.TypeString)
	}
	if value, ok := _u.mutation.LogoSignature(); ok {
		_spec.SetField(documentformat.FieldLogoSignature, field.TypeString, value)
	}
	if _u.mutation.LogoSignatureCleared() {
		_spec.ClearField(documentformat.FieldLogoSignature, field.TypeString)
	}
	if value, ok := _u.mutation.LayoutFingerprint(); ok {
		_spec.SetField(documentformat.FieldLayoutFingerprint, field.TypeString, value)
	}
	if _u.mutation.LayoutFingerprintCleared() {
		_spec.ClearField(documentformat.FieldLayoutFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedFields(); ok {
		_spec.SetField(documentformat.FieldDetectedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentformat.FieldDetectedFields, value)
		})
	}
	if _u.mutation.DetectedFieldsCleared() {
		_spec.ClearField(documentformat.FieldDetectedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(documentformat.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.AutoCreated(); ok {
		_spec.SetField(documentformat.FieldAutoCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(documentformat.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if _u.mutation.SourceDocumentIDCleared() {
		_spec.ClearField(documentformat.FieldSourceDocumentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(documentformat.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchCount(); ok {
		_spec.SetField(documentformat.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchCount(); ok {
		_spec.AddField(documentformat.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documentformat.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentformat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentformat.OrganizationTable,
			Columns: []string{documentformat.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentformat.OrganizationTable,
			Columns: []string{documentformat.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.TermsTable,
			Columns: []string{documentformat.TermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTermsIDs(); len(nodes) > 0 && !_u.mutation.TermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.TermsTable,
			Columns: []string{documentformat.TermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TermsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.TermsTable,
			Columns: []string{documentformat.TermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MappingConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.MappingConfigsTable,
			Columns: []string{documentformat.MappingConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingConfigsIDs(); len(nodes) > 0 && !_u.mutation.MappingConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.MappingConfigsTable,
			Columns: []string{documentformat.MappingConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.MappingConfigsTable,
			Columns: []string{documentformat.MappingConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.PromptConfigsTable,
			Columns: []string{documentformat.PromptConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptConfigsIDs(); len(nodes) > 0 && !_u.mutation.PromptConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.PromptConfigsTable,
			Columns: []string{documentformat.PromptConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.PromptConfigsTable,
			Columns: []string{documentformat.PromptConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentformat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentFormatUpdateOne is the builder for updating a single DocumentFormat entity.
type DocumentFormatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentFormatMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *DocumentFormatUpdateOne) SetOrganizationID(v uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentFormatUpdateOne) SetName(v string) *DocumentFormatUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableName(v *string) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHeaderPattern sets the "header_pattern" field.
func (_u *DocumentFormatUpdateOne) SetHeaderPattern(v string) *DocumentFormatUpdateOne {
	_u.mutation.SetHeaderPattern(v)
	return _u
}

// SetNillableHeaderPattern sets the "header_pattern" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableHeaderPattern(v *string) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetHeaderPattern(*v)
	}
	return _u
}

// ClearHeaderPattern clears the value of the "header_pattern" field.
func (_u *DocumentFormatUpdateOne) ClearHeaderPattern() *DocumentFormatUpdateOne {
	_u.mutation.ClearHeaderPattern()
	return _u
}

// SetLogoSignature sets the "logo_signature" field.
func (_u *DocumentFormatUpdateOne) SetLogoSignature(v string) *DocumentFormatUpdateOne {
	_u.mutation.SetLogoSignature(v)
	return _u
}

// SetNillableLogoSignature sets the "logo_signature" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableLogoSignature(v *string) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetLogoSignature(*v)
	}
	return _u
}

// ClearLogoSignature clears the value of the "logo_signature" field.
func (_u *DocumentFormatUpdateOne) ClearLogoSignature() *DocumentFormatUpdateOne {
	_u.mutation.ClearLogoSignature()
	return _u
}

// SetLayoutFingerprint sets the "layout_fingerprint" field.
func (_u *DocumentFormatUpdateOne) SetLayoutFingerprint(v string) *DocumentFormatUpdateOne {
	_u.mutation.SetLayoutFingerprint(v)
	return _u
}

// SetNillableLayoutFingerprint sets the "layout_fingerprint" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableLayoutFingerprint(v *string) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetLayoutFingerprint(*v)
	}
	return _u
}

// ClearLayoutFingerprint clears the value of the "layout_fingerprint" field.
func (_u *DocumentFormatUpdateOne) ClearLayoutFingerprint() *DocumentFormatUpdateOne {
	_u.mutation.ClearLayoutFingerprint()
	return _u
}

// SetDetectedFields sets the "detected_fields" field.
func (_u *DocumentFormatUpdateOne) SetDetectedFields(v []string) *DocumentFormatUpdateOne {
	_u.mutation.SetDetectedFields(v)
	return _u
}

// AppendDetectedFields appends value to the "detected_fields" field.
func (_u *DocumentFormatUpdateOne) AppendDetectedFields(v []string) *DocumentFormatUpdateOne {
	_u.mutation.AppendDetectedFields(v)
	return _u
}

// ClearDetectedFields clears the value of the "detected_fields" field.
func (_u *DocumentFormatUpdateOne) ClearDetectedFields() *DocumentFormatUpdateOne {
	_u.mutation.ClearDetectedFields()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *DocumentFormatUpdateOne) SetFingerprint(v string) *DocumentFormatUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableFingerprint(v *string) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetAutoCreated sets the "auto_created" field.
func (_u *DocumentFormatUpdateOne) SetAutoCreated(v bool) *DocumentFormatUpdateOne {
	_u.mutation.SetAutoCreated(v)
	return _u
}

// SetNillableAutoCreated sets the "auto_created" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableAutoCreated(v *bool) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetAutoCreated(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *DocumentFormatUpdateOne) SetSourceDocumentID(v uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableSourceDocumentID(v *uuid.UUID) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *DocumentFormatUpdateOne) ClearSourceDocumentID() *DocumentFormatUpdateOne {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DocumentFormatUpdateOne) SetIsActive(v bool) *DocumentFormatUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableIsActive(v *bool) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetMatchCount sets the "match_count" field.
func (_u *DocumentFormatUpdateOne) SetMatchCount(v int) *DocumentFormatUpdateOne {
	_u.mutation.ResetMatchCount()
	_u.mutation.SetMatchCount(v)
	return _u
}

// SetNillableMatchCount sets the "match_count" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableMatchCount(v *int) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetMatchCount(*v)
	}
	return _u
}

// AddMatchCount adds value to the "match_count" field.
func (_u *DocumentFormatUpdateOne) AddMatchCount(v int) *DocumentFormatUpdateOne {
	_u.mutation.AddMatchCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentFormatUpdateOne) SetCreatedAt(v time.Time) *DocumentFormatUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentFormatUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentFormatUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentFormatUpdateOne) SetUpdatedAt(v time.Time) *DocumentFormatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *DocumentFormatUpdateOne) SetOrganization(v *Organization) *DocumentFormatUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// AddTermIDs adds the "terms" edge to the VocabularyTerm entity by IDs.
func (_u *DocumentFormatUpdateOne) AddTermIDs(ids ...uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.AddTermIDs(ids...)
	return _u
}

// AddTerms adds the "terms" edges to the VocabularyTerm entity.
func (_u *DocumentFormatUpdateOne) AddTerms(v ...*VocabularyTerm) *DocumentFormatUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTermIDs(ids...)
}

// AddMappingConfigIDs adds the "mapping_configs" edge to the FieldMappingConfig entity by IDs.
func (_u *DocumentFormatUpdateOne) AddMappingConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.AddMappingConfigIDs(ids...)
	return _u
}

// AddMappingConfigs adds the "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *DocumentFormatUpdateOne) AddMappingConfigs(v ...*FieldMappingConfig) *DocumentFormatUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingConfigIDs(ids...)
}

// AddPromptConfigIDs adds the "prompt_configs" edge to the PromptConfig entity by IDs.
func (_u *DocumentFormatUpdateOne) AddPromptConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.AddPromptConfigIDs(ids...)
	return _u
}

// AddPromptConfigs adds the "prompt_configs" edges to the PromptConfig entity.
func (_u *DocumentFormatUpdateOne) AddPromptConfigs(v ...*PromptConfig) *DocumentFormatUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptConfigIDs(ids...)
}

// Mutation returns the DocumentFormatMutation object of the builder.
func (_u *DocumentFormatUpdateOne) Mutation() *DocumentFormatMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *DocumentFormatUpdateOne) ClearOrganization() *DocumentFormatUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearTerms clears all "terms" edges to the VocabularyTerm entity.
func (_u *DocumentFormatUpdateOne) ClearTerms() *DocumentFormatUpdateOne {
	_u.mutation.ClearTerms()
	return _u
}

// RemoveTermIDs removes the "terms" edge to VocabularyTerm entities by IDs.
func (_u *DocumentFormatUpdateOne) RemoveTermIDs(ids ...uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.RemoveTermIDs(ids...)
	return _u
}

// RemoveTerms removes "terms" edges to VocabularyTerm entities.
func (_u *DocumentFormatUpdateOne) RemoveTerms(v ...*VocabularyTerm) *DocumentFormatUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTermIDs(ids...)
}

// ClearMappingConfigs clears all "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *DocumentFormatUpdateOne) ClearMappingConfigs() *DocumentFormatUpdateOne {
	_u.mutation.ClearMappingConfigs()
	return _u
}

// RemoveMappingConfigIDs removes the "mapping_configs" edge to FieldMappingConfig entities by IDs.
func (_u *DocumentFormatUpdateOne) RemoveMappingConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.RemoveMappingConfigIDs(ids...)
	return _u
}

// RemoveMappingConfigs removes "mapping_configs" edges to FieldMappingConfig entities.
func (_u *DocumentFormatUpdateOne) RemoveMappingConfigs(v ...*FieldMappingConfig) *DocumentFormatUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingConfigIDs(ids...)
}

// ClearPromptConfigs clears all "prompt_configs" edges to the PromptConfig entity.
func (_u *DocumentFormatUpdateOne) ClearPromptConfigs() *DocumentFormatUpdateOne {
	_u.mutation.ClearPromptConfigs()
	return _u
}

// RemovePromptConfigIDs removes the "prompt_configs" edge to PromptConfig entities by IDs.
func (_u *DocumentFormatUpdateOne) RemovePromptConfigIDs(ids ...uuid.UUID) *DocumentFormatUpdateOne {
	_u.mutation.RemovePromptConfigIDs(ids...)
	return _u
}

// RemovePromptConfigs removes "prompt_configs" edges to PromptConfig entities.
func (_u *DocumentFormatUpdateOne) RemovePromptConfigs(v ...*PromptConfig) *DocumentFormatUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptConfigIDs(ids...)
}

// Where appends a list predicates to the DocumentFormatUpdate builder.
func (_u *DocumentFormatUpdateOne) Where(ps ...predicate.DocumentFormat) *DocumentFormatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentFormatUpdateOne) Select(field string, fields ...string) *DocumentFormatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentFormat entity.
func (_u *DocumentFormatUpdateOne) Save(ctx context.Context) (*DocumentFormat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentFormatUpdateOne) SaveX(ctx context.Context) *DocumentFormat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentFormatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentFormatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentFormatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentformat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentFormatUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documentformat.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentFormat.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := documentformat.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "DocumentFormat.fingerprint": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentFormat.organization"`)
	}
	return nil
}

func (_u *DocumentFormatUpdateOne) sqlSave(ctx context.Context) (_node *DocumentFormat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentformat.Table, documentformat.Columns, sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentFormat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentformat.FieldID)
		for _, f := range fields {
			if !documentformat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentformat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(documentformat.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HeaderPattern(); ok {
		_spec.SetField(documentformat.FieldHeaderPattern, field.TypeString, value)
	}
	if _u.mutation.HeaderPatternCleared() {
		_spec.ClearField(documentformat.FieldHeaderPattern, field.TypeString)
	}
	if value, ok := _u.mutation.LogoSignature(); ok {
		_spec.SetField(documentformat.FieldLogoSignature, field.TypeString, value)
	}
	if _u.mutation.LogoSignatureCleared() {
		_spec.ClearField(documentformat.FieldLogoSignature, field.TypeString)
	}
	if value, ok := _u.mutation.LayoutFingerprint(); ok {
		_spec.SetField(documentformat.FieldLayoutFingerprint, field.TypeString, value)
	}
	if _u.mutation.LayoutFingerprintCleared() {
		_spec.ClearField(documentformat.FieldLayoutFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedFields(); ok {
		_spec.SetField(documentformat.FieldDetectedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentformat.FieldDetectedFields, value)
		})
	}
	if _u.mutation.DetectedFieldsCleared() {
		_spec.ClearField(documentformat.FieldDetectedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(documentformat.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.AutoCreated(); ok {
		_spec.SetField(documentformat.FieldAutoCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(documentformat.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if _u.mutation.SourceDocumentIDCleared() {
		_spec.ClearField(documentformat.FieldSourceDocumentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(documentformat.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchCount(); ok {
		_spec.SetField(documentformat.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchCount(); ok {
		_spec.AddField(documentformat.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documentformat.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentformat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentformat.OrganizationTable,
			Columns: []string{documentformat.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentformat.OrganizationTable,
			Columns: []string{documentformat.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.TermsTable,
			Columns: []string{documentformat.TermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTermsIDs(); len(nodes) > 0 && !_u.mutation.TermsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.TermsTable,
			Columns: []string{documentformat.TermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TermsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.TermsTable,
			Columns: []string{documentformat.TermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MappingConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.MappingConfigsTable,
			Columns: []string{documentformat.MappingConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingConfigsIDs(); len(nodes) > 0 && !_u.mutation.MappingConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.MappingConfigsTable,
			Columns: []string{documentformat.MappingConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.MappingConfigsTable,
			Columns: []string{documentformat.MappingConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.PromptConfigsTable,
			Columns: []string{documentformat.PromptConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptConfigsIDs(); len(nodes) > 0 && !_u.mutation.PromptConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.PromptConfigsTable,
			Columns: []string{documentformat.PromptConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentformat.PromptConfigsTable,
			Columns: []string{documentformat.PromptConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentFormat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentformat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
