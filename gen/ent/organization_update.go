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
)

// OrganizationUpdate is the builder for updating Organization entities.
type OrganizationUpdate struct {
	config
	hooks    []Hook
	mutation *OrganizationMutation
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdate) Where(ps ...predicate.Organization) *OrganizationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *OrganizationUpdate) SetName(v string) *OrganizationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableName(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *OrganizationUpdate) SetCode(v string) *OrganizationUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableCode(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *OrganizationUpdate) SetNormalizedName(v string) *OrganizationUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableNormalizedName(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *OrganizationUpdate) SetAliases(v []string) *OrganizationUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *OrganizationUpdate) AppendAliases(v []string) *OrganizationUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *OrganizationUpdate) ClearAliases() *OrganizationUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetAutoCreated sets the "auto_created" field.
func (_u *OrganizationUpdate) SetAutoCreated(v bool) *OrganizationUpdate {
	_u.mutation.SetAutoCreated(v)
	return _u
}

// SetNillableAutoCreated sets the "auto_created" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableAutoCreated(v *bool) *OrganizationUpdate {
	if v != nil {
		_u.SetAutoCreated(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *OrganizationUpdate) SetSourceDocumentID(v uuid.UUID) *OrganizationUpdate {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableSourceDocumentID(v *uuid.UUID) *OrganizationUpdate {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *OrganizationUpdate) ClearSourceDocumentID() *OrganizationUpdate {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *OrganizationUpdate) SetIsActive(v bool) *OrganizationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableIsActive(v *bool) *OrganizationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrganizationUpdate) SetCreatedAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableCreatedAt(v *time.Time) *OrganizationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdate) SetUpdatedAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFormatIDs adds the "formats" edge to the DocumentFormat entity by IDs.
func (_u *OrganizationUpdate) AddFormatIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.AddFormatIDs(ids...)
	return _u
}

// AddFormats adds the "formats" edges to the DocumentFormat entity.
func (_u *OrganizationUpdate) AddFormats(v ...*DocumentFormat) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFormatIDs(ids...)
}

// AddMappingConfigIDs adds the "mapping_configs" edge to the FieldMappingConfig entity by IDs.
func (_u *OrganizationUpdate) AddMappingConfigIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.AddMappingConfigIDs(ids...)
	return _u
}

// AddMappingConfigs adds the "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *OrganizationUpdate) AddMappingConfigs(v ...*FieldMappingConfig) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingConfigIDs(ids...)
}

// AddPromptConfigIDs adds the "prompt_configs" edge to the PromptConfig entity by IDs.
func (_u *OrganizationUpdate) AddPromptConfigIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.AddPromptConfigIDs(ids...)
	return _u
}

// AddPromptConfigs adds the "prompt_configs" edges to the PromptConfig entity.
func (_u *OrganizationUpdate) AddPromptConfigs(v ...*PromptConfig) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptConfigIDs(ids...)
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdate) Mutation() *OrganizationMutation {
	return _u.mutation
}

// ClearFormats clears all "formats" edges to the DocumentFormat entity.
func (_u *OrganizationUpdate) ClearFormats() *OrganizationUpdate {
	_u.mutation.ClearFormats()
	return _u
}

// RemoveFormatIDs removes the "formats" edge to DocumentFormat entities by IDs.
func (_u *OrganizationUpdate) RemoveFormatIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.RemoveFormatIDs(ids...)
	return _u
}

// RemoveFormats removes "formats" edges to DocumentFormat entities.
func (_u *OrganizationUpdate) RemoveFormats(v ...*DocumentFormat) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFormatIDs(ids...)
}

// ClearMappingConfigs clears all "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *OrganizationUpdate) ClearMappingConfigs() *OrganizationUpdate {
	_u.mutation.ClearMappingConfigs()
	return _u
}

// RemoveMappingConfigIDs removes the "mapping_configs" edge to FieldMappingConfig entities by IDs.
func (_u *OrganizationUpdate) RemoveMappingConfigIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.RemoveMappingConfigIDs(ids...)
	return _u
}

// RemoveMappingConfigs removes "mapping_configs" edges to FieldMappingConfig entities.
func (_u *OrganizationUpdate) RemoveMappingConfigs(v ...*FieldMappingConfig) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingConfigIDs(ids...)
}

// ClearPromptConfigs clears all "prompt_configs" edges to the PromptConfig entity.
func (_u *OrganizationUpdate) ClearPromptConfigs() *OrganizationUpdate {
	_u.mutation.ClearPromptConfigs()
	return _u
}

// RemovePromptConfigIDs removes the "prompt_configs" edge to PromptConfig entities by IDs.
func (_u *OrganizationUpdate) RemovePromptConfigIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.RemovePromptConfigIDs(ids...)
	return _u
}

// RemovePromptConfigs removes "prompt_configs" edges to PromptConfig entities.
func (_u *OrganizationUpdate) RemovePromptConfigs(v ...*PromptConfig) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptConfigIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrganizationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrganizationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := organization.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Organization.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := organization.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Organization.normalized_name": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(organization.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(organization.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(organization.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(organization.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, organization.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(organization.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoCreated(); ok {
		_spec.SetField(organization.FieldAutoCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(organization.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if _u.mutation.SourceDocumentIDCleared() {
		_spec.ClearField(organization.FieldSourceDocumentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(organization.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.FormatsTable,
			Columns: []string{organization.FormatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFormatsIDs(); len(nodes) > 0 && !_u.mutation.FormatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.FormatsTable,
			Columns: []string{organization.FormatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.FormatsTable,
			Columns: []string{organization.FormatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
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
			Table:   organization.MappingConfigsTable,
			Columns: []string{organization.MappingConfigsColumn},
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
			Table:   organization.MappingConfigsTable,
			Columns: []string{organization.MappingConfigsColumn},
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
			Table:   organization.MappingConfigsTable,
			Columns: []string{organization.MappingConfigsColumn},
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
			Table:   organization.PromptConfigsTable,
			Columns: []string{organization.PromptConfigsColumn},
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
			Table:   organization.PromptConfigsTable,
			Columns: []string{organization.PromptConfigsColumn},
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
			Table:   organization.PromptConfigsTable,
			Columns: []string{organization.PromptConfigsColumn},
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
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrganizationUpdateOne is the builder for updating a single Organization entity.
type OrganizationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrganizationMutation
}

// SetName sets the "name" field.
func (_u *OrganizationUpdateOne) SetName(v string) *OrganizationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableName(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *OrganizationUpdateOne) SetCode(v string) *OrganizationUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableCode(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *OrganizationUpdateOne) SetNormalizedName(v string) *OrganizationUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableNormalizedName(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *OrganizationUpdateOne) SetAliases(v []string) *OrganizationUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *OrganizationUpdateOne) AppendAliases(v []string) *OrganizationUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *OrganizationUpdateOne) ClearAliases() *OrganizationUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetAutoCreated sets the "auto_created" field.
func (_u *OrganizationUpdateOne) SetAutoCreated(v bool) *OrganizationUpdateOne {
	_u.mutation.SetAutoCreated(v)
	return _u
}

// SetNillableAutoCreated sets the "auto_created" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableAutoCreated(v *bool) *OrganizationUpdateOne {
	if v != nil {
		_u.SetAutoCreated(*v)
	}
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *OrganizationUpdateOne) SetSourceDocumentID(v uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableSourceDocumentID(v *uuid.UUID) *OrganizationUpdateOne {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *OrganizationUpdateOne) ClearSourceDocumentID() *OrganizationUpdateOne {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *OrganizationUpdateOne) SetIsActive(v bool) *OrganizationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableIsActive(v *bool) *OrganizationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrganizationUpdateOne) SetCreatedAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableCreatedAt(v *time.Time) *OrganizationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdateOne) SetUpdatedAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFormatIDs adds the "formats" edge to the DocumentFormat entity by IDs.
func (_u *OrganizationUpdateOne) AddFormatIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.AddFormatIDs(ids...)
	return _u
}

// AddFormats adds the "formats" edges to the DocumentFormat entity.
func (_u *OrganizationUpdateOne) AddFormats(v ...*DocumentFormat) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFormatIDs(ids...)
}

// AddMappingConfigIDs adds the "mapping_configs" edge to the FieldMappingConfig entity by IDs.
func (_u *OrganizationUpdateOne) AddMappingConfigIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.AddMappingConfigIDs(ids...)
	return _u
}

// AddMappingConfigs adds the "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *OrganizationUpdateOne) AddMappingConfigs(v ...*FieldMappingConfig) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingConfigIDs(ids...)
}

// AddPromptConfigIDs adds the "prompt_configs" edge to the PromptConfig entity by IDs.
func (_u *OrganizationUpdateOne) AddPromptConfigIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.AddPromptConfigIDs(ids...)
	return _u
}

// AddPromptConfigs adds the "prompt_configs" edges to the PromptConfig entity.
func (_u *OrganizationUpdateOne) AddPromptConfigs(v ...*PromptConfig) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptConfigIDs(ids...)
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdateOne) Mutation() *OrganizationMutation {
	return _u.mutation
}

// ClearFormats clears all "formats" edges to the DocumentFormat entity.
func (_u *OrganizationUpdateOne) ClearFormats() *OrganizationUpdateOne {
	_u.mutation.ClearFormats()
	return _u
}

// RemoveFormatIDs removes the "formats" edge to DocumentFormat entities by IDs.
func (_u *OrganizationUpdateOne) RemoveFormatIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.RemoveFormatIDs(ids...)
	return _u
}

// RemoveFormats removes "formats" edges to DocumentFormat entities.
func (_u *OrganizationUpdateOne) RemoveFormats(v ...*DocumentFormat) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFormatIDs(ids...)
}

// ClearMappingConfigs clears all "mapping_configs" edges to the FieldMappingConfig entity.
func (_u *OrganizationUpdateOne) ClearMappingConfigs() *OrganizationUpdateOne {
	_u.mutation.ClearMappingConfigs()
	return _u
}

// RemoveMappingConfigIDs removes the "mapping_configs" edge to FieldMappingConfig entities by IDs.
func (_u *OrganizationUpdateOne) RemoveMappingConfigIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.RemoveMappingConfigIDs(ids...)
	return _u
}

// RemoveMappingConfigs removes "mapping_configs" edges to FieldMappingConfig entities.
func (_u *OrganizationUpdateOne) RemoveMappingConfigs(v ...*FieldMappingConfig) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingConfigIDs(ids...)
}

// ClearPromptConfigs clears all "prompt_configs" edges to the PromptConfig entity.
func (_u *OrganizationUpdateOne) ClearPromptConfigs() *OrganizationUpdateOne {
	_u.mutation.ClearPromptConfigs()
	return _u
}

// RemovePromptConfigIDs removes the "prompt_configs" edge to PromptConfig entities by IDs.
func (_u *OrganizationUpdateOne) RemovePromptConfigIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.RemovePromptConfigIDs(ids...)
	return _u
}

// RemovePromptConfigs removes "prompt_configs" edges to PromptConfig entities.
func (_u *OrganizationUpdateOne) RemovePromptConfigs(v ...*PromptConfig) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptConfigIDs(ids...)
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdateOne) Where(ps ...predicate.Organization) *OrganizationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrganizationUpdateOne) Select(field string, fields ...string) *OrganizationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Organization entity.
func (_u *OrganizationUpdateOne) Save(ctx context.Context) (*Organization, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdateOne) SaveX(ctx context.Context) *Organization {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrganizationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := organization.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Organization.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := organization.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Organization.normalized_name": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdateOne) sqlSave(ctx context.Context) (_node *Organization, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Organization.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, organization.FieldID)
		for _, f := range fields {
			if !organization.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != organization.FieldID {
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
		_spec.SetField(organization.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(organization.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(organization.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(organization.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, organization.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(organization.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoCreated(); ok {
		_spec.SetField(organization.FieldAutoCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(organization.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if _u.mutation.SourceDocumentIDCleared() {
		_spec.ClearField(organization.FieldSourceDocumentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(organization.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.FormatsTable,
			Columns: []string{organization.FormatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFormatsIDs(); len(nodes) > 0 && !_u.mutation.FormatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.FormatsTable,
			Columns: []string{organization.FormatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.FormatsTable,
			Columns: []string{organization.FormatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
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
			Table:   organization.MappingConfigsTable,
			Columns: []string{organization.MappingConfigsColumn},
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
			Table:   organization.MappingConfigsTable,
			Columns: []string{organization.MappingConfigsColumn},
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
			Table:   organization.MappingConfigsTable,
			Columns: []string{organization.MappingConfigsColumn},
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
			Table:   organization.PromptConfigsTable,
			Columns: []string{organization.PromptConfigsColumn},
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
			Table:   organization.PromptConfigsTable,
			Columns: []string{organization.PromptConfigsColumn},
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
			Table:   organization.PromptConfigsTable,
			Columns: []string{organization.PromptConfigsColumn},
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
	_node = &Organization{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
