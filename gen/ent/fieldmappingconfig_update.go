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
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// FieldMappingConfigUpdate is the builder for updating FieldMappingConfig entities.
type FieldMappingConfigUpdate struct {
	config
	hooks    []Hook
	mutation *FieldMappingConfigMutation
}

// Where appends a list predicates to the FieldMappingConfigUpdate builder.
func (_u *FieldMappingConfigUpdate) Where(ps ...predicate.FieldMappingConfig) *FieldMappingConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *FieldMappingConfigUpdate) SetOrganizationID(v uuid.UUID) *FieldMappingConfigUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *FieldMappingConfigUpdate) SetNillableOrganizationID(v *uuid.UUID) *FieldMappingConfigUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *FieldMappingConfigUpdate) ClearOrganizationID() *FieldMappingConfigUpdate {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetFormatID sets the "format_id" field.
func (_u *FieldMappingConfigUpdate) SetFormatID(v uuid.UUID) *FieldMappingConfigUpdate {
	_u.mutation.SetFormatID(v)
	return _u
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_u *FieldMappingConfigUpdate) SetNillableFormatID(v *uuid.UUID) *FieldMappingConfigUpdate {
	if v != nil {
		_u.SetFormatID(*v)
	}
	return _u
}

// ClearFormatID clears the value of the "format_id" field.
func (_u *FieldMappingConfigUpdate) ClearFormatID() *FieldMappingConfigUpdate {
	_u.mutation.ClearFormatID()
	return _u
}

// SetName sets the "name" field.
func (_u *FieldMappingConfigUpdate) SetName(v string) *FieldMappingConfigUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FieldMappingConfigUpdate) SetNillableName(v *string) *FieldMappingConfigUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMappings sets the "mappings" field.
func (_u *FieldMappingConfigUpdate) SetMappings(v []entity.FieldMapping) *FieldMappingConfigUpdate {
	_u.mutation.SetMappings(v)
	return _u
}

// AppendMappings appends value to the "mappings" field.
func (_u *FieldMappingConfigUpdate) AppendMappings(v []entity.FieldMapping) *FieldMappingConfigUpdate {
	_u.mutation.AppendMappings(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FieldMappingConfigUpdate) SetIsActive(v bool) *FieldMappingConfigUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FieldMappingConfigUpdate) SetNillableIsActive(v *bool) *FieldMappingConfigUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FieldMappingConfigUpdate) SetPriority(v int) *FieldMappingConfigUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FieldMappingConfigUpdate) SetNillablePriority(v *int) *FieldMappingConfigUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *FieldMappingConfigUpdate) AddPriority(v int) *FieldMappingConfigUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FieldMappingConfigUpdate) SetCreatedBy(v string) *FieldMappingConfigUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FieldMappingConfigUpdate) SetNillableCreatedBy(v *string) *FieldMappingConfigUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *FieldMappingConfigUpdate) ClearCreatedBy() *FieldMappingConfigUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldMappingConfigUpdate) SetCreatedAt(v time.Time) *FieldMappingConfigUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldMappingConfigUpdate) SetNillableCreatedAt(v *time.Time) *FieldMappingConfigUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldMappingConfigUpdate) SetUpdatedAt(v time.Time) *FieldMappingConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *FieldMappingConfigUpdate) SetOrganization(v *Organization) *FieldMappingConfigUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_u *FieldMappingConfigUpdate) SetFormat(v *DocumentFormat) *FieldMappingConfigUpdate {
	return _u.SetFormatID(v.ID)
}

// Mutation returns the FieldMappingConfigMutation object of the builder.
func (_u *FieldMappingConfigUpdate) Mutation() *FieldMappingConfigMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *FieldMappingConfigUpdate) ClearOrganization() *FieldMappingConfigUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (_u *FieldMappingConfigUpdate) ClearFormat() *FieldMappingConfigUpdate {
	_u.mutation.ClearFormat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldMappingConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldMappingConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldMappingConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldMappingConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldMappingConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldmappingconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldMappingConfigUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := fieldmappingconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FieldMappingConfig.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldMappingConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldmappingconfig.Table, fieldmappingconfig.Columns, sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(fieldmappingconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mappings(); ok {
		_spec.SetField(fieldmappingconfig.FieldMappings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldmappingconfig.FieldMappings, value)
		})
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(fieldmappingconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(fieldmappingconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(fieldmappingconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(fieldmappingconfig.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(fieldmappingconfig.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmappingconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldmappingconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmappingconfig.OrganizationTable,
			Columns: []string{fieldmappingconfig.OrganizationColumn},
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
			Table:   fieldmappingconfig.OrganizationTable,
			Columns: []string{fieldmappingconfig.OrganizationColumn},
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
	if _u.mutation.FormatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmappingconfig.FormatTable,
			Columns: []string{fieldmappingconfig.FormatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmappingconfig.FormatTable,
			Columns: []string{fieldmappingconfig.FormatColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldmappingconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldMappingConfigUpdateOne is the builder for updating a single FieldMappingConfig entity.
type FieldMappingConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldMappingConfigMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *FieldMappingConfigUpdateOne) SetOrganizationID(v uuid.UUID) *FieldMappingConfigUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *FieldMappingConfigUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *FieldMappingConfigUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *FieldMappingConfigUpdateOne) ClearOrganizationID() *FieldMappingConfigUpdateOne {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetFormatID sets the "format_id" field.
func (_u *FieldMappingConfigUpdateOne) SetFormatID(v uuid.UUID) *FieldMappingConfigUpdateOne {
	_u.mutation.SetFormatID(v)
	return _u
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_u *FieldMappingConfigUpdateOne) SetNillableFormatID(v *uuid.UUID) *FieldMappingConfigUpdateOne {
	if v != nil {
		_u.SetFormatID(*v)
	}
	return _u
}

// ClearFormatID clears the value of the "format_id" field.
func (_u *FieldMappingConfigUpdateOne) ClearFormatID() *FieldMappingConfigUpdateOne {
	_u.mutation.ClearFormatID()
	return _u
}

// SetName sets the "name" field.
func (_u *FieldMappingConfigUpdateOne) SetName(v string) *FieldMappingConfigUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FieldMappingConfigUpdateOne) SetNillableName(v *string) *FieldMappingConfigUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMappings sets the "mappings" field.
func (_u *FieldMappingConfigUpdateOne) SetMappings(v []entity.FieldMapping) *FieldMappingConfigUpdateOne {
	_u.mutation.SetMappings(v)
	return _u
}

// AppendMappings appends value to the "mappings" field.
func (_u *FieldMappingConfigUpdateOne) AppendMappings(v []entity.FieldMapping) *FieldMappingConfigUpdateOne {
	_u.mutation.AppendMappings(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FieldMappingConfigUpdateOne) SetIsActive(v bool) *FieldMappingConfigUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FieldMappingConfigUpdateOne) SetNillableIsActive(v *bool) *FieldMappingConfigUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FieldMappingConfigUpdateOne) SetPriority(v int) *FieldMappingConfigUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FieldMappingConfigUpdateOne) SetNillablePriority(v *int) *FieldMappingConfigUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *FieldMappingConfigUpdateOne) AddPriority(v int) *FieldMappingConfigUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *FieldMappingConfigUpdateOne) SetCreatedBy(v string) *FieldMappingConfigUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *FieldMappingConfigUpdateOne) SetNillableCreatedBy(v *string) *FieldMappingConfigUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *FieldMappingConfigUpdateOne) ClearCreatedBy() *FieldMappingConfigUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldMappingConfigUpdateOne) SetCreatedAt(v time.Time) *FieldMappingConfigUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldMappingConfigUpdateOne) SetNillableCreatedAt(v *time.Time) *FieldMappingConfigUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldMappingConfigUpdateOne) SetUpdatedAt(v time.Time) *FieldMappingConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *FieldMappingConfigUpdateOne) SetOrganization(v *Organization) *FieldMappingConfigUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_u *FieldMappingConfigUpdateOne) SetFormat(v *DocumentFormat) *FieldMappingConfigUpdateOne {
	return _u.SetFormatID(v.ID)
}

// Mutation returns the FieldMappingConfigMutation object of the builder.
func (_u *FieldMappingConfigUpdateOne) Mutation() *FieldMappingConfigMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *FieldMappingConfigUpdateOne) ClearOrganization() *FieldMappingConfigUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (_u *FieldMappingConfigUpdateOne) ClearFormat() *FieldMappingConfigUpdateOne {
	_u.mutation.ClearFormat()
	return _u
}

// Where appends a list predicates to the FieldMappingConfigUpdate builder.
func (_u *FieldMappingConfigUpdateOne) Where(ps ...predicate.FieldMappingConfig) *FieldMappingConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldMappingConfigUpdateOne) Select(field string, fields ...string) *FieldMappingConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldMappingConfig entity.
func (_u *FieldMappingConfigUpdateOne) Save(ctx context.Context) (*FieldMappingConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldMappingConfigUpdateOne) SaveX(ctx context.Context) *FieldMappingConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldMappingConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldMappingConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldMappingConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldmappingconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldMappingConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := fieldmappingconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FieldMappingConfig.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldMappingConfigUpdateOne) sqlSave(ctx context.Context) (_node *FieldMappingConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldmappingconfig.Table, fieldmappingconfig.Columns, sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldMappingConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldmappingconfig.FieldID)
		for _, f := range fields {
			if !fieldmappingconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldmappingconfig.FieldID {
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
		_spec.SetField(fieldmappingconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mappings(); ok {
		_spec.SetField(fieldmappingconfig.FieldMappings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldmappingconfig.FieldMappings, value)
		})
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(fieldmappingconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(fieldmappingconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(fieldmappingconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(fieldmappingconfig.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(fieldmappingconfig.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmappingconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldmappingconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmappingconfig.OrganizationTable,
			Columns: []string{fieldmappingconfig.OrganizationColumn},
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
			Table:   fieldmappingconfig.OrganizationTable,
			Columns: []string{fieldmappingconfig.OrganizationColumn},
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
	if _u.mutation.FormatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmappingconfig.FormatTable,
			Columns: []string{fieldmappingconfig.FormatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmappingconfig.FormatTable,
			Columns: []string{fieldmappingconfig.FormatColumn},
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
	_node = &FieldMappingConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldmappingconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
