// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
)

// PromptConfigUpdate is the builder for updating PromptConfig entities.
type PromptConfigUpdate struct {
	config
	hooks    []Hook
	mutation *PromptConfigMutation
}

// Where appends a list predicates to the PromptConfigUpdate builder.
func (_u *PromptConfigUpdate) Where(ps ...predicate.PromptConfig) *PromptConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *PromptConfigUpdate) SetOrganizationID(v uuid.UUID) *PromptConfigUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillableOrganizationID(v *uuid.UUID) *PromptConfigUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *PromptConfigUpdate) ClearOrganizationID() *PromptConfigUpdate {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetFormatID sets the "format_id" field.
func (_u *PromptConfigUpdate) SetFormatID(v uuid.UUID) *PromptConfigUpdate {
	_u.mutation.SetFormatID(v)
	return _u
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillableFormatID(v *uuid.UUID) *PromptConfigUpdate {
	if v != nil {
		_u.SetFormatID(*v)
	}
	return _u
}

// ClearFormatID clears the value of the "format_id" field.
func (_u *PromptConfigUpdate) ClearFormatID() *PromptConfigUpdate {
	_u.mutation.ClearFormatID()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *PromptConfigUpdate) SetPurpose(v string) *PromptConfigUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillablePurpose(v *string) *PromptConfigUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *PromptConfigUpdate) SetTemplate(v string) *PromptConfigUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillableTemplate(v *string) *PromptConfigUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptConfigUpdate) SetVersion(v int) *PromptConfigUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillableVersion(v *int) *PromptConfigUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptConfigUpdate) AddVersion(v int) *PromptConfigUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptConfigUpdate) SetIsActive(v bool) *PromptConfigUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillableIsActive(v *bool) *PromptConfigUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PromptConfigUpdate) SetPriority(v int) *PromptConfigUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillablePriority(v *int) *PromptConfigUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PromptConfigUpdate) AddPriority(v int) *PromptConfigUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PromptConfigUpdate) SetCreatedAt(v time.Time) *PromptConfigUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PromptConfigUpdate) SetNillableCreatedAt(v *time.Time) *PromptConfigUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptConfigUpdate) SetUpdatedAt(v time.Time) *PromptConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *PromptConfigUpdate) SetOrganization(v *Organization) *PromptConfigUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_u *PromptConfigUpdate) SetFormat(v *DocumentFormat) *PromptConfigUpdate {
	return _u.SetFormatID(v.ID)
}

// Mutation returns the PromptConfigMutation object of the builder.
func (_u *PromptConfigUpdate) Mutation() *PromptConfigMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *PromptConfigUpdate) ClearOrganization() *PromptConfigUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (_u *PromptConfigUpdate) ClearFormat() *PromptConfigUpdate {
	_u.mutation.ClearFormat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptConfigUpdate) check() error {
	if v, ok := _u.mutation.Purpose(); ok {
		if err := promptconfig.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "PromptConfig.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := promptconfig.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "PromptConfig.template": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptconfig.Table, promptconfig.Columns, sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(promptconfig.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(promptconfig.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(promptconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(promptconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(promptconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(promptconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(promptconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(promptconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptconfig.OrganizationTable,
			Columns: []string{promptconfig.OrganizationColumn},
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
			Table:   promptconfig.OrganizationTable,
			Columns: []string{promptconfig.OrganizationColumn},
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
			Table:   promptconfig.FormatTable,
			Columns: []string{promptconfig.FormatColumn},
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
			Table:   promptconfig.FormatTable,
			Columns: []string{promptconfig.FormatColumn},
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
			err = &NotFoundError{promptconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptConfigUpdateOne is the builder for updating a single PromptConfig entity.
type PromptConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptConfigMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *PromptConfigUpdateOne) SetOrganizationID(v uuid.UUID) *PromptConfigUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *PromptConfigUpdateOne) ClearOrganizationID() *PromptConfigUpdateOne {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetFormatID sets the "format_id" field.
func (_u *PromptConfigUpdateOne) SetFormatID(v uuid.UUID) *PromptConfigUpdateOne {
	_u.mutation.SetFormatID(v)
	return _u
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillableFormatID(v *uuid.UUID) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetFormatID(*v)
	}
	return _u
}

// ClearFormatID clears the value of the "format_id" field.
func (_u *PromptConfigUpdateOne) ClearFormatID() *PromptConfigUpdateOne {
	_u.mutation.ClearFormatID()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *PromptConfigUpdateOne) SetPurpose(v string) *PromptConfigUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillablePurpose(v *string) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *PromptConfigUpdateOne) SetTemplate(v string) *PromptConfigUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillableTemplate(v *string) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptConfigUpdateOne) SetVersion(v int) *PromptConfigUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillableVersion(v *int) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptConfigUpdateOne) AddVersion(v int) *PromptConfigUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptConfigUpdateOne) SetIsActive(v bool) *PromptConfigUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillableIsActive(v *bool) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PromptConfigUpdateOne) SetPriority(v int) *PromptConfigUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillablePriority(v *int) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PromptConfigUpdateOne) AddPriority(v int) *PromptConfigUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PromptConfigUpdateOne) SetCreatedAt(v time.Time) *PromptConfigUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PromptConfigUpdateOne) SetNillableCreatedAt(v *time.Time) *PromptConfigUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptConfigUpdateOne) SetUpdatedAt(v time.Time) *PromptConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *PromptConfigUpdateOne) SetOrganization(v *Organization) *PromptConfigUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_u *PromptConfigUpdateOne) SetFormat(v *DocumentFormat) *PromptConfigUpdateOne {
	return _u.SetFormatID(v.ID)
}

// Mutation returns the PromptConfigMutation object of the builder.
func (_u *PromptConfigUpdateOne) Mutation() *PromptConfigMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *PromptConfigUpdateOne) ClearOrganization() *PromptConfigUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (_u *PromptConfigUpdateOne) ClearFormat() *PromptConfigUpdateOne {
	_u.mutation.ClearFormat()
	return _u
}

// Where appends a list predicates to the PromptConfigUpdate builder.
func (_u *PromptConfigUpdateOne) Where(ps ...predicate.PromptConfig) *PromptConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptConfigUpdateOne) Select(field string, fields ...string) *PromptConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptConfig entity.
func (_u *PromptConfigUpdateOne) Save(ctx context.Context) (*PromptConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptConfigUpdateOne) SaveX(ctx context.Context) *PromptConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Purpose(); ok {
		if err := promptconfig.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "PromptConfig.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := promptconfig.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "PromptConfig.template": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptConfigUpdateOne) sqlSave(ctx context.Context) (_node *PromptConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptconfig.Table, promptconfig.Columns, sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptconfig.FieldID)
		for _, f := range fields {
			if !promptconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptconfig.FieldID {
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
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(promptconfig.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(promptconfig.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(promptconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(promptconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(promptconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(promptconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(promptconfig.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(promptconfig.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptconfig.OrganizationTable,
			Columns: []string{promptconfig.OrganizationColumn},
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
			Table:   promptconfig.OrganizationTable,
			Columns: []string{promptconfig.OrganizationColumn},
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
			Table:   promptconfig.FormatTable,
			Columns: []string{promptconfig.FormatColumn},
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
			Table:   promptconfig.FormatTable,
			Columns: []string{promptconfig.FormatColumn},
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
	_node = &PromptConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
