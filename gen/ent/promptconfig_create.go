// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
)

// PromptConfigCreate is the builder for creating a PromptConfig entity.
type PromptConfigCreate struct {
	config
	mutation *PromptConfigMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *PromptConfigCreate) SetOrganizationID(v uuid.UUID) *PromptConfigCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillableOrganizationID(v *uuid.UUID) *PromptConfigCreate {
	if v != nil {
		_c.SetOrganizationID(*v)
	}
	return _c
}

// SetFormatID sets the "format_id" field.
func (_c *PromptConfigCreate) SetFormatID(v uuid.UUID) *PromptConfigCreate {
	_c.mutation.SetFormatID(v)
	return _c
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillableFormatID(v *uuid.UUID) *PromptConfigCreate {
	if v != nil {
		_c.SetFormatID(*v)
	}
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *PromptConfigCreate) SetPurpose(v string) *PromptConfigCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetTemplate sets the "template" field.
func (_c *PromptConfigCreate) SetTemplate(v string) *PromptConfigCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PromptConfigCreate) SetVersion(v int) *PromptConfigCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillableVersion(v *int) *PromptConfigCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PromptConfigCreate) SetIsActive(v bool) *PromptConfigCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillableIsActive(v *bool) *PromptConfigCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *PromptConfigCreate) SetPriority(v int) *PromptConfigCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillablePriority(v *int) *PromptConfigCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptConfigCreate) SetCreatedAt(v time.Time) *PromptConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillableCreatedAt(v *time.Time) *PromptConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromptConfigCreate) SetUpdatedAt(v time.Time) *PromptConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillableUpdatedAt(v *time.Time) *PromptConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptConfigCreate) SetID(v uuid.UUID) *PromptConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PromptConfigCreate) SetNillableID(v *uuid.UUID) *PromptConfigCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *PromptConfigCreate) SetOrganization(v *Organization) *PromptConfigCreate {
	return _c.SetOrganizationID(v.ID)
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_c *PromptConfigCreate) SetFormat(v *DocumentFormat) *PromptConfigCreate {
	return _c.SetFormatID(v.ID)
}

// Mutation returns the PromptConfigMutation object of the builder.
func (_c *PromptConfigCreate) Mutation() *PromptConfigMutation {
	return _c.mutation
}

// Save creates the PromptConfig in the database.
func (_c *PromptConfigCreate) Save(ctx context.Context) (*PromptConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptConfigCreate) SaveX(ctx context.Context) *PromptConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptConfigCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := promptconfig.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := promptconfig.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := promptconfig.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := promptconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := promptconfig.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptConfigCreate) check() error {
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "PromptConfig.purpose"`)}
	}
	if v, ok := _c.mutation.Purpose(); ok {
		if err := promptconfig.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "PromptConfig.purpose": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Template(); !ok {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required field "PromptConfig.template"`)}
	}
	if v, ok := _c.mutation.Template(); ok {
		if err := promptconfig.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "PromptConfig.template": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PromptConfig.version"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PromptConfig.is_active"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "PromptConfig.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PromptConfig.updated_at"`)}
	}
	return nil
}

func (_c *PromptConfigCreate) sqlSave(ctx context.Context) (*PromptConfig, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptConfigCreate) createSpec() (*PromptConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptconfig.Table, sqlgraph.NewFieldSpec(promptconfig.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(promptconfig.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(promptconfig.FieldTemplate, field.TypeString, value)
		_node.Template = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(promptconfig.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(promptconfig.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(promptconfig.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(promptconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_node.OrganizationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FormatIDs(); len(nodes) > 0 {
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
		_node.FormatID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PromptConfigCreateBulk is the builder for creating many PromptConfig entities in bulk.
type PromptConfigCreateBulk struct {
	config
	err      error
	builders []*PromptConfigCreate
}

// Save creates the PromptConfig entities in the database.
func (_c *PromptConfigCreateBulk) Save(ctx context.Context) ([]*PromptConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptConfigMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PromptConfigCreateBulk) SaveX(ctx context.Context) []*PromptConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
