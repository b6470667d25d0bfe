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
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// FieldMappingConfigCreate is the builder for creating a FieldMappingConfig entity.
type FieldMappingConfigCreate struct {
	config
	mutation *FieldMappingConfigMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *FieldMappingConfigCreate) SetOrganizationID(v uuid.UUID) *FieldMappingConfigCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillableOrganizationID(v *uuid.UUID) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetOrganizationID(*v)
	}
	return _c
}

// SetFormatID sets the "format_id" field.
func (_c *FieldMappingConfigCreate) SetFormatID(v uuid.UUID) *FieldMappingConfigCreate {
	_c.mutation.SetFormatID(v)
	return _c
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillableFormatID(v *uuid.UUID) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetFormatID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *FieldMappingConfigCreate) SetName(v string) *FieldMappingConfigCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMappings sets the "mappings" field.
func (_c *FieldMappingConfigCreate) SetMappings(v []entity.FieldMapping) *FieldMappingConfigCreate {
	_c.mutation.SetMappings(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FieldMappingConfigCreate) SetIsActive(v bool) *FieldMappingConfigCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillableIsActive(v *bool) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *FieldMappingConfigCreate) SetPriority(v int) *FieldMappingConfigCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillablePriority(v *int) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *FieldMappingConfigCreate) SetCreatedBy(v string) *FieldMappingConfigCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillableCreatedBy(v *string) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldMappingConfigCreate) SetCreatedAt(v time.Time) *FieldMappingConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillableCreatedAt(v *time.Time) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FieldMappingConfigCreate) SetUpdatedAt(v time.Time) *FieldMappingConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillableUpdatedAt(v *time.Time) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldMappingConfigCreate) SetID(v uuid.UUID) *FieldMappingConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldMappingConfigCreate) SetNillableID(v *uuid.UUID) *FieldMappingConfigCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *FieldMappingConfigCreate) SetOrganization(v *Organization) *FieldMappingConfigCreate {
	return _c.SetOrganizationID(v.ID)
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_c *FieldMappingConfigCreate) SetFormat(v *DocumentFormat) *FieldMappingConfigCreate {
	return _c.SetFormatID(v.ID)
}

// Mutation returns the FieldMappingConfigMutation object of the builder.
func (_c *FieldMappingConfigCreate) Mutation() *FieldMappingConfigMutation {
	return _c.mutation
}

// Save creates the FieldMappingConfig in the database.
func (_c *FieldMappingConfigCreate) Save(ctx context.Context) (*FieldMappingConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldMappingConfigCreate) SaveX(ctx context.Context) *FieldMappingConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldMappingConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldMappingConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldMappingConfigCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := fieldmappingconfig.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := fieldmappingconfig.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fieldmappingconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fieldmappingconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fieldmappingconfig.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldMappingConfigCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FieldMappingConfig.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := fieldmappingconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FieldMappingConfig.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mappings(); !ok {
		return &ValidationError{Name: "mappings", err: errors.New(`ent: missing required field "FieldMappingConfig.mappings"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "FieldMappingConfig.is_active"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "FieldMappingConfig.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FieldMappingConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FieldMappingConfig.updated_at"`)}
	}
	return nil
}

func (_c *FieldMappingConfigCreate) sqlSave(ctx context.Context) (*FieldMappingConfig, error) {
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

func (_c *FieldMappingConfigCreate) createSpec() (*FieldMappingConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldMappingConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldmappingconfig.Table, sqlgraph.NewFieldSpec(fieldmappingconfig.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(fieldmappingconfig.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Mappings(); ok {
		_spec.SetField(fieldmappingconfig.FieldMappings, field.TypeJSON, value)
		_node.Mappings = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(fieldmappingconfig.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(fieldmappingconfig.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(fieldmappingconfig.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmappingconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldmappingconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_node.OrganizationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FormatIDs(); len(nodes) > 0 {
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
		_node.FormatID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldMappingConfigCreateBulk is the builder for creating many FieldMappingConfig entities in bulk.
type FieldMappingConfigCreateBulk struct {
	config
	err      error
	builders []*FieldMappingConfigCreate
}

// Save creates the FieldMappingConfig entities in the database.
func (_c *FieldMappingConfigCreateBulk) Save(ctx context.Context) ([]*FieldMappingConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldMappingConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldMappingConfigMutation)
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
func (_c *FieldMappingConfigCreateBulk) SaveX(ctx context.Context) []*FieldMappingConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldMappingConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldMappingConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
