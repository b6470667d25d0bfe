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
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// VocabularyTermCreate is the builder for creating a VocabularyTerm entity.
type VocabularyTermCreate struct {
	config
	mutation *VocabularyTermMutation
	hooks    []Hook
}

// SetFormatID sets the "format_id" field.
func (_c *VocabularyTermCreate) SetFormatID(v uuid.UUID) *VocabularyTermCreate {
	_c.mutation.SetFormatID(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *VocabularyTermCreate) SetRawText(v string) *VocabularyTermCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNormalizedText sets the "normalized_text" field.
func (_c *VocabularyTermCreate) SetNormalizedText(v string) *VocabularyTermCreate {
	_c.mutation.SetNormalizedText(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *VocabularyTermCreate) SetCategory(v string) *VocabularyTermCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableCategory(v *string) *VocabularyTermCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *VocabularyTermCreate) SetStatus(v string) *VocabularyTermCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableStatus(v *string) *VocabularyTermCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *VocabularyTermCreate) SetOccurrenceCount(v int) *VocabularyTermCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableOccurrenceCount(v *int) *VocabularyTermCreate {
	if v != nil {
		_c.SetOccurrenceCount(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *VocabularyTermCreate) SetFirstSeen(v time.Time) *VocabularyTermCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableFirstSeen(v *time.Time) *VocabularyTermCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *VocabularyTermCreate) SetLastSeen(v time.Time) *VocabularyTermCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableLastSeen(v *time.Time) *VocabularyTermCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VocabularyTermCreate) SetConfidence(v float64) *VocabularyTermCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableConfidence(v *float64) *VocabularyTermCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VocabularyTermCreate) SetCreatedAt(v time.Time) *VocabularyTermCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableCreatedAt(v *time.Time) *VocabularyTermCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VocabularyTermCreate) SetUpdatedAt(v time.Time) *VocabularyTermCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableUpdatedAt(v *time.Time) *VocabularyTermCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VocabularyTermCreate) SetID(v uuid.UUID) *VocabularyTermCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VocabularyTermCreate) SetNillableID(v *uuid.UUID) *VocabularyTermCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_c *VocabularyTermCreate) SetFormat(v *DocumentFormat) *VocabularyTermCreate {
	return _c.SetFormatID(v.ID)
}

// Mutation returns the VocabularyTermMutation object of the builder.
func (_c *VocabularyTermCreate) Mutation() *VocabularyTermMutation {
	return _c.mutation
}

// Save creates the VocabularyTerm in the database.
func (_c *VocabularyTermCreate) Save(ctx context.Context) (*VocabularyTerm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocabularyTermCreate) SaveX(ctx context.Context) *VocabularyTerm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabularyTermCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabularyTermCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VocabularyTermCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := vocabularyterm.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := vocabularyterm.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		v := vocabularyterm.DefaultOccurrenceCount
		_c.mutation.SetOccurrenceCount(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := vocabularyterm.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := vocabularyterm.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := vocabularyterm.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vocabularyterm.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vocabularyterm.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vocabularyterm.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocabularyTermCreate) check() error {
	if _, ok := _c.mutation.FormatID(); !ok {
		return &ValidationError{Name: "format_id", err: errors.New(`ent: missing required field "VocabularyTerm.format_id"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "VocabularyTerm.raw_text"`)}
	}
	if v, ok := _c.mutation.RawText(); ok {
		if err := vocabularyterm.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.raw_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedText(); !ok {
		return &ValidationError{Name: "normalized_text", err: errors.New(`ent: missing required field "VocabularyTerm.normalized_text"`)}
	}
	if v, ok := _c.mutation.NormalizedText(); ok {
		if err := vocabularyterm.NormalizedTextValidator(v); err != nil {
			return &ValidationError{Name: "normalized_text", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.normalized_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "VocabularyTerm.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := vocabularyterm.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VocabularyTerm.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := vocabularyterm.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "VocabularyTerm.occurrence_count"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "VocabularyTerm.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "VocabularyTerm.last_seen"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "VocabularyTerm.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VocabularyTerm.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VocabularyTerm.updated_at"`)}
	}
	if len(_c.mutation.FormatIDs()) == 0 {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required edge "VocabularyTerm.format"`)}
	}
	return nil
}

func (_c *VocabularyTermCreate) sqlSave(ctx context.Context) (*VocabularyTerm, error) {
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

func (_c *VocabularyTermCreate) createSpec() (*VocabularyTerm, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabularyTerm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocabularyterm.Table, sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(vocabularyterm.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.NormalizedText(); ok {
		_spec.SetField(vocabularyterm.FieldNormalizedText, field.TypeString, value)
		_node.NormalizedText = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(vocabularyterm.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(vocabularyterm.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(vocabularyterm.FieldOccurrenceCount, field.TypeInt, value)
		_node.OccurrenceCount = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(vocabularyterm.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(vocabularyterm.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(vocabularyterm.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vocabularyterm.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vocabularyterm.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FormatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vocabularyterm.FormatTable,
			Columns: []string{vocabularyterm.FormatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FormatID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VocabularyTermCreateBulk is the builder for creating many VocabularyTerm entities in bulk.
type VocabularyTermCreateBulk struct {
	config
	err      error
	builders []*VocabularyTermCreate
}

// Save creates the VocabularyTerm entities in the database.
func (_c *VocabularyTermCreateBulk) Save(ctx context.Context) ([]*VocabularyTerm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VocabularyTerm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabularyTermMutation)
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
func (_c *VocabularyTermCreateBulk) SaveX(ctx context.Context) []*VocabularyTerm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabularyTermCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabularyTermCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
