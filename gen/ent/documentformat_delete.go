// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
)

// DocumentFormatDelete is the builder for deleting a DocumentFormat entity.
type DocumentFormatDelete struct {
	config
	hooks    []Hook
	mutation *DocumentFormatMutation
}

// Where appends a list predicates to the DocumentFormatDelete builder.
func (_d *DocumentFormatDelete) Where(ps ...predicate.DocumentFormat) *DocumentFormatDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocumentFormatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentFormatDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocumentFormatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(documentformat.Table, sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DocumentFormatDeleteOne is the builder for deleting a single DocumentFormat entity.
type DocumentFormatDeleteOne struct {
	_d *DocumentFormatDelete
}

// Where appends a list predicates to the DocumentFormatDelete builder.
func (_d *DocumentFormatDeleteOne) Where(ps ...predicate.DocumentFormat) *DocumentFormatDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocumentFormatDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{documentformat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentFormatDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
