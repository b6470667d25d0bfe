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
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// VocabularyTermUpdate is the builder for updating VocabularyTerm entities.
type VocabularyTermUpdate struct {
	config
	hooks    []Hook
	mutation *VocabularyTermMutation
}

// Where appends a list predicates to the VocabularyTermUpdate builder.
func (_u *VocabularyTermUpdate) Where(ps ...predicate.VocabularyTerm) *VocabularyTermUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFormatID sets the "format_id" field.
func (_u *VocabularyTermUpdate) SetFormatID(v uuid.UUID) *VocabularyTermUpdate {
	_u.mutation.SetFormatID(v)
	return _u
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableFormatID(v *uuid.UUID) *VocabularyTermUpdate {
	if v != nil {
		_u.SetFormatID(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *VocabularyTermUpdate) SetRawText(v string) *VocabularyTermUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableRawText(v *string) *VocabularyTermUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *VocabularyTermUpdate) SetNormalizedText(v string) *VocabularyTermUpdate {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableNormalizedText(v *string) *VocabularyTermUpdate {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *VocabularyTermUpdate) SetCategory(v string) *VocabularyTermUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableCategory(v *string) *VocabularyTermUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VocabularyTermUpdate) SetStatus(v string) *VocabularyTermUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableStatus(v *string) *VocabularyTermUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *VocabularyTermUpdate) SetOccurrenceCount(v int) *VocabularyTermUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableOccurrenceCount(v *int) *VocabularyTermUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *VocabularyTermUpdate) AddOccurrenceCount(v int) *VocabularyTermUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *VocabularyTermUpdate) SetFirstSeen(v time.Time) *VocabularyTermUpdate {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableFirstSeen(v *time.Time) *VocabularyTermUpdate {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *VocabularyTermUpdate) SetLastSeen(v time.Time) *VocabularyTermUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableLastSeen(v *time.Time) *VocabularyTermUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VocabularyTermUpdate) SetConfidence(v float64) *VocabularyTermUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableConfidence(v *float64) *VocabularyTermUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VocabularyTermUpdate) AddConfidence(v float64) *VocabularyTermUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VocabularyTermUpdate) SetCreatedAt(v time.Time) *VocabularyTermUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VocabularyTermUpdate) SetNillableCreatedAt(v *time.Time) *VocabularyTermUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VocabularyTermUpdate) SetUpdatedAt(v time.Time) *VocabularyTermUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_u *VocabularyTermUpdate) SetFormat(v *DocumentFormat) *VocabularyTermUpdate {
	return _u.SetFormatID(v.ID)
}

// Mutation returns the VocabularyTermMutation object of the builder.
func (_u *VocabularyTermUpdate) Mutation() *VocabularyTermMutation {
	return _u.mutation
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (_u *VocabularyTermUpdate) ClearFormat() *VocabularyTermUpdate {
	_u.mutation.ClearFormat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocabularyTermUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabularyTermUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocabularyTermUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabularyTermUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VocabularyTermUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vocabularyterm.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabularyTermUpdate) check() error {
	if v, ok := _u.mutation.RawText(); ok {
		if err := vocabularyterm.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.raw_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedText(); ok {
		if err := vocabularyterm.NormalizedTextValidator(v); err != nil {
			return &ValidationError{Name: "normalized_text", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.normalized_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := vocabularyterm.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := vocabularyterm.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.status": %w`, err)}
		}
	}
	if _u.mutation.FormatCleared() && len(_u.mutation.FormatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VocabularyTerm.format"`)
	}
	return nil
}

func (_u *VocabularyTermUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabularyterm.Table, vocabularyterm.Columns, sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(vocabularyterm.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(vocabularyterm.FieldNormalizedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(vocabularyterm.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vocabularyterm.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(vocabularyterm.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(vocabularyterm.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(vocabularyterm.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(vocabularyterm.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(vocabularyterm.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(vocabularyterm.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vocabularyterm.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vocabularyterm.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabularyterm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocabularyTermUpdateOne is the builder for updating a single VocabularyTerm entity.
type VocabularyTermUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabularyTermMutation
}

// SetFormatID sets the "format_id" field.
func (_u *VocabularyTermUpdateOne) SetFormatID(v uuid.UUID) *VocabularyTermUpdateOne {
	_u.mutation.SetFormatID(v)
	return _u
}

// SetNillableFormatID sets the "format_id" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableFormatID(v *uuid.UUID) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetFormatID(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *VocabularyTermUpdateOne) SetRawText(v string) *VocabularyTermUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableRawText(v *string) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *VocabularyTermUpdateOne) SetNormalizedText(v string) *VocabularyTermUpdateOne {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableNormalizedText(v *string) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *VocabularyTermUpdateOne) SetCategory(v string) *VocabularyTermUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableCategory(v *string) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VocabularyTermUpdateOne) SetStatus(v string) *VocabularyTermUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableStatus(v *string) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *VocabularyTermUpdateOne) SetOccurrenceCount(v int) *VocabularyTermUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableOccurrenceCount(v *int) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *VocabularyTermUpdateOne) AddOccurrenceCount(v int) *VocabularyTermUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *VocabularyTermUpdateOne) SetFirstSeen(v time.Time) *VocabularyTermUpdateOne {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableFirstSeen(v *time.Time) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *VocabularyTermUpdateOne) SetLastSeen(v time.Time) *VocabularyTermUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableLastSeen(v *time.Time) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VocabularyTermUpdateOne) SetConfidence(v float64) *VocabularyTermUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableConfidence(v *float64) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VocabularyTermUpdateOne) AddConfidence(v float64) *VocabularyTermUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VocabularyTermUpdateOne) SetCreatedAt(v time.Time) *VocabularyTermUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VocabularyTermUpdateOne) SetNillableCreatedAt(v *time.Time) *VocabularyTermUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VocabularyTermUpdateOne) SetUpdatedAt(v time.Time) *VocabularyTermUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFormat sets the "format" edge to the DocumentFormat entity.
func (_u *VocabularyTermUpdateOne) SetFormat(v *DocumentFormat) *VocabularyTermUpdateOne {
	return _u.SetFormatID(v.ID)
}

// Mutation returns the VocabularyTermMutation object of the builder.
func (_u *VocabularyTermUpdateOne) Mutation() *VocabularyTermMutation {
	return _u.mutation
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (_u *VocabularyTermUpdateOne) ClearFormat() *VocabularyTermUpdateOne {
	_u.mutation.ClearFormat()
	return _u
}

// Where appends a list predicates to the VocabularyTermUpdate builder.
func (_u *VocabularyTermUpdateOne) Where(ps ...predicate.VocabularyTerm) *VocabularyTermUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocabularyTermUpdateOne) Select(field string, fields ...string) *VocabularyTermUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VocabularyTerm entity.
func (_u *VocabularyTermUpdateOne) Save(ctx context.Context) (*VocabularyTerm, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabularyTermUpdateOne) SaveX(ctx context.Context) *VocabularyTerm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocabularyTermUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabularyTermUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VocabularyTermUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vocabularyterm.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabularyTermUpdateOne) check() error {
	if v, ok := _u.mutation.RawText(); ok {
		if err := vocabularyterm.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.raw_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedText(); ok {
		if err := vocabularyterm.NormalizedTextValidator(v); err != nil {
			return &ValidationError{Name: "normalized_text", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.normalized_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := vocabularyterm.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := vocabularyterm.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VocabularyTerm.status": %w`, err)}
		}
	}
	if _u.mutation.FormatCleared() && len(_u.mutation.FormatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VocabularyTerm.format"`)
	}
	return nil
}

func (_u *VocabularyTermUpdateOne) sqlSave(ctx context.Context) (_node *VocabularyTerm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabularyterm.Table, vocabularyterm.Columns, sqlgraph.NewFieldSpec(vocabularyterm.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabularyTerm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabularyterm.FieldID)
		for _, f := range fields {
			if !vocabularyterm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabularyterm.FieldID {
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
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(vocabularyterm.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(vocabularyterm.FieldNormalizedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(vocabularyterm.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vocabularyterm.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(vocabularyterm.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(vocabularyterm.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(vocabularyterm.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(vocabularyterm.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(vocabularyterm.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(vocabularyterm.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vocabularyterm.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vocabularyterm.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VocabularyTerm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabularyterm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
