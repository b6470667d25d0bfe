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
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// DocumentFormatCreate is the builder for creating a DocumentFormat entity.
type DocumentFormatCreate struct {
	config
	mutation *DocumentFormatMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *DocumentFormatCreate) SetOrganizationID(v uuid.UUID) *DocumentFormatCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DocumentFormatCreate) SetName(v string) *DocumentFormatCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetHeaderPattern sets the "header_pattern" field.
func (_c *DocumentFormatCreate) SetHeaderPattern(v string) *DocumentFormatCreate {
	_c.mutation.SetHeaderPattern(v)
	return _c
}

// SetNillableHeaderPattern sets the "header_pattern" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableHeaderPattern(v *string) *DocumentFormatCreate {
	if v != nil {
		_c.SetHeaderPattern(*v)
	}
	return _c
}

// SetLogoSignature sets the "logo_signature" field.
func (_c *DocumentFormatCreate) SetLogoSignature(v string) *DocumentFormatCreate {
	_c.mutation.SetLogoSignature(v)
	return _c
}

// SetNillableLogoSignature sets the "logo_signature" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableLogoSignature(v *string) *DocumentFormatCreate {
	if v != nil {
		_c.SetLogoSignature(*v)
	}
	return _c
}

// SetLayoutFingerprint sets the "layout_fingerprint" field.
func (_c *DocumentFormatCreate) SetLayoutFingerprint(v string) *DocumentFormatCreate {
	_c.mutation.SetLayoutFingerprint(v)
	return _c
}

// SetNillableLayoutFingerprint sets the "layout_fingerprint" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableLayoutFingerprint(v *string) *DocumentFormatCreate {
	if v != nil {
		_c.SetLayoutFingerprint(*v)
	}
	return _c
}

// SetDetectedFields sets the "detected_fields" field.
func (_c *DocumentFormatCreate) SetDetectedFields(v []string) *DocumentFormatCreate {
	_c.mutation.SetDetectedFields(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *DocumentFormatCreate) SetFingerprint(v string) *DocumentFormatCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetAutoCreated sets the "auto_created" field.
func (_c *DocumentFormatCreate) SetAutoCreated(v bool) *DocumentFormatCreate {
	_c.mutation.SetAutoCreated(v)
	return _c
}

// SetNillableAutoCreated sets the "auto_created" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableAutoCreated(v *bool) *DocumentFormatCreate {
	if v != nil {
		_c.SetAutoCreated(*v)
	}
	return _c
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_c *DocumentFormatCreate) SetSourceDocumentID(v uuid.UUID) *DocumentFormatCreate {
	_c.mutation.SetSourceDocumentID(v)
	return _c
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableSourceDocumentID(v *uuid.UUID) *DocumentFormatCreate {
	if v != nil {
		_c.SetSourceDocumentID(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DocumentFormatCreate) SetIsActive(v bool) *DocumentFormatCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableIsActive(v *bool) *DocumentFormatCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetMatchCount sets the "match_count" field.
func (_c *DocumentFormatCreate) SetMatchCount(v int) *DocumentFormatCreate {
	_c.mutation.SetMatchCount(v)
	return _c
}

// SetNillableMatchCount sets the "match_count" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableMatchCount(v *int) *DocumentFormatCreate {
	if v != nil {
		_c.SetMatchCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentFormatCreate) SetCreatedAt(v time.Time) *DocumentFormatCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableCreatedAt(v *time.Time) *DocumentFormatCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentFormatCreate) SetUpdatedAt(v time.Time) *DocumentFormatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableUpdatedAt(v *time.Time) *DocumentFormatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentFormatCreate) SetID(v uuid.UUID) *DocumentFormatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentFormatCreate) SetNillableID(v *uuid.UUID) *DocumentFormatCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *DocumentFormatCreate) SetOrganization(v *Organization) *DocumentFormatCreate {
	return _c.SetOrganizationID(v.ID)
}

// AddTermIDs adds the "terms" edge to the VocabularyTerm entity by IDs.
func (_c *DocumentFormatCreate) AddTermIDs(ids ...uuid.UUID) *DocumentFormatCreate {
	_c.mutation.AddTermIDs(ids...)
	return _c
}

// AddTerms adds the "terms" edges to the VocabularyTerm entity.
func (_c *DocumentFormatCreate) AddTerms(v ...*VocabularyTerm) *DocumentFormatCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTermIDs(ids...)
}

// AddMappingConfigIDs adds the "mapping_configs" edge to the FieldMappingConfig entity by IDs.
func (_c *DocumentFormatCreate) AddMappingConfigIDs(ids ...uuid.UUID) *DocumentFormatCreate {
	_c.mutation.AddMappingConfigIDs(ids...)
	return _c
}

// AddMappingConfigs adds the "mapping_configs" edges to the FieldMappingConfig entity.
func (_c *DocumentFormatCreate) AddMappingConfigs(v ...*FieldMappingConfig) *DocumentFormatCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMappingConfigIDs(ids...)
}

// AddPromptConfigIDs adds the "prompt_configs" edge to the PromptConfig entity by IDs.
func (_c *DocumentFormatCreate) AddPromptConfigIDs(ids ...uuid.UUID) *DocumentFormatCreate {
	_c.mutation.AddPromptConfigIDs(ids...)
	return _c
}

// AddPromptConfigs adds the "prompt_configs" edges to the PromptConfig entity.
func (_c *DocumentFormatCreate) AddPromptConfigs(v ...*PromptConfig) *DocumentFormatCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromptConfigIDs(ids...)
}

// Mutation returns the DocumentFormatMutation object of the builder.
func (_c *DocumentFormatCreate) Mutation() *DocumentFormatMutation {
	return _c.mutation
}

// Save creates the DocumentFormat in the database.
func (_c *DocumentFormatCreate) Save(ctx context.Context) (*DocumentFormat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentFormatCreate) SaveX(ctx context.Context) *DocumentFormat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentFormatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentFormatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentFormatCreate) defaults() {
	if _, ok := _c.mutation.AutoCreated(); !ok {
		v := documentformat.DefaultAutoCreated
		_c.mutation.SetAutoCreated(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := documentformat.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.MatchCount(); !ok {
		v := documentformat.DefaultMatchCount
		_c.mutation.SetMatchCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentformat.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documentformat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentformat.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentFormatCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "DocumentFormat.organization_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DocumentFormat.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := documentformat.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentFormat.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "DocumentFormat.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := documentformat.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "DocumentFormat.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoCreated(); !ok {
		return &ValidationError{Name: "auto_created", err: errors.New(`ent: missing required field "DocumentFormat.auto_created"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "DocumentFormat.is_active"`)}
	}
	if _, ok := _c.mutation.MatchCount(); !ok {
		return &ValidationError{Name: "match_count", err: errors.New(`ent: missing required field "DocumentFormat.match_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentFormat.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentFormat.updated_at"`)}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required edge "DocumentFormat.organization"`)}
	}
	return nil
}

func (_c *DocumentFormatCreate) sqlSave(ctx context.Context) (*DocumentFormat, error) {
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

func (_c *DocumentFormatCreate) createSpec() (*DocumentFormat, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentFormat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentformat.Table, sqlgraph.NewFieldSpec(documentformat.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(documentformat.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.HeaderPattern(); ok {
		_spec.SetField(documentformat.FieldHeaderPattern, field.TypeString, value)
		_node.HeaderPattern = value
	}
	if value, ok := _c.mutation.LogoSignature(); ok {
		_spec.SetField(documentformat.FieldLogoSignature, field.TypeString, value)
		_node.LogoSignature = value
	}
	if value, ok := _c.mutation.LayoutFingerprint(); ok {
		_spec.SetField(documentformat.FieldLayoutFingerprint, field.TypeString, value)
		_node.LayoutFingerprint = value
	}
	if value, ok := _c.mutation.DetectedFields(); ok {
		_spec.SetField(documentformat.FieldDetectedFields, field.TypeJSON, value)
		_node.DetectedFields = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(documentformat.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.AutoCreated(); ok {
		_spec.SetField(documentformat.FieldAutoCreated, field.TypeBool, value)
		_node.AutoCreated = value
	}
	if value, ok := _c.mutation.SourceDocumentID(); ok {
		_spec.SetField(documentformat.FieldSourceDocumentID, field.TypeUUID, value)
		_node.SourceDocumentID = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(documentformat.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.MatchCount(); ok {
		_spec.SetField(documentformat.FieldMatchCount, field.TypeInt, value)
		_node.MatchCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentformat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documentformat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_node.OrganizationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TermsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MappingConfigsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptConfigsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentFormatCreateBulk is the builder for creating many DocumentFormat entities in bulk.
type DocumentFormatCreateBulk struct {
	config
	err      error
	builders []*DocumentFormatCreate
}

// Save creates the DocumentFormat entities in the database.
func (_c *DocumentFormatCreateBulk) Save(ctx context.Context) ([]*DocumentFormat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentFormat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentFormatMutation)
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
func (_c *DocumentFormatCreateBulk) SaveX(ctx context.Context) []*DocumentFormat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentFormatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentFormatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
