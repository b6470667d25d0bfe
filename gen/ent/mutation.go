// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/gen/ent/predicate"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocumentFormat     = "DocumentFormat"
	TypeFieldMappingConfig = "FieldMappingConfig"
	TypeOrganization       = "Organization"
	TypePromptConfig       = "PromptConfig"
	TypeVocabularyTerm     = "VocabularyTerm"
)

// DocumentFormatMutation represents an operation that mutates the DocumentFormat nodes in the graph.
type DocumentFormatMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	header_pattern         *string
	logo_signature         *string
	layout_fingerprint     *string
	detected_fields        *[]string
	appenddetected_fields  []string
	fingerprint            *string
	auto_created           *bool
	source_document_id     *uuid.UUID
	is_active              *bool
	match_count            *int
	addmatch_count         *int
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	organization           *uuid.UUID
	clearedorganization    bool
	terms                  map[uuid.UUID]struct{}
	removedterms           map[uuid.UUID]struct{}
	clearedterms           bool
	mapping_configs        map[uuid.UUID]struct{}
	removedmapping_configs map[uuid.UUID]struct{}
	clearedmapping_configs bool
	prompt_configs         map[uuid.UUID]struct{}
	removedprompt_configs  map[uuid.UUID]struct{}
	clearedprompt_configs  bool
	done                   bool
	oldValue               func(context.Context) (*DocumentFormat, error)
	predicates             []predicate.DocumentFormat
}

var _ ent.Mutation = (*DocumentFormatMutation)(nil)

// documentformatOption allows management of the mutation configuration using functional options.
type documentformatOption func(*DocumentFormatMutation)

// newDocumentFormatMutation creates new mutation for the DocumentFormat entity.
func newDocumentFormatMutation(c config, op Op, opts ...documentformatOption) *DocumentFormatMutation {
	m := &DocumentFormatMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentFormat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentFormatID sets the ID field of the mutation.
func withDocumentFormatID(id uuid.UUID) documentformatOption {
	return func(m *DocumentFormatMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentFormat
		)
		m.oldValue = func(ctx context.Context) (*DocumentFormat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentFormat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentFormat sets the old DocumentFormat of the mutation.
func withDocumentFormat(node *DocumentFormat) documentformatOption {
	return func(m *DocumentFormatMutation) {
		m.oldValue = func(context.Context) (*DocumentFormat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentFormatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentFormatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentFormat entities.
func (m *DocumentFormatMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentFormatMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentFormatMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentFormat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *DocumentFormatMutation) SetOrganizationID(u uuid.UUID) {
	m.organization = &u
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *DocumentFormatMutation) OrganizationID() (r uuid.UUID, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldOrganizationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *DocumentFormatMutation) ResetOrganizationID() {
	m.organization = nil
}

// SetName sets the "name" field.
func (m *DocumentFormatMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentFormatMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DocumentFormatMutation) ResetName() {
	m.name = nil
}

// SetHeaderPattern sets the "header_pattern" field.
func (m *DocumentFormatMutation) SetHeaderPattern(s string) {
	m.header_pattern = &s
}

// HeaderPattern returns the value of the "header_pattern" field in the mutation.
func (m *DocumentFormatMutation) HeaderPattern() (r string, exists bool) {
	v := m.header_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaderPattern returns the old "header_pattern" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldHeaderPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaderPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaderPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaderPattern: %w", err)
	}
	return oldValue.HeaderPattern, nil
}

// ClearHeaderPattern clears the value of the "header_pattern" field.
func (m *DocumentFormatMutation) ClearHeaderPattern() {
	m.header_pattern = nil
	m.clearedFields[documentformat.FieldHeaderPattern] = struct{}{}
}

// HeaderPatternCleared returns if the "header_pattern" field was cleared in this mutation.
func (m *DocumentFormatMutation) HeaderPatternCleared() bool {
	_, ok := m.clearedFields[documentformat.FieldHeaderPattern]
	return ok
}

// ResetHeaderPattern resets all changes to the "header_pattern" field.
func (m *DocumentFormatMutation) ResetHeaderPattern() {
	m.header_pattern = nil
	delete(m.clearedFields, documentformat.FieldHeaderPattern)
}

// SetLogoSignature sets the "logo_signature" field.
func (m *DocumentFormatMutation) SetLogoSignature(s string) {
	m.logo_signature = &s
}

// LogoSignature returns the value of the "logo_signature" field in the mutation.
func (m *DocumentFormatMutation) LogoSignature() (r string, exists bool) {
	v := m.logo_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldLogoSignature returns the old "logo_signature" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldLogoSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogoSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogoSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogoSignature: %w", err)
	}
	return oldValue.LogoSignature, nil
}

// ClearLogoSignature clears the value of the "logo_signature" field.
func (m *DocumentFormatMutation) ClearLogoSignature() {
	m.logo_signature = nil
	m.clearedFields[documentformat.FieldLogoSignature] = struct{}{}
}

// LogoSignatureCleared returns if the "logo_signature" field was cleared in this mutation.
func (m *DocumentFormatMutation) LogoSignatureCleared() bool {
	_, ok := m.clearedFields[documentformat.FieldLogoSignature]
	return ok
}

// ResetLogoSignature resets all changes to the "logo_signature" field.
func (m *DocumentFormatMutation) ResetLogoSignature() {
	m.logo_signature = nil
	delete(m.clearedFields, documentformat.FieldLogoSignature)
}

// SetLayoutFingerprint sets the "layout_fingerprint" field.
func (m *DocumentFormatMutation) SetLayoutFingerprint(s string) {
	m.layout_fingerprint = &s
}

// LayoutFingerprint returns the value of the "layout_fingerprint" field in the mutation.
func (m *DocumentFormatMutation) LayoutFingerprint() (r string, exists bool) {
	v := m.layout_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldLayoutFingerprint returns the old "layout_fingerprint" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldLayoutFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayoutFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayoutFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayoutFingerprint: %w", err)
	}
	return oldValue.LayoutFingerprint, nil
}

// ClearLayoutFingerprint clears the value of the "layout_fingerprint" field.
func (m *DocumentFormatMutation) ClearLayoutFingerprint() {
	m.layout_fingerprint = nil
	m.clearedFields[documentformat.FieldLayoutFingerprint] = struct{}{}
}

// LayoutFingerprintCleared returns if the "layout_fingerprint" field was cleared in this mutation.
func (m *DocumentFormatMutation) LayoutFingerprintCleared() bool {
	_, ok := m.clearedFields[documentformat.FieldLayoutFingerprint]
	return ok
}

// ResetLayoutFingerprint resets all changes to the "layout_fingerprint" field.
func (m *DocumentFormatMutation) ResetLayoutFingerprint() {
	m.layout_fingerprint = nil
	delete(m.clearedFields, documentformat.FieldLayoutFingerprint)
}

// SetDetectedFields sets the "detected_fields" field.
func (m *DocumentFormatMutation) SetDetectedFields(s []string) {
	m.detected_fields = &s
	m.appenddetected_fields = nil
}

// DetectedFields returns the value of the "detected_fields" field in the mutation.
func (m *DocumentFormatMutation) DetectedFields() (r []string, exists bool) {
	v := m.detected_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedFields returns the old "detected_fields" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldDetectedFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedFields: %w", err)
	}
	return oldValue.DetectedFields, nil
}

// AppendDetectedFields adds s to the "detected_fields" field.
func (m *DocumentFormatMutation) AppendDetectedFields(s []string) {
	m.appenddetected_fields = append(m.appenddetected_fields, s...)
}

// AppendedDetectedFields returns the list of values that were appended to the "detected_fields" field in this mutation.
func (m *DocumentFormatMutation) AppendedDetectedFields() ([]string, bool) {
	if len(m.appenddetected_fields) == 0 {
		return nil, false
	}
	return m.appenddetected_fields, true
}

// ClearDetectedFields clears the value of the "detected_fields" field.
func (m *DocumentFormatMutation) ClearDetectedFields() {
	m.detected_fields = nil
	m.appenddetected_fields = nil
	m.clearedFields[documentformat.FieldDetectedFields] = struct{}{}
}

// DetectedFieldsCleared returns if the "detected_fields" field was cleared in this mutation.
func (m *DocumentFormatMutation) DetectedFieldsCleared() bool {
	_, ok := m.clearedFields[documentformat.FieldDetectedFields]
	return ok
}

// ResetDetectedFields resets all changes to the "detected_fields" field.
func (m *DocumentFormatMutation) ResetDetectedFields() {
	m.detected_fields = nil
	m.appenddetected_fields = nil
	delete(m.clearedFields, documentformat.FieldDetectedFields)
}

// SetFingerprint sets the "fingerprint" field.
func (m *DocumentFormatMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *DocumentFormatMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *DocumentFormatMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetAutoCreated sets the "auto_created" field.
func (m *DocumentFormatMutation) SetAutoCreated(b bool) {
	m.auto_created = &b
}

// AutoCreated returns the value of the "auto_created" field in the mutation.
func (m *DocumentFormatMutation) AutoCreated() (r bool, exists bool) {
	v := m.auto_created
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCreated returns the old "auto_created" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldAutoCreated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCreated: %w", err)
	}
	return oldValue.AutoCreated, nil
}

// ResetAutoCreated resets all changes to the "auto_created" field.
func (m *DocumentFormatMutation) ResetAutoCreated() {
	m.auto_created = nil
}

// SetSourceDocumentID sets the "source_document_id" field.
func (m *DocumentFormatMutation) SetSourceDocumentID(u uuid.UUID) {
	m.source_document_id = &u
}

// SourceDocumentID returns the value of the "source_document_id" field in the mutation.
func (m *DocumentFormatMutation) SourceDocumentID() (r uuid.UUID, exists bool) {
	v := m.source_document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocumentID returns the old "source_document_id" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldSourceDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocumentID: %w", err)
	}
	return oldValue.SourceDocumentID, nil
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (m *DocumentFormatMutation) ClearSourceDocumentID() {
	m.source_document_id = nil
	m.clearedFields[documentformat.FieldSourceDocumentID] = struct{}{}
}

// SourceDocumentIDCleared returns if the "source_document_id" field was cleared in this mutation.
func (m *DocumentFormatMutation) SourceDocumentIDCleared() bool {
	_, ok := m.clearedFields[documentformat.FieldSourceDocumentID]
	return ok
}

// ResetSourceDocumentID resets all changes to the "source_document_id" field.
func (m *DocumentFormatMutation) ResetSourceDocumentID() {
	m.source_document_id = nil
	delete(m.clearedFields, documentformat.FieldSourceDocumentID)
}

// SetIsActive sets the "is_active" field.
func (m *DocumentFormatMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DocumentFormatMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DocumentFormatMutation) ResetIsActive() {
	m.is_active = nil
}

// SetMatchCount sets the "match_count" field.
func (m *DocumentFormatMutation) SetMatchCount(i int) {
	m.match_count = &i
	m.addmatch_count = nil
}

// MatchCount returns the value of the "match_count" field in the mutation.
func (m *DocumentFormatMutation) MatchCount() (r int, exists bool) {
	v := m.match_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchCount returns the old "match_count" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldMatchCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchCount: %w", err)
	}
	return oldValue.MatchCount, nil
}

// AddMatchCount adds i to the "match_count" field.
func (m *DocumentFormatMutation) AddMatchCount(i int) {
	if m.addmatch_count != nil {
		*m.addmatch_count += i
	} else {
		m.addmatch_count = &i
	}
}

// AddedMatchCount returns the value that was added to the "match_count" field in this mutation.
func (m *DocumentFormatMutation) AddedMatchCount() (r int, exists bool) {
	v := m.addmatch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchCount resets all changes to the "match_count" field.
func (m *DocumentFormatMutation) ResetMatchCount() {
	m.match_count = nil
	m.addmatch_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentFormatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentFormatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentFormatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentFormatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentFormatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DocumentFormat entity.
// If the DocumentFormat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFormatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentFormatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *DocumentFormatMutation) ClearOrganization() {
	m.clearedorganization = true
	m.clearedFields[documentformat.FieldOrganizationID] = struct{}{}
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *DocumentFormatMutation) OrganizationCleared() bool {
	return m.clearedorganization
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *DocumentFormatMutation) OrganizationIDs() (ids []uuid.UUID) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *DocumentFormatMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// AddTermIDs adds the "terms" edge to the VocabularyTerm entity by ids.
func (m *DocumentFormatMutation) AddTermIDs(ids ...uuid.UUID) {
	if m.terms == nil {
		m.terms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.terms[ids[i]] = struct{}{}
	}
}

// ClearTerms clears the "terms" edge to the VocabularyTerm entity.
func (m *DocumentFormatMutation) ClearTerms() {
	m.clearedterms = true
}

// TermsCleared reports if the "terms" edge to the VocabularyTerm entity was cleared.
func (m *DocumentFormatMutation) TermsCleared() bool {
	return m.clearedterms
}

// RemoveTermIDs removes the "terms" edge to the VocabularyTerm entity by IDs.
func (m *DocumentFormatMutation) RemoveTermIDs(ids ...uuid.UUID) {
	if m.removedterms == nil {
		m.removedterms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.terms, ids[i])
		m.removedterms[ids[i]] = struct{}{}
	}
}

// RemovedTerms returns the removed IDs of the "terms" edge to the VocabularyTerm entity.
func (m *DocumentFormatMutation) RemovedTermsIDs() (ids []uuid.UUID) {
	for id := range m.removedterms {
		ids = append(ids, id)
	}
	return
}

// TermsIDs returns the "terms" edge IDs in the mutation.
func (m *DocumentFormatMutation) TermsIDs() (ids []uuid.UUID) {
	for id := range m.terms {
		ids = append(ids, id)
	}
	return
}

// ResetTerms resets all changes to the "terms" edge.
func (m *DocumentFormatMutation) ResetTerms() {
	m.terms = nil
	m.clearedterms = false
	m.removedterms = nil
}

// AddMappingConfigIDs adds the "mapping_configs" edge to the FieldMappingConfig entity by ids.
func (m *DocumentFormatMutation) AddMappingConfigIDs(ids ...uuid.UUID) {
	if m.mapping_configs == nil {
		m.mapping_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mapping_configs[ids[i]] = struct{}{}
	}
}

// ClearMappingConfigs clears the "mapping_configs" edge to the FieldMappingConfig entity.
func (m *DocumentFormatMutation) ClearMappingConfigs() {
	m.clearedmapping_configs = true
}

// MappingConfigsCleared reports if the "mapping_configs" edge to the FieldMappingConfig entity was cleared.
func (m *DocumentFormatMutation) MappingConfigsCleared() bool {
	return m.clearedmapping_configs
}

// RemoveMappingConfigIDs removes the "mapping_configs" edge to the FieldMappingConfig entity by IDs.
func (m *DocumentFormatMutation) RemoveMappingConfigIDs(ids ...uuid.UUID) {
	if m.removedmapping_configs == nil {
		m.removedmapping_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mapping_configs, ids[i])
		m.removedmapping_configs[ids[i]] = struct{}{}
	}
}

// RemovedMappingConfigs returns the removed IDs of the "mapping_configs" edge to the FieldMappingConfig entity.
func (m *DocumentFormatMutation) RemovedMappingConfigsIDs() (ids []uuid.UUID) {
	for id := range m.removedmapping_configs {
		ids = append(ids, id)
	}
	return
}

// MappingConfigsIDs returns the "mapping_configs" edge IDs in the mutation.
func (m *DocumentFormatMutation) MappingConfigsIDs() (ids []uuid.UUID) {
	for id := range m.mapping_configs {
		ids = append(ids, id)
	}
	return
}

// ResetMappingConfigs resets all changes to the "mapping_configs" edge.
func (m *DocumentFormatMutation) ResetMappingConfigs() {
	m.mapping_configs = nil
	m.clearedmapping_configs = false
	m.removedmapping_configs = nil
}

// AddPromptConfigIDs adds the "prompt_configs" edge to the PromptConfig entity by ids.
func (m *DocumentFormatMutation) AddPromptConfigIDs(ids ...uuid.UUID) {
	if m.prompt_configs == nil {
		m.prompt_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prompt_configs[ids[i]] = struct{}{}
	}
}

// ClearPromptConfigs clears the "prompt_configs" edge to the PromptConfig entity.
func (m *DocumentFormatMutation) ClearPromptConfigs() {
	m.clearedprompt_configs = true
}

// PromptConfigsCleared reports if the "prompt_configs" edge to the PromptConfig entity was cleared.
func (m *DocumentFormatMutation) PromptConfigsCleared() bool {
	return m.clearedprompt_configs
}

// RemovePromptConfigIDs removes the "prompt_configs" edge to the PromptConfig entity by IDs.
func (m *DocumentFormatMutation) RemovePromptConfigIDs(ids ...uuid.UUID) {
	if m.removedprompt_configs == nil {
		m.removedprompt_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prompt_configs, ids[i])
		m.removedprompt_configs[ids[i]] = struct{}{}
	}
}

// RemovedPromptConfigs returns the removed IDs of the "prompt_configs" edge to the PromptConfig entity.
func (m *DocumentFormatMutation) RemovedPromptConfigsIDs() (ids []uuid.UUID) {
	for id := range m.removedprompt_configs {
		ids = append(ids, id)
	}
	return
}

// PromptConfigsIDs returns the "prompt_configs" edge IDs in the mutation.
func (m *DocumentFormatMutation) PromptConfigsIDs() (ids []uuid.UUID) {
	for id := range m.prompt_configs {
		ids = append(ids, id)
	}
	return
}

// ResetPromptConfigs resets all changes to the "prompt_configs" edge.
func (m *DocumentFormatMutation) ResetPromptConfigs() {
	m.prompt_configs = nil
	m.clearedprompt_configs = false
	m.removedprompt_configs = nil
}

// Where appends a list predicates to the DocumentFormatMutation builder.
func (m *DocumentFormatMutation) Where(ps ...predicate.DocumentFormat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentFormatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentFormatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentFormat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentFormatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentFormatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentFormat).
func (m *DocumentFormatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentFormatMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.organization != nil {
		fields = append(fields, documentformat.FieldOrganizationID)
	}
	if m.name != nil {
		fields = append(fields, documentformat.FieldName)
	}
	if m.header_pattern != nil {
		fields = append(fields, documentformat.FieldHeaderPattern)
	}
	if m.logo_signature != nil {
		fields = append(fields, documentformat.FieldLogoSignature)
	}
	if m.layout_fingerprint != nil {
		fields = append(fields, documentformat.FieldLayoutFingerprint)
	}
	if m.detected_fields != nil {
		fields = append(fields, documentformat.FieldDetectedFields)
	}
	if m.fingerprint != nil {
		fields = append(fields, documentformat.FieldFingerprint)
	}
	if m.auto_created != nil {
		fields = append(fields, documentformat.FieldAutoCreated)
	}
	if m.source_document_id != nil {
		fields = append(fields, documentformat.FieldSourceDocumentID)
	}
	if m.is_active != nil {
		fields = append(fields, documentformat.FieldIsActive)
	}
	if m.match_count != nil {
		fields = append(fields, documentformat.FieldMatchCount)
	}
	if m.created_at != nil {
		fields = append(fields, documentformat.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, documentformat.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentFormatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentformat.FieldOrganizationID:
		return m.OrganizationID()
	case documentformat.FieldName:
		return m.Name()
	case documentformat.FieldHeaderPattern:
		return m.HeaderPattern()
	case documentformat.FieldLogoSignature:
		return m.LogoSignature()
	case documentformat.FieldLayoutFingerprint:
		return m.LayoutFingerprint()
	case documentformat.FieldDetectedFields:
		return m.DetectedFields()
	case documentformat.FieldFingerprint:
		return m.Fingerprint()
	case documentformat.FieldAutoCreated:
		return m.AutoCreated()
	case documentformat.FieldSourceDocumentID:
		return m.SourceDocumentID()
	case documentformat.FieldIsActive:
		return m.IsActive()
	case documentformat.FieldMatchCount:
		return m.MatchCount()
	case documentformat.FieldCreatedAt:
		return m.CreatedAt()
	case documentformat.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentFormatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentformat.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case documentformat.FieldName:
		return m.OldName(ctx)
	case documentformat.FieldHeaderPattern:
		return m.OldHeaderPattern(ctx)
	case documentformat.FieldLogoSignature:
		return m.OldLogoSignature(ctx)
	case documentformat.FieldLayoutFingerprint:
		return m.OldLayoutFingerprint(ctx)
	case documentformat.FieldDetectedFields:
		return m.OldDetectedFields(ctx)
	case documentformat.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case documentformat.FieldAutoCreated:
		return m.OldAutoCreated(ctx)
	case documentformat.FieldSourceDocumentID:
		return m.OldSourceDocumentID(ctx)
	case documentformat.FieldIsActive:
		return m.OldIsActive(ctx)
	case documentformat.FieldMatchCount:
		return m.OldMatchCount(ctx)
	case documentformat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case documentformat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentFormat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFormatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentformat.FieldOrganizationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case documentformat.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case documentformat.FieldHeaderPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaderPattern(v)
		return nil
	case documentformat.FieldLogoSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogoSignature(v)
		return nil
	case documentformat.FieldLayoutFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayoutFingerprint(v)
		return nil
	case documentformat.FieldDetectedFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedFields(v)
		return nil
	case documentformat.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case documentformat.FieldAutoCreated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCreated(v)
		return nil
	case documentformat.FieldSourceDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocumentID(v)
		return nil
	case documentformat.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case documentformat.FieldMatchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchCount(v)
		return nil
	case documentformat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case documentformat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentFormat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentFormatMutation) AddedFields() []string {
	var fields []string
	if m.addmatch_count != nil {
		fields = append(fields, documentformat.FieldMatchCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentFormatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentformat.FieldMatchCount:
		return m.AddedMatchCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFormatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentformat.FieldMatchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchCount(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentFormat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentFormatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentformat.FieldHeaderPattern) {
		fields = append(fields, documentformat.FieldHeaderPattern)
	}
	if m.FieldCleared(documentformat.FieldLogoSignature) {
		fields = append(fields, documentformat.FieldLogoSignature)
	}
	if m.FieldCleared(documentformat.FieldLayoutFingerprint) {
		fields = append(fields, documentformat.FieldLayoutFingerprint)
	}
	if m.FieldCleared(documentformat.FieldDetectedFields) {
		fields = append(fields, documentformat.FieldDetectedFields)
	}
	if m.FieldCleared(documentformat.FieldSourceDocumentID) {
		fields = append(fields, documentformat.FieldSourceDocumentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentFormatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentFormatMutation) ClearField(name string) error {
	switch name {
	case documentformat.FieldHeaderPattern:
		m.ClearHeaderPattern()
		return nil
	case documentformat.FieldLogoSignature:
		m.ClearLogoSignature()
		return nil
	case documentformat.FieldLayoutFingerprint:
		m.ClearLayoutFingerprint()
		return nil
	case documentformat.FieldDetectedFields:
		m.ClearDetectedFields()
		return nil
	case documentformat.FieldSourceDocumentID:
		m.ClearSourceDocumentID()
		return nil
	}
	return fmt.Errorf("unknown DocumentFormat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentFormatMutation) ResetField(name string) error {
	switch name {
	case documentformat.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case documentformat.FieldName:
		m.ResetName()
		return nil
	case documentformat.FieldHeaderPattern:
		m.ResetHeaderPattern()
		return nil
	case documentformat.FieldLogoSignature:
		m.ResetLogoSignature()
		return nil
	case documentformat.FieldLayoutFingerprint:
		m.ResetLayoutFingerprint()
		return nil
	case documentformat.FieldDetectedFields:
		m.ResetDetectedFields()
		return nil
	case documentformat.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case documentformat.FieldAutoCreated:
		m.ResetAutoCreated()
		return nil
	case documentformat.FieldSourceDocumentID:
		m.ResetSourceDocumentID()
		return nil
	case documentformat.FieldIsActive:
		m.ResetIsActive()
		return nil
	case documentformat.FieldMatchCount:
		m.ResetMatchCount()
		return nil
	case documentformat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case documentformat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentFormat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentFormatMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.organization != nil {
		edges = append(edges, documentformat.EdgeOrganization)
	}
	if m.terms != nil {
		edges = append(edges, documentformat.EdgeTerms)
	}
	if m.mapping_configs != nil {
		edges = append(edges, documentformat.EdgeMappingConfigs)
	}
	if m.prompt_configs != nil {
		edges = append(edges, documentformat.EdgePromptConfigs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentFormatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentformat.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case documentformat.EdgeTerms:
		ids := make([]ent.Value, 0, len(m.terms))
		for id := range m.terms {
			ids = append(ids, id)
		}
		return ids
	case documentformat.EdgeMappingConfigs:
		ids := make([]ent.Value, 0, len(m.mapping_configs))
		for id := range m.mapping_configs {
			ids = append(ids, id)
		}
		return ids
	case documentformat.EdgePromptConfigs:
		ids := make([]ent.Value, 0, len(m.prompt_configs))
		for id := range m.prompt_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentFormatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedterms != nil {
		edges = append(edges, documentformat.EdgeTerms)
	}
	if m.removedmapping_configs != nil {
		edges = append(edges, documentformat.EdgeMappingConfigs)
	}
	if m.removedprompt_configs != nil {
		edges = append(edges, documentformat.EdgePromptConfigs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentFormatMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentformat.EdgeTerms:
		ids := make([]ent.Value, 0, len(m.removedterms))
		for id := range m.removedterms {
			ids = append(ids, id)
		}
		return ids
	case documentformat.EdgeMappingConfigs:
		ids := make([]ent.Value, 0, len(m.removedmapping_configs))
		for id := range m.removedmapping_configs {
			ids = append(ids, id)
		}
		return ids
	case documentformat.EdgePromptConfigs:
		ids := make([]ent.Value, 0, len(m.removedprompt_configs))
		for id := range m.removedprompt_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentFormatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedorganization {
		edges = append(edges, documentformat.EdgeOrganization)
	}
	if m.clearedterms {
		edges = append(edges, documentformat.EdgeTerms)
	}
	if m.clearedmapping_configs {
		edges = append(edges, documentformat.EdgeMappingConfigs)
	}
	if m.clearedprompt_configs {
		edges = append(edges, documentformat.EdgePromptConfigs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentFormatMutation) EdgeCleared(name string) bool {
	switch name {
	case documentformat.EdgeOrganization:
		return m.clearedorganization
	case documentformat.EdgeTerms:
		return m.clearedterms
	case documentformat.EdgeMappingConfigs:
		return m.clearedmapping_configs
	case documentformat.EdgePromptConfigs:
		return m.clearedprompt_configs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentFormatMutation) ClearEdge(name string) error {
	switch name {
	case documentformat.EdgeOrganization:
		m.ClearOrganization()
		return nil
	}
	return fmt.Errorf("unknown DocumentFormat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentFormatMutation) ResetEdge(name string) error {
	switch name {
	case documentformat.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case documentformat.EdgeTerms:
		m.ResetTerms()
		return nil
	case documentformat.EdgeMappingConfigs:
		m.ResetMappingConfigs()
		return nil
	case documentformat.EdgePromptConfigs:
		m.ResetPromptConfigs()
		return nil
	}
	return fmt.Errorf("unknown DocumentFormat edge %s", name)
}

// FieldMappingConfigMutation represents an operation that mutates the FieldMappingConfig nodes in the graph.
type FieldMappingConfigMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	mappings            *[]entity.FieldMapping
	appendmappings      []entity.FieldMapping
	is_active           *bool
	priority            *int
	addpriority         *int
	created_by          *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	organization        *uuid.UUID
	clearedorganization bool
	format              *uuid.UUID
	clearedformat       bool
	done                bool
	oldValue            func(context.Context) (*FieldMappingConfig, error)
	predicates          []predicate.FieldMappingConfig
}

var _ ent.Mutation = (*FieldMappingConfigMutation)(nil)

// fieldmappingconfigOption allows management of the mutation configuration using functional options.
type fieldmappingconfigOption func(*FieldMappingConfigMutation)

// newFieldMappingConfigMutation creates new mutation for the FieldMappingConfig entity.
func newFieldMappingConfigMutation(c config, op Op, opts ...fieldmappingconfigOption) *FieldMappingConfigMutation {
	m := &FieldMappingConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldMappingConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldMappingConfigID sets the ID field of the mutation.
func withFieldMappingConfigID(id uuid.UUID) fieldmappingconfigOption {
	return func(m *FieldMappingConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldMappingConfig
		)
		m.oldValue = func(ctx context.Context) (*FieldMappingConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldMappingConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldMappingConfig sets the old FieldMappingConfig of the mutation.
func withFieldMappingConfig(node *FieldMappingConfig) fieldmappingconfigOption {
	return func(m *FieldMappingConfigMutation) {
		m.oldValue = func(context.Context) (*FieldMappingConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldMappingConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldMappingConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldMappingConfig entities.
func (m *FieldMappingConfigMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldMappingConfigMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldMappingConfigMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldMappingConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *FieldMappingConfigMutation) SetOrganizationID(u uuid.UUID) {
	m.organization = &u
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *FieldMappingConfigMutation) OrganizationID() (r uuid.UUID, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldOrganizationID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (m *FieldMappingConfigMutation) ClearOrganizationID() {
	m.organization = nil
	m.clearedFields[fieldmappingconfig.FieldOrganizationID] = struct{}{}
}

// OrganizationIDCleared returns if the "organization_id" field was cleared in this mutation.
func (m *FieldMappingConfigMutation) OrganizationIDCleared() bool {
	_, ok := m.clearedFields[fieldmappingconfig.FieldOrganizationID]
	return ok
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *FieldMappingConfigMutation) ResetOrganizationID() {
	m.organization = nil
	delete(m.clearedFields, fieldmappingconfig.FieldOrganizationID)
}

// SetFormatID sets the "format_id" field.
func (m *FieldMappingConfigMutation) SetFormatID(u uuid.UUID) {
	m.format = &u
}

// FormatID returns the value of the "format_id" field in the mutation.
func (m *FieldMappingConfigMutation) FormatID() (r uuid.UUID, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormatID returns the old "format_id" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldFormatID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormatID: %w", err)
	}
	return oldValue.FormatID, nil
}

// ClearFormatID clears the value of the "format_id" field.
func (m *FieldMappingConfigMutation) ClearFormatID() {
	m.format = nil
	m.clearedFields[fieldmappingconfig.FieldFormatID] = struct{}{}
}

// FormatIDCleared returns if the "format_id" field was cleared in this mutation.
func (m *FieldMappingConfigMutation) FormatIDCleared() bool {
	_, ok := m.clearedFields[fieldmappingconfig.FieldFormatID]
	return ok
}

// ResetFormatID resets all changes to the "format_id" field.
func (m *FieldMappingConfigMutation) ResetFormatID() {
	m.format = nil
	delete(m.clearedFields, fieldmappingconfig.FieldFormatID)
}

// SetName sets the "name" field.
func (m *FieldMappingConfigMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FieldMappingConfigMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FieldMappingConfigMutation) ResetName() {
	m.name = nil
}

// SetMappings sets the "mappings" field.
func (m *FieldMappingConfigMutation) SetMappings(em []entity.FieldMapping) {
	m.mappings = &em
	m.appendmappings = nil
}

// Mappings returns the value of the "mappings" field in the mutation.
func (m *FieldMappingConfigMutation) Mappings() (r []entity.FieldMapping, exists bool) {
	v := m.mappings
	if v == nil {
		return
	}
	return *v, true
}

// OldMappings returns the old "mappings" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldMappings(ctx context.Context) (v []entity.FieldMapping, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappings: %w", err)
	}
	return oldValue.Mappings, nil
}

// AppendMappings adds em to the "mappings" field.
func (m *FieldMappingConfigMutation) AppendMappings(em []entity.FieldMapping) {
	m.appendmappings = append(m.appendmappings, em...)
}

// AppendedMappings returns the list of values that were appended to the "mappings" field in this mutation.
func (m *FieldMappingConfigMutation) AppendedMappings() ([]entity.FieldMapping, bool) {
	if len(m.appendmappings) == 0 {
		return nil, false
	}
	return m.appendmappings, true
}

// ResetMappings resets all changes to the "mappings" field.
func (m *FieldMappingConfigMutation) ResetMappings() {
	m.mappings = nil
	m.appendmappings = nil
}

// SetIsActive sets the "is_active" field.
func (m *FieldMappingConfigMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FieldMappingConfigMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FieldMappingConfigMutation) ResetIsActive() {
	m.is_active = nil
}

// SetPriority sets the "priority" field.
func (m *FieldMappingConfigMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *FieldMappingConfigMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *FieldMappingConfigMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *FieldMappingConfigMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *FieldMappingConfigMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *FieldMappingConfigMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *FieldMappingConfigMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *FieldMappingConfigMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[fieldmappingconfig.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *FieldMappingConfigMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[fieldmappingconfig.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *FieldMappingConfigMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, fieldmappingconfig.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *FieldMappingConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FieldMappingConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FieldMappingConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FieldMappingConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FieldMappingConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FieldMappingConfig entity.
// If the FieldMappingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FieldMappingConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *FieldMappingConfigMutation) ClearOrganization() {
	m.clearedorganization = true
	m.clearedFields[fieldmappingconfig.FieldOrganizationID] = struct{}{}
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *FieldMappingConfigMutation) OrganizationCleared() bool {
	return m.OrganizationIDCleared() || m.clearedorganization
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *FieldMappingConfigMutation) OrganizationIDs() (ids []uuid.UUID) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *FieldMappingConfigMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (m *FieldMappingConfigMutation) ClearFormat() {
	m.clearedformat = true
	m.clearedFields[fieldmappingconfig.FieldFormatID] = struct{}{}
}

// FormatCleared reports if the "format" edge to the DocumentFormat entity was cleared.
func (m *FieldMappingConfigMutation) FormatCleared() bool {
	return m.FormatIDCleared() || m.clearedformat
}

// FormatIDs returns the "format" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FormatID instead. It exists only for internal usage by the builders.
func (m *FieldMappingConfigMutation) FormatIDs() (ids []uuid.UUID) {
	if id := m.format; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFormat resets all changes to the "format" edge.
func (m *FieldMappingConfigMutation) ResetFormat() {
	m.format = nil
	m.clearedformat = false
}

// Where appends a list predicates to the FieldMappingConfigMutation builder.
func (m *FieldMappingConfigMutation) Where(ps ...predicate.FieldMappingConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldMappingConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldMappingConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldMappingConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldMappingConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldMappingConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldMappingConfig).
func (m *FieldMappingConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldMappingConfigMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.organization != nil {
		fields = append(fields, fieldmappingconfig.FieldOrganizationID)
	}
	if m.format != nil {
		fields = append(fields, fieldmappingconfig.FieldFormatID)
	}
	if m.name != nil {
		fields = append(fields, fieldmappingconfig.FieldName)
	}
	if m.mappings != nil {
		fields = append(fields, fieldmappingconfig.FieldMappings)
	}
	if m.is_active != nil {
		fields = append(fields, fieldmappingconfig.FieldIsActive)
	}
	if m.priority != nil {
		fields = append(fields, fieldmappingconfig.FieldPriority)
	}
	if m.created_by != nil {
		fields = append(fields, fieldmappingconfig.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, fieldmappingconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fieldmappingconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldMappingConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldmappingconfig.FieldOrganizationID:
		return m.OrganizationID()
	case fieldmappingconfig.FieldFormatID:
		return m.FormatID()
	case fieldmappingconfig.FieldName:
		return m.Name()
	case fieldmappingconfig.FieldMappings:
		return m.Mappings()
	case fieldmappingconfig.FieldIsActive:
		return m.IsActive()
	case fieldmappingconfig.FieldPriority:
		return m.Priority()
	case fieldmappingconfig.FieldCreatedBy:
		return m.CreatedBy()
	case fieldmappingconfig.FieldCreatedAt:
		return m.CreatedAt()
	case fieldmappingconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldMappingConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldmappingconfig.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case fieldmappingconfig.FieldFormatID:
		return m.OldFormatID(ctx)
	case fieldmappingconfig.FieldName:
		return m.OldName(ctx)
	case fieldmappingconfig.FieldMappings:
		return m.OldMappings(ctx)
	case fieldmappingconfig.FieldIsActive:
		return m.OldIsActive(ctx)
	case fieldmappingconfig.FieldPriority:
		return m.OldPriority(ctx)
	case fieldmappingconfig.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case fieldmappingconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fieldmappingconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FieldMappingConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMappingConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldmappingconfig.FieldOrganizationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case fieldmappingconfig.FieldFormatID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormatID(v)
		return nil
	case fieldmappingconfig.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case fieldmappingconfig.FieldMappings:
		v, ok := value.([]entity.FieldMapping)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappings(v)
		return nil
	case fieldmappingconfig.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case fieldmappingconfig.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case fieldmappingconfig.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case fieldmappingconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fieldmappingconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FieldMappingConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldMappingConfigMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, fieldmappingconfig.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldMappingConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fieldmappingconfig.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMappingConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fieldmappingconfig.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown FieldMappingConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldMappingConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fieldmappingconfig.FieldOrganizationID) {
		fields = append(fields, fieldmappingconfig.FieldOrganizationID)
	}
	if m.FieldCleared(fieldmappingconfig.FieldFormatID) {
		fields = append(fields, fieldmappingconfig.FieldFormatID)
	}
	if m.FieldCleared(fieldmappingconfig.FieldCreatedBy) {
		fields = append(fields, fieldmappingconfig.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldMappingConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldMappingConfigMutation) ClearField(name string) error {
	switch name {
	case fieldmappingconfig.FieldOrganizationID:
		m.ClearOrganizationID()
		return nil
	case fieldmappingconfig.FieldFormatID:
		m.ClearFormatID()
		return nil
	case fieldmappingconfig.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown FieldMappingConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldMappingConfigMutation) ResetField(name string) error {
	switch name {
	case fieldmappingconfig.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case fieldmappingconfig.FieldFormatID:
		m.ResetFormatID()
		return nil
	case fieldmappingconfig.FieldName:
		m.ResetName()
		return nil
	case fieldmappingconfig.FieldMappings:
		m.ResetMappings()
		return nil
	case fieldmappingconfig.FieldIsActive:
		m.ResetIsActive()
		return nil
	case fieldmappingconfig.FieldPriority:
		m.ResetPriority()
		return nil
	case fieldmappingconfig.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case fieldmappingconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fieldmappingconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FieldMappingConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldMappingConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.organization != nil {
		edges = append(edges, fieldmappingconfig.EdgeOrganization)
	}
	if m.format != nil {
		edges = append(edges, fieldmappingconfig.EdgeFormat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldMappingConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fieldmappingconfig.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case fieldmappingconfig.EdgeFormat:
		if id := m.format; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldMappingConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldMappingConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldMappingConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedorganization {
		edges = append(edges, fieldmappingconfig.EdgeOrganization)
	}
	if m.clearedformat {
		edges = append(edges, fieldmappingconfig.EdgeFormat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldMappingConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case fieldmappingconfig.EdgeOrganization:
		return m.clearedorganization
	case fieldmappingconfig.EdgeFormat:
		return m.clearedformat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldMappingConfigMutation) ClearEdge(name string) error {
	switch name {
	case fieldmappingconfig.EdgeOrganization:
		m.ClearOrganization()
		return nil
	case fieldmappingconfig.EdgeFormat:
		m.ClearFormat()
		return nil
	}
	return fmt.Errorf("unknown FieldMappingConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldMappingConfigMutation) ResetEdge(name string) error {
	switch name {
	case fieldmappingconfig.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case fieldmappingconfig.EdgeFormat:
		m.ResetFormat()
		return nil
	}
	return fmt.Errorf("unknown FieldMappingConfig edge %s", name)
}

// OrganizationMutation represents an operation that mutates the Organization nodes in the graph.
type OrganizationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	code                   *string
	normalized_name        *string
	aliases                *[]string
	appendaliases          []string
	auto_created           *bool
	source_document_id     *uuid.UUID
	is_active              *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	formats                map[uuid.UUID]struct{}
	removedformats         map[uuid.UUID]struct{}
	clearedformats         bool
	mapping_configs        map[uuid.UUID]struct{}
	removedmapping_configs map[uuid.UUID]struct{}
	clearedmapping_configs bool
	prompt_configs         map[uuid.UUID]struct{}
	removedprompt_configs  map[uuid.UUID]struct{}
	clearedprompt_configs  bool
	done                   bool
	oldValue               func(context.Context) (*Organization, error)
	predicates             []predicate.Organization
}

var _ ent.Mutation = (*OrganizationMutation)(nil)

// organizationOption allows management of the mutation configuration using functional options.
type organizationOption func(*OrganizationMutation)

// newOrganizationMutation creates new mutation for the Organization entity.
func newOrganizationMutation(c config, op Op, opts ...organizationOption) *OrganizationMutation {
	m := &OrganizationMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganizationID sets the ID field of the mutation.
func withOrganizationID(id uuid.UUID) organizationOption {
	return func(m *OrganizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Organization
		)
		m.oldValue = func(ctx context.Context) (*Organization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganization sets the old Organization of the mutation.
func withOrganization(node *Organization) organizationOption {
	return func(m *OrganizationMutation) {
		m.oldValue = func(context.Context) (*Organization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Organization entities.
func (m *OrganizationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganizationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganizationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OrganizationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrganizationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrganizationMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *OrganizationMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *OrganizationMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *OrganizationMutation) ResetCode() {
	m.code = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *OrganizationMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *OrganizationMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *OrganizationMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetAliases sets the "aliases" field.
func (m *OrganizationMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *OrganizationMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *OrganizationMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *OrganizationMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *OrganizationMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[organization.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *OrganizationMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[organization.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *OrganizationMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, organization.FieldAliases)
}

// SetAutoCreated sets the "auto_created" field.
func (m *OrganizationMutation) SetAutoCreated(b bool) {
	m.auto_created = &b
}

// AutoCreated returns the value of the "auto_created" field in the mutation.
func (m *OrganizationMutation) AutoCreated() (r bool, exists bool) {
	v := m.auto_created
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCreated returns the old "auto_created" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldAutoCreated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCreated: %w", err)
	}
	return oldValue.AutoCreated, nil
}

// ResetAutoCreated resets all changes to the "auto_created" field.
func (m *OrganizationMutation) ResetAutoCreated() {
	m.auto_created = nil
}

// SetSourceDocumentID sets the "source_document_id" field.
func (m *OrganizationMutation) SetSourceDocumentID(u uuid.UUID) {
	m.source_document_id = &u
}

// SourceDocumentID returns the value of the "source_document_id" field in the mutation.
func (m *OrganizationMutation) SourceDocumentID() (r uuid.UUID, exists bool) {
	v := m.source_document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocumentID returns the old "source_document_id" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldSourceDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocumentID: %w", err)
	}
	return oldValue.SourceDocumentID, nil
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (m *OrganizationMutation) ClearSourceDocumentID() {
	m.source_document_id = nil
	m.clearedFields[organization.FieldSourceDocumentID] = struct{}{}
}

// SourceDocumentIDCleared returns if the "source_document_id" field was cleared in this mutation.
func (m *OrganizationMutation) SourceDocumentIDCleared() bool {
	_, ok := m.clearedFields[organization.FieldSourceDocumentID]
	return ok
}

// ResetSourceDocumentID resets all changes to the "source_document_id" field.
func (m *OrganizationMutation) ResetSourceDocumentID() {
	m.source_document_id = nil
	delete(m.clearedFields, organization.FieldSourceDocumentID)
}

// SetIsActive sets the "is_active" field.
func (m *OrganizationMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *OrganizationMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *OrganizationMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrganizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrganizationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrganizationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrganizationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFormatIDs adds the "formats" edge to the DocumentFormat entity by ids.
func (m *OrganizationMutation) AddFormatIDs(ids ...uuid.UUID) {
	if m.formats == nil {
		m.formats = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.formats[ids[i]] = struct{}{}
	}
}

// ClearFormats clears the "formats" edge to the DocumentFormat entity.
func (m *OrganizationMutation) ClearFormats() {
	m.clearedformats = true
}

// FormatsCleared reports if the "formats" edge to the DocumentFormat entity was cleared.
func (m *OrganizationMutation) FormatsCleared() bool {
	return m.clearedformats
}

// RemoveFormatIDs removes the "formats" edge to the DocumentFormat entity by IDs.
func (m *OrganizationMutation) RemoveFormatIDs(ids ...uuid.UUID) {
	if m.removedformats == nil {
		m.removedformats = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.formats, ids[i])
		m.removedformats[ids[i]] = struct{}{}
	}
}

// RemovedFormats returns the removed IDs of the "formats" edge to the DocumentFormat entity.
func (m *OrganizationMutation) RemovedFormatsIDs() (ids []uuid.UUID) {
	for id := range m.removedformats {
		ids = append(ids, id)
	}
	return
}

// FormatsIDs returns the "formats" edge IDs in the mutation.
func (m *OrganizationMutation) FormatsIDs() (ids []uuid.UUID) {
	for id := range m.formats {
		ids = append(ids, id)
	}
	return
}

// ResetFormats resets all changes to the "formats" edge.
func (m *OrganizationMutation) ResetFormats() {
	m.formats = nil
	m.clearedformats = false
	m.removedformats = nil
}

// AddMappingConfigIDs adds the "mapping_configs" edge to the FieldMappingConfig entity by ids.
func (m *OrganizationMutation) AddMappingConfigIDs(ids ...uuid.UUID) {
	if m.mapping_configs == nil {
		m.mapping_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mapping_configs[ids[i]] = struct{}{}
	}
}

// ClearMappingConfigs clears the "mapping_configs" edge to the FieldMappingConfig entity.
func (m *OrganizationMutation) ClearMappingConfigs() {
	m.clearedmapping_configs = true
}

// MappingConfigsCleared reports if the "mapping_configs" edge to the FieldMappingConfig entity was cleared.
func (m *OrganizationMutation) MappingConfigsCleared() bool {
	return m.clearedmapping_configs
}

// RemoveMappingConfigIDs removes the "mapping_configs" edge to the FieldMappingConfig entity by IDs.
func (m *OrganizationMutation) RemoveMappingConfigIDs(ids ...uuid.UUID) {
	if m.removedmapping_configs == nil {
		m.removedmapping_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mapping_configs, ids[i])
		m.removedmapping_configs[ids[i]] = struct{}{}
	}
}

// RemovedMappingConfigs returns the removed IDs of the "mapping_configs" edge to the FieldMappingConfig entity.
func (m *OrganizationMutation) RemovedMappingConfigsIDs() (ids []uuid.UUID) {
	for id := range m.removedmapping_configs {
		ids = append(ids, id)
	}
	return
}

// MappingConfigsIDs returns the "mapping_configs" edge IDs in the mutation.
func (m *OrganizationMutation) MappingConfigsIDs() (ids []uuid.UUID) {
	for id := range m.mapping_configs {
		ids = append(ids, id)
	}
	return
}

// ResetMappingConfigs resets all changes to the "mapping_configs" edge.
func (m *OrganizationMutation) ResetMappingConfigs() {
	m.mapping_configs = nil
	m.clearedmapping_configs = false
	m.removedmapping_configs = nil
}

// AddPromptConfigIDs adds the "prompt_configs" edge to the PromptConfig entity by ids.
func (m *OrganizationMutation) AddPromptConfigIDs(ids ...uuid.UUID) {
	if m.prompt_configs == nil {
		m.prompt_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prompt_configs[ids[i]] = struct{}{}
	}
}

// ClearPromptConfigs clears the "prompt_configs" edge to the PromptConfig entity.
func (m *OrganizationMutation) ClearPromptConfigs() {
	m.clearedprompt_configs = true
}

// PromptConfigsCleared reports if the "prompt_configs" edge to the PromptConfig entity was cleared.
func (m *OrganizationMutation) PromptConfigsCleared() bool {
	return m.clearedprompt_configs
}

// RemovePromptConfigIDs removes the "prompt_configs" edge to the PromptConfig entity by IDs.
func (m *OrganizationMutation) RemovePromptConfigIDs(ids ...uuid.UUID) {
	if m.removedprompt_configs == nil {
		m.removedprompt_configs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prompt_configs, ids[i])
		m.removedprompt_configs[ids[i]] = struct{}{}
	}
}

// RemovedPromptConfigs returns the removed IDs of the "prompt_configs" edge to the PromptConfig entity.
func (m *OrganizationMutation) RemovedPromptConfigsIDs() (ids []uuid.UUID) {
	for id := range m.removedprompt_configs {
		ids = append(ids, id)
	}
	return
}

// PromptConfigsIDs returns the "prompt_configs" edge IDs in the mutation.
func (m *OrganizationMutation) PromptConfigsIDs() (ids []uuid.UUID) {
	for id := range m.prompt_configs {
		ids = append(ids, id)
	}
	return
}

// ResetPromptConfigs resets all changes to the "prompt_configs" edge.
func (m *OrganizationMutation) ResetPromptConfigs() {
	m.prompt_configs = nil
	m.clearedprompt_configs = false
	m.removedprompt_configs = nil
}

// Where appends a list predicates to the OrganizationMutation builder.
func (m *OrganizationMutation) Where(ps ...predicate.Organization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organization).
func (m *OrganizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganizationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, organization.FieldName)
	}
	if m.code != nil {
		fields = append(fields, organization.FieldCode)
	}
	if m.normalized_name != nil {
		fields = append(fields, organization.FieldNormalizedName)
	}
	if m.aliases != nil {
		fields = append(fields, organization.FieldAliases)
	}
	if m.auto_created != nil {
		fields = append(fields, organization.FieldAutoCreated)
	}
	if m.source_document_id != nil {
		fields = append(fields, organization.FieldSourceDocumentID)
	}
	if m.is_active != nil {
		fields = append(fields, organization.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, organization.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, organization.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldName:
		return m.Name()
	case organization.FieldCode:
		return m.Code()
	case organization.FieldNormalizedName:
		return m.NormalizedName()
	case organization.FieldAliases:
		return m.Aliases()
	case organization.FieldAutoCreated:
		return m.AutoCreated()
	case organization.FieldSourceDocumentID:
		return m.SourceDocumentID()
	case organization.FieldIsActive:
		return m.IsActive()
	case organization.FieldCreatedAt:
		return m.CreatedAt()
	case organization.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organization.FieldName:
		return m.OldName(ctx)
	case organization.FieldCode:
		return m.OldCode(ctx)
	case organization.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case organization.FieldAliases:
		return m.OldAliases(ctx)
	case organization.FieldAutoCreated:
		return m.OldAutoCreated(ctx)
	case organization.FieldSourceDocumentID:
		return m.OldSourceDocumentID(ctx)
	case organization.FieldIsActive:
		return m.OldIsActive(ctx)
	case organization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case organization.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Organization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organization.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case organization.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case organization.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case organization.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case organization.FieldAutoCreated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCreated(v)
		return nil
	case organization.FieldSourceDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocumentID(v)
		return nil
	case organization.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case organization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case organization.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganizationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganizationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganizationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(organization.FieldAliases) {
		fields = append(fields, organization.FieldAliases)
	}
	if m.FieldCleared(organization.FieldSourceDocumentID) {
		fields = append(fields, organization.FieldSourceDocumentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganizationMutation) ClearField(name string) error {
	switch name {
	case organization.FieldAliases:
		m.ClearAliases()
		return nil
	case organization.FieldSourceDocumentID:
		m.ClearSourceDocumentID()
		return nil
	}
	return fmt.Errorf("unknown Organization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganizationMutation) ResetField(name string) error {
	switch name {
	case organization.FieldName:
		m.ResetName()
		return nil
	case organization.FieldCode:
		m.ResetCode()
		return nil
	case organization.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case organization.FieldAliases:
		m.ResetAliases()
		return nil
	case organization.FieldAutoCreated:
		m.ResetAutoCreated()
		return nil
	case organization.FieldSourceDocumentID:
		m.ResetSourceDocumentID()
		return nil
	case organization.FieldIsActive:
		m.ResetIsActive()
		return nil
	case organization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case organization.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.formats != nil {
		edges = append(edges, organization.EdgeFormats)
	}
	if m.mapping_configs != nil {
		edges = append(edges, organization.EdgeMappingConfigs)
	}
	if m.prompt_configs != nil {
		edges = append(edges, organization.EdgePromptConfigs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeFormats:
		ids := make([]ent.Value, 0, len(m.formats))
		for id := range m.formats {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeMappingConfigs:
		ids := make([]ent.Value, 0, len(m.mapping_configs))
		for id := range m.mapping_configs {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgePromptConfigs:
		ids := make([]ent.Value, 0, len(m.prompt_configs))
		for id := range m.prompt_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedformats != nil {
		edges = append(edges, organization.EdgeFormats)
	}
	if m.removedmapping_configs != nil {
		edges = append(edges, organization.EdgeMappingConfigs)
	}
	if m.removedprompt_configs != nil {
		edges = append(edges, organization.EdgePromptConfigs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganizationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeFormats:
		ids := make([]ent.Value, 0, len(m.removedformats))
		for id := range m.removedformats {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeMappingConfigs:
		ids := make([]ent.Value, 0, len(m.removedmapping_configs))
		for id := range m.removedmapping_configs {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgePromptConfigs:
		ids := make([]ent.Value, 0, len(m.removedprompt_configs))
		for id := range m.removedprompt_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedformats {
		edges = append(edges, organization.EdgeFormats)
	}
	if m.clearedmapping_configs {
		edges = append(edges, organization.EdgeMappingConfigs)
	}
	if m.clearedprompt_configs {
		edges = append(edges, organization.EdgePromptConfigs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganizationMutation) EdgeCleared(name string) bool {
	switch name {
	case organization.EdgeFormats:
		return m.clearedformats
	case organization.EdgeMappingConfigs:
		return m.clearedmapping_configs
	case organization.EdgePromptConfigs:
		return m.clearedprompt_configs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganizationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganizationMutation) ResetEdge(name string) error {
	switch name {
	case organization.EdgeFormats:
		m.ResetFormats()
		return nil
	case organization.EdgeMappingConfigs:
		m.ResetMappingConfigs()
		return nil
	case organization.EdgePromptConfigs:
		m.ResetPromptConfigs()
		return nil
	}
	return fmt.Errorf("unknown Organization edge %s", name)
}

// PromptConfigMutation represents an operation that mutates the PromptConfig nodes in the graph.
type PromptConfigMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	purpose             *string
	template            *string
	version             *int
	addversion          *int
	is_active           *bool
	priority            *int
	addpriority         *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	organization        *uuid.UUID
	clearedorganization bool
	format              *uuid.UUID
	clearedformat       bool
	done                bool
	oldValue            func(context.Context) (*PromptConfig, error)
	predicates          []predicate.PromptConfig
}

var _ ent.Mutation = (*PromptConfigMutation)(nil)

// promptconfigOption allows management of the mutation configuration using functional options.
type promptconfigOption func(*PromptConfigMutation)

// newPromptConfigMutation creates new mutation for the PromptConfig entity.
func newPromptConfigMutation(c config, op Op, opts ...promptconfigOption) *PromptConfigMutation {
	m := &PromptConfigMutation{
		config:        c,
		op:            op,
		typ:           TypePromptConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptConfigID sets the ID field of the mutation.
func withPromptConfigID(id uuid.UUID) promptconfigOption {
	return func(m *PromptConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptConfig
		)
		m.oldValue = func(ctx context.Context) (*PromptConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptConfig sets the old PromptConfig of the mutation.
func withPromptConfig(node *PromptConfig) promptconfigOption {
	return func(m *PromptConfigMutation) {
		m.oldValue = func(context.Context) (*PromptConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptConfig entities.
func (m *PromptConfigMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptConfigMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptConfigMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *PromptConfigMutation) SetOrganizationID(u uuid.UUID) {
	m.organization = &u
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *PromptConfigMutation) OrganizationID() (r uuid.UUID, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldOrganizationID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (m *PromptConfigMutation) ClearOrganizationID() {
	m.organization = nil
	m.clearedFields[promptconfig.FieldOrganizationID] = struct{}{}
}

// OrganizationIDCleared returns if the "organization_id" field was cleared in this mutation.
func (m *PromptConfigMutation) OrganizationIDCleared() bool {
	_, ok := m.clearedFields[promptconfig.FieldOrganizationID]
	return ok
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *PromptConfigMutation) ResetOrganizationID() {
	m.organization = nil
	delete(m.clearedFields, promptconfig.FieldOrganizationID)
}

// SetFormatID sets the "format_id" field.
func (m *PromptConfigMutation) SetFormatID(u uuid.UUID) {
	m.format = &u
}

// FormatID returns the value of the "format_id" field in the mutation.
func (m *PromptConfigMutation) FormatID() (r uuid.UUID, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormatID returns the old "format_id" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldFormatID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormatID: %w", err)
	}
	return oldValue.FormatID, nil
}

// ClearFormatID clears the value of the "format_id" field.
func (m *PromptConfigMutation) ClearFormatID() {
	m.format = nil
	m.clearedFields[promptconfig.FieldFormatID] = struct{}{}
}

// FormatIDCleared returns if the "format_id" field was cleared in this mutation.
func (m *PromptConfigMutation) FormatIDCleared() bool {
	_, ok := m.clearedFields[promptconfig.FieldFormatID]
	return ok
}

// ResetFormatID resets all changes to the "format_id" field.
func (m *PromptConfigMutation) ResetFormatID() {
	m.format = nil
	delete(m.clearedFields, promptconfig.FieldFormatID)
}

// SetPurpose sets the "purpose" field.
func (m *PromptConfigMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *PromptConfigMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *PromptConfigMutation) ResetPurpose() {
	m.purpose = nil
}

// SetTemplate sets the "template" field.
func (m *PromptConfigMutation) SetTemplate(s string) {
	m.template = &s
}

// Template returns the value of the "template" field in the mutation.
func (m *PromptConfigMutation) Template() (r string, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplate returns the old "template" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplate: %w", err)
	}
	return oldValue.Template, nil
}

// ResetTemplate resets all changes to the "template" field.
func (m *PromptConfigMutation) ResetTemplate() {
	m.template = nil
}

// SetVersion sets the "version" field.
func (m *PromptConfigMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PromptConfigMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PromptConfigMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PromptConfigMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PromptConfigMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsActive sets the "is_active" field.
func (m *PromptConfigMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptConfigMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptConfigMutation) ResetIsActive() {
	m.is_active = nil
}

// SetPriority sets the "priority" field.
func (m *PromptConfigMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *PromptConfigMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *PromptConfigMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *PromptConfigMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *PromptConfigMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PromptConfig entity.
// If the PromptConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *PromptConfigMutation) ClearOrganization() {
	m.clearedorganization = true
	m.clearedFields[promptconfig.FieldOrganizationID] = struct{}{}
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *PromptConfigMutation) OrganizationCleared() bool {
	return m.OrganizationIDCleared() || m.clearedorganization
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *PromptConfigMutation) OrganizationIDs() (ids []uuid.UUID) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *PromptConfigMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (m *PromptConfigMutation) ClearFormat() {
	m.clearedformat = true
	m.clearedFields[promptconfig.FieldFormatID] = struct{}{}
}

// FormatCleared reports if the "format" edge to the DocumentFormat entity was cleared.
func (m *PromptConfigMutation) FormatCleared() bool {
	return m.FormatIDCleared() || m.clearedformat
}

// FormatIDs returns the "format" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FormatID instead. It exists only for internal usage by the builders.
func (m *PromptConfigMutation) FormatIDs() (ids []uuid.UUID) {
	if id := m.format; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFormat resets all changes to the "format" edge.
func (m *PromptConfigMutation) ResetFormat() {
	m.format = nil
	m.clearedformat = false
}

// Where appends a list predicates to the PromptConfigMutation builder.
func (m *PromptConfigMutation) Where(ps ...predicate.PromptConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptConfig).
func (m *PromptConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptConfigMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.organization != nil {
		fields = append(fields, promptconfig.FieldOrganizationID)
	}
	if m.format != nil {
		fields = append(fields, promptconfig.FieldFormatID)
	}
	if m.purpose != nil {
		fields = append(fields, promptconfig.FieldPurpose)
	}
	if m.template != nil {
		fields = append(fields, promptconfig.FieldTemplate)
	}
	if m.version != nil {
		fields = append(fields, promptconfig.FieldVersion)
	}
	if m.is_active != nil {
		fields = append(fields, promptconfig.FieldIsActive)
	}
	if m.priority != nil {
		fields = append(fields, promptconfig.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, promptconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, promptconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptconfig.FieldOrganizationID:
		return m.OrganizationID()
	case promptconfig.FieldFormatID:
		return m.FormatID()
	case promptconfig.FieldPurpose:
		return m.Purpose()
	case promptconfig.FieldTemplate:
		return m.Template()
	case promptconfig.FieldVersion:
		return m.Version()
	case promptconfig.FieldIsActive:
		return m.IsActive()
	case promptconfig.FieldPriority:
		return m.Priority()
	case promptconfig.FieldCreatedAt:
		return m.CreatedAt()
	case promptconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptconfig.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case promptconfig.FieldFormatID:
		return m.OldFormatID(ctx)
	case promptconfig.FieldPurpose:
		return m.OldPurpose(ctx)
	case promptconfig.FieldTemplate:
		return m.OldTemplate(ctx)
	case promptconfig.FieldVersion:
		return m.OldVersion(ctx)
	case promptconfig.FieldIsActive:
		return m.OldIsActive(ctx)
	case promptconfig.FieldPriority:
		return m.OldPriority(ctx)
	case promptconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case promptconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptconfig.FieldOrganizationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case promptconfig.FieldFormatID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormatID(v)
		return nil
	case promptconfig.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case promptconfig.FieldTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplate(v)
		return nil
	case promptconfig.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case promptconfig.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case promptconfig.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case promptconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case promptconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptConfigMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, promptconfig.FieldVersion)
	}
	if m.addpriority != nil {
		fields = append(fields, promptconfig.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptconfig.FieldVersion:
		return m.AddedVersion()
	case promptconfig.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptconfig.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case promptconfig.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown PromptConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptconfig.FieldOrganizationID) {
		fields = append(fields, promptconfig.FieldOrganizationID)
	}
	if m.FieldCleared(promptconfig.FieldFormatID) {
		fields = append(fields, promptconfig.FieldFormatID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptConfigMutation) ClearField(name string) error {
	switch name {
	case promptconfig.FieldOrganizationID:
		m.ClearOrganizationID()
		return nil
	case promptconfig.FieldFormatID:
		m.ClearFormatID()
		return nil
	}
	return fmt.Errorf("unknown PromptConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptConfigMutation) ResetField(name string) error {
	switch name {
	case promptconfig.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case promptconfig.FieldFormatID:
		m.ResetFormatID()
		return nil
	case promptconfig.FieldPurpose:
		m.ResetPurpose()
		return nil
	case promptconfig.FieldTemplate:
		m.ResetTemplate()
		return nil
	case promptconfig.FieldVersion:
		m.ResetVersion()
		return nil
	case promptconfig.FieldIsActive:
		m.ResetIsActive()
		return nil
	case promptconfig.FieldPriority:
		m.ResetPriority()
		return nil
	case promptconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case promptconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.organization != nil {
		edges = append(edges, promptconfig.EdgeOrganization)
	}
	if m.format != nil {
		edges = append(edges, promptconfig.EdgeFormat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptconfig.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case promptconfig.EdgeFormat:
		if id := m.format; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedorganization {
		edges = append(edges, promptconfig.EdgeOrganization)
	}
	if m.clearedformat {
		edges = append(edges, promptconfig.EdgeFormat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case promptconfig.EdgeOrganization:
		return m.clearedorganization
	case promptconfig.EdgeFormat:
		return m.clearedformat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptConfigMutation) ClearEdge(name string) error {
	switch name {
	case promptconfig.EdgeOrganization:
		m.ClearOrganization()
		return nil
	case promptconfig.EdgeFormat:
		m.ClearFormat()
		return nil
	}
	return fmt.Errorf("unknown PromptConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptConfigMutation) ResetEdge(name string) error {
	switch name {
	case promptconfig.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case promptconfig.EdgeFormat:
		m.ResetFormat()
		return nil
	}
	return fmt.Errorf("unknown PromptConfig edge %s", name)
}

// VocabularyTermMutation represents an operation that mutates the VocabularyTerm nodes in the graph.
type VocabularyTermMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	raw_text            *string
	normalized_text     *string
	category            *string
	status              *string
	occurrence_count    *int
	addoccurrence_count *int
	first_seen          *time.Time
	last_seen           *time.Time
	confidence          *float64
	addconfidence       *float64
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	format              *uuid.UUID
	clearedformat       bool
	done                bool
	oldValue            func(context.Context) (*VocabularyTerm, error)
	predicates          []predicate.VocabularyTerm
}

var _ ent.Mutation = (*VocabularyTermMutation)(nil)

// vocabularytermOption allows management of the mutation configuration using functional options.
type vocabularytermOption func(*VocabularyTermMutation)

// newVocabularyTermMutation creates new mutation for the VocabularyTerm entity.
func newVocabularyTermMutation(c config, op Op, opts ...vocabularytermOption) *VocabularyTermMutation {
	m := &VocabularyTermMutation{
		config:        c,
		op:            op,
		typ:           TypeVocabularyTerm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocabularyTermID sets the ID field of the mutation.
func withVocabularyTermID(id uuid.UUID) vocabularytermOption {
	return func(m *VocabularyTermMutation) {
		var (
			err   error
			once  sync.Once
			value *VocabularyTerm
		)
		m.oldValue = func(ctx context.Context) (*VocabularyTerm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VocabularyTerm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocabularyTerm sets the old VocabularyTerm of the mutation.
func withVocabularyTerm(node *VocabularyTerm) vocabularytermOption {
	return func(m *VocabularyTermMutation) {
		m.oldValue = func(context.Context) (*VocabularyTerm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocabularyTermMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocabularyTermMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VocabularyTerm entities.
func (m *VocabularyTermMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocabularyTermMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocabularyTermMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VocabularyTerm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFormatID sets the "format_id" field.
func (m *VocabularyTermMutation) SetFormatID(u uuid.UUID) {
	m.format = &u
}

// FormatID returns the value of the "format_id" field in the mutation.
func (m *VocabularyTermMutation) FormatID() (r uuid.UUID, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormatID returns the old "format_id" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldFormatID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormatID: %w", err)
	}
	return oldValue.FormatID, nil
}

// ResetFormatID resets all changes to the "format_id" field.
func (m *VocabularyTermMutation) ResetFormatID() {
	m.format = nil
}

// SetRawText sets the "raw_text" field.
func (m *VocabularyTermMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *VocabularyTermMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *VocabularyTermMutation) ResetRawText() {
	m.raw_text = nil
}

// SetNormalizedText sets the "normalized_text" field.
func (m *VocabularyTermMutation) SetNormalizedText(s string) {
	m.normalized_text = &s
}

// NormalizedText returns the value of the "normalized_text" field in the mutation.
func (m *VocabularyTermMutation) NormalizedText() (r string, exists bool) {
	v := m.normalized_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedText returns the old "normalized_text" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldNormalizedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedText: %w", err)
	}
	return oldValue.NormalizedText, nil
}

// ResetNormalizedText resets all changes to the "normalized_text" field.
func (m *VocabularyTermMutation) ResetNormalizedText() {
	m.normalized_text = nil
}

// SetCategory sets the "category" field.
func (m *VocabularyTermMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *VocabularyTermMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *VocabularyTermMutation) ResetCategory() {
	m.category = nil
}

// SetStatus sets the "status" field.
func (m *VocabularyTermMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VocabularyTermMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VocabularyTermMutation) ResetStatus() {
	m.status = nil
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (m *VocabularyTermMutation) SetOccurrenceCount(i int) {
	m.occurrence_count = &i
	m.addoccurrence_count = nil
}

// OccurrenceCount returns the value of the "occurrence_count" field in the mutation.
func (m *VocabularyTermMutation) OccurrenceCount() (r int, exists bool) {
	v := m.occurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrenceCount returns the old "occurrence_count" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldOccurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrenceCount: %w", err)
	}
	return oldValue.OccurrenceCount, nil
}

// AddOccurrenceCount adds i to the "occurrence_count" field.
func (m *VocabularyTermMutation) AddOccurrenceCount(i int) {
	if m.addoccurrence_count != nil {
		*m.addoccurrence_count += i
	} else {
		m.addoccurrence_count = &i
	}
}

// AddedOccurrenceCount returns the value that was added to the "occurrence_count" field in this mutation.
func (m *VocabularyTermMutation) AddedOccurrenceCount() (r int, exists bool) {
	v := m.addoccurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrenceCount resets all changes to the "occurrence_count" field.
func (m *VocabularyTermMutation) ResetOccurrenceCount() {
	m.occurrence_count = nil
	m.addoccurrence_count = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *VocabularyTermMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *VocabularyTermMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *VocabularyTermMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *VocabularyTermMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *VocabularyTermMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *VocabularyTermMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetConfidence sets the "confidence" field.
func (m *VocabularyTermMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *VocabularyTermMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *VocabularyTermMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *VocabularyTermMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *VocabularyTermMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VocabularyTermMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VocabularyTermMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VocabularyTermMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VocabularyTermMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VocabularyTermMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VocabularyTerm entity.
// If the VocabularyTerm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabularyTermMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VocabularyTermMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFormat clears the "format" edge to the DocumentFormat entity.
func (m *VocabularyTermMutation) ClearFormat() {
	m.clearedformat = true
	m.clearedFields[vocabularyterm.FieldFormatID] = struct{}{}
}

// FormatCleared reports if the "format" edge to the DocumentFormat entity was cleared.
func (m *VocabularyTermMutation) FormatCleared() bool {
	return m.clearedformat
}

// FormatIDs returns the "format" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FormatID instead. It exists only for internal usage by the builders.
func (m *VocabularyTermMutation) FormatIDs() (ids []uuid.UUID) {
	if id := m.format; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFormat resets all changes to the "format" edge.
func (m *VocabularyTermMutation) ResetFormat() {
	m.format = nil
	m.clearedformat = false
}

// Where appends a list predicates to the VocabularyTermMutation builder.
func (m *VocabularyTermMutation) Where(ps ...predicate.VocabularyTerm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocabularyTermMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocabularyTermMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VocabularyTerm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocabularyTermMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocabularyTermMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VocabularyTerm).
func (m *VocabularyTermMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocabularyTermMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.format != nil {
		fields = append(fields, vocabularyterm.FieldFormatID)
	}
	if m.raw_text != nil {
		fields = append(fields, vocabularyterm.FieldRawText)
	}
	if m.normalized_text != nil {
		fields = append(fields, vocabularyterm.FieldNormalizedText)
	}
	if m.category != nil {
		fields = append(fields, vocabularyterm.FieldCategory)
	}
	if m.status != nil {
		fields = append(fields, vocabularyterm.FieldStatus)
	}
	if m.occurrence_count != nil {
		fields = append(fields, vocabularyterm.FieldOccurrenceCount)
	}
	if m.first_seen != nil {
		fields = append(fields, vocabularyterm.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, vocabularyterm.FieldLastSeen)
	}
	if m.confidence != nil {
		fields = append(fields, vocabularyterm.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, vocabularyterm.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vocabularyterm.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocabularyTermMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocabularyterm.FieldFormatID:
		return m.FormatID()
	case vocabularyterm.FieldRawText:
		return m.RawText()
	case vocabularyterm.FieldNormalizedText:
		return m.NormalizedText()
	case vocabularyterm.FieldCategory:
		return m.Category()
	case vocabularyterm.FieldStatus:
		return m.Status()
	case vocabularyterm.FieldOccurrenceCount:
		return m.OccurrenceCount()
	case vocabularyterm.FieldFirstSeen:
		return m.FirstSeen()
	case vocabularyterm.FieldLastSeen:
		return m.LastSeen()
	case vocabularyterm.FieldConfidence:
		return m.Confidence()
	case vocabularyterm.FieldCreatedAt:
		return m.CreatedAt()
	case vocabularyterm.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocabularyTermMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocabularyterm.FieldFormatID:
		return m.OldFormatID(ctx)
	case vocabularyterm.FieldRawText:
		return m.OldRawText(ctx)
	case vocabularyterm.FieldNormalizedText:
		return m.OldNormalizedText(ctx)
	case vocabularyterm.FieldCategory:
		return m.OldCategory(ctx)
	case vocabularyterm.FieldStatus:
		return m.OldStatus(ctx)
	case vocabularyterm.FieldOccurrenceCount:
		return m.OldOccurrenceCount(ctx)
	case vocabularyterm.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case vocabularyterm.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case vocabularyterm.FieldConfidence:
		return m.OldConfidence(ctx)
	case vocabularyterm.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vocabularyterm.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VocabularyTerm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabularyTermMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocabularyterm.FieldFormatID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormatID(v)
		return nil
	case vocabularyterm.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case vocabularyterm.FieldNormalizedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedText(v)
		return nil
	case vocabularyterm.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case vocabularyterm.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case vocabularyterm.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrenceCount(v)
		return nil
	case vocabularyterm.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case vocabularyterm.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case vocabularyterm.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case vocabularyterm.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vocabularyterm.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VocabularyTerm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocabularyTermMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrence_count != nil {
		fields = append(fields, vocabularyterm.FieldOccurrenceCount)
	}
	if m.addconfidence != nil {
		fields = append(fields, vocabularyterm.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocabularyTermMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vocabularyterm.FieldOccurrenceCount:
		return m.AddedOccurrenceCount()
	case vocabularyterm.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabularyTermMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vocabularyterm.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrenceCount(v)
		return nil
	case vocabularyterm.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown VocabularyTerm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocabularyTermMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocabularyTermMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocabularyTermMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VocabularyTerm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocabularyTermMutation) ResetField(name string) error {
	switch name {
	case vocabularyterm.FieldFormatID:
		m.ResetFormatID()
		return nil
	case vocabularyterm.FieldRawText:
		m.ResetRawText()
		return nil
	case vocabularyterm.FieldNormalizedText:
		m.ResetNormalizedText()
		return nil
	case vocabularyterm.FieldCategory:
		m.ResetCategory()
		return nil
	case vocabularyterm.FieldStatus:
		m.ResetStatus()
		return nil
	case vocabularyterm.FieldOccurrenceCount:
		m.ResetOccurrenceCount()
		return nil
	case vocabularyterm.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case vocabularyterm.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case vocabularyterm.FieldConfidence:
		m.ResetConfidence()
		return nil
	case vocabularyterm.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vocabularyterm.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown VocabularyTerm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocabularyTermMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.format != nil {
		edges = append(edges, vocabularyterm.EdgeFormat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocabularyTermMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vocabularyterm.EdgeFormat:
		if id := m.format; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocabularyTermMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocabularyTermMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocabularyTermMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedformat {
		edges = append(edges, vocabularyterm.EdgeFormat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocabularyTermMutation) EdgeCleared(name string) bool {
	switch name {
	case vocabularyterm.EdgeFormat:
		return m.clearedformat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocabularyTermMutation) ClearEdge(name string) error {
	switch name {
	case vocabularyterm.EdgeFormat:
		m.ClearFormat()
		return nil
	}
	return fmt.Errorf("unknown VocabularyTerm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocabularyTermMutation) ResetEdge(name string) error {
	switch name {
	case vocabularyterm.EdgeFormat:
		m.ResetFormat()
		return nil
	}
	return fmt.Errorf("unknown VocabularyTerm edge %s", name)
}
