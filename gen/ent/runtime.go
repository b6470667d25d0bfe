// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/laitim2001/ai-document-extraction/db/ent/schema"
	"github.com/laitim2001/ai-document-extraction/gen/ent/documentformat"
	"github.com/laitim2001/ai-document-extraction/gen/ent/fieldmappingconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/organization"
	"github.com/laitim2001/ai-document-extraction/gen/ent/promptconfig"
	"github.com/laitim2001/ai-document-extraction/gen/ent/vocabularyterm"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentformatFields := schema.DocumentFormat{}.Fields()
	_ = documentformatFields
	// documentformatDescName is the schema descriptor for name field.
	documentformatDescName := documentformatFields[2].Descriptor()
	// documentformat.NameValidator is a validator for the "name" field. It is called by the builders before save.
	documentformat.NameValidator = documentformatDescName.Validators[0].(func(string) error)
	// documentformatDescFingerprint is the schema descriptor for fingerprint field.
	documentformatDescFingerprint := documentformatFields[7].Descriptor()
	// documentformat.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	documentformat.FingerprintValidator = documentformatDescFingerprint.Validators[0].(func(string) error)
	// documentformatDescAutoCreated is the schema descriptor for auto_created field.
	documentformatDescAutoCreated := documentformatFields[8].Descriptor()
	// documentformat.DefaultAutoCreated holds the default value on creation for the auto_created field.
	documentformat.DefaultAutoCreated = documentformatDescAutoCreated.Default.(bool)
	// documentformatDescIsActive is the schema descriptor for is_active field.
	documentformatDescIsActive := documentformatFields[10].Descriptor()
	// documentformat.DefaultIsActive holds the default value on creation for the is_active field.
	documentformat.DefaultIsActive = documentformatDescIsActive.Default.(bool)
	// documentformatDescMatchCount is the schema descriptor for match_count field.
	documentformatDescMatchCount := documentformatFields[11].Descriptor()
	// documentformat.DefaultMatchCount holds the default value on creation for the match_count field.
	documentformat.DefaultMatchCount = documentformatDescMatchCount.Default.(int)
	// documentformatDescCreatedAt is the schema descriptor for created_at field.
	documentformatDescCreatedAt := documentformatFields[12].Descriptor()
	// documentformat.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentformat.DefaultCreatedAt = documentformatDescCreatedAt.Default.(func() time.Time)
	// documentformatDescUpdatedAt is the schema descriptor for updated_at field.
	documentformatDescUpdatedAt := documentformatFields[13].Descriptor()
	// documentformat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documentformat.DefaultUpdatedAt = documentformatDescUpdatedAt.Default.(func() time.Time)
	// documentformat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documentformat.UpdateDefaultUpdatedAt = documentformatDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentformatDescID is the schema descriptor for id field.
	documentformatDescID := documentformatFields[0].Descriptor()
	// documentformat.DefaultID holds the default value on creation for the id field.
	documentformat.DefaultID = documentformatDescID.Default.(func() uuid.UUID)
	fieldmappingconfigFields := schema.FieldMappingConfig{}.Fields()
	_ = fieldmappingconfigFields
	// fieldmappingconfigDescName is the schema descriptor for name field.
	fieldmappingconfigDescName := fieldmappingconfigFields[3].Descriptor()
	// fieldmappingconfig.NameValidator is a validator for the "name" field. It is called by the builders before save.
	fieldmappingconfig.NameValidator = fieldmappingconfigDescName.Validators[0].(func(string) error)
	// fieldmappingconfigDescIsActive is the schema descriptor for is_active field.
	fieldmappingconfigDescIsActive := fieldmappingconfigFields[5].Descriptor()
	// fieldmappingconfig.DefaultIsActive holds the default value on creation for the is_active field.
	fieldmappingconfig.DefaultIsActive = fieldmappingconfigDescIsActive.Default.(bool)
	// fieldmappingconfigDescPriority is the schema descriptor for priority field.
	fieldmappingconfigDescPriority := fieldmappingconfigFields[6].Descriptor()
	// fieldmappingconfig.DefaultPriority holds the default value on creation for the priority field.
	fieldmappingconfig.DefaultPriority = fieldmappingconfigDescPriority.Default.(int)
	// fieldmappingconfigDescCreatedAt is the schema descriptor for created_at field.
	fieldmappingconfigDescCreatedAt := fieldmappingconfigFields[8].Descriptor()
	// fieldmappingconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldmappingconfig.DefaultCreatedAt = fieldmappingconfigDescCreatedAt.Default.(func() time.Time)
	// fieldmappingconfigDescUpdatedAt is the schema descriptor for updated_at field.
	fieldmappingconfigDescUpdatedAt := fieldmappingconfigFields[9].Descriptor()
	// fieldmappingconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fieldmappingconfig.DefaultUpdatedAt = fieldmappingconfigDescUpdatedAt.Default.(func() time.Time)
	// fieldmappingconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fieldmappingconfig.UpdateDefaultUpdatedAt = fieldmappingconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fieldmappingconfigDescID is the schema descriptor for id field.
	fieldmappingconfigDescID := fieldmappingconfigFields[0].Descriptor()
	// fieldmappingconfig.DefaultID holds the default value on creation for the id field.
	fieldmappingconfig.DefaultID = fieldmappingconfigDescID.Default.(func() uuid.UUID)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescCode is the schema descriptor for code field.
	organizationDescCode := organizationFields[2].Descriptor()
	// organization.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	organization.CodeValidator = organizationDescCode.Validators[0].(func(string) error)
	// organizationDescNormalizedName is the schema descriptor for normalized_name field.
	organizationDescNormalizedName := organizationFields[3].Descriptor()
	// organization.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	organization.NormalizedNameValidator = organizationDescNormalizedName.Validators[0].(func(string) error)
	// organizationDescAutoCreated is the schema descriptor for auto_created field.
	organizationDescAutoCreated := organizationFields[5].Descriptor()
	// organization.DefaultAutoCreated holds the default value on creation for the auto_created field.
	organization.DefaultAutoCreated = organizationDescAutoCreated.Default.(bool)
	// organizationDescIsActive is the schema descriptor for is_active field.
	organizationDescIsActive := organizationFields[7].Descriptor()
	// organization.DefaultIsActive holds the default value on creation for the is_active field.
	organization.DefaultIsActive = organizationDescIsActive.Default.(bool)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[8].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[9].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationFields[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
	promptconfigFields := schema.PromptConfig{}.Fields()
	_ = promptconfigFields
	// promptconfigDescPurpose is the schema descriptor for purpose field.
	promptconfigDescPurpose := promptconfigFields[3].Descriptor()
	// promptconfig.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	promptconfig.PurposeValidator = func() func(string) error {
		validators := promptconfigDescPurpose.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(purpose string) error {
			for _, fn := range fns {
				if err := fn(purpose); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// promptconfigDescTemplate is the schema descriptor for template field.
	promptconfigDescTemplate := promptconfigFields[4].Descriptor()
	// promptconfig.TemplateValidator is a validator for the "template" field. It is called by the builders before save.
	promptconfig.TemplateValidator = promptconfigDescTemplate.Validators[0].(func(string) error)
	// promptconfigDescVersion is the schema descriptor for version field.
	promptconfigDescVersion := promptconfigFields[5].Descriptor()
	// promptconfig.DefaultVersion holds the default value on creation for the version field.
	promptconfig.DefaultVersion = promptconfigDescVersion.Default.(int)
	// promptconfigDescIsActive is the schema descriptor for is_active field.
	promptconfigDescIsActive := promptconfigFields[6].Descriptor()
	// promptconfig.DefaultIsActive holds the default value on creation for the is_active field.
	promptconfig.DefaultIsActive = promptconfigDescIsActive.Default.(bool)
	// promptconfigDescPriority is the schema descriptor for priority field.
	promptconfigDescPriority := promptconfigFields[7].Descriptor()
	// promptconfig.DefaultPriority holds the default value on creation for the priority field.
	promptconfig.DefaultPriority = promptconfigDescPriority.Default.(int)
	// promptconfigDescCreatedAt is the schema descriptor for created_at field.
	promptconfigDescCreatedAt := promptconfigFields[8].Descriptor()
	// promptconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptconfig.DefaultCreatedAt = promptconfigDescCreatedAt.Default.(func() time.Time)
	// promptconfigDescUpdatedAt is the schema descriptor for updated_at field.
	promptconfigDescUpdatedAt := promptconfigFields[9].Descriptor()
	// promptconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	promptconfig.DefaultUpdatedAt = promptconfigDescUpdatedAt.Default.(func() time.Time)
	// promptconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	promptconfig.UpdateDefaultUpdatedAt = promptconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// promptconfigDescID is the schema descriptor for id field.
	promptconfigDescID := promptconfigFields[0].Descriptor()
	// promptconfig.DefaultID holds the default value on creation for the id field.
	promptconfig.DefaultID = promptconfigDescID.Default.(func() uuid.UUID)
	vocabularytermFields := schema.VocabularyTerm{}.Fields()
	_ = vocabularytermFields
	// vocabularytermDescRawText is the schema descriptor for raw_text field.
	vocabularytermDescRawText := vocabularytermFields[2].Descriptor()
	// vocabularyterm.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	vocabularyterm.RawTextValidator = vocabularytermDescRawText.Validators[0].(func(string) error)
	// vocabularytermDescNormalizedText is the schema descriptor for normalized_text field.
	vocabularytermDescNormalizedText := vocabularytermFields[3].Descriptor()
	// vocabularyterm.NormalizedTextValidator is a validator for the "normalized_text" field. It is called by the builders before save.
	vocabularyterm.NormalizedTextValidator = vocabularytermDescNormalizedText.Validators[0].(func(string) error)
	// vocabularytermDescCategory is the schema descriptor for category field.
	vocabularytermDescCategory := vocabularytermFields[4].Descriptor()
	// vocabularyterm.DefaultCategory holds the default value on creation for the category field.
	vocabularyterm.DefaultCategory = vocabularytermDescCategory.Default.(string)
	// vocabularyterm.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	vocabularyterm.CategoryValidator = vocabularytermDescCategory.Validators[0].(func(string) error)
	// vocabularytermDescStatus is the schema descriptor for status field.
	vocabularytermDescStatus := vocabularytermFields[5].Descriptor()
	// vocabularyterm.DefaultStatus holds the default value on creation for the status field.
	vocabularyterm.DefaultStatus = vocabularytermDescStatus.Default.(string)
	// vocabularyterm.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	vocabularyterm.StatusValidator = vocabularytermDescStatus.Validators[0].(func(string) error)
	// vocabularytermDescOccurrenceCount is the schema descriptor for occurrence_count field.
	vocabularytermDescOccurrenceCount := vocabularytermFields[6].Descriptor()
	// vocabularyterm.DefaultOccurrenceCount holds the default value on creation for the occurrence_count field.
	vocabularyterm.DefaultOccurrenceCount = vocabularytermDescOccurrenceCount.Default.(int)
	// vocabularytermDescFirstSeen is the schema descriptor for first_seen field.
	vocabularytermDescFirstSeen := vocabularytermFields[7].Descriptor()
	// vocabularyterm.DefaultFirstSeen holds the default value on creation for the first_seen field.
	vocabularyterm.DefaultFirstSeen = vocabularytermDescFirstSeen.Default.(func() time.Time)
	// vocabularytermDescLastSeen is the schema descriptor for last_seen field.
	vocabularytermDescLastSeen := vocabularytermFields[8].Descriptor()
	// vocabularyterm.DefaultLastSeen holds the default value on creation for the last_seen field.
	vocabularyterm.DefaultLastSeen = vocabularytermDescLastSeen.Default.(func() time.Time)
	// vocabularytermDescConfidence is the schema descriptor for confidence field.
	vocabularytermDescConfidence := vocabularytermFields[9].Descriptor()
	// vocabularyterm.DefaultConfidence holds the default value on creation for the confidence field.
	vocabularyterm.DefaultConfidence = vocabularytermDescConfidence.Default.(float64)
	// vocabularytermDescCreatedAt is the schema descriptor for created_at field.
	vocabularytermDescCreatedAt := vocabularytermFields[10].Descriptor()
	// vocabularyterm.DefaultCreatedAt holds the default value on creation for the created_at field.
	vocabularyterm.DefaultCreatedAt = vocabularytermDescCreatedAt.Default.(func() time.Time)
	// vocabularytermDescUpdatedAt is the schema descriptor for updated_at field.
	vocabularytermDescUpdatedAt := vocabularytermFields[11].Descriptor()
	// vocabularyterm.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vocabularyterm.DefaultUpdatedAt = vocabularytermDescUpdatedAt.Default.(func() time.Time)
	// vocabularyterm.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vocabularyterm.UpdateDefaultUpdatedAt = vocabularytermDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vocabularytermDescID is the schema descriptor for id field.
	vocabularytermDescID := vocabularytermFields[0].Descriptor()
	// vocabularyterm.DefaultID holds the default value on creation for the id field.
	vocabularyterm.DefaultID = vocabularytermDescID.Default.(func() uuid.UUID)
}
