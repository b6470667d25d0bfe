// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DocumentFormat is the predicate function for documentformat builders.
type DocumentFormat func(*sql.Selector)

// FieldMappingConfig is the predicate function for fieldmappingconfig builders.
type FieldMappingConfig func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// PromptConfig is the predicate function for promptconfig builders.
type PromptConfig func(*sql.Selector)

// VocabularyTerm is the predicate function for vocabularyterm builders.
type VocabularyTerm func(*sql.Selector)
