package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/laitim2001/ai-document-extraction/constants"
)

// VocabularyTerm is a learned line-item/descriptive term tied to one
// document format, with review status.
type VocabularyTerm struct {
	ID              uuid.UUID              `json:"id"`
	FormatID        uuid.UUID              `json:"format_id"`
	RawText         string                 `json:"raw_text"`
	NormalizedText  string                 `json:"normalized_text"`
	Category        constants.TermCategory `json:"category"`
	Status          constants.TermStatus   `json:"status"`
	OccurrenceCount int                    `json:"occurrence_count"`
	FirstSeen       time.Time              `json:"first_seen"`
	LastSeen        time.Time              `json:"last_seen"`
	Confidence      float64                `json:"confidence"`
}
