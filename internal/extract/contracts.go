// Package extract declares the upstream extraction boundary. The
// mapping pipeline consumes RawExtraction values and does not care how
// they were produced; these contracts let an OCR or LLM extraction
// stage plug in later without touching the pipeline.
package extract

import (
	"context"
	"time"

	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// DocumentExtractor is Stage 1: file -> raw fields.
type DocumentExtractor interface {
	Extract(ctx context.Context, path string) (ExtractionResult, error)
}

type ExtractionResult struct {
	Raw        *entity.RawExtraction
	SourceType string // "PDF" | "IMAGE"
	Pages      int
	Duration   time.Duration
	Warnings   []string
}

// IssuerSignalExtractor is Stage 2: raw text -> identification
// signals (issuer name, header block, logo signature). Kept separate
// because some sources provide signals without full field extraction.
type IssuerSignalExtractor interface {
	ExtractSignals(ctx context.Context, text string) (SignalsResult, error)
}

type SignalsResult struct {
	IssuerName    string
	Confidence    float64
	HeaderText    string
	LogoSignature string
}
