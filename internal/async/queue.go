package async

import (
	"context"
	"time"

	"github.com/laitim2001/ai-document-extraction/internal/entity"
)

// Job is the smallest useful unit. Extend as needed later (tenant,
// trace, retry, etc).
type Job struct {
	Extraction  *entity.RawExtraction
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
