package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laitim2001/ai-document-extraction/constants"
	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/pipeline"
)

type fakeProcessor struct {
	mu      sync.Mutex
	seen    []uuid.UUID
	release chan struct{}
}

func (f *fakeProcessor) Process(ctx context.Context, raw *entity.RawExtraction) (*pipeline.Result, error) {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	f.seen = append(f.seen, raw.DocumentID)
	f.mu.Unlock()
	return &pipeline.Result{
		Record: &entity.MappedRecord{DocumentID: raw.DocumentID, Status: constants.DocumentIdentified},
	}, nil
}

func (f *fakeProcessor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, nil))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func job() Job {
	return Job{Extraction: &entity.RawExtraction{DocumentID: uuid.New(), Fields: map[string]any{}}}
}

func TestProcessorQueue_DrainsOnShutdown(t *testing.T) {
	fake := &fakeProcessor{}
	q := NewProcessorQueue(fake, discard(), WithWorkers(2), WithQueueSize(16))

	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(context.Background(), job()))
	}
	q.Shutdown(context.Background())

	assert.Equal(t, 10, fake.count())
}

func TestProcessorQueue_EnqueueAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(&fakeProcessor{}, discard(), WithWorkers(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), job())
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestProcessorQueue_FullQueueRejects(t *testing.T) {
	release := make(chan struct{})
	fake := &fakeProcessor{release: release}
	q := NewProcessorQueue(fake, discard(), WithWorkers(1), WithQueueSize(1))

	// first job occupies the worker, second fills the buffer
	require.NoError(t, q.Enqueue(context.Background(), job()))
	require.Eventually(t, func() bool {
		return q.Enqueue(context.Background(), job()) == nil
	}, time.Second, 5*time.Millisecond)

	var err error
	require.Eventually(t, func() bool {
		err = q.Enqueue(context.Background(), job())
		return err != nil
	}, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	q.Shutdown(context.Background())
	assert.Equal(t, 2, fake.count())
}

func TestProcessorQueue_EnqueueRacesShutdown(t *testing.T) {
	// enqueue after close must come back as ErrQueueClosed, never a
	// send-on-closed-channel panic
	for i := 0; i < 50; i++ {
		q := NewProcessorQueue(&fakeProcessor{}, discard(), WithWorkers(2), WithQueueSize(4))

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					err := q.Enqueue(context.Background(), job())
					if errors.Is(err, ErrQueueClosed) {
						return
					}
				}
			}()
		}

		q.Shutdown(context.Background())
		wg.Wait()
	}
}

func TestProcessorQueue_ShutdownTwice(t *testing.T) {
	q := NewProcessorQueue(&fakeProcessor{}, discard(), WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
