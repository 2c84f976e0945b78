package services

import (
	"context"
	"sync"

	"github.com/epeers/registry-warnings/internal/models"
)

type noticeContextKey struct{}

// NoticeCollector gathers per-identifier notices from a batch lookup, such as
// businesses that could not be found. Batch workers add to it concurrently.
type NoticeCollector struct {
	mu      sync.Mutex
	notices []models.Notice
}

// NewNoticeContext attaches an empty collector to ctx for one batch request.
func NewNoticeContext(ctx context.Context) (context.Context, *NoticeCollector) {
	nc := &NoticeCollector{}
	return context.WithValue(ctx, noticeContextKey{}, nc), nc
}

// AddNotice records n on the batch collector in ctx, if there is one.
// Single-business lookups carry no collector and drop the notice.
func AddNotice(ctx context.Context, n models.Notice) {
	nc, ok := ctx.Value(noticeContextKey{}).(*NoticeCollector)
	if !ok || nc == nil {
		return
	}
	nc.mu.Lock()
	defer nc.mu.Unlock()
	nc.notices = append(nc.notices, n)
}

// Notices returns a snapshot of what the batch has recorded so far.
func (nc *NoticeCollector) Notices() []models.Notice {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	out := make([]models.Notice, len(nc.notices))
	copy(out, nc.notices)
	return out
}
