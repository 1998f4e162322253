package utils

import (
	"context"
	"time"
)

const DefaultRequestTimeout = 15 * time.Second

// WithRequestTimeout bounds work a handler does against the catalog service.
func WithRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultRequestTimeout)
}
