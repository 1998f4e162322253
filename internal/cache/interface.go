package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key namespaces every entry under the service name.
func Key(prefix string, id string) string {
	return Namespace + ":" + prefix + ":" + id
}

const (
	Namespace      = "catalog-editor"
	BoardKeyPrefix = "board"
)
