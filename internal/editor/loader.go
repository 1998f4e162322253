package editor

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/catalog-editor/internal/metrics"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	"golang.org/x/sync/errgroup"
)

type ReferenceSource interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
	FetchStates(ctx context.Context) ([]models.State, error)
}

// Loader fetches the reference lists for one activation.
type Loader struct {
	source ReferenceSource
	logger *slog.Logger
}

func NewLoader(source ReferenceSource, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{source: source, logger: logger}
}

// Load issues both fetches concurrently and hands each list over as soon as it
// arrives. A failed fetch is logged and delivers nothing, so its list stays empty.
// Load returns once both fetches have finished.
func (l *Loader) Load(ctx context.Context, onCategories func([]models.Category), onStates func([]models.State)) {
	// the group only joins the two fetches; each one absorbs its own error
	var g errgroup.Group

	g.Go(func() error {
		categories, err := l.source.FetchCategories(ctx)
		if err != nil {
			l.logger.Warn("Error fetching categories", slog.String("error", err.Error()))
			metrics.RecordReferenceFetchFailure("categories")
			return nil
		}

		onCategories(append([]models.Category(nil), categories...))
		return nil
	})

	g.Go(func() error {
		states, err := l.source.FetchStates(ctx)
		if err != nil {
			l.logger.Warn("Error fetching states", slog.String("error", err.Error()))
			metrics.RecordReferenceFetchFailure("states")
			return nil
		}

		onStates(append([]models.State(nil), states...))
		return nil
	})

	_ = g.Wait()
}
