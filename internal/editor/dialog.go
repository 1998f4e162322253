// Package editor holds the product editor: a two mode (create / edit) form whose
// validation depends on reference data loaded from the catalog on every activation.
//
// A Dialog is either closed or open. Opening it loads categories and states and
// resolves the initial values; a successful submit or an explicit Close returns
// it to closed with all values cleared. The owner of the product list is only
// told about results through Callbacks.
package editor

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	appErrors "github.com/aaravmahajanofficial/catalog-editor/internal/errors"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
)

// Catalog is the slice of the remote catalog service the editor talks to.
type Catalog interface {
	ReferenceSource
	CreateProduct(ctx context.Context, values models.FormValues, lastKnownID int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, values models.FormValues) error
}

// Callbacks are how the editor reports to its owner. They run outside the
// editor's lock and may be called after the editor was closed.
type Callbacks struct {
	OnClose         func()
	OnProductAdded  func(models.Product)
	OnProductEdited func(models.Product)
}

type Option func(*Dialog)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dialog) {
		d.logger = logger
	}
}

type Dialog struct {
	catalog   Catalog
	loader    *Loader
	logger    *slog.Logger
	callbacks Callbacks

	mu         sync.Mutex
	open       bool
	generation uint64
	activation models.Activation
	mode       models.Mode
	values     models.FormValues
	categories []models.Category
	states     []models.State
	errors     FieldErrors
	touched    bool
	// submitting survives Close and reopen; a dialog has at most one remote call in flight.
	submitting bool
	failure    string
	ready      chan struct{}
	cancelLoad context.CancelFunc
}

func New(catalog Catalog, callbacks Callbacks, opts ...Option) *Dialog {
	d := &Dialog{
		catalog:   catalog,
		logger:    slog.Default(),
		callbacks: callbacks,
		mode:      models.ModeCreate,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.loader = NewLoader(catalog, d.logger)

	return d
}

// Open activates the editor. From closed it loads reference data in the
// background and resolves the initial values. While already open it only
// re-resolves, and only when the identifier or record changed.
func (d *Dialog) Open(ctx context.Context, a models.Activation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		changed := !sameInputs(d.activation, a)
		d.activation = a
		if changed {
			d.mode, d.values = Resolve(a.ID, a.Product)
			d.resetFeedback()
		}
		return
	}

	d.open = true
	d.generation++
	d.activation = a
	d.mode, d.values = Resolve(a.ID, a.Product)
	d.categories, d.states = nil, nil
	d.resetFeedback()

	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	ready := make(chan struct{})
	d.cancelLoad = cancel
	d.ready = ready

	go d.load(loadCtx, d.generation, ready)

	d.logger.Info("Editor opened", slog.String("mode", string(d.mode)))
}

// load must not be called with d.mu held.
func (d *Dialog) load(ctx context.Context, gen uint64, ready chan struct{}) {
	defer close(ready)

	d.loader.Load(ctx,
		func(categories []models.Category) {
			d.mu.Lock()
			defer d.mu.Unlock()

			if !d.current(gen) {
				return
			}
			d.categories = categories
			d.revalidate()
		},
		func(states []models.State) {
			d.mu.Lock()
			defer d.mu.Unlock()

			if !d.current(gen) {
				return
			}
			d.states = states
			d.revalidate()
		},
	)
}

// current reports whether results of activation gen may still be applied.
func (d *Dialog) current(gen uint64) bool {
	return d.open && d.generation == gen
}

func (d *Dialog) revalidate() {
	if d.touched {
		d.errors = d.schema().Validate(d.values)
	}
}

func (d *Dialog) schema() *Schema {
	return BuildSchema(d.categories, d.states)
}

func (d *Dialog) resetFeedback() {
	d.errors = nil
	d.touched = false
	d.failure = ""
}

// WaitReady blocks until the reference data of the current activation has
// been loaded, or ctx is done. It returns at once when nothing is loading.
func (d *Dialog) WaitReady(ctx context.Context) error {
	d.mu.Lock()
	ready := d.ready
	d.mu.Unlock()

	if ready == nil {
		return nil
	}

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close discards the form and any outstanding reference fetch.
func (d *Dialog) Close() {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return
	}
	d.closeLocked()
	onClose := d.callbacks.OnClose
	d.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

func (d *Dialog) closeLocked() {
	d.open = false
	if d.cancelLoad != nil {
		d.cancelLoad()
		d.cancelLoad = nil
	}
	d.values = models.FormValues{}
	d.categories, d.states = nil, nil
	d.resetFeedback()

	d.logger.Info("Editor closed")
}

// Change replaces the form values with what the user typed and returns the
// live validation result against the currently loaded reference data.
func (d *Dialog) Change(values models.FormValues) (FieldErrors, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		return nil, appErrors.EditorClosedError("Editor is not open")
	}

	d.values = values.Clone()
	d.touched = true
	d.errors = d.schema().Validate(d.values)

	return d.errors.clone(), nil
}

func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.open
}

func (d *Dialog) Mode() models.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.mode
}

func (d *Dialog) Values() models.FormValues {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.values.Clone()
}

func (d *Dialog) Categories() []models.Category {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.categories)
}

func (d *Dialog) States() []models.State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.states)
}

// View snapshots everything a renderer needs.
func (d *Dialog) View() models.EditorView {
	d.mu.Lock()
	defer d.mu.Unlock()

	view := models.EditorView{
		Open:        d.open,
		Mode:        d.mode,
		Heading:     "Create Product",
		SubmitLabel: "Add",
		Categories:  models.SelectField{Placeholder: "Select a category...", Options: make([]models.Option, 0, len(d.categories))},
		States:      models.SelectField{Placeholder: "Select a state...", Options: make([]models.Option, 0, len(d.states))},
		Values:      d.values.Clone(),
		Errors:      d.errors.clone(),
		Submitting:  d.submitting,
		Failure:     d.failure,
	}

	if d.mode == models.ModeEdit {
		view.Heading = "Edit Product"
		view.SubmitLabel = "Edit"
		if d.activation.ID != nil {
			id := *d.activation.ID
			view.ProductID = &id
		}
	}

	for _, c := range d.categories {
		view.Categories.Options = append(view.Categories.Options, models.Option{Value: c.ID, Label: c.Name})
	}
	for _, s := range d.states {
		view.States.Options = append(view.States.Options, models.Option{Value: s.ID, Label: s.Name})
	}

	return view
}
