package editor

import (
	"context"
	"log/slog"

	appErrors "github.com/aaravmahajanofficial/catalog-editor/internal/errors"
	"github.com/aaravmahajanofficial/catalog-editor/internal/metrics"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
)

const failureMessage = "Failed to save product, please try again"

// Submit validates values and sends them to the catalog: an update in edit
// mode, a create in create mode. On success the editor closes, its values are
// cleared and exactly one of OnProductAdded / OnProductEdited fires. On a
// remote failure the editor stays open with the values kept and a failure
// message shown in its View.
func (d *Dialog) Submit(ctx context.Context, values models.FormValues) (*models.Product, error) {
	d.mu.Lock()

	if !d.open {
		d.mu.Unlock()
		return nil, appErrors.EditorClosedError("Editor is not open")
	}

	if d.submitting {
		d.mu.Unlock()
		return nil, appErrors.SubmitInProgressError("A submission is already in progress")
	}

	d.values = values.Clone()
	d.touched = true

	if errs := d.schema().Validate(values); len(errs) > 0 {
		d.errors = errs
		mode := d.mode
		d.mu.Unlock()

		metrics.RecordSubmission(string(mode), "invalid")
		return nil, appErrors.ValidationError("Validation failed").WithFields(errs.clone())
	}

	d.errors = nil
	d.failure = ""
	d.submitting = true

	gen := d.generation
	mode := d.mode
	lastKnownID := d.activation.LastKnownID
	var id int64
	if d.activation.ID != nil {
		id = *d.activation.ID
	}
	callbacks := d.callbacks

	d.mu.Unlock()

	product, err := d.route(ctx, mode, id, lastKnownID, values)

	d.mu.Lock()
	d.submitting = false

	if err != nil {
		if d.current(gen) {
			d.failure = failureMessage
		}
		d.mu.Unlock()

		d.logger.Error("Error submitting form", slog.String("mode", string(mode)), slog.String("error", err.Error()))
		metrics.RecordSubmission(string(mode), "failed")
		return nil, appErrors.OperationFailedError(failureMessage).WithError(err)
	}

	closed := false
	if d.current(gen) {
		d.closeLocked()
		closed = true
	}
	d.mu.Unlock()

	metrics.RecordSubmission(string(mode), "success")

	switch mode {
	case models.ModeEdit:
		if callbacks.OnProductEdited != nil {
			callbacks.OnProductEdited(*product)
		}
	default:
		if callbacks.OnProductAdded != nil {
			callbacks.OnProductAdded(*product)
		}
	}

	if closed && callbacks.OnClose != nil {
		callbacks.OnClose()
	}

	return product, nil
}

// route performs the remote call for mode. In edit mode the result is built
// from the submitted values; the update response is not trusted.
func (d *Dialog) route(ctx context.Context, mode models.Mode, id, lastKnownID int64, values models.FormValues) (*models.Product, error) {
	if mode == models.ModeEdit {
		if err := d.catalog.UpdateProduct(ctx, id, values); err != nil {
			return nil, err
		}
		return values.Product(id), nil
	}

	return d.catalog.CreateProduct(ctx, values, lastKnownID)
}
