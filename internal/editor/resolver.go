package editor

import "github.com/aaravmahajanofficial/catalog-editor/internal/models"

// Resolve decides the editor mode and its initial values. Edit needs both an
// identifier and the record; anything less opens an empty create form.
func Resolve(id *int64, product *models.Product) (models.Mode, models.FormValues) {
	if id != nil && product != nil {
		return models.ModeEdit, models.ValuesOf(product)
	}

	return models.ModeCreate, models.FormValues{}
}

func sameInputs(a, b models.Activation) bool {
	if (a.ID == nil) != (b.ID == nil) || (a.ID != nil && *a.ID != *b.ID) {
		return false
	}
	if (a.Product == nil) != (b.Product == nil) || (a.Product != nil && *a.Product != *b.Product) {
		return false
	}

	return true
}
