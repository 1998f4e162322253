package editor_test

import (
	"testing"

	"github.com/aaravmahajanofficial/catalog-editor/internal/editor"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

var (
	testCategories = []models.Category{{ID: 1, Name: "Tools"}, {ID: 2, Name: "Lighting"}}
	testStates     = []models.State{{ID: 1, Name: "New"}, {ID: 2, Name: "Used"}}
)

func validValues() models.FormValues {
	return models.FormValues{
		CategoryID:  ptr(int64(2)),
		StateID:     ptr(int64(1)),
		Title:       "Lamp",
		Price:       ptr(20.0),
		Picture:     "http://x/y.png",
		Description: "",
	}
}

func TestSchemaValidate(t *testing.T) {
	schema := editor.BuildSchema(testCategories, testStates)

	tests := []struct {
		name       string
		mutate     func(v *models.FormValues)
		wantFields map[string]string
	}{
		{
			name:   "Success - Valid values",
			mutate: func(v *models.FormValues) {},
		},
		{
			name:   "Success - Description is optional",
			mutate: func(v *models.FormValues) { v.Description = "" },
		},
		{
			name:       "Failure - Category not loaded",
			mutate:     func(v *models.FormValues) { v.CategoryID = ptr(int64(9)) },
			wantFields: map[string]string{"categoryId": "Selected category does not exist"},
		},
		{
			name:       "Failure - Category unset",
			mutate:     func(v *models.FormValues) { v.CategoryID = nil },
			wantFields: map[string]string{"categoryId": "Category is required"},
		},
		{
			name:       "Failure - State not loaded",
			mutate:     func(v *models.FormValues) { v.StateID = ptr(int64(3)) },
			wantFields: map[string]string{"stateId": "Selected state does not exist"},
		},
		{
			name:       "Failure - State unset",
			mutate:     func(v *models.FormValues) { v.StateID = nil },
			wantFields: map[string]string{"stateId": "State is required"},
		},
		{
			name:       "Failure - Zero price",
			mutate:     func(v *models.FormValues) { v.Price = ptr(0.0) },
			wantFields: map[string]string{"price": "Price must be greater than 0"},
		},
		{
			name:       "Failure - Negative price",
			mutate:     func(v *models.FormValues) { v.Price = ptr(-3.5) },
			wantFields: map[string]string{"price": "Price must be greater than 0"},
		},
		{
			name:       "Failure - Price unset",
			mutate:     func(v *models.FormValues) { v.Price = nil },
			wantFields: map[string]string{"price": "Price is required"},
		},
		{
			name:       "Failure - Empty title",
			mutate:     func(v *models.FormValues) { v.Title = "" },
			wantFields: map[string]string{"title": "Title is required"},
		},
		{
			name:       "Failure - Blank title",
			mutate:     func(v *models.FormValues) { v.Title = "   " },
			wantFields: map[string]string{"title": "Title is required"},
		},
		{
			name:       "Failure - Empty picture",
			mutate:     func(v *models.FormValues) { v.Picture = "" },
			wantFields: map[string]string{"picture": "Picture URL is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			values := validValues()
			tt.mutate(&values)

			// Act
			errs := schema.Validate(values)

			// Assert
			if tt.wantFields == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, editor.FieldErrors(tt.wantFields), errs)
		})
	}
}

func TestSchemaValidate_EmptyForm(t *testing.T) {
	// Arrange
	schema := editor.BuildSchema(testCategories, testStates)

	// Act
	errs := schema.Validate(models.FormValues{})

	// Assert
	assert.Len(t, errs, 5)
	assert.NotContains(t, errs, "description")
}

func TestSchemaValidate_FollowsReferenceData(t *testing.T) {
	values := validValues()

	t.Run("Failure - Nothing loaded yet", func(t *testing.T) {
		errs := editor.BuildSchema(nil, nil).Validate(values)

		assert.Contains(t, errs, "categoryId")
		assert.Contains(t, errs, "stateId")
	})

	t.Run("Success - Rebuilt after lists arrive", func(t *testing.T) {
		errs := editor.BuildSchema(testCategories, testStates).Validate(values)

		assert.Nil(t, errs)
	})

	t.Run("Failure - Category list replaced", func(t *testing.T) {
		// Scenario: categories = [{1, Tools}], categoryId = 2
		errs := editor.BuildSchema([]models.Category{{ID: 1, Name: "Tools"}}, testStates).Validate(values)

		assert.Equal(t, editor.FieldErrors{"categoryId": "Selected category does not exist"}, errs)
	})
}

func TestBuildSchema(t *testing.T) {
	schema := editor.BuildSchema(testCategories, testStates)

	assert.True(t, schema.HasCategory(1))
	assert.False(t, schema.HasCategory(3))
	assert.True(t, schema.HasState(2))
	assert.False(t, schema.HasState(0))
}
