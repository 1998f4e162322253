package editor_test

import (
	"testing"

	"github.com/aaravmahajanofficial/catalog-editor/internal/editor"
	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	"github.com/stretchr/testify/assert"
)

func lamp() *models.Product {
	return &models.Product{ID: 7, CategoryID: 2, StateID: 1, Title: "Lamp", Price: 20, Picture: "http://x/y.png"}
}

func TestResolve(t *testing.T) {
	t.Run("Create - No identifier, no product", func(t *testing.T) {
		mode, values := editor.Resolve(nil, nil)

		assert.Equal(t, models.ModeCreate, mode)
		assert.True(t, values.IsEmpty())
	})

	t.Run("Create - Identifier without product", func(t *testing.T) {
		mode, values := editor.Resolve(ptr(int64(7)), nil)

		assert.Equal(t, models.ModeCreate, mode)
		assert.True(t, values.IsEmpty())
	})

	t.Run("Create - Product without identifier", func(t *testing.T) {
		mode, values := editor.Resolve(nil, lamp())

		assert.Equal(t, models.ModeCreate, mode)
		assert.True(t, values.IsEmpty())
	})

	t.Run("Edit - Values mirror the product", func(t *testing.T) {
		mode, values := editor.Resolve(ptr(int64(7)), lamp())

		assert.Equal(t, models.ModeEdit, mode)
		assert.Equal(t, models.FormValues{
			CategoryID:  ptr(int64(2)),
			StateID:     ptr(int64(1)),
			Title:       "Lamp",
			Price:       ptr(20.0),
			Picture:     "http://x/y.png",
			Description: "",
		}, values)
	})

	t.Run("Edit - Same inputs resolve identically", func(t *testing.T) {
		_, first := editor.Resolve(ptr(int64(7)), lamp())
		_, second := editor.Resolve(ptr(int64(7)), lamp())

		assert.Equal(t, first, second)
	})

	t.Run("Edit - Values do not alias the product", func(t *testing.T) {
		product := lamp()
		_, values := editor.Resolve(ptr(int64(7)), product)

		*values.Price = 99

		assert.Equal(t, 20.0, product.Price)
	})
}
