package editor

import (
	"context"
	"fmt"
	"maps"

	"github.com/aaravmahajanofficial/catalog-editor/internal/models"
	"github.com/aaravmahajanofficial/catalog-editor/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type schemaKey struct{}

// FieldErrors maps a form field (JSON name) to the message shown next to it.
type FieldErrors map[string]string

var fieldLabels = map[string]string{
	"categoryId":  "Category",
	"stateId":     "State",
	"title":       "Title",
	"price":       "Price",
	"picture":     "Picture URL",
	"description": "Description",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := utils.NewValidator()

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidationCtx("category", func(ctx context.Context, fl validator.FieldLevel) bool {
		s, ok := ctx.Value(schemaKey{}).(*Schema)
		return ok && s.HasCategory(fl.Field().Int())
	})
	_ = v.RegisterValidationCtx("state", func(ctx context.Context, fl validator.FieldLevel) bool {
		s, ok := ctx.Value(schemaKey{}).(*Schema)
		return ok && s.HasState(fl.Field().Int())
	})

	return v
}

// Schema is the set of field rules bound to one snapshot of reference data.
// It is never mutated; build a new one when the lists change.
type Schema struct {
	categories map[int64]struct{}
	states     map[int64]struct{}
}

func BuildSchema(categories []models.Category, states []models.State) *Schema {
	s := &Schema{
		categories: make(map[int64]struct{}, len(categories)),
		states:     make(map[int64]struct{}, len(states)),
	}

	for _, c := range categories {
		s.categories[c.ID] = struct{}{}
	}
	for _, st := range states {
		s.states[st.ID] = struct{}{}
	}

	return s
}

func (s *Schema) HasCategory(id int64) bool {
	_, ok := s.categories[id]
	return ok
}

func (s *Schema) HasState(id int64) bool {
	_, ok := s.states[id]
	return ok
}

// Validate returns nil when values pass every rule.
func (s *Schema) Validate(values models.FormValues) FieldErrors {
	ctx := context.WithValue(context.Background(), schemaKey{}, s)

	err := validate.StructCtx(ctx, values)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// only reachable with a non struct argument
		return FieldErrors{"form": err.Error()}
	}

	errs := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		if _, seen := errs[fe.Field()]; !seen {
			errs[fe.Field()] = message(fe)
		}
	}

	return errs
}

func message(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "category":
		return "Selected category does not exist"
	case "state":
		return "Selected state does not exist"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func (e FieldErrors) clone() FieldErrors {
	if e == nil {
		return nil
	}
	return maps.Clone(e)
}
