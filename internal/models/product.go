package models

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"categoryId"`
	StateID     int64   `json:"stateId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Picture     string  `json:"picture"`
	Description string  `json:"description,omitempty"`
}

// FormValues is the editable projection of a Product while an editor is open.
// Nil numeric fields are "unset" (nothing selected / typed yet).
type FormValues struct {
	CategoryID  *int64   `json:"categoryId" validate:"required,category"`
	StateID     *int64   `json:"stateId" validate:"required,state"`
	Title       string   `json:"title" validate:"required,notblank"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Picture     string   `json:"picture" validate:"required,notblank"`
	Description string   `json:"description"`
}

// ValuesOf projects a product onto form values.
func ValuesOf(p *Product) FormValues {
	categoryID, stateID, price := p.CategoryID, p.StateID, p.Price

	return FormValues{
		CategoryID:  &categoryID,
		StateID:     &stateID,
		Title:       p.Title,
		Price:       &price,
		Picture:     p.Picture,
		Description: p.Description,
	}
}

// Product builds a product from validated values. Unset fields become zero.
func (v FormValues) Product(id int64) *Product {
	p := &Product{
		ID:          id,
		Title:       v.Title,
		Picture:     v.Picture,
		Description: v.Description,
	}

	if v.CategoryID != nil {
		p.CategoryID = *v.CategoryID
	}
	if v.StateID != nil {
		p.StateID = *v.StateID
	}
	if v.Price != nil {
		p.Price = *v.Price
	}

	return p
}

// Clone returns a copy that shares no pointers with v.
func (v FormValues) Clone() FormValues {
	out := v

	if v.CategoryID != nil {
		id := *v.CategoryID
		out.CategoryID = &id
	}
	if v.StateID != nil {
		id := *v.StateID
		out.StateID = &id
	}
	if v.Price != nil {
		price := *v.Price
		out.Price = &price
	}

	return out
}

// IsEmpty reports whether every field is unset.
func (v FormValues) IsEmpty() bool {
	return v.CategoryID == nil && v.StateID == nil && v.Price == nil &&
		v.Title == "" && v.Picture == "" && v.Description == ""
}
