package models

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Activation carries what the owning view hands the editor when it opens it.
type Activation struct {
	ID          *int64   `json:"id,omitempty"`
	Product     *Product `json:"product,omitempty"`
	LastKnownID int64    `json:"lastKnownId"`
}

type Option struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

type SelectField struct {
	Placeholder string   `json:"placeholder"`
	Options     []Option `json:"options"`
}

// EditorView is a read-only snapshot of an editor, enough to render it.
type EditorView struct {
	Open        bool              `json:"open"`
	Mode        Mode              `json:"mode"`
	Heading     string            `json:"heading"`
	SubmitLabel string            `json:"submitLabel"`
	ProductID   *int64            `json:"productId,omitempty"`
	Categories  SelectField       `json:"categories"`
	States      SelectField       `json:"states"`
	Values      FormValues        `json:"values"`
	Errors      map[string]string `json:"errors,omitempty"`
	Submitting  bool              `json:"submitting"`
	Failure     string            `json:"failure,omitempty"`
}

type OpenSessionRequest struct {
	ID          *int64   `json:"id,omitempty" validate:"omitempty,gt=0"`
	Product     *Product `json:"product,omitempty"`
	LastKnownID *int64   `json:"lastKnownId,omitempty" validate:"omitempty,gte=0"`
}

type EditorSession struct {
	ID   string     `json:"id"`
	View EditorView `json:"view"`
}
