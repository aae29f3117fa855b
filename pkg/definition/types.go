package definition

// Definition describes one form declaratively.
type Definition struct {
	ID     string `json:"-" yaml:"-"`
	Source string `json:"-" yaml:"-"`

	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	TitleKey  string `json:"titleKey,omitempty" yaml:"titleKey,omitempty"`
	Submit    string `json:"submit,omitempty" yaml:"submit,omitempty"`
	SubmitKey string `json:"submitKey,omitempty" yaml:"submitKey,omitempty"`
	Cancel    string `json:"cancel,omitempty" yaml:"cancel,omitempty"`
	CancelKey string `json:"cancelKey,omitempty" yaml:"cancelKey,omitempty"`

	Sections []Section `json:"sections" yaml:"sections"`
}

// Section describes a group of elements.
type Section struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Elements []Element `json:"elements" yaml:"elements"`
}

// Element kinds accepted in Element.Type.
const (
	TypeText     = "text"
	TypeTextarea = "textarea"
	TypePassword = "password"
	TypeCombo    = "combo"
	TypeDate     = "date"
	TypeTime     = "time"
	TypeStatic   = "static"
)

// Element describes a single field. Which keys apply depends on Type.
type Element struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string `json:"type" yaml:"type"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	// Value is the initial text, the static fallback, or a date
	// (2006-01-02) / time (15:04) for pickers.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	Required  bool   `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	Options    []string `json:"options,omitempty" yaml:"options,omitempty"`
	StartIndex int      `json:"startIndex,omitempty" yaml:"startIndex,omitempty"`
	Prompt     string   `json:"prompt,omitempty" yaml:"prompt,omitempty"`

	Layout   string `json:"layout,omitempty" yaml:"layout,omitempty"`
	Hour24   bool   `json:"hour24,omitempty" yaml:"hour24,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	VerticalLabel bool   `json:"verticalLabel,omitempty" yaml:"verticalLabel,omitempty"`
	LabelStyle    string `json:"labelStyle,omitempty" yaml:"labelStyle,omitempty"`
}

type documentFile struct {
	Forms map[string]Definition `json:"forms" yaml:"forms"`
}
