package node

import "github.com/dkoosis/fieldkit/pkg/field"

// Tone affects coloring in host renderers.
type Tone string

const (
	ToneDefault Tone = ""
	ToneMuted   Tone = "muted"
	TonePrimary Tone = "primary"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
)

// Text is a run of plain text.
type Text struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone,omitempty"`
}

// Empty is the distinguishable placeholder for a value that is not set.
type Empty struct {
	Label string `json:"label"`
}

// Badge is a single option or tag chip.
type Badge struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Color string `json:"color,omitempty"`
}

// Count summarizes a collection in dense layouts.
type Count struct {
	N    int    `json:"n"`
	Noun string `json:"noun,omitempty"`
}

// Link is a clickable reference.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ErrorChip shows an error carried by the value itself.
type ErrorChip struct {
	Message string `json:"message"`
}

// Warning is a visible, non-fatal notice such as an unknown field type.
type Warning struct {
	Message string `json:"message"`
}

// Heading is static layout text.
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level,omitempty"`
}

// Divider is a horizontal rule.
type Divider struct{}

// Skeleton is the non-interactive placeholder used by schema builders.
type Skeleton struct {
	Label    string `json:"label,omitempty"`
	Category string `json:"category"`
	Lines    int    `json:"lines,omitempty"`
}

// Input collects a value. Set coerces raw host input and reports the
// change; it is nil whenever the input must not emit changes.
type Input struct {
	Control     string         `json:"control"`
	Name        string         `json:"name,omitempty"`
	Value       any            `json:"value,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Options     []field.Option `json:"options,omitempty"`
	Multiple    bool           `json:"multiple,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Set         func(any)      `json:"-"`
}

// Action is a button. Do is nil when the action is unavailable.
type Action struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
	Do       func() `json:"-"`
}

// Dropzone is a drag-and-drop upload target. Add receives the uploaded
// file reference(s) from the host.
type Dropzone struct {
	Accept   string    `json:"accept,omitempty"`
	Multiple bool      `json:"multiple,omitempty"`
	Disabled bool      `json:"disabled,omitempty"`
	Add      func(any) `json:"-"`
}

func (*Text) Kind() Kind      { return KindText }
func (*Empty) Kind() Kind     { return KindEmpty }
func (*Badge) Kind() Kind     { return KindBadge }
func (*Count) Kind() Kind     { return KindCount }
func (*Link) Kind() Kind      { return KindLink }
func (*ErrorChip) Kind() Kind { return KindErrorChip }
func (*Warning) Kind() Kind   { return KindWarning }
func (*Heading) Kind() Kind   { return KindHeading }
func (*Divider) Kind() Kind   { return KindDivider }
func (*Skeleton) Kind() Kind  { return KindSkeleton }
func (*Input) Kind() Kind     { return KindInput }
func (*Action) Kind() Kind    { return KindAction }
func (*Dropzone) Kind() Kind  { return KindDropzone }
