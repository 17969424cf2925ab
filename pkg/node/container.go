package node

// FormField wraps a control with its label, description and inline error.
type FormField struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Error       string `json:"error,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Body        Node   `json:"-"`
}

// Stack lays out nodes in sequence.
type Stack struct {
	Horizontal bool   `json:"horizontal,omitempty"`
	Items      []Node `json:"-"`
}

// Grid lays out cells in a fixed number of columns.
type Grid struct {
	Columns int    `json:"columns"`
	Cells   []Node `json:"-"`
}

// Item is one entry of a repeater.
type Item struct {
	Index   int    `json:"index"`
	ID      string `json:"id,omitempty"`
	Body    Node   `json:"-"`
	Actions []Node `json:"-"`
}

func (*FormField) Kind() Kind { return KindFormField }
func (*Stack) Kind() Kind     { return KindStack }
func (*Grid) Kind() Kind      { return KindGrid }
func (*Item) Kind() Kind      { return KindItem }

func (f *FormField) Nodes() []Node {
	if f.Body == nil {
		return nil
	}
	return []Node{f.Body}
}

func (s *Stack) Nodes() []Node { return s.Items }
func (g *Grid) Nodes() []Node  { return g.Cells }

func (i *Item) Nodes() []Node {
	out := make([]Node, 0, 1+len(i.Actions))
	if i.Body != nil {
		out = append(out, i.Body)
	}
	return append(out, i.Actions...)
}

// Row is shorthand for a horizontal stack.
func Row(items ...Node) *Stack {
	return &Stack{Horizontal: true, Items: items}
}

// Column is shorthand for a vertical stack.
func Column(items ...Node) *Stack {
	return &Stack{Items: items}
}
