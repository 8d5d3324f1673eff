package tasklist

// InputSource is the text-entry field new tasks are read from.
// *textinput.Model from bubbles satisfies it.
type InputSource interface {
	Value() string
	SetValue(s string)
}

// Field is a minimal InputSource for callers without a widget.
type Field struct {
	value string
}

// NewField returns a Field holding s.
func NewField(s string) *Field {
	return &Field{value: s}
}

func (f *Field) Value() string      { return f.value }
func (f *Field) SetValue(s string) { f.value = s }
