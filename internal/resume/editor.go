package resume

// FieldEditor models the click-to-edit lifecycle of a single displayed
// value: Display until begun, then an Editing draft that commits on blur
// (or Enter in single-line mode) and reverts on Escape. The editor holds no
// state after leaving Editing; the owning record is the source of truth.
type FieldEditor struct {
	original  string
	draft     string
	multiline bool
	editing   bool
}

// InputEvent is a keystroke or focus event delivered to an editing field.
type InputEvent int

const (
	EventEnter InputEvent = iota
	EventEscape
	EventBlur
)

// NewFieldEditor starts in Display state over the current value.
func NewFieldEditor(value string, multiline bool) *FieldEditor {
	return &FieldEditor{original: value, draft: value, multiline: multiline}
}

func (f *FieldEditor) Editing() bool { return f.editing }

// Value is the committed value: the draft while editing has not resolved,
// the original otherwise.
func (f *FieldEditor) Value() string { return f.original }

func (f *FieldEditor) Draft() string { return f.draft }

// Begin transitions Display → Editing. Beginning while already editing is a
// no-op so repeated clicks don't reset the draft.
func (f *FieldEditor) Begin() {
	if !f.editing {
		f.editing = true
		f.draft = f.original
	}
}

// SetDraft records keystrokes. Drafts are local until an event resolves the
// edit; they never reach the owning record directly.
func (f *FieldEditor) SetDraft(s string) {
	if f.editing {
		f.draft = s
	}
}

// Handle resolves an input event. It reports whether the edit committed,
// and the value the caller should now treat as current. Enter commits only
// in single-line mode; in multi-line mode it is an ordinary newline
// keystroke. Escape reverts the draft. Blur always commits. Empty commits
// are permitted; the display side falls back to a placeholder.
func (f *FieldEditor) Handle(ev InputEvent) (committed bool, value string) {
	if !f.editing {
		return false, f.original
	}
	switch ev {
	case EventEnter:
		if f.multiline {
			f.draft += "\n"
			return false, f.original
		}
		return f.commit()
	case EventEscape:
		f.editing = false
		f.draft = f.original
		return false, f.original
	case EventBlur:
		return f.commit()
	}
	return false, f.original
}

func (f *FieldEditor) commit() (bool, string) {
	f.editing = false
	f.original = f.draft
	return true, f.original
}
