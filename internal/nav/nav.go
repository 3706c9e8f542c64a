// Package nav holds the navigation shell's section registry and the
// scroll-spy geometry: resolving the active section for a scroll offset and
// deciding whether the fixed bar is visible from scroll direction.
package nav

// Pixel constants shared with the shell script.
const (
	// LeadIn is added to the scroll offset before matching sections, so a
	// section activates slightly before its top reaches the viewport edge.
	LeadIn = 100
	// HeaderOffset is subtracted from a section's top when scrolling to it,
	// keeping the heading clear of the fixed bar.
	HeaderOffset = 80
	// HideThreshold is how far past the top the user must be before
	// downward scrolling hides the bar.
	HideThreshold = 50
)

// Section is a registered page section with its vertical extent. Order in
// the registry is document order.
type Section struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Top    int    `json:"-"`
	Height int    `json:"-"`
}

// Sections is the fixed registry for the home page, in document order.
func Sections() []Section {
	return []Section{
		{ID: "home", Label: "Home"},
		{ID: "about", Label: "About"},
		{ID: "experience", Label: "Experience"},
		{ID: "skills", Label: "Skills"},
		{ID: "education", Label: "Education"},
		{ID: "contact", Label: "Contact"},
	}
}

// Resolve returns the active section id for a scroll offset: the LAST
// section in document order whose [Top, Top+Height) extent contains the
// reference point offset+LeadIn. Later sections win when extents overlap.
// Returns "" when no section contains the point.
func Resolve(sections []Section, scrollOffset int) string {
	ref := scrollOffset + LeadIn
	active := ""
	for _, s := range sections {
		if ref >= s.Top && ref < s.Top+s.Height {
			active = s.ID
		}
	}
	return active
}

// ScrollTarget is the offset to scroll to for a section, clear of the bar.
func ScrollTarget(s Section) int {
	return s.Top - HeaderOffset
}

// Tracker decides bar visibility from consecutive scroll offsets. The rule
// is a plain direction comparison: scrolling down past the threshold hides
// the bar, any upward movement or being near the top shows it.
type Tracker struct {
	prev    int
	visible bool
}

func NewTracker() *Tracker {
	return &Tracker{visible: true}
}

// Observe records a new scroll offset and reports bar visibility.
func (t *Tracker) Observe(offset int) bool {
	switch {
	case offset <= HideThreshold:
		t.visible = true
	case offset > t.prev:
		t.visible = false
	case offset < t.prev:
		t.visible = true
	}
	t.prev = offset
	return t.visible
}

func (t *Tracker) Visible() bool { return t.visible }
