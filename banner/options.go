package banner

// Layout selects how generated art is fitted along one axis.
type Layout int

const (
	// LayoutDefault leaves the generator output untouched.
	LayoutDefault Layout = iota
	// LayoutFull pads every line to the full art width (horizontal) or
	// keeps blank lines (vertical).
	LayoutFull
	// LayoutFitted trims trailing whitespace (horizontal) or drops blank
	// lines (vertical).
	LayoutFitted
)

// String returns the layout name as used in configuration files.
func (l Layout) String() string {
	switch l {
	case LayoutFull:
		return "full"
	case LayoutFitted:
		return "fitted"
	default:
		return "default"
	}
}

// Options control a single generation request. There are no process-wide
// defaults; every call site passes the options it wants explicitly.
type Options struct {
	// Font is the figlet font name. Empty means the generator's default.
	Font string

	// HorizontalLayout fits art lines along the horizontal axis.
	HorizontalLayout Layout

	// VerticalLayout fits art lines along the vertical axis.
	VerticalLayout Layout

	// WhitespaceBreak wraps overlong input on word boundaries instead of
	// mid-word when a width constraint is in effect.
	WhitespaceBreak bool

	// Width is the resolved width constraint in columns. Zero means
	// unconstrained.
	Width int
}
