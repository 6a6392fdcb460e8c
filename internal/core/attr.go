package core

// Attr is the display attribute of a screen cell.
// The platform layer maps it to terminal styles (faint, bold).
type Attr uint8

// Attributes used by the animations.
const (
	AttrNormal Attr = iota
	AttrDim
	AttrBold
)

// String returns the attribute name as used in configuration files.
func (a Attr) String() string {
	switch a {
	case AttrNormal:
		return "normal"
	case AttrDim:
		return "dim"
	case AttrBold:
		return "bold"
	default:
		return "unknown"
	}
}

// ParseAttr converts a configuration name into an Attr.
func ParseAttr(name string) (Attr, bool) {
	switch name {
	case "normal", "":
		return AttrNormal, true
	case "dim":
		return AttrDim, true
	case "bold":
		return AttrBold, true
	}
	return AttrNormal, false
}
