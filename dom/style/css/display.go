package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/counters/dom/style"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, FlowRootMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	FlowRootMode:    "FlowRootMode",
	ListItemMode:    "ListItemMode",
	FlexMode:        "FlexMode",
	GridMode:        "GridMode",
	TableMode:       "TableMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	return disp.FullString()
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// IsListItem is true for display modes generating a list marker.
func (disp DisplayMode) IsListItem() bool {
	return disp.Contains(ListItemMode)
}

// IsNone is true for elements which do not generate boxes at all.
// Counters of such elements and of their descendants are not touched.
func (disp DisplayMode) IsNone() bool {
	return disp.Contains(DisplayNone)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var modes []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			modes = append(modes, displayModeNames[m])
		}
	}
	return strings.Join(modes, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(DisplayNone) {
		return "∅"
	} else if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "►"
	} else if disp.Contains(FlexMode) {
		return "▤"
	} else if disp.Contains(GridMode) {
		return "◰"
	} else if disp.Contains(TableMode) {
		return "▥"
	} else if disp == NoMode {
		return "–"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// Multi-keyword values like "inline list-item" are accepted.
func ParseDisplay(display style.Property) (DisplayMode, error) {
	fields := strings.Fields(strings.ToLower(string(display)))
	if len(fields) == 0 {
		return NoMode, nil
	}
	if len(fields) > 1 {
		var mode DisplayMode
		for _, f := range fields {
			switch f {
			case "block":
				mode |= BlockMode
			case "inline":
				mode |= InlineMode
			case "list-item":
				mode |= ListItemMode
			case "flow":
				mode |= InnerBlockMode
			case "flow-root":
				mode |= FlowRootMode
			default:
				return BlockMode, fmt.Errorf("unknown display mode: %s", display)
			}
		}
		if mode.IsListItem() && !mode.Contains(InlineMode) {
			mode |= BlockMode
		}
		return mode, nil
	}
	switch fields[0] {
	case "none":
		return DisplayNone, nil
	case "contents":
		return NoMode, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "block-inline":
		return BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "flow-root":
		return BlockMode | FlowRootMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}
