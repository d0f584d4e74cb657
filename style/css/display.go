package css

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for display mode (outer and inner).
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

// Outer returns the outer mode.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns the inner mode.
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel returns true if disp has an outer display level of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// String returns the name of an atomic mode, or all atomic modes set in
// disp, separated by '|'.
func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	var names []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			names = append(names, displayModeNames[m])
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("DisplayMode(%#x)", uint16(disp))
	}
	return strings.Join(names, "|")
}

var displayKeywords = map[string]DisplayMode{
	"none":         DisplayNone,
	"block":        BlockMode | InnerBlockMode,
	"inline":       InlineMode | InnerInlineMode,
	"list-item":    ListItemMode | BlockMode,
	"flow-root":    BlockMode | FlowRootMode,
	"flex":         BlockMode | FlexMode,
	"inline-flex":  InlineMode | FlexMode,
	"grid":         BlockMode | GridMode,
	"inline-grid":  InlineMode | GridMode,
	"inline-block": InlineMode | InnerBlockMode,
	"table":        BlockMode | TableMode,
	"inline-table": InlineMode | TableMode,
}

// ParseDisplay returns mode flags from a display property string (outer and
// inner). The empty string yields NoMode.
func ParseDisplay(display string) (DisplayMode, error) {
	display = strings.ToLower(strings.TrimSpace(display))
	if display == "" {
		return NoMode, nil
	}
	if mode, ok := displayKeywords[display]; ok {
		return mode, nil
	}
	return NoMode, fmt.Errorf("unknown display mode: %q", display)
}
