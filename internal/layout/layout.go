// Package layout selects the portfolio mosaic grid for a viewport width.
//
// Widths are bucketed into three screen classes and each class owns one
// predefined, immutable grid configuration. Selection is a table lookup; a
// width that crosses a breakpoint selects a different table entry rather than
// adjusting the current one.
package layout

import "fmt"

// Breakpoints in CSS pixels.
const (
	TabletMinWidth  = 768
	DesktopMinWidth = 1024
)

// ScreenClass buckets viewport widths.
type ScreenClass int

const (
	Mobile ScreenClass = iota
	Tablet
	Desktop
)

// String returns the lowercase class name used in URLs and markup.
func (c ScreenClass) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return fmt.Sprintf("ScreenClass(%d)", int(c))
	}
}

// ParseScreenClass parses the String form of a class.
func ParseScreenClass(value string) (ScreenClass, bool) {
	switch value {
	case "mobile":
		return Mobile, true
	case "tablet":
		return Tablet, true
	case "desktop":
		return Desktop, true
	default:
		return 0, false
	}
}

// Classify maps a viewport width to its screen class. Every int maps to
// exactly one class; non-positive widths are treated as mobile.
func Classify(width int) ScreenClass {
	switch {
	case width < TabletMinWidth:
		return Mobile
	case width < DesktopMinWidth:
		return Tablet
	default:
		return Desktop
	}
}

// CellSpan is the number of grid columns and rows one thumbnail covers.
type CellSpan struct {
	Width  int
	Height int
}

// Area returns the number of grid cells the span covers.
func (s CellSpan) Area() int {
	return s.Width * s.Height
}

// Config is the mosaic grid for one screen class. Values returned by this
// package are shared and never modified.
type Config struct {
	class       ScreenClass
	columnCount int
	cellSpans   []CellSpan
}

// Class returns the screen class the config belongs to.
func (c *Config) Class() ScreenClass {
	return c.class
}

// ImageCount returns the number of thumbnails the mosaic arranges.
func (c *Config) ImageCount() int {
	return len(c.cellSpans)
}

// ColumnCount returns the number of grid columns.
func (c *Config) ColumnCount() int {
	return c.columnCount
}

// CellSpans returns a copy of the per-thumbnail spans in display order.
func (c *Config) CellSpans() []CellSpan {
	out := make([]CellSpan, len(c.cellSpans))
	copy(out, c.cellSpans)
	return out
}

// SpanAt returns the span for thumbnail i. Indexes past ImageCount repeat the
// pattern, which lets the full gallery tile more projects than the preview.
func (c *Config) SpanAt(i int) CellSpan {
	n := len(c.cellSpans)
	if n == 0 || i < 0 {
		return CellSpan{Width: 1, Height: 1}
	}
	return c.cellSpans[i%n]
}

// ForClass returns the predefined config for class. Unknown classes fall
// back to desktop, matching the initial render before any width is known.
func ForClass(class ScreenClass) *Config {
	if cfg, ok := table[class]; ok {
		return cfg
	}
	return table[Desktop]
}

// Select classifies width and returns the matching config.
func Select(width int) *Config {
	return ForClass(Classify(width))
}
