package layout

var (
	big  = CellSpan{Width: 2, Height: 2}
	wide = CellSpan{Width: 2, Height: 1}
	unit = CellSpan{Width: 1, Height: 1}
)

// table is built once and shared for the life of the process.
var table = map[ScreenClass]*Config{
	Desktop: {
		class:       Desktop,
		columnCount: 6,
		cellSpans: []CellSpan{
			big, unit, unit, big, unit, unit,
			wide, wide, unit, unit,
		},
	},
	Tablet: {
		class:       Tablet,
		columnCount: 4,
		cellSpans: []CellSpan{
			big, unit, unit, wide,
			unit, unit, big, unit,
			unit, wide, unit, unit,
		},
	},
	Mobile: {
		class:       Mobile,
		columnCount: 2,
		cellSpans: []CellSpan{
			unit, unit, wide, unit,
			unit, wide, unit, unit,
		},
	},
}
