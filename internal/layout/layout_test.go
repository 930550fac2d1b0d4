package layout

import "testing"

func TestClassifyBreakpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width int
		want  ScreenClass
	}{
		{width: -10, want: Mobile},
		{width: 0, want: Mobile},
		{width: 767, want: Mobile},
		{width: 768, want: Tablet},
		{width: 900, want: Tablet},
		{width: 1023, want: Tablet},
		{width: 1024, want: Desktop},
		{width: 1200, want: Desktop},
		{width: 4096, want: Desktop},
	}
	for _, tc := range tests {
		if got := Classify(tc.width); got != tc.want {
			t.Fatalf("Classify(%d) = %v, want %v", tc.width, got, tc.want)
		}
	}
}

func TestScreenClassStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, class := range []ScreenClass{Mobile, Tablet, Desktop} {
		parsed, ok := ParseScreenClass(class.String())
		if !ok || parsed != class {
			t.Fatalf("ParseScreenClass(%q) = %v, %v", class.String(), parsed, ok)
		}
	}
	if _, ok := ParseScreenClass("watch"); ok {
		t.Fatal("expected unknown class to be rejected")
	}
	if got := ScreenClass(9).String(); got != "ScreenClass(9)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestTableShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class   ScreenClass
		images  int
		columns int
	}{
		{class: Desktop, images: 10, columns: 6},
		{class: Tablet, images: 12, columns: 4},
		{class: Mobile, images: 8, columns: 2},
	}
	for _, tc := range tests {
		cfg := ForClass(tc.class)
		if cfg.Class() != tc.class {
			t.Fatalf("%v: Class() = %v", tc.class, cfg.Class())
		}
		if cfg.ImageCount() != tc.images {
			t.Fatalf("%v: ImageCount() = %d, want %d", tc.class, cfg.ImageCount(), tc.images)
		}
		if cfg.ColumnCount() != tc.columns {
			t.Fatalf("%v: ColumnCount() = %d, want %d", tc.class, cfg.ColumnCount(), tc.columns)
		}
		if got := len(cfg.CellSpans()); got != cfg.ImageCount() {
			t.Fatalf("%v: len(CellSpans()) = %d, want %d", tc.class, got, cfg.ImageCount())
		}
	}
}

func TestTablesTileWithoutGaps(t *testing.T) {
	t.Parallel()

	for _, class := range []ScreenClass{Mobile, Tablet, Desktop} {
		cfg := ForClass(class)
		area := 0
		for i, span := range cfg.CellSpans() {
			if span.Width < 1 || span.Height < 1 {
				t.Fatalf("%v: span %d = %+v", class, i, span)
			}
			if span.Width > cfg.ColumnCount() {
				t.Fatalf("%v: span %d wider than grid", class, i)
			}
			area += span.Area()
		}
		if area%cfg.ColumnCount() != 0 {
			t.Fatalf("%v: total area %d leaves a ragged last row", class, area)
		}
	}
}

func TestSelectIsPureAndShared(t *testing.T) {
	t.Parallel()

	if Select(1200) != Select(1100) {
		t.Fatal("expected same desktop config for widths in one class")
	}
	if Select(900) == Select(1200) {
		t.Fatal("expected different configs across breakpoint")
	}
	if ForClass(ScreenClass(42)) != ForClass(Desktop) {
		t.Fatal("expected unknown class to fall back to desktop")
	}
}

func TestCellSpansReturnsCopy(t *testing.T) {
	t.Parallel()

	spans := ForClass(Desktop).CellSpans()
	spans[0] = CellSpan{Width: 9, Height: 9}
	if ForClass(Desktop).CellSpans()[0] == spans[0] {
		t.Fatal("mutating CellSpans() result changed the shared table")
	}
}

func TestSpanAtCyclesPattern(t *testing.T) {
	t.Parallel()

	cfg := ForClass(Tablet)
	n := cfg.ImageCount()
	for i := 0; i < n; i++ {
		if cfg.SpanAt(i) != cfg.SpanAt(i+n) {
			t.Fatalf("SpanAt(%d) != SpanAt(%d)", i, i+n)
		}
	}
	if got := cfg.SpanAt(-1); got != (CellSpan{Width: 1, Height: 1}) {
		t.Fatalf("SpanAt(-1) = %+v", got)
	}
}
