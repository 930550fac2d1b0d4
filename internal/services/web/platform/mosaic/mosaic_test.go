package mosaic

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/likhastudio/site/internal/layout"
	"github.com/likhastudio/site/internal/portfolio"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

func TestInitialConfigUsesViewportHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   layout.ScreenClass
	}{
		{name: "missing", header: "", want: layout.Desktop},
		{name: "garbage", header: "wide", want: layout.Desktop},
		{name: "mobile", header: "390", want: layout.Mobile},
		{name: "tablet", header: " 900 ", want: layout.Tablet},
		{name: "desktop", header: "1440", want: layout.Desktop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(ViewportWidthHeader, tc.header)
			}
			if got := InitialConfig(req).Class(); got != tc.want {
				t.Fatalf("InitialConfig() class = %v, want %v", got, tc.want)
			}
		})
	}
	if got := InitialConfig(nil).Class(); got != layout.Desktop {
		t.Fatalf("InitialConfig(nil) class = %v, want desktop", got)
	}
}

func TestBuildPreviewUsesOneTilePerCell(t *testing.T) {
	t.Parallel()

	for _, class := range []layout.ScreenClass{layout.Mobile, layout.Tablet, layout.Desktop} {
		cfg := layout.ForClass(class)
		view := Build(routepath.GridViewPreview, cfg)
		if len(view.Tiles) != cfg.ImageCount() {
			t.Fatalf("%v preview tiles = %d, want %d", class, len(view.Tiles), cfg.ImageCount())
		}
		if view.Columns != cfg.ColumnCount() {
			t.Fatalf("%v columns = %d, want %d", class, view.Columns, cfg.ColumnCount())
		}
		if view.Class != class.String() {
			t.Fatalf("%v class = %q", class, view.Class)
		}
		for i, tile := range view.Tiles {
			span := cfg.SpanAt(i)
			if tile.Width != span.Width || tile.Height != span.Height {
				t.Fatalf("%v tile %d span = %dx%d, want %dx%d", class, i, tile.Width, tile.Height, span.Width, span.Height)
			}
		}
	}
}

func TestBuildGalleryPlacesEveryProject(t *testing.T) {
	t.Parallel()

	view := Build("anything", layout.ForClass(layout.Tablet))
	if view.View != routepath.GridViewGallery {
		t.Fatalf("view = %q, want gallery", view.View)
	}
	if len(view.Tiles) != len(portfolio.Projects()) {
		t.Fatalf("gallery tiles = %d, want %d", len(view.Tiles), len(portfolio.Projects()))
	}
	if view.Tiles[0].ImageURL != portfolio.Projects()[0].ImagePath() {
		t.Fatalf("first tile image = %q", view.Tiles[0].ImageURL)
	}
	if view.Source != routepath.PortfolioGrid {
		t.Fatalf("source = %q, want %q", view.Source, routepath.PortfolioGrid)
	}
}
