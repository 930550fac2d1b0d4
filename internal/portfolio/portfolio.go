// Package portfolio lists the studio's projects and arranges them on a
// layout grid.
package portfolio

import (
	"fmt"

	"github.com/likhastudio/site/internal/layout"
)

// Project is one gallery entry.
type Project struct {
	ID    int
	Title string
}

// ImagePath is the public path of the project's cover image.
func (p Project) ImagePath() string {
	return fmt.Sprintf("/static/images/portfolio/%d.jpg", p.ID)
}

var projects = []Project{
	{ID: 1, Title: "Architettura Residenziale 01"},
	{ID: 2, Title: "Design di Prodotto 02"},
	{ID: 3, Title: "Visualizzazione Interni 03"},
	{ID: 4, Title: "Rendering Architettonico 04"},
	{ID: 5, Title: "Concept Design 05"},
	{ID: 6, Title: "Spazi Commerciali 06"},
	{ID: 7, Title: "Arredamento Moderno 07"},
	{ID: 8, Title: "Progetto Residenziale 08"},
	{ID: 9, Title: "Design d'Interni 09"},
	{ID: 10, Title: "Ristrutturazione 3D 10"},
	{ID: 11, Title: "Furniture Rendering 11"},
	{ID: 12, Title: "Visualizzazione Prodotto 12"},
	{ID: 13, Title: "Progetto Hotel 13"},
	{ID: 14, Title: "Design Industriale 14"},
	{ID: 15, Title: "Rendering Esterno 15"},
	{ID: 16, Title: "Uffici Moderni 16"},
	{ID: 17, Title: "Showroom Design 17"},
	{ID: 18, Title: "Retail Space 18"},
	{ID: 19, Title: "Packaging 3D 19"},
	{ID: 20, Title: "Prototipo Digitale 20"},
	{ID: 21, Title: "Ambiente Wellness 21"},
	{ID: 22, Title: "Cucina Contemporanea 22"},
	{ID: 23, Title: "Spazio Espositivo 23"},
	{ID: 24, Title: "Design Sostenibile 24"},
	{ID: 25, Title: "Ambiente Creativo 25"},
	{ID: 26, Title: "Progetto Luxury 26"},
	{ID: 27, Title: "Visualizzazione Urbana 27"},
	{ID: 28, Title: "Interior Moderno 28"},
	{ID: 29, Title: "Rendering Notturno 29"},
	{ID: 30, Title: "Concept Architettonico 30"},
}

var heroImages = []string{
	"/static/images/presentazione-1.png",
	"/static/images/presentazione-2.png",
	"/static/images/presentazione-3.png",
	"/static/images/presentazione-4.png",
	"/static/images/presentazione-5.png",
}

// Projects returns every project in display order.
func Projects() []Project {
	return append([]Project(nil), projects...)
}

// HeroImages returns the home carousel slides in order.
func HeroImages() []string {
	return append([]string(nil), heroImages...)
}

// Placement is a project positioned on the grid.
type Placement struct {
	Project Project
	Span    layout.CellSpan
}

// Gallery places every project on cfg, repeating the span pattern when there
// are more projects than cells.
func Gallery(cfg *layout.Config) []Placement {
	out := make([]Placement, 0, len(projects))
	for i, project := range projects {
		out = append(out, Placement{Project: project, Span: cfg.SpanAt(i)})
	}
	return out
}

// Preview places the first cfg.ImageCount() projects, one per cell.
func Preview(cfg *layout.Config) []Placement {
	spans := cfg.CellSpans()
	if len(spans) > len(projects) {
		spans = spans[:len(projects)]
	}
	out := make([]Placement, 0, len(spans))
	for i, span := range spans {
		out = append(out, Placement{Project: projects[i], Span: span})
	}
	return out
}
