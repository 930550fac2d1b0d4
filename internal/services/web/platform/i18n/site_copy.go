// Package i18n builds localized page copy for the website.
package i18n

import (
	"fmt"
	"strings"

	"github.com/likhastudio/site/internal/platform/branding"
	platformi18n "github.com/likhastudio/site/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ServiceCopy describes one service card.
type ServiceCopy struct {
	Title       string
	Description string
	Features    []string
}

// SiteCopy holds translatable copy shared by the home and portfolio pages.
type SiteCopy struct {
	Lang string

	HomeTitle            string
	HomeDescription      string
	PortfolioTitle       string
	PortfolioDescription string

	NavHome      string
	NavServices  string
	NavPortfolio string
	NavContact   string
	NavMenu      string

	HeroTitleLead  string
	HeroTitleMid   string
	HeroTitleTail  string
	HeroTagline    string
	HeroShowreel   string
	HeroSlideLabel string
	HeroImageAlt   string

	ServicesHeading string
	ServicesIntro   string
	Services        []ServiceCopy

	PreviewBadge   string
	PreviewHeading string
	PreviewIntro   string
	PreviewCaption string
	PreviewDetails string
	PreviewExplore string

	CTAHeading      string
	CTABody         string
	CTAStart        string
	CTASatisfaction string
	CTARating       string

	FooterTagline         string
	FooterServicesHeading string
	FooterServices        []string
	FooterContactHeading  string
	FooterFollowHeading   string
	FooterRights          string
	FooterVAT             string

	GalleryBack       string
	GalleryHeading    string
	GalleryIntro      string
	GalleryCTAHeading string
	GalleryCTABody    string
	GalleryCTAButton  string

	ContactHeading    string
	ContactIntro      string
	ContactFirstName  string
	ContactLastName   string
	ContactEmail      string
	ContactMessage    string
	ContactSubmit     string
	ContactSubmitting string
	ContactClose      string

	ErrorNotFoundTitle string
	ErrorNotFoundBody  string
	ErrorServerTitle   string
	ErrorServerBody    string
	ErrorBackHome      string
}

// Site returns localized site copy for the provided language tag.
func Site(tag language.Tag) SiteCopy {
	localizedTag := normalizeSiteTag(tag)
	loc := message.NewPrinter(localizedTag)

	return SiteCopy{
		Lang: localizedTag.String(),

		HomeTitle:            withStudioSuffix(localizeWithFallback(loc, "meta.home_title", "Progettazione e Rendering Professionale")),
		HomeDescription:      localizeWithFallback(loc, "meta.home_description", "Progettazione 3D e rendering fotorealistico per mobile design e architettura"),
		PortfolioTitle:       withStudioSuffix(localizeWithFallback(loc, "meta.portfolio_title", "Portfolio Completo")),
		PortfolioDescription: localizeWithFallback(loc, "meta.portfolio_description", "Scopri tutti i miei progetti di progettazione 3D e rendering fotorealistico"),

		NavHome:      localizeWithFallback(loc, "nav.home", "Home"),
		NavServices:  localizeWithFallback(loc, "nav.services", "Servizi"),
		NavPortfolio: localizeWithFallback(loc, "nav.portfolio", "Portfolio"),
		NavContact:   localizeWithFallback(loc, "nav.contact", "Contattami"),
		NavMenu:      localizeWithFallback(loc, "nav.menu", "Apri menu"),

		HeroTitleLead:  localizeWithFallback(loc, "hero.title_lead", "Progettazione 3D"),
		HeroTitleMid:   localizeWithFallback(loc, "hero.title_mid", "e Rendering"),
		HeroTitleTail:  localizeWithFallback(loc, "hero.title_tail", "Professionale"),
		HeroTagline:    localizeWithFallback(loc, "hero.tagline", "Trasformo le tue idee in visualizzazioni fotorealistiche."),
		HeroShowreel:   localizeWithFallback(loc, "hero.showreel", "Guarda Showreel"),
		HeroSlideLabel: localizeWithFallback(loc, "hero.slide_label", "Vai alla immagine"),
		HeroImageAlt:   localizeWithFallback(loc, "hero.image_alt", "Rendering 3D del portfolio"),

		ServicesHeading: localizeWithFallback(loc, "services.heading", "Soluzioni 3D Complete"),
		ServicesIntro:   localizeWithFallback(loc, "services.intro", "Dalla concezione alla realizzazione finale, offro servizi completi di progettazione 3D per dare vita alle tue idee"),
		Services: []ServiceCopy{
			{
				Title:       localizeWithFallback(loc, "services.modeling.title", "Modellazione 3D"),
				Description: localizeWithFallback(loc, "services.modeling.description", "Creazione di modelli 3D ad alta precisione per ogni esigenza progettuale. Dal concept iniziale al modello finale ottimizzato per produzione o visualizzazione."),
				Features: []string{
					localizeWithFallback(loc, "services.modeling.feature_cad", "Modellazione CAD professionale"),
					localizeWithFallback(loc, "services.modeling.feature_product", "Design di prodotto e packaging"),
					localizeWithFallback(loc, "services.modeling.feature_print", "Ottimizzazione per stampa 3D"),
				},
			},
			{
				Title:       localizeWithFallback(loc, "services.rendering.title", "Rendering Fotorealistico"),
				Description: localizeWithFallback(loc, "services.rendering.description", "Immagini fotorealistiche di altissima qualità che trasformano i tuoi modelli 3D in presentazioni professionali pronte per marketing e comunicazione."),
				Features: []string{
					localizeWithFallback(loc, "services.rendering.feature_lighting", "Illuminazione studio professionale"),
					localizeWithFallback(loc, "services.rendering.feature_materials", "Materiali PBR avanzati"),
					localizeWithFallback(loc, "services.rendering.feature_post", "Post-produzione cinematografica"),
				},
			},
			{
				Title:       localizeWithFallback(loc, "services.scanning.title", "Scansione 3D"),
				Description: localizeWithFallback(loc, "services.scanning.description", "Acquisizione digitale precisa di oggetti reali trasformati in modelli 3D modificabili. Ideale per reverse engineering e digitalizzazione del patrimonio."),
				Features: []string{
					localizeWithFallback(loc, "services.scanning.feature_resolution", "Scansione ad alta risoluzione"),
					localizeWithFallback(loc, "services.scanning.feature_reverse", "Reverse engineering preciso"),
					localizeWithFallback(loc, "services.scanning.feature_mesh", "Ricostruzione mesh ottimizzata"),
				},
			},
		},

		PreviewBadge:   localizeWithFallback(loc, "preview.badge", "Portfolio"),
		PreviewHeading: localizeWithFallback(loc, "preview.heading", "Progetti Recenti"),
		PreviewIntro:   localizeWithFallback(loc, "preview.intro", "Una selezione dei miei lavori più recenti nel settore mobile e design di prodotto"),
		PreviewCaption: localizeWithFallback(loc, "preview.caption", "Design e rendering fotorealistico"),
		PreviewDetails: localizeWithFallback(loc, "preview.details", "Vedi Dettagli"),
		PreviewExplore: localizeWithFallback(loc, "preview.explore", "Esplora Tutto il Portfolio"),

		CTAHeading:      localizeWithFallback(loc, "cta.heading", "Pronto a Dare Vita alle Tue Idee?"),
		CTABody:         localizeWithFallback(loc, "cta.body", "Trasformiamo insieme il tuo progetto in visualizzazioni straordinarie che catturano attenzione e comunicano valore."),
		CTAStart:        localizeWithFallback(loc, "cta.start", "Inizia Ora il Tuo Progetto"),
		CTASatisfaction: localizeWithFallback(loc, "cta.satisfaction", "100% Soddisfazione Garantita"),
		CTARating:       localizeWithFallback(loc, "cta.rating", "5★ Valutazione Clienti"),

		FooterTagline:         localizeWithFallback(loc, "footer.tagline", "Eccellenza nel design 3D e rendering fotorealistico per progetti innovativi."),
		FooterServicesHeading: localizeWithFallback(loc, "footer.services_heading", "Servizi"),
		FooterServices: []string{
			localizeWithFallback(loc, "footer.service_modeling", "Modellazione 3D"),
			localizeWithFallback(loc, "footer.service_rendering", "Rendering"),
			localizeWithFallback(loc, "footer.service_animation", "Animazione"),
			localizeWithFallback(loc, "footer.service_consulting", "Consulenza"),
		},
		FooterContactHeading: localizeWithFallback(loc, "footer.contact_heading", "Contatti"),
		FooterFollowHeading:  localizeWithFallback(loc, "footer.follow_heading", "Seguimi"),
		FooterRights:         localizeWithFallback(loc, "footer.rights", "Tutti i diritti riservati."),
		FooterVAT:            localizeWithFallback(loc, "footer.vat", "P.IVA: %s", branding.VATNumber),

		GalleryBack:       localizeWithFallback(loc, "gallery.back", "Torna alla Home"),
		GalleryHeading:    localizeWithFallback(loc, "gallery.heading", "Portfolio Completo"),
		GalleryIntro:      localizeWithFallback(loc, "gallery.intro", "Scopri tutti i miei progetti di progettazione 3D e rendering fotorealistico"),
		GalleryCTAHeading: localizeWithFallback(loc, "gallery.cta_heading", "Hai un Progetto in Mente?"),
		GalleryCTABody:    localizeWithFallback(loc, "gallery.cta_body", "Contattami per discutere il tuo prossimo progetto di visualizzazione 3D"),
		GalleryCTAButton:  localizeWithFallback(loc, "gallery.cta_button", "Inizia una Conversazione"),

		ContactHeading:    localizeWithFallback(loc, "contact.heading", "Contattami"),
		ContactIntro:      localizeWithFallback(loc, "contact.intro", "Raccontami il tuo progetto: ti risponderò al più presto."),
		ContactFirstName:  localizeWithFallback(loc, "contact.first_name", "Nome"),
		ContactLastName:   localizeWithFallback(loc, "contact.last_name", "Cognome"),
		ContactEmail:      localizeWithFallback(loc, "contact.email", "Email"),
		ContactMessage:    localizeWithFallback(loc, "contact.message", "Messaggio"),
		ContactSubmit:     localizeWithFallback(loc, "contact.submit", "Invia Messaggio"),
		ContactSubmitting: localizeWithFallback(loc, "contact.submitting", "Invio in corso..."),
		ContactClose:      localizeWithFallback(loc, "contact.close", "Chiudi"),

		ErrorNotFoundTitle: localizeWithFallback(loc, "error.not_found_title", "Pagina non trovata"),
		ErrorNotFoundBody:  localizeWithFallback(loc, "error.not_found_body", "La pagina che cerchi non esiste o è stata spostata."),
		ErrorServerTitle:   localizeWithFallback(loc, "error.server_title", "Qualcosa è andato storto"),
		ErrorServerBody:    localizeWithFallback(loc, "error.server_body", "Si è verificato un errore imprevisto. Riprova tra qualche istante."),
		ErrorBackHome:      localizeWithFallback(loc, "error.back_home", "Torna alla Home"),
	}
}

func normalizeSiteTag(tag language.Tag) language.Tag {
	if resolved, ok := platformi18n.ParseTag(tag.String()); ok {
		return resolved
	}
	return platformi18n.DefaultTag()
}

func withStudioSuffix(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return branding.AppName
	}
	return fmt.Sprintf("%s | %s", trimmed, branding.AppName)
}

func localizeWithFallback(loc *message.Printer, key string, fallback string, args ...any) string {
	if loc != nil {
		// Probe without args: a missing key echoes back unchanged.
		if probe := strings.TrimSpace(loc.Sprintf(key)); probe != "" && probe != key {
			return strings.TrimSpace(loc.Sprintf(key, args...))
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}
