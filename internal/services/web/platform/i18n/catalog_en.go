package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishCopy = map[string]string{
	"meta.home_title":            "Professional 3D Design and Rendering",
	"meta.home_description":      "3D design and photorealistic rendering for mobile design and architecture",
	"meta.portfolio_title":       "Full Portfolio",
	"meta.portfolio_description": "Browse all my 3D design and photorealistic rendering projects",

	"nav.home":      "Home",
	"nav.services":  "Services",
	"nav.portfolio": "Portfolio",
	"nav.contact":   "Contact me",
	"nav.menu":      "Open menu",

	"hero.title_lead":  "3D Design",
	"hero.title_mid":   "and Professional",
	"hero.title_tail":  "Rendering",
	"hero.tagline":     "I turn your ideas into photorealistic visualizations.",
	"hero.showreel":    "Watch Showreel",
	"hero.slide_label": "Go to image",
	"hero.image_alt":   "3D portfolio rendering",

	"services.heading":                     "Complete 3D Solutions",
	"services.intro":                       "From concept to final delivery, I offer complete 3D design services to bring your ideas to life",
	"services.modeling.title":              "3D Modeling",
	"services.modeling.description":        "High-precision 3D models for every design need. From the first concept to a final model optimized for production or visualization.",
	"services.modeling.feature_cad":        "Professional CAD modeling",
	"services.modeling.feature_product":    "Product and packaging design",
	"services.modeling.feature_print":      "3D printing optimization",
	"services.rendering.title":             "Photorealistic Rendering",
	"services.rendering.description":       "Top-quality photorealistic images that turn your 3D models into professional presentations ready for marketing and communication.",
	"services.rendering.feature_lighting":  "Professional studio lighting",
	"services.rendering.feature_materials": "Advanced PBR materials",
	"services.rendering.feature_post":      "Cinematic post-production",
	"services.scanning.title":              "3D Scanning",
	"services.scanning.description":        "Accurate digital capture of real objects turned into editable 3D models. Ideal for reverse engineering and heritage digitization.",
	"services.scanning.feature_resolution": "High-resolution scanning",
	"services.scanning.feature_reverse":    "Precise reverse engineering",
	"services.scanning.feature_mesh":       "Optimized mesh reconstruction",

	"preview.badge":   "Portfolio",
	"preview.heading": "Recent Projects",
	"preview.intro":   "A selection of my latest work in mobile and product design",
	"preview.caption": "Design and photorealistic rendering",
	"preview.details": "View Details",
	"preview.explore": "Explore the Full Portfolio",

	"cta.heading":      "Ready to Bring Your Ideas to Life?",
	"cta.body":         "Let's turn your project into striking visualizations that capture attention and communicate value.",
	"cta.start":        "Start Your Project Now",
	"cta.satisfaction": "100% Satisfaction Guaranteed",
	"cta.rating":       "5★ Client Rating",

	"footer.tagline":            "Excellence in 3D design and photorealistic rendering for innovative projects.",
	"footer.services_heading":   "Services",
	"footer.service_modeling":   "3D Modeling",
	"footer.service_rendering":  "Rendering",
	"footer.service_animation":  "Animation",
	"footer.service_consulting": "Consulting",
	"footer.contact_heading":    "Contact",
	"footer.follow_heading":     "Follow me",
	"footer.rights":             "All rights reserved.",
	"footer.vat":                "VAT: %s",

	"gallery.back":        "Back to Home",
	"gallery.heading":     "Full Portfolio",
	"gallery.intro":       "Browse all my 3D design and photorealistic rendering projects",
	"gallery.cta_heading": "Have a Project in Mind?",
	"gallery.cta_body":    "Get in touch to discuss your next 3D visualization project",
	"gallery.cta_button":  "Start a Conversation",

	"contact.heading":    "Contact me",
	"contact.intro":      "Tell me about your project and I will get back to you soon.",
	"contact.first_name": "First name",
	"contact.last_name":  "Last name",
	"contact.email":      "Email",
	"contact.message":    "Message",
	"contact.submit":     "Send Message",
	"contact.submitting": "Sending...",
	"contact.close":      "Close",

	"error.not_found_title": "Page not found",
	"error.not_found_body":  "The page you are looking for does not exist or has moved.",
	"error.server_title":    "Something went wrong",
	"error.server_body":     "An unexpected error occurred. Please try again in a moment.",
	"error.back_home":       "Back to Home",
}

func init() {
	tag := language.MustParse("en-US")
	for key, value := range englishCopy {
		_ = message.SetString(tag, key, value)
	}
}
