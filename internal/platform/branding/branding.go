// Package branding holds the studio identity shown on pages and emails.
package branding

const (
	// AppName is the studio name used in titles and email signatures.
	AppName = "Likha Studio 3D"
	// PublicEmail is the address printed in the footer and confirmation emails.
	PublicEmail = "info@likhastudio3d.com"
	// NoReplySender is the default From address for outbound emails.
	NoReplySender = "noreply@likhastudio3d.com"
	// Phone is the public phone number.
	Phone = "+39 347 3209167"
	// Location is the studio location shown in the footer.
	Location = "Manzano, Italia"
	// VATNumber is printed in the footer legal line.
	VATNumber = "00000000000"
	// CopyrightYear is the year in the footer copyright line.
	CopyrightYear = "2025"
)
