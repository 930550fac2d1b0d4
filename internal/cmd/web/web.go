// Package web parses web command flags and composes the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/likhastudio/site/internal/contact"
	"github.com/likhastudio/site/internal/mail/sendgrid"
	"github.com/likhastudio/site/internal/platform/branding"
	entrypoint "github.com/likhastudio/site/internal/platform/cmd"
	platformi18n "github.com/likhastudio/site/internal/platform/i18n"
	"github.com/likhastudio/site/internal/services/web"
	"github.com/likhastudio/site/internal/services/web/platform/requestmeta"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"STUDIO_WEB_HTTP_ADDR"               envDefault:"localhost:8080"`
	ImageDir            string `env:"STUDIO_WEB_IMAGE_DIR"`
	TrustForwardedProto bool   `env:"STUDIO_WEB_TRUST_FORWARDED_PROTO"`
	OperatorEmail       string `env:"STUDIO_CONTACT_EMAIL"               envDefault:"info@likhastudio3d.com"`
	OperatorLanguage    string `env:"STUDIO_CONTACT_LANGUAGE"            envDefault:"it-IT"`
	Timezone            string `env:"STUDIO_CONTACT_TIMEZONE"`
	MailFrom            string `env:"STUDIO_MAIL_FROM"                   envDefault:"noreply@likhastudio3d.com"`
	SendGridAPIKey      string `env:"SENDGRID_API_KEY"`
	SendGridHost        string `env:"STUDIO_SENDGRID_HOST"               envDefault:"https://api.sendgrid.com"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ImageDir, "image-dir", cfg.ImageDir, "directory served under /static/images/")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto for same-origin checks")
	fs.StringVar(&cfg.OperatorEmail, "contact-email", cfg.OperatorEmail, "address that receives contact notifications")
	fs.StringVar(&cfg.OperatorLanguage, "contact-language", cfg.OperatorLanguage, "language of operator notifications")
	fs.StringVar(&cfg.Timezone, "contact-timezone", cfg.Timezone, "IANA zone of notification timestamps (default: server local)")
	fs.StringVar(&cfg.MailFrom, "mail-from", cfg.MailFrom, "sender address of outbound emails")
	fs.StringVar(&cfg.SendGridHost, "sendgrid-host", cfg.SendGridHost, "SendGrid API host")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Composer builds the contact email composer from cfg.
func (cfg Config) Composer() (contact.Composer, error) {
	operator := strings.TrimSpace(cfg.OperatorEmail)
	if !contact.ValidEmail(operator) {
		return contact.Composer{}, fmt.Errorf("contact email %q is not a valid address", cfg.OperatorEmail)
	}
	lang, ok := platformi18n.ParseTag(cfg.OperatorLanguage)
	if !ok {
		return contact.Composer{}, fmt.Errorf("contact language %q is not supported", cfg.OperatorLanguage)
	}
	var location *time.Location
	if zone := strings.TrimSpace(cfg.Timezone); zone != "" {
		loaded, err := time.LoadLocation(zone)
		if err != nil {
			return contact.Composer{}, fmt.Errorf("contact timezone: %w", err)
		}
		location = loaded
	}
	return contact.Composer{
		Operator:         operator,
		From:             strings.TrimSpace(cfg.MailFrom),
		OperatorLanguage: lang,
		Location:         location,
	}, nil
}

// Run builds the contact pipeline and serves the site.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		composer, err := cfg.Composer()
		if err != nil {
			return err
		}
		sender := sendgrid.New(sendgrid.Config{
			APIKey:   cfg.SendGridAPIKey,
			Host:     cfg.SendGridHost,
			FromName: branding.AppName,
		})
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			ImageDir:            cfg.ImageDir,
			Submitter:           contact.NewPipeline(sender, composer),
			RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
