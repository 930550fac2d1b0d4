// Package contact parses contact command flags and submits one message
// through the same form flow the browser uses.
package contact

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/likhastudio/site/internal/contact/form"
	entrypoint "github.com/likhastudio/site/internal/platform/cmd"
	platformi18n "github.com/likhastudio/site/internal/platform/i18n"
	"github.com/likhastudio/site/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config holds the contact command configuration.
type Config struct {
	BaseURL   string        `env:"STUDIO_CONTACT_BASE_URL" envDefault:"http://localhost:8080"`
	Language  string        `env:"STUDIO_CONTACT_CLIENT_LANGUAGE"`
	Timeout   time.Duration `env:"STUDIO_CONTACT_TIMEOUT"  envDefault:"30s"`
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "site base URL")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "language sent as Accept-Language (it or en)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	fs.StringVar(&cfg.FirstName, "first-name", "", "first name")
	fs.StringVar(&cfg.LastName, "last-name", "", "last name")
	fs.StringVar(&cfg.Email, "email", "", "reply address")
	fs.StringVar(&cfg.Message, "message", "", "message text")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run submits the configured message and prints the server confirmation.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceContact, func(ctx context.Context) error {
		return submit(ctx, cfg, out)
	})
}

func submit(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	lang := platformi18n.DefaultTag()
	if cfg.Language != "" {
		parsed, ok := platformi18n.ParseTag(cfg.Language)
		if !ok {
			return fmt.Errorf("language %q is not supported", cfg.Language)
		}
		lang = parsed
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.ContactRequest
	}
	client := form.Client{
		BaseURL:  cfg.BaseURL,
		Language: lang,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	f := form.New(client, form.WithLanguage(lang))
	f.Set(form.FieldFirstName, cfg.FirstName)
	f.Set(form.FieldLastName, cfg.LastName)
	f.Set(form.FieldEmail, cfg.Email)
	f.Set(form.FieldMessage, cfg.Message)

	state, err := f.Submit(ctx)
	defer f.Close()
	switch s := state.(type) {
	case form.Success:
		_, werr := fmt.Fprintln(out, s.Message)
		return werr
	case form.Failed:
		return errors.New(s.Message)
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("unexpected form state %s", form.StateName(state))
}
