// Package cmd holds startup helpers shared by the command entrypoints.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/likhastudio/site/internal/platform/config"
	"github.com/likhastudio/site/internal/platform/otel"
	"github.com/likhastudio/site/internal/platform/timeouts"
)

// Service names used for telemetry resources and log prefixes.
const (
	ServiceWeb     = "web"
	ServiceContact = "contact"
)

// ParseConfig loads environment values into cfg. Commands bind flags to the
// same fields afterwards so flags win.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// LogPrefix formats the standard log prefix for a service.
func LogPrefix(service string) string {
	service = strings.ToUpper(strings.TrimSpace(service))
	if service == "" {
		return ""
	}
	return "[" + service + "] "
}

// RunWithTelemetry installs the trace provider for service, runs run and
// flushes pending spans on the way out.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer flush(service, shutdown, timeouts.TelemetryShutdown)
	return run(ctx)
}

func flush(service string, shutdown func(context.Context) error, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s otel shutdown: %v", service, err)
	}
}
