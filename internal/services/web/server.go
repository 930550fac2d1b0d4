package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/likhastudio/site/internal/platform/timeouts"
	webapp "github.com/likhastudio/site/internal/services/web/app"
	module "github.com/likhastudio/site/internal/services/web/module"
	"github.com/likhastudio/site/internal/services/web/modules"
	"github.com/likhastudio/site/internal/services/web/modules/contact"
	"github.com/likhastudio/site/internal/services/web/platform/httpx"
	"github.com/likhastudio/site/internal/services/web/platform/observability"
	"github.com/likhastudio/site/internal/services/web/platform/requestmeta"
	"github.com/likhastudio/site/internal/services/web/routepath"
	webstatic "github.com/likhastudio/site/internal/services/web/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const imagesPrefix = routepath.StaticPrefix + "images/"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// ImageDir serves /static/images/ from disk. Images are not embedded.
	ImageDir string
	// Submitter relays contact form submissions; nil answers 503.
	Submitter contact.Submitter
	// ResolveLanguage overrides request language negotiation.
	ResolveLanguage     module.ResolveLanguage
	RequestSchemePolicy requestmeta.SchemePolicy
	// Logger receives request logs; nil uses log.Default().
	Logger *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	extra := []module.Mount{
		{Prefix: routepath.Health, Handler: http.HandlerFunc(handleHealth)},
		{Prefix: routepath.StaticPrefix, Handler: http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS)))},
	}
	if dir := strings.TrimSpace(cfg.ImageDir); dir != "" {
		images, err := imageFS(dir)
		if err != nil {
			return nil, err
		}
		extra = append(extra, module.Mount{
			Prefix:  imagesPrefix,
			Handler: http.StripPrefix(imagesPrefix, http.FileServer(http.FS(images))),
		})
	}

	root, err := webapp.Compose(webapp.ComposeInput{
		Extra: extra,
		Modules: modules.Default(modules.Dependencies{
			Submitter:           cfg.Submitter,
			ResolveLanguage:     cfg.ResolveLanguage,
			RequestSchemePolicy: cfg.RequestSchemePolicy,
		}),
	})
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	chained := httpx.Chain(root,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	)
	return otelhttp.NewHandler(chained, "web",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	), nil
}

func imageFS(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("image dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("image dir %q is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed("GET, HEAD")(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte("ok\n"))
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
//
// On cancellation it drains in-flight requests, including contact
// submissions mid-delivery, for up to timeouts.Shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
