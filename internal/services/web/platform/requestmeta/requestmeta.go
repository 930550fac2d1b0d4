// Package requestmeta classifies where a browser request came from.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/likhastudio/site/internal/services/web/platform/httpx"
)

// SchemePolicy controls how the request scheme is resolved.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered; only enable it behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Provenance is what Origin/Referer say about a request.
type Provenance int

const (
	// Unproven requests carry neither Origin nor Referer, as from curl or the
	// terminal client.
	Unproven Provenance = iota
	SameOrigin
	CrossOrigin
)

// String returns a log-friendly name.
func (p Provenance) String() string {
	switch p {
	case SameOrigin:
		return "same_origin"
	case CrossOrigin:
		return "cross_origin"
	default:
		return "unproven"
	}
}

// Classify inspects Origin, then Referer, against the request host.
func Classify(r *http.Request, policy SchemePolicy) Provenance {
	if r == nil {
		return Unproven
	}
	raw := strings.TrimSpace(r.Header.Get("Origin"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if raw == "" {
		return Unproven
	}
	scheme, host, port := requestOriginParts(r, policy)
	if host != "" && sameOrigin(raw, scheme, host, port) {
		return SameOrigin
	}
	return CrossOrigin
}

// RejectCrossOrigin answers 403 to requests a browser sent from another
// site. Unproven requests pass so non-browser clients keep working.
func RejectCrossOrigin(policy SchemePolicy) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if Classify(r, policy) == CrossOrigin {
				_ = httpx.WriteJSONError(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sameOrigin(raw string, scheme string, host string, port string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	originScheme := strings.ToLower(parsed.Scheme)
	if originScheme == "" || originScheme != scheme {
		return false
	}
	if strings.ToLower(parsed.Hostname()) != host {
		return false
	}
	originPort := parsed.Port()
	if originPort == "" {
		originPort = defaultPort(originScheme)
	}
	return originPort != "" && originPort == port
}

func requestOriginParts(r *http.Request, policy SchemePolicy) (string, string, string) {
	scheme := requestScheme(r, policy)
	host, port := hostParts(r.Host)
	if host == "" && r.URL != nil {
		host, port = hostParts(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return scheme, host, port
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func hostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
