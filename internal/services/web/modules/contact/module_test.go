package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/likhastudio/site/internal/contact"
	"github.com/likhastudio/site/internal/mail"
	"github.com/likhastudio/site/internal/mail/mailtest"
	"github.com/likhastudio/site/internal/services/web/routepath"
	"golang.org/x/text/language"
)

const validBody = `{"firstName":"Mario","lastName":"Rossi","email":"mario@example.com","message":"Ciao\nvorrei un preventivo"}`

func newTestPipeline(sender *mailtest.Recorder) *contact.Pipeline {
	return contact.NewPipeline(sender, contact.Composer{
		Operator: "studio@example.com",
		From:     "noreply@example.com",
		Location: time.UTC,
	}, contact.WithLogger(log.New(io.Discard, "", 0)))
}

func serve(t *testing.T, m Module, method string, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(method, routepath.Contact, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range header {
		req.Header.Set(key, value)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
	return payload
}

func TestModuleIDReturnsContact(t *testing.T) {
	t.Parallel()

	m := New(nil, nil)
	if got := m.ID(); got != "contact" {
		t.Fatalf("ID() = %q, want %q", got, "contact")
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.APIPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.APIPrefix)
	}
}

func TestSubmitSendsBothEmails(t *testing.T) {
	t.Parallel()

	sender := mailtest.NewRecorder()
	rr := serve(t, New(newTestPipeline(sender), nil), http.MethodPost, validBody, nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	payload := decodeEnvelope(t, rr)
	if payload["success"] != true {
		t.Fatalf("success = %v, want true", payload["success"])
	}
	if payload["message"] != "Email inviata con successo!" {
		t.Fatalf("message = %v", payload["message"])
	}
	delivered := sender.Delivered()
	if len(delivered) != 2 {
		t.Fatalf("delivered = %d, want 2", len(delivered))
	}
	if delivered[0].To != "studio@example.com" || delivered[1].To != "mario@example.com" {
		t.Fatalf("recipients = %q, %q", delivered[0].To, delivered[1].To)
	}
	if !strings.Contains(delivered[0].HTML, "Ciao<br>vorrei un preventivo") {
		t.Fatalf("notification body = %q", delivered[0].HTML)
	}
}

func TestSubmitLocalizesFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	sender := mailtest.NewRecorder()
	rr := serve(t, New(newTestPipeline(sender), nil), http.MethodPost, validBody, map[string]string{"Accept-Language": "en-US,en;q=0.9"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := decodeEnvelope(t, rr)["message"]; got != "Email sent successfully!" {
		t.Fatalf("message = %v", got)
	}
	if got := sender.Delivered()[1].Subject; got != "Confirmation - I received your message" {
		t.Fatalf("confirmation subject = %q", got)
	}
}

func TestSubmitFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		body          string
		failOn        int
		wantStatus    int
		wantError     string
		wantAttempts  int
		wantDelivered int
	}{
		{
			name:       "missing field",
			body:       `{"firstName":"Mario","lastName":"","email":"mario@example.com","message":"Ciao"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Tutti i campi sono obbligatori",
		},
		{
			name:       "padded email",
			body:       `{"firstName":"Mario","lastName":"Rossi","email":" mario@example.com ","message":"Ciao"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Email non valida",
		},
		{
			name:       "invalid email",
			body:       `{"firstName":"Mario","lastName":"Rossi","email":"mario@example","message":"Ciao"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Email non valida",
		},
		{
			name:       "malformed json",
			body:       `{"firstName":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Richiesta non valida",
		},
		{
			name:       "oversized body",
			body:       `{"message":"` + strings.Repeat("a", maxBodyBytes) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Richiesta non valida",
		},
		{
			name:         "notification fails",
			body:         validBody,
			failOn:       1,
			wantStatus:   http.StatusInternalServerError,
			wantError:    "Errore nell'invio dell'email. Riprova più tardi.",
			wantAttempts: 1,
		},
		{
			name:          "confirmation fails after notification",
			body:          validBody,
			failOn:        2,
			wantStatus:    http.StatusInternalServerError,
			wantError:     "Errore nell'invio dell'email. Riprova più tardi.",
			wantAttempts:  2,
			wantDelivered: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sender := mailtest.NewRecorder()
			if tc.failOn > 0 {
				sender.FailOn(tc.failOn, errors.New("provider down"))
			}
			rr := serve(t, New(newTestPipeline(sender), nil), http.MethodPost, tc.body, nil)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tc.wantStatus, rr.Body.String())
			}
			payload := decodeEnvelope(t, rr)
			if payload["error"] != tc.wantError {
				t.Fatalf("error = %v, want %q", payload["error"], tc.wantError)
			}
			if _, ok := payload["success"]; ok {
				t.Fatalf("error envelope carries success: %v", payload)
			}
			if got := len(sender.Attempts()); got != tc.wantAttempts {
				t.Fatalf("attempts = %d, want %d", got, tc.wantAttempts)
			}
			if got := len(sender.Delivered()); got != tc.wantDelivered {
				t.Fatalf("delivered = %d, want %d", got, tc.wantDelivered)
			}
			if strings.Contains(rr.Body.String(), "provider down") {
				t.Fatalf("provider error leaked to client: %s", rr.Body.String())
			}
		})
	}
}

func TestSubmitRejectsOtherMethods(t *testing.T) {
	t.Parallel()

	sender := mailtest.NewRecorder()
	m := New(newTestPipeline(sender), nil)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := serve(t, m, method, validBody, nil)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s status = %d, want %d", method, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != http.MethodPost {
			t.Fatalf("%s Allow = %q, want POST", method, got)
		}
	}
	if got := len(sender.Attempts()); got != 0 {
		t.Fatalf("attempts = %d, want 0", got)
	}
}

func TestUnknownAPIPathIsNotFound(t *testing.T) {
	t.Parallel()

	mount, _ := New(nil, nil).Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.APIPrefix+"other", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

type stubSubmitter struct {
	lang language.Tag
	err  error
}

func (s *stubSubmitter) Submit(_ context.Context, _ contact.Submission, lang language.Tag) (contact.Result, error) {
	s.lang = lang
	return contact.Result{}, s.err
}

func TestSubmitPassesResolvedLanguage(t *testing.T) {
	t.Parallel()

	stub := &stubSubmitter{}
	english := language.MustParse("en-US")
	rr := serve(t, New(stub, func(http.ResponseWriter, *http.Request) language.Tag { return english }), http.MethodPost, validBody, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if stub.lang != english {
		t.Fatalf("lang = %v, want %v", stub.lang, english)
	}
}

func TestSubmitWithoutSubmitterIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(nil, nil), http.MethodPost, validBody, nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestSubmitRejectsCrossOriginBrowserPosts(t *testing.T) {
	t.Parallel()

	sender := mailtest.NewRecorder()
	m := New(newTestPipeline(sender), nil)

	rr := serve(t, m, http.MethodPost, validBody, map[string]string{"Origin": "http://evil.test"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("cross origin status = %d, want %d", rr.Code, http.StatusForbidden)
	}
	if got := len(sender.Attempts()); got != 0 {
		t.Fatalf("attempts = %d, want 0", got)
	}

	rr = serve(t, m, http.MethodPost, validBody, map[string]string{"Origin": "http://example.com"})
	if rr.Code != http.StatusOK {
		t.Fatalf("same origin status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestSubmitCompletesAfterClientGoesAway(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sendErrs []error
	sender := mail.SenderFunc(func(sendCtx context.Context, _ mail.Message) error {
		cancel()
		sendErrs = append(sendErrs, sendCtx.Err())
		return sendCtx.Err()
	})
	pipeline := contact.NewPipeline(sender, contact.Composer{
		Operator: "studio@example.com",
		From:     "noreply@example.com",
		Location: time.UTC,
	}, contact.WithLogger(log.New(io.Discard, "", 0)))

	mount, err := New(pipeline, nil).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, routepath.Contact, strings.NewReader(validBody)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if len(sendErrs) != 2 {
		t.Fatalf("sends = %d, want 2", len(sendErrs))
	}
	for i, sendErr := range sendErrs {
		if sendErr != nil {
			t.Fatalf("send %d context error = %v, want nil", i+1, sendErr)
		}
	}
}
