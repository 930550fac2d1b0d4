package contact

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/likhastudio/site/internal/contact"
	module "github.com/likhastudio/site/internal/services/web/module"
	apperrors "github.com/likhastudio/site/internal/services/web/platform/errors"
	"github.com/likhastudio/site/internal/services/web/platform/httpx"
	"golang.org/x/text/language"
)

// maxBodyBytes caps the JSON payload of one submission.
const maxBodyBytes = 64 << 10

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type handlers struct {
	submitter       Submitter
	resolveLanguage module.ResolveLanguage
}

func newHandlers(submitter Submitter, resolveLanguage module.ResolveLanguage) handlers {
	return handlers{submitter: submitter, resolveLanguage: resolveLanguage}
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	lang := h.resolveLanguage(w, r)
	if h.submitter == nil {
		h.writeJSONError(w, lang, apperrors.EK(apperrors.KindUnavailable, contact.KeyDeliveryFailed, "contact submitter is not configured"))
		return
	}

	var submission contact.Submission
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, &submission); err != nil {
		h.writeJSONError(w, lang, apperrors.Wrap(apperrors.KindInvalidInput, contact.KeyInvalidRequest, err))
		return
	}

	// Sends run to completion even if the visitor goes away mid-request.
	ctx := context.WithoutCancel(r.Context())
	if _, err := h.submitter.Submit(ctx, submission, lang); err != nil {
		h.writeJSONError(w, lang, classify(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: contact.Text(lang, contact.KeySent),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSONError(w, h.resolveLanguage(w, r), apperrors.E(apperrors.KindNotFound, http.StatusText(http.StatusNotFound)))
}

// classify maps pipeline failures onto web error kinds. Partial deliveries
// are failures too: the visitor is told to retry even though the operator
// may already have the message.
func classify(err error) error {
	var validation *contact.ValidationError
	if errors.As(err, &validation) {
		return apperrors.Wrap(apperrors.KindInvalidInput, contact.ErrorKey(err), err)
	}
	return apperrors.Wrap(apperrors.KindDelivery, contact.KeyDeliveryFailed, err)
}

func (handlers) writeJSONError(w http.ResponseWriter, lang language.Tag, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if key := apperrors.LocalizationKey(err); key != "" {
		message = contact.Text(lang, key)
	}
	if status >= http.StatusInternalServerError {
		log.Printf("contact request failed status=%d err=%v", status, err)
	}
	_ = httpx.WriteJSONError(w, status, message)
}
