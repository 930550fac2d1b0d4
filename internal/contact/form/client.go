package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/likhastudio/site/internal/contact"
	"golang.org/x/text/language"
)

// ContactPath is the endpoint the form posts to.
const ContactPath = "/api/contact"

const maxResponseBytes = 64 << 10

// ServerError is a non-2xx answer from the contact endpoint.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("contact endpoint returned %d", e.StatusCode)
	}
	return fmt.Sprintf("contact endpoint returned %d: %s", e.StatusCode, e.Message)
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client posts submissions to a running site.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Language is sent as Accept-Language when set.
	Language language.Tag
}

// Submit implements Submitter. Transport failures are returned wrapped;
// non-2xx responses return *ServerError carrying the server's message.
func (c Client) Submit(ctx context.Context, s contact.Submission) (string, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode submission: %w", err)
	}
	endpoint := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/") + ContactPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Language != language.Und {
		req.Header.Set("Accept-Language", c.Language.String())
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post contact: %w", err)
	}
	defer resp.Body.Close()

	var payload response
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read contact response: %w", err)
	}
	if len(raw) > 0 {
		// A non-JSON body still yields a status-based error below.
		_ = json.Unmarshal(raw, &payload)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ServerError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return payload.Message, nil
}
