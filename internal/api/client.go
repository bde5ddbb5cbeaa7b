package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// Client talks to the scraper backend. One Submit is exactly one POST;
// there are no retries and no client-side deadline beyond the caller's ctx.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the given backend base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// ValidateURL is the pre-flight check shared by the client and the UI.
// It runs before any network I/O.
func ValidateURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return newRequestError(KindValidation, ValidationMessage, nil)
	}
	return nil
}

// scrapeRequest is the body of POST /scrape.
type scrapeRequest struct {
	URL string `json:"url"`
}

// errorBody is the loosest shape we assume for non-2xx responses. The
// backend's exact error schema is not part of the contract beyond a
// message field.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// Submit sends one scrape request and returns the parsed result.
// Failures are *RequestError: KindValidation before any I/O, KindNetwork on
// transport failure, KindProtocol on a non-2xx status, KindParse on a
// malformed body.
func (c *Client) Submit(ctx context.Context, rawURL string) (*ScrapeResult, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	body, err := json.Marshal(scrapeRequest{URL: rawURL})
	if err != nil {
		return nil, newRequestError(KindParse, "could not encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, newRequestError(KindNetwork, "could not build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("Submitting scrape request", "url", rawURL, "server", c.baseURL)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, newRequestError(KindNetwork, "could not reach scraper backend", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newRequestError(KindProtocol, protocolMessage(resp), nil)
	}

	var envelope ScrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, newRequestError(KindParse, "backend returned invalid JSON", err)
	}
	if envelope.Result == nil {
		return nil, newRequestError(KindParse, "backend response has no result", nil)
	}

	log.Debug("Scrape completed",
		"url", envelope.Result.URL,
		"sections", len(envelope.Result.Sections),
		"errors", len(envelope.Result.Errors))

	return envelope.Result, nil
}

// protocolMessage builds the user-facing line for a non-2xx response,
// including the backend's message when the body yields one.
func protocolMessage(resp *http.Response) string {
	msg := fmt.Sprintf("backend returned %s", resp.Status)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return msg
	}
	var detail errorBody
	if json.Unmarshal(raw, &detail) != nil {
		return msg
	}
	for _, s := range []string{detail.Message, detail.Error, detail.Detail} {
		if s != "" {
			return fmt.Sprintf("%s: %s", msg, s)
		}
	}
	return msg
}

// Health probes GET /healthz. Used only as a connectivity check.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return nil, newRequestError(KindNetwork, "could not build request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, newRequestError(KindNetwork, "could not reach scraper backend", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newRequestError(KindProtocol, protocolMessage(resp), nil)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, newRequestError(KindParse, "backend returned invalid JSON", err)
	}
	return &status, nil
}
