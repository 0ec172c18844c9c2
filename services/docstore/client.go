package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	retryAttempts = 3
	retryDelay    = 300 * time.Millisecond
)

// Client implements Store against the hosted document store's HTTP API.
// Documents live at /v1/docs/{ownerKey}; PATCH merges fields server-side.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a document store client. A nil http.Client gets a sane
// default timeout.
func NewClient(baseURL, apiKey string, httpc *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("docstore base URL not provided")
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		httpc:   httpc,
	}, nil
}

// Get fetches the owner's document. Transient failures (network errors, 429,
// 5xx) are retried a bounded number of times before the error is returned.
func (c *Client) Get(ctx context.Context, ownerKey string) (Document, error) {
	ownerKey = strings.TrimSpace(ownerKey)
	if ownerKey == "" {
		return nil, errors.New("owner key is required")
	}

	var doc Document
	err := retry.Do(
		func() error {
			return c.do(ctx, http.MethodGet, ownerKey, nil, &doc)
		},
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Upsert merges the provided fields into the owner's document, creating it if
// absent. Fields not mentioned are preserved by the server.
func (c *Client) Upsert(ctx context.Context, ownerKey string, fields Document) error {
	ownerKey = strings.TrimSpace(ownerKey)
	if ownerKey == "" {
		return errors.New("owner key is required")
	}
	if len(fields) == 0 {
		return nil
	}

	return retry.Do(
		func() error {
			return c.do(ctx, http.MethodPatch, ownerKey, fields, nil)
		},
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
}

func (c *Client) do(ctx context.Context, method, ownerKey string, body, out any) error {
	endpoint := c.baseURL + "/v1/docs/" + url.PathEscape(ownerKey)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode document fields: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &transientError{err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &transientError{err: fmt.Errorf("docstore request failed: %s", resp.Status)}
	case resp.StatusCode >= 400:
		return fmt.Errorf("docstore request failed: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return nil
}

type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

var _ Store = (*Client)(nil)
