// Package httpclient implements the outbound collaborator ports over
// JSON-over-HTTP, wrapped in the resilience policy so transient collaborator
// trouble is retried and persistent trouble trips a breaker instead of
// hammering a dying service.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"fooddrone/internal/pkg/resilience"
)

const defaultTimeout = 10 * time.Second

// statusError carries a non-2xx response out of the retry loop.
type statusError struct {
	StatusCode int
	Body       []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// client is the shared JSON transport under the typed collaborator clients.
type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(baseURL string) client {
	return client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// doJSON performs one request and decodes a 2xx response into out.
// Non-2xx responses come back as *statusError so callers can translate
// specific status codes before the generic wrapping.
func (c client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{StatusCode: resp.StatusCode, Body: payload}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(payload, out)
}

// callJSON runs doJSON through the resilience policy. Transport failures and
// 5xx responses are retried and may trip the breaker; 4xx responses are the
// collaborator's verdict, returned as denial without retrying.
func (c client) callJSON(
	ctx context.Context,
	policy *resilience.Policy,
	method, path string,
	in, out any,
) (denial *statusError, err error) {
	err = policy.Execute(ctx, func(ctx context.Context) error {
		callErr := c.doJSON(ctx, method, path, in, out)

		var se *statusError
		if errors.As(callErr, &se) && se.StatusCode < http.StatusInternalServerError {
			denial = se
			return nil
		}
		return callErr
	})
	return denial, err
}

// callJSONWithFallback is callJSON with a degradation path: when the policy
// gives up, fallback runs with the cause and its result becomes the call's
// result. A denial is the collaborator's answer, not an outage, so it never
// reaches the fallback.
func (c client) callJSONWithFallback(
	ctx context.Context,
	policy *resilience.Policy,
	method, path string,
	in, out any,
	fallback func(ctx context.Context, cause error) error,
) (denial *statusError, err error) {
	err = policy.ExecuteWithFallback(ctx, func(ctx context.Context) error {
		callErr := c.doJSON(ctx, method, path, in, out)

		var se *statusError
		if errors.As(callErr, &se) && se.StatusCode < http.StatusInternalServerError {
			denial = se
			return nil
		}
		return callErr
	}, fallback)
	return denial, err
}
