package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// doJSON performs an API request and decodes the JSON body into out.
// A nil out discards the body. It returns (false, nil) on 204 No
// Content so callers can distinguish "nothing playing" from data.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, out interface{}) (bool, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	c.logDebugf("spotify: %s %s", method, path)

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, decodeError(resp)
	}
	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return true, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return true, nil
}

// decodeError turns a non-2xx response into a typed *Error. Bodies that
// do not match Spotify's error envelope still produce an *Error carrying
// the HTTP status.
func decodeError(resp *http.Response) error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		if envelope.Error.Status != 0 {
			apiErr.Status = envelope.Error.Status
		}
	}
	return apiErr
}
