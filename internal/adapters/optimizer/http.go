package optimizer

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxResponseBytes = 64 << 20

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (o *HTTPOptimizer) newRequest(
	ctx context.Context,
	body io.Reader,
	contentType string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)

	return req, nil
}

// do sends the request and reads the whole body, bounded by maxResponseBytes.
func (o *HTTPOptimizer) do(req *http.Request) (*response, error) {
	resp, err := o.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if len(b) > maxResponseBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)
	}

	return &response{Code: resp.StatusCode, Body: b}, nil
}

type response struct {
	Code int
	Body []byte
}
