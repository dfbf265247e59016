package optimizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"transport-optimizer/internal/domain"
)

type errorResponse struct {
	Error *string `json:"error"`
}

// decodeResponse maps a service response onto routes or a *domain.ServiceError.
//
// An object carrying an "error" field is a service-reported business error and
// is surfaced verbatim whatever the status code. An array is the route list.
// Anything else is a transport failure.
func decodeResponse(resp *response) ([]domain.Route, error) {
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		return nil, domain.NewTransportError(fmt.Errorf("empty response body (status %d)", resp.Code))
	}

	switch body[0] {
	case '{':
		var er errorResponse
		if err := json.Unmarshal(body, &er); err != nil {
			return nil, domain.NewTransportError(fmt.Errorf("decode error response: %w", err))
		}
		if er.Error != nil && strings.TrimSpace(*er.Error) != "" {
			return nil, &domain.ServiceError{Message: *er.Error}
		}
		return nil, domain.NewTransportError(statusOr(resp, errors.New("response object has no error field")))

	case '[':
		if resp.Code < 200 || resp.Code > 299 {
			return nil, domain.NewTransportError(statusOr(resp, nil))
		}
		var routes []domain.Route
		if err := json.Unmarshal(body, &routes); err != nil {
			return nil, domain.NewTransportError(fmt.Errorf("decode routes: %w", err))
		}
		if routes == nil {
			routes = []domain.Route{}
		}
		return routes, nil
	}

	return nil, domain.NewTransportError(statusOr(resp, errors.New("response is not a JSON object or array")))
}

// statusOr prefers the HTTP status as the failure cause when the service returned one.
func statusOr(resp *response, err error) error {
	if resp.Code >= 400 {
		return &httpStatusError{Code: resp.Code, Body: strings.TrimSpace(string(resp.Body))}
	}
	if err == nil {
		return fmt.Errorf("unexpected status %d", resp.Code)
	}
	return err
}
