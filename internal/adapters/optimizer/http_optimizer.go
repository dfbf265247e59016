package optimizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/metrics"
	"transport-optimizer/internal/platform/obs"
)

// HTTPOptimizer implements ports.Optimizer against the transport optimization service.
//
// Each Submit issues exactly one multipart POST. There are no retries: both
// service-reported and transport failures are terminal for a submission.
//
// The optimizer is safe for concurrent use.
type HTTPOptimizer struct {
	session  *http.Client
	endpoint string
}

func NewHTTPOptimizer(endpoint string, timeout time.Duration) (*HTTPOptimizer, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("optimizer endpoint is empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse optimizer endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("optimizer endpoint %q: scheme must be http or https", endpoint)
	}

	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &HTTPOptimizer{
		session:  &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}, nil
}

// Submit posts the dataset and parameters and returns the route list unchanged.
func (o *HTTPOptimizer) Submit(
	ctx context.Context,
	req domain.OptimizationRequest,
) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "optimizer.Submit")(&err)

	start := time.Now()
	defer func() {
		metrics.OptimizerLatency.Observe(time.Since(start).Seconds())
		metrics.OptimizerCalls.WithLabelValues(outcome(err)).Inc()
	}()

	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("encode submission: %w", err))
	}

	httpReq, err := o.newRequest(ctx, body, contentType)
	if err != nil {
		return nil, domain.NewTransportError(err)
	}

	resp, err := o.do(httpReq)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("post %s: %w", o.endpoint, err))
	}

	routes, err := decodeResponse(resp)
	if err != nil {
		return nil, err
	}

	return routes, nil
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var se *domain.ServiceError
	if errors.As(err, &se) && !se.Transport {
		return "service_error"
	}
	return "transport_error"
}
