package transport

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v5"
	"github.com/Laisky/zap"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/smithy-go"

	"github.com/Laisky/cloudsdk/common/helper"
	"github.com/Laisky/cloudsdk/common/metrics"
	"github.com/Laisky/cloudsdk/common/random"
	"github.com/Laisky/cloudsdk/endpoints"
)

// Request is a marshalled operation ready to be sent.
type Request struct {
	Operation string
	Method    string
	// Path is escaped and relative to the endpoint, e.g. "/" or "/bots/b%20x".
	Path        string
	Query       url.Values
	Header      http.Header
	ContentType string
	Body        []byte
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// Metadata is embedded in every operation output.
type Metadata struct {
	RequestID string
}

// SetRequestID records the service request id of the exchange that produced the output.
func (m *Metadata) SetRequestID(id string) { m.RequestID = id }

// ErrorDecoder turns a non-2xx response into the error returned to callers,
// usually a typed error resolved through an apierror.Registry.
type ErrorDecoder func(resp *Response) error

// Executor sends requests for one service.
type Executor struct {
	service     endpoints.Service
	options     Options
	decodeError ErrorDecoder
	signer      *v4.Signer
}

// NewExecutor builds an executor for id. opts is completed with WithDefaults.
func NewExecutor(id endpoints.ServiceID, opts Options, decodeError ErrorDecoder) (*Executor, error) {
	svc, err := endpoints.Lookup(id)
	if err != nil {
		return nil, errors.Wrap(err, "lookup service")
	}
	if decodeError == nil {
		return nil, errors.New("error decoder is required")
	}
	return &Executor{
		service:     svc,
		options:     opts.WithDefaults(),
		decodeError: decodeError,
		signer:      v4.NewSigner(),
	}, nil
}

// Options returns a copy of the effective options.
func (e *Executor) Options() Options { return e.options.Copy() }

// ServiceID returns the service this executor talks to.
func (e *Executor) ServiceID() endpoints.ServiceID { return e.service.ID }

func (e *Executor) endpoint() (*url.URL, error) {
	if e.options.BaseEndpoint != nil {
		return endpoints.ParseEndpoint(*e.options.BaseEndpoint)
	}
	return e.options.Resolver.Resolve(e.service.ID, e.options.Region)
}

// Do sends req, retrying while the retryer allows it, and returns the
// response of the first successful attempt. Failed responses are converted
// by the executor's ErrorDecoder.
func (e *Executor) Do(ctx context.Context, req *Request) (resp *Response, err error) {
	start := time.Now()
	log := e.options.Logger.With(
		zap.String("service", string(e.service.ID)),
		zap.String("operation", req.Operation),
	)
	defer func() {
		e.record(req.Operation, err, time.Since(start))
	}()

	base, err := e.endpoint()
	if err != nil {
		return nil, errors.Wrap(err, "resolve endpoint")
	}
	target, err := joinURL(base, req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(req.Body)
	payloadHash := hex.EncodeToString(sum[:])
	invocationID := random.InvocationID()
	retryer := e.options.Retryer
	maxAttempts := retryer.MaxAttempts()
	release := retryer.GetInitialToken()

	for attempt := 1; ; attempt++ {
		attemptStart := time.Now()
		resp, err = e.send(ctx, target, req, payloadHash, invocationID, attempt, maxAttempts)
		if err == nil {
			_ = release(nil)
			log.Debug("operation succeeded",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
				zap.String("request_id", resp.RequestID),
				zap.Int64("latency_ms", helper.CalcElapsedTime(attemptStart)))
			return resp, nil
		}

		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "request canceled")
		}
		if maxAttempts > 0 && attempt >= maxAttempts {
			log.Debug("operation failed, attempts exhausted", zap.Int("attempt", attempt), zap.Error(err))
			return nil, err
		}
		if !retryer.IsErrorRetryable(err) {
			log.Debug("operation failed", zap.Int("attempt", attempt), zap.Error(err))
			return nil, err
		}

		delay, derr := retryer.RetryDelay(attempt, err)
		if derr != nil {
			log.Debug("retry delay unavailable", zap.Error(derr))
			return nil, err
		}
		if release, derr = retryer.GetRetryToken(ctx, err); derr != nil {
			log.Debug("retry quota exhausted", zap.Error(derr))
			return nil, err
		}

		e.options.Metrics.IncRetry(string(e.service.ID), req.Operation)
		log.Warn("retrying operation",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.Wrap(ctx.Err(), "request canceled while waiting to retry")
		case <-timer.C:
		}
	}
}

func (e *Executor) send(ctx context.Context, target *url.URL, req *Request,
	payloadHash, invocationID string, attempt, maxAttempts int) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := gutils.NewReusableRequest(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "new request failed")
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Body != nil && req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	httpReq.Header.Set("User-Agent", e.options.UserAgent+" api/"+e.service.SigningName)
	httpReq.Header.Set("Amz-Sdk-Invocation-Id", invocationID)
	httpReq.Header.Set("Amz-Sdk-Request", fmt.Sprintf("attempt=%d; max=%d", attempt, maxAttempts))

	if e.options.Credentials != nil {
		creds, err := e.options.Credentials.Retrieve(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "retrieve credentials")
		}
		if creds.HasKeys() {
			if err := e.signer.SignHTTP(ctx, creds, httpReq, payloadHash,
				e.service.SigningName, e.options.Region, time.Now().UTC()); err != nil {
				return nil, errors.Wrap(err, "sign request")
			}
		}
	}

	httpResp, err := e.options.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "do request failed")
	}
	if httpResp == nil {
		return nil, errors.New("resp is nil")
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
		RequestID:  requestID(httpResp.Header),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, e.decodeError(resp)
	}
	return resp, nil
}

func requestID(h http.Header) string {
	for _, k := range []string{"X-Amzn-Requestid", "X-Amz-Request-Id", "X-Amzn-Request-Id"} {
		if v := h.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// joinURL appends an escaped path and a query to base.
func joinURL(base *url.URL, escapedPath string, query url.Values) (*url.URL, error) {
	u := *base
	rawPath := strings.TrimSuffix(base.EscapedPath(), "/") + escapedPath
	if rawPath == "" {
		rawPath = "/"
	}
	p, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, errors.Wrapf(err, "unescape path %q", rawPath)
	}
	u.Path = p
	u.RawPath = rawPath
	u.RawQuery = query.Encode()
	return &u, nil
}

func (e *Executor) record(operation string, err error, elapsed time.Duration) {
	m := e.options.Metrics
	svc := string(e.service.ID)
	if err == nil {
		m.ObserveOperation(svc, operation, metrics.OutcomeSuccess, elapsed)
		return
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		m.ObserveOperation(svc, operation, metrics.OutcomeServiceError, elapsed)
		m.IncError(svc, operation, apiErr.ErrorCode())
		return
	}
	m.ObserveOperation(svc, operation, metrics.OutcomeClientError, elapsed)
	m.IncError(svc, operation, "ClientError")
}
