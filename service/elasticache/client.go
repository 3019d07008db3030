// Package elasticache is the client for Amazon ElastiCache, API version
// 2015-02-02, spoken over the AWS query protocol.
//
// Every operation posts a form-encoded body with Action and Version set and
// reads an XML document back. Inputs are validated before anything is sent;
// service failures come back as the typed errors in errors.go, wrapped in a
// *smithy.OperationError.
package elasticache

import (
	"bytes"
	"context"
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"

	"github.com/Laisky/cloudsdk/endpoints"
	"github.com/Laisky/cloudsdk/protocol"
	"github.com/Laisky/cloudsdk/protocol/query"
	"github.com/Laisky/cloudsdk/transport"
)

const (
	// ServiceID names the service in errors and metrics.
	ServiceID = string(endpoints.ElastiCache)
	// APIVersion is sent as the Version form field.
	APIVersion = "2015-02-02"

	contentType = "application/x-www-form-urlencoded; charset=utf-8"
)

// Options configures a Client.
type Options = transport.Options

// Client calls ElastiCache. It is safe for concurrent use.
type Client struct {
	exec *transport.Executor
}

// New returns a client built from opts after applying optFns.
func New(opts Options, optFns ...func(*Options)) (*Client, error) {
	opts = opts.Copy()
	for _, fn := range optFns {
		fn(&opts)
	}
	exec, err := transport.NewExecutor(endpoints.ElastiCache, opts, decodeError)
	if err != nil {
		return nil, errors.Wrap(err, "new elasticache client")
	}
	return &Client{exec: exec}, nil
}

// NewFromConfig returns a client using the region, credentials, HTTP client,
// retryer and base endpoint of cfg.
func NewFromConfig(cfg aws.Config, optFns ...func(*Options)) (*Client, error) {
	return New(transport.FromConfig(cfg), optFns...)
}

// Options returns a copy of the client's effective options.
func (c *Client) Options() Options { return c.exec.Options() }

type resultSetter interface {
	SetRequestID(string)
}

// invoke runs one operation. out may be nil for operations without a result.
func (c *Client) invoke(ctx context.Context, action string, in any, out resultSetter) error {
	if err := c.call(ctx, action, in, out); err != nil {
		return &smithy.OperationError{
			ServiceID:     ServiceID,
			OperationName: action,
			Err:           err,
		}
	}
	return nil
}

func (c *Client) call(ctx context.Context, action string, in any, out resultSetter) error {
	if err := protocol.ValidateInput(action, in); err != nil {
		return err
	}
	form, err := query.Encode(action, APIVersion, in)
	if err != nil {
		return errors.Wrap(err, "serialize request")
	}

	resp, err := c.exec.Do(ctx, &transport.Request{
		Operation:   action,
		Method:      http.MethodPost,
		Path:        "/",
		ContentType: contentType,
		Body:        []byte(form.Encode()),
	})
	if err != nil {
		return err
	}

	var target any
	if out != nil {
		target = out
	}
	requestID, err := query.DecodeResult(bytes.NewReader(resp.Body), action, target)
	if err != nil {
		return errors.Wrap(err, "deserialize response")
	}
	if requestID == "" {
		requestID = resp.RequestID
	}
	if out != nil {
		out.SetRequestID(requestID)
	}
	return nil
}

func decodeError(resp *transport.Response) error {
	base := query.DecodeError(resp.Body, resp.StatusCode)
	if base.RequestID == "" {
		base.RequestID = resp.RequestID
	}
	return errorRegistry.Resolve(base)
}
