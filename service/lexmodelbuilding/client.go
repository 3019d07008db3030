// Package lexmodelbuilding is the client for the Amazon Lex Model Building
// Service, API version 2017-04-19, spoken over REST-JSON.
//
// Operation inputs bind their fields to the URI template, the query string or
// the JSON body through struct tags; see package restjson.
package lexmodelbuilding

import (
	"context"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"

	"github.com/Laisky/cloudsdk/endpoints"
	"github.com/Laisky/cloudsdk/protocol"
	"github.com/Laisky/cloudsdk/protocol/restjson"
	"github.com/Laisky/cloudsdk/transport"
)

const (
	ServiceID  = string(endpoints.LexModelBuilding)
	APIVersion = "2017-04-19"
)

type Options = transport.Options

// Client calls the Lex Model Building Service. It is safe for concurrent use.
type Client struct {
	exec *transport.Executor
}

func New(opts Options, optFns ...func(*Options)) (*Client, error) {
	opts = opts.Copy()
	for _, fn := range optFns {
		fn(&opts)
	}
	exec, err := transport.NewExecutor(endpoints.LexModelBuilding, opts, decodeError)
	if err != nil {
		return nil, errors.Wrap(err, "new lex model building client")
	}
	return &Client{exec: exec}, nil
}

func NewFromConfig(cfg aws.Config, optFns ...func(*Options)) (*Client, error) {
	return New(transport.FromConfig(cfg), optFns...)
}

func (c *Client) Options() Options { return c.exec.Options() }

type resultSetter interface {
	SetRequestID(string)
}

func (c *Client) invoke(ctx context.Context, op restjson.Operation, in any, out resultSetter) error {
	if err := c.call(ctx, op, in, out); err != nil {
		return &smithy.OperationError{
			ServiceID:     ServiceID,
			OperationName: op.Name,
			Err:           err,
		}
	}
	return nil
}

func (c *Client) call(ctx context.Context, op restjson.Operation, in any, out resultSetter) error {
	if err := protocol.ValidateInput(op.Name, in); err != nil {
		return err
	}
	req, err := restjson.Marshal(op, in)
	if err != nil {
		return errors.Wrap(err, "serialize request")
	}

	treq := &transport.Request{
		Operation: op.Name,
		Method:    req.Method,
		Path:      req.Path,
		Query:     req.Query,
		Body:      req.Body,
	}
	if req.Body != nil {
		treq.ContentType = restjson.ContentType
	}
	resp, err := c.exec.Do(ctx, treq)
	if err != nil {
		return err
	}

	if err := restjson.UnmarshalJSON(resp.Body, out); err != nil {
		return errors.Wrap(err, "deserialize response")
	}
	out.SetRequestID(resp.RequestID)
	return nil
}
